package repository

import "errors"

var (
	ErrPresetNotFound     = errors.New("repository: preset not found")
	ErrPresetCreateFailed = errors.New("repository: failed to create preset")
	ErrDuplicatePreset    = errors.New("repository: preset name already taken")
)
