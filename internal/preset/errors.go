package preset

import "errors"

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrNameRequired   = errors.New("preset name is required")
	ErrNameTooLong    = errors.New("preset name is too long")
	ErrDuplicateName  = errors.New("a preset with this name already exists")
)
