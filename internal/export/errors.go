package export

import "errors"

var (
	ErrNothingToExport = errors.New("no explore result to export")
	ErrUploadFailed    = errors.New("failed to upload export")
	ErrDownloadURL     = errors.New("failed to sign download url")
)
