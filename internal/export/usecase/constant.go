package usecase

import "time"

const (
	defaultURLExpiry = 15 * time.Minute

	objectPrefix   = "exports"
	csvContentType = "text/csv; charset=utf-8"
	fileTimeLayout = "20060102-150405"
)
