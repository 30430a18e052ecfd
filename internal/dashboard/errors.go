package dashboard

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidScreen        = errors.New("invalid screen")
	ErrInvalidExpectedViews = errors.New("expected_views must be a non-negative integer")
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrPlatformRequired     = errors.New("platform is required")
	ErrRegionRequired       = errors.New("region is required")
	ErrLastRegion           = errors.New("at least one region must stay selected")
)
