package http

import (
	"errors"

	"dashboard-srv/internal/dashboard"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPError(
		404, "Session not found",
	)
	errInvalidScreen = pkgErrors.NewHTTPError(
		400, "Unknown screen",
	)
	errInvalidExpectedViews = pkgErrors.NewHTTPError(
		400, "expected_views must be a non-negative integer",
	)
	errUnknownOperation = pkgErrors.NewHTTPError(
		404, "Unknown operation",
	)
	errPlatformRequired = pkgErrors.NewHTTPError(
		400, "Both platforms are required",
	)
	errRegionRequired = pkgErrors.NewHTTPError(
		400, "Region is required",
	)
	errLastRegion = pkgErrors.NewHTTPError(
		409, "At least one region must stay selected",
	)
	errWaitCancelled = pkgErrors.NewHTTPError(
		504, "Fetch did not settle before the request ended",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, dashboard.ErrInvalidScreen):
		return errInvalidScreen
	case errors.Is(err, dashboard.ErrInvalidExpectedViews):
		return errInvalidExpectedViews
	case errors.Is(err, dashboard.ErrUnknownOperation):
		return errUnknownOperation
	case errors.Is(err, dashboard.ErrPlatformRequired):
		return errPlatformRequired
	case errors.Is(err, dashboard.ErrRegionRequired):
		return errRegionRequired
	case errors.Is(err, dashboard.ErrLastRegion):
		return errLastRegion
	default:
		panic(err)
	}
}
