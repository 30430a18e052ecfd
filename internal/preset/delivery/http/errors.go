package http

import (
	"errors"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/preset"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errPresetNotFound = pkgErrors.NewHTTPError(
		404, "Preset not found",
	)
	errNameRequired = pkgErrors.NewHTTPError(
		400, "Preset name is required",
	)
	errNameTooLong = pkgErrors.NewHTTPError(
		400, "Preset name must be at most 80 characters",
	)
	errDuplicateName = pkgErrors.NewHTTPError(
		409, "A preset with this name already exists",
	)
	errSessionNotFound = pkgErrors.NewHTTPError(
		404, "Session not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preset.ErrPresetNotFound):
		return errPresetNotFound
	case errors.Is(err, preset.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, preset.ErrNameTooLong):
		return errNameTooLong
	case errors.Is(err, preset.ErrDuplicateName):
		return errDuplicateName
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return errSessionNotFound
	default:
		return err
	}
}
