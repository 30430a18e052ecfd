package http

import (
	"errors"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/export"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errNothingToExport = pkgErrors.NewHTTPError(
		409, "Run Explore before exporting",
	)
	errExportUnavailable = pkgErrors.NewHTTPError(
		503, "Export storage is unavailable",
	)
	errSessionNotFound = pkgErrors.NewHTTPError(
		404, "Session not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrNothingToExport):
		return errNothingToExport
	case errors.Is(err, export.ErrUploadFailed),
		errors.Is(err, export.ErrDownloadURL):
		return errExportUnavailable
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return errSessionNotFound
	default:
		return err
	}
}
