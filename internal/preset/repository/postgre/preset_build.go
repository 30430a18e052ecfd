package postgre

import (
	"dashboard-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPreset - Scan one row selected with presetColumns.
func scanPreset(row rowScanner) (model.FilterPreset, error) {
	var p model.FilterPreset
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Filters.Platform,
		&p.Filters.ContentType,
		&p.Filters.Region,
		&p.Filters.DateStart,
		&p.Filters.DateEnd,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
