package postgre

import (
	"fmt"

	"dashboard-srv/internal/preset/repository"

	"github.com/lib/pq"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	presetColumns = "id, name, platform, content_type, region, date_start, date_end, created_at, updated_at"
)

func (r *implRepository) table() string {
	return pq.QuoteIdentifier(r.schema) + ".filter_presets"
}

// buildInsertQuery - Build INSERT for CreatePreset.
func (r *implRepository) buildInsertQuery(opts repository.CreatePresetOptions) (string, []any) {
	query := fmt.Sprintf(`INSERT INTO %s (id, name, platform, content_type, region, date_start, date_end, created_by_session)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING %s`, r.table(), presetColumns)

	args := []any{
		opts.ID,
		opts.Name,
		opts.Filters.Platform,
		opts.Filters.ContentType,
		opts.Filters.Region,
		opts.Filters.DateStart,
		opts.Filters.DateEnd,
		opts.SessionID,
	}
	return query, args
}

// buildGetByIDQuery - Build SELECT for GetPresetByID.
func (r *implRepository) buildGetByIDQuery(id string) (string, []any) {
	return fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", presetColumns, r.table()), []any{id}
}

// buildListQuery - Build SELECT for ListPresets, newest first.
func (r *implRepository) buildListQuery(opts repository.ListPresetsOptions) (string, []any) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(opts.Offset, 0)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC, name ASC LIMIT $1 OFFSET $2", presetColumns, r.table())
	return query, []any{limit, offset}
}

// buildCountQuery - Build SELECT COUNT for CountPresets.
func (r *implRepository) buildCountQuery() string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table())
}

// buildDeleteQuery - Build DELETE for DeletePreset.
func (r *implRepository) buildDeleteQuery(id string) (string, []any) {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table()), []any{id}
}
