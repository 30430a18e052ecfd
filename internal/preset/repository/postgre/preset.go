package postgre

import (
	"context"
	"database/sql"
	"errors"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/preset/repository"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// CreatePreset - Insert a new preset.
func (r *implRepository) CreatePreset(ctx context.Context, opts repository.CreatePresetOptions) (model.FilterPreset, error) {
	query, args := r.buildInsertQuery(opts)

	p, err := scanPreset(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.FilterPreset{}, repository.ErrDuplicatePreset
		}
		r.l.Errorf(ctx, "preset.repository.postgre.CreatePreset: Failed to insert preset: %v", err)
		return model.FilterPreset{}, repository.ErrPresetCreateFailed
	}
	return p, nil
}

// GetPresetByID - Get preset by primary key.
func (r *implRepository) GetPresetByID(ctx context.Context, id string) (model.FilterPreset, error) {
	query, args := r.buildGetByIDQuery(id)

	p, err := scanPreset(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.FilterPreset{}, repository.ErrPresetNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "preset.repository.postgre.GetPresetByID: Failed to get preset: %v", err)
		return model.FilterPreset{}, err
	}
	return p, nil
}

// ListPresets - List presets, newest first.
func (r *implRepository) ListPresets(ctx context.Context, opts repository.ListPresetsOptions) ([]model.FilterPreset, error) {
	query, args := r.buildListQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "preset.repository.postgre.ListPresets: Failed to list presets: %v", err)
		return nil, err
	}
	defer rows.Close()

	result := []model.FilterPreset{}
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			r.l.Errorf(ctx, "preset.repository.postgre.ListPresets: Failed to scan preset: %v", err)
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "preset.repository.postgre.ListPresets: Failed to iterate presets: %v", err)
		return nil, err
	}
	return result, nil
}

// CountPresets - Total number of presets.
func (r *implRepository) CountPresets(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, r.buildCountQuery()).Scan(&total); err != nil {
		r.l.Errorf(ctx, "preset.repository.postgre.CountPresets: Failed to count presets: %v", err)
		return 0, err
	}
	return total, nil
}

// DeletePreset - Delete a preset by primary key.
func (r *implRepository) DeletePreset(ctx context.Context, id string) error {
	query, args := r.buildDeleteQuery(id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "preset.repository.postgre.DeletePreset: Failed to delete preset: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrPresetNotFound
	}
	return nil
}
