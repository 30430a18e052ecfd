package repository

import (
	"context"

	"dashboard-srv/internal/model"
)

//go:generate mockery --name PresetRepository
type PresetRepository interface {
	CreatePreset(ctx context.Context, opts CreatePresetOptions) (model.FilterPreset, error)
	GetPresetByID(ctx context.Context, id string) (model.FilterPreset, error)
	ListPresets(ctx context.Context, opts ListPresetsOptions) ([]model.FilterPreset, error)
	CountPresets(ctx context.Context) (int64, error)
	DeletePreset(ctx context.Context, id string) error
}
