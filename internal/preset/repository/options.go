package repository

import "dashboard-srv/internal/model"

type CreatePresetOptions struct {
	ID        string
	Name      string
	Filters   model.Filters
	SessionID string
}

type ListPresetsOptions struct {
	Limit  int
	Offset int
}
