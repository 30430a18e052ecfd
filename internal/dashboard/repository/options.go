package repository

import (
	"time"

	"dashboard-srv/internal/model"
)

// SaveOptions - Options for Save
type SaveOptions struct {
	State model.DashboardState
	TTL   time.Duration // zero keeps the snapshot until deleted
}
