package postgre

import (
	"database/sql"

	"dashboard-srv/internal/preset/repository"
	"dashboard-srv/pkg/log"
)

const defaultSchema = "dashboard"

type implRepository struct {
	db     *sql.DB
	l      log.Logger
	schema string
}

// New - Factory. An empty schema falls back to "dashboard".
func New(db *sql.DB, l log.Logger, schema string) repository.PresetRepository {
	if schema == "" {
		schema = defaultSchema
	}
	return &implRepository{
		db:     db,
		l:      l,
		schema: schema,
	}
}
