package store

import (
	"database/sql"

	"addonpair/internal/logger"
	"addonpair/migrations"
)

// DB wraps the raw sql.DB handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
