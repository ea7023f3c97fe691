package db

import (
	"database/sql"

	libdb "evcharge/backend/libs/db"
)

// NewPostgres opens the connection pool using the shared library helper.
// No ping is performed here: the backend may not be ready yet, and the
// schema bootstrap loop handles waiting for it.
func NewPostgres(dsn string) (*sql.DB, error) {
	return libdb.NewPostgresDB(dsn)
}
