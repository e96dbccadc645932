package data

import (
	"context"
	"database/sql"

	"github.com/modelgrid/modelgrid/internal/migrate"
)

// RunMigrations sets up the local record store schema by delegating to the migrate package.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}
