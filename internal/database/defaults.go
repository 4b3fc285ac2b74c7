package database

import (
	"context"
	"database/sql"

	"github.com/aurakai/gatenav/internal/catalog"
	"github.com/aurakai/gatenav/internal/database/repository"
)

// SeedDefaults stores the built-in gate catalog in an empty database.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	gates := repository.NewGateRepo(db)
	n, err := gates.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return gates.ReplaceAll(ctx, catalog.Defaults().Gates())
}
