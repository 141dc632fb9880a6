package database

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables and indexes when they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// Simple protocol lets the whole script run as one multi-statement Exec.
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Conn().PgConn().Exec(ctx, schema).ReadAll()
	return err
}
