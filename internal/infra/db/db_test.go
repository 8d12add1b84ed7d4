package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"back-office/internal/config"
	"back-office/internal/infra/db"
)

func memoryConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Driver: db.DriverSQLite, Path: "file::memory:?_pragma=foreign_keys(1)"}
}

func TestOpen_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := db.Open(context.Background(), config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = db.Open(context.Background(), config.DatabaseConfig{Driver: db.DriverSQLite})
	assert.ErrorContains(t, err, "database.path is required")
}

func TestMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.MigrateUp(ctx, conn, db.DriverSQLite))
	version, err := db.Version(ctx, conn, db.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// idempotent
	require.NoError(t, db.MigrateUp(ctx, conn, db.DriverSQLite))

	_, err = conn.ExecContext(ctx,
		`INSERT INTO articles (id, author_id, title, content) VALUES ('a', 'b', 'title', 'content')`)
	require.NoError(t, err)

	var createdSet bool
	require.NoError(t, conn.QueryRowContext(ctx,
		`SELECT created_at IS NOT NULL FROM articles WHERE id = 'a'`).Scan(&createdSet))
	assert.True(t, createdSet)

	require.NoError(t, db.MigrateDown(ctx, conn, db.DriverSQLite))
	_, err = conn.ExecContext(ctx, `SELECT 1 FROM articles`)
	assert.Error(t, err, "table dropped")
}

func TestMigrateUp_UnknownDriver(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.Error(t, db.MigrateUp(ctx, conn, "mysql"))
}
