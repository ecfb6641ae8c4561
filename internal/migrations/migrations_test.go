package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return sqlDB
}

func TestRun_UpAndDown(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Run(ctx, db, "sqlite", Up))

	version, err := Version(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = db.ExecContext(ctx, "SELECT id, title, status, priority, deadline, user_id, created_at, updated_at FROM tasks")
	assert.NoError(t, err)

	require.NoError(t, Run(ctx, db, "sqlite", Down))

	_, err = db.ExecContext(ctx, "SELECT id FROM tasks")
	assert.Error(t, err)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Run(ctx, db, "sqlite", Up))
	assert.NoError(t, Run(ctx, db, "sqlite", Up))
}

func TestRun_UnknownDriver(t *testing.T) {
	err := Run(context.Background(), nil, "mysql", Up)
	assert.ErrorContains(t, err, "no migrations")
}

func TestRun_UnknownDirection(t *testing.T) {
	err := Run(context.Background(), openSQLite(t), "sqlite", Direction("sideways"))
	assert.ErrorContains(t, err, "unknown migration direction")
}
