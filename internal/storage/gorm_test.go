package storage

import (
	"context"
	"testing"

	"haccp-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestGormBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewGormBackend(openTestDB(t))

	_, err := b.Get(ctx, "compliance_hazards")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(ctx, "compliance_hazards", []byte(`[{"id":"1"}]`)))
	require.NoError(t, b.Set(ctx, "compliance_hazards", []byte(`[{"id":"2"}]`)))

	raw, err := b.Get(ctx, "compliance_hazards")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(raw))

	require.NoError(t, b.Remove(ctx, "compliance_hazards"))
	_, err = b.Get(ctx, "compliance_hazards")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, b.Set(ctx, "b", []byte(`2`)))
	require.NoError(t, b.Clear(ctx))
	_, err = b.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormBackendPassesProbe(t *testing.T) {
	ctx := context.Background()
	s := New(NewGormBackend(openTestDB(t)), zap.NewNop())
	assert.Equal(t, ModeDurable, s.Mode(ctx))
}

func TestGormBackendWithoutTableFallsBack(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := New(NewGormBackend(db), zap.NewNop())
	assert.Equal(t, ModeFallback, s.Mode(ctx))
	assert.True(t, s.Set(ctx, "k", []byte(`1`)).OK())
}
