package database

import (
	"fmt"
	"time"

	"haccp-ledger/internal/models"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// Open connects with exponential backoff, trying at most attempts times,
// and migrates the key/value table.
func Open(driver, dsn string, attempts int, log *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	if attempts < 1 {
		attempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 10 * time.Second

	var db *gorm.DB
	err = backoff.RetryNotify(func() error {
		var err error
		db, err = gorm.Open(dial, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		return err
	}, backoff.WithMaxRetries(bo, uint64(attempts-1)), func(err error, next time.Duration) {
		log.Info("database not ready, retrying", zap.String("driver", driver), zap.Duration("in", next), zap.Error(err))
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s after %d attempt(s): %w", driver, attempts, err)
	}
	log.Info("connected to database", zap.String("driver", driver))

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
