package db

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/turnera/internal/config"
)

// Open conecta sem migrar. SQLite fica com uma única conexão (um escritor).
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: driver == config.DriverPostgres,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// NewDB conecta e aplica as migrações pendentes uma única vez.
func NewDB(ctx context.Context, cfg *config.Config) (*gorm.DB, int, error) {
	db, err := Open(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return nil, 0, err
	}

	applied, err := NewMigrator(db).Up(ctx)
	if err != nil {
		return nil, applied, fmt.Errorf("migrate: %w", err)
	}

	return db, applied, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
