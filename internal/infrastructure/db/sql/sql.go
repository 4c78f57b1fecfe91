// Package sql implements the repositories on top of gorm for the relational
// drivers (mysql, postgres, sqlite).
package sql

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sikeu/finance-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Driver names accepted by Open.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config captures the settings needed to open a relational store.
type Config struct {
	Driver      string
	DSN         string
	AutoMigrate bool
}

// Open connects to the configured driver, pings it and, when requested,
// creates the tables the repositories use.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if err := Ping(ctx, db); err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case DriverPostgres:
		conn, err := stdsql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open pgx: %w", err)
		}
		return postgres.New(postgres.Config{Conn: conn}), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the tables for users, finance records and the
// audit log. Username uniqueness comes from the unique index on sqlUser.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&sqlUser{},
		&domain.PiutangPelanggan{},
		&domain.PembayaranPiutang{},
		&domain.Proyek{},
		&domain.BiayaProyek{},
		&domain.AuditEvent{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks connectivity; used at startup and by the readiness probe.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sql ping: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
