package main

import (
	"context"
	"fmt"

	"github.com/sikeu/finance-api/internal/api/handler"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
	mongodb "github.com/sikeu/finance-api/internal/infrastructure/db/mongo"
	sqldb "github.com/sikeu/finance-api/internal/infrastructure/db/sql"
	"github.com/sikeu/finance-api/internal/pkg/config"
)

// store bundles the repositories of the selected backend.
type store struct {
	users       ports.UserRepository
	audit       ports.AuditRepository
	receivables ports.RecordRepository[domain.PiutangPelanggan]
	payments    ports.RecordRepository[domain.PembayaranPiutang]
	projects    ports.RecordRepository[domain.Proyek]
	costs       ports.RecordRepository[domain.BiayaProyek]

	health handler.HealthCheck
	close  func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverMySQL, config.DriverPostgres, config.DriverSQLite:
		return openSQL(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &store{
		users:       mongodb.NewUserRepository(db),
		audit:       mongodb.NewAuditRepository(db),
		receivables: mongodb.NewRecordRepository[domain.PiutangPelanggan](db),
		payments:    mongodb.NewRecordRepository[domain.PembayaranPiutang](db),
		projects:    mongodb.NewRecordRepository[domain.Proyek](db),
		costs:       mongodb.NewRecordRepository[domain.BiayaProyek](db),
		health: handler.HealthCheck{
			Name: "mongodb",
			Ping: func(ctx context.Context) error { return mongodb.Ping(ctx, db) },
		},
		close: client.Disconnect,
	}, nil
}

func openSQL(ctx context.Context, cfg *config.Config) (*store, error) {
	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:      cfg.Store.Driver,
		DSN:         cfg.SQL.DSN,
		AutoMigrate: cfg.SQL.AutoMigrate,
	})
	if err != nil {
		return nil, err
	}

	return &store{
		users:       sqldb.NewUserRepository(db),
		audit:       sqldb.NewAuditRepository(db),
		receivables: sqldb.NewRecordRepository[domain.PiutangPelanggan](db),
		payments:    sqldb.NewRecordRepository[domain.PembayaranPiutang](db),
		projects:    sqldb.NewRecordRepository[domain.Proyek](db),
		costs:       sqldb.NewRecordRepository[domain.BiayaProyek](db),
		health: handler.HealthCheck{
			Name: cfg.Store.Driver,
			Ping: func(ctx context.Context) error { return sqldb.Ping(ctx, db) },
		},
		close: func(context.Context) error { return sqldb.Close(db) },
	}, nil
}
