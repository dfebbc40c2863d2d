package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
)

// Storages aggregates every repository backed by one database connection.
type Storages struct {
	DB              *DB
	UserRepository  UserRepository
	TokenRepository TokenRepository
	TodoRepository  TodoRepository
	NoteRepository  NoteRepository
	URLRepository   URLRepository
}

// NewStorages wires all repositories on top of db.
func NewStorages(db *DB, app config.App, logger *logger.Logger) *Storages {
	return &Storages{
		DB:              db,
		UserRepository:  NewUserRepository(db, logger),
		TokenRepository: NewTokenRepository(db, logger),
		TodoRepository:  NewOwnedRepository(db, TodoSchema(app), logger),
		NoteRepository:  NewOwnedRepository(db, NoteSchema(app), logger),
		URLRepository:   NewOwnedRepository(db, URLSchema(app), logger),
	}
}

// Connect opens the database selected by cfg.Driver and, when configured,
// applies the embedded migrations.
func Connect(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}
