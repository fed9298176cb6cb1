// Package storage selects and opens the configured persistence backend.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fundraise/internal/config"
	"github.com/dmitrijs2005/fundraise/internal/migrations"
	"github.com/dmitrijs2005/fundraise/internal/repositories/projects"
	"github.com/dmitrijs2005/fundraise/internal/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Repositories bundles the collections used by the services.
type Repositories struct {
	Users    users.Repository
	Projects projects.Repository

	db *sql.DB
}

// Close releases the database handle, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Open builds the repositories for cfg.Storage.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage {
	case config.StorageFile:
		u, err := users.NewFileRepository(cfg.UsersFile)
		if err != nil {
			return nil, err
		}
		p, err := projects.NewFileRepository(cfg.ProjectsFile)
		if err != nil {
			return nil, err
		}
		return &Repositories{Users: u, Projects: p}, nil

	case config.StorageSQLite:
		db, err := InitDatabase(ctx, cfg.DatabaseFile)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:    users.NewSQLiteRepository(db),
			Projects: projects.NewSQLiteRepository(db),
			db:       db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// gooseUp is a seam for testing goose.UpContext.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations applies the embedded migrations. Already applied versions
// are skipped, so it is safe to call on every start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUp(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite file at path and migrates it.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection keeps every statement on the same SQLite handle
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping database: %w", err), db.Close())
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return db, nil
}
