package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/fundraise/internal/config"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/repositories/projects"
	"github.com/dmitrijs2005/fundraise/internal/repositories/users"
	"github.com/dmitrijs2005/fundraise/internal/timex"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = storage
	cfg.UsersFile = filepath.Join(dir, "users.jsonl")
	cfg.ProjectsFile = filepath.Join(dir, "projects.jsonl")
	cfg.DatabaseFile = filepath.Join(dir, "fundraise.db")
	return cfg
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, name := range []string{"goose_db_version", "users", "projects"} {
		assert.True(t, tableExists(t, db, name), name)
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "projects"))
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	boom := errors.New("boom")
	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error { return boom }

	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.ErrorIs(t, err, boom)
}

func TestOpen_FileBackend(t *testing.T) {
	cfg := testConfig(t, config.StorageFile)

	repos, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &users.FileRepository{}, repos.Users)
	assert.IsType(t, &projects.FileRepository{}, repos.Projects)

	for _, p := range []string{cfg.UsersFile, cfg.ProjectsFile} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
	_, err = os.Stat(cfg.DatabaseFile)
	assert.True(t, os.IsNotExist(err), "file backend must not create the database")
}

func TestOpen_SQLiteBackend(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StorageSQLite)

	repos, err := Open(ctx, cfg)
	require.NoError(t, err)

	assert.IsType(t, &users.SQLiteRepository{}, repos.Users)
	assert.IsType(t, &projects.SQLiteRepository{}, repos.Projects)

	u := []models.User{{ID: 1, FirstName: "Mona", LastName: "Zaki", Email: "mona@mail.com", PasswordHash: "h", PhoneNumber: "01012345678"}}
	p := []models.Project{{
		ID: 1, Title: "Well", Details: "Water", Target: decimal.RequireFromString("250.75"),
		StartTime: timex.NewDate(2024, time.May, 1), EndTime: timex.NewDate(2024, time.June, 1), OwnerID: 1,
	}}
	require.NoError(t, repos.Users.Save(ctx, u))
	require.NoError(t, repos.Projects.Save(ctx, p))
	require.NoError(t, repos.Close())

	// reopening runs migrations again and keeps the data
	repos, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer repos.Close()

	gotU, err := repos.Users.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, gotU)

	gotP, err := repos.Projects.Load(ctx)
	require.NoError(t, err)
	require.Len(t, gotP, 1)
	assert.True(t, p[0].Target.Equal(gotP[0].Target))
	assert.Equal(t, "2024-05-01", gotP[0].StartTime.String())
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), testConfig(t, "csv"))
	require.Error(t, err)
}
