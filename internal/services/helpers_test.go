package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/fundraise/internal/cryptox"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/repositories/projects"
	"github.com/dmitrijs2005/fundraise/internal/repositories/users"
	"github.com/stretchr/testify/require"
)

var testParams = cryptox.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16}

// fastHashing swaps the argon2 parameters for cheap ones.
func fastHashing(t *testing.T) {
	t.Helper()
	orig := hashPassword
	hashPassword = func(p []byte) (string, error) { return cryptox.HashPasswordWith(p, testParams) }
	t.Cleanup(func() { hashPassword = orig })
}

type fixture struct {
	dir      string
	users    *users.FileRepository
	projects *projects.FileRepository
	auth     AuthService
	svc      ProjectService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fastHashing(t)

	dir := t.TempDir()
	u, err := users.NewFileRepository(filepath.Join(dir, "users.jsonl"))
	require.NoError(t, err)
	p, err := projects.NewFileRepository(filepath.Join(dir, "projects.jsonl"))
	require.NoError(t, err)

	log := logging.NewNop()
	return &fixture{
		dir:      dir,
		users:    u,
		projects: p,
		auth:     NewAuthService(u, log),
		svc:      NewProjectService(p, u, log),
	}
}

func (f *fixture) usersPath() string    { return filepath.Join(f.dir, "users.jsonl") }
func (f *fixture) projectsPath() string { return filepath.Join(f.dir, "projects.jsonl") }

func validRegistration(email string) RegisterInput {
	return RegisterInput{
		FirstName:       "Mona",
		LastName:        "Zaki",
		Email:           email,
		Password:        []byte("s3cret"),
		ConfirmPassword: []byte("s3cret"),
		PhoneNumber:     "01012345678",
	}
}

// register creates a user and returns a session for it.
func (f *fixture) register(t *testing.T, email string) *models.Session {
	t.Helper()
	u, err := f.auth.Register(context.Background(), validRegistration(email))
	require.NoError(t, err)
	return models.NewSession(*u)
}

func validProject() ProjectInput {
	return ProjectInput{
		Title:     "Water well",
		Details:   "Clean water for the village",
		Target:    "1500.50",
		StartTime: "2024-02-01",
		EndTime:   "2024-06-30",
	}
}

// failingProjects fails every Save.
type failingProjects struct {
	projects.Repository
	err error
}

func (f failingProjects) Save(context.Context, []models.Project) error { return f.err }

var errDisk = errors.New("disk full")
