package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/config"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/services"
	"github.com/dmitrijs2005/fundraise/internal/storage"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	projectService services.ProjectService
	closer         io.Closer

	session *models.Session
	reader  *bufio.Reader
	out     io.Writer
	theme   *theme
	log     logging.Logger
}

// NewApp opens the configured storage and builds the services on top of it.
// The app reads from stdin and writes to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.Open(ctx, c)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(repos.Users, log)
	ps := services.NewProjectService(repos.Projects, repos.Users, log)

	a := newApp(as, ps, os.Stdin, os.Stdout, log)
	a.config = c
	a.closer = repos
	return a, nil
}

func newApp(as services.AuthService, ps services.ProjectService, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		authService:    as,
		projectService: ps,
		reader:         bufio.NewReader(in),
		out:            out,
		theme:          newTheme(out),
		log:            log,
	}
}

// Run shows the menu until the user quits or input ends. Only unrecoverable
// errors, such as corrupt data files, are returned.
func (a *App) Run(ctx context.Context) error {
	if a.closer != nil {
		defer func() {
			if err := a.closer.Close(); err != nil {
				a.log.Warn(ctx, "closing storage", "error", err)
			}
		}()
	}
	a.log.Info(ctx, "session started")
	return runMenu(ctx, a, a.reader, a.out, a.log)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
