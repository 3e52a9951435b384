package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/classroom/internal/client/client"
	"github.com/dmitrijs2005/classroom/internal/client/config"
	"github.com/dmitrijs2005/classroom/internal/client/entrylist"
	"github.com/dmitrijs2005/classroom/internal/client/notify"
	"github.com/dmitrijs2005/classroom/internal/client/services"
	"github.com/dmitrijs2005/classroom/internal/client/session"
	"github.com/dmitrijs2005/classroom/internal/logging"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	api         entrylist.API
	authService services.AuthService
	session     *session.Session
	notifier    notify.Notifier
	reader      *bufio.Reader
	out         io.Writer
	closers     []func() error
}

// NewApp wires the client: local store, session, HTTP client and services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, logging.FormatText)

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	s, err := session.Init(ctx, repos.Metadata)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, s.Token, log)

	return &App{
		config:      c,
		log:         log,
		api:         apiClient,
		authService: services.NewAuthService(apiClient, s),
		session:     s,
		notifier:    notify.NewPrinter(os.Stdout),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closers:     []func() error{repos.Close},
	}, nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) views() Views {
	return Views{
		Entries:  a.entriesView,
		Login:    a.loginView,
		Register: a.registerView,
	}
}

// Run starts at / and follows the views until one of them exits.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to Classroom Manager (type 'help' for commands)")
	Navigate(ctx, PathRoot, a.session, a.views())
}

// Close releases the local database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *App) status() string {
	if u := a.session.Username(); u != "" {
		return fmt.Sprintf("(%s)", u)
	}
	return ""
}
