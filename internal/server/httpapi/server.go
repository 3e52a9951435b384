// Package httpapi exposes the entry and account operations as the JSON API
// under /api, served by fiber.
package httpapi

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/dmitrijs2005/classroom/internal/logging"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

// EntryService is the entry logic the handlers depend on.
type EntryService interface {
	List(ctx context.Context) ([]*models.Entry, error)
	Create(ctx context.Context, title, content string) (*models.Entry, error)
	Update(ctx context.Context, id, title, content string) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
}

// UserService is the account logic the handlers depend on.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (string, error)
}

// Options tunes the HTTP server.
type Options struct {
	// CORSOrigins is the comma separated list of allowed browser origins.
	CORSOrigins     string
	ShutdownTimeout time.Duration
}

type Server struct {
	address string
	app     *fiber.App
	entries EntryService
	users   UserService
	logger  logging.Logger
	opts    Options
}

func NewServer(address string, l logging.Logger, es EntryService, us UserService, opts Options) *Server {
	s := &Server{
		address: address,
		entries: es,
		users:   us,
		logger:  l.With("module", "http_server"),
		opts:    opts,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "classroom",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(s.accessLog)
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Get("/entries", s.listEntries)
	api.Post("/entries", s.createEntry)
	api.Put("/entries/:id", s.updateEntry)
	api.Delete("/entries/:id", s.deleteEntry)

	api.Post("/register", s.register)
	api.Post("/login", s.login)
	api.Get("/protected", s.requireToken, s.protected)
}

// App exposes the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address until ctx is cancelled, then drains
// in-flight requests for at most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)

	// Listener may not have registered ln with fasthttp yet, in which case
	// Shutdown does not reach it and Accept has to be unblocked here.
	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) && shutdownErr == nil {
		shutdownErr = err
	}

	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return shutdownErr
}
