// Package httpapi is the HTTP transport for the auth service. It only
// decodes requests, calls the service and maps outcomes to status codes;
// all credential and token work happens in the services package.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

// authService is the slice of services.AuthService the handlers need.
type authService interface {
	Register(ctx context.Context, username string, password string) (*models.User, error)
	Login(ctx context.Context, username string, password string) (*services.LoginResult, error)
	CheckAuth(ctx context.Context, token string) (string, error)
}

type Server struct {
	address string
	logger  logging.Logger
	auth    authService
}

func NewServer(a string, l logging.Logger, auth *services.AuthService) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "httpapi"),
		auth:    auth,
	}
}

// Handler builds the route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /auth", s.handleAuth)
	mux.HandleFunc("POST /users", s.handleRegister)
	mux.HandleFunc("POST /users/{username}", s.handleLogin)

	return s.logRequests(s.responseTime(s.cors(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
