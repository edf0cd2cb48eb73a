// Package httpserver exposes the authentication operations over HTTP.
//
// Routes:
//
//	GET  /health   liveness probe
//	POST /register create a user
//	POST /login    verify credentials, issue a session token
//	POST /verify   verify a session token
//
// Every response carries a permissive CORS header and a JSON body.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mp28jam28/board-auth/internal/logging"
	"github.com/mp28jam28/board-auth/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *services.UserService
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService) *HTTPServer {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}
}

// Handler builds the gin engine with all routes and middleware attached.
// It is exported so tests can drive the full stack through httptest.
func (s *HTTPServer) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(s.requestID(), s.requestLog(), s.cors(), s.recovery())

	r.GET("/health", s.health)
	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/verify", s.verify)

	r.NoRoute(s.notFound)
	r.NoMethod(s.notFound)

	return r
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
