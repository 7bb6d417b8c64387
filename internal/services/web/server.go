// Package web hosts the browser-facing activities signup service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mergington/activities/internal/platform/timeouts"
	"github.com/mergington/activities/internal/services/activities/domain"
	"github.com/mergington/activities/internal/services/web/platform/httpx"
	"github.com/mergington/activities/internal/services/web/platform/observability"
	"github.com/mergington/activities/internal/services/web/routepath"
	"github.com/mergington/activities/internal/services/web/static"
)

// ActivityService exposes the registry operations used by web handlers.
type ActivityService interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr   string
	Activities ActivityService
}

// Server hosts the activities HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with all activity routes registered.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Activities == nil {
		return nil, errors.New("activity service is required")
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	registerRoutes(mux, handler{activities: cfg.Activities})

	chained := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	)
	return otelhttp.NewHandler(chained, "web"), nil
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("activities web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
