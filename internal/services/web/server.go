// Package web hosts the browser-facing studio service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/distilling.works/internal/platform/timeouts"
	webapp "github.com/louisbranch/distilling.works/internal/services/web/app"
	module "github.com/louisbranch/distilling.works/internal/services/web/module"
	"github.com/louisbranch/distilling.works/internal/services/web/modules"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/httpx"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/observability"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
	webstatic "github.com/louisbranch/distilling.works/internal/services/web/static"
)

// Config defines startup inputs for the studio web service.
type Config struct {
	HTTPAddr      string
	ProjectClient module.ProjectClient
}

// Server hosts the studio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds a root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{ProjectClient: cfg.ProjectClient}
	featureSet := modules.DefaultModules(deps)
	h, err := webapp.BuildRootHandler(webapp.Config{
		Dependencies: deps,
		Modules:      featureSet,
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.HandleFunc(http.MethodGet+" "+routepath.HealthJSON, handleHealthJSON(featureSet))
	rootMux.Handle("/", h)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleHealthJSON reports per-module availability. Modules without a health
// reporter count as healthy; a degraded module flips the overall status.
func handleHealthJSON(featureSet []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		statuses := make(map[string]bool, len(featureSet))
		healthy := true
		for _, feature := range featureSet {
			if feature == nil {
				continue
			}
			state := true
			if reporter, ok := feature.(module.HealthReporter); ok {
				state = reporter.Healthy()
			}
			statuses[feature.ID()] = state
			healthy = healthy && state
		}
		status := "ok"
		statusCode := http.StatusOK
		if !healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
		_ = httpx.WriteJSON(w, statusCode, map[string]any{
			"status":  status,
			"modules": statuses,
		})
	}
}

// NewServer validates config and constructs a studio web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose studio handler: %w", err)
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
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("studio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown studio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve studio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
