// Package studio parses studio service flags and launches the service.
package studio

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/distilling.works/internal/clients/projectapi"
	entrypoint "github.com/louisbranch/distilling.works/internal/platform/cmd"
	"github.com/louisbranch/distilling.works/internal/services/web"
)

// Config holds studio command configuration.
type Config struct {
	HTTPAddr          string `env:"DISTILLING_WORKS_STUDIO_HTTP_ADDR" envDefault:"localhost:8080"`
	ProjectAPIBaseURL string `env:"DISTILLING_WORKS_STUDIO_PROJECT_API_BASE_URL" envDefault:"http://localhost:8090"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ProjectAPIBaseURL, "project-api-base-url", cfg.ProjectAPIBaseURL, "Project API base URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the studio web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStudio, func(ctx context.Context) error {
		client, err := projectapi.New(projectapi.Config{BaseURL: cfg.ProjectAPIBaseURL})
		if err != nil {
			return fmt.Errorf("init project api client: %w", err)
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			ProjectClient: client,
		})
		if err != nil {
			return fmt.Errorf("init studio server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve studio: %w", err)
		}
		return nil
	})
}
