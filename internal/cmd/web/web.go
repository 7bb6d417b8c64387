// Package web parses web command flags and composes the activities service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/mergington/activities/internal/platform/cmd"
	"github.com/mergington/activities/internal/services/activities/app"
	"github.com/mergington/activities/internal/services/activities/storage/memory"
	webservice "github.com/mergington/activities/internal/services/web"
	"github.com/mergington/activities/internal/telemetry"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr string `env:"MERGINGTON_WEB_HTTP_ADDR" envDefault:"localhost:8000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "web HTTP listen address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the activity registry and serves the signup API until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(context.Context) error {
		store := memory.New()
		if err := app.SeedDefaultCatalog(ctx, store); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		registry, err := app.New(store, telemetry.NewEmitter(store))
		if err != nil {
			return fmt.Errorf("init activities service: %w", err)
		}

		server, err := webservice.NewServer(webservice.Config{
			HTTPAddr:   cfg.HTTPAddr,
			Activities: registry,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
