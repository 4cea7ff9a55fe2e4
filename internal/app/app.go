// Package app carries the loaded config, logger and fact service from the
// root command down to subcommands through the command context.
package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/config"
	"github.com/redjax/whoami/internal/logging"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
)

type contextKey struct{}

// App is the state shared by every command invocation.
type App struct {
	Config  *config.Config
	Log     logging.Logger
	Service *platformservice.Service
}

// New builds an App for cfg, logging to log.
func New(cfg *config.Config, log logging.Logger) *App {
	return &App{
		Config: cfg,
		Log:    log,
		Service: platformservice.New(
			platformservice.WithRoot(cfg.Root),
			platformservice.WithLogger(log),
		),
	}
}

// WithApp returns a copy of ctx carrying a.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromCommand returns the App attached to cmd's context. Commands run
// without the root command get defaults.
func FromCommand(cmd *cobra.Command) *App {
	if ctx := cmd.Context(); ctx != nil {
		if a, ok := ctx.Value(contextKey{}).(*App); ok {
			return a
		}
	}

	cfg := config.Default()

	return New(&cfg, logging.Discard())
}

// Format is the configured output format.
func (a *App) Format() string {
	if a.Config == nil {
		return config.FormatText
	}

	return a.Config.Format
}
