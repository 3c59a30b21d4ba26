// Package commands implements the winctl CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/winkit/internal/config"
	"github.com/1broseidon/winkit/x11"
)

var (
	configPath string
	display    string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "winctl",
		Short:         "Create, adopt, and control native X11 windows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, err = config.LoadFromPath(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			if display != "" {
				cfg.Display = display
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/winctl/config.yaml)")
	root.PersistentFlags().StringVar(&display, "display", "", "X11 display (default $DISPLAY)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(openCmd(), infoCmd(), configCmd(), mcpCmd())
	return root.Execute()
}

// openDriver connects to the X server using the effective config.
func openDriver() (*x11.Driver, error) {
	if cfg.XAuthority != "" {
		if err := os.Setenv("XAUTHORITY", cfg.XAuthority); err != nil {
			return nil, fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}
	return x11.Open(cfg.Display, x11.WithLogger(logger))
}
