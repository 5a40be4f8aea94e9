// Package main implements the entry point for the Keysfinder API server,
// which answers read-only queries over the mechanical keyboard catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/keysfinder-api/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command line flags that override configuration.
const (
	flagConfig   = "config"
	flagPort     = "port"
	flagLogLevel = "log-level"
)

// newRootCommand builds the keysfinder-api command. Running it without a
// subcommand starts the HTTP server and blocks until SIGINT or SIGTERM.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "keysfinder-api",
		Short:        "Serve the keyboard catalog HTTP API",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts, err := configOptions(cmd)
			if err != nil {
				return err
			}
			return run(ctx, opts...)
		},
	}

	cmd.PersistentFlags().String(flagConfig, "", "path to a YAML, JSON or TOML config file")
	cmd.PersistentFlags().Int(flagPort, 0, "HTTP listen port")
	cmd.PersistentFlags().String(flagLogLevel, "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "keysfinder-api", version)
		},
	}
}

// configOptions turns the flags that were set explicitly into config
// overrides. Unset flags leave file and environment values alone.
func configOptions(cmd *cobra.Command) ([]config.Option, error) {
	flags := cmd.Flags()

	var opts []config.Option

	configFile, err := flags.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}

	if flags.Changed(flagPort) {
		port, err := flags.GetInt(flagPort)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithOverride("server.port", port))
	}

	if flags.Changed(flagLogLevel) {
		level, err := flags.GetString(flagLogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithOverride("server.log_level", level))
	}

	return opts, nil
}

// run wires the application together and serves until ctx is done.
func run(ctx context.Context, opts ...config.Option) error {
	cfg, err := loadAppConfig(opts...)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, dialect, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return err
	}

	app, err := newApplication(cfg, logger, db, dialect)
	if err != nil {
		_ = db.Close()
		logger.Error("Failed to initialize application", "error", err)
		return err
	}

	return app.Run(ctx)
}
