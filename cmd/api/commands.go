package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dhima/looking-glass/internal/api"
	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/storage"
	"github.com/dhima/looking-glass/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}

			srv, err := api.NewServer(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("failed to initialise server", zap.Error(err))
				_ = logger.Sync()
				return err
			}
			return srv.Serve()
		},
	}
}

func newInitDBCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the daily_log table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, dialect, err := storage.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := storage.EnsureSchema(ctx, db, dialect); err != nil {
				return err
			}
			logger.Info("schema ready", zap.String("driver", dialect.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "daily_log table ready (%s)\n", dialect.Name)
			return nil
		},
	}
}

func bootstrap(envFile string) (config.App, logging.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.App{}, nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.NewLogger(logging.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		File:        cfg.LogFile,
	})
	if err != nil {
		return config.App{}, nil, fmt.Errorf("initialise logger: %w", err)
	}
	return cfg, logger, nil
}
