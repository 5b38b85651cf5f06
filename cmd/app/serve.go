package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamfortasks/internal/config"
	"teamfortasks/internal/logger"
	"teamfortasks/internal/server"
	"teamfortasks/internal/services"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Logging.Level, cfg.InstanceName)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			// Anything still using the standard logger ends up as JSON too.
			defer zap.RedirectStdLog(log.Desugar())()

			svc, err := services.New(cfg.Fixtures.File)
			if err != nil {
				log.Errorw("services initialization error", "error", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Infow("starting", "port", cfg.Server.Port)
			return server.New(cfg, log, svc).ListenAndServe(ctx)
		},
	}
}
