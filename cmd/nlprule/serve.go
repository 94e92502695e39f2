package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Qeenon/nlprule/internal/customdict"
	"github.com/Qeenon/nlprule/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the correction HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			rules, err := loadRules(cfg)
			if err != nil {
				return err
			}

			var dict *customdict.Dict
			if cfg.Server.RedisAddr != "" {
				dict = customdict.New(cfg.Server.RedisAddr)
				defer dict.Close()
			}

			srv := server.New(cfg.Server.ListenAddr, rules, dict, slog.Default())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}
}
