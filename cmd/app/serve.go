package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"

	"github.com/wichananm65/kg-market-backend/internal/config"
	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/media"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		threshold float64
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("threshold") {
				cfg.VisibilityThreshold = threshold
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().Float64Var(&threshold, "threshold", config.DefaultVisibilityThreshold, "feed visibility threshold in percent")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	helper := log.NewHelper(log.With(logger, "module", "serve"))

	db, err := openDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		helper.Info("catalog source: postgres")
	} else {
		helper.Info("catalog source: built-in static catalog")
	}

	resolver, err := media.New(ctx, cfg.MediaBucket, cfg.MediaURLTTL, logger)
	if err != nil {
		return err
	}

	h, err := newHandlers(newRepositories(db), resolver, cfg.VisibilityThreshold, signingKey(cfg, logger), logger)
	if err != nil {
		return err
	}
	app := newApp(h, appOptions{accessLog: true})

	errc := make(chan error, 1)
	go func() {
		helper.Infof("listening on %s", cfg.Addr)
		errc <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	helper.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
