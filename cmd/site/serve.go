package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/content"
	"rallypointwellness.com/site/internal/observability"
	"rallypointwellness.com/site/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *siteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long: `Serve renders the page on every request from the current content document.
With --dev the content file is watched and reloaded when it changes; documents
that fail validation are rejected and the previous one keeps serving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "HTTP listen address (default from SITE_ADDR or PORT)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "Reload the content file on change")
	addRenderFlags(cmd, flags)

	return cmd
}

func runServe(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	store, err := content.NewStore(cfg.ContentPath, logger)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, server.Deps{Store: store, Logger: logger})
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	watchDone := make(chan struct{})
	if cfg.Dev && store.Path() != "" {
		go func() {
			defer close(watchDone)
			if err := store.Watch(ctx); err != nil {
				logger.Warn("content watch stopped", zap.Error(err))
			}
		}()
	} else {
		close(watchDone)
	}

	logger.Info("site listening",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("dev", cfg.Dev),
		zap.String("variant", string(cfg.Variant)),
	)
	err = serveUntilDone(ctx, srv, ln)
	cancel()
	<-watchDone
	return err
}

// serveUntilDone serves on ln until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
