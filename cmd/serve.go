package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/estimator/internal/config"
	"github.com/davidbz/estimator/internal/httpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the estimator HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(server *httpserver.Server, cfg *config.ServerConfig) error {
				return serve(cmd.Context(), server, time.Duration(cfg.ShutdownTimeout)*time.Second)
			})
		},
	}
}

// serve runs the server until ctx is cancelled or a termination signal arrives.
func serve(ctx context.Context, server *httpserver.Server, shutdownTimeout time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
