package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/docpilot/docpilot/internal/docserver"
	"github.com/docpilot/docpilot/internal/docstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the document MCP server on stdio",
	Long:  "Run the document MCP server on stdio. The chat command spawns this as its tool provider subprocess.",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := docserver.New(docstore.NewSeeded())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Start() })
	g.Go(func() error {
		<-gctx.Done()
		return gctx.Err()
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
