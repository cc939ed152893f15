package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docpilot/docpilot/internal/agent"
	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/mcp"
)

var toolsConfig string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the configured MCP server exposes",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVar(&toolsConfig, "config", "", "Path to config file")
}

func runTools(_ *cobra.Command, _ []string) error {
	path := toolsConfig
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := mcp.NewProvider(cfg.Server)
	if err := provider.Connect(ctx); err != nil {
		return fmt.Errorf("connect to tool server: %w", err)
	}
	defer func() {
		if closeErr := provider.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "close tool provider: %v\n", closeErr)
		}
	}()

	tools, err := provider.ListTools(ctx)
	if err != nil {
		return err
	}

	fmt.Println(agent.FormatToolCatalog(tools))
	return nil
}
