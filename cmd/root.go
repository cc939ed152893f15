// Package cmd implements the docpilot CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "📄"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "docpilot",
	Short: logo + " docpilot — chat with your documents through a local model",
	Long:  logo + " docpilot — a CLI chat agent that lets a local model read and edit documents over MCP",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
}
