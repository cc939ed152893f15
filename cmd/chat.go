package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docpilot/docpilot/internal/agent"
	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/container"
)

var (
	chatMessage string
	chatConfig  string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the document agent",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
	chatCmd.Flags().StringVar(&chatConfig, "config", "", "Path to config file")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"salir": true,
	"/exit": true,
	"/quit": true,
}

func runChat(_ *cobra.Command, _ []string) error {
	path := chatConfig
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "close tool provider: %v\n", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.Provider().Connect(ctx); err != nil {
		return fmt.Errorf("connect to tool server: %w", err)
	}

	loop := c.Loop()
	if err := loop.Init(ctx); err != nil {
		return err
	}

	if chatMessage != "" {
		return runSingleMessage(ctx, loop, chatMessage)
	}

	return runInteractive(ctx, loop)
}

// runSingleMessage dispatches one message and prints the outcome.
func runSingleMessage(ctx context.Context, loop *agent.Loop, message string) error {
	out, err := loop.Turn(ctx, message)
	if err != nil {
		return err
	}
	printOutcome(out)
	return nil
}

// runInteractive starts the REPL: reads lines from stdin and dispatches each
// through the loop until an exit command or EOF.
func runInteractive(ctx context.Context, loop *agent.Loop) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit)\n\n", logo)
	fmt.Println("Available tools:")
	fmt.Println(loop.Catalog())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}

		out, err := loop.Turn(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nGoodbye!")
				return nil
			}
			// Gateway failures are reported and the conversation continues.
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		printOutcome(out)
	}
}

func printOutcome(out agent.Outcome) {
	switch out.Kind {
	case agent.OutcomeToolError:
		fmt.Fprintf(os.Stderr, "tool %s failed: %s\n", out.ToolName, out.Text)
	default:
		// Answers, synthesized replies and raw unparseable output all go to
		// the user verbatim.
		fmt.Printf("\n%s docpilot\n%s\n\n", logo, out.Text)
	}
}
