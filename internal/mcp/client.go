// Package mcp connects docpilot to its tool provider: an MCP server spoken
// to over stdio. The connection is a scoped resource — opened once at
// startup, closed on every exit path.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/schema"
)

const clientVersion = "0.1.0"

// connector is the slice of the MCP client surface this package uses.
// Narrowed so tests can stub it.
type connector interface {
	Initialize(ctx context.Context, req *mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, req *mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// Provider implements schema.ToolProvider over a stdio MCP server subprocess.
type Provider struct {
	cfg  config.ServerConfig
	conn connector
}

// NewProvider returns an unconnected provider. Call Connect before use.
func NewProvider(cfg config.ServerConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Connect starts the server subprocess and initialises the MCP session.
func (p *Provider) Connect(ctx context.Context) error {
	if p.conn != nil {
		return nil
	}

	client, err := mcp.NewStdioClient(
		mcp.StdioTransportConfig{
			ServerParams: mcp.StdioServerParameters{
				Command: p.cfg.Command,
				Args:    p.cfg.Args,
			},
			Timeout: p.cfg.Timeout(),
		},
		mcp.Implementation{Name: "docpilot", Version: clientVersion},
	)
	if err != nil {
		return fmt.Errorf("create MCP client: %w", err)
	}

	initResp, err := client.Initialize(ctx, &mcp.InitializeRequest{})
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			slog.Error("close MCP client after failed initialize", "err", closeErr)
		}
		return fmt.Errorf("initialize MCP session: %w", err)
	}

	slog.Info("MCP session initialized",
		"server", initResp.ServerInfo.Name,
		"version", initResp.ServerInfo.Version,
		"protocol", initResp.ProtocolVersion)

	p.conn = client
	return nil
}

// ListTools returns the provider's tool catalog.
func (p *Provider) ListTools(ctx context.Context) ([]schema.ToolDescriptor, error) {
	if p.conn == nil {
		return nil, fmt.Errorf("MCP provider not connected")
	}

	resp, err := p.conn.ListTools(ctx, &mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	descriptors := make([]schema.ToolDescriptor, 0, len(resp.Tools))
	for _, t := range resp.Tools {
		descriptors = append(descriptors, schema.ToolDescriptor{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return descriptors, nil
}

// CallTool invokes the named tool and reduces its result to plain text.
// Provider-side failures (unknown tool, invalid arguments, tool error)
// come back as errors; this bridge returns text or propagates, nothing else.
func (p *Provider) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if p.conn == nil {
		return "", fmt.Errorf("MCP provider not connected")
	}

	req := &mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	resp, err := p.conn.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("call tool %s: %w", name, err)
	}
	if resp.IsError {
		return "", fmt.Errorf("tool %s returned error: %s", name, resultText(resp))
	}
	return resultText(resp), nil
}

// Close tears down the session and the server subprocess. Safe to call when
// never connected.
func (p *Provider) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	if err != nil {
		return fmt.Errorf("close MCP client: %w", err)
	}
	return nil
}
