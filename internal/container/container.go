// Package container wires core docpilot services using go.uber.org/dig.
package container

import (
	"go.uber.org/dig"

	"github.com/docpilot/docpilot/internal/agent"
	"github.com/docpilot/docpilot/internal/config"
	"github.com/docpilot/docpilot/internal/gateway"
	"github.com/docpilot/docpilot/internal/interpret"
	"github.com/docpilot/docpilot/internal/mcp"
	"github.com/docpilot/docpilot/internal/schema"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	gateway  schema.LLMGateway
	provider *mcp.Provider
	loop     *agent.Loop
}

func (c *Container) Gateway() schema.LLMGateway { return c.gateway }
func (c *Container) Provider() *mcp.Provider    { return c.provider }
func (c *Container) Loop() *agent.Loop          { return c.loop }

// Close releases held resources, currently the MCP server subprocess.
func (c *Container) Close() error {
	return c.provider.Close()
}

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newGateway); err != nil {
		return nil, err
	}
	if err := d.Provide(newToolProvider); err != nil {
		return nil, err
	}
	if err := d.Provide(newInterpreter); err != nil {
		return nil, err
	}
	if err := d.Provide(newLoop); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		gw schema.LLMGateway,
		provider *mcp.Provider,
		loop *agent.Loop,
	) {
		result = &Container{
			gateway:  gw,
			provider: provider,
			loop:     loop,
		}
	})
	return result, err
}

func newGateway(cfg *config.Config) schema.LLMGateway {
	return gateway.New(cfg.Model)
}

func newToolProvider(cfg *config.Config) *mcp.Provider {
	return mcp.NewProvider(cfg.Server)
}

func newInterpreter() *interpret.Interpreter {
	return interpret.New(interpret.DefaultAliases)
}

func newLoop(gw schema.LLMGateway, provider *mcp.Provider, interp *interpret.Interpreter) *agent.Loop {
	return agent.NewLoop(gw, provider, interp)
}
