package httpclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/ndex-go/component"
)

// Component wraps a Factory with lifecycle management, for applications that
// start and stop their resources together.
type Component struct {
	config Config
	opts   []Option

	mu      sync.RWMutex
	factory *Factory
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a component. The Factory is created in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name == "" {
		return defaultName
	}
	return c.config.Name
}

// Start validates the configuration and creates the Factory.
func (c *Component) Start(_ context.Context) error {
	f, err := NewFactory(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.factory = f
	c.mu.Unlock()
	return nil
}

// Stop releases pooled connections.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	f := c.factory
	c.factory = nil
	c.mu.Unlock()

	if f != nil {
		return f.Close(ctx)
	}
	return nil
}

// Health reports healthy while the component is started.
func (c *Component) Health(_ context.Context) component.Health {
	h := component.Health{Name: c.Name(), Status: component.StatusHealthy}
	if c.Factory() == nil {
		h.Status = component.StatusUnhealthy
		h.Message = "not started"
	}
	return h
}

// Describe returns a one-line summary of the connection.
func (c *Component) Describe() component.Description {
	cfg := c.config
	cfg.ApplyDefaults()
	details := fmt.Sprintf("%s backend=%s", cfg.BaseURL, cfg.Backend)
	if cfg.Auth != nil {
		details += " auth=" + cfg.Auth.String()
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "ndex-client",
		Details: details,
	}
}

// Factory returns the running Factory, or nil before Start and after Stop.
func (c *Component) Factory() *Factory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.factory
}
