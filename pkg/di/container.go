package di

import (
	"github.com/goliatone/go-matrix-cache/internal/solverinfra"
	"github.com/goliatone/go-matrix-cache/matrixcache"
	"github.com/goliatone/go-matrix-cache/solver"
)

// Container provides dependency injection for the matrix cache components.
// It manages a singleton inversion engine and provides factory helpers for
// creating resolvers bound to that engine.
type Container struct {
	inverter solver.Inverter
	config   Config
}

// NewContainer creates a new DI container with the provided engine
// configuration. It initializes the inversion engine once using the gonum
// adapter; every resolver created through the container shares it.
func NewContainer(config Config) (*Container, error) {
	// Initialize the inversion engine using the gonum adapter
	inverter, err := solverinfra.NewGonumInverter(config.toInternal())
	if err != nil {
		return nil, err
	}

	return &Container{
		inverter: inverter,
		config:   config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default configuration.
// This is a convenience constructor for typical use cases where custom configuration
// is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(DefaultConfig())
}

// Inverter returns the singleton inversion engine instance.
// This allows direct engine access for advanced use cases.
func (c *Container) Inverter() solver.Inverter {
	return c.inverter
}

// Config returns a copy of the engine configuration used by this container.
// This is useful for debugging and monitoring purposes.
func (c *Container) Config() Config {
	return c.config
}

// NewResolver creates a resolver bound to the container's inversion engine.
// Resolvers are cheap to create; callers that manage many cached matrices
// can share a single resolver across all of them.
func NewResolver(container *Container) *matrixcache.Resolver {
	return matrixcache.NewResolver(container.inverter)
}
