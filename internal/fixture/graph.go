// Package fixture composes test preconditions as a graph of named factories.
// Each factory declares the fixtures it depends on; a Scope resolves them
// lazily, at most once, for the lifetime of one test.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownFixture is returned for a name that was never provided
	ErrUnknownFixture = errors.New("unknown fixture")
	// ErrCycle is returned when fixtures depend on each other in a loop
	ErrCycle = errors.New("fixture dependency cycle")
	// ErrDuplicateFixture is returned when a name is provided twice
	ErrDuplicateFixture = errors.New("fixture already provided")
	// ErrUndeclaredDependency is returned when a factory reads a fixture it did not declare
	ErrUndeclaredDependency = errors.New("fixture dependency not declared")
	// ErrNotSeeded is returned when a seeded fixture is requested before Seed
	ErrNotSeeded = errors.New("fixture not seeded")
)

// Factory builds a fixture value from its declared dependencies
type Factory func(ctx context.Context, deps Values) (any, error)

type node struct {
	name    string
	deps    []string
	factory Factory
	seeded  bool
}

// Graph is the set of fixture definitions shared by all tests of a suite.
// It is immutable once the first scope is created.
type Graph struct {
	nodes map[string]*node
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{nodes: map[string]*node{}}
}

// Provide registers a factory for name
func (g *Graph) Provide(name string, deps []string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("fixture %q: nil factory", name)
	}
	return g.add(&node{name: name, deps: append([]string(nil), deps...), factory: factory})
}

// Seed declares a root fixture whose value each scope supplies, such as the raw page handle
func (g *Graph) Seed(name string) error {
	return g.add(&node{name: name, seeded: true})
}

func (g *Graph) add(n *node) error {
	if n.name == "" {
		return errors.New("fixture name must not be empty")
	}
	if _, ok := g.nodes[n.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFixture, n.name)
	}
	g.nodes[n.name] = n
	return nil
}

// Names returns every fixture name, sorted
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Deps returns the declared dependencies of name
func (g *Graph) Deps(name string) ([]string, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}
	return append([]string(nil), n.deps...), nil
}

// Validate reports dependencies on unknown fixtures and dependency cycles
func (g *Graph) Validate() error {
	var unknown []string
	for _, name := range g.Names() {
		for _, d := range g.nodes[name].deps {
			if _, ok := g.nodes[d]; !ok {
				unknown = append(unknown, fmt.Sprintf("%s -> %s", name, d))
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFixture, strings.Join(unknown, ", "))
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g.nodes))
	var path []string
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			start := 0
			for i, p := range path {
				if p == name {
					start = i
					break
				}
			}
			loop := append(append([]string(nil), path[start:]...), name)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(loop, " -> "))
		}
		state[name] = visiting
		path = append(path, name)
		for _, d := range g.nodes[name].deps {
			if err := visit(d); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}
	for _, name := range g.Names() {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// Order returns the fixtures name needs, dependencies first, ending with name
func (g *Graph) Order(name string) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}
	seen := map[string]bool{}
	var order []string
	var walk func(string)
	walk = func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, d := range g.nodes[n].deps {
			walk(d)
		}
		order = append(order, n)
	}
	walk(name)
	return order, nil
}
