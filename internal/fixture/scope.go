package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/logging"
)

// ErrScopeClosed is returned when a scope is used after its test finished
var ErrScopeClosed = errors.New("fixture scope closed")

// Scope memoizes fixture values for one test. It is not safe for concurrent
// use; a test resolves its fixtures from a single goroutine.
type Scope struct {
	graph     *Graph
	ctx       context.Context
	log       *logrus.Entry
	values    map[string]any
	resolving map[string]bool
	resolved  []string
	closed    bool
}

// NewScope validates the graph and starts an empty scope for one test
func (g *Graph) NewScope(ctx context.Context, log logrus.FieldLogger) (*Scope, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Scope{
		graph:     g,
		ctx:       ctx,
		log:       logging.Category(log, "fixture"),
		values:    map[string]any{},
		resolving: map[string]bool{},
	}, nil
}

// Seed supplies the value of a seeded fixture
func (s *Scope) Seed(name string, value any) error {
	if s.closed {
		return ErrScopeClosed
	}
	n, ok := s.graph.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}
	if !n.seeded {
		return fmt.Errorf("fixture %q is built by a factory and cannot be seeded", name)
	}
	if _, done := s.values[name]; done {
		return fmt.Errorf("fixture %q already seeded", name)
	}
	s.values[name] = value
	s.resolved = append(s.resolved, name)
	return nil
}

// Resolve returns the value of name, building it and its dependencies on first use
func (s *Scope) Resolve(name string) (any, error) {
	if s.closed {
		return nil, ErrScopeClosed
	}
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	n, ok := s.graph.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}
	if n.seeded {
		return nil, fmt.Errorf("%w: %s", ErrNotSeeded, name)
	}
	if s.resolving[name] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, name)
	}
	s.resolving[name] = true
	defer delete(s.resolving, name)

	deps := Values{owner: name, values: make(map[string]any, len(n.deps))}
	for _, d := range n.deps {
		v, err := s.Resolve(d)
		if err != nil {
			return nil, err
		}
		deps.values[d] = v
	}

	if err := s.ctx.Err(); err != nil {
		return nil, fmt.Errorf("fixture %q: %w", name, err)
	}
	start := time.Now()
	v, err := n.factory(s.ctx, deps)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", name, err)
	}
	s.log.WithField("fixture", name).WithField("took", time.Since(start)).Debug("fixture ready")

	s.values[name] = v
	s.resolved = append(s.resolved, name)
	return v, nil
}

// Resolved returns the fixtures built or seeded so far, in completion order
func (s *Scope) Resolved() []string {
	return append([]string(nil), s.resolved...)
}

// Close drops every memoized value. Later calls fail with ErrScopeClosed.
func (s *Scope) Close() {
	s.closed = true
	s.values = nil
}

// Get resolves name from the scope and asserts its type
func Get[T any](s *Scope, name string) (T, error) {
	var zero T
	v, err := s.Resolve(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("fixture %q is %T, not %T", name, v, zero)
	}
	return t, nil
}

// Values are the resolved dependencies handed to a factory
type Values struct {
	owner  string
	values map[string]any
}

// Get returns a declared dependency
func (v Values) Get(name string) (any, error) {
	val, ok := v.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s reads %s", ErrUndeclaredDependency, v.owner, name)
	}
	return val, nil
}

// Dep returns a declared dependency with its type asserted
func Dep[T any](v Values, name string) (T, error) {
	var zero T
	val, err := v.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("dependency %q of %s is %T, not %T", name, v.owner, val, zero)
	}
	return t, nil
}
