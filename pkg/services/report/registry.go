package report

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownReport is returned by Create for names nobody registered
var ErrUnknownReport = errors.New("unknown report")

// Factory is a function type that creates a fresh Report
type Factory func() Report

// Registry manages report factories by name
type Registry interface {
	// Register adds a new report factory
	Register(name string, factory Factory) error
	// Create instantiates the report registered under name
	Create(name string) (Report, error)
	// ListReports returns the registered report names, sorted
	ListReports() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new report registry seeded with factories
func NewRegistry(factories map[string]Factory) (Registry, error) {
	r := &registry{
		factories: make(map[string]Factory, len(factories)),
	}
	for name, factory := range factories {
		if err := r.Register(name, factory); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("report %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string) (Report, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}

	return factory(), nil
}

func (r *registry) ListReports() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
