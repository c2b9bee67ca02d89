package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/estimator/internal/domain"
)

// Registry implements the SummarizerRegistry interface.
type Registry struct {
	mu          sync.RWMutex
	summarizers map[string]domain.QuoteSummarizer
}

// NewRegistry creates a new summarizer registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:          sync.RWMutex{},
		summarizers: make(map[string]domain.QuoteSummarizer),
	}
}

// Register adds a summarizer to the registry.
func (r *Registry) Register(_ context.Context, summarizer domain.QuoteSummarizer) error {
	if summarizer == nil {
		return errors.New("summarizer cannot be nil")
	}

	name := summarizer.Name()
	if name == "" {
		return errors.New("summarizer name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.summarizers[name]; exists {
		return fmt.Errorf("summarizer %s already registered", name)
	}

	r.summarizers[name] = summarizer
	return nil
}

// Get retrieves a summarizer by name.
func (r *Registry) Get(_ context.Context, name string) (domain.QuoteSummarizer, error) {
	if name == "" {
		return nil, errors.New("summarizer name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	summarizer, exists := r.summarizers[name]
	if !exists {
		return nil, fmt.Errorf("summarizer %s not found", name)
	}

	return summarizer, nil
}

// List returns all registered summarizer names in sorted order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.summarizers))
	for name := range r.summarizers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
