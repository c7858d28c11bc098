package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"eloget/internal/domain"
)

var ErrInvalidSource = errors.New("specified source is not valid, or is misspelled")

// Source fetches a player's ratings from one provider and normalizes them.
type Source interface {
	Name() string
	Fetch(ctx context.Context, user string) (domain.Ratings, error)
}

type Registry struct {
	sources map[string]Source
}

func NewRegistry(sources ...Source) *Registry {
	r := &Registry{sources: make(map[string]Source, len(sources))}
	for _, s := range sources {
		r.sources[s.Name()] = s
	}
	return r
}

func (r *Registry) Lookup(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
