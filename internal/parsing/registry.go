package parsing

import (
	"fmt"
	"log/slog"
)

// Registry dispatches raw tokens to an ordered list of grammars. The list is
// fixed once the registry is built; With returns an extended copy.
type Registry[T any] struct {
	grammars []Grammar[T]
}

// NewRegistry builds a registry trying grammars in the given order.
func NewRegistry[T any](grammars ...Grammar[T]) (*Registry[T], error) {
	r := &Registry[T]{grammars: make([]Grammar[T], 0, len(grammars))}
	for i, g := range grammars {
		if g == nil {
			return nil, IllegalConstruction("grammar #%d is nil", i)
		}
		r.grammars = append(r.grammars, g)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on a nil grammar.
// It simplifies the initialization of package-level registries.
func MustRegistry[T any](grammars ...Grammar[T]) *Registry[T] {
	r, err := NewRegistry(grammars...)
	if err != nil {
		panic(err)
	}
	return r
}

// With returns a new registry with g appended after the existing grammars.
func (r *Registry[T]) With(g Grammar[T]) (*Registry[T], error) {
	grammars := make([]Grammar[T], 0, len(r.grammars)+1)
	grammars = append(grammars, r.grammars...)
	grammars = append(grammars, g)
	return NewRegistry(grammars...)
}

// Len returns the number of registered grammars.
func (r *Registry[T]) Len() int {
	return len(r.grammars)
}

// AppliesTo reports whether any registered grammar claims raw.
func (r *Registry[T]) AppliesTo(raw string) bool {
	return r.lookup(raw) != nil
}

// Parse resolves each token with the first grammar claiming it and
// concatenates the results in input order. It stops at the first failure
// and returns no partial result.
func (r *Registry[T]) Parse(raw []string) ([]T, error) {
	if raw == nil {
		return nil, Malformed("", "input is nil")
	}

	result := make([]T, 0, len(raw))
	for _, in := range raw {
		g := r.lookup(in)
		if g == nil {
			return nil, NoSuitableParser(in)
		}

		parsed, err := g.Parse([]string{in})
		if err != nil {
			return nil, err
		}
		if len(parsed) == 0 {
			slog.Warn("parser returned no identifiers", "parser", fmt.Sprintf("%T", g), "input", in)
		}
		result = append(result, parsed...)
	}
	return result, nil
}

func (r *Registry[T]) lookup(raw string) Grammar[T] {
	for _, g := range r.grammars {
		if g.AppliesTo(raw) {
			return g
		}
	}
	return nil
}
