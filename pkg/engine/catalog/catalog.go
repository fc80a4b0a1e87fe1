// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     catalog
// Description: Registry of named function presets
// Created:     2026-03-06
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"sort"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// Catalog holds function presets by ID. A catalog is built once and passed
// to whoever needs it; lookups never mutate it.
type Catalog struct {
	functions map[string]*Function
}

// Empty returns a catalog without presets
func Empty() *Catalog {
	return &Catalog{functions: make(map[string]*Function)}
}

// New returns a catalog holding the built-in presets
func New() *Catalog {
	c := Empty()
	for _, fn := range presets() {
		if err := c.Register(fn); err != nil {
			panic(err)
		}
	}
	return c
}

// Register adds fn. A nil function, a missing ID or Eval, or a duplicate ID
// is an INVALID_INPUT error.
func (c *Catalog) Register(fn *Function) error {
	const op = "catalog.Register"

	if fn == nil {
		return smerror.InvalidInput(op, "function is nil")
	}
	if fn.ID == "" {
		return smerror.InvalidInput(op, "function ID is empty")
	}
	if fn.Eval == nil {
		return smerror.InvalidInput(op, "function has no Eval").WithDetail("id", fn.ID)
	}
	if _, exists := c.functions[fn.ID]; exists {
		return smerror.InvalidInput(op, fmt.Sprintf("function %q already registered", fn.ID)).
			WithDetail("id", fn.ID)
	}

	c.functions[fn.ID] = fn
	return nil
}

// Get returns the function with the given ID
func (c *Catalog) Get(id string) (*Function, error) {
	fn, ok := c.functions[id]
	if !ok {
		return nil, smerror.New(fmt.Sprintf("unknown function %q", id)).
			WithCode(smerror.CodeNotFound).
			WithOperation("catalog.Get").
			WithDetail("id", id)
	}
	return fn, nil
}

// MustGet is Get for presets known to exist; it panics otherwise
func (c *Catalog) MustGet(id string) *Function {
	fn, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return fn
}

// IDs returns all function IDs in sorted order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.functions))
	for id := range c.functions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every function ordered by ID
func (c *Catalog) All() []*Function {
	ids := c.IDs()
	out := make([]*Function, len(ids))
	for i, id := range ids {
		out[i] = c.functions[id]
	}
	return out
}

// ByTag returns the functions carrying tag, ordered by ID
func (c *Catalog) ByTag(tag Tag) []*Function {
	var out []*Function
	for _, fn := range c.All() {
		if fn.HasTag(tag) {
			out = append(out, fn)
		}
	}
	return out
}

// Len returns the number of registered functions
func (c *Catalog) Len() int {
	return len(c.functions)
}
