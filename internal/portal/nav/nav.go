// Package nav tracks which dashboard section is visible and runs
// section loaders on activation.
package nav

import (
	"context"
	"fmt"
)

// LoaderFunc fetches and renders a section's data when it becomes active
type LoaderFunc func(ctx context.Context) error

// Section is one entry of the dashboard's navigation
type Section struct {
	ID     string
	Label  string
	loader LoaderFunc
}

// Nav keeps the registered sections in registration order. Exactly one
// section is active at a time; the first registered section starts
// active.
type Nav struct {
	sections []Section
	active   string
}

// New returns an empty navigation registry
func New() *Nav {
	return &Nav{}
}

// Register adds a section. A nil loader means the section shows static
// content prepared elsewhere.
func (n *Nav) Register(id, label string, loader LoaderFunc) {
	n.sections = append(n.sections, Section{ID: id, Label: label, loader: loader})
	if n.active == "" {
		n.active = id
	}
}

// Activate makes the named section the active one and runs its loader.
// The previous section stays active when the id is unknown.
func (n *Nav) Activate(ctx context.Context, id string) error {
	for _, s := range n.sections {
		if s.ID != id {
			continue
		}
		n.active = id
		if s.loader != nil {
			if err := s.loader(ctx); err != nil {
				return fmt.Errorf("load section %s: %w", id, err)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown section: %s", id)
}

// Active returns the id of the active section
func (n *Nav) Active() string {
	return n.active
}

// IsActive reports whether the named section is the active one
func (n *Nav) IsActive(id string) bool {
	return n.active == id
}

// Sections returns the registered sections in registration order
func (n *Nav) Sections() []Section {
	out := make([]Section, len(n.sections))
	copy(out, n.sections)
	return out
}
