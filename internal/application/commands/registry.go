// Package commands holds the command registry and the operator commands that
// act on the movie collection.
package commands

import (
	"iter"

	"github.com/langel/movieshell/internal/ports"
)

// Registry maps command names to commands and remembers registration order
// for help listings.
type Registry struct {
	order    []string
	commands map[string]ports.Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]ports.Command)}
}

// Register inserts cmd under name. Registering a name again replaces the
// command but keeps its original position.
func (r *Registry) Register(name string, cmd ports.Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (ports.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All yields commands in registration order. The sequence can be ranged
// over any number of times.
func (r *Registry) All() iter.Seq[ports.Command] {
	return func(yield func(ports.Command) bool) {
		for _, name := range r.order {
			if !yield(r.commands[name]) {
				return
			}
		}
	}
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

var _ ports.CommandLookup = (*Registry)(nil)
