// Package handlers holds the named Go callables that manifest block
// declarations bind to. The callables are never invoked here; the registry
// only inspects their signatures, and the runtime bridge resolves them by
// name when a block executes.
package handlers

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
)

// Handlers maps export names to registered Go callables.
type Handlers struct {
	all map[string]*RegisteredHandler
}

// New creates an empty handler collection.
func New() *Handlers {
	return &Handlers{
		all: make(map[string]*RegisteredHandler),
	}
}

// RegisteredHandler holds one host-side callable and its reflected type.
type RegisteredHandler struct {
	Fn   any
	Type reflect.Type
}

// Register adds a callable under an export name. Registration happens at
// startup from compiled-in block packages, so a duplicate name is a
// programmer error and panics.
func (h *Handlers) Register(name string, fn any) {
	if _, exists := h.all[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("handler '%s' must be a function, got %T", name, fn))
	}
	slog.Debug("Registering block handler.", "name", name)
	h.all[name] = &RegisteredHandler{Fn: fn, Type: t}
}

// Lookup returns the handler registered under name, if any.
func (h *Handlers) Lookup(name string) (*RegisteredHandler, bool) {
	rh, ok := h.all[name]
	return rh, ok
}

// Names returns all registered export names, sorted for stable reporting.
func (h *Handlers) Names() []string {
	names := make([]string, 0, len(h.all))
	for name := range h.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pack is the interface block packages implement to contribute their
// handlers at startup.
type Pack interface {
	Register(h *Handlers)
}
