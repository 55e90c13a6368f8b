package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/node"
)

// ErrUnknownType is returned when a type name has no registered variant.
var ErrUnknownType = errors.New("unknown node type")

// Module is the interface that every variant package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Constructor builds a fresh, unbound instance of a variant.
type Constructor func(instance string, p config.Params) node.Node

// Variant describes one registered node type.
type Variant struct {
	// Type is the stable type name, e.g. "DO".
	Type string
	// Prefix seeds default instance names, e.g. "Osc" -> "Osc1".
	Prefix string
	// Description is shown by the inspect command.
	Description string
	New         Constructor
}

// Registry holds the registered variants of a single application instance.
type Registry struct {
	variants map[string]*Variant
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{variants: make(map[string]*Variant)}
}

// NewWithModules creates a Registry and registers each module in order.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a variant. Registering the same type twice is a programmer error.
func (r *Registry) Register(v *Variant) {
	if v == nil || v.Type == "" || v.New == nil {
		panic("registry: variant must have a type and a constructor")
	}
	if _, exists := r.variants[v.Type]; exists {
		panic(fmt.Sprintf("node type '%s' already registered", v.Type))
	}
	slog.Debug("Registering node type.", "type", v.Type)
	r.variants[v.Type] = v
}

// Lookup returns the variant registered under typeName.
func (r *Registry) Lookup(typeName string) (*Variant, bool) {
	v, ok := r.variants[typeName]
	return v, ok
}

// Types returns every registered type name, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.variants))
	for t := range r.variants {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NewNode constructs an instance of typeName.
func (r *Registry) NewNode(typeName, instance string, p config.Params) (node.Node, error) {
	v, ok := r.variants[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	return v.New(instance, p), nil
}
