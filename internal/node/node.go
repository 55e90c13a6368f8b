package node

import (
	"fmt"

	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/paramid"
)

// Node is a unit in the graph with named parameters and a per-tick update rule.
type Node interface {
	// TypeName is fixed per variant, e.g. "DO".
	TypeName() string
	// InstanceName is unique within the enclosing Group.
	InstanceName() string
	// ParameterCount is the size of the parameter index space.
	ParameterCount() int
	// Par returns parameter i. Out-of-range indices panic.
	Par(i int) *param.Parameter
	// ParameterName returns the qualified name of parameter i.
	ParameterName(i int) string
	// Run advances the unit by one sample in a single pass over its
	// already bound parameters.
	Run()
}

// Base implements everything in Node except Run for fixed-arity units.
// Embed it and add Run.
type Base struct {
	typeName string
	instance string
	params   []*param.Parameter
}

// NewBase returns a Base owning params in index order.
func NewBase(typeName, instance string, params ...*param.Parameter) Base {
	return Base{typeName: typeName, instance: instance, params: params}
}

func (b *Base) TypeName() string { return b.typeName }

func (b *Base) InstanceName() string { return b.instance }

func (b *Base) ParameterCount() int { return len(b.params) }

func (b *Base) Par(i int) *param.Parameter {
	if i < 0 || i >= len(b.params) {
		panic(fmt.Sprintf("invalid parameter number %d in %s %q of size %d", i, b.typeName, b.instance, len(b.params)))
	}
	return b.params[i]
}

func (b *Base) ParameterName(i int) string {
	return paramid.Qualify(b.instance, b.Par(i).Name())
}

// ParameterNames returns the qualified names of every parameter of n in index order.
func ParameterNames(n Node) []string {
	names := make([]string, n.ParameterCount())
	for i := range names {
		names[i] = n.ParameterName(i)
	}
	return names
}

// Lookup finds a parameter by qualified name. The first match in index order
// wins when names are duplicated.
func Lookup(n Node, name string) *param.Parameter {
	if i, ok := Index(n, name); ok {
		return n.Par(i)
	}
	return nil
}

// Index returns the first index whose qualified name equals name.
func Index(n Node, name string) (int, bool) {
	for i := 0; i < n.ParameterCount(); i++ {
		if n.ParameterName(i) == name {
			return i, true
		}
	}
	return 0, false
}

// FreeParameterCount counts the parameters that will own a slot at the next bind.
func FreeParameterCount(n Node) int {
	count := 0
	for i := 0; i < n.ParameterCount(); i++ {
		if n.Par(i).IsFree() {
			count++
		}
	}
	return count
}

// Entry pairs a parameter with its qualified name.
type Entry struct {
	Name  string
	Param *param.Parameter
}

// Flatten lists every parameter of n in index order. Groups are walked
// directly instead of through repeated index lookups.
func Flatten(n Node) []Entry {
	entries := make([]Entry, 0, n.ParameterCount())
	return appendEntries(entries, n)
}

func appendEntries(entries []Entry, n Node) []Entry {
	if g, ok := n.(*Group); ok {
		for _, child := range g.children {
			entries = appendEntries(entries, child)
		}
		return entries
	}
	for i := 0; i < n.ParameterCount(); i++ {
		entries = append(entries, Entry{Name: n.ParameterName(i), Param: n.Par(i)})
	}
	return entries
}
