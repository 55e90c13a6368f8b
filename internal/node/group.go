package node

import (
	"fmt"

	"github.com/vk/phisynth/internal/param"
)

// ContainerType is the type name of every Group.
const ContainerType = "container"

// Group is an ordered collection of child nodes that is itself a Node.
// Its parameter index space is the concatenation of its children's.
type Group struct {
	instance string
	children []Node
}

// NewGroup returns a Group named ContainerType holding children in order.
func NewGroup(children ...Node) *Group {
	return &Group{instance: ContainerType, children: children}
}

// NewNamedGroup returns a Group with an explicit instance name, for nesting.
func NewNamedGroup(instance string, children ...Node) *Group {
	return &Group{instance: instance, children: children}
}

func (g *Group) TypeName() string { return ContainerType }

func (g *Group) InstanceName() string { return g.instance }

// SetInstanceName overrides the default instance name.
func (g *Group) SetInstanceName(name string) { g.instance = name }

// Children returns the child nodes in declaration order. The slice is shared.
func (g *Group) Children() []Node { return g.children }

// Len is the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Add appends n. The current binding is invalid until the next bind.
func (g *Group) Add(n Node) { g.children = append(g.children, n) }

// Child returns the first direct child with the given instance name.
func (g *Group) Child(instance string) (Node, bool) {
	for _, c := range g.children {
		if c.InstanceName() == instance {
			return c, true
		}
	}
	return nil, false
}

// Remove deletes the first direct child with the given instance name.
func (g *Group) Remove(instance string) (Node, bool) {
	for i, c := range g.children {
		if c.InstanceName() == instance {
			g.children = append(g.children[:i:i], g.children[i+1:]...)
			return c, true
		}
	}
	return nil, false
}

func (g *Group) ParameterCount() int {
	count := 0
	for _, c := range g.children {
		count += c.ParameterCount()
	}
	return count
}

// locate maps a group index to the owning child and its local index.
func (g *Group) locate(i int) (Node, int) {
	if i >= 0 {
		offset := 0
		for _, c := range g.children {
			n := c.ParameterCount()
			if i < offset+n {
				return c, i - offset
			}
			offset += n
		}
	}
	panic(fmt.Sprintf("invalid parameter number %d in container %q of size %d", i, g.instance, g.ParameterCount()))
}

func (g *Group) Par(i int) *param.Parameter {
	c, local := g.locate(i)
	return c.Par(local)
}

func (g *Group) ParameterName(i int) string {
	c, local := g.locate(i)
	return c.ParameterName(local)
}

// Run runs every child once in declaration order.
func (g *Group) Run() {
	for _, c := range g.children {
		c.Run()
	}
}
