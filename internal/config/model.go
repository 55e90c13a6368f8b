package config

import (
	"github.com/vk/phisynth/internal/param"
)

// Patch is the unified, format-agnostic representation of a patch: the
// ordered children of the root group.
type Patch struct {
	Description string
	Elements    []*Element
}

// Element is exactly one of a node or a nested group.
type Element struct {
	Node  *NodeDecl
	Group *GroupDecl
}

// GroupDecl is a nested group with its own ordered children.
type GroupDecl struct {
	Name     string
	Elements []*Element
}

// NodeDecl declares one unit instance and the links that override the
// variant's defaults.
type NodeDecl struct {
	Type  string
	Name  string
	Links []Assignment
}

// Assignment sets the link of one parameter, by local name.
type Assignment struct {
	Param string
	Link  param.Link
}

// Link returns the link assigned to the local parameter name, if any.
// Later assignments win.
func (n *NodeDecl) Link(local string) (param.Link, bool) {
	for i := len(n.Links) - 1; i >= 0; i-- {
		if n.Links[i].Param == local {
			return n.Links[i].Link, true
		}
	}
	return param.Link{}, false
}

// NodeCount counts node declarations at any depth.
func (p *Patch) NodeCount() int {
	return countNodes(p.Elements)
}

func countNodes(elements []*Element) int {
	count := 0
	for _, e := range elements {
		switch {
		case e.Node != nil:
			count++
		case e.Group != nil:
			count += countNodes(e.Group.Elements)
		}
	}
	return count
}
