package builder

import (
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/node"
)

// Snapshot describes the current declared links of root as a Patch. Every
// parameter is written, defaults included, so the Patch rebuilds an identical
// tree without relying on variant defaults.
func Snapshot(root node.Node) *config.Patch {
	if g, ok := root.(*node.Group); ok {
		return &config.Patch{Elements: snapshotChildren(g)}
	}
	return &config.Patch{Elements: []*config.Element{snapshotNode(root)}}
}

func snapshotChildren(g *node.Group) []*config.Element {
	elements := make([]*config.Element, 0, g.Len())
	for _, child := range g.Children() {
		elements = append(elements, snapshotNode(child))
	}
	return elements
}

func snapshotNode(n node.Node) *config.Element {
	if g, ok := n.(*node.Group); ok {
		return &config.Element{Group: &config.GroupDecl{Name: g.InstanceName(), Elements: snapshotChildren(g)}}
	}
	decl := &config.NodeDecl{
		Type:  n.TypeName(),
		Name:  n.InstanceName(),
		Links: make([]config.Assignment, n.ParameterCount()),
	}
	for i := range decl.Links {
		p := n.Par(i)
		decl.Links[i] = config.Assignment{Param: p.Name(), Link: p.Link()}
	}
	return &config.Element{Node: decl}
}
