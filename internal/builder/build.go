package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/registry"
)

// ErrUnknownParameter is returned when a declaration sets a parameter the
// variant does not have.
var ErrUnknownParameter = errors.New("unknown parameter")

// ErrDuplicateInstance is returned when two children of one group share an
// instance name.
var ErrDuplicateInstance = errors.New("duplicate instance name")

// Build constructs the root group described by patch.
func Build(ctx context.Context, patch *config.Patch, r *registry.Registry, p config.Params) (*node.Group, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting node construction.", "declared_nodes", patch.NodeCount())

	children, err := buildElements(ctx, patch.Elements, r, p)
	if err != nil {
		return nil, err
	}
	root := node.NewGroup(children...)

	logger.Debug("Build: Node construction complete.",
		"children", root.Len(),
		"parameters", root.ParameterCount(),
		"free_parameters", node.FreeParameterCount(root),
	)
	return root, nil
}

func buildElements(ctx context.Context, elements []*config.Element, r *registry.Registry, p config.Params) ([]node.Node, error) {
	nodes := make([]node.Node, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))

	for _, e := range elements {
		var n node.Node
		switch {
		case e.Node != nil:
			built, err := buildNode(ctx, e.Node, r, p)
			if err != nil {
				return nil, err
			}
			n = built
		case e.Group != nil:
			children, err := buildElements(ctx, e.Group.Elements, r, p)
			if err != nil {
				return nil, fmt.Errorf("in group %q: %w", e.Group.Name, err)
			}
			n = node.NewNamedGroup(e.Group.Name, children...)
		default:
			continue
		}

		if _, dup := seen[n.InstanceName()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateInstance, n.InstanceName())
		}
		seen[n.InstanceName()] = struct{}{}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildNode(ctx context.Context, decl *config.NodeDecl, r *registry.Registry, p config.Params) (node.Node, error) {
	logger := ctxlog.FromContext(ctx)
	n, err := r.NewNode(decl.Type, decl.Name, p)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", decl.Name, err)
	}

	for _, a := range decl.Links {
		target := localParameter(n, a.Param)
		if target < 0 {
			return nil, fmt.Errorf("node %q (%s): %w %q", decl.Name, decl.Type, ErrUnknownParameter, a.Param)
		}
		n.Par(target).SetLinkTo(a.Link)
	}

	logger.Debug("Built node.", "type", decl.Type, "name", decl.Name, "overrides", len(decl.Links))
	return n, nil
}

// localParameter finds a parameter by its unqualified name, -1 if absent.
func localParameter(n node.Node, local string) int {
	for i := 0; i < n.ParameterCount(); i++ {
		if n.Par(i).Name() == local {
			return i
		}
	}
	return -1
}
