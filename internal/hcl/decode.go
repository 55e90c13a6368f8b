package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/paramid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	nodeBlock  = "node"
	groupBlock = "group"
)

var elementSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: nodeBlock, LabelNames: []string{"type", "name"}},
		{Type: groupBlock, LabelNames: []string{"name"}},
	},
}

// decodeElements reads node and group blocks in source order.
func decodeElements(ctx context.Context, body hcl.Body, evalCtx *hcl.EvalContext) ([]*config.Element, error) {
	content, diags := body.Content(elementSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	elements := make([]*config.Element, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		switch block.Type {
		case nodeBlock:
			decl, err := decodeNode(ctx, block, evalCtx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, &config.Element{Node: decl})
		case groupBlock:
			name := block.Labels[0]
			if err := paramid.ValidateInstance(name); err != nil {
				return nil, fmt.Errorf("%s: group: %w", block.DefRange, err)
			}
			children, err := decodeElements(ctx, block.Body, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in group %q: %w", name, err)
			}
			elements = append(elements, &config.Element{Group: &config.GroupDecl{Name: name, Elements: children}})
		}
	}
	return elements, nil
}

func decodeNode(ctx context.Context, block *hcl.Block, evalCtx *hcl.EvalContext) (*config.NodeDecl, error) {
	logger := ctxlog.FromContext(ctx)
	decl := &config.NodeDecl{Type: block.Labels[0], Name: block.Labels[1]}
	if err := paramid.ValidateInstance(decl.Name); err != nil {
		return nil, fmt.Errorf("%s: node %q: %w", block.DefRange, decl.Type, err)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("node %q %q: %w", decl.Type, decl.Name, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %q %q: %w", decl.Type, decl.Name, diags)
		}
		link, err := linkFromValue(val)
		if err != nil {
			return nil, fmt.Errorf("%s: node %q %q, attribute %q: %w", attr.Range, decl.Type, decl.Name, attr.Name, err)
		}
		decl.Links = append(decl.Links, config.Assignment{Param: attr.Name, Link: link})
	}

	logger.Debug("Decoded node block.", "type", decl.Type, "name", decl.Name, "links", len(decl.Links))
	return decl, nil
}

// linkFromValue maps a number to a value link and a string to a reference.
func linkFromValue(val cty.Value) (param.Link, error) {
	if val.IsNull() || !val.IsKnown() {
		return param.Link{}, fmt.Errorf("value must be known and not null")
	}
	switch val.Type() {
	case cty.Number:
		var f float32
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return param.Link{}, err
		}
		return param.Value(f), nil
	case cty.String:
		target := val.AsString()
		if _, err := paramid.Parse(target); err != nil {
			return param.Link{}, fmt.Errorf("invalid reference: %w", err)
		}
		return param.Reference(target), nil
	default:
		return param.Link{}, fmt.Errorf("expected a number or a parameter name, got %s", val.Type().FriendlyName())
	}
}
