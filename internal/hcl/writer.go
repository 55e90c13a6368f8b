package hcl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/param"
	"github.com/zclconf/go-cty/cty"
)

// Writer is the HCL-specific implementation of the config.Writer interface.
type Writer struct{}

// NewWriter creates a new HCL patch writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write emits p as a patch file that Load reads back to an equal Patch.
func (wr *Writer) Write(w io.Writer, p *config.Patch) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if p.Description != "" {
		body.SetAttributeValue("description", cty.StringVal(p.Description))
		body.AppendNewline()
	}
	if err := writeElements(body, p.Elements); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// Write is a shorthand for NewWriter().Write.
func Write(w io.Writer, p *config.Patch) error {
	return NewWriter().Write(w, p)
}

func writeElements(body *hclwrite.Body, elements []*config.Element) error {
	for i, e := range elements {
		if i > 0 {
			body.AppendNewline()
		}
		switch {
		case e.Node != nil:
			block := body.AppendNewBlock(nodeBlock, []string{e.Node.Type, e.Node.Name})
			for _, a := range e.Node.Links {
				if !hclsyntax.ValidIdentifier(a.Param) {
					return fmt.Errorf("node %q: parameter %q is not a valid HCL identifier", e.Node.Name, a.Param)
				}
				val, err := linkToValue(a.Link)
				if err != nil {
					return fmt.Errorf("node %q, parameter %q: %w", e.Node.Name, a.Param, err)
				}
				block.Body().SetAttributeValue(a.Param, val)
			}
		case e.Group != nil:
			block := body.AppendNewBlock(groupBlock, []string{e.Group.Name})
			if err := writeElements(block.Body(), e.Group.Elements); err != nil {
				return err
			}
		}
	}
	return nil
}

// linkToValue writes defaults with the shortest decimal that reads back to
// the same float32.
func linkToValue(l param.Link) (cty.Value, error) {
	if !l.IsValue() {
		return cty.StringVal(l.Target()), nil
	}
	return cty.ParseNumberVal(strconv.FormatFloat(float64(l.Default()), 'g', -1, 32))
}
