package units

import (
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
)

const (
	// OutputType is the type name of the output tap.
	OutputType = "Output"
	// OutputName is the qualified name the engine resolves as the graph output.
	OutputName = "OUT"
)

// Output is the graph's externally observable tap. Its single parameter is
// named with the bare qualified name "OUT", whatever the instance name.
type Output struct {
	node.Base
}

// NewOutput returns an Output whose OUT parameter defaults to 0.
func NewOutput(instance string) *Output {
	if instance == "" {
		instance = OutputType
	}
	return &Output{Base: node.NewBase(OutputType, instance, param.New(OutputName, 0))}
}

func (o *Output) ParameterName(i int) string {
	return o.Par(i).Name()
}

// Run does nothing; the tap only exists to be aliased.
func (o *Output) Run() {}
