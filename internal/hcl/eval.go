package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/phisynth/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func newEvalContext(p config.Params) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"sample_rate": cty.NumberIntVal(int64(p.SampleRate)),
			"dt":          cty.NumberFloatVal(float64(p.DT())),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"pow":   stdlib.PowFunc,
		},
	}
}
