package app

import (
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/units"
)

// DefaultPatch is played when no patch path is given: one lightly damped
// 440 Hz oscillator whose x drives the output.
func DefaultPatch() *config.Patch {
	return &config.Patch{
		Description: "default patch",
		Elements: []*config.Element{
			{Node: &config.NodeDecl{
				Type:  units.OutputType,
				Name:  units.OutputType,
				Links: []config.Assignment{{Param: engine.OutputName, Link: param.Reference("Osc: x")}},
			}},
			{Node: &config.NodeDecl{
				Type:  units.DampedOscillatorType,
				Name:  "Osc",
				Links: []config.Assignment{{Param: "damp", Link: param.Value(0.001)}},
			}},
		},
	}
}
