package units

import (
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/registry"
)

// Module registers every variant in this package.
type Module struct{}

func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Variant{
		Type:        OutputType,
		Prefix:      "Output",
		Description: "graph output tap (OUT)",
		New:         func(instance string, _ config.Params) node.Node { return NewOutput(instance) },
	})
	r.Register(&registry.Variant{
		Type:        DampedOscillatorType,
		Prefix:      "Osc",
		Description: "damped harmonic oscillator",
		New:         func(instance string, p config.Params) node.Node { return NewDampedOscillator(instance, p) },
	})
	r.Register(&registry.Variant{
		Type:        PowerOscillatorType,
		Prefix:      "PwOsc",
		Description: "power-law oscillator",
		New:         func(instance string, p config.Params) node.Node { return NewPowerOscillator(instance, p) },
	})
	r.Register(&registry.Variant{
		Type:        AbsType,
		Prefix:      "Abs",
		Description: "out = |inp|",
		New:         func(instance string, _ config.Params) node.Node { return NewAbs(instance) },
	})
	r.Register(&registry.Variant{
		Type:        DoubleAbsType,
		Prefix:      "DAbs",
		Description: "out = |x| - |y|",
		New:         func(instance string, _ config.Params) node.Node { return NewDoubleAbs(instance) },
	})
	r.Register(&registry.Variant{
		Type:        AmplitudePhaseType,
		Prefix:      "AmpPhase",
		Description: "amplitude and phase of (x, y)",
		New:         func(instance string, _ config.Params) node.Node { return NewAmplitudePhase(instance) },
	})
}
