package units

import (
	"math"

	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
)

const (
	AbsType            = "ABS"
	DoubleAbsType      = "DABS"
	AmplitudePhaseType = "AP"
)

// Abs rectifies its input: out = |inp|.
type Abs struct {
	node.Base
	inp, out *param.Parameter
}

func NewAbs(instance string) *Abs {
	a := &Abs{inp: param.New("inp", 0), out: param.New("out", 0)}
	a.Base = node.NewBase(AbsType, instance, a.inp, a.out)
	return a
}

func (a *Abs) Run() {
	a.out.Set(abs32(a.inp.Get()))
}

// DoubleAbs outputs the difference of magnitudes: out = |x| - |y|.
type DoubleAbs struct {
	node.Base
	x, y, out *param.Parameter
}

func NewDoubleAbs(instance string) *DoubleAbs {
	d := &DoubleAbs{x: param.New("x", 0), y: param.New("y", 0), out: param.New("out", 0)}
	d.Base = node.NewBase(DoubleAbsType, instance, d.x, d.y, d.out)
	return d
}

func (d *DoubleAbs) Run() {
	d.out.Set(abs32(d.x.Get()) - abs32(d.y.Get()))
}

// AmplitudePhase converts a quadrature pair to polar form. phase is the
// angle in quarter-turns, so it spans (-2, 2].
type AmplitudePhase struct {
	node.Base
	x, y, amplitude, phase *param.Parameter
}

func NewAmplitudePhase(instance string) *AmplitudePhase {
	a := &AmplitudePhase{
		x:         param.New("x", 0),
		y:         param.New("y", 0),
		amplitude: param.New("amplitude", 0),
		phase:     param.New("phase", 0),
	}
	a.Base = node.NewBase(AmplitudePhaseType, instance, a.x, a.y, a.amplitude, a.phase)
	return a
}

func (a *AmplitudePhase) Run() {
	x, y := float64(a.x.Get()), float64(a.y.Get())
	a.amplitude.Set(float32(math.Hypot(x, y)))
	a.phase.Set(float32(math.Atan2(y, x) / (math.Pi / 2)))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
