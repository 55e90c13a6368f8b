package units

import (
	"math"

	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/node"
	"github.com/vk/phisynth/internal/param"
)

const (
	DampedOscillatorType = "DO"
	PowerOscillatorType  = "PwO"

	twoPi float32 = 2 * math.Pi
)

// DampedOscillator is a driven damped harmonic oscillator integrated with one
// semi-implicit Euler step per tick. x is the position output and y the
// quadrature (velocity) output; xs and ys are per-sample forcing terms.
type DampedOscillator struct {
	node.Base
	frequency, x, xs, y, ys, damp *param.Parameter
	dt                            float32
}

// NewDampedOscillator returns an oscillator at 440 Hz starting from x=1.
func NewDampedOscillator(instance string, p config.Params) *DampedOscillator {
	o := &DampedOscillator{
		frequency: param.New("frequency", 440),
		x:         param.New("x", 1),
		xs:        param.New("xs", 0),
		y:         param.New("y", 0),
		ys:        param.New("ys", 0),
		damp:      param.New("damp", 1),
		dt:        p.DT(),
	}
	o.Base = node.NewBase(DampedOscillatorType, instance, o.frequency, o.x, o.xs, o.y, o.ys, o.damp)
	return o
}

func (o *DampedOscillator) Run() {
	omega := twoPi * o.frequency.Get()
	o.x.Set(o.x.Get() + o.y.Get()*omega*o.dt + o.ys.Get()*o.dt)
	y := o.y.Get()
	o.y.Set(y - (o.x.Get()+2*o.damp.Get()*y)*omega*o.dt + o.xs.Get()*o.dt)
}

// PowerOscillator replaces the linear restoring force of DampedOscillator
// with a normalised, sign-preserving power law, measured in a frame rotated
// by alpha half-turns.
type PowerOscillator struct {
	node.Base
	frequency, x, xs, y, ys, damp, power, alpha *param.Parameter
	dt                                          float32
}

// NewPowerOscillator returns a power oscillator with a linear law (power 0).
func NewPowerOscillator(instance string, p config.Params) *PowerOscillator {
	o := &PowerOscillator{
		frequency: param.New("frequency", 440),
		x:         param.New("x", 1),
		xs:        param.New("xs", 0),
		y:         param.New("y", 0),
		ys:        param.New("ys", 0),
		damp:      param.New("damp", 1),
		power:     param.New("power", 0),
		alpha:     param.New("alpha", 0),
		dt:        p.DT(),
	}
	o.Base = node.NewBase(PowerOscillatorType, instance,
		o.frequency, o.x, o.xs, o.y, o.ys, o.damp, o.power, o.alpha)
	return o
}

// minForceNorm keeps the force normalisation away from zero.
const minForceNorm = 0.01

func (o *PowerOscillator) Run() {
	omega := float64(twoPi * o.frequency.Get())
	dt := float64(o.dt)
	x, y := float64(o.x.Get()), float64(o.y.Get())
	power := float64(o.power.Get())

	sa, ca := math.Sincos(float64(o.alpha.Get()) * math.Pi)
	wx := x*ca + y*sa
	wy := y*ca - x*sa
	pwx := signedPow(wx, power)
	pwy := signedPow(wy, power)
	n := math.Max(math.Hypot(pwx, pwy), minForceNorm)
	gx := (pwx*ca - pwy*sa) / n
	gy := (pwx*sa + pwy*ca) / n

	o.x.Set(float32(x + gy*omega*dt + float64(o.ys.Get())*dt))
	o.y.Set(float32(y - (gx+2*float64(o.damp.Get())*y)*omega*dt + float64(o.xs.Get())*dt))
}

// signedPow returns x*|x|^p. Magnitudes below the threshold map to zero so
// negative exponents never produce infinities.
func signedPow(x, p float64) float64 {
	const threshold = 1e-12
	ax := math.Abs(x)
	if ax < threshold {
		return 0
	}
	return x * math.Pow(ax, p)
}
