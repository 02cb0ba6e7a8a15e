package paramsurf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrUnknownSurface is returned when a surface name is not present in a Catalog.
	ErrUnknownSurface = errors.New("unknown surface")
	// ErrInvalidDomain is returned for a parameter domain that can not be traversed.
	ErrInvalidDomain = errors.New("invalid parameter domain")
)

// DefaultScale is the display scale most catalog surfaces are tuned around.
const DefaultScale = 50

// Params are the shape constants of a surface. Not every surface uses all of them.
type Params struct {
	A, B, C, D float64
}

// Domain is the range over which a surface parameter is sampled.
// Sampling starts at Begin and adds Step while the value is not greater than End.
type Domain struct {
	Begin float64 `json:"begin" yaml:"begin" toml:"begin"`
	End   float64 `json:"end" yaml:"end" toml:"end"`
	Step  float64 `json:"step" yaml:"step" toml:"step"`
}

// MaxSamples is the largest number of steps a Domain may span.
const MaxSamples = 1 << 16

// Validate returns a non-nil error if the domain can not be traversed in a finite
// number of steps. The step must advance the parameter at both bounds and the
// domain may span at most MaxSamples steps.
func (d Domain) Validate() error {
	switch {
	case math.IsNaN(d.Step) || d.Step <= 0:
		return fmt.Errorf("%w: step %g must be positive", ErrInvalidDomain, d.Step)
	case math.IsNaN(d.Begin) || math.IsInf(d.Begin, 0):
		return fmt.Errorf("%w: non-finite begin %g", ErrInvalidDomain, d.Begin)
	case math.IsNaN(d.End) || math.IsInf(d.End, 0):
		return fmt.Errorf("%w: non-finite end %g", ErrInvalidDomain, d.End)
	case d.Begin > d.End:
		return nil // empty.
	case d.Begin+d.Step == d.Begin || d.End+d.Step == d.End:
		return fmt.Errorf("%w: step %g too small to advance from %g to %g", ErrInvalidDomain, d.Step, d.Begin, d.End)
	case (d.End-d.Begin)/d.Step > MaxSamples:
		return fmt.Errorf("%w: %g to %g by %g exceeds %d samples", ErrInvalidDomain, d.Begin, d.End, d.Step, MaxSamples)
	}
	return nil
}

// Samples returns the number of values visited when walking the domain from
// Begin to End inclusive. It returns 0 for empty or invalid domains.
func (d Domain) Samples() int {
	return d.count(d.End)
}

// gridSamples is like Samples but the end bound is relaxed by half a step
// so that accumulated rounding does not drop the last grid line.
func (d Domain) gridSamples() int {
	return d.count(d.End + d.Step/2)
}

func (d Domain) count(end float64) (n int) {
	if d.Validate() != nil {
		return 0
	}
	for x := d.Begin; x <= end; x += d.Step {
		n++
	}
	return n
}

// Component evaluates one coordinate of a surface at (u,v).
type Component func(p Params, u, v float64) float64

// Evaluator evaluates all three coordinates of a surface at (u,v).
type Evaluator func(p Params, u, v float64) r3.Vec

// Surface is an immutable parametric surface definition. The zero value is
// not usable; obtain surfaces from a Catalog or with NewSurface.
type Surface struct {
	kind   Kind
	name   string
	params Params
	u, v   Domain
	scale  float64
	eval   Evaluator
	// combined is set for surfaces defined by a single evaluator instead of
	// three component functions. Only used for reporting.
	combined bool
}

// NewSurface creates a user defined surface from three component functions.
func NewSurface(name string, p Params, u, v Domain, scale float64, fx, fy, fz Component) (Surface, error) {
	if fx == nil || fy == nil || fz == nil {
		return Surface{}, errors.New("nil surface component")
	}
	s := Surface{kind: Custom, name: name, params: p, u: u, v: v, scale: scale, eval: componentwise(fx, fy, fz)}
	return s, s.validate()
}

// NewSurfaceXYZ creates a user defined surface from a single evaluator.
func NewSurfaceXYZ(name string, p Params, u, v Domain, scale float64, fxyz Evaluator) (Surface, error) {
	if fxyz == nil {
		return Surface{}, errors.New("nil surface evaluator")
	}
	s := Surface{kind: Custom, name: name, params: p, u: u, v: v, scale: scale, eval: fxyz, combined: true}
	return s, s.validate()
}

func (s Surface) validate() error {
	if err := s.u.Validate(); err != nil {
		return fmt.Errorf("surface %q u: %w", s.name, err)
	}
	if err := s.v.Validate(); err != nil {
		return fmt.Errorf("surface %q v: %w", s.name, err)
	}
	if s.scale < 0 || math.IsNaN(s.scale) {
		return fmt.Errorf("surface %q: bad scale %g", s.name, s.scale)
	}
	return nil
}

// Point evaluates the surface at (u,v). Results are not guarded against
// NaN or infinities, which some rational surfaces produce for part of their domain.
func (s Surface) Point(u, v float64) r3.Vec {
	if s.eval == nil {
		return r3.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return s.eval(s.params, u, v)
}

// Kind returns the catalog kind of the surface, or Custom for user surfaces.
func (s Surface) Kind() Kind { return s.kind }

func (s Surface) Name() string { return s.name }

func (s Surface) Params() Params { return s.params }

// U returns the sampling domain of the first parameter.
func (s Surface) U() Domain { return s.u }

// V returns the sampling domain of the second parameter.
func (s Surface) V() Domain { return s.v }

// Scale is the display scale the surface was tuned for.
func (s Surface) Scale() float64 { return s.scale }

// IsZero reports whether s is the zero Surface.
func (s Surface) IsZero() bool { return s.eval == nil }

func (s Surface) String() string { return s.name }

// SurfaceInfo describes a surface in a serializable form.
type SurfaceInfo struct {
	ID       int     `json:"id" yaml:"id" toml:"id"`
	Name     string  `json:"name" yaml:"name" toml:"name"`
	A        float64 `json:"A" yaml:"A" toml:"A"`
	B        float64 `json:"B" yaml:"B" toml:"B"`
	C        float64 `json:"C" yaml:"C" toml:"C"`
	D        float64 `json:"D" yaml:"D" toml:"D"`
	U        Domain  `json:"u" yaml:"u" toml:"u"`
	V        Domain  `json:"v" yaml:"v" toml:"v"`
	Scale    float64 `json:"scale" yaml:"scale" toml:"scale"`
	Combined bool    `json:"combined" yaml:"combined" toml:"combined"`
}

// Info returns a description of the surface.
func (s Surface) Info() SurfaceInfo {
	return SurfaceInfo{
		ID:       int(s.kind),
		Name:     s.name,
		A:        s.params.A,
		B:        s.params.B,
		C:        s.params.C,
		D:        s.params.D,
		U:        s.u,
		V:        s.v,
		Scale:    s.scale,
		Combined: s.combined,
	}
}

func componentwise(fx, fy, fz Component) Evaluator {
	return func(p Params, u, v float64) r3.Vec {
		return r3.Vec{X: fx(p, u, v), Y: fy(p, u, v), Z: fz(p, u, v)}
	}
}
