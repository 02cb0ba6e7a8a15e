package paramsurf

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind identifies a built-in surface.
type Kind int

// Built-in surfaces, in catalog order.
const (
	Ellipsoid Kind = iota
	Sphere1
	Sphere1Truncated
	Sphere2
	Torus1
	Torus2Tire
	Torus3Flattened
	Hyperboloid
	Cone
	BiHorn
	PseudoSphere1
	PseudoSphere2Half
	Helicoid1
	Helicoid2
	Katenoid
	MilkCarton
	MobiusRibbon1
	MobiusRibbon2
	KleinBottle
	LimpetTorus
	Figure8Torus
	BagulaTorus
	BagulaSaddleTorus
	TriaxialHexatorus
	TriaxialTritorus
	BowCurve
	Grid
	Wave
	ComplexWave
	Shell1
	Shell2
	Paraboloid
	SteinbachScrew1
	SteinbachScrew2
	Corkscrew
	Trianguloid
	Kidney
	MaedersOwl
	AstroidalEllipsoid
	Lemniscate
	MolluscShell
	GreatSpring
	GreatSphere
	GreatCreature
	Rose
	numKinds
)

// Custom is the kind of surfaces created with NewSurface and NewSurfaceXYZ.
const Custom Kind = -1

// String returns the catalog name of the surface kind.
func (k Kind) String() string {
	if k == Custom {
		return "custom"
	}
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return builtins[k].name
}

// Catalog is a read-only table of named surfaces.
type Catalog struct {
	surfaces []Surface
	byName   map[string]int
}

// DefaultCatalog returns a catalog with every built-in surface.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinSurfaces()...)
	if err != nil {
		panic(err) // built-in table is static
	}
	return c
}

// NewCatalog builds a catalog from surfaces. Names must be unique.
func NewCatalog(surfaces ...Surface) (*Catalog, error) {
	c := &Catalog{
		surfaces: make([]Surface, 0, len(surfaces)),
		byName:   make(map[string]int, len(surfaces)),
	}
	for _, s := range surfaces {
		if s.IsZero() {
			return nil, fmt.Errorf("zero surface at catalog position %d", len(c.surfaces))
		}
		if _, dup := c.byName[s.name]; dup {
			return nil, fmt.Errorf("duplicate surface name %q", s.name)
		}
		c.byName[s.name] = len(c.surfaces)
		c.surfaces = append(c.surfaces, s)
	}
	return c, nil
}

// Len returns the number of surfaces in the catalog.
func (c *Catalog) Len() int { return len(c.surfaces) }

// Names returns the surface names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.surfaces))
	for i := range c.surfaces {
		names[i] = c.surfaces[i].name
	}
	return names
}

// At returns the i'th surface of the catalog.
func (c *Catalog) At(i int) Surface { return c.surfaces[i] }

// First returns the first surface of the catalog, the initial selection of a session.
func (c *Catalog) First() Surface {
	if len(c.surfaces) == 0 {
		return Surface{}
	}
	return c.surfaces[0]
}

// Lookup returns the surface with the given name.
func (c *Catalog) Lookup(name string) (Surface, error) {
	i, ok := c.byName[name]
	if !ok {
		return Surface{}, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
	return c.surfaces[i], nil
}

// Select returns the surface named name. When the name is not in the catalog
// a warning is logged and prev is returned unchanged along with an error
// wrapping ErrUnknownSurface.
func (c *Catalog) Select(prev Surface, name string) (Surface, error) {
	s, err := c.Lookup(name)
	if err != nil {
		slog.Warn("surface not found, selection unchanged", slog.String("name", name), slog.String("current", prev.name))
		return prev, err
	}
	return s, nil
}

// Shape helpers shared by catalog entries.
const (
	pi     = math.Pi
	tau    = 2 * pi
	twoTau = 2 * tau
	halfPi = pi / 2
)

var (
	cos   = math.Cos
	sin   = math.Sin
	tan   = math.Tan
	cosh  = math.Cosh
	sinh  = math.Sinh
	tanh  = math.Tanh
	sqrt  = math.Sqrt
	pow   = math.Pow
	abs   = math.Abs
	exp   = math.Exp
	floor = math.Floor
)

func cos2(x float64) float64 { c := cos(x); return c * c }

func square(x float64) float64 { return x * x }

// power is pow extended to odd roots of negative bases.
func power(b, e float64) float64 {
	if b >= 0 || floor(e) == e {
		return pow(b, e)
	}
	return -pow(-b, e)
}

// mod2 is a floored modulo that maps into (0, b].
func mod2(a, b float64) float64 {
	c := math.Mod(a, b)
	if c > 0 {
		return c
	}
	return c + b
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x // keeps ±0 and NaN
}

type definition struct {
	name   string
	params Params
	u, v   Domain
	scale  float64
	fx     Component
	fy     Component
	fz     Component
	fxyz   Evaluator
}

func builtinSurfaces() []Surface {
	surfaces := make([]Surface, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		def := &builtins[k]
		s := Surface{
			kind:   k,
			name:   def.name,
			params: def.params,
			u:      def.u,
			v:      def.v,
			scale:  def.scale,
		}
		if def.fxyz != nil {
			s.eval = def.fxyz
			s.combined = true
		} else {
			s.eval = componentwise(def.fx, def.fy, def.fz)
		}
		surfaces[k] = s
	}
	return surfaces
}

var (
	ellipsoidX = func(p Params, u, v float64) float64 { return p.A * cos(u) * cos(v) }
	ellipsoidY = func(p Params, u, v float64) float64 { return p.B * cos(u) * sin(v) }
	ellipsoidZ = func(p Params, u, v float64) float64 { return p.C * sin(u) }

	torusX = func(p Params, u, v float64) float64 { return (p.A + p.B*cos(u)) * cos(v) }
	torusY = func(p Params, u, v float64) float64 { return (p.A + p.B*cos(u)) * sin(v) }
	torusZ = func(p Params, u, v float64) float64 { return p.C * sin(u) }

	pseudoX = func(p Params, u, v float64) float64 { return cos(u) / cosh(v) }
	pseudoY = func(p Params, u, v float64) float64 { return sin(u) / cosh(v) }
	pseudoZ = func(p Params, u, v float64) float64 { return v - tanh(v) }

	helicoidX = func(p Params, u, v float64) float64 { return cos(p.A)*cos(v)*cosh(u) + sin(p.A)*sin(v)*sinh(u) }
	helicoidY = func(p Params, u, v float64) float64 { return cos(p.B)*sin(v)*cosh(u) - sin(p.B)*cos(v)*sinh(u) }
	helicoidZ = func(p Params, u, v float64) float64 { return cos(p.C)*u + sin(p.C)*v }

	shellX = func(p Params, u, v float64) float64 {
		return p.B*(1-(u/tau))*cos(p.A*u)*(1+cos(v)) + p.C*cos(p.A*u)
	}
	shellY = func(p Params, u, v float64) float64 {
		return p.B*(1-(u/tau))*sin(p.A*u)*(1+cos(v)) + p.C*sin(p.A*u)
	}
	shellZ = func(p Params, u, v float64) float64 { return p.D*(u/tau) + p.A*(1-(u/tau))*sin(v) }

	steinbachX = func(p Params, u, v float64) float64 { return u * cos(v) }
	steinbachY = func(p Params, u, v float64) float64 { return u * sin(p.A*v) }
	steinbachZ = func(p Params, u, v float64) float64 { return v * cos(u) }

	planeX = func(p Params, u, v float64) float64 { return u }
	planeY = func(p Params, u, v float64) float64 { return v }
)

// bagulaC is the saddle profile of the Roger Bagula saddle torus.
func bagulaC(p Params, s float64) float64 {
	return 1 - cos2(s) - cos2(s+tau/p.B)
}

// roseXYZ is the petal surface of the Rose entry. x1 is the radial petal
// coordinate and theta the spiral angle.
func roseXYZ(p Params, x1, theta float64) r3.Vec {
	phi := halfPi * exp(-theta/(8*pi))
	y1 := 1.9565284531299512 * square(x1) * square(1.2768869870150188*x1-1) * sin(phi)
	X := 1 - square(1.25*square(1-mod2(3.6*theta, 2*pi)/pi)-0.25)/2
	r := X * (x1*sin(phi) + y1*cos(phi))
	return r3.Vec{
		X: r * sin(theta),
		Y: r * cos(theta),
		Z: X * (x1*cos(phi) - y1*sin(phi)),
	}
}

var builtins = [numKinds]definition{
	Ellipsoid: {
		name:   "Ellipsoid",
		params: Params{A: 6, B: 3, C: 2},
		u:      Domain{-pi / 2, pi / 2, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale,
		fx:     ellipsoidX,
		fy:     ellipsoidY,
		fz:     ellipsoidZ,
	},
	Sphere1: {
		name:   "Sphere 1",
		params: Params{A: 4, B: 4, C: 4.5},
		u:      Domain{-pi / 2, pi / 2, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale,
		fx:     ellipsoidX,
		fy:     ellipsoidY,
		fz:     ellipsoidZ,
	},
	Sphere1Truncated: {
		name:   "Sphere 1 (truncated)",
		params: Params{A: 4, B: 4, C: 4.5},
		u:      Domain{-pi / 2, 1, 0.2},
		v:      Domain{-pi, 1, 0.2},
		scale:  DefaultScale,
		fx:     ellipsoidX,
		fy:     ellipsoidY,
		fz:     ellipsoidZ,
	},
	Sphere2: {
		name:   "Sphere 2",
		params: Params{A: 2, B: 1},
		u:      Domain{-pi / 2, pi / 2, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return p.A * (sin(v) * sin(u)) },
		fy:     func(p Params, u, v float64) float64 { return p.A * (p.B * cos(v)) },
		fz:     func(p Params, u, v float64) float64 { return p.A * (sin(v) * cos(u)) },
	},
	Torus1: {
		name:   "Torus 1",
		params: Params{A: 6, B: 3, C: 3},
		u:      Domain{-pi, pi, 0.4},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     torusX,
		fy:     torusY,
		fz:     torusZ,
	},
	Torus2Tire: {
		name:   "Torus 2 (tire)",
		params: Params{A: 6, B: 3, C: 3},
		u:      Domain{-pi / 2, pi / 2, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     torusX,
		fy:     torusY,
		fz:     torusZ,
	},
	Torus3Flattened: {
		name:   "Torus 3 (flattened)",
		params: Params{A: 6, B: 3, C: 3},
		u:      Domain{-pi, pi, 0.4},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     torusX,
		fy:     torusY,
		fz:     func(p Params, u, v float64) float64 { return p.B * sin(v) },
	},
	Hyperboloid: {
		name:   "Hyperboloid",
		params: Params{A: 1, B: 1, C: 1},
		u:      Domain{-pi / 2, pi / 2, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale,
		fx:     planeX,
		fy:     planeY,
		fz:     func(p Params, u, v float64) float64 { return u*u - v*v },
	},
	Cone: {
		name:   "Cone",
		params: Params{A: pi / 6, B: 1, C: 1},
		u:      Domain{-1, 2.6, 0.2},
		v:      Domain{-2, 0, 0.2},
		scale:  DefaultScale * 4,
		fx:     func(p Params, u, v float64) float64 { return v * cos(u) * sin(p.A) },
		fy:     func(p Params, u, v float64) float64 { return v * sin(u) * sin(p.A) },
		fz:     func(p Params, u, v float64) float64 { return v * cos(p.A) },
	},
	BiHorn: {
		name:   "Bi-horn",
		params: Params{A: 1, B: 1, C: 1},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-pi, pi, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return (2 - cos(v)) * cos(u) },
		fy:     func(p Params, u, v float64) float64 { return (2 - sin(v)) * cos(u) },
		fz:     func(p Params, u, v float64) float64 { return sin(u) },
	},
	PseudoSphere1: {
		name:   "Pseudo-sphere 1",
		params: Params{A: 1, B: 1, C: 1},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-3, 3, 0.1},
		scale:  DefaultScale * 3,
		fx:     pseudoX,
		fy:     pseudoY,
		fz:     pseudoZ,
	},
	PseudoSphere2Half: {
		name:   "Pseudo-sphere 2 (half)",
		params: Params{A: 1, B: 1, C: 1},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{0, 4, 0.2},
		scale:  DefaultScale * 3,
		fx:     pseudoX,
		fy:     pseudoY,
		fz:     pseudoZ,
	},
	Helicoid1: {
		name:   "Helicoid 1",
		params: Params{A: pi / 2, B: pi / 2, C: pi / 2},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     helicoidX,
		fy:     helicoidY,
		fz:     helicoidZ,
	},
	Helicoid2: {
		name:   "Helicoid 2",
		params: Params{A: pi / 2, B: pi, C: pi / 2},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     helicoidX,
		fy:     helicoidY,
		fz:     helicoidZ,
	},
	Katenoid: {
		name:   "Katenoid",
		params: Params{A: 6, B: 6, C: 6},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     helicoidX,
		fy:     helicoidY,
		fz:     helicoidZ,
	},
	MilkCarton: {
		name:   `Milk carton (in french "Berlingot")`,
		params: Params{A: 1, B: 2},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     func(p Params, u, v float64) float64 { return p.B * p.A * (1 + u) * cos(v) },
		fy:     func(p Params, u, v float64) float64 { return p.B * p.A * (1 - u) * sin(v) },
		fz:     func(p Params, u, v float64) float64 { return p.A * u },
	},
	MobiusRibbon1: {
		name:   "Möbius ribbon v1",
		params: Params{A: 6, B: 6},
		u:      Domain{-pi, pi, 0.2},
		v:      Domain{-pi, pi, 0.2},
		scale:  DefaultScale / 2,
		fx:     func(p Params, u, v float64) float64 { return (p.A + u*cos(v/2)) * cos(v) },
		fy:     func(p Params, u, v float64) float64 { return (p.B + u*cos(v/2)) * sin(v) },
		fz:     func(p Params, u, v float64) float64 { return p.C + u*sin(v/2) },
	},
	MobiusRibbon2: {
		name:   "Möbius ribbon v2",
		params: Params{A: 1},
		u:      Domain{0, 8 * pi, 0.2},
		v:      Domain{-2, 2, 0.2},
		scale:  DefaultScale,
		fx:     func(p Params, u, v float64) float64 { return sin(u) * (-2 + v*sin(u/2)) },
		fy:     func(p Params, u, v float64) float64 { return cos(u) * (-2 + v*sin(u/2)) },
		fz:     func(p Params, u, v float64) float64 { return v * cos(u/2) },
	},
	// https://blender.stackexchange.com/questions/18955/modelling-a-klein-bottle
	KleinBottle: {
		name:  "Klein bottle",
		u:     Domain{0, pi, 0.05},
		v:     Domain{0, tau, 0.1},
		scale: DefaultScale * 2,
		fx: func(p Params, u, v float64) float64 {
			cu, su := cos(u), sin(u)
			return -2. / 15 * cu * (3*cos(v) - 30*su + 90*pow(cu, 4)*su - 60*pow(cu, 6)*su + 5*cu*cos(v)*su)
		},
		fy: func(p Params, u, v float64) float64 {
			cu, su, cv := cos(u), sin(u), cos(v)
			return -1. / 15 * su * (3*cv - 3*cu*cu*cv - 48*pow(cu, 4)*cv + 48*pow(cu, 6)*cv - 60*su +
				5*cu*cv*su - 5*pow(cu, 3)*cv*su - 80*pow(cu, 5)*cv*su + 80*pow(cu, 7)*cv*su)
		},
		fz: func(p Params, u, v float64) float64 { return 2. / 15 * (3 + 5*cos(u)*sin(u)) * sin(v) },
	},
	// http://paulbourke.net/geometry/toroidal/
	LimpetTorus: {
		name:   "Limpet Torus",
		params: Params{A: 2},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-pi, pi, 0.1},
		scale:  DefaultScale * 1.5,
		fx:     func(p Params, u, v float64) float64 { return cos(u) / (sqrt(p.A) + sin(v)) },
		fy:     func(p Params, u, v float64) float64 { return sin(u) / (sqrt(p.A) + sin(v)) },
		fz:     func(p Params, u, v float64) float64 { return 1 / (sqrt(p.A) + cos(v)) },
	},
	Figure8Torus: {
		name:   "Figure 8 Torus by Paul Bourke",
		params: Params{C: pow(2, 1./4)},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-pi, pi, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return cos(u) * (p.C + sin(v)*cos(u) - sin(2*v)*sin(u)/2) },
		fy:     func(p Params, u, v float64) float64 { return sin(u) * (p.C + sin(v)*cos(u) - sin(2*v)*sin(u)/2) },
		fz:     func(p Params, u, v float64) float64 { return sin(u)*sin(v) + cos(u)*sin(2*v)/2 },
	},
	BagulaTorus: {
		name:   "Torus by Roger Bagula",
		params: Params{A: pow(2, 1./4)},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-pi, pi, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return cos(u) * (p.A + cos(v)) },
		fy:     func(p Params, u, v float64) float64 { return sin(u) * (p.A + sin(v)) },
		fz:     func(p Params, u, v float64) float64 { return sqrt(square(u/pi) + square(v/pi)) },
	},
	BagulaSaddleTorus: {
		name:   "Saddle torus by Roger Bagula",
		params: Params{A: 2, B: 3},
		u:      Domain{0, tau, 0.1},
		v:      Domain{0, tau, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return (p.A + cos(u)) * cos(v) },
		fy:     func(p Params, u, v float64) float64 { return (p.A + cos(u+tau/p.B)) * cos(v+tau/p.B) },
		fz: func(p Params, u, v float64) float64 {
			cu, cv := bagulaC(p, u), bagulaC(p, v)
			return (p.A + sign(cu)*sqrt(abs(cu))) * sign(cv) * sqrt(abs(cv))
		},
	},
	TriaxialHexatorus: {
		name:   "Triaxial Hexatorus",
		params: Params{A: 2, B: 3},
		u:      Domain{0, tau, 0.1},
		v:      Domain{0, tau, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return sin(u) / (sqrt(p.A) + cos(v)) },
		fy:     func(p Params, u, v float64) float64 { return sin(u+tau/p.B) / (math.Sqrt2 + cos(v+tau/p.B)) },
		fz:     func(p Params, u, v float64) float64 { return cos(u-tau/p.B) / (math.Sqrt2 + cos(v-tau/p.B)) },
	},
	TriaxialTritorus: {
		name:   "Triaxial Tritorus",
		params: Params{A: 1, B: 3},
		u:      Domain{-pi, pi, 0.1},
		v:      Domain{-pi, pi, 0.1},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return sin(u) * (p.A + cos(v)) },
		fy:     func(p Params, u, v float64) float64 { return sin(u+tau/p.B) * (1 + cos(v+tau/p.B)) },
		fz:     func(p Params, u, v float64) float64 { return sin(u+twoTau/p.B) * (1 + cos(v+twoTau/p.B)) },
	},
	BowCurve: {
		name:   "Bow Curve By Paul Bourke",
		params: Params{A: .7},
		u:      Domain{0, 1, 0.05},
		v:      Domain{0, 1, 0.01},
		scale:  DefaultScale,
		fx:     func(p Params, u, v float64) float64 { return (2 + p.A*sin(tau*u)) * sin(twoTau*v) },
		fy:     func(p Params, u, v float64) float64 { return (2 + p.A*sin(tau*u)) * cos(twoTau*v) },
		fz:     func(p Params, u, v float64) float64 { return p.A*cos(tau*u) + 3*cos(tau*v) },
	},
	Grid: {
		name:  "grid",
		u:     Domain{-10, 10, .5},
		v:     Domain{-10, 10, .5},
		scale: DefaultScale,
		fx:    planeX,
		fy:    planeY,
		fz:    func(p Params, u, v float64) float64 { return 0 },
	},
	Wave: {
		name:  "wave",
		u:     Domain{-10, 10, .5},
		v:     Domain{-10, 10, .5},
		scale: DefaultScale,
		fx:    planeX,
		fy:    planeY,
		fz:    func(p Params, u, v float64) float64 { return cos(sqrt(u*u + v*v)) },
	},
	ComplexWave: {
		name:  "complex wave",
		u:     Domain{-10, 10, .5},
		v:     Domain{-10, 10, .5},
		scale: DefaultScale,
		fx:    func(p Params, u, v float64) float64 { return .75 * v },
		fy:    func(p Params, u, v float64) float64 { return sin(u) * v },
		fz:    func(p Params, u, v float64) float64 { return cos(u) * cos(v) },
	},
	Shell1: {
		name:   "shell(1)",
		params: Params{A: .5, B: 1, C: 2, D: 3},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fx:     shellX,
		fy:     shellY,
		fz:     shellZ,
	},
	Shell2: {
		name:   "shell(2)",
		params: Params{A: 2, B: 0.5, C: .1, D: 1.5},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fx:     shellX,
		fy:     shellY,
		fz:     shellZ,
	},
	Paraboloid: {
		name:   "paraboloid",
		params: Params{A: pi},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fx:     func(p Params, u, v float64) float64 { return power(v/p.A, 0.5) * sin(u) },
		fy:     planeY,
		fz:     func(p Params, u, v float64) float64 { return power(v/p.A, 0.5) * cos(u) },
	},
	SteinbachScrew1: {
		name:   "steinbachScrew(1)",
		params: Params{A: 1},
		u:      Domain{-3, 3, .5},
		v:      Domain{-pi, pi, .1},
		scale:  DefaultScale,
		fx:     steinbachX,
		fy:     steinbachY,
		fz:     steinbachZ,
	},
	SteinbachScrew2: {
		name:   "steinbachScrew(2)",
		params: Params{A: 1},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale / 2,
		fx:     steinbachX,
		fy:     steinbachY,
		fz:     steinbachZ,
	},
	Corkscrew: {
		name:   "corkscrew",
		params: Params{A: 1},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fx:     func(p Params, u, v float64) float64 { return cos(u) * cos(v) },
		fy:     func(p Params, u, v float64) float64 { return sin(u) * cos(v) },
		fz:     func(p Params, u, v float64) float64 { return sin(v) + p.A*u },
	},
	Trianguloid: {
		name:   "trianguloid",
		params: Params{A: .5},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale * 2,
		fx:     func(p Params, u, v float64) float64 { return 0.75 * (sin(3*u) * 2 / (2 + cos(v))) },
		fy: func(p Params, u, v float64) float64 {
			return 0.75 * ((sin(u) + 2*p.A*sin(2*u)) * 2 / (2 + cos(v+tau)))
		},
		fz: func(p Params, u, v float64) float64 {
			return 0.75 * ((cos(u) - 2*p.A*cos(2*u)) * (2 + cos(v)) * ((2 + cos(v+tau/3)) * 0.25))
		},
	},
	Kidney: {
		name:   "kidney",
		params: Params{A: .1},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale * 2,
		fxyz: func(p Params, u, v float64) r3.Vec {
			u /= 2
			k := p.A*3*cos(v) - cos(3*v)
			return r3.Vec{X: cos(u) * k, Y: sin(u) * k, Z: 3*sin(v) - sin(3*v)}
		},
	},
	MaedersOwl: {
		name:   "maeders owl",
		params: Params{A: .1},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fx:     func(p Params, u, v float64) float64 { return 0.4 * (v*cos(u) - 0.5*p.A*power(v, 2)*cos(2*u)) },
		fy:     func(p Params, u, v float64) float64 { return 0.4 * (-v*sin(u) - 0.5*p.A*power(v, 2)*sin(2*u)) },
		fz:     func(p Params, u, v float64) float64 { return 0.4 * (4 * power(v, 1.5) * cos(3*u/2) / 3) },
	},
	AstroidalEllipsoid: {
		name:   "astroidal ellipsoid",
		params: Params{A: .5},
		u:      Domain{-10, 10, .5},
		v:      Domain{-10, 10, .5},
		scale:  DefaultScale,
		fxyz: func(p Params, u, v float64) r3.Vec {
			u /= 2
			return r3.Vec{
				X: 3 * power(cos(u)*cos(v), 3*p.A),
				Y: 3 * power(sin(u)*cos(v), 3*p.A),
				Z: 3 * power(sin(v), 3*p.A),
			}
		},
	},
	Lemniscate: {
		name:   "lemniscate",
		params: Params{A: 1.5},
		u:      Domain{-pi, pi, .1},
		v:      Domain{-pi, pi, .1},
		scale:  DefaultScale,
		fxyz: func(p Params, u, v float64) r3.Vec {
			u /= 2
			k := cos(v) * sqrt(abs(sin(2*p.A*u)))
			x := k * sin(u)
			y := k * sin(u)
			z := 3 * (power(x, 2) - power(y, 2) + 2*x*y*power(tan(v), 2))
			return r3.Vec{X: 3 * x, Y: 3 * y, Z: z}
		},
	},
	// https://echarts.apache.org/examples/en/editor.html?c=surface-mollusc-shell&gl=1
	MolluscShell: {
		name:   "mollusc-shell",
		params: Params{A: 1.16, B: 1, C: 2},
		u:      Domain{-pi, pi, pi / 40},
		v:      Domain{-15, 6, .21},
		scale:  DefaultScale,
		fxyz: func(p Params, u, v float64) r3.Vec {
			av := pow(p.A, v)
			return r3.Vec{
				X: av * cos(v) * (p.B + cos(u)),
				Y: -av * sin(v) * (p.B + cos(u)),
				Z: -p.C * av * (p.B + sin(u)),
			}
		},
	},
	GreatSpring: {
		name:   "great spring",
		params: Params{A: 0.25, B: 75, C: 2},
		u:      Domain{0, 1, 1},
		v:      Domain{0, 25, 0.001},
		scale:  DefaultScale,
		fxyz: func(p Params, u, v float64) r3.Vec {
			k := 1 + p.A*cos(p.B*v)
			return r3.Vec{X: k * cos(v), Y: k * sin(v), Z: v + p.C*sin(p.B*v)}
		},
	},
	GreatSphere: {
		name:  "great sphere",
		u:     Domain{-pi, pi, pi / 40},
		v:     Domain{0, pi, pi / 40},
		scale: DefaultScale * 4,
		fxyz: func(p Params, u, v float64) r3.Vec {
			return r3.Vec{X: sin(v) * sin(u), Y: sin(v) * cos(u), Z: cos(v)}
		},
	},
	// https://echarts.apache.org/examples/en/editor.html?c=metal-surface&gl=1
	GreatCreature: {
		name:   "great creature",
		params: Params{A: 0.4},
		u:      Domain{-13.2, 13.2, 0.4},
		v:      Domain{-37.4, 37.4, 0.4},
		scale:  DefaultScale,
		fxyz: func(p Params, u, v float64) r3.Vec {
			a := p.A
			r := 1 - a*a
			w := sqrt(r)
			denom := a * (square(w*cosh(a*u)) + a*square(sin(w*v)))
			return r3.Vec{
				X: -u + (2 * r * cosh(a*u) * sinh(a*u) / denom),
				Y: 2 * w * cosh(a*u) * (-(w * cos(v) * cos(w*v)) - (sin(v) * sin(w*v))) / denom,
				Z: 2 * w * cosh(a*u) * (-(w * sin(v) * cos(w*v)) + (cos(v) * sin(w*v))) / denom,
			}
		},
	},
	Rose: {
		name:  "Rose",
		u:     Domain{0, 1, 1. / 24},
		v:     Domain{-(20. / 9) * pi, 15 * pi, (15*pi - (-(20. / 9) * pi)) / 575},
		scale: DefaultScale * 4,
		fxyz:  roseXYZ,
	},
}
