// Package nbody models the orbits of the Jovian planets with a simple
// symplectic integrator. Units are astronomical units, years and solar masses
// scaled so that G=1.
package nbody

import (
	"errors"
	"math"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	SolarMass   = 4 * math.Pi * math.Pi
	DaysPerYear = 365.24
)

// Body is a point mass.
type Body struct {
	Name     string
	Diameter float64 // km, for display.
	Color    string  // hex display color.
	Pos      r3.Vec
	Vel      r3.Vec
	Mass     float64
}

func Sun() Body {
	return Body{Name: "Sun", Diameter: 1391000, Color: "#ffff00", Mass: SolarMass}
}

func Jupiter() Body {
	return Body{
		Name:     "Jupiter",
		Diameter: 139820,
		Color:    "#ffff66",
		Pos:      r3.Vec{X: 4.84143144246472090e+00, Y: -1.16032004402742839e+00, Z: -1.03622044471123109e-01},
		Vel:      r3.Vec{X: 1.66007664274403694e-03 * DaysPerYear, Y: 7.69901118419740425e-03 * DaysPerYear, Z: -6.90460016972063023e-05 * DaysPerYear},
		Mass:     9.54791938424326609e-04 * SolarMass,
	}
}

func Saturn() Body {
	return Body{
		Name:     "Saturn",
		Diameter: 116460,
		Color:    "#0099cc",
		Pos:      r3.Vec{X: 8.34336671824457987e+00, Y: 4.12479856412430479e+00, Z: -4.03523417114321381e-01},
		Vel:      r3.Vec{X: -2.76742510726862411e-03 * DaysPerYear, Y: 4.99852801234917238e-03 * DaysPerYear, Z: 2.30417297573763929e-05 * DaysPerYear},
		Mass:     2.85885980666130812e-04 * SolarMass,
	}
}

func Uranus() Body {
	return Body{
		Name:     "Uranus",
		Diameter: 50724,
		Color:    "#996633",
		Pos:      r3.Vec{X: 1.28943695621391310e+01, Y: -1.51111514016986312e+01, Z: -2.23307578892655734e-01},
		Vel:      r3.Vec{X: 2.96460137564761618e-03 * DaysPerYear, Y: 2.37847173959480950e-03 * DaysPerYear, Z: -2.96589568540237556e-05 * DaysPerYear},
		Mass:     4.36624404335156298e-05 * SolarMass,
	}
}

func Neptune() Body {
	return Body{
		Name:     "Neptune",
		Diameter: 49244,
		Color:    "#ff9966",
		Pos:      r3.Vec{X: 1.53796971148509165e+01, Y: -2.59193146099879641e+01, Z: 1.79258772950371181e-01},
		Vel:      r3.Vec{X: 2.68067772490389322e-03 * DaysPerYear, Y: 1.62824170038242295e-03 * DaysPerYear, Z: -9.51592254519715870e-05 * DaysPerYear},
		Mass:     5.15138902046611451e-05 * SolarMass,
	}
}

// Jovian returns the Sun followed by the four Jovian planets.
func Jovian() []Body {
	return []Body{Sun(), Jupiter(), Saturn(), Uranus(), Neptune()}
}

// System is a set of bodies advanced together in time.
type System struct {
	bodies []Body
}

// NewSystem copies the bodies into a new System and sets the velocity of the
// first body so the total momentum is zero.
func NewSystem(bodies ...Body) (*System, error) {
	if len(bodies) == 0 {
		return nil, errors.New("nbody: no bodies")
	}
	s := &System{bodies: append([]Body(nil), bodies...)}
	var p r3.Vec
	for _, b := range s.bodies {
		p = r3.Add(p, r3.Scale(b.Mass, b.Vel))
	}
	first := &s.bodies[0]
	if first.Mass == 0 {
		return nil, errors.New("nbody: first body must have mass")
	}
	first.Vel = r3.Scale(-1/first.Mass, p)
	return s, nil
}

// Bodies returns a copy of the current state of the bodies.
func (s *System) Bodies() []Body { return append([]Body(nil), s.bodies...) }

// Advance moves the system forward by dt.
func (s *System) Advance(dt float64) {
	bodies := s.bodies
	for i := range bodies {
		bi := &bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			bj := &bodies[j]
			d := r3.Sub(bi.Pos, bj.Pos)
			dist := r3.Norm(d)
			mag := dt / (dist * dist * dist)
			bi.Vel = r3.Sub(bi.Vel, r3.Scale(bj.Mass*mag, d))
			bj.Vel = r3.Add(bj.Vel, r3.Scale(bi.Mass*mag, d))
		}
	}
	for i := range bodies {
		b := &bodies[i]
		b.Pos = r3.Add(b.Pos, r3.Scale(dt, b.Vel))
	}
}

// Energy returns the total kinetic plus potential energy of the system.
func (s *System) Energy() float64 {
	var e float64
	bodies := s.bodies
	for i, bi := range bodies {
		e += 0.5 * bi.Mass * r3.Norm2(bi.Vel)
		for _, bj := range bodies[i+1:] {
			e -= bi.Mass * bj.Mass / r3.Norm(r3.Sub(bi.Pos, bj.Pos))
		}
	}
	return e
}

// Trace advances the system steps times by dt and records the position of
// every body each every steps, including the initial state. The result holds
// one polyline per body in the order of Bodies.
func (s *System) Trace(steps int, dt float64, every int) paramsurf.Mesh {
	if every < 1 {
		every = 1
	}
	n := len(s.bodies)
	samples := steps/every + 1
	m := paramsurf.Mesh{Open: true}
	m.Points = make([]r3.Vec, 0, n*samples)
	lines := make([][]int, n)
	record := func() {
		for i, b := range s.bodies {
			lines[i] = append(lines[i], len(m.Points))
			m.Points = append(m.Points, b.Pos)
		}
	}
	record()
	for k := 1; k <= steps; k++ {
		s.Advance(dt)
		if k%every == 0 {
			record()
		}
	}
	for _, line := range lines {
		for j := 1; j < len(line); j++ {
			m.Edges = append(m.Edges, paramsurf.Edge{line[j-1], line[j]})
		}
	}
	m.Polygons = lines
	return m
}
