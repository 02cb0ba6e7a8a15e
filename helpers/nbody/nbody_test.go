package nbody_test

import (
	"math"
	"testing"

	"github.com/soypat/paramsurf/helpers/nbody"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestEnergy(t *testing.T) {
	const tol = 1e-9
	sys, err := nbody.NewSystem(nbody.Jovian()...)
	if err != nil {
		t.Fatal(err)
	}
	if got := sys.Energy(); math.Abs(got-(-0.169075164)) > tol {
		t.Errorf("initial energy %.9f, want -0.169075164", got)
	}
	for i := 0; i < 1000; i++ {
		sys.Advance(0.01)
	}
	if got := sys.Energy(); math.Abs(got-(-0.169087605)) > tol {
		t.Errorf("energy after 1000 steps %.9f, want -0.169087605", got)
	}
}

func TestMomentumOffset(t *testing.T) {
	sys, err := nbody.NewSystem(nbody.Jovian()...)
	if err != nil {
		t.Fatal(err)
	}
	var p r3.Vec
	for _, b := range sys.Bodies() {
		p = r3.Add(p, r3.Scale(b.Mass, b.Vel))
	}
	if r3.Norm(p) > 1e-15 {
		t.Errorf("total momentum %v not zero", p)
	}
	// The input slice is not modified.
	if nbody.Jovian()[0].Vel != (r3.Vec{}) {
		t.Error("Sun constructor has velocity")
	}
	if _, err := nbody.NewSystem(); err == nil {
		t.Error("expected error for empty system")
	}
}

func TestTrace(t *testing.T) {
	sys, err := nbody.NewSystem(nbody.Jovian()...)
	if err != nil {
		t.Fatal(err)
	}
	m := sys.Trace(100, 0.01, 10)
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(m.Polygons) != 5 {
		t.Fatalf("got %d polylines, want 5", len(m.Polygons))
	}
	for _, line := range m.Polygons {
		if len(line) != 11 {
			t.Errorf("got %d samples, want 11", len(line))
		}
	}
	if !m.Open {
		t.Error("orbit trace must be open polylines")
	}
	if len(m.Edges) != 50 {
		t.Errorf("got %d edges, want 50", len(m.Edges))
	}
	// Last sample matches the current state.
	bodies := sys.Bodies()
	jupiter := m.Polyline(1)
	if jupiter[len(jupiter)-1] != bodies[1].Pos {
		t.Error("trace does not end at current position")
	}
}
