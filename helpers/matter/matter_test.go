package matter_test

import (
	"math"
	"testing"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestScale(t *testing.T) {
	m := paramsurf.Mesh{Points: []r3.Vec{{X: 1, Y: -2, Z: 3}}}
	got := matter.PLA.Scale(m).Points[0]
	// Shrinking the scaled part by 0.2% gives back the nominal point.
	back := r3.Scale(1-0.2e-2, got)
	if r3.Norm(r3.Sub(back, m.Points[0])) > 1e-12 {
		t.Errorf("got %v after shrink, want %v", back, m.Points[0])
	}
	if m.Points[0] != (r3.Vec{X: 1, Y: -2, Z: 3}) {
		t.Error("input mesh modified")
	}
}

func TestLookup(t *testing.T) {
	m, err := matter.Lookup("PLA")
	if err != nil {
		t.Fatal(err)
	}
	if m != matter.PLA {
		t.Errorf("got %v, want PLA", m)
	}
	if _, err := matter.Lookup("wood"); err == nil {
		t.Error("expected unknown material error")
	}
	if got := matter.ABS.InternalDimScale(10); math.Abs(got-(10*1.007+0.5)) > 1e-12 {
		t.Errorf("ABS internal dimension %g", got)
	}
}
