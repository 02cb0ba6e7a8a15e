// Package matter compensates exported geometry for the shrinkage of 3D
// printing materials.
package matter

import (
	"fmt"
	"strings"

	"github.com/soypat/paramsurf"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// ABS contracts noticeably more than PLA as it cools.
	ABS = ViscousMaterial{name: "abs", shrink: 0.7e-2, pullShrink: .5}
)

type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material with the given case insensitive name.
func Lookup(name string) (ViscousMaterial, error) {
	for _, m := range []ViscousMaterial{PLA, ABS} {
		if strings.EqualFold(m.name, name) {
			return m, nil
		}
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

func (m ViscousMaterial) String() string { return m.name }

// ScaleFactor is the uniform scale that makes a part print at its nominal
// size after cooling.
func (m ViscousMaterial) ScaleFactor() float64 { return 1 / (1 - m.shrink) }

// Scale enlarges the mesh about the origin so it shrinks back to nominal size.
func (m ViscousMaterial) Scale(mesh paramsurf.Mesh) paramsurf.Mesh {
	return mesh.Scale(m.ScaleFactor())
}

// InternalDimScale returns the dimension to model so that a hole or slot
// prints with the real dimension given.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
