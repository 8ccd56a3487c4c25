// seehuhn.de/go/sweep - swept-profile geometry for 2D and 3D paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases is a catalogue of extrusions used for visual
// inspection and as test fixtures.
package testcases

import (
	"fmt"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/extrude"
	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// TestCase defines a single extrusion.
type TestCase struct {
	Name    string              // lowercase a-z, 0-9 and _ only
	Profile func() *sweep.Path  // the profile to sweep
	Rail    func() extrude.Rail // nil means the flat case
	Options extrude.Options
	Width   int // preview width in pixels
	Height  int // preview height in pixels
}

// Build creates fresh inputs and extrudes them.
func (tc TestCase) Build() (*extrude.Extruder, error) {
	var rail extrude.Rail
	if tc.Rail != nil {
		rail = tc.Rail()
	}
	e := &extrude.Extruder{}
	if _, err := e.Extrude(tc.Profile(), rail, &tc.Options); err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	return e, nil
}

// polygon builds a closed path through the given points.
func polygon(xy ...float64) *sweep.Path {
	n := len(xy) / 2
	pts := make([]*vector.Vector, n)
	for i := range pts {
		pts[i] = vector.XY(xy[2*i], xy[2*i+1])
	}
	segs := make([]segment.Segment, n)
	for i := range pts {
		segs[i] = segment.NewLine(pts[i], pts[(i+1)%n])
	}
	return sweep.New(segs...)
}

// height is a helper for vertical rails.
func height(h float64) func() extrude.Rail {
	return func() extrude.Rail { return extrude.Height(h) }
}

// along is a helper for rails following a path.
func along(p func() *sweep.Path) func() extrude.Rail {
	return func() extrude.Rail { return extrude.Along(p()) }
}

// noCaps returns the default options without caps.
func noCaps() extrude.Options {
	o := extrude.DefaultOptions()
	o.Cap = false
	return o
}
