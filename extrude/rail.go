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

package extrude

import (
	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// Rail is the path a profile is swept along.
// It is either [Along] or [Height].
type Rail interface {
	isRail()
}

// Along returns a rail following the given path.
func Along(p *sweep.Path) Rail {
	return along{path: p}
}

// Height returns a straight vertical rail from z = 0 to z = h.
// A height of zero selects the flat case: the profile is copied
// without being swept.
func Height(h float64) Rail {
	return height(h)
}

type along struct {
	path *sweep.Path
}

func (along) isRail() {}

type height float64

func (height) isRail() {}

// verticalRail returns a path for a straight vertical rail.
func verticalRail(h float64) *sweep.Path {
	return sweep.New(segment.NewLine(vector.XYZ(0, 0, 0), vector.XYZ(0, 0, h)))
}

// isVertical reports whether all rail vertices lie on the z-axis.
func isVertical(d *sweep.Data) bool {
	for _, v := range d.Vertices {
		if v[0] != 0 || v[1] != 0 {
			return false
		}
	}
	return true
}
