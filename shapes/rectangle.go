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

// Package shapes builds common profiles and the solids obtained by
// extruding them.
package shapes

import (
	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// RectangleParams describes an axis-aligned rectangle.
type RectangleParams struct {
	// X and Y give the corner of the rectangle, or its centre if Centered
	// is set.
	X, Y float64

	// Width and Height may be negative, in which case the rectangle
	// extends to the left or downwards.
	Width, Height float64

	// Rounded is the corner radius. It is limited to half the smaller
	// side length.
	Rounded float64

	Centered bool
}

// DefaultRectangleParams returns the parameters of the unit square.
func DefaultRectangleParams() RectangleParams {
	return RectangleParams{Width: 1, Height: 1}
}

// Rectangle returns a closed, counter-clockwise rectangular path.
// If both sides have length zero, the path is empty.
func Rectangle(p RectangleParams) *sweep.Path {
	x0, x1 := p.X, p.X+p.Width
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := p.Y, p.Y+p.Height
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	hw, hh := (x1-x0)/2, (y1-y0)/2
	r := max(0, min(p.Rounded, hw, hh))
	if p.Centered {
		x0, x1 = x0-hw, x1-hw
		y0, y1 = y0-hh, y1-hh
	}

	if hw == 0 && hh == 0 {
		return sweep.New()
	}

	if r == 0 {
		pts := []*vector.Vector{
			vector.XY(x0, y0),
			vector.XY(x1, y0),
			vector.XY(x1, y1),
			vector.XY(x0, y1),
		}
		segs := make([]segment.Segment, 4)
		for i := range pts {
			segs[i] = segment.NewLine(pts[i], pts[(i+1)%4])
		}
		return sweep.New(segs...)
	}

	start := vector.XY(x0+r, y0)
	var segs []segment.Segment
	cur := start
	lineTo := func(end *vector.Vector) {
		segs = append(segs, segment.NewLine(cur, end))
		cur = end
	}
	arcTo := func(end *vector.Vector, cx, cy, a0, a1 float64) {
		segs = append(segs, segment.NewCircularArc(cur, end, vector.XY(cx, cy), r, a0, a1))
		cur = end
	}
	lineTo(vector.XY(x1-r, y0))
	arcTo(vector.XY(x1, y0+r), x1-r, y0+r, 270, 360)
	lineTo(vector.XY(x1, y1-r))
	arcTo(vector.XY(x1-r, y1), x1-r, y1-r, 0, 90)
	lineTo(vector.XY(x0+r, y1))
	arcTo(vector.XY(x0, y1-r), x0+r, y1-r, 90, 180)
	lineTo(vector.XY(x0, y0+r))
	arcTo(start, x0+r, y0+r, 180, 270)
	return sweep.New(segs...)
}
