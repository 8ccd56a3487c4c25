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

package segment

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep/vector"
)

// ArcFromEndpoints converts the endpoint parameterisation used by the SVG
// "A" path command into an [Arc] from (x0, y0) to (x, y).
//
// The radii are scaled up if they are too small to connect the two points.
// If both radii are zero, or the two points coincide, the result is nil and
// callers should use a [Line] instead.
//
// See: SVG 1.1, appendix F.6.5.
func ArcFromEndpoints(x0, y0, rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *Arc {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || (x0 == x && y0 == y) {
		return nil
	}

	// work in coordinates where the ellipse axes are aligned
	rot := matrix.RotateDeg(math.Mod(rotation, 360))
	x1, y1 := rot.Inv().Apply((x0-x)/2, (y0-y)/2)

	// make sure the radii are large enough
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}
	rx2, ry2 := rx*rx, ry*ry

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	sq := (rx2*ry2 - rx2*y1*y1 - ry2*x1*x1) / (rx2*y1*y1 + ry2*x1*x1)
	coef := sign * math.Sqrt(max(sq, 0))
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx, cy := rot.Translate((x0+x)/2, (y0+y)/2).Apply(cx1, cy1)

	u := vec.Vec2{X: (x1 - cx1) / rx, Y: (y1 - cy1) / ry}
	v := vec.Vec2{X: (-x1 - cx1) / rx, Y: (-y1 - cy1) / ry}

	start := vecAngle(vec.Vec2{X: 1}, u)
	extent := vecAngle(u, v)
	if !sweep && extent > 0 {
		extent -= 360
	} else if sweep && extent < 0 {
		extent += 360
	}

	arc := NewArc(vector.XY(x0, y0), vector.XY(x, y), vector.XY(cx, cy), vector.XY(rx, ry),
		start, start+extent)
	arc.rotation = rotation
	return arc
}

// vecAngle returns the signed angle from u to v in degrees.
func vecAngle(u, v vec.Vec2) float64 {
	c := max(-1, min(1, u.Normalize().Dot(v.Normalize())))
	a := math.Acos(c) * 180 / math.Pi
	if u.Rot90().Dot(v) < 0 {
		a = -a
	}
	return a
}
