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

package shapes

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// ErrEmptyShape is returned for a circle with zero radius.
var ErrEmptyShape = errors.New("shapes: empty shape")

// CircleParams describes a circle, a ring, or a part of either.
type CircleParams struct {
	X, Y   float64 // centre
	Radius float64

	// InnerRadius turns the circle into a ring. If it is larger than
	// Radius, the two are swapped.
	InnerRadius float64

	// AngleStart and AngleEnd, in degrees, select an arc. The shape is a
	// full circle if both are equal modulo 360.
	AngleStart, AngleEnd float64

	// Polygonal replaces the arc by Divisions straight lines.
	Polygonal bool
	Divisions int

	// CircularSectors is the number of arcs a full circle is split into,
	// at least 4.
	CircularSectors int

	// Pie closes an arc without inner radius through the centre.
	Pie bool
}

// DefaultCircleParams returns the parameters of the unit circle.
func DefaultCircleParams() CircleParams {
	return CircleParams{
		Radius:          1,
		AngleEnd:        360,
		Divisions:       4,
		CircularSectors: 4,
	}
}

// Closed reports whether the parameters describe a closed outline.
func (p CircleParams) Closed() bool {
	a0, a1 := math.Mod(p.AngleStart, 360), math.Mod(p.AngleEnd, 360)
	return a0 == a1 || p.InnerRadius != 0 || p.Pie
}

// Circle returns the path described by p. Full circles and rings are
// counter-clockwise.
func Circle(p CircleParams) (*sweep.Path, error) {
	radius, inner := math.Abs(p.Radius), math.Abs(p.InnerRadius)
	if radius < inner {
		radius, inner = inner, radius
	}
	if radius == 0 {
		return nil, ErrEmptyShape
	}

	a0, a1 := math.Mod(p.AngleStart, 360), math.Mod(p.AngleEnd, 360)
	closed := a0 == a1
	if a0 >= a1 {
		a1 += 360
	}

	angles := []float64{a0}
	if p.Polygonal {
		n := max(1, p.Divisions)
		step := (a1 - a0) / float64(n)
		for i := 1; i <= n; i++ {
			angles = append(angles, a0+step*float64(i))
		}
	} else {
		step := 360 / float64(max(4, p.CircularSectors))
		last := math.Floor(a1 / step)
		for s := math.Floor(a0/step) + 1; s <= last; s++ {
			angles = append(angles, s*step)
		}
		if angles[len(angles)-1] != a1 {
			angles = append(angles, a1)
		}
	}

	center := vector.XY(p.X, p.Y)
	ring := func(r float64) []*vector.Vector {
		m := matrix.Scale(r, r).Translate(p.X, p.Y)
		pts := make([]*vector.Vector, len(angles))
		for i, a := range angles {
			sin, cos := math.Sincos(a * math.Pi / 180)
			pts[i] = vector.XY(m.Apply(cos, sin))
		}
		if closed {
			pts[len(pts)-1] = pts[0]
		}
		return pts
	}

	var segs []segment.Segment
	// trace connects pts[i] to pts[j] for consecutive indices i, j.
	trace := func(pts []*vector.Vector, r float64, i, j int) {
		if p.Polygonal {
			segs = append(segs, segment.NewLine(pts[i], pts[j]))
		} else {
			segs = append(segs, segment.NewCircularArc(pts[i], pts[j], center, r, angles[i], angles[j]))
		}
	}

	outer := ring(radius)
	for i := 1; i < len(outer); i++ {
		trace(outer, radius, i-1, i)
	}
	first, final := outer[0], outer[len(outer)-1]

	switch {
	case inner > 0:
		in := ring(inner)
		n := len(in)
		if !closed {
			segs = append(segs, segment.NewLine(final, in[n-1]))
		}
		for i := n - 1; i > 0; i-- {
			trace(in, inner, i, i-1)
		}
		if !closed {
			segs = append(segs, segment.NewLine(in[0], first))
		}
	case !closed && p.Pie:
		segs = append(segs,
			segment.NewLine(final, center),
			segment.NewLine(center, first))
	}

	return sweep.New(segs...), nil
}
