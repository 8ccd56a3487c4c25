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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/extrude"
	"seehuhn.de/go/sweep/shapes"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var profileCases = []TestCase{
	{
		Name:    "square",
		Profile: func() *sweep.Path { return polygon(0, 0, 1, 0, 1, 1, 0, 1) },
		Rail:    height(1),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name: "rounded_rectangle",
		Profile: func() *sweep.Path {
			return shapes.Rectangle(shapes.RectangleParams{Width: 2, Height: 1, Rounded: 0.3})
		},
		Rail:    height(0.5),
		Options: extrude.DefaultOptions(),
		Width:   128,
		Height:  64,
	},
	{
		Name:    "ring",
		Profile: ring(1, 0.6, 0, 360),
		Rail:    height(1),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "half_ring",
		Profile: ring(1, 0.6, 0, 180),
		Rail:    height(1),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name: "pie",
		Profile: func() *sweep.Path {
			p := shapes.DefaultCircleParams()
			p.AngleStart, p.AngleEnd, p.Pie = 30, 300, true
			return must(shapes.Circle(p))
		},
		Rail:    height(0.2),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "star",
		Profile: star(5, 1, 0.4),
		Rail:    height(0.3),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "curved_outline",
		Profile: drop,
		Rail:    height(0.5),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name: "open_arc",
		Profile: func() *sweep.Path {
			p := shapes.DefaultCircleParams()
			p.AngleEnd = 270
			return must(shapes.Circle(p))
		},
		Rail:    height(1),
		Options: noCaps(),
		Width:   64,
		Height:  64,
	},
}

func ring(outer, inner, a0, a1 float64) func() *sweep.Path {
	return func() *sweep.Path {
		p := shapes.DefaultCircleParams()
		p.Radius, p.InnerRadius = outer, inner
		p.AngleStart, p.AngleEnd = a0, a1
		return must(shapes.Circle(p))
	}
}

// star builds a star with n points, alternating between two radii.
func star(n int, r0, r1 float64) func() *sweep.Path {
	return func() *sweep.Path {
		xy := make([]float64, 0, 4*n)
		for i := range 2 * n {
			r := r0
			if i%2 == 1 {
				r = r1
			}
			sin, cos := math.Sincos(float64(i)*math.Pi/float64(n) + math.Pi/2)
			xy = append(xy, r*cos, r*sin)
		}
		return polygon(xy...)
	}
}

// drop builds a counter-clockwise drop shape from Bezier curves.
func drop() *sweep.Path {
	d := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 2}).
		CubeTo(vec.Vec2{X: -0.5, Y: 1}, vec.Vec2{X: -1, Y: kappa}, vec.Vec2{X: -1, Y: 0}).
		CubeTo(vec.Vec2{X: -1, Y: -kappa}, vec.Vec2{X: -kappa, Y: -1}, vec.Vec2{X: 0, Y: -1}).
		CubeTo(vec.Vec2{X: kappa, Y: -1}, vec.Vec2{X: 1, Y: -kappa}, vec.Vec2{X: 1, Y: 0}).
		CubeTo(vec.Vec2{X: 1, Y: kappa}, vec.Vec2{X: 0.5, Y: 1}, vec.Vec2{X: 0, Y: 2}).
		Close()
	return must(sweep.FromGeom(d.Iter()))
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}
