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
	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/extrude"
	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/shapes"
	"seehuhn.de/go/sweep/vector"
)

var railCases = []TestCase{
	{
		Name:    "closed_square",
		Profile: tube(0.2),
		Rail:    along(func() *sweep.Path { return polygon(-2, -2, 2, -2, 2, 2, -2, 2) }),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "rounded_frame",
		Profile: tube(0.2),
		Rail: along(func() *sweep.Path {
			return shapes.Rectangle(shapes.RectangleParams{
				Width: 4, Height: 3, Rounded: 1, Centered: true,
			})
		}),
		Options: extrude.DefaultOptions(),
		Width:   96,
		Height:  64,
	},
	{
		Name:    "arc",
		Profile: tube(0.25),
		Rail: along(func() *sweep.Path {
			return sweep.New(segment.NewCircularArc(
				vector.XY(2, 0), vector.XY(-2, 0), vector.XY(0, 0), 2, 0, 180))
		}),
		Options: extrude.DefaultOptions(),
		Width:   96,
		Height:  64,
	},
	{
		Name:    "curve_3d",
		Profile: tube(0.2),
		Rail: along(func() *sweep.Path {
			c, err := segment.NewCurve(vector.XYZ(0, 0, 0), vector.XYZ(3, 0, 2),
				vector.XYZ(1, 1, 0), vector.XYZ(2, -1, 2))
			return sweep.New(must(c, err))
		}),
		Options: extrude.DefaultOptions(),
		Width:   96,
		Height:  64,
	},
	{
		Name:    "two_posts",
		Profile: tube(0.3),
		Rail:    along(twoPosts),
		Options: extrude.DefaultOptions(),
		Width:   96,
		Height:  64,
	},
}

// tube returns a square cross section of the given half width.
func tube(r float64) func() *sweep.Path {
	return func() *sweep.Path {
		return polygon(-r, -r, r, -r, r, r, -r, r)
	}
}

// twoPosts builds a rail with two separate vertical parts by joining a
// translated copy of a single post.
func twoPosts() *sweep.Path {
	post := func() *sweep.Path {
		return sweep.New(segment.NewLine(vector.XYZ(0, 0, 0), vector.XYZ(0, 0, 1)))
	}
	p := post()
	if err := p.Join(post(), vector.XYZ(2, 0, 0), nil, nil); err != nil {
		panic(err)
	}
	return p
}
