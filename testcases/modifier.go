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
	"seehuhn.de/go/sweep/modifier"
	"seehuhn.de/go/sweep/shapes"
)

var modifierCases = []TestCase{
	{
		Name: "warped_strip",
		Profile: func() *sweep.Path {
			p := polygon(0, 1, 1, 1, 1, 1.5, 0, 1.5)
			w := modifier.NewWarp()
			if err := w.SetFactor(270); err != nil {
				panic(err)
			}
			p.AddModifier(w)
			return p
		},
		Rail:    height(0.3),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name: "skewed_square",
		Profile: func() *sweep.Path {
			p := polygon(0, 0, 1, 0, 1, 1, 0, 1)
			p.AddModifier(must(modifier.NewSkew(0.5)))
			return p
		},
		Rail:    height(1),
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name: "inverted_rectangle",
		Profile: func() *sweep.Path {
			p := shapes.Rectangle(shapes.RectangleParams{Width: 2, Height: 1})
			p.AddModifier(&modifier.Invert{})
			return p
		},
		Rail:    height(1),
		Options: extrude.DefaultOptions(),
		Width:   96,
		Height:  64,
	},
}

var flatCases = []TestCase{
	{
		Name:    "square_two_sided",
		Profile: func() *sweep.Path { return polygon(0, 0, 1, 0, 1, 1, 0, 1) },
		Options: extrude.DefaultOptions(),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "ring_one_sided",
		Profile: ring(1, 0.5, 0, 360),
		Options: extrude.Options{Sides: 1, ComputeNormals: true},
		Width:   64,
		Height:  64,
	},
}
