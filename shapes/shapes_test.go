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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sweep"
)

func update(t *testing.T, p *sweep.Path) *sweep.Data {
	t.Helper()
	require.NoError(t, p.Update(false, nil))
	return p.Data()
}

// faceArea returns the total signed area of the faces in the XY plane.
func faceArea(d *sweep.Data) float64 {
	var sum float64
	for _, f := range d.Faces {
		a, b, c := d.Vertices[f[0]], d.Vertices[f[1]], d.Vertices[f[2]]
		sum += ((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])) / 2
	}
	return sum
}

func TestRectangle(t *testing.T) {
	type testCase struct {
		name     string
		params   RectangleParams
		llx, lly float64
	}
	cases := []testCase{
		{"unit", DefaultRectangleParams(), 0, 0},
		{"centered", RectangleParams{Width: 1, Height: 1, Centered: true}, -0.5, -0.5},
		{"negative", RectangleParams{X: 1, Y: 1, Width: -1, Height: -1}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Rectangle(c.params)
			d := update(t, p)
			require.Len(t, d.Parts, 1)
			assert.True(t, d.Parts[0].Closed)
			assert.Equal(t, 8, d.VertexCount())
			assert.Len(t, d.Faces, 2)
			assert.InDelta(t, 1.0, faceArea(d), 1e-9)

			b := p.BBox()
			assert.InDelta(t, c.llx, b.LLx, 1e-9)
			assert.InDelta(t, c.lly, b.LLy, 1e-9)
			assert.InDelta(t, c.llx+1, b.URx, 1e-9)
			assert.InDelta(t, c.lly+1, b.URy, 1e-9)
		})
	}
}

func TestRoundedRectangle(t *testing.T) {
	p := Rectangle(RectangleParams{Width: 1, Height: 1, Rounded: 0.25})
	d := update(t, p)
	require.Len(t, d.Parts, 1)
	assert.True(t, d.Parts[0].Closed)
	want := 1 - (4-math.Pi)*0.25*0.25
	assert.InDelta(t, want, faceArea(d), 0.01)

	// the radius is limited to half the side length
	p = Rectangle(RectangleParams{Width: 1, Height: 1, Rounded: 5})
	update(t, p)
	b := p.BBox()
	assert.InDelta(t, 0, b.LLx, 1e-9)
	assert.InDelta(t, 1, b.URx, 1e-9)
	assert.InDelta(t, 1, b.URy, 1e-9)
}

func TestEmptyRectangle(t *testing.T) {
	p := Rectangle(RectangleParams{})
	assert.Empty(t, p.Segments())
}

func TestCircle(t *testing.T) {
	type testCase struct {
		name   string
		params CircleParams
		parts  int
		closed bool
		area   float64
	}
	full := DefaultCircleParams()
	ring := full
	ring.InnerRadius = 0.5
	swapped := full
	swapped.Radius, swapped.InnerRadius = 0.5, 1
	pie := full
	pie.AngleEnd, pie.Pie = 90, true
	halfRing := ring
	halfRing.AngleEnd = 180
	diamond := full
	diamond.Polygonal = true
	negative := pie
	negative.AngleStart, negative.AngleEnd = -45, 45

	cases := []testCase{
		{"full", full, 1, true, math.Pi},
		{"ring", ring, 2, true, 0.75 * math.Pi},
		{"swapped", swapped, 2, true, 0.75 * math.Pi},
		{"pie", pie, 1, true, math.Pi / 4},
		{"half ring", halfRing, 1, true, 0.375 * math.Pi},
		{"diamond", diamond, 1, true, 2},
		{"negative start", negative, 1, true, math.Pi / 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Circle(c.params)
			require.NoError(t, err)
			d := update(t, p)
			require.Len(t, d.Parts, c.parts)
			for _, part := range d.Parts {
				assert.Equal(t, c.closed, part.Closed)
			}
			assert.True(t, c.params.Closed())
			assert.InDelta(t, c.area, faceArea(d), 0.05)
		})
	}
}

func TestCircleSamples(t *testing.T) {
	p, err := Circle(DefaultCircleParams())
	require.NoError(t, err)
	d := update(t, p)

	// four quarter arcs with five interior samples each, no hard corners
	assert.Equal(t, 24, d.VertexCount())
	for i, v := range d.Vertices {
		assert.InDelta(t, 1, math.Hypot(v[0], v[1]), 1e-9)
		assert.Positive(t, d.Lengths[i])
	}
}

func TestOpenArc(t *testing.T) {
	params := DefaultCircleParams()
	params.AngleEnd = 180
	assert.False(t, params.Closed())

	p, err := Circle(params)
	require.NoError(t, err)
	d := update(t, p)
	require.Len(t, d.Parts, 1)
	assert.False(t, d.Parts[0].Closed)
	assert.Empty(t, d.Faces)
	assert.Equal(t, 13, d.VertexCount())
}

func TestEmptyCircle(t *testing.T) {
	params := DefaultCircleParams()
	params.Radius = 0
	_, err := Circle(params)
	assert.ErrorIs(t, err, ErrEmptyShape)
}

func TestBox(t *testing.T) {
	b := NewBox()
	changed, err := b.Update()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, b.Mesh().Faces, 12)

	changed, err = b.Update()
	require.NoError(t, err)
	assert.False(t, changed)

	b.Height = 3
	changed, err = b.Update()
	require.NoError(t, err)
	assert.True(t, changed)
	top := 0.0
	for _, v := range b.Mesh().Vertices {
		top = max(top, v[2])
	}
	assert.Equal(t, 3.0, top)

	b.Width = 2
	_, err = b.Update()
	require.NoError(t, err)
	assert.InDelta(t, 2, b.Base().BBox().URx, 1e-9)
}

func TestCylinder(t *testing.T) {
	c := NewCylinder()
	_, err := c.Update()
	require.NoError(t, err)
	// 24 side quads, and a convex 24-gon needs 22 triangles per cap
	assert.Len(t, c.Mesh().Faces, 2*24+2*22)

	c.AngleEnd = 180
	changed, err := c.Update()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, c.Mesh().Faces, 2*12, "open outlines get no caps")
}

func TestHalfRingCylinder(t *testing.T) {
	c := NewCylinder()
	c.InnerRadius = 0.5
	c.AngleEnd = 180
	require.True(t, c.Closed())
	_, err := c.Update()
	require.NoError(t, err)

	base := c.Base().Data()
	require.NotEmpty(t, base.Faces)
	assert.InDelta(t, 0.375*math.Pi, faceArea(base), 0.05)
	assert.Len(t, c.Mesh().Faces, 2*len(base.Edges)+2*len(base.Faces))
}
