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

// Package preview renders meshes to images for quick visual checks.
package preview

import (
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep"
)

// Margin is the blank border, in pixels, left around the mesh.
const Margin = 4

// TopView projects the faces of m onto the XY plane and returns their
// coverage. The mesh is scaled uniformly to fit the image, and the
// y-axis points upwards. An empty mesh gives a blank image.
func TopView(m *sweep.Mesh, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if m == nil || len(m.Faces) == 0 {
		return dst
	}

	ctm, ok := fit(m, width, height)
	if !ok {
		return dst
	}

	r := vector.NewRasterizer(width, height)
	for _, f := range m.Faces {
		a := project(ctm, m.Vertices[f[0]])
		b := project(ctm, m.Vertices[f[1]])
		c := project(ctm, m.Vertices[f[2]])

		// overlapping faces must not cancel out
		if b.Sub(a).Rot90().Dot(c.Sub(a)) < 0 {
			b, c = c, b
		}
		r.MoveTo(float32(a.X), float32(a.Y))
		r.LineTo(float32(b.X), float32(b.Y))
		r.LineTo(float32(c.X), float32(c.Y))
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// fit returns the transformation from mesh coordinates to pixels.
func fit(m *sweep.Mesh, width, height int) (matrix.Matrix, bool) {
	box, ok := m.FaceBBox()
	if !ok {
		return matrix.Identity, false
	}

	w := float64(width - 2*Margin)
	h := float64(height - 2*Margin)
	if w <= 0 || h <= 0 {
		return matrix.Identity, false
	}
	dx, dy := box.Dx(), box.Dy()
	if dx <= 0 && dy <= 0 {
		return matrix.Identity, false
	}
	s := math.Inf(1)
	if dx > 0 {
		s = w / dx
	}
	if dy > 0 {
		s = min(s, h/dy)
	}

	// centre the drawing, with the y-axis pointing up
	ox := Margin + (w-s*dx)/2
	oy := Margin + (h-s*dy)/2
	return matrix.Translate(-box.LLx, -box.LLy).
		Mul(matrix.Scale(s, -s)).
		Mul(matrix.Translate(ox, float64(height)-oy)), true
}

func project(m matrix.Matrix, v [3]float64) vec.Vec2 {
	x, y := m.Apply(v[0], v[1])
	return vec.Vec2{X: x, Y: y}
}
