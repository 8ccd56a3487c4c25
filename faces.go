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

package sweep

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep/triangulate"
)

// triangulateParts computes the faces of a closed planar path.
//
// Parts are grouped into polygons. Parts are visited by decreasing area;
// a part lying inside the outer boundary of an existing polygon, but not
// inside one of its holes, becomes a hole of the innermost such polygon.
// Any other part starts a new polygon. Each polygon is triangulated on its
// own.
func triangulateParts(d *Data) [][3]int {
	type polygon struct {
		outer int
		area  float64
		holes []int
	}
	n := d.PartCount()
	areas := make([]float64, n)
	order := make([]int, n)
	for i := range n {
		areas[i] = math.Abs(d.area(i))
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(areas[b], areas[a])
	})

	var polys []*polygon
	for _, i := range order {
		var owner *polygon
		for _, poly := range polys {
			if owner != nil && poly.area >= owner.area {
				continue
			}
			if d.inside(i, poly.outer) && !slices.ContainsFunc(poly.holes, func(h int) bool {
				return d.inside(i, h)
			}) {
				owner = poly
			}
		}
		if owner != nil {
			owner.holes = append(owner.holes, i)
		} else {
			polys = append(polys, &polygon{outer: i, area: areas[i]})
		}
	}
	slices.SortFunc(polys, func(a, b *polygon) int {
		return cmp.Compare(a.outer, b.outer)
	})

	var faces [][3]int
	var coords []float64
	var global []int
	for _, poly := range polys {
		coords = coords[:0]
		global = global[:0]
		var holes []int
		slices.Sort(poly.holes)
		for j, part := range append([]int{poly.outer}, poly.holes...) {
			if j > 0 {
				holes = append(holes, len(global))
			}
			lo, hi := d.PartRange(part)
			for v := lo; v < hi; v++ {
				p := d.Vertices[v]
				coords = append(coords, p[0], p[1])
				global = append(global, v)
			}
		}

		tris, err := triangulate.Triangulate(coords, holes, 2)
		if err != nil || len(tris) == 0 {
			Logger().Warn("cannot triangulate part",
				"part", poly.outer,
				"holes", len(poly.holes),
				"err", err)
			continue
		}
		for k := 0; k+2 < len(tris); k += 3 {
			faces = append(faces, [3]int{global[tris[k]], global[tris[k+1]], global[tris[k+2]]})
		}
	}
	return faces
}

// inside reports whether part i lies inside the outline of part j. A
// vertex on the shared boundary can fall either way, so the part counts as
// inside when most of its vertices are.
func (d *Data) inside(i, j int) bool {
	lo, hi := d.PartRange(i)
	if hi <= lo {
		return false
	}
	in := 0
	for v := lo; v < hi; v++ {
		p := d.Vertices[v]
		if d.contains(j, vec.Vec2{X: p[0], Y: p[1]}) {
			in++
		}
	}
	return 2*in > hi-lo
}

// contains reports whether q lies inside the outline of part i,
// using the even-odd rule.
func (d *Data) contains(i int, q vec.Vec2) bool {
	lo, hi := d.PartRange(i)
	if hi-lo < 3 {
		return false
	}
	inside := false
	a := d.point(hi - 1)
	for v := lo; v < hi; v++ {
		b := d.point(v)
		if (b.Y > q.Y) != (a.Y > q.Y) {
			x := b.X + (q.Y-b.Y)*(a.X-b.X)/(a.Y-b.Y)
			if q.X < x {
				inside = !inside
			}
		}
		a = b
	}
	return inside
}

// area returns the signed area enclosed by part i in the xy plane.
func (d *Data) area(i int) float64 {
	lo, hi := d.PartRange(i)
	if hi-lo < 3 {
		return 0
	}
	var sum float64
	a := d.point(hi - 1)
	for v := lo; v < hi; v++ {
		b := d.point(v)
		sum += a.Rot90().Dot(b)
		a = b
	}
	return sum / 2
}

func (d *Data) point(v int) vec.Vec2 {
	p := d.Vertices[v]
	return vec.Vec2{X: p[0], Y: p[1]}
}
