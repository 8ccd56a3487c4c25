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

// Package triangulate splits a planar polygon with holes into triangles.
//
// The polygon is given in the same flat layout the rest of the module
// uses: a list of coordinates with a fixed stride, plus the vertex offsets
// at which hole rings begin. Only the first two coordinates of every
// vertex are used.
package triangulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByteArena/poly2tri-go"
	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate is returned when the outer ring has fewer than three
// distinct points, or when the polygon cannot be triangulated.
var ErrDegenerate = errors.New("triangulate: degenerate polygon")

// Triangulate returns vertex indices, three per triangle, covering the
// polygon coords[:holes[0]*dim] minus the hole rings which start at the
// given vertex offsets. Triangles are oriented counter-clockwise.
//
// Repeated consecutive points, and a final point repeating the first one,
// are merged; the returned indices refer to the first occurrence. Hole rings
// with fewer than three distinct points are ignored.
//
// The polygon is first handed to a constrained Delaunay sweep. If the sweep
// fails, or its triangles do not cover the polygon area, the rings are
// triangulated by ear clipping instead.
func Triangulate(coords []float64, holes []int, dim int) ([]int, error) {
	if dim < 2 {
		return nil, fmt.Errorf("%w: coordinate dimension %d", ErrDegenerate, dim)
	}
	n := len(coords) / dim

	bounds := make([]int, 1, len(holes)+2)
	for _, h := range holes {
		if h > bounds[len(bounds)-1] && h < n {
			bounds = append(bounds, h)
		}
	}
	bounds = append(bounds, n)

	var rings [][]int
	for r := range len(bounds) - 1 {
		ring := makeRing(coords, dim, bounds[r], bounds[r+1])
		if len(ring) < 3 {
			if r == 0 {
				return nil, fmt.Errorf("%w: %d distinct points", ErrDegenerate, len(ring))
			}
			continue
		}
		rings = append(rings, ring)
	}

	tris, err := delaunay(coords, dim, rings)
	if err == nil && covers(coords, dim, rings, tris) {
		return tris, nil
	}
	return earClip(coords, dim, rings)
}

// delaunay triangulates the rings using poly2tri.
func delaunay(coords []float64, dim int, rings [][]int) (tris []int, err error) {
	index := make(map[*poly2tri.Point]int)
	points := make([][]*poly2tri.Point, len(rings))
	for r, ring := range rings {
		points[r] = make([]*poly2tri.Point, len(ring))
		for k, i := range ring {
			p := poly2tri.NewPoint(coords[i*dim], coords[i*dim+1])
			index[p] = i
			points[r][k] = p
		}
	}

	// poly2tri reports invalid input by panicking
	defer func() {
		if r := recover(); r != nil {
			tris = nil
			err = fmt.Errorf("%w: %v", ErrDegenerate, r)
		}
	}()

	sc := poly2tri.NewSweepContext(points[0], false)
	sc.AddHoles(points[1:])
	sc.Triangulate()

	triangles := sc.GetTriangles()
	tris = make([]int, 0, 3*len(triangles))
	for _, t := range triangles {
		a, okA := index[t.Points[0]]
		b, okB := index[t.Points[1]]
		c, okC := index[t.Points[2]]
		if !okA || !okB || !okC {
			continue
		}
		if orient(coords, dim, a, b, c) < 0 {
			b, c = c, b
		}
		tris = append(tris, a, b, c)
	}
	return tris, nil
}

// covers reports whether the triangles add up to the area of the outer
// ring minus the holes.
func covers(coords []float64, dim int, rings [][]int, tris []int) bool {
	if len(tris) == 0 {
		return false
	}
	outer := math.Abs(ringArea(coords, dim, rings[0]))
	want := outer
	for _, ring := range rings[1:] {
		want -= math.Abs(ringArea(coords, dim, ring))
	}
	var got float64
	for k := 0; k+2 < len(tris); k += 3 {
		got += orient(coords, dim, tris[k], tris[k+1], tris[k+2]) / 2
	}
	return math.Abs(got-want) <= 1e-7*outer
}

// makeRing returns the indices of the vertices first..last-1, skipping
// repeated points.
func makeRing(coords []float64, dim, first, last int) []int {
	ring := make([]int, 0, last-first)
	for i := first; i < last; i++ {
		if k := len(ring); k > 0 && point(coords, dim, ring[k-1]) == point(coords, dim, i) {
			continue
		}
		ring = append(ring, i)
	}
	for len(ring) > 1 && point(coords, dim, ring[0]) == point(coords, dim, ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// ringArea returns the signed area of a ring, positive for
// counter-clockwise rings.
func ringArea(coords []float64, dim int, ring []int) float64 {
	var sum float64
	p := point(coords, dim, ring[len(ring)-1])
	for _, i := range ring {
		q := point(coords, dim, i)
		sum += cross(p, q)
		p = q
	}
	return sum / 2
}

func point(coords []float64, dim, i int) vec.Vec2 {
	return vec.Vec2{X: coords[i*dim], Y: coords[i*dim+1]}
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.Rot90().Dot(b)
}

func orient(coords []float64, dim, a, b, c int) float64 {
	return turn(point(coords, dim, a), point(coords, dim, b), point(coords, dim, c))
}

// turn is positive if a, b, c make a left turn.
func turn(a, b, c vec.Vec2) float64 {
	return cross(b.Sub(a), c.Sub(a))
}
