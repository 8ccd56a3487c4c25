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

package triangulate

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// node is a vertex of the polygon being clipped. Bridges between the
// outer ring and a hole duplicate their end points, so several nodes can
// refer to the same vertex.
type node struct {
	i          int
	p          vec.Vec2
	prev, next *node
}

// earClip triangulates the rings by merging the holes into the outer ring
// and then cutting off ears until a single triangle is left.
func earClip(coords []float64, dim int, rings [][]int) ([]int, error) {
	p0 := point(coords, dim, rings[0][0])
	box := rect.Rect{LLx: p0.X, LLy: p0.Y, URx: p0.X, URy: p0.Y}
	for _, i := range rings[0] {
		p := point(coords, dim, i)
		box.Add(p.X, p.Y)
	}
	eps := 1e-12 * (box.Dx()*box.Dx() + box.Dy()*box.Dy())

	outer, _ := link(coords, dim, rings[0], true)
	count := len(rings[0])

	var holes []*node
	size := make(map[*node]int)
	for _, ring := range rings[1:] {
		_, right := link(coords, dim, ring, false)
		holes = append(holes, right)
		size[right] = len(ring)
	}
	slices.SortStableFunc(holes, func(a, b *node) int {
		return cmp.Compare(b.p.X, a.p.X)
	})
	for _, h := range holes {
		m := bridgeTarget(outer, h)
		if m == nil {
			continue
		}
		split(m, h)
		count += size[h] + 2
	}

	return clip(outer, count, eps)
}

// link builds a circular list from the ring, ordered counter-clockwise if
// ccw is set and clockwise otherwise. The second return value is the node
// with the largest x coordinate.
func link(coords []float64, dim int, ring []int, ccw bool) (head, right *node) {
	order := slices.Clone(ring)
	if (ringArea(coords, dim, ring) > 0) != ccw {
		slices.Reverse(order)
	}
	var last *node
	for _, i := range order {
		n := &node{i: i, p: point(coords, dim, i)}
		if last == nil {
			head = n
		} else {
			last.next = n
			n.prev = last
		}
		if right == nil || n.p.X > right.p.X {
			right = n
		}
		last = n
	}
	last.next = head
	head.prev = last
	return head, right
}

// bridgeTarget finds a vertex of the outer list which can be connected to
// the hole vertex h by a segment inside the polygon. The search casts a
// ray from h in the positive x direction.
func bridgeTarget(outer, h *node) *node {
	hp := h.p
	var m *node
	qx := math.Inf(1)
	a := outer
	for {
		b := a.next
		if a.p.Y != b.p.Y && min(a.p.Y, b.p.Y) <= hp.Y && hp.Y <= max(a.p.Y, b.p.Y) {
			x := a.p.X + (hp.Y-a.p.Y)*(b.p.X-a.p.X)/(b.p.Y-a.p.Y)
			if x >= hp.X && x < qx {
				qx = x
				m = a
				if b.p.X > a.p.X {
					m = b
				}
			}
		}
		a = b
		if a == outer {
			break
		}
	}
	if m == nil || qx == hp.X {
		return m
	}

	// A vertex inside the triangle h, (qx, hy), m would block the bridge.
	// Take the one closest in angle to the ray instead.
	q := vec.Vec2{X: qx, Y: hp.Y}
	best := m
	bestTan := math.Inf(1)
	for v := m.next; v != m; v = v.next {
		if v.p.X <= hp.X || v.p.X > m.p.X || !inTriangle(hp, q, m.p, v.p) {
			continue
		}
		if !locallyInside(v, hp) {
			continue
		}
		tan := math.Abs(hp.Y-v.p.Y) / (v.p.X - hp.X)
		if tan < bestTan || tan == bestTan && v.p.X > best.p.X {
			best = v
			bestTan = tan
		}
	}
	return best
}

// split connects the outer vertex a to the hole vertex b, walks around the
// hole and returns to a along the same segment.
func split(a, b *node) {
	a2 := &node{i: a.i, p: a.p}
	b2 := &node{i: b.i, p: b.p}
	an, bp := a.next, b.prev

	a.next, b.prev = b, a
	a2.next, an.prev = an, a2
	b2.next, a2.prev = a2, b2
	bp.next, b2.prev = b2, bp
}

// locallyInside reports whether the direction from a towards p points
// into the polygon at a.
func locallyInside(a *node, p vec.Vec2) bool {
	left := turn(a.prev.p, a.p, p) >= 0
	right := turn(a.p, a.next.p, p) >= 0
	if turn(a.prev.p, a.p, a.next.p) >= 0 {
		return left && right
	}
	return left || right
}

func inTriangle(a, b, c, p vec.Vec2) bool {
	d1, d2, d3 := turn(a, b, p), turn(b, c, p), turn(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// clip cuts ears off the counter-clockwise list starting at a, which
// holds count nodes.
func clip(a *node, count int, eps float64) ([]int, error) {
	tris := make([]int, 0, 3*max(count-2, 0))
	stall := 0
	for count > 3 {
		p, q := a.prev, a.next
		if isEar(a, eps) {
			tris = append(tris, p.i, a.i, q.i)
			remove(a)
			count--
			a = q
			stall = 0
			continue
		}
		a = q
		stall++
		if stall < count {
			continue
		}

		// no ear in a full round: the list has collapsed somewhere
		d := flat(a, eps)
		if d == nil {
			return nil, fmt.Errorf("%w: no ear among %d vertices", ErrDegenerate, count)
		}
		a = d.next
		remove(d)
		count--
		stall = 0
	}
	if turn(a.prev.p, a.p, a.next.p) > eps {
		tris = append(tris, a.prev.i, a.i, a.next.i)
	}
	if len(tris) == 0 {
		return nil, ErrDegenerate
	}
	return tris, nil
}

// isEar reports whether the triangle a.prev, a, a.next lies inside the
// polygon.
func isEar(a *node, eps float64) bool {
	p, q := a.prev, a.next
	if turn(p.p, a.p, q.p) <= eps {
		return false
	}
	for v := q.next; v != p; v = v.next {
		if v.p == p.p || v.p == a.p || v.p == q.p {
			continue
		}
		if turn(v.prev.p, v.p, v.next.p) > eps {
			continue
		}
		if turn(p.p, a.p, v.p) >= -eps && turn(a.p, q.p, v.p) >= -eps && turn(q.p, p.p, v.p) >= -eps {
			return false
		}
	}
	return true
}

// flat returns a node where the outline does not turn, or nil.
func flat(start *node, eps float64) *node {
	a := start
	for {
		if math.Abs(turn(a.prev.p, a.p, a.next.p)) <= eps {
			return a
		}
		a = a.next
		if a == start {
			return nil
		}
	}
}

func remove(a *node) {
	a.prev.next = a.next
	a.next.prev = a.prev
}
