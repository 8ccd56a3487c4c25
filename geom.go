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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// FromGeom converts a 2D path into a [Path].
// Straight lines become [segment.Line] values, quadratic and cubic Bézier
// curves become [segment.Curve] values, and closing a subpath adds a line
// back to its start point unless the current point is already there.
func FromGeom(p path.Path) (*Path, error) {
	var segs []segment.Segment
	var cur, start vec.Vec2
	hasCurrent := false
	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !hasCurrent {
			return nil, ErrNoCurrentPoint
		}
		switch cmd {
		case path.CmdMoveTo:
			cur, start = pts[0], pts[0]
			hasCurrent = true
		case path.CmdLineTo:
			segs = append(segs, segment.NewLine(xy(cur), xy(pts[0])))
			cur = pts[0]
		case path.CmdQuadTo:
			c, err := segment.NewCurve(xy(cur), xy(pts[1]), xy(pts[0]))
			if err != nil {
				return nil, err
			}
			segs = append(segs, c)
			cur = pts[1]
		case path.CmdCubeTo:
			c, err := segment.NewCurve(xy(cur), xy(pts[2]), xy(pts[0]), xy(pts[1]))
			if err != nil {
				return nil, err
			}
			segs = append(segs, c)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				segs = append(segs, segment.NewLine(xy(cur), xy(start)))
			}
			cur = start
		default:
			return nil, fmt.Errorf("sweep: unknown path command %v", cmd)
		}
	}
	return New(segs...), nil
}

func xy(v vec.Vec2) *vector.Vector {
	return vector.XY(v.X, v.Y)
}

// Outline returns the resampled parts as a 2D path, dropping z.
// Closed parts end with a ClosePath command. Duplicated corner vertices
// are emitted once.
func (p *Path) Outline() *path.Data {
	d := &p.data
	res := &path.Data{}
	for i := range d.PartCount() {
		lo, hi := d.PartRange(i)
		var last vec.Vec2
		for v := lo; v < hi; v++ {
			q := vec.Vec2{X: d.Vertices[v][0], Y: d.Vertices[v][1]}
			switch {
			case v == lo:
				res = res.MoveTo(q)
			case q != last:
				res = res.LineTo(q)
			}
			last = q
		}
		if i < len(d.Parts) && d.Parts[i].Closed {
			res = res.Close()
		}
	}
	return res
}

// BBox returns the bounding box of the vertices in the xy-plane.
// The result is the zero rectangle if there are no vertices.
func (p *Path) BBox() rect.Rect {
	var b rect.Rect
	for i, v := range p.data.Vertices {
		if i == 0 {
			b = rect.Rect{LLx: v[0], LLy: v[1], URx: v[0], URy: v[1]}
		}
		b.Add(v[0], v[1])
	}
	return b
}

// FaceBBox returns the bounding box, in the xy-plane, of the vertices
// used by the faces of m. The second return value is false if m has no
// faces.
func (m *Mesh) FaceBBox() (rect.Rect, bool) {
	var b rect.Rect
	if len(m.Faces) == 0 {
		return b, false
	}
	v := m.Vertices[m.Faces[0][0]]
	b = rect.Rect{LLx: v[0], LLy: v[1], URx: v[0], URy: v[1]}
	for _, f := range m.Faces {
		for _, i := range f {
			b.Add(m.Vertices[i][0], m.Vertices[i][1])
		}
	}
	return b, true
}
