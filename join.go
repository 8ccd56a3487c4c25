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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sweep/vector"
)

// Join appends the segments and the derived data of other to p.
//
// Both paths are updated first. The copied vertex positions are rotated
// by rotate.Z() degrees about the z-axis, translated by translate and then
// scaled per axis by scale; tangents, normals and binormals are rotated
// as well. Any of the three vectors may be nil. Edge, face and hole
// indices of other are offset by the vertex count of p, and a hole marker
// separates the two vertex ranges.
//
// Afterwards p is clean. The transformation is applied to the derived
// data only: a later recomputation of p rebuilds the joined part from the
// untransformed segments.
func (p *Path) Join(other *Path, translate, rotate, scale *vector.Vector) error {
	if err := p.Update(false, nil); err != nil {
		return err
	}
	if err := other.Update(false, nil); err != nil {
		return err
	}

	for _, s := range other.segments {
		p.segments = append(p.segments, s.Clone())
	}
	p.rev++

	rot := matrix.Identity
	if rotate != nil && rotate.Z() != 0 {
		rot = matrix.RotateDeg(rotate.Z())
	}
	place := func(v [3]float64) [3]float64 {
		x, y := rot.Apply(v[0], v[1])
		res := [3]float64{x, y, v[2]}
		for k := range res {
			res[k] += translate.At(k)
			if scale != nil && k < scale.Dimensions() {
				res[k] *= scale.At(k)
			}
		}
		return res
	}
	rotated := func(v [3]float64) [3]float64 {
		x, y := rot.Apply(v[0], v[1])
		return [3]float64{x, y, v[2]}
	}

	d, o := &p.data, &other.data
	offset := len(d.Vertices)
	if offset > 0 && len(o.Vertices) > 0 {
		d.Holes = append(d.Holes, offset)
	}

	for i, v := range o.Vertices {
		d.Vertices = append(d.Vertices, place(v))
		d.Normals = append(d.Normals, rotated(o.Normals[i]))
		d.Tangents = append(d.Tangents, rotated(o.Tangents[i]))
		d.Binormals = append(d.Binormals, rotated(o.Binormals[i]))
	}
	d.Lengths = append(d.Lengths, o.Lengths...)
	d.Angles = append(d.Angles, o.Angles...)

	for _, e := range o.Edges {
		d.Edges = append(d.Edges, [2]int{e[0] + offset, e[1] + offset})
	}
	for _, f := range o.Faces {
		d.Faces = append(d.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
	}
	for _, h := range o.Holes {
		d.Holes = append(d.Holes, h+offset)
	}

	for _, part := range o.Parts {
		cp := Part{Vertices: make([]float64, 0, len(part.Vertices)), Closed: part.Closed}
		for k := 0; k+2 < len(part.Vertices); k += 3 {
			v := place([3]float64{part.Vertices[k], part.Vertices[k+1], part.Vertices[k+2]})
			cp.Vertices = append(cp.Vertices, v[:]...)
		}
		d.Parts = append(d.Parts, cp)
	}

	p.dimensions = max(p.dimensions, other.dimensions)
	p.updated = true
	p.builtRev = p.Revision()
	return nil
}
