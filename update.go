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
	"slices"

	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// Update recomputes the derived data of the path.
//
// If params is non-nil it replaces the parameters stored in the path;
// a nil params keeps the parameters of the previous call. Nothing is done
// if the path is clean and forced is false.
//
// On error the previous data is kept and the path stays dirty.
func (p *Path) Update(forced bool, params *Params) error {
	if params != nil && *params != p.params {
		p.params = *params
		p.rev++
	}
	if !forced && !p.Dirty() {
		return nil
	}

	rev := p.Revision()
	prm := p.params.normalized()
	prm.Reversed = prm.Reversed || p.reversed

	data, dims, err := p.compute(prm)
	if err != nil {
		return err
	}

	p.data = data
	p.dimensions = dims
	p.updated = true
	p.builtRev = rev

	Logger().Debug("path updated",
		"segments", len(p.segments),
		"parts", len(data.Parts),
		"vertices", len(data.Vertices),
		"faces", len(data.Faces))
	return nil
}

func (p *Path) compute(prm Params) (Data, int, error) {
	var data Data
	if len(p.segments) == 0 {
		return data, 2, nil
	}

	dims := prm.Dimensions
	if dims == 0 {
		dims = 2
		for _, s := range p.segments {
			dims = max(dims, s.Dimensions())
		}
	}

	parts, err := p.extractParts(dims)
	if err != nil {
		return data, dims, err
	}

	if prm.Reversed {
		for i := range parts {
			reverseTriples(parts[i].Vertices)
		}
	}

	for _, m := range p.modifiers {
		before := closedFlags(parts)
		m.Modify(parts)
		if !slices.Equal(before, closedFlags(parts)) {
			return data, dims, fmt.Errorf("%w: %T", ErrModifierParts, m)
		}
	}
	data.Parts = parts

	r := resampler{
		planar: dims == 2,
		prm:    prm,
		data:   &data,
	}
	allClosed := true
	for i := range parts {
		r.addPart(&parts[i])
		if i < len(parts)-1 {
			data.Holes = append(data.Holes, len(data.Vertices))
		}
		allClosed = allClosed && parts[i].Closed
	}

	if dims == 2 && allClosed {
		data.Faces = triangulateParts(&data)
	}
	return data, dims, nil
}

// extractParts samples all segments and groups chained segments into parts.
func (p *Path) extractParts(dims int) ([]Part, error) {
	var parts []Part
	var cur Part
	first := 0 // index of the first segment of the current part
	n := len(p.segments)
	for i, s := range p.segments {
		partStart := p.segments[first].Start()

		var chained bool
		if i < n-1 {
			chained = vector.Equal(s.End(), p.segments[i+1].Start())
		} else {
			chained = vector.Equal(s.End(), partStart)
		}

		v, err := s.Update(false, &segment.Options{
			Dimensions:    dims,
			SkipLastPoint: chained,
		})
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		cur.Vertices = append(cur.Vertices, v...)

		if !chained || i == n-1 {
			cur.Closed = vector.Equal(s.End(), partStart)
			if cur.Closed {
				trimClosingVertex(&cur)
			}
			parts = append(parts, cur)
			cur = Part{}
			first = i + 1
		}
	}
	return parts, nil
}

// trimClosingVertex removes a final vertex which repeats the first one.
func trimClosingVertex(part *Part) {
	v := part.Vertices
	k := len(v) - 3
	if k < 3 {
		return
	}
	for j := range 3 {
		if d := v[k+j] - v[j]; d > vector.Epsilon || d < -vector.Epsilon {
			return
		}
	}
	part.Vertices = v[:k]
}

func reverseTriples(v []float64) {
	for i, j := 0, len(v)-3; i < j; i, j = i+3, j-3 {
		v[i], v[j] = v[j], v[i]
		v[i+1], v[j+1] = v[j+1], v[i+1]
		v[i+2], v[j+2] = v[j+2], v[i+2]
	}
}

func closedFlags(parts []Part) []bool {
	flags := make([]bool, len(parts))
	for i := range parts {
		flags[i] = parts[i].Closed
	}
	return flags
}
