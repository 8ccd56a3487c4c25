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

package segment

import (
	"fmt"

	"seehuhn.de/go/sweep/vector"
)

// Curve is a Bézier curve of arbitrary degree. The degree is one more than
// the number of control points.
type Curve struct {
	ends

	controls []*vector.Vector

	// De Casteljau scratch space
	points  []float64
	scratch []float64
}

// NewCurve returns a Bézier curve from start to end with the given control
// points. At least one control point is required.
func NewCurve(start, end *vector.Vector, controls ...*vector.Vector) (*Curve, error) {
	if len(controls) == 0 {
		return nil, fmt.Errorf("%w: curve needs at least 3 points, got 2", ErrNotEnoughPoints)
	}
	return &Curve{
		ends:     newEnds(start, end),
		controls: controls,
	}, nil
}

// Controls returns the control points.
// The returned slice must not be modified; use SetControls instead.
func (c *Curve) Controls() []*vector.Vector { return c.controls }

// SetControls replaces the control points.
func (c *Curve) SetControls(controls ...*vector.Vector) {
	c.rev += c.controlsRevision() + 1
	c.controls = controls
}

func (c *Curve) controlsRevision() uint64 {
	var rev uint64
	for _, p := range c.controls {
		rev += p.Revision()
	}
	return rev
}

// Dimensions implements the [Segment] interface.
func (c *Curve) Dimensions() int {
	dims := c.endsDimensions()
	for _, p := range c.controls {
		if p.Dimensions() == 3 {
			return 3
		}
	}
	return dims
}

// Revision implements the [Segment] interface.
func (c *Curve) Revision() uint64 {
	return c.endsRevision() + c.controlsRevision()
}

// Dirty reports whether the segment changed since the last Update.
func (c *Curve) Dirty() bool { return c.dirty(c.Revision()) }

// Update implements the [Segment] interface.
func (c *Curve) Update(forced bool, opt *Options) ([]float64, error) {
	n := len(c.controls) + 2
	if n < 3 {
		return nil, fmt.Errorf("%w: curve needs at least 3 points, got %d", ErrNotEnoughPoints, n)
	}

	o := opt.withDefaults()
	rev := c.Revision()
	if c.fresh(forced, rev, o) {
		return c.vertices, nil
	}

	dims := workingDimensions(o, c.Dimensions())
	c.begin(dims)

	// all points are processed with three components; z stays 0 in 2D
	c.points = c.points[:0]
	c.points = append(c.points, c.start.At(0), c.start.At(1), c.start.At(2))
	for _, p := range c.controls {
		c.points = append(c.points, p.At(0), p.At(1), p.At(2))
	}
	c.points = append(c.points, c.end.At(0), c.end.At(1), c.end.At(2))

	if cap(c.scratch) < len(c.points) {
		c.scratch = make([]float64, len(c.points))
	}
	tmp := c.scratch[:len(c.points)]

	for i := range o.Steps {
		t := float64(i+1) / float64(o.Steps+1)
		copy(tmp, c.points)
		for level := n - 1; level > 0; level-- {
			for j := range level * 3 {
				tmp[j] += (tmp[j+3] - tmp[j]) * t
			}
		}
		c.vertices = appendPoint(c.vertices, dims, tmp[0], tmp[1], tmp[2])
	}

	c.finish(rev, o, dims)
	return c.vertices, nil
}

// Clone implements the [Segment] interface.
func (c *Curve) Clone() Segment {
	controls := make([]*vector.Vector, len(c.controls))
	for i, p := range c.controls {
		controls[i] = p.Clone()
	}
	return &Curve{
		ends:     c.cloneEnds(),
		controls: controls,
	}
}

func (*Curve) isSegment() {}
