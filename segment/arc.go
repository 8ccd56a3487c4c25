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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sweep/vector"
)

// Arc is an elliptical arc around Center with per-axis Radius.
//
// Interior samples are placed at integer multiples of the sector angle, so
// that adjoining arcs drawn independently share their sample angles.
// The start and end points are given explicitly and are not recomputed
// from the angles.
type Arc struct {
	ends

	center     *vector.Vector
	radius     *vector.Vector
	angleStart float64 // degrees
	angleEnd   float64 // degrees
	rotation   float64 // degrees, rotation of the ellipse axes
}

// NewArc returns an arc from start to end which sweeps the ellipse around
// center from angleStart to angleEnd (in degrees). The direction of the arc
// is given by the sign of angleEnd-angleStart. A nil center defaults to
// (1, 1), a nil radius to (1, 1).
func NewArc(start, end, center, radius *vector.Vector, angleStart, angleEnd float64) *Arc {
	if center == nil {
		center = vector.XY(1, 1)
	}
	if radius == nil {
		radius = vector.XY(1, 1)
	}
	return &Arc{
		ends:       newEnds(start, end),
		center:     center,
		radius:     radius,
		angleStart: angleStart,
		angleEnd:   angleEnd,
	}
}

// NewCircularArc is like NewArc, but uses the same radius for both axes.
func NewCircularArc(start, end, center *vector.Vector, radius, angleStart, angleEnd float64) *Arc {
	return NewArc(start, end, center, vector.XY(radius, radius), angleStart, angleEnd)
}

// Center returns the centre of the ellipse.
func (a *Arc) Center() *vector.Vector { return a.center }

// Radius returns the per-axis radius of the ellipse.
func (a *Arc) Radius() *vector.Vector { return a.radius }

// Angles returns the start and end angle in degrees.
func (a *Arc) Angles() (start, end float64) { return a.angleStart, a.angleEnd }

// Rotation returns the angle between the x-axis and the first ellipse axis,
// in degrees.
func (a *Arc) Rotation() float64 { return a.rotation }

// SetCenter replaces the centre.
func (a *Arc) SetCenter(v *vector.Vector) {
	a.rev += a.center.Revision() + 1
	a.center = v
}

// SetRadius replaces the radius.
func (a *Arc) SetRadius(v *vector.Vector) {
	a.rev += a.radius.Revision() + 1
	a.radius = v
}

// SetAngles changes the start and end angle.
func (a *Arc) SetAngles(start, end float64) {
	a.angleStart, a.angleEnd = start, end
	a.rev++
}

// SetRotation changes the rotation of the ellipse axes.
func (a *Arc) SetRotation(deg float64) {
	a.rotation = deg
	a.rev++
}

// Dimensions implements the [Segment] interface.
func (a *Arc) Dimensions() int {
	return a.endsDimensions()
}

// Revision implements the [Segment] interface.
func (a *Arc) Revision() uint64 {
	return a.endsRevision() + a.center.Revision() + a.radius.Revision()
}

// Dirty reports whether the segment changed since the last Update.
func (a *Arc) Dirty() bool { return a.dirty(a.Revision()) }

// Update implements the [Segment] interface.
func (a *Arc) Update(forced bool, opt *Options) ([]float64, error) {
	o := opt.withDefaults()
	rev := a.Revision()
	if a.fresh(forced, rev, o) {
		return a.vertices, nil
	}

	dims := workingDimensions(o, a.Dimensions())
	a.begin(dims)

	// maps the unit circle onto the ellipse
	m := matrix.Scale(a.radius.X(), a.radius.Y()).RotateDeg(a.rotation)
	c := a.center.Vec2()
	m = m.Translate(c.X, c.Y)

	step := o.SectorAngle
	if a.angleEnd > a.angleStart {
		first := int(math.Floor(a.angleStart/step)) + 1
		last := int(math.Floor(a.angleEnd / step))
		for sector := first; sector <= last; sector++ {
			a.appendSample(dims, m, step*float64(sector))
		}
	} else if a.angleEnd < a.angleStart {
		first := int(math.Ceil(a.angleStart/step)) - 1
		last := int(math.Ceil(a.angleEnd / step))
		for sector := first; sector >= last; sector-- {
			a.appendSample(dims, m, step*float64(sector))
		}
	}

	a.finish(rev, o, dims)
	return a.vertices, nil
}

func (a *Arc) appendSample(dims int, m matrix.Matrix, deg float64) {
	if deg == a.angleStart || deg == a.angleEnd {
		return
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	x, y := m.Apply(cos, sin)
	a.vertices = appendPoint(a.vertices, dims, x, y, 0)
}

// Clone implements the [Segment] interface.
func (a *Arc) Clone() Segment {
	return &Arc{
		ends:       a.cloneEnds(),
		center:     a.center.Clone(),
		radius:     a.radius.Clone(),
		angleStart: a.angleStart,
		angleEnd:   a.angleEnd,
		rotation:   a.rotation,
	}
}

func (*Arc) isSegment() {}
