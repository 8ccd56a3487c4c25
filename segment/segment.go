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

// Package segment implements the curve primitives a path is built from.
//
// There are exactly three kinds of segment: [Line], [Arc] and [Curve].
// Each one turns its parameters into a flat list of sample points,
// starting at the start point and (optionally) ending at the end point.
// Samples always use three components; z is zero for planar segments.
package segment

import (
	"errors"

	"seehuhn.de/go/sweep/vector"
)

// Default sampling parameters.
const (
	DefaultSectorAngle = 15.0 // degrees between arc samples
	DefaultSteps       = 4    // interior samples of a curve
)

// ErrNotEnoughPoints is returned for a curve with no control points.
var ErrNotEnoughPoints = errors.New("segment: not enough points")

// Segment is one of [*Line], [*Arc] or [*Curve].
// The interface is sealed; use a type switch to access variant fields.
type Segment interface {
	// Start returns the first point of the segment.
	Start() *vector.Vector

	// End returns the last point of the segment.
	End() *vector.Vector

	// Dimensions returns 3 if any defining point has a z component,
	// and 2 otherwise.
	Dimensions() int

	// Update samples the segment. If the segment has not changed since the
	// previous call with the same options, and forced is false, the cached
	// samples are returned. The returned slice is owned by the segment and
	// is only valid until the next call to Update.
	Update(forced bool, opt *Options) ([]float64, error)

	// Vertices returns the samples computed by the last call to Update.
	Vertices() []float64

	// Revision changes whenever the segment or one of its points is
	// modified. It never decreases.
	Revision() uint64

	// Dirty reports whether the segment has changed since the last call
	// to Update.
	Dirty() bool

	// Clone returns a deep copy of the segment.
	Clone() Segment

	isSegment()
}

// Options controls sampling.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Dimensions overrides the working dimensionality (2 or 3).
	// Zero means to use the dimensionality of the points.
	Dimensions int

	// SkipLastPoint omits the end point from the output.
	// Paths set this when the next segment starts where this one ends.
	SkipLastPoint bool

	// SectorAngle is the angular step for arcs, in degrees.
	// Zero means DefaultSectorAngle.
	SectorAngle float64

	// Steps is the number of interior samples of a curve.
	// Zero means DefaultSteps.
	Steps int
}

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.SectorAngle <= 0 {
		res.SectorAngle = DefaultSectorAngle
	}
	if res.Steps <= 0 {
		res.Steps = DefaultSteps
	}
	return res
}

// ends holds the state shared by all segment kinds.
type ends struct {
	start, end *vector.Vector
	rev        uint64

	vertices []float64
	built    bool
	builtRev uint64
	builtOpt Options
}

func newEnds(start, end *vector.Vector) ends {
	if start == nil {
		start = vector.XY(0, 0)
	}
	if end == nil {
		end = vector.XY(1, 0)
	}
	return ends{start: start, end: end}
}

// Start returns the first point of the segment.
func (e *ends) Start() *vector.Vector { return e.start }

// End returns the last point of the segment.
func (e *ends) End() *vector.Vector { return e.end }

// SetStart replaces the start point.
func (e *ends) SetStart(v *vector.Vector) {
	e.rev += e.start.Revision() + 1
	e.start = v
}

// SetEnd replaces the end point.
func (e *ends) SetEnd(v *vector.Vector) {
	e.rev += e.end.Revision() + 1
	e.end = v
}

// Vertices returns the samples computed by the last call to Update.
func (e *ends) Vertices() []float64 { return e.vertices }

func (e *ends) endsRevision() uint64 {
	return e.rev + e.start.Revision() + e.end.Revision()
}

func (e *ends) endsDimensions() int {
	return max(2, e.start.Dimensions(), e.end.Dimensions())
}

func (e *ends) dirty(rev uint64) bool {
	return !e.built || e.builtRev != rev
}

// fresh reports whether the cached samples can be reused.
func (e *ends) fresh(forced bool, rev uint64, opt Options) bool {
	return !forced && e.built && e.builtRev == rev && e.builtOpt == opt
}

func (e *ends) begin(dims int) {
	e.vertices = appendPoint(e.vertices[:0], dims,
		e.start.At(0), e.start.At(1), e.start.At(2))
}

func (e *ends) finish(rev uint64, opt Options, dims int) {
	if !opt.SkipLastPoint {
		e.vertices = appendPoint(e.vertices, dims,
			e.end.At(0), e.end.At(1), e.end.At(2))
	}
	e.built = true
	e.builtRev = rev
	e.builtOpt = opt
}

func (e *ends) cloneEnds() ends {
	return ends{start: e.start.Clone(), end: e.end.Clone()}
}

func workingDimensions(opt Options, natural int) int {
	if opt.Dimensions > 0 {
		return opt.Dimensions
	}
	return natural
}

func appendPoint(buf []float64, dims int, x, y, z float64) []float64 {
	if dims < 3 {
		z = 0
	}
	return append(buf, x, y, z)
}
