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

// Package sweep builds resampled outlines from line, arc and curve segments.
//
// A [Path] is an ordered list of segments. Updating a path splits the
// segments into connected polylines ("parts"), applies the registered
// modifiers, resamples the result adaptively and computes a frame
// (tangent, normal, binormal) at every retained vertex. Closed planar
// paths are also triangulated. The result is available as [Data], whose
// embedded [Mesh] is the geometry consumed by the extrude package.
//
// Paths are recomputed lazily. Every segment and point carries a revision
// counter, and a path is dirty whenever the sum of the revisions it
// depends on differs from the one seen by the last successful update.
package sweep

import (
	"math"

	"seehuhn.de/go/sweep/segment"
)

// Default resampling parameters.
const (
	DefaultMinLength = 0.001 // minimum distance between retained vertices
	DefaultMinAngle  = 0.001 // degrees; smaller turns are dropped
	DefaultMaxAngle  = 15.0  // degrees; larger turns produce a hard corner
)

// Part is one connected polyline extracted from a path.
type Part struct {
	Vertices []float64 // x, y, z triples
	Closed   bool
}

// Len returns the number of vertices in the part.
func (p *Part) Len() int { return len(p.Vertices) / 3 }

// Mesh is indexed geometry with one normal per vertex.
type Mesh struct {
	Vertices [][3]float64
	Normals  [][3]float64
	Edges    [][2]int
	Faces    [][3]int

	// Holes lists the vertex index at which each part after the first
	// begins. The values are strictly increasing.
	Holes []int
}

// Data holds everything computed by [Path.Update].
type Data struct {
	Mesh

	// Parts holds the polylines after reversal and modifiers, before
	// resampling.
	Parts []Part

	// Per retained vertex. A length of zero marks a duplicated vertex at
	// a hard corner.
	Lengths   []float64
	Angles    []float64 // degrees
	Tangents  [][3]float64
	Binormals [][3]float64
}

// VertexCount returns the number of retained vertices.
func (d *Data) VertexCount() int { return len(d.Vertices) }

// PartRange returns the range of vertex indices belonging to part i.
func (d *Data) PartRange(i int) (first, end int) {
	if i > 0 {
		first = d.Holes[i-1]
	}
	end = len(d.Vertices)
	if i < len(d.Holes) {
		end = d.Holes[i]
	}
	return first, end
}

// PartCount returns the number of vertex ranges delimited by Holes.
func (d *Data) PartCount() int {
	if len(d.Vertices) == 0 {
		return 0
	}
	return len(d.Holes) + 1
}

// Params controls path resampling.
// Zero fields select the defaults.
type Params struct {
	// Dimensions forces 2D or 3D processing. Zero means to use the
	// largest dimensionality found among the segments.
	Dimensions int

	MinLength float64
	MaxLength float64 // zero means unlimited
	MinAngle  float64 // degrees
	MaxAngle  float64 // degrees

	// Reversed reverses every part before modifiers are applied.
	Reversed bool
}

// DefaultParams returns the default resampling parameters.
func DefaultParams() Params {
	return Params{
		MinLength: DefaultMinLength,
		MaxLength: math.Inf(1),
		MinAngle:  DefaultMinAngle,
		MaxAngle:  DefaultMaxAngle,
	}
}

func (p Params) normalized() Params {
	if p.MinLength <= 0 {
		p.MinLength = DefaultMinLength
	}
	if p.MaxLength <= 0 {
		p.MaxLength = math.Inf(1)
	}
	if p.MinAngle <= 0 {
		p.MinAngle = DefaultMinAngle
	}
	if p.MaxAngle <= 0 {
		p.MaxAngle = DefaultMaxAngle
	}
	p.MinLength = min(p.MinLength, p.MaxLength)
	p.MinAngle = min(p.MinAngle, p.MaxAngle)
	return p
}

// Modifier transforms the parts of a path in place.
// Modify must not change the number of parts or their closed flags.
type Modifier interface {
	Modify(parts []Part)

	// Revision changes whenever the modifier's parameters change.
	Revision() uint64
}

// Path is an ordered list of segments together with the geometry derived
// from them.
//
// A Path is not safe for concurrent use.
type Path struct {
	segments  []segment.Segment
	modifiers []Modifier
	reversed  bool
	params    Params
	rev       uint64

	dimensions int
	data       Data
	updated    bool
	builtRev   uint64
}

// New returns a path consisting of the given segments.
// The segments become owned by the path.
func New(segs ...segment.Segment) *Path {
	return &Path{segments: segs}
}

// Segments returns the segments of the path.
// The returned slice must not be modified.
func (p *Path) Segments() []segment.Segment { return p.segments }

// Append adds segments at the end of the path.
func (p *Path) Append(segs ...segment.Segment) {
	p.segments = append(p.segments, segs...)
	p.rev++
}

// SetSegments replaces all segments.
func (p *Path) SetSegments(segs ...segment.Segment) {
	p.rev += p.segmentsRevision() + 1
	p.segments = segs
}

// AddModifier registers a modifier. Modifiers run in registration order.
func (p *Path) AddModifier(m Modifier) {
	p.modifiers = append(p.modifiers, m)
	p.rev++
}

// Modifiers returns the registered modifiers.
func (p *Path) Modifiers() []Modifier { return p.modifiers }

// SetReversed sets whether the vertex order of every part is reversed.
func (p *Path) SetReversed(reversed bool) {
	if p.reversed != reversed {
		p.reversed = reversed
		p.rev++
	}
}

// Reversed reports whether the path is reversed.
func (p *Path) Reversed() bool { return p.reversed }

// Params returns the resampling parameters used by Update.
func (p *Path) Params() Params { return p.params }

// Dimensions returns the dimensionality used by the last update.
func (p *Path) Dimensions() int { return p.dimensions }

// Revision changes whenever the path, one of its segments or points, or
// one of its modifiers changes. It never decreases.
func (p *Path) Revision() uint64 {
	rev := p.rev + p.segmentsRevision()
	for _, m := range p.modifiers {
		rev += m.Revision()
	}
	return rev
}

func (p *Path) segmentsRevision() uint64 {
	var rev uint64
	for _, s := range p.segments {
		rev += s.Revision()
	}
	return rev
}

// Dirty reports whether the derived data is out of date.
func (p *Path) Dirty() bool {
	return !p.updated || p.builtRev != p.Revision()
}

// Invalidate marks the path as dirty.
func (p *Path) Invalidate() {
	p.rev++
}

// Data returns the geometry computed by the last successful update.
// The returned value must not be modified.
func (p *Path) Data() *Data { return &p.data }

// VertexCount returns the number of vertices in the derived data.
func (p *Path) VertexCount() int { return len(p.data.Vertices) }

// Clone returns a copy of the path with deep copies of all segments.
// Modifiers are shared with the original. The copy is dirty.
func (p *Path) Clone() *Path {
	segs := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		segs[i] = s.Clone()
	}
	return &Path{
		segments:  segs,
		modifiers: append([]Modifier(nil), p.modifiers...),
		reversed:  p.reversed,
		params:    p.params,
	}
}
