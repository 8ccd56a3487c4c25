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

import "seehuhn.de/go/sweep/vector"

// Line is a straight segment. It has no interior samples.
type Line struct {
	ends
}

// NewLine returns a line from start to end.
// Nil points default to (0, 0) and (1, 0).
func NewLine(start, end *vector.Vector) *Line {
	return &Line{ends: newEnds(start, end)}
}

// Dimensions implements the [Segment] interface.
func (l *Line) Dimensions() int {
	return l.endsDimensions()
}

// Revision implements the [Segment] interface.
func (l *Line) Revision() uint64 {
	return l.endsRevision()
}

// Dirty reports whether the segment changed since the last Update.
func (l *Line) Dirty() bool { return l.dirty(l.Revision()) }

// Update implements the [Segment] interface.
func (l *Line) Update(forced bool, opt *Options) ([]float64, error) {
	o := opt.withDefaults()
	rev := l.Revision()
	if l.fresh(forced, rev, o) {
		return l.vertices, nil
	}

	dims := workingDimensions(o, l.Dimensions())
	l.begin(dims)
	l.finish(rev, o, dims)
	return l.vertices, nil
}

// Clone implements the [Segment] interface.
func (l *Line) Clone() Segment {
	return &Line{ends: l.cloneEnds()}
}

func (*Line) isSegment() {}
