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

// Package extrude sweeps a planar profile along a rail to build a
// triangulated surface.
//
// An [Extruder] owns the output buffers and remembers the inputs of the
// last call, so that extruding unchanged inputs again costs nothing.
// Buffers grow as needed but never shrink.
package extrude

import (
	"errors"
	"fmt"

	"seehuhn.de/go/sweep"
)

var (
	// ErrInvalidProfile is returned if the profile is nil.
	ErrInvalidProfile = errors.New("extrude: invalid profile")

	// ErrNotCappable is returned if caps are requested for a profile
	// which is not planar with all parts closed.
	ErrNotCappable = errors.New("extrude: profile cannot be capped")
)

// Options controls an extrusion.
type Options struct {
	// Cap closes the ends of every open rail part with a copy of the
	// triangulated profile.
	Cap bool

	// Sides is the number of copies made in the flat case, 1 or 2.
	// The second copy faces the other way. Values outside this range are
	// clamped.
	Sides int

	// ComputeNormals enables normal generation. If false, Normals is
	// left empty.
	ComputeNormals bool
}

// DefaultOptions returns capped, two-sided extrusion with normals.
func DefaultOptions() Options {
	return Options{
		Cap:            true,
		Sides:          2,
		ComputeNormals: true,
	}
}

// Extruder generates the geometry of a swept profile.
// The embedded Mesh holds the result of the last call to Extrude.
//
// An Extruder is not safe for concurrent use.
type Extruder struct {
	sweep.Mesh

	valid      bool
	profile    *sweep.Path
	profileRev uint64
	rail       *sweep.Path
	railRev    uint64
	height     float64
	opt        Options

	vertical *sweep.Path // synthesised rail for Height
}

// Extrude sweeps profile along rail and stores the result in e.Mesh.
// A nil rail, or a height of zero, copies the profile without sweeping.
// Both profile and rail are updated if necessary. If neither has changed
// since the previous call with the same options, Extrude does nothing and
// returns false.
func (e *Extruder) Extrude(profile *sweep.Path, rail Rail, opt *Options) (bool, error) {
	if profile == nil {
		return false, ErrInvalidProfile
	}
	o := DefaultOptions()
	if opt != nil {
		o = *opt
	}
	o.Sides = max(1, min(2, o.Sides))

	if err := profile.Update(false, nil); err != nil {
		return false, fmt.Errorf("profile: %w", err)
	}

	var railPath *sweep.Path
	var h float64
	vertical := false
	switch r := rail.(type) {
	case nil:
	case height:
		h = float64(r)
		if h != 0 {
			if e.vertical == nil || e.height != h {
				e.vertical = verticalRail(h)
			}
			railPath = e.vertical
			vertical = true
		}
	case along:
		railPath = r.path
	}
	var railRev uint64
	if railPath != nil {
		if err := railPath.Update(false, nil); err != nil {
			return false, fmt.Errorf("rail: %w", err)
		}
		railRev = railPath.Revision()
	}

	profileRev := profile.Revision()
	if e.valid && e.profile == profile && e.profileRev == profileRev &&
		e.rail == railPath && e.railRev == railRev && e.height == h && e.opt == o {
		sweep.Logger().Debug("extrusion unchanged")
		return false, nil
	}

	pd := profile.Data()
	if o.Cap && railPath != nil && hasOpenPart(railPath.Data()) && !capable(profile) {
		return false, ErrNotCappable
	}

	if railPath == nil {
		e.flat(pd, o)
	} else {
		rd := railPath.Data()
		e.rings(pd, rd, vertical || isVertical(rd), o)
	}

	e.valid = true
	e.profile, e.profileRev = profile, profileRev
	e.rail, e.railRev = railPath, railRev
	e.height = h
	e.opt = o

	sweep.Logger().Debug("extrusion regenerated",
		"vertices", len(e.Vertices),
		"faces", len(e.Faces))
	return true, nil
}

// capable reports whether the profile is planar, all its parts are
// closed and its outline could be triangulated.
func capable(p *sweep.Path) bool {
	d := p.Data()
	if p.Dimensions() != 2 || len(d.Vertices) > 0 && len(d.Faces) == 0 {
		return false
	}
	for _, part := range d.Parts {
		if !part.Closed {
			return false
		}
	}
	return true
}

// rings places one copy of the profile ("ring") at every rail vertex and
// connects consecutive rings.
func (e *Extruder) rings(pd, rd *sweep.Data, vertical bool, o Options) {
	np := len(pd.Vertices)
	nr := len(rd.Vertices)

	railParts := rd.PartCount()
	capRings := 0
	withCaps := o.Cap && len(pd.Faces) > 0
	if withCaps {
		for k := range railParts {
			if !railClosed(rd, k) {
				capRings += 2
			}
		}
	}

	n := np * (nr + capRings)
	e.Vertices = grow(e.Vertices, n)
	if o.ComputeNormals {
		e.Normals = grow(e.Normals, n)
	} else {
		e.Normals = e.Normals[:0]
	}
	e.Edges = e.Edges[:0]
	e.Faces = e.Faces[:0]
	e.Holes = e.Holes[:0]

	for r := range nr {
		p, nv, b := rd.Vertices[r], rd.Normals[r], rd.Binormals[r]
		base := r * np
		for i, q := range pd.Vertices {
			x, y := q[0], q[1]
			v := [3]float64{
				p[0] + x*nv[0] + y*b[0],
				p[1] + x*nv[1] + y*b[1],
				p[2] + x*nv[2] + y*b[2],
			}
			if vertical {
				v[2] = p[2] + q[2]
			}
			e.Vertices[base+i] = v

			if o.ComputeNormals {
				m := pd.Normals[i]
				w := [3]float64{
					-(m[0]*nv[0] + m[1]*b[0]),
					-(m[0]*nv[1] + m[1]*b[1]),
					-(m[0]*nv[2] + m[1]*b[2]),
				}
				if vertical {
					w[2] = 0
				}
				e.Normals[base+i] = w
			}
		}
		for _, edge := range pd.Edges {
			e.Edges = append(e.Edges, [2]int{edge[0] + base, edge[1] + base})
		}
	}

	for k := range railParts {
		lo, hi := rd.PartRange(k)
		if k > 0 {
			e.Holes = append(e.Holes, lo*np)
		}
		for r := lo; r+1 < hi; r++ {
			e.connect(pd, r, r+1)
		}
		if railClosed(rd, k) && hi-lo > 2 {
			e.connect(pd, hi-1, lo)
		}
	}

	if !withCaps {
		return
	}
	next := nr * np
	for k := range railParts {
		if railClosed(rd, k) {
			continue
		}
		lo, hi := rd.PartRange(k)
		next = e.addCap(pd, (hi-1)*np, next, +1, o.ComputeNormals)
		next = e.addCap(pd, lo*np, next, -1, o.ComputeNormals)
	}
}

// connect adds two triangles for every profile edge between rings a and b.
func (e *Extruder) connect(pd *sweep.Data, a, b int) {
	np := len(pd.Vertices)
	for _, edge := range pd.Edges {
		f0 := edge[0] + a*np
		f1 := edge[1] + a*np
		f2 := edge[0] + b*np
		f3 := edge[1] + b*np
		e.Faces = append(e.Faces, [3]int{f0, f1, f2}, [3]int{f2, f1, f3})
	}
}

// addCap copies the ring starting at vertex src to vertex dst and
// triangulates it. A positive dir keeps the profile winding, a negative
// dir flips it. The index after the new ring is returned.
func (e *Extruder) addCap(pd *sweep.Data, src, dst int, dir float64, normals bool) int {
	np := len(pd.Vertices)
	copy(e.Vertices[dst:dst+np], e.Vertices[src:src+np])
	if normals {
		for i := range np {
			e.Normals[dst+i] = [3]float64{0, 0, dir}
		}
	}
	e.addFaces(pd, dst, dir < 0)
	return dst + np
}

func (e *Extruder) addFaces(pd *sweep.Data, offset int, flip bool) {
	for _, f := range pd.Faces {
		if flip {
			e.Faces = append(e.Faces, [3]int{f[0] + offset, f[2] + offset, f[1] + offset})
		} else {
			e.Faces = append(e.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}
	}
}

// flat copies the profile once or twice, facing up and down.
func (e *Extruder) flat(pd *sweep.Data, o Options) {
	np := len(pd.Vertices)
	n := np * o.Sides
	e.Vertices = grow(e.Vertices, n)
	if o.ComputeNormals {
		e.Normals = grow(e.Normals, n)
	} else {
		e.Normals = e.Normals[:0]
	}
	e.Edges = e.Edges[:0]
	e.Faces = e.Faces[:0]
	e.Holes = e.Holes[:0]

	for side := range o.Sides {
		base := side * np
		copy(e.Vertices[base:base+np], pd.Vertices)
		dir := 1.0
		if side == 1 {
			dir = -1
		}
		if o.ComputeNormals {
			for i := range np {
				e.Normals[base+i] = [3]float64{0, 0, dir}
			}
		}
		for _, edge := range pd.Edges {
			e.Edges = append(e.Edges, [2]int{edge[0] + base, edge[1] + base})
		}
		e.addFaces(pd, base, side == 1)
		if side > 0 {
			e.Holes = append(e.Holes, base)
		}
	}
}

func hasOpenPart(rd *sweep.Data) bool {
	for k := range rd.PartCount() {
		if !railClosed(rd, k) {
			return true
		}
	}
	return false
}

func railClosed(rd *sweep.Data, k int) bool {
	return k < len(rd.Parts) && rd.Parts[k].Closed
}

// grow returns a slice of length n, reusing the storage of s if it is
// large enough. New storage is allocated with exactly n elements.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
