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

// Package modifier provides transforms which reshape the parts of a path
// before it is resampled.
//
// All modifiers implement [sweep.Modifier]. They change vertex positions
// (and, for [Warp], the number of vertices) but never the number of parts
// or whether a part is closed.
package modifier

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/vector"
)

var (
	_ sweep.Modifier = (*Invert)(nil)
	_ sweep.Modifier = (*Skew)(nil)
	_ sweep.Modifier = (*Warp)(nil)
)

// Invert reverses the vertex order of every part.
type Invert struct{}

// Modify implements the [sweep.Modifier] interface.
func (*Invert) Modify(parts []sweep.Part) {
	for i := range parts {
		v := parts[i].Vertices
		for a, b := 0, len(v)-3; a < b; a, b = a+3, b-3 {
			v[a], v[a+1], v[a+2], v[b], v[b+1], v[b+2] = v[b], v[b+1], v[b+2], v[a], v[a+1], v[a+2]
		}
	}
}

// Revision implements the [sweep.Modifier] interface.
func (*Invert) Revision() uint64 { return 0 }

// DefaultSkewFactor is the conventional shear factor, mapping the x-axis
// to the diagonal.
const DefaultSkewFactor = 1.0

// Skew shears the plane: y' = y + x*factor.
type Skew struct {
	factor float64
	rev    uint64
}

// NewSkew returns a shear with the given factor.
// The factor must be finite.
func NewSkew(factor float64) (*Skew, error) {
	if !finite(factor) {
		return nil, vector.ErrNotFinite
	}
	return &Skew{factor: factor}, nil
}

// Factor returns the shear factor.
func (s *Skew) Factor() float64 { return s.factor }

// SetFactor changes the shear factor.
// Non-finite values are rejected and leave the shear unchanged.
func (s *Skew) SetFactor(factor float64) error {
	if !finite(factor) {
		return vector.ErrNotFinite
	}
	s.factor = factor
	s.rev++
	return nil
}

// Modify implements the [sweep.Modifier] interface.
func (s *Skew) Modify(parts []sweep.Part) {
	m := matrix.Matrix{1, s.factor, 0, 1, 0, 0}
	for i := range parts {
		v := parts[i].Vertices
		for k := 0; k+2 < len(v); k += 3 {
			v[k], v[k+1] = m.Apply(v[k], v[k+1])
		}
	}
}

// Revision implements the [sweep.Modifier] interface.
func (s *Skew) Revision() uint64 { return s.rev }

// Default parameters of [NewWarp].
const (
	DefaultWarpFactor  = 360.0 // degrees per unit of x
	DefaultWarpOffset  = 0.0   // degrees
	DefaultWarpSectors = 24
)

// Warp bends a horizontal strip into a ring. A point (x, y) is mapped to
// the angle a = x*factor + offset (in degrees) at distance y from the
// origin, giving (sin(a)*y, cos(a)*y).
//
// Straight edges would turn into chords of the ring. To keep them round,
// the circle is divided into sectors and an extra vertex is inserted
// wherever an edge crosses a sector boundary.
type Warp struct {
	factor  float64
	offset  float64
	sectors int
	rev     uint64
}

// NewWarp returns a warp with the default parameters: one full turn per
// unit of x, starting at angle 0, using 24 sectors.
func NewWarp() *Warp {
	return &Warp{
		factor:  DefaultWarpFactor,
		offset:  DefaultWarpOffset,
		sectors: DefaultWarpSectors,
	}
}

// Factor returns the angle per unit of x, in degrees.
func (w *Warp) Factor() float64 { return w.factor }

// Offset returns the angle at x = 0, in degrees.
func (w *Warp) Offset() float64 { return w.offset }

// Sectors returns the number of sectors per full turn.
func (w *Warp) Sectors() int { return w.sectors }

// SetFactor changes the angle per unit of x.
// Non-finite values are rejected and leave the warp unchanged.
func (w *Warp) SetFactor(deg float64) error {
	if !finite(deg) {
		return vector.ErrNotFinite
	}
	w.factor = deg
	w.rev++
	return nil
}

// SetOffset changes the angle at x = 0.
// Non-finite values are rejected and leave the warp unchanged.
func (w *Warp) SetOffset(deg float64) error {
	if !finite(deg) {
		return vector.ErrNotFinite
	}
	w.offset = deg
	w.rev++
	return nil
}

// SetSectors changes the number of sectors per full turn.
// Values below 1 are replaced by 1.
func (w *Warp) SetSectors(n int) {
	w.sectors = max(n, 1)
	w.rev++
}

// Revision implements the [sweep.Modifier] interface.
func (w *Warp) Revision() uint64 { return w.rev }

// Modify implements the [sweep.Modifier] interface.
func (w *Warp) Modify(parts []sweep.Part) {
	width := 2 * math.Pi / float64(max(w.sectors, 1))
	factor := w.factor * math.Pi / 180
	offset := w.offset * math.Pi / 180

	for i := range parts {
		part := &parts[i]
		v := part.Vertices
		n := part.Len()
		out := make([]float64, 0, len(v))

		for a := range n {
			xA := v[3*a]*factor + offset
			yA, zA := v[3*a+1], v[3*a+2]
			sA := math.Floor(xA / width)

			// place the vertex on the chord between the sector boundaries
			pa, na := sA*width, (sA+1)*width
			p, q := direction(pa), direction(na)
			c := p.Add(q.Sub(p).Mul((xA - pa) / (na - pa))).Mul(yA)
			out = append(out, c.X, c.Y, zA)

			b := a + 1
			if b == n {
				if !part.Closed {
					break
				}
				b = 0
			}
			xB := v[3*b]*factor + offset
			yB, zB := v[3*b+1], v[3*b+2]
			sB := math.Floor(xB / width)
			if sA == sB || math.IsInf(sA, 0) || math.IsInf(sB, 0) {
				continue
			}

			step, o := 1.0, 1.0
			if sA > sB {
				step, o = -1, 0
			}
			for s := sA; s != sB; s += step {
				x := (s + o) * width
				u := (x - xA) / (xB - xA)
				d := yA
				if yA != yB {
					d = yA + u*(yB-yA)
				}
				c := direction(x).Mul(d)
				out = append(out, c.X, c.Y, zA+u*(zB-zA))
			}
		}
		part.Vertices = out
	}
}

// direction returns the unit vector at the given angle, measured
// clockwise from the y-axis.
func direction(rad float64) vec.Vec2 {
	sin, cos := math.Sincos(rad)
	return vec.Vec2{X: sin, Y: cos}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
