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

// Package vector implements the small coordinate tuples used to describe
// segment end points, arc centres and radii.
//
// A Vector holds between zero and three finite scalars. Every successful
// mutation increments a revision counter; owners of a Vector detect changes
// by comparing revisions instead of being notified.
package vector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// MaxDimensions is the largest number of components a Vector can hold.
const MaxDimensions = 3

// Epsilon is the per-component tolerance used by [Equal].
const Epsilon = 1e-5

var (
	// ErrNotFinite is returned when a NaN or infinite value is assigned.
	ErrNotFinite = errors.New("vector: value is not finite")

	// ErrIndex is returned for component indices outside 0..2.
	ErrIndex = errors.New("vector: index out of range")
)

// Vector is an ordered tuple of up to three finite scalars.
// The zero value is an empty vector.
type Vector struct {
	values []float64
	rev    uint64
}

// New returns a vector with the given components.
func New(values ...float64) (*Vector, error) {
	if len(values) > MaxDimensions {
		return nil, fmt.Errorf("%w: %d components", ErrIndex, len(values))
	}
	for _, x := range values {
		if !isFinite(x) {
			return nil, ErrNotFinite
		}
	}
	return &Vector{values: append([]float64(nil), values...)}, nil
}

// XY returns a two-dimensional vector.
// It panics if x or y is not finite.
func XY(x, y float64) *Vector {
	return must(New(x, y))
}

// XYZ returns a three-dimensional vector.
// It panics if any component is not finite.
func XYZ(x, y, z float64) *Vector {
	return must(New(x, y, z))
}

func must(v *Vector, err error) *Vector {
	if err != nil {
		panic(err)
	}
	return v
}

// Dimensions returns the number of components.
func (v *Vector) Dimensions() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// Revision returns a counter which changes every time the vector is
// modified.
func (v *Vector) Revision() uint64 {
	if v == nil {
		return 0
	}
	return v.rev
}

// At returns component i, or 0 if the vector has fewer components.
func (v *Vector) At(i int) float64 {
	if v == nil || i < 0 || i >= len(v.values) {
		return 0
	}
	return v.values[i]
}

// X returns the first component.
func (v *Vector) X() float64 { return v.At(0) }

// Y returns the second component.
func (v *Vector) Y() float64 { return v.At(1) }

// Z returns the third component.
func (v *Vector) Z() float64 { return v.At(2) }

// Get returns a copy of the components, padded with zeros or truncated to
// dims entries. A negative dims returns all components.
func (v *Vector) Get(dims int) []float64 {
	if dims < 0 {
		dims = v.Dimensions()
	}
	res := make([]float64, dims)
	for i := range res {
		res[i] = v.At(i)
	}
	return res
}

// Vec2 returns the first two components.
func (v *Vector) Vec2() vec.Vec2 {
	return vec.Vec2{X: v.At(0), Y: v.At(1)}
}

// Set replaces all components.
// On error the vector is left unchanged.
func (v *Vector) Set(values ...float64) error {
	if len(values) > MaxDimensions {
		return fmt.Errorf("%w: %d components", ErrIndex, len(values))
	}
	for _, x := range values {
		if !isFinite(x) {
			return ErrNotFinite
		}
	}
	v.values = append(v.values[:0], values...)
	v.rev++
	return nil
}

// SetAt assigns component i. Missing components below i are filled with
// zeros.
func (v *Vector) SetAt(i int, x float64) error {
	if i < 0 || i >= MaxDimensions {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	if !isFinite(x) {
		return ErrNotFinite
	}
	for len(v.values) <= i {
		v.values = append(v.values, 0)
	}
	v.values[i] = x
	v.rev++
	return nil
}

// Clone returns an independent copy with a fresh revision counter.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	return &Vector{values: append([]float64(nil), v.values...)}
}

// String returns the components in the form "(x, y, z)".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range v.Dimensions() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v.values[i], 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether a and b have the same number of components and all
// components agree to within [Epsilon]. A nil vector equals nothing.
func Equal(a, b *Vector) bool {
	if a == nil || b == nil || len(a.values) != len(b.values) {
		return false
	}
	for i, x := range a.values {
		if math.Abs(x-b.values[i]) > Epsilon {
			return false
		}
	}
	return true
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
