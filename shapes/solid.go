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

package shapes

import (
	"fmt"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/extrude"
)

// Box is a rectangle extruded upwards.
//
// Changing the exported fields takes effect on the next call to Update.
type Box struct {
	X, Y         float64
	Width, Depth float64
	Height       float64
	Centered     bool
	Options      extrude.Options

	modifiers []sweep.Modifier
	key       RectangleParams
	base      *sweep.Path
	ext       extrude.Extruder
}

// NewBox returns a unit cube.
func NewBox() *Box {
	return &Box{
		Width:   1,
		Depth:   1,
		Height:  1,
		Options: extrude.DefaultOptions(),
	}
}

// AddModifier appends a modifier to the base rectangle.
func (b *Box) AddModifier(m sweep.Modifier) {
	b.modifiers = append(b.modifiers, m)
	b.base = nil
}

// Update regenerates the mesh if any parameter has changed.
// It reports whether the mesh was rebuilt.
func (b *Box) Update() (bool, error) {
	key := RectangleParams{
		X:        b.X,
		Y:        b.Y,
		Width:    b.Width,
		Height:   b.Depth,
		Centered: b.Centered,
	}
	if b.base == nil || key != b.key {
		b.base = Rectangle(key)
		for _, m := range b.modifiers {
			b.base.AddModifier(m)
		}
		b.key = key
	}
	changed, err := b.ext.Extrude(b.base, extrude.Height(b.Height), &b.Options)
	if err != nil {
		return false, fmt.Errorf("box: %w", err)
	}
	return changed, nil
}

// Base returns the profile of the last update.
func (b *Box) Base() *sweep.Path { return b.base }

// Mesh returns the geometry of the last update.
func (b *Box) Mesh() *sweep.Mesh { return &b.ext.Mesh }

// Cylinder is a circle, ring or sector extruded upwards.
type Cylinder struct {
	CircleParams
	Height  float64
	Options extrude.Options

	key  CircleParams
	base *sweep.Path
	ext  extrude.Extruder
}

// NewCylinder returns a cylinder of radius 1 and height 1.
func NewCylinder() *Cylinder {
	c := &Cylinder{
		CircleParams: DefaultCircleParams(),
		Height:       1,
		Options:      extrude.DefaultOptions(),
	}
	c.Divisions = 12
	return c
}

// Update regenerates the mesh if any parameter has changed.
// Open outlines are extruded without caps.
func (c *Cylinder) Update() (bool, error) {
	if c.base == nil || c.CircleParams != c.key {
		base, err := Circle(c.CircleParams)
		if err != nil {
			return false, fmt.Errorf("cylinder: %w", err)
		}
		c.base = base
		c.key = c.CircleParams
	}
	opt := c.Options
	opt.Cap = opt.Cap && c.Closed()
	changed, err := c.ext.Extrude(c.base, extrude.Height(c.Height), &opt)
	if err != nil {
		return false, fmt.Errorf("cylinder: %w", err)
	}
	return changed, nil
}

// Base returns the profile of the last update.
func (c *Cylinder) Base() *sweep.Path { return c.base }

// Mesh returns the geometry of the last update.
func (c *Cylinder) Mesh() *sweep.Mesh { return &c.ext.Mesh }
