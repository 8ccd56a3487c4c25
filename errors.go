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

import "errors"

var (
	// ErrModifierParts is returned by [Path.Update] when a modifier
	// changed the number of parts or their closed flags.
	ErrModifierParts = errors.New("sweep: modifier changed the part structure")

	// ErrNoCurrentPoint is returned by [FromGeom] when a drawing command
	// is not preceded by a MoveTo.
	ErrNoCurrentPoint = errors.New("sweep: no current point")
)
