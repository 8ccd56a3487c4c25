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

import "math"

// angleSigma is the tolerance added to the maximum angle before a turn
// counts as a hard corner.
const angleSigma = 0.001

type vec3 [3]float64

func (a vec3) sub(b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec3) add(b vec3) vec3 { return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec3) dot(b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
func (a vec3) scale(s float64) vec3 { return vec3{a[0] * s, a[1] * s, a[2] * s} }
func (a vec3) length() float64      { return math.Sqrt(a.dot(a)) }

var unknown = vec3{math.NaN(), math.NaN(), math.NaN()}

// resampler appends the retained vertices of one part after another.
type resampler struct {
	planar bool
	prm    Params
	data   *Data
}

func (r *resampler) at(part *Part, i int) vec3 {
	i %= part.Len()
	v := part.Vertices[3*i : 3*i+3]
	if r.planar {
		return vec3{v[0], v[1], 0}
	}
	return vec3{v[0], v[1], v[2]}
}

// frame returns the normal and binormal for the given unit tangent.
// Planar paths use the in-plane normal. Non-planar paths use a fixed
// reference frame, which twists along curved 3D rails.
func (r *resampler) frame(t vec3) (normal, binormal vec3) {
	if r.planar {
		return vec3{-t[1], t[0], 0}, vec3{0, 0, -1}
	}
	return vec3{1, 0, 0}, vec3{0, 1, 0}
}

// turn returns the angle between two unit tangents in degrees.
// The result is NaN if prev is unknown.
func turn(t, prev vec3) float64 {
	c := t.dot(prev)
	if !math.IsNaN(c) {
		c = max(-1, min(1, c))
	}
	return math.Acos(c) * 180 / math.Pi
}

func (r *resampler) emit(length, angle float64, pos, tangent, normal, binormal vec3) {
	d := r.data
	d.Lengths = append(d.Lengths, length)
	d.Angles = append(d.Angles, angle)
	d.Vertices = append(d.Vertices, pos)
	d.Tangents = append(d.Tangents, tangent)
	d.Normals = append(d.Normals, normal)
	d.Binormals = append(d.Binormals, binormal)
}

// addPart resamples a part and appends its vertices and edges.
//
// For every vertex, later vertices are scanned until one is far enough
// away and turns sharply enough to be kept; the vertices in between are
// dropped. Turns above the maximum angle duplicate the vertex, so that the
// two copies can carry different normals.
func (r *resampler) addPart(part *Part) {
	n := part.Len()
	if n == 0 {
		return
	}
	minLength := r.prm.MinLength
	minAngle, maxAngle := r.prm.MinAngle, r.prm.MaxAngle
	first := len(r.data.Vertices)

	prevT, prevN := unknown, unknown
	if part.Closed {
		t := r.at(part, 0).sub(r.at(part, n-1))
		if l := t.length(); l > 0 {
			prevT = t.scale(1 / l)
			prevN, _ = r.frame(prevT)
		}
	}

	// these carry over from one vertex to the next
	var length, angle float64
	var tangent vec3
	normal, binormal := vec3{0, 0, 1}, vec3{0, 0, -1}

	// Closed parts may look past the wrap-around; open parts stop at
	// their final vertex, which is always accepted as a candidate.
	last := n - 1
	if part.Closed {
		last = n + 1
	}

	i := 0
	for i < n {
		next := i + 1
		isFirst := i == 0
		isLast := next == n
		pos := r.at(part, i)

		smoothed := false
		var smooth vec3
		for next <= last {
			if !part.Closed && isLast {
				break
			}

			finalCandidate := !part.Closed && next == n-1

			t := r.at(part, next).sub(pos)
			l := t.length()
			if l == 0 {
				next++
				continue
			}
			length = l
			tangent = t.scale(1 / l)
			if isFirst && !part.Closed {
				angle = minAngle
			} else {
				angle = turn(tangent, prevT)
			}
			normal, binormal = r.frame(tangent)

			if angle < minAngle && !isLast && !finalCandidate {
				next++
				continue
			}

			steep := math.IsNaN(angle) || angle > maxAngle+angleSigma
			if steep {
				dupN := prevN
				if math.IsNaN(dupN[0]) {
					dupN = normal
				}
				r.emit(0, angle, pos, tangent, dupN, binormal)
			}

			if length > minLength && (isFirst || steep || angle > minAngle || finalCandidate) {
				s := prevN.add(normal).scale(0.5)
				if ls := s.length(); ls > 0 && !steep {
					smoothed = true
					smooth = s.scale(1 / ls)
					for k := range smooth {
						if math.IsNaN(smooth[k]) {
							smooth[k] = normal[k]
						}
					}
				}
				break
			}
			next++
		}

		if smoothed {
			r.emit(length, angle, pos, tangent, smooth, binormal)
		} else {
			r.emit(length, angle, pos, tangent, normal, binormal)
		}
		prevT, prevN = tangent, normal
		i = next
	}

	end := len(r.data.Vertices)
	for v := first; v < end; v++ {
		if !(r.data.Lengths[v] > 0) {
			continue
		}
		w := v + 1
		if w == end {
			if !part.Closed {
				break
			}
			w = first
		}
		r.data.Edges = append(r.data.Edges, [2]int{v, w})
	}
}
