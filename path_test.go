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

import (
	"errors"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sweep/segment"
	"seehuhn.de/go/sweep/vector"
)

// polygon returns a closed path through the given points.
func polygon(xy ...float64) *Path {
	n := len(xy) / 2
	var segs []segment.Segment
	for i := range n {
		j := (i + 1) % n
		segs = append(segs, segment.NewLine(
			vector.XY(xy[2*i], xy[2*i+1]),
			vector.XY(xy[2*j], xy[2*j+1])))
	}
	return New(segs...)
}

func square(x, y, size float64) *Path {
	return polygon(x, y, x+size, y, x+size, y+size, x, y+size)
}

func mustUpdate(t *testing.T, p *Path) *Data {
	t.Helper()
	if err := p.Update(false, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	return p.Data()
}

func TestEmptyPath(t *testing.T) {
	p := New()
	d := mustUpdate(t, p)
	if d.VertexCount() != 0 || len(d.Parts) != 0 || d.PartCount() != 0 {
		t.Errorf("empty path produced data: %+v", d)
	}
	if p.Dirty() {
		t.Error("empty path still dirty after update")
	}
}

func TestSquare(t *testing.T) {
	d := mustUpdate(t, square(0, 0, 1))

	if len(d.Parts) != 1 || !d.Parts[0].Closed {
		t.Fatalf("parts = %+v", d.Parts)
	}
	if d.Parts[0].Len() != 4 {
		t.Errorf("part has %d vertices, want 4", d.Parts[0].Len())
	}

	// every corner turns by 90° and is duplicated
	if d.VertexCount() != 8 {
		t.Fatalf("got %d vertices, want 8", d.VertexCount())
	}
	zero := 0
	for _, l := range d.Lengths {
		if l == 0 {
			zero++
		}
	}
	if zero != 4 {
		t.Errorf("got %d duplicated vertices, want 4", zero)
	}

	// a duplicate keeps the normal of the edge leading into the corner
	n := d.VertexCount()
	for k, l := range d.Lengths {
		if l != 0 {
			continue
		}
		if want := d.Normals[(k+n-1)%n]; d.Normals[k] != want {
			t.Errorf("duplicate %d has normal %v, want %v", k, d.Normals[k], want)
		}
	}
	if d.Vertices[2] != [3]float64{1, 0, 0} || d.Lengths[2] != 0 {
		t.Fatalf("vertex 2 = %v, length %g", d.Vertices[2], d.Lengths[2])
	}
	if d.Normals[2] != [3]float64{0, 1, 0} || d.Normals[3] != [3]float64{-1, 0, 0} {
		t.Errorf("corner (1, 0) normals = %v, %v", d.Normals[2], d.Normals[3])
	}
	if len(d.Edges) != 4 {
		t.Errorf("got %d edges, want 4", len(d.Edges))
	}
	if len(d.Faces) != 2 {
		t.Errorf("got %d faces, want 2", len(d.Faces))
	}
	if len(d.Holes) != 0 {
		t.Errorf("holes = %v", d.Holes)
	}

	// the last edge closes the loop
	last := d.Edges[len(d.Edges)-1]
	if last[1] != 0 {
		t.Errorf("closing edge = %v", last)
	}

	for i, b := range d.Binormals {
		if b != [3]float64{0, 0, -1} {
			t.Errorf("binormal %d = %v", i, b)
		}
	}
}

func TestClosedWithinTolerance(t *testing.T) {
	p := New(
		segment.NewLine(vector.XY(0, 0), vector.XY(2, 0)),
		segment.NewLine(vector.XY(2, 0), vector.XY(1, 2)),
		segment.NewLine(vector.XY(1, 2), vector.XY(0.000001, -0.000001)),
	)
	d := mustUpdate(t, p)
	if len(d.Parts) != 1 || !d.Parts[0].Closed {
		t.Fatalf("parts = %+v", d.Parts)
	}
	if d.Parts[0].Len() != 3 {
		t.Errorf("closing point not skipped: %d vertices", d.Parts[0].Len())
	}
}

func TestOpenParts(t *testing.T) {
	p := New(
		segment.NewLine(vector.XY(0, 0), vector.XY(1, 0)),
		segment.NewLine(vector.XY(1, 0), vector.XY(2, 0)),
		segment.NewLine(vector.XY(5, 5), vector.XY(6, 5)),
	)
	d := mustUpdate(t, p)
	if len(d.Parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(d.Parts))
	}
	for i, part := range d.Parts {
		if part.Closed {
			t.Errorf("part %d closed", i)
		}
	}
	if d.Parts[0].Len() != 3 || d.Parts[1].Len() != 2 {
		t.Errorf("part sizes %d, %d", d.Parts[0].Len(), d.Parts[1].Len())
	}
	if !slices.Equal(d.Holes, []int{3}) {
		t.Errorf("holes = %v, want [3]", d.Holes)
	}
	if len(d.Faces) != 0 {
		t.Error("open path was triangulated")
	}
	want := [][2]int{{0, 1}, {1, 2}, {3, 4}}
	if !slices.Equal(d.Edges, want) {
		t.Errorf("edges = %v, want %v", d.Edges, want)
	}
	if d.Vertices[2] != [3]float64{2, 0, 0} || d.Vertices[4] != [3]float64{6, 5, 0} {
		t.Errorf("end points lost: %v", d.Vertices)
	}
}

func TestCollinearVerticesDropped(t *testing.T) {
	p := New(
		segment.NewLine(vector.XY(0, 0), vector.XY(1, 0)),
		segment.NewLine(vector.XY(1, 0), vector.XY(2, 0)),
		segment.NewLine(vector.XY(2, 0), vector.XY(3, 0)),
	)
	d := mustUpdate(t, p)
	if d.VertexCount() != 3 {
		t.Fatalf("got %d vertices, want 3: %v", d.VertexCount(), d.Vertices)
	}
	if d.Vertices[2] != [3]float64{3, 0, 0} {
		t.Errorf("end point = %v", d.Vertices[2])
	}
}

func TestSmoothNormals(t *testing.T) {
	// a gentle 10° bend is below the maximum angle
	s, c := math.Sincos(10 * math.Pi / 180)
	p := New(
		segment.NewLine(vector.XY(0, 0), vector.XY(1, 0)),
		segment.NewLine(vector.XY(1, 0), vector.XY(1+c, s)),
	)
	d := mustUpdate(t, p)
	if d.VertexCount() != 3 {
		t.Fatalf("got %d vertices, want 3", d.VertexCount())
	}
	n := d.Normals[1]
	s5, c5 := math.Sincos(5 * math.Pi / 180)
	if math.Abs(n[0]+s5) > 1e-9 || math.Abs(n[1]-c5) > 1e-9 {
		t.Errorf("smoothed normal = %v, want (%g, %g)", n, -s5, c5)
	}
	if math.Abs(d.Angles[1]-10) > 1e-9 {
		t.Errorf("angle = %g, want 10", d.Angles[1])
	}
}

func TestMaxAngleParam(t *testing.T) {
	s, c := math.Sincos(10 * math.Pi / 180)
	p := New(
		segment.NewLine(vector.XY(0, 0), vector.XY(1, 0)),
		segment.NewLine(vector.XY(1, 0), vector.XY(1+c, s)),
	)
	if err := p.Update(false, &Params{MaxAngle: 5}); err != nil {
		t.Fatal(err)
	}
	if n := p.VertexCount(); n != 4 {
		t.Errorf("got %d vertices, want 4 with a hard corner", n)
	}
	if p.Params().MaxAngle != 5 {
		t.Error("parameters not stored")
	}

	// a nil params keeps the stored parameters
	p.Invalidate()
	if err := p.Update(false, nil); err != nil {
		t.Fatal(err)
	}
	if n := p.VertexCount(); n != 4 {
		t.Errorf("after nil params: got %d vertices, want 4", n)
	}
}

func TestUnknownTangentDuplicates(t *testing.T) {
	// The closing edge of this part has zero length, so the turning angle
	// at the first vertex is NaN. A NaN angle is treated like a sharp
	// corner and the vertex is duplicated.
	part := Part{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0},
		Closed:   true,
	}
	var d Data
	r := resampler{planar: true, prm: DefaultParams(), data: &d}
	r.addPart(&part)

	if !math.IsNaN(d.Angles[0]) {
		t.Fatalf("angle[0] = %g, want NaN", d.Angles[0])
	}
	if d.Lengths[0] != 0 || d.Vertices[0] != d.Vertices[1] {
		t.Errorf("first vertex not duplicated: %v", d.Vertices[:2])
	}
	for i, n := range d.Normals {
		if math.IsNaN(n[0]) || math.IsNaN(n[1]) || math.IsNaN(n[2]) {
			t.Errorf("normal %d = %v", i, n)
		}
	}
}

func TestReversed(t *testing.T) {
	p := square(0, 0, 1)
	p.SetReversed(true)
	d := mustUpdate(t, p)
	got := d.Parts[0].Vertices
	want := []float64{0, 1, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("reversed part = %v, want %v", got, want)
	}

	q := square(0, 0, 1)
	if err := q.Update(false, &Params{Reversed: true}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(q.Data().Parts[0].Vertices, want) {
		t.Error("Params.Reversed has no effect")
	}
}

func TestIdempotentUpdate(t *testing.T) {
	p := square(0, 0, 1)
	d := mustUpdate(t, p)
	first := &d.Vertices[0]
	faces := slices.Clone(d.Faces)

	d = mustUpdate(t, p)
	if &d.Vertices[0] != first {
		t.Error("second update recomputed the data")
	}
	if !slices.Equal(d.Faces, faces) {
		t.Error("faces changed")
	}

	if err := p.Update(true, nil); err != nil {
		t.Fatal(err)
	}
	if &p.Data().Vertices[0] == first {
		t.Error("forced update did not recompute")
	}
	if !slices.Equal(p.Data().Faces, faces) {
		t.Error("forced update changed the faces")
	}
}

func TestDirtyAfterPointChange(t *testing.T) {
	start := vector.XY(0, 0)
	p := New(
		segment.NewLine(start, vector.XY(1, 0)),
		segment.NewLine(vector.XY(1, 0), vector.XY(0, 1)),
		segment.NewLine(vector.XY(0, 1), vector.XY(0, 0)),
	)
	mustUpdate(t, p)
	if p.Dirty() {
		t.Fatal("dirty after update")
	}

	if err := start.SetAt(0, -1); err != nil {
		t.Fatal(err)
	}
	if !p.Dirty() {
		t.Fatal("moving a point did not dirty the path")
	}
	d := mustUpdate(t, p)
	if d.Parts[0].Vertices[0] != -1 {
		t.Errorf("first vertex = %g, want -1", d.Parts[0].Vertices[0])
	}
}

func TestFailedUpdateKeepsData(t *testing.T) {
	p := square(0, 0, 1)
	mustUpdate(t, p)
	before := p.VertexCount()

	p.AddModifier(openingModifier{})
	err := p.Update(false, nil)
	if !errors.Is(err, ErrModifierParts) {
		t.Fatalf("got %v, want ErrModifierParts", err)
	}
	if !p.Dirty() {
		t.Error("path clean after failed update")
	}
	if p.VertexCount() != before {
		t.Error("failed update replaced the data")
	}
}

// openingModifier illegally opens every part.
type openingModifier struct{}

func (openingModifier) Modify(parts []Part) {
	for i := range parts {
		parts[i].Closed = false
	}
}

func (openingModifier) Revision() uint64 { return 0 }

func TestSquareWithHole(t *testing.T) {
	outer := square(0, 0, 4)
	inner := polygon(1, 1, 1, 3, 3, 3, 3, 1)
	outer.Append(inner.Segments()...)

	d := mustUpdate(t, outer)
	if len(d.Parts) != 2 {
		t.Fatalf("got %d parts", len(d.Parts))
	}
	if !slices.Equal(d.Holes, []int{8}) {
		t.Errorf("holes = %v, want [8]", d.Holes)
	}
	if len(d.Faces) != 8 {
		t.Errorf("got %d faces, want 8", len(d.Faces))
	}

	if area := faceArea(d); math.Abs(area-12) > 1e-9 {
		t.Errorf("covered area = %g, want 12", area)
	}
}

func TestSeparatePolygons(t *testing.T) {
	p := square(0, 0, 1)
	p.Append(square(3, 0, 1).Segments()...)
	d := mustUpdate(t, p)
	if len(d.Faces) != 4 {
		t.Fatalf("got %d faces, want 4", len(d.Faces))
	}
	for _, f := range d.Faces {
		left := f[0] < 8
		for _, v := range f {
			if (v < 8) != left {
				t.Errorf("face %v spans both squares", f)
			}
		}
	}
}

// faceArea returns the signed area covered by the faces in the xy plane.
func faceArea(d *Data) float64 {
	var area float64
	for _, f := range d.Faces {
		a, b, c := d.Vertices[f[0]], d.Vertices[f[1]], d.Vertices[f[2]]
		area += ((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])) / 2
	}
	return area
}

func TestHoleAfterSecondOutline(t *testing.T) {
	p := square(0, 0, 4)
	p.Append(square(10, 0, 1).Segments()...)
	p.Append(polygon(1, 1, 1, 3, 3, 3, 3, 1).Segments()...)

	d := mustUpdate(t, p)
	if d.PartCount() != 3 {
		t.Fatalf("got %d parts", d.PartCount())
	}
	if area := faceArea(d); math.Abs(area-13) > 1e-9 {
		t.Errorf("covered area = %g, want 13", area)
	}
}

func TestIslandInHole(t *testing.T) {
	p := square(0, 0, 4)
	p.Append(polygon(1, 1, 1, 3, 3, 3, 3, 1).Segments()...)
	p.Append(square(1.5, 1.5, 1).Segments()...)

	d := mustUpdate(t, p)
	if area := faceArea(d); math.Abs(area-13) > 1e-9 {
		t.Errorf("covered area = %g, want 13", area)
	}
}

func TestInsideBoundaryVertex(t *testing.T) {
	d := &Data{Mesh: Mesh{
		Vertices: [][3]float64{
			{0, 0, 0}, {4, 0, 0}, {4, 4, 0}, {0, 4, 0},
			{4, 2, 0}, {3, 1, 0}, {2, 2, 0}, {3, 3, 0},
		},
		Holes: []int{4},
	}}
	if d.contains(0, vec.Vec2{X: 4, Y: 2}) {
		t.Fatal("vertex on the right edge counted as inside")
	}
	if !d.inside(1, 0) {
		t.Error("part touching the boundary not found inside")
	}
	if d.inside(0, 1) {
		t.Error("outer part found inside the inner one")
	}
}

func TestNonPlanarFrame(t *testing.T) {
	p := New(segment.NewLine(vector.XYZ(0, 0, 0), vector.XYZ(0, 0, 2)))
	d := mustUpdate(t, p)
	if p.Dimensions() != 3 {
		t.Fatalf("dimensions = %d", p.Dimensions())
	}
	if d.VertexCount() != 2 {
		t.Fatalf("got %d vertices", d.VertexCount())
	}
	for i := range 2 {
		if d.Normals[i] != [3]float64{1, 0, 0} || d.Binormals[i] != [3]float64{0, 1, 0} {
			t.Errorf("frame %d = %v, %v", i, d.Normals[i], d.Binormals[i])
		}
	}
	if d.Tangents[0] != [3]float64{0, 0, 1} {
		t.Errorf("tangent = %v", d.Tangents[0])
	}
	if len(d.Faces) != 0 {
		t.Error("3D path triangulated")
	}
}

func TestJoin(t *testing.T) {
	a := square(0, 0, 1)
	b := square(0, 0, 1)
	mustUpdate(t, a)
	na := a.VertexCount()
	fa := len(a.Data().Faces)
	nb := mustUpdate(t, b).VertexCount()

	err := a.Join(b, vector.XY(5, 0), nil, vector.XYZ(2, 2, 1))
	if err != nil {
		t.Fatal(err)
	}
	d := a.Data()
	if a.VertexCount() != na+nb {
		t.Errorf("vertex count = %d, want %d", a.VertexCount(), na+nb)
	}
	for _, f := range d.Faces[fa:] {
		for _, v := range f {
			if v < na {
				t.Errorf("appended face %v refers to the original vertices", f)
			}
		}
	}
	if !slices.Equal(d.Holes, []int{na}) {
		t.Errorf("holes = %v", d.Holes)
	}
	if len(a.Segments()) != 8 {
		t.Errorf("got %d segments", len(a.Segments()))
	}
	if a.Dirty() {
		t.Error("joined path is dirty")
	}

	bb := a.BBox()
	if bb.LLx != 0 || bb.URx != 12 || bb.URy != 2 {
		t.Errorf("bbox = %v", bb)
	}
}

func TestJoinRotate(t *testing.T) {
	a := New()
	b := New(segment.NewLine(vector.XY(0, 0), vector.XY(1, 0)))
	if err := a.Join(b, nil, vector.XYZ(0, 0, 90), nil); err != nil {
		t.Fatal(err)
	}
	d := a.Data()
	end := d.Vertices[1]
	if math.Abs(end[0]) > 1e-12 || math.Abs(end[1]-1) > 1e-12 {
		t.Errorf("rotated end point = %v", end)
	}
	tan := d.Tangents[0]
	if math.Abs(tan[0]) > 1e-12 || math.Abs(tan[1]-1) > 1e-12 {
		t.Errorf("rotated tangent = %v", tan)
	}
	if len(d.Holes) != 0 {
		t.Errorf("holes = %v", d.Holes)
	}
}

func TestFromGeom(t *testing.T) {
	pd := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 0}).
		QuadTo(vec.Vec2{X: 3, Y: 1}, vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 0, Y: 2}).
		Close()
	p, err := FromGeom(pd.Iter())
	if err != nil {
		t.Fatal(err)
	}
	segs := p.Segments()
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	if _, ok := segs[1].(*segment.Curve); !ok {
		t.Errorf("segment 1 is %T", segs[1])
	}
	d := mustUpdate(t, p)
	if len(d.Parts) != 1 || !d.Parts[0].Closed {
		t.Errorf("parts = %+v", d.Parts)
	}
	if len(d.Faces) == 0 {
		t.Error("no faces")
	}

	out := p.Outline()
	if out.Cmds[0] != path.CmdMoveTo || out.Cmds[len(out.Cmds)-1] != path.CmdClose {
		t.Errorf("outline commands = %v", out.Cmds)
	}
}

func TestFromGeomNoCurrentPoint(t *testing.T) {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 1}})
	}
	if _, err := FromGeom(p); !errors.Is(err, ErrNoCurrentPoint) {
		t.Errorf("got %v, want ErrNoCurrentPoint", err)
	}
}

func TestClone(t *testing.T) {
	p := square(0, 0, 1)
	q := p.Clone()
	_ = q.Segments()[0].Start().SetAt(0, 7)
	if p.Segments()[0].Start().X() != 0 {
		t.Error("clone shares points with the original")
	}
	if !q.Dirty() {
		t.Error("clone is not dirty")
	}
}

func TestFaceBBox(t *testing.T) {
	m := &Mesh{
		Vertices: [][3]float64{{1, 2, 0}, {3, 2, 0}, {2, 5, 7}, {-10, -10, 0}},
	}
	if _, ok := m.FaceBBox(); ok {
		t.Error("mesh without faces has a bounding box")
	}
	m.Faces = [][3]int{{0, 1, 2}}
	b, ok := m.FaceBBox()
	if !ok || b.LLx != 1 || b.LLy != 2 || b.URx != 3 || b.URy != 5 {
		t.Errorf("bbox = %v, %t", b, ok)
	}
}
