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

// Command genpdf draws a top view of every test case into a PDF file,
// and optionally renders the PDF files to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/testcases"
)

// margin is the blank border around the drawing, in points.
const margin = 4

func main() {
	dir := flag.String("dir", "testdata/reference", "output directory")
	withPNG := flag.Bool("png", false, "also render PNG files with Ghostscript")
	withEdges := flag.Bool("edges", false, "draw the profile edges")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*dir, name+".pdf")

			e, err := tc.Build()
			if err != nil {
				panic(err)
			}
			if err := generatePDF(tc, &e.Mesh, *withEdges, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(*dir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, m *sweep.Mesh, edges bool, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	ctm, s := fit(m, float64(tc.Width), float64(tc.Height))
	page.Transform(ctm)

	// Faces, each made counter-clockwise so that overlapping faces
	// do not cancel under the nonzero rule.
	page.SetFillColor(color.DeviceGray(1))
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		if (b[0]-a[0])*(c[1]-a[1])-(b[1]-a[1])*(c[0]-a[0]) < 0 {
			b, c = c, b
		}
		page.MoveTo(a[0], a[1])
		page.LineTo(b[0], b[1])
		page.LineTo(c[0], c[1])
		page.ClosePath()
	}
	if len(m.Faces) > 0 {
		page.Fill()
	}

	// Profile edges of every ring
	if edges && len(m.Edges) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.5 / s)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, edge := range m.Edges {
			a, b := m.Vertices[edge[0]], m.Vertices[edge[1]]
			page.MoveTo(a[0], a[1])
			page.LineTo(b[0], b[1])
		}
		page.Stroke()
	}

	return page.Close()
}

// fit maps the XY bounding box of the faces into the page.
// The second return value is the scale factor.
func fit(m *sweep.Mesh, width, height float64) (matrix.Matrix, float64) {
	box, ok := m.FaceBBox()
	dx, dy := box.Dx(), box.Dy()
	if !ok || !(dx > 0 || dy > 0) {
		return matrix.Identity, 1
	}
	w, h := width-2*margin, height-2*margin
	s := math.Inf(1)
	if dx > 0 {
		s = w / dx
	}
	if dy > 0 {
		s = min(s, h/dy)
	}
	ox := margin + (w-s*dx)/2
	oy := margin + (h-s*dy)/2
	ctm := matrix.Translate(-box.LLx, -box.LLy).
		Mul(matrix.Scale(s, s)).
		Mul(matrix.Translate(ox, oy))
	return ctm, s
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
