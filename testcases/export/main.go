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

// Command export writes the meshes of all test cases to a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sweep"
	"seehuhn.de/go/sweep/testcases"
)

func main() {
	out := flag.String("o", "testdata/meshes.json", "output file")
	verbose := flag.Bool("v", false, "log extrusion details")
	flag.Parse()

	if *verbose {
		sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var doc struct {
		Meshes []jsonMesh `json:"meshes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			e, err := tc.Build()
			if err != nil {
				panic(err)
			}
			doc.Meshes = append(doc.Meshes, toJSON(category, tc, &e.Mesh))
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		panic(err)
	}
}

type jsonMesh struct {
	Name     string       `json:"name"`
	Vertices [][3]float64 `json:"vertices"`
	Normals  [][3]float64 `json:"normals,omitempty"`
	Faces    [][3]int     `json:"faces"`
	Edges    [][2]int     `json:"edges,omitempty"`
	Holes    []int        `json:"holes,omitempty"`
}

func toJSON(category string, tc testcases.TestCase, m *sweep.Mesh) jsonMesh {
	return jsonMesh{
		Name:     category + "_" + tc.Name,
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Faces:    m.Faces,
		Edges:    m.Edges,
		Holes:    m.Holes,
	}
}
