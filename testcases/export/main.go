// seehuhn.de/go/inkmesh - variable-width stroke tessellation
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

// Command export writes all test scenes and their tessellated meshes to
// JSON, for use by external viewers. Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/inkmesh"
	"seehuhn.de/go/inkmesh/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			scene, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.Scenes = append(out.Scenes, scene)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Lines  []jsonLine `json:"lines"`
}

type jsonLine struct {
	ID        string       `json:"id"`
	Samples   [][3]float64 `json:"samples"` // x, y, w
	Start     int          `json:"start"`
	End       int          `json:"end"`
	Triangles int          `json:"triangles"`
	Mesh      []float32    `json:"mesh"`
}

func toJSON(category string, tc testcases.TestCase) (jsonScene, error) {
	scene := jsonScene{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	strokes := inkmesh.StrokesFromPath(tc.Path, 1)
	if tc.Scale != nil {
		if err := inkmesh.ApplyWidths(strokes, tc.Scale); err != nil {
			return scene, err
		}
	}

	r, err := inkmesh.NewLineRenderer(inkmesh.Config{Capacity: 1 << 16, Prefix: tc.Name})
	if err != nil {
		return scene, err
	}
	data := r.Buffer().Data()
	for _, s := range strokes {
		id, err := r.AddLine(s)
		if err != nil {
			return scene, err
		}
		_, rng, _ := r.Line(id)

		line := jsonLine{
			ID:        string(id),
			Start:     rng.Start,
			End:       rng.End,
			Triangles: rng.Len() / 9,
			Mesh:      data[rng.Start:rng.End],
		}
		for _, p := range s {
			line.Samples = append(line.Samples, [3]float64{p.X, p.Y, p.W})
		}
		scene.Lines = append(scene.Lines, line)
	}
	return scene, nil
}
