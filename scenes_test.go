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

package inkmesh

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/inkmesh/testcases"
)

// sceneStrokes converts a test case into strokes, applying the per-sample
// width scales.
func sceneStrokes(t *testing.T, tc testcases.TestCase) []Stroke {
	t.Helper()
	strokes := StrokesFromPath(tc.Path, 1)
	if tc.Scale != nil {
		if err := ApplyWidths(strokes, tc.Scale); err != nil {
			t.Fatalf("%s: %v", tc.Name, err)
		}
	}
	return strokes
}

func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r, err := NewLineRenderer(Config{Capacity: 1 << 16})
				if err != nil {
					t.Fatal(err)
				}
				strokes := sceneStrokes(t, tc)
				if len(strokes) == 0 {
					t.Fatal("scene has no strokes")
				}

				var ids []LineID
				for _, s := range strokes {
					id, err := r.AddLine(s)
					if err != nil {
						t.Fatal(err)
					}
					ids = append(ids, id)
				}
				buf := r.Buffer()
				mesh := buf.Data()[:buf.Cursor()]
				checkFinite(t, mesh)

				// every sample with positive width is covered by the mesh
				img := rasterize(mesh, tc.Width, tc.Height)
				for _, s := range strokes {
					for _, p := range s {
						if p.W <= 0 {
							continue
						}
						x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
						if img.AlphaAt(x, y).A == 0 {
							t.Errorf("sample (%g, %g) is not covered", p.X, p.Y)
						}
					}
				}

				// erasing at the first sample of each stroke removes everything
				for i, s := range strokes {
					removed := r.Erase(s[0].Pos())
					if _, _, ok := r.Line(ids[i]); ok {
						t.Errorf("stroke %d survived erase at its first sample (removed %v)", i, removed)
					}
				}
				if r.Len() != 0 {
					t.Errorf("%d lines left", r.Len())
				}
				for i, x := range mesh {
					if x != 0 {
						t.Fatalf("element %d is %g after erasing all lines", i, x)
					}
				}
			})
		}
	}
}
