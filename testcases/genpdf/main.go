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

// Command genpdf tessellates all test scenes and writes one PDF per scene
// for visual inspection. Each page shows the filled triangle mesh, the
// triangle edges, and the sample polyline drawn with round caps and joins.
// If Ghostscript is installed, the PDFs are also rendered to PNG.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/inkmesh"
	"seehuhn.de/go/inkmesh/testcases"
)

const (
	outDir = "testdata/mesh"

	// zoom is the number of PDF points per user unit.
	zoom = 4
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr == nil {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	strokes := inkmesh.StrokesFromPath(tc.Path, 1)
	if tc.Scale != nil {
		if err := inkmesh.ApplyWidths(strokes, tc.Scale); err != nil {
			return err
		}
	}

	r, err := inkmesh.NewLineRenderer(inkmesh.Config{Capacity: 1 << 16})
	if err != nil {
		return err
	}
	for _, s := range strokes {
		if _, err := r.AddLine(s); err != nil {
			return err
		}
	}
	buf := r.Buffer()
	mesh := buf.Data()[:buf.Cursor()]

	paper := &pdf.Rectangle{
		URx: float64(zoom * tc.Width),
		URy: float64(zoom * tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; scenes assume top-left.
	page.Transform(matrix.Matrix{zoom, 0, 0, -zoom, 0, paper.URy})

	// One closed subpath per mesh triangle. Holes left by removed lines
	// would show up as zero-area triangles at the origin and are skipped.
	addTriangles := func() {
		for k := 0; k+9 <= len(mesh); k += 9 {
			t := mesh[k : k+9]
			if t[0] == 0 && t[1] == 0 && t[3] == 0 && t[4] == 0 && t[6] == 0 && t[7] == 0 {
				continue
			}
			page.MoveTo(float64(t[0]), float64(t[1]))
			page.LineTo(float64(t[3]), float64(t[4]))
			page.LineTo(float64(t[6]), float64(t[7]))
			page.ClosePath()
		}
	}

	// filled mesh
	page.SetFillColor(color.DeviceGray(0.7))
	addTriangles()
	page.Fill()

	// triangle edges
	page.SetStrokeColor(color.DeviceGray(0.3))
	page.SetLineWidth(0.05)
	page.SetLineJoin(graphics.LineJoinBevel)
	addTriangles()
	page.Stroke()

	// sample polylines
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.2)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, s := range strokes {
		page.MoveTo(s[0].X, s[0].Y)
		for _, p := range s[1:] {
			page.LineTo(p.X, p.Y)
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
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
