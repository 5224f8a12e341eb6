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
	"image/color"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestStrokesFromPath(t *testing.T) {
	p := path.Path(func(yield func(path.Command, []vec.Vec2) bool) {
		steps := []struct {
			cmd path.Command
			pts []vec.Vec2
		}{
			{path.CmdLineTo, []vec.Vec2{{X: 9, Y: 9}}}, // no current point, ignored
			{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
			{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
			{path.CmdCubeTo, []vec.Vec2{{X: 11, Y: 1}, {X: 12, Y: 2}, {X: 10, Y: 10}}},
			{path.CmdClose, nil},
			{path.CmdMoveTo, []vec.Vec2{{X: 5, Y: 5}}},
			{path.CmdMoveTo, []vec.Vec2{{X: 20, Y: 20}}},
			{path.CmdQuadTo, []vec.Vec2{{X: 25, Y: 25}, {X: 30, Y: 20}}},
		}
		for _, s := range steps {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	})

	got := StrokesFromPath(p, 2)
	want := []Stroke{
		{{X: 0, Y: 0, W: 2}, {X: 10, Y: 0, W: 2}, {X: 10, Y: 10, W: 2}, {X: 0, Y: 0, W: 2}},
		{{X: 5, Y: 5, W: 2}},
		{{X: 20, Y: 20, W: 2}, {X: 30, Y: 20, W: 2}},
	}
	if !slices.EqualFunc(got, want, slices.Equal[Stroke]) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStrokeBounds(t *testing.T) {
	b := straight(3, 4, -1, 7, 2, -5).Bounds()
	if b.LLx != -1 || b.LLy != -5 || b.URx != 3 || b.URy != 7 {
		t.Errorf("bounds %v", b)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#0077ff", color.RGBA{0x00, 0x77, 0xff, 0xff}},
		{"0x0077FF", color.RGBA{0x00, 0x77, 0xff, 0xff}},
		{"#f80", color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{" red ", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "#12345", "#gggggg", "notacolour", "0x1234567"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestApplyWidths(t *testing.T) {
	strokes := []Stroke{straight(0, 0, 1, 1), straight(5, 5)}
	if err := ApplyWidths(strokes, []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if strokes[0][1].W != 2 || strokes[1][0].W != 3 {
		t.Errorf("widths not applied: %v", strokes)
	}
	if err := ApplyWidths(strokes, []float64{1, 2}); err == nil {
		t.Error("too few widths accepted")
	}
}
