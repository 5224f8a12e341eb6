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
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestEraseScenario(t *testing.T) {
	r := newTestRenderer(t, 1000)
	id, err := r.AddLine(straight(0, 0, 10, 0, 20, 0))
	if err != nil {
		t.Fatal(err)
	}
	if n := r.Buffer().Cursor(); n != 9*18 {
		t.Errorf("three-sample stroke uses %d elements, want %d", n, 9*18)
	}

	if ids := r.Erase(vec.Vec2{X: 1000, Y: 1000}); len(ids) != 0 {
		t.Errorf("far erase removed %v", ids)
	}
	if r.Len() != 1 {
		t.Fatal("far erase removed a line")
	}

	ids := r.Erase(vec.Vec2{X: 10, Y: 0})
	if !slices.Equal(ids, []LineID{id}) {
		t.Errorf("erase returned %v, want [%s]", ids, id)
	}
	if r.Len() != 0 {
		t.Errorf("%d lines left", r.Len())
	}
	for i, x := range r.Buffer().Data()[:r.Buffer().Cursor()] {
		if x != 0 {
			t.Fatalf("element %d is %g after erase", i, x)
		}
	}

	// erased lines are gone for later scans
	if ids := r.Erase(vec.Vec2{X: 10, Y: 0}); len(ids) != 0 {
		t.Errorf("second erase returned %v", ids)
	}
}

func TestEraseThreshold(t *testing.T) {
	cases := []struct {
		x       float64
		removed bool
	}{
		{19.999, true},
		{20, false},
		{20.001, false},
		{-19.999, true},
		{-20, false},
	}
	for _, tc := range cases {
		r := newTestRenderer(t, 1000)
		r.AddLine(straight(0, 0))
		ids := r.EraseWithin(vec.Vec2{X: tc.x, Y: 0}, 20)
		if got := len(ids) == 1; got != tc.removed {
			t.Errorf("erase at distance %g: removed = %t, want %t", tc.x, got, tc.removed)
		}
	}

	// diagonal distance exactly 5
	r := newTestRenderer(t, 1000)
	r.AddLine(straight(0, 0))
	if ids := r.EraseWithin(vec.Vec2{X: 3, Y: 4}, 5); len(ids) != 0 {
		t.Error("sample on the boundary circle was hit")
	}
}

func TestEraseSelectsWholeLines(t *testing.T) {
	r := newTestRenderer(t, 10000)
	near1, _ := r.AddLine(straight(0, 0, 100, 0, 200, 0))
	far, _ := r.AddLine(straight(0, 100, 200, 100))
	near2, _ := r.AddLine(straight(500, 500, 105, 10))
	// segment passes the point, but no sample is close
	between, _ := r.AddLine(straight(50, -50, 150, 50))

	ids := r.Erase(vec.Vec2{X: 100, Y: 5})
	want := []LineID{near1, near2}
	if !slices.Equal(ids, want) {
		t.Errorf("erase returned %v, want %v", ids, want)
	}
	got := r.IDs()
	if !slices.Equal(got, []LineID{far, between}) {
		t.Errorf("remaining lines %v", got)
	}
	_, rng, _ := r.Line(far)
	if r.Buffer().Data()[rng.Start] == 0 && r.Buffer().Data()[rng.Start+1] == 0 {
		t.Error("unrelated line was zeroed")
	}
}

func TestEraseConfiguredRadius(t *testing.T) {
	r, err := NewLineRenderer(Config{Capacity: 1000, EraseRadius: 2})
	if err != nil {
		t.Fatal(err)
	}
	r.AddLine(straight(0, 0))
	if ids := r.Erase(vec.Vec2{X: 3, Y: 0}); len(ids) != 0 {
		t.Errorf("erase outside the configured radius removed %v", ids)
	}
	if ids := r.Erase(vec.Vec2{X: 1, Y: 0}); len(ids) != 1 {
		t.Errorf("erase inside the configured radius removed %v", ids)
	}
}

func TestEraseNonPositiveRadius(t *testing.T) {
	r := newTestRenderer(t, 1000)
	id, _ := r.AddLine(straight(0, 0, 10, 0))
	for _, radius := range []float64{-20, 0, math.NaN()} {
		if ids := r.EraseWithin(vec.Vec2{X: 0, Y: 0}, radius); len(ids) != 0 {
			t.Errorf("radius %g removed %v", radius, ids)
		}
	}
	if !slices.Equal(r.IDs(), []LineID{id}) {
		t.Errorf("lines %v, want [%s]", r.IDs(), id)
	}
}

func TestNearBox(t *testing.T) {
	b := straight(0, 0, 10, 5).Bounds()
	cases := []struct {
		pt   vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 5, Y: 2}, true},
		{vec.Vec2{X: -2, Y: 0}, true},
		{vec.Vec2{X: 13, Y: 8}, true},
		{vec.Vec2{X: -3.5, Y: 0}, false},
		{vec.Vec2{X: 5, Y: 9}, false},
	}
	for _, tc := range cases {
		if got := nearBox(b, tc.pt, 3); got != tc.want {
			t.Errorf("nearBox(%v) = %t, want %t", tc.pt, got, tc.want)
		}
	}
}

func TestLogging(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := NewLineRenderer(Config{Capacity: 1000, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	id, _ := r.AddLine(straight(0, 0))
	r.Erase(vec.Vec2{})
	r.Clear()

	log := out.String()
	for _, msg := range []string{"line added", "line removed", "erase", "lines cleared", string(id)} {
		if !strings.Contains(log, msg) {
			t.Errorf("log output lacks %q:\n%s", msg, log)
		}
	}
}
