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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var sceneCases = []TestCase{
	{
		Name:   "spiral",
		Path:   spiralPath(64, 64, 5, 50, 3),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "sine",
		Path:   sinePath(8, 64, 112, 30, 2.5, 80),
		Width:  128,
		Height: 128,
	},
	{
		Name: "several_strokes",
		Path: concat(
			polyline(pt(10, 10), pt(118, 10)),
			polyline(pt(10, 40), pt(60, 80), pt(118, 40)),
			polygon(pt(30, 100), pt(60, 100), pt(45, 120)),
			polyline(pt(100, 100)),
		),
		Width:  128,
		Height: 128,
	},
}

// spiralPath builds an Archimedean spiral as a polyline.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rMin, Y: cy}}) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			p := vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// sinePath samples a sine wave from x0 to x1 around the line y = yMid.
func sinePath(x0, yMid, x1, amplitude, periods float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			p := vec.Vec2{
				X: x0 + t*(x1-x0),
				Y: yMid + amplitude*math.Sin(2*math.Pi*periods*t),
			}
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}
