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

var widthCases = []TestCase{
	{
		Name:   "taper",
		Path:   polyline(pt(8, 32), pt(24, 32), pt(40, 32), pt(56, 32)),
		Scale:  []float64{0.5, 1, 2, 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "swell",
		Path:   polyline(pt(8, 40), pt(20, 24), pt(32, 20), pt(44, 24), pt(56, 40)),
		Scale:  []float64{0.5, 1.5, 3, 1.5, 0.5},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_width",
		Path:   polyline(pt(10, 32), pt(32, 20), pt(54, 32)),
		Scale:  []float64{0, 0, 0},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vanishing_end",
		Path:   polyline(pt(10, 32), pt(32, 32), pt(54, 32)),
		Scale:  []float64{2, 1, 0},
		Width:  64,
		Height: 64,
	},
}

var degenerateCases = []TestCase{
	{
		Name:   "duplicate_start",
		Path:   polyline(pt(10, 32), pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "duplicate_middle",
		Path:   polyline(pt(10, 32), pt(32, 32), pt(32, 32), pt(32, 32), pt(32, 54)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "duplicate_end",
		Path:   polyline(pt(10, 32), pt(54, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "all_same",
		Path:   polyline(pt(32, 32), pt(32, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversal",
		Path:   polyline(pt(10, 32), pt(54, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
	},
}
