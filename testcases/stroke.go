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

var basicCases = []TestCase{
	{
		Name:   "dot",
		Path:   polyline(pt(32, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "segment",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "straight_three",
		Path:   polyline(pt(12, 32), pt(32, 32), pt(52, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal",
		Path:   polyline(pt(10, 10), pt(54, 54)),
		Width:  64,
		Height: 64,
	},
}

var joinCases = []TestCase{
	{
		Name:   "corner_left",
		Path:   polyline(pt(10, 20), pt(40, 20), pt(40, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_right",
		Path:   polyline(pt(10, 44), pt(40, 44), pt(40, 14)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shallow",
		Path:   polyline(pt(8, 32), pt(32, 28), pt(56, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hairpin",
		Path:   polyline(pt(10, 32), pt(50, 32), pt(10, 32.5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Path:   polyline(pt(6, 40), pt(16, 24), pt(26, 40), pt(36, 24), pt(46, 40), pt(56, 24)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "closed_square",
		Path:   polygon(pt(16, 16), pt(48, 16), pt(48, 48), pt(16, 48)),
		Width:  64,
		Height: 64,
	},
}
