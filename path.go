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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// StrokesFromPath converts each subpath of p into a stroke with constant
// width scale w. Curves are not flattened: only their end points become
// samples. A closed subpath gets a final sample at its start point.
func StrokesFromPath(p path.Path, w float64) []Stroke {
	var res []Stroke
	var cur Stroke
	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}
	add := func(pt vec.Vec2) {
		cur = append(cur, Sample{X: pt.X, Y: pt.Y, W: w})
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			add(pts[0])
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			if len(cur) == 0 {
				continue
			}
			add(pts[len(pts)-1])
		case path.CmdClose:
			if len(cur) == 0 {
				continue
			}
			if first := cur[0]; cur[len(cur)-1].Pos() != first.Pos() {
				cur = append(cur, first)
			}
			flush()
		}
	}
	flush()
	return res
}

// ApplyWidths sets the width scales of the samples in strokes, in order,
// from w. The number of values must equal the total number of samples.
func ApplyWidths(strokes []Stroke, w []float64) error {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	if n != len(w) {
		return fmt.Errorf("%d width values for %d samples", len(w), n)
	}
	k := 0
	for _, s := range strokes {
		for i := range s {
			s[i].W = w[k]
			k++
		}
	}
	return nil
}
