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

// Package inkmesh turns freehand strokes into triangle meshes.
//
// A stroke is an ordered list of samples, each with a position and a width
// scale. A [LineRenderer] tessellates strokes into a fixed-capacity flat
// vertex buffer ([VertexBuffer]), remembers which buffer range belongs to
// which stroke, and can later remove strokes individually or erase every
// stroke passing near a point. The host renderer uploads the dirty parts
// of the buffer and draws [VertexBuffer.DrawCount] vertices as a plain
// triangle list.
//
// Removed strokes leave zero-filled holes in the buffer. These are drawn
// as degenerate triangles and are only reclaimed by [LineRenderer.Clear].
package inkmesh

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sample is one point of a stroke.
type Sample struct {
	X, Y float64

	// W scales the nominal half-width of the stroke at this point.
	W float64
}

// Pos returns the position of the sample.
func (s Sample) Pos() vec.Vec2 {
	return vec.Vec2{X: s.X, Y: s.Y}
}

// Stroke is an ordered sequence of samples.
type Stroke []Sample

// Bounds returns the bounding box of the sample positions.
// The result is the zero rectangle for an empty stroke.
func (s Stroke) Bounds() rect.Rect {
	if len(s) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: s[0].X, LLy: s[0].Y, URx: s[0].X, URy: s[0].Y}
	for _, p := range s[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// LineID identifies a stroke stored in a [LineRenderer].
type LineID string
