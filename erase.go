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
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Erase removes every line which has a sample closer than the configured
// erase radius to pt, and returns the identifiers of the removed lines in
// the order the lines were added. The result can be forwarded to other
// session participants, which replay it with [LineRenderer.RemoveLine].
func (r *LineRenderer) Erase(pt vec.Vec2) []LineID {
	return r.EraseWithin(pt, r.eraseRadius)
}

// EraseWithin is like [LineRenderer.Erase] but uses the given radius.
// Only samples at a distance strictly less than radius count as hits;
// the segments between samples are not tested. A radius which is not
// positive matches nothing.
func (r *LineRenderer) EraseWithin(pt vec.Vec2, radius float64) []LineID {
	if !(radius > 0) {
		return nil
	}
	hits := r.hitTest(pt, radius)
	for _, id := range hits {
		r.RemoveLine(id)
	}
	if len(hits) > 0 {
		r.logger.Debug("erase",
			slog.Float64("x", pt.X),
			slog.Float64("y", pt.Y),
			slog.Int("removed", len(hits)))
	}
	return hits
}

// hitTest collects the lines with a sample within radius of pt. Lines
// are tested independently and the scan of a line stops at its first hit.
func (r *LineRenderer) hitTest(pt vec.Vec2, radius float64) []LineID {
	var hits []LineID
	r2 := radius * radius
	for _, s := range r.liveSlots() {
		if !nearBox(s.bounds, pt, radius) {
			continue
		}
		for _, p := range s.stroke {
			d := p.Pos().Sub(pt)
			if d.Dot(d) < r2 {
				hits = append(hits, s.id)
				break
			}
		}
	}
	return hits
}

// nearBox reports whether pt lies inside b grown by radius on all sides.
// Points outside cannot be within radius of any point in b.
func nearBox(b rect.Rect, pt vec.Vec2, radius float64) bool {
	return pt.X >= b.LLx-radius && pt.X <= b.URx+radius &&
		pt.Y >= b.LLy-radius && pt.Y <= b.URy+radius
}
