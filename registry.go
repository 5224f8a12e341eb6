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
	"seehuhn.de/go/geom/rect"
)

// handle refers to a slot of the registry arena. A handle stays valid
// only while the generation of its slot is unchanged.
type handle struct {
	slot int
	gen  uint32
}

// lineSlot holds the metadata of one stored stroke.
type lineSlot struct {
	id     LineID
	stroke Stroke    // private copy, used for erase hit tests
	bounds rect.Rect // bounding box of the sample positions
	rng    Range     // elements occupied in the vertex buffer
	gen    uint32
	live   bool
}

// registry maps line identifiers to stroke metadata. Slots are kept in
// an arena and reused through a free list; the id map is only consulted
// when a caller names a line.
type registry struct {
	slots []lineSlot
	free  []int
	byID  map[LineID]handle
}

func newRegistry() *registry {
	return &registry{byID: make(map[LineID]handle)}
}

func (r *registry) len() int {
	return len(r.byID)
}

func (r *registry) lookup(id LineID) (*lineSlot, bool) {
	h, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	s := &r.slots[h.slot]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

// insert stores a new line. The caller must make sure that id is not
// in use.
func (r *registry) insert(id LineID, stroke Stroke, rng Range) handle {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = len(r.slots)
		r.slots = append(r.slots, lineSlot{})
	}
	s := &r.slots[idx]
	s.id = id
	s.stroke = stroke
	s.bounds = stroke.Bounds()
	s.rng = rng
	s.live = true

	h := handle{slot: idx, gen: s.gen}
	r.byID[id] = h
	return h
}

// remove deletes the line and returns its buffer range.
func (r *registry) remove(id LineID) (Range, bool) {
	s, ok := r.lookup(id)
	if !ok {
		return Range{}, false
	}
	rng := s.rng
	idx := r.byID[id].slot
	delete(r.byID, id)

	s.live = false
	s.stroke = nil
	s.gen++
	r.free = append(r.free, idx)
	return rng, true
}

// reset forgets all lines. Slot generations are kept, so handles from
// before the reset stay invalid.
func (r *registry) reset() {
	r.free = r.free[:0]
	for i := range r.slots {
		s := &r.slots[i]
		if s.live {
			s.live = false
			s.stroke = nil
			s.gen++
		}
		r.free = append(r.free, i)
	}
	clear(r.byID)
}
