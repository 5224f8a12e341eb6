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
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrCapacity is returned when an append would not fit into the
// remaining space of a [VertexBuffer].
var ErrCapacity = errors.New("vertex buffer capacity exceeded")

// Range is a half-open interval [Start, End) of float32 elements
// in a vertex buffer. Each vertex occupies three elements.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// VertexBuffer is a fixed-capacity flat array of 3D vertex positions.
//
// Elements in [0, Cursor()) have been written; everything after the cursor
// is unused. The cursor only moves forward, except on [VertexBuffer.Reset].
// Changes are recorded as dirty ranges, which the host collects with
// [VertexBuffer.TakeDirty] before uploading.
//
// A VertexBuffer is not safe for concurrent use.
type VertexBuffer struct {
	data   []float32
	cursor int
	dirty  []Range
}

// NewVertexBuffer allocates a buffer with room for capacity vertices.
func NewVertexBuffer(capacity int) *VertexBuffer {
	return &VertexBuffer{data: make([]float32, 3*capacity)}
}

// WrapVertexBuffer uses data as the backing array. This allows the host
// to hand in the array it uploads from. Trailing elements which do not
// form a complete vertex are never used.
func WrapVertexBuffer(data []float32) *VertexBuffer {
	return &VertexBuffer{data: data[:len(data)/3*3]}
}

// Data returns the backing array. The caller must not modify it.
func (b *VertexBuffer) Data() []float32 {
	return b.data
}

// Capacity returns the number of vertices the buffer can hold.
func (b *VertexBuffer) Capacity() int {
	return len(b.data) / 3
}

// Cursor returns the number of elements written so far.
func (b *VertexBuffer) Cursor() int {
	return b.cursor
}

// Free returns the number of elements still available.
func (b *VertexBuffer) Free() int {
	return len(b.data) - b.cursor
}

// DrawCount returns the number of vertices the host should draw.
// Holes left by removed strokes are included and show up as
// zero-area triangles.
func (b *VertexBuffer) DrawCount() int {
	return b.cursor / 3
}

// Append copies the given elements to the end of the written region and
// returns the index of the first one. The length of elems must be a
// multiple of three. If the elements do not fit, ErrCapacity is returned
// and the buffer is left unchanged.
func (b *VertexBuffer) Append(elems []float32) (int, error) {
	if len(elems)%3 != 0 {
		return 0, fmt.Errorf("append of %d elements: not a whole number of vertices", len(elems))
	}
	if len(elems) > b.Free() {
		return 0, fmt.Errorf("%w: need %d elements, %d free", ErrCapacity, len(elems), b.Free())
	}
	start := b.cursor
	copy(b.data[start:], elems)
	b.cursor += len(elems)
	b.markDirty(Range{Start: start, End: b.cursor})
	return start, nil
}

// ZeroRange overwrites the elements in r with zeros and marks them dirty.
// The range is clipped to the written region. The cursor does not move.
func (b *VertexBuffer) ZeroRange(r Range) {
	r.Start = max(r.Start, 0)
	r.End = min(r.End, b.cursor)
	if r.Start >= r.End {
		return
	}
	clear(b.data[r.Start:r.End])
	b.markDirty(r)
}

// Reset moves the cursor back to the start and forgets all dirty ranges.
// The array contents are left alone: nothing past the cursor is drawn.
func (b *VertexBuffer) Reset() {
	b.cursor = 0
	b.dirty = b.dirty[:0]
}

// markDirty records r. A range which touches the most recently recorded
// one is merged into it, so that successive appends keep a single entry
// even if the host never collects the dirty set.
func (b *VertexBuffer) markDirty(r Range) {
	if r.Len() <= 0 {
		return
	}
	if n := len(b.dirty); n > 0 {
		last := &b.dirty[n-1]
		if r.Start <= last.End && r.End >= last.Start {
			last.Start = min(last.Start, r.Start)
			last.End = max(last.End, r.End)
			return
		}
	}
	b.dirty = append(b.dirty, r)
}

// Dirty returns the ranges modified since the last call to TakeDirty,
// sorted and with overlapping or adjacent ranges merged.
func (b *VertexBuffer) Dirty() []Range {
	if len(b.dirty) == 0 {
		return nil
	}
	res := slices.Clone(b.dirty)
	slices.SortFunc(res, func(x, y Range) int {
		return cmp.Compare(x.Start, y.Start)
	})
	out := res[:1]
	for _, r := range res[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			last.End = max(last.End, r.End)
		} else {
			out = append(out, r)
		}
	}
	return out
}

// TakeDirty returns the same ranges as Dirty and then clears the
// dirty set. Hosts call this once per frame before uploading.
func (b *VertexBuffer) TakeDirty() []Range {
	res := b.Dirty()
	b.dirty = b.dirty[:0]
	return res
}
