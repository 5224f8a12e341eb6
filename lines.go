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
	"image/color"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptyStroke is returned by [LineRenderer.AddLine] for a stroke
	// without samples.
	ErrEmptyStroke = errors.New("stroke has no samples")

	// ErrDuplicateID is returned by [LineRenderer.AddLine] if the
	// requested identifier belongs to a stored line.
	ErrDuplicateID = errors.New("line identifier already in use")
)

// LineRenderer stores tessellated strokes in a [VertexBuffer].
//
// Every mutating method completes before returning, so the host may read
// the buffer and its dirty ranges between calls. A LineRenderer is not
// safe for concurrent use; hosts with several writers, for example
// remote session peers, must serialise their calls.
type LineRenderer struct {
	buf   *VertexBuffer
	lines *registry
	tess  tessellator

	prefix      string
	nextSerial  uint64
	claimed     map[LineID]struct{} // explicit ids in the generated namespace
	eraseRadius float64
	color       color.RGBA
	logger      *slog.Logger
}

// NewLineRenderer allocates a vertex buffer of conf.Capacity vertices
// and returns an empty renderer writing into it.
func NewLineRenderer(conf Config) (*LineRenderer, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return newLineRenderer(NewVertexBuffer(conf.Capacity), conf), nil
}

// NewLineRendererWithBuffer is like [NewLineRenderer] but writes into an
// existing buffer. conf.Capacity is ignored.
func NewLineRendererWithBuffer(buf *VertexBuffer, conf Config) (*LineRenderer, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return newLineRenderer(buf, conf), nil
}

func newLineRenderer(buf *VertexBuffer, conf Config) *LineRenderer {
	return &LineRenderer{
		buf:   buf,
		lines: newRegistry(),
		tess: tessellator{
			halfWidth:    conf.HalfWidth,
			capSteps:     conf.CapSteps,
			maxJoinSteps: conf.MaxJoinSteps,
		},
		prefix:      conf.Prefix,
		claimed:     make(map[LineID]struct{}),
		eraseRadius: conf.EraseRadius,
		color:       conf.Color,
		logger:      conf.Logger,
	}
}

// Buffer returns the vertex buffer the renderer writes into.
func (r *LineRenderer) Buffer() *VertexBuffer {
	return r.buf
}

// Color returns the display colour the host should use for the mesh.
func (r *LineRenderer) Color() color.RGBA {
	return r.color
}

// Len returns the number of stored lines.
func (r *LineRenderer) Len() int {
	return r.lines.len()
}

// AddLine tessellates the stroke and appends the triangles to the
// vertex buffer. If no id is given, a new identifier is generated;
// generated identifiers are never reused, not even after the line has
// been removed, and never repeat an id which was given explicitly.
// At most one id may be given.
//
// The stroke is copied, so later changes by the caller have no effect.
// On error, neither the buffer nor the set of stored lines is modified.
func (r *LineRenderer) AddLine(stroke Stroke, id ...LineID) (LineID, error) {
	if len(stroke) == 0 {
		return "", ErrEmptyStroke
	}
	if len(id) > 1 {
		return "", fmt.Errorf("AddLine: %d identifiers given", len(id))
	}

	var lineID LineID
	if len(id) == 1 {
		lineID = id[0]
		if _, taken := r.lines.lookup(lineID); taken {
			return "", fmt.Errorf("%w: %q", ErrDuplicateID, lineID)
		}
	} else {
		lineID = r.newID()
	}

	tris := r.tess.tessellate(stroke)
	start, err := r.buf.Append(tris)
	if err != nil {
		r.logger.Warn("line rejected",
			slog.String("id", string(lineID)),
			slog.Int("elements", len(tris)),
			slog.Int("free", r.buf.Free()))
		return "", fmt.Errorf("line %q: %w", lineID, err)
	}
	if len(id) == 0 {
		r.nextSerial++
	} else if strings.HasPrefix(string(lineID), r.prefix+"_") {
		r.claimed[lineID] = struct{}{}
	}

	rng := Range{Start: start, End: start + len(tris)}
	r.lines.insert(lineID, slices.Clone(stroke), rng)
	r.logger.Debug("line added",
		slog.String("id", string(lineID)),
		slog.Int("samples", len(stroke)),
		slog.Int("start", rng.Start),
		slog.Int("end", rng.End))
	return lineID, nil
}

// newID returns the next generated identifier which has never been
// used. The serial number is only consumed once the line has been stored.
func (r *LineRenderer) newID() LineID {
	for {
		id := LineID(r.prefix + "_" + strconv.FormatUint(r.nextSerial, 10))
		_, live := r.lines.lookup(id)
		_, claimed := r.claimed[id]
		if !live && !claimed {
			return id
		}
		// the serial never comes back to id
		delete(r.claimed, id)
		r.nextSerial++
	}
}

// RemoveLine zeroes the buffer range of the line and forgets it.
// The space is not reused. Unknown identifiers are ignored, so repeated
// removal messages are harmless. The result reports whether a line was
// removed.
func (r *LineRenderer) RemoveLine(id LineID) bool {
	rng, ok := r.lines.remove(id)
	if !ok {
		return false
	}
	r.buf.ZeroRange(rng)
	r.logger.Debug("line removed",
		slog.String("id", string(id)),
		slog.Int("start", rng.Start),
		slog.Int("end", rng.End))
	return true
}

// Clear removes all lines at once and makes the whole buffer available
// again. Calling Clear on an empty renderer has no effect.
func (r *LineRenderer) Clear() {
	n := r.lines.len()
	r.lines.reset()
	r.buf.Reset()
	r.logger.Debug("lines cleared", slog.Int("count", n))
}

// Line returns a copy of the stored stroke and its buffer range.
func (r *LineRenderer) Line(id LineID) (Stroke, Range, bool) {
	s, ok := r.lines.lookup(id)
	if !ok {
		return nil, Range{}, false
	}
	return slices.Clone(s.stroke), s.rng, true
}

// IDs returns the identifiers of all stored lines, in the order in which
// the lines were added.
func (r *LineRenderer) IDs() []LineID {
	live := r.liveSlots()
	res := make([]LineID, len(live))
	for i, s := range live {
		res[i] = s.id
	}
	return res
}

// liveSlots returns the stored lines ordered by buffer position. Since
// the write cursor only moves forward, this is insertion order.
func (r *LineRenderer) liveSlots() []*lineSlot {
	res := make([]*lineSlot, 0, r.lines.len())
	for i := range r.lines.slots {
		if s := &r.lines.slots[i]; s.live {
			res = append(res, s)
		}
	}
	slices.SortFunc(res, func(a, b *lineSlot) int {
		return cmp.Compare(a.rng.Start, b.rng.Start)
	})
	return res
}
