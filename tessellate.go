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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Numerical tolerances for the tessellator.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Shorter segments get no body, only a join fan.
	zeroLengthThreshold = 1e-10

	// joinStepAngle is the angle covered by one triangle of a join fan.
	joinStepAngle = math.Pi / 4
)

// tessellator converts strokes into triangle lists. The output buffer
// is reused across calls and never shrinks.
//
// A tessellator is not safe for concurrent use.
type tessellator struct {
	halfWidth    float64
	capSteps     int
	maxJoinSteps int

	out []float32 // triangle output, 9 elements per triangle
}

// tessellate returns the triangles for s as a flat list of (x, y, z)
// vertices. The result is valid until the next call. The stroke must
// contain at least one sample.
//
// The mesh consists of a round cap at the first sample, then for every
// sample a quad covering the segment ending there and a fan covering
// the join. The first sample has no incoming segment, so its quad is
// omitted and its fan is a single degenerate triangle. At the last
// sample the fan turns through a half circle and forms the end cap.
// A single sample only gets the start cap.
func (t *tessellator) tessellate(s Stroke) []float32 {
	t.out = t.out[:0]
	hw := t.halfWidth

	first := s[0]
	t.addFan(first.Pos(), vec.Vec2{X: hw * first.W, Y: 0}, 2*math.Pi, t.capSteps)
	if len(s) == 1 {
		return t.out
	}

	// n1 is the unit normal of the latest segment with non-zero length.
	// It stays zero until the stroke leaves its first position.
	var n1 vec.Vec2
	last := len(s) - 1
	for i := range s {
		prev, cur := s[max(i-1, 0)], s[i]
		p0, p1 := prev.Pos(), cur.Pos()

		d1 := p1.Sub(p0)
		hasBody := d1.Length() >= zeroLengthThreshold
		if hasBody {
			n1 = perp(d1.Mul(1 / d1.Length()))
		}
		lead := n1.Mul(hw * cur.W)

		// Segment body. The leading edge uses the width at p1, so the
		// quad tapers linearly between the two samples.
		if hasBody {
			norm1 := n1.Mul(hw * prev.W)
			a := p0.Sub(norm1)
			c := p0.Add(norm1)
			b := p1.Sub(lead)
			d := p1.Add(lead)
			t.addTriangle(a, b, c)
			t.addTriangle(b, d, c)
		}

		// Join fan. The fan starts at the outer corner of the quad just
		// emitted and turns through the angle between the two normals.
		// If the next sample repeats this position, the turn is made at
		// the last sample of the run, where the outgoing segment starts.
		var dir2 vec.Vec2
		angle := math.Pi
		if i < last {
			angle = 0
			d2 := s[i+1].Pos().Sub(p1)
			if n1 != (vec.Vec2{}) && d2.Length() >= zeroLengthThreshold {
				t2 := d2.Mul(1 / d2.Length())
				dir2 = t2.Mul(hw * cur.W)
				cosTheta := max(-1, min(1, n1.Dot(perp(t2))))
				angle = math.Acos(cosTheta)
			}
		}
		bendsLeft := n1.Dot(dir2) >= 0
		start := lead
		if bendsLeft {
			start = lead.Mul(-1)
		} else {
			angle = -angle
		}
		t.addFan(p1, start, angle, t.joinSteps(angle))
	}

	return t.out
}

// joinSteps returns the number of fan triangles used for a turn by the
// given angle: one per 45°, at least one, at most maxJoinSteps.
func (t *tessellator) joinSteps(angle float64) int {
	n := int(math.Ceil(math.Abs(angle)/joinStepAngle - 1e-9))
	return max(1, min(n, t.maxJoinSteps))
}

// addFan adds n triangles around center. The first fan point is
// center+startDir, and each further point is rotated by sweep/n
// (positive = counter-clockwise). Each triangle is
// (previous fan point, center, next fan point).
func (t *tessellator) addFan(center, startDir vec.Vec2, sweep float64, n int) {
	dt := sweep / float64(n)
	prev := center.Add(startDir)
	for i := 1; i <= n; i++ {
		next := center.Add(rotate(startDir, float64(i)*dt))
		t.addTriangle(prev, center, next)
		prev = next
	}
}

func (t *tessellator) addTriangle(a, b, c vec.Vec2) {
	t.out = append(t.out,
		float32(a.X), float32(a.Y), 0,
		float32(b.X), float32(b.Y), 0,
		float32(c.X), float32(c.Y), 0,
	)
}

// perp returns v rotated by 90° counter-clockwise.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// rotate returns v rotated by angle radians (positive = counter-clockwise).
func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
