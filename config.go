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
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	defaultCapacity     = 1 << 20 // vertices
	defaultHalfWidth    = 2.0
	defaultEraseRadius  = 20.0
	defaultCapSteps     = 8
	defaultMaxJoinSteps = 4
	defaultPrefix       = "line"
)

var defaultColor = color.RGBA{R: 0x00, G: 0x77, B: 0xff, A: 0xff}

// ErrInvalidConfig is returned by [NewLineRenderer] for unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the construction parameters of a [LineRenderer].
// Zero fields are replaced by the defaults from [DefaultConfig].
type Config struct {
	// Capacity is the number of vertices the buffer can hold.
	Capacity int

	// HalfWidth is the nominal half-width of a stroke in user units.
	// Each sample's W scales this value.
	HalfWidth float64

	// EraseRadius is the distance below which [LineRenderer.Erase]
	// considers a sample to be hit.
	EraseRadius float64

	// CapSteps is the number of triangles in the round start cap.
	// Must be at least 3.
	CapSteps int

	// MaxJoinSteps bounds the number of triangles in a join fan.
	// One triangle is used per 45° of turn, up to this limit.
	MaxJoinSteps int

	// Color is the display colour the host should use for the mesh.
	Color color.RGBA

	// Prefix is the namespace for synthesized line identifiers.
	// Generated ids have the form Prefix + "_" + n.
	Prefix string

	// Logger receives debug output. Nil discards all log records.
	Logger *slog.Logger
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Capacity:     defaultCapacity,
		HalfWidth:    defaultHalfWidth,
		EraseRadius:  defaultEraseRadius,
		CapSteps:     defaultCapSteps,
		MaxJoinSteps: defaultMaxJoinSteps,
		Color:        defaultColor,
		Prefix:       defaultPrefix,
	}
}

// withDefaults returns a copy of c where all zero fields are replaced
// by their default values.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Capacity == 0 {
		c.Capacity = d.Capacity
	}
	if c.HalfWidth == 0 {
		c.HalfWidth = d.HalfWidth
	}
	if c.EraseRadius == 0 {
		c.EraseRadius = d.EraseRadius
	}
	if c.CapSteps == 0 {
		c.CapSteps = d.CapSteps
	}
	if c.MaxJoinSteps == 0 {
		c.MaxJoinSteps = d.MaxJoinSteps
	}
	if c.Color == (color.RGBA{}) {
		c.Color = d.Color
	}
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.Logger == nil {
		c.Logger = newNopLogger()
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.Capacity < 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	case !(c.HalfWidth > 0):
		return fmt.Errorf("%w: half-width %g", ErrInvalidConfig, c.HalfWidth)
	case !(c.EraseRadius > 0):
		return fmt.Errorf("%w: erase radius %g", ErrInvalidConfig, c.EraseRadius)
	case c.CapSteps < 3:
		return fmt.Errorf("%w: %d cap steps", ErrInvalidConfig, c.CapSteps)
	case c.MaxJoinSteps < 1:
		return fmt.Errorf("%w: %d join steps", ErrInvalidConfig, c.MaxJoinSteps)
	}
	return nil
}

// ParseColor converts a colour specification to RGBA.
// Accepted forms are "#rgb", "#rrggbb", "0xrrggbb" and SVG colour
// names like "steelblue".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	var hex string
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
