/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package shape defines the closed set of 2-D shape variants.
//
// # Variants
//
// The set is fixed: Line, Triangle, Quadrilateral, Rectangle, Square and
// Rhombus. Shape is sealed by an unexported method, so code outside this
// package can hold and inspect shapes but cannot add variants. Code that
// needs per-variant behavior switches over the concrete types; see Describe.
//
// # Validation
//
// Constructors are the only validation gate. A constructor either returns a
// fully valid value or a typed error (ErrInvalidLength, ErrNotATriangle,
// ErrInvalidDimensions); no partially built shape is ever returned.
// Point-based constructors panic on a wrong point count: that is a caller
// bug, not bad data.
//
// Shapes built from points are not checked at construction. Collinear
// triangle points surface later, from Area, as ErrNegativeArea; NaN or
// infinite coordinates as ErrNonFinite.
//
// # Immutability
//
// All variants are value types with unexported fields. Area and Perimeter
// are pure functions of those fields and are safe for concurrent use.
package shape

import (
	"math"
	"strconv"
	"strings"
)

// Shape is the capability set shared by every variant.
type Shape interface {
	// Kind reports the variant.
	Kind() Kind
	// Name returns the display name, or "" if none was given.
	Name() string
	// Area returns the enclosed area, always finite and non-negative when
	// err is nil. Degenerate triangles fail with ErrNegativeArea; NaN or
	// infinite inputs fail with ErrNonFinite.
	Area() (float64, error)
	// Perimeter returns the boundary length. For a line it is the length.
	Perimeter() float64
	// String returns the description, see Describe.
	String() string

	sealed()
}

// Unnamed is the display name used for shapes created without WithName.
const Unnamed = "Unnamed"

// Option configures optional attributes of a shape at construction.
type Option func(*options)

type options struct {
	name string
}

// WithName sets the display name of the shape.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func apply(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Describe renders the description of s:
//
//	<Kind> '<name>' <label>: <value>
//
// Lines report their length, general quadrilaterals their perimeter and
// every other variant its area. A failing area is rendered as "degenerate".
// Describe returns "" for a nil shape.
func Describe(s Shape) string {
	if s == nil {
		return ""
	}

	var label, value string
	switch v := s.(type) {
	case Line:
		label, value = "length", formatFloat(v.Perimeter())
	case Quadrilateral:
		label, value = "perimeter", formatFloat(v.Perimeter())
	case Triangle, Rectangle, Square, Rhombus:
		label = "area"
		if a, err := v.Area(); err != nil {
			value = "degenerate"
		} else {
			value = formatFloat(a)
		}
	default:
		// unreachable: Shape is sealed
		return ""
	}

	name := s.Name()
	if name == "" {
		name = Unnamed
	}
	return s.Kind().String() + " '" + name + "' " + label + ": " + value
}

// formatFloat renders f in the shortest form that round-trips, always
// with a fractional part ("4.0", "4.5"). Magnitudes of 2^53 and above or
// below 1e-4 use exponent notation ("1e+16", "1e-05"). NaN and the
// infinities render as "nan", "inf" and "-inf".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs >= 1<<53 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
