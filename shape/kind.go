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

package shape

import (
	"fmt"
	"strings"
)

// Kind identifies a shape variant.
//
// # Values
//
//   - KindLine: a segment between two points, or of a given length.
//   - KindTriangle: three sides or three points.
//   - KindQuadrilateral: four arbitrary points.
//   - KindRectangle: width and height.
//   - KindSquare: a rectangle with equal sides.
//   - KindRhombus: side and height.
//
// # Contract
//
//   - The String tokens are stable; they appear in descriptions and in
//     scene files, so changing their spelling is a breaking change.
//   - Kind is a plain integer and is safe to share across goroutines.
type Kind int

const (
	// KindLine is a straight segment. Its area is always 0.
	KindLine Kind = iota
	// KindTriangle is a triangle.
	KindTriangle
	// KindQuadrilateral is a general quadrilateral given by four points.
	KindQuadrilateral
	// KindRectangle is an axis-free rectangle given by width and height.
	KindRectangle
	// KindSquare is a rectangle with width == height.
	KindSquare
	// KindRhombus is a rhombus given by side and height.
	KindRhombus
)

// Kinds lists every defined Kind in declaration order.
var Kinds = []Kind{KindLine, KindTriangle, KindQuadrilateral, KindRectangle, KindSquare, KindRhombus}

// String returns the display token for k ("Line", "Triangle", ...).
// Unknown values yield "Unknown(<n>)" and never panic.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindTriangle:
		return "Triangle"
	case KindQuadrilateral:
		return "Quadrilateral"
	case KindRectangle:
		return "Rectangle"
	case KindSquare:
		return "Square"
	case KindRhombus:
		return "Rhombus"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind parses a Kind token, case-insensitively and ignoring
// surrounding whitespace.
//
// On failure it returns KindLine and a non-nil error; callers must not rely
// on the returned value in that case.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return KindLine, fmt.Errorf("shapes(shape): empty kind")
	}
	for _, k := range Kinds {
		if strings.EqualFold(trimmed, k.String()) {
			return k, nil
		}
	}
	return KindLine, fmt.Errorf("shapes(shape): unknown kind %q", s)
}

// MustParseKind is like ParseKind but panics on invalid input.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler. Unknown values are an
// error rather than being serialized as "Unknown(...)".
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindLine || k > KindRhombus {
		return nil, fmt.Errorf("shapes(shape): cannot marshal unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *k is left
// unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
