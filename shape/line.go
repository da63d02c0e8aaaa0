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

	"dirpx.dev/shapes/geometry"
)

// Line is a straight segment. It is built either from two end points or
// from an explicit length; in the latter case it has no end points.
type Line struct {
	name       string
	start, end geometry.Point
	length     float64
	fromPoints bool
}

// NewLine returns the segment from start to end. Coincident points give a
// zero-length line. Coordinates are not checked; see Area.
func NewLine(start, end geometry.Point, opts ...Option) Line {
	o := apply(opts)
	return Line{
		name:       o.name,
		start:      start,
		end:        end,
		length:     geometry.Distance(start, end),
		fromPoints: true,
	}
}

// NewLineOfLength returns a line of the given length.
// It fails with ErrInvalidLength unless length is positive and finite.
func NewLineOfLength(length float64, opts ...Option) (Line, error) {
	if !positive(length) {
		return Line{}, fmt.Errorf("%w: %v", ErrInvalidLength, length)
	}
	o := apply(opts)
	return Line{name: o.name, length: length}, nil
}

// Kind returns KindLine.
func (Line) Kind() Kind { return KindLine }

// Name returns the display name.
func (l Line) Name() string { return l.name }

// Area is 0. It fails with ErrNonFinite when the length is not finite,
// which only happens for end points with NaN or infinite coordinates.
func (l Line) Area() (float64, error) {
	if !finite(l.length) {
		return 0, fmt.Errorf("%w: line %q with length %v", ErrNonFinite, l.name, l.length)
	}
	return 0, nil
}

// Perimeter returns the length of the line.
func (l Line) Perimeter() float64 { return l.length }

// Length is an alias for Perimeter.
func (l Line) Length() float64 { return l.length }

// Points returns the end points, and false for a length-only line.
func (l Line) Points() (start, end geometry.Point, ok bool) {
	return l.start, l.end, l.fromPoints
}

// Vector returns the displacement from start to end. It is zero for a
// length-only line.
func (l Line) Vector() (dx, dy float64) {
	return l.end.X - l.start.X, l.end.Y - l.start.Y
}

func (l Line) String() string { return Describe(l) }

func (Line) sealed() {}
