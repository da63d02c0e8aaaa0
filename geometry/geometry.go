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

// Package geometry holds the 2-D primitives the shape variants are built on.
//
// Coordinates follow graph-paper conventions: X grows to the right and Y
// grows up. All functions are pure and safe for concurrent use.
package geometry

import "math"

// Point is a 2-D coordinate. It has no identity beyond its coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Heron returns the area of a triangle with side lengths a, b and c.
//
// The result is 0 for collinear sides and may be NaN when the sides do not
// form a triangle; callers decide how to treat either case.
func Heron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// TriangleArea returns the area of the triangle abc using the shoelace formula.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs((a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2)
}

// Perimeter returns the length of the closed polyline through pts.
// Fewer than two points have a zero perimeter.
func Perimeter(pts ...Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var sum float64
	for i := range pts {
		sum += Distance(pts[i], pts[(i+1)%len(pts)])
	}
	return sum
}
