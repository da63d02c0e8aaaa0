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

// Triangle is a triangle known by its three side lengths, and optionally by
// the points they were measured from.
type Triangle struct {
	name       string
	a, b, c    float64
	points     [3]geometry.Point
	fromPoints bool
}

// NewTriangle returns the triangle with sides a, b and c.
// It fails with ErrNotATriangle unless a+b>c, a+c>b and b+c>a all hold.
func NewTriangle(a, b, c float64, opts ...Option) (Triangle, error) {
	if !(a+b > c && a+c > b && b+c > a) {
		return Triangle{}, fmt.Errorf("%w: sides %v, %v, %v", ErrNotATriangle, a, b, c)
	}
	o := apply(opts)
	return Triangle{name: o.name, a: a, b: b, c: c}, nil
}

// NewTriangleFromPoints returns the triangle p0 p1 p2.
//
// It panics unless exactly three points are given. Degenerate (collinear)
// points are accepted here and reported by Area.
func NewTriangleFromPoints(points []geometry.Point, opts ...Option) Triangle {
	if len(points) != 3 {
		panic(fmt.Sprintf("shapes(shape): a triangle needs exactly 3 points, got %d", len(points)))
	}
	o := apply(opts)
	t := Triangle{name: o.name, fromPoints: true}
	copy(t.points[:], points)
	t.a = geometry.Distance(t.points[0], t.points[1])
	t.b = geometry.Distance(t.points[1], t.points[2])
	t.c = geometry.Distance(t.points[2], t.points[0])
	return t
}

// Kind returns KindTriangle.
func (Triangle) Kind() Kind { return KindTriangle }

// Name returns the display name.
func (t Triangle) Name() string { return t.name }

// Sides returns the three side lengths.
func (t Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

// Points returns the vertices, and false when the triangle was built from
// side lengths.
func (t Triangle) Points() ([3]geometry.Point, bool) { return t.points, t.fromPoints }

// Perimeter returns a+b+c.
func (t Triangle) Perimeter() float64 { return t.a + t.b + t.c }

// Area returns the area by Heron's formula. Sides that are not finite
// yield ErrNonFinite; a result that is not strictly positive yields
// ErrNegativeArea.
func (t Triangle) Area() (float64, error) {
	if !finite(t.a) || !finite(t.b) || !finite(t.c) {
		return 0, fmt.Errorf("%w: triangle %q with sides %v, %v, %v", ErrNonFinite, t.name, t.a, t.b, t.c)
	}
	area := geometry.Heron(t.a, t.b, t.c)
	if !positive(area) {
		return 0, fmt.Errorf("%w: triangle %q with sides %v, %v, %v", ErrNegativeArea, t.name, t.a, t.b, t.c)
	}
	return area, nil
}

func (t Triangle) String() string { return Describe(t) }

func (Triangle) sealed() {}
