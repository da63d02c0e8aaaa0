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

// Quadrilateral is a general quadrilateral p0 p1 p2 p3.
type Quadrilateral struct {
	name   string
	points [4]geometry.Point
}

// NewQuadrilateral returns the quadrilateral through points, in order.
// It panics unless exactly four points are given.
func NewQuadrilateral(points []geometry.Point, opts ...Option) Quadrilateral {
	if len(points) != 4 {
		panic(fmt.Sprintf("shapes(shape): a quadrilateral needs exactly 4 points, got %d", len(points)))
	}
	o := apply(opts)
	q := Quadrilateral{name: o.name}
	copy(q.points[:], points)
	return q
}

// Kind returns KindQuadrilateral.
func (Quadrilateral) Kind() Kind { return KindQuadrilateral }

// Name returns the display name.
func (q Quadrilateral) Name() string { return q.name }

// Points returns the four vertices.
func (q Quadrilateral) Points() [4]geometry.Point { return q.points }

// Perimeter returns the sum of the four consecutive sides.
func (q Quadrilateral) Perimeter() float64 {
	return geometry.Perimeter(q.points[:]...)
}

// Area splits the quadrilateral along the p0-p2 diagonal and sums the
// shoelace areas of both halves. It fails with ErrNonFinite when a
// coordinate is NaN or infinite.
func (q Quadrilateral) Area() (float64, error) {
	p := q.points
	area := geometry.TriangleArea(p[0], p[1], p[2]) + geometry.TriangleArea(p[0], p[2], p[3])
	if !finite(area) {
		return 0, fmt.Errorf("%w: quadrilateral %q with points %v", ErrNonFinite, q.name, q.points)
	}
	return area, nil
}

func (q Quadrilateral) String() string { return Describe(q) }

func (Quadrilateral) sealed() {}
