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

import "fmt"

// Rhombus is a rhombus given by its side and the height onto that side.
type Rhombus struct {
	name         string
	side, height float64
}

// NewRhombus fails with ErrInvalidDimensions unless side and height are
// both strictly positive. A height larger than the side is not checked.
func NewRhombus(side, height float64, opts ...Option) (Rhombus, error) {
	if !positive(side) || !positive(height) {
		return Rhombus{}, fmt.Errorf("%w: side %v, height %v", ErrInvalidDimensions, side, height)
	}
	o := apply(opts)
	return Rhombus{name: o.name, side: side, height: height}, nil
}

// Kind returns KindRhombus.
func (Rhombus) Kind() Kind { return KindRhombus }

// Name returns the display name.
func (r Rhombus) Name() string { return r.name }

// Dimensions returns side and height.
func (r Rhombus) Dimensions() (side, height float64) { return r.side, r.height }

// Perimeter returns 4*side.
func (r Rhombus) Perimeter() float64 { return 4 * r.side }

// Area returns side*height. It fails with ErrNonFinite on overflow.
func (r Rhombus) Area() (float64, error) {
	area := r.side * r.height
	if !finite(area) {
		return 0, fmt.Errorf("%w: rhombus %q area overflows", ErrNonFinite, r.name)
	}
	return area, nil
}

func (r Rhombus) String() string { return Describe(r) }

func (Rhombus) sealed() {}
