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

// Rectangle is a rectangle with strictly positive width and height.
type Rectangle struct {
	name          string
	width, height float64
}

// NewRectangle fails with ErrInvalidDimensions unless width and height are
// both strictly positive and finite.
func NewRectangle(width, height float64, opts ...Option) (Rectangle, error) {
	if !positive(width) || !positive(height) {
		return Rectangle{}, fmt.Errorf("%w: width %v, height %v", ErrInvalidDimensions, width, height)
	}
	o := apply(opts)
	return Rectangle{name: o.name, width: width, height: height}, nil
}

// Kind returns KindRectangle.
func (Rectangle) Kind() Kind { return KindRectangle }

// Name returns the display name.
func (r Rectangle) Name() string { return r.name }

// Dimensions returns width and height.
func (r Rectangle) Dimensions() (width, height float64) { return r.width, r.height }

// Perimeter returns 2(width+height).
func (r Rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }

// Area returns width*height. It fails with ErrNonFinite on overflow.
func (r Rectangle) Area() (float64, error) {
	area := r.width * r.height
	if !finite(area) {
		return 0, fmt.Errorf("%w: rectangle %q area overflows", ErrNonFinite, r.name)
	}
	return area, nil
}

func (r Rectangle) String() string { return Describe(r) }

func (Rectangle) sealed() {}

// Square is a Rectangle whose width equals its height.
type Square struct {
	Rectangle
}

// NewSquare forwards side as both width and height to NewRectangle, so it
// fails with ErrInvalidDimensions unless side > 0.
func NewSquare(side float64, opts ...Option) (Square, error) {
	r, err := NewRectangle(side, side, opts...)
	if err != nil {
		return Square{}, err
	}
	return Square{Rectangle: r}, nil
}

// Kind returns KindSquare.
func (Square) Kind() Kind { return KindSquare }

// Side returns the side length.
func (s Square) Side() float64 { return s.width }

func (s Square) String() string { return Describe(s) }
