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
	"errors"
	"math"
)

var (
	// ErrInvalidLength is returned when a line length is not strictly positive.
	ErrInvalidLength = errors.New("shapes(shape): invalid line length")
	// ErrNotATriangle is returned when three side lengths violate the
	// strict triangle inequality.
	ErrNotATriangle = errors.New("shapes(shape): sides do not form a triangle")
	// ErrInvalidDimensions is returned when a rectangle, square or rhombus
	// dimension is not strictly positive.
	ErrInvalidDimensions = errors.New("shapes(shape): invalid dimensions")
	// ErrNegativeArea is returned by Area when the computed area is not
	// strictly positive, e.g. for collinear triangle points.
	ErrNegativeArea = errors.New("shapes(shape): non-positive area")
	// ErrNonFinite is returned by Area when a coordinate or measure is NaN
	// or infinite.
	ErrNonFinite = errors.New("shapes(shape): non-finite measure")
)

// positive reports whether f is strictly positive and finite.
func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
