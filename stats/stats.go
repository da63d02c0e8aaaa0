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

// Package stats reduces a collection of shapes to its extremal members.
//
// # Result
//
// One pass over a registry snapshot yields six extrema:
//
//   - the longest and the shortest description, by character count;
//   - the largest and the smallest area;
//   - the longest and the shortest perimeter.
//
// Every comparison is strict, so on a tie the shape inserted first keeps
// the extremum. Area ties may be widened with apis.Config.Tolerance.
// A perimeter that is NaN or infinite is left out of the perimeter extrema.
//
// An empty input is not an error: all descriptions are "" and the shape
// fields are nil.
//
// # Failing areas
//
// A triangle built from collinear points fails Area with
// shape.ErrNegativeArea, and a shape with NaN or infinite coordinates with
// shape.ErrNonFinite. Under apis.PolicySkip (the default) such a shape
// still takes part in the description and perimeter extrema, is left out
// of the area extrema and is listed in Stats.Skipped. Under
// apis.PolicyFail the pass stops and returns an *AreaError.
//
// # Delivery
//
// Compute and ComputeWith run on the caller's goroutine. Go takes the
// snapshot immediately, computes on a new goroutine and hands the result to
// a Handler through an apis.Executor. In every form the Notifier, if any,
// is called exactly once per pass, before any Handler runs: with the
// largest-area description, or with "" when the pass has no area extremum
// or failed.
package stats

import (
	"fmt"

	"dirpx.dev/shapes/shape"
)

// Stats is the result of one aggregation pass. It is never modified after
// it has been returned or delivered.
type Stats struct {
	// LongestDescription is the description with the most characters.
	LongestDescription string
	// ShortestDescription is the description with the fewest characters.
	ShortestDescription string
	// LargestAreaDescription describes Largest, or is "".
	LargestAreaDescription string
	// SmallestAreaDescription describes Smallest, or is "".
	SmallestAreaDescription string

	// LongestPerimeterDescription describes LongestPerimeter, or is "".
	LongestPerimeterDescription string
	// ShortestPerimeterDescription describes ShortestPerimeter, or is "".
	ShortestPerimeterDescription string

	// Largest is the shape with the largest area, or nil.
	Largest shape.Shape
	// Smallest is the shape with the smallest area, or nil.
	Smallest shape.Shape
	// LongestPerimeter is the shape with the longest perimeter, or nil.
	LongestPerimeter shape.Shape
	// ShortestPerimeter is the shape with the shortest perimeter, or nil.
	ShortestPerimeter shape.Shape

	// Count is the number of shapes scanned.
	Count int
	// Skipped lists shapes left out of the area extrema, in scan order.
	Skipped []AreaError
}

// Empty reports whether the pass saw no shapes.
func (s Stats) Empty() bool {
	return s.Count == 0
}

// Handler receives the outcome of an aggregation pass exactly once.
type Handler func(Stats, error)

// AreaError reports a shape whose area could not be evaluated.
type AreaError struct {
	// Index is the position of the shape in the scanned snapshot.
	Index int
	// Shape is the failing shape.
	Shape shape.Shape
	// Err is the error returned by Shape.Area.
	Err error
}

func (e *AreaError) Error() string {
	return fmt.Sprintf("shapes(stats): area of shape #%d (%s): %v", e.Index, shape.Describe(e.Shape), e.Err)
}

func (e *AreaError) Unwrap() error {
	return e.Err
}
