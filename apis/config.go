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

package apis

// Config carries read-only aggregation knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Policy decides what happens when a shape's area cannot be evaluated.
	Policy Policy

	// Tolerance is the absolute difference below which two areas are
	// considered equal, so the first-seen shape keeps the extremum.
	// Zero means exact comparison.
	Tolerance float64
}
