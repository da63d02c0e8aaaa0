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

// Notifier observes aggregation passes.
//
// The aggregator borrows a Notifier; it never owns or closes it. The
// Notifier is called synchronously from the goroutine running the
// aggregation, so implementations must not block for long.
type Notifier interface {
	// OnLargestShapeProcessed is called once per aggregation pass with the
	// description of the shape with the largest area. It receives "" when
	// no shape had a usable area or the pass failed.
	OnLargestShapeProcessed(description string)
}
