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

import "dirpx.dev/shapes/shape"

// Registry is an ordered collection of shapes.
// The registry owns its sequence; callers only ever see copies of it.
type Registry interface {
	// Add appends s to the end of the sequence.
	// Implementations reject nil shapes; no other validation happens here
	// because shapes are valid by construction.
	Add(s shape.Shape) error
	// Shapes returns a snapshot of the sequence in insertion order.
	// Mutating the returned slice does not affect the registry.
	Shapes() []shape.Shape
	// Count returns the number of shapes held.
	Count() int
	// Reset drops all shapes.
	Reset()
}
