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

package registry

import (
	"errors"
	"slices"
	"sync"

	"dirpx.dev/shapes/apis"
	"dirpx.dev/shapes/shape"
)

// ErrNilShape is returned when a nil shape is added.
var ErrNilShape = errors.New("shapes(registry): nil shape provided")

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// From constructs a Registry holding shapes in the given order.
// It fails with ErrNilShape if any of them is nil; no registry is returned then.
func From(shapes ...shape.Shape) (apis.Registry, error) {
	r := &registry{shapes: make([]shape.Shape, 0, len(shapes))}
	for _, s := range shapes {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// registry is a slice-backed Registry guarded by a RWMutex.
type registry struct {
	// mu guards shapes.
	mu sync.RWMutex
	// shapes holds the sequence in insertion order.
	shapes []shape.Shape
}

// Add appends s. Amortized O(1).
func (r *registry) Add(s shape.Shape) error {
	if s == nil {
		return ErrNilShape
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes = append(r.shapes, s)
	return nil
}

// Shapes returns a copy of the sequence in insertion order.
func (r *registry) Shapes() []shape.Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.shapes)
}

// Count returns the number of shapes held.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shapes)
}

// Reset drops all shapes. Snapshots taken earlier stay valid.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes = nil
}
