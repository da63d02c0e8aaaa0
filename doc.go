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


// Package shapes models 2-D shapes and reports the extremal members of a
// shape collection.
//
// Shapes are built in package shape, collected in a registry (package
// registry) and reduced by a stats.Aggregator into four descriptions: the
// longest and shortest description and the descriptions of the largest and
// smallest area. Scenes can be read from YAML with package scene.
//
// # Design
//
// This package is a process-wide facade over those pieces. It holds a
// read-mostly snapshot of:
//
//   - Config: the evaluation policy and area tolerance (see package config).
//
//   - Notifier: told the largest-area description after every pass.
//
//   - Logger: a *zap.Logger shared by the aggregator. A no-op logger by
//     default.
//
//   - Registry: a default registry used when callers pass nil.
//
// The snapshot also carries an Aggregator built from the first three. The
// package keeps an atomic pointer to the current snapshot. Readers load it
// and never lock; writers take a short build mutex, assemble a new
// snapshot and swap it in, so a concurrent Compute always sees one
// consistent set of settings.
//
// # Usage
//
//	shapes.SetLogger(logger)
//	shapes.SetNotifier(notify.Log(logger))
//
//	reg := registry.New()
//	sq, _ := shape.NewSquare(4, shape.WithName("S1"))
//	_ = reg.Add(sq)
//
//	st, err := shapes.Compute(reg)
//
// Deferred delivery posts the handler to an apis.Executor once the result
// is ready:
//
//	q := dispatch.NewQueue()
//	shapes.Go(reg, q, func(st stats.Stats, err error) {
//		defer q.Close()
//		fmt.Println(st.LargestAreaDescription)
//	})
//	_ = q.Run(ctx)
//
// Tests use SetAll to install a deterministic snapshot.
package shapes
