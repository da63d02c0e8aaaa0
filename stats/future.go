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

package stats

import (
	"context"

	"dirpx.dev/shapes/apis"
)

// Future is the single-use result of a deferred aggregation.
type Future struct {
	done  chan struct{}
	stats Stats
	err   error
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done. Giving up on
// the wait does not cancel the aggregation.
func (f *Future) Wait(ctx context.Context) (Stats, error) {
	select {
	case <-f.done:
		return f.stats, f.err
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Go snapshots reg now and aggregates it on a new goroutine.
//
// When the result is ready the Future resolves first; then h, if non-nil,
// is posted to exec. A nil exec runs h on the worker goroutine. h runs
// exactly once and always sees the complete result. Code following the
// call to Go may run before, or concurrently with, h.
func (a *Aggregator) Go(reg apis.Registry, exec apis.Executor, h Handler) *Future {
	shapes := snapshot(reg)
	f := &Future{done: make(chan struct{})}

	go func() {
		st, err := a.ComputeShapes(shapes)
		f.stats, f.err = st, err
		close(f.done)

		if h == nil {
			return
		}
		if exec == nil {
			h(st, err)
			return
		}
		exec.Execute(func() { h(st, err) })
	}()

	return f
}
