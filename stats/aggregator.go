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
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"dirpx.dev/shapes/apis"
	"dirpx.dev/shapes/shape"
)

// Aggregator computes Stats. It is immutable after New and safe for
// concurrent use; it only reads the shapes it is given.
type Aggregator struct {
	cfg      apis.Config
	notifier apis.Notifier
	logger   *zap.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNotifier sets the notifier told about the largest shape of every
// pass. The aggregator borrows n; nil disables notification.
func WithNotifier(n apis.Notifier) Option {
	return func(a *Aggregator) {
		a.notifier = n
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New constructs an Aggregator for cfg.
func New(cfg apis.Config, opts ...Option) *Aggregator {
	a := &Aggregator{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the configuration the aggregator was built with.
func (a *Aggregator) Config() apis.Config {
	return a.cfg
}

// Compute aggregates a snapshot of reg. A nil registry counts as empty.
func (a *Aggregator) Compute(reg apis.Registry) (Stats, error) {
	return a.ComputeShapes(snapshot(reg))
}

// ComputeWith aggregates a snapshot of reg and passes the outcome to h
// before returning. A nil h is allowed.
func (a *Aggregator) ComputeWith(reg apis.Registry, h Handler) {
	st, err := a.Compute(reg)
	if h != nil {
		h(st, err)
	}
}

// ComputeShapes aggregates shapes in order. Nil entries are ignored.
func (a *Aggregator) ComputeShapes(shapes []shape.Shape) (Stats, error) {
	var (
		st                  Stats
		longestN, shortestN int
		largestA, smallestA float64
		longestP, shortestP float64
		haveArea, havePerim bool
	)
	tol := a.cfg.Tolerance

	for i, s := range shapes {
		if s == nil {
			continue
		}

		desc := s.String()
		n := utf8.RuneCountInString(desc)
		if st.Count == 0 || n > longestN {
			st.LongestDescription, longestN = desc, n
		}
		if st.Count == 0 || n < shortestN {
			st.ShortestDescription, shortestN = desc, n
		}
		st.Count++

		if p := s.Perimeter(); !math.IsNaN(p) && !math.IsInf(p, 0) {
			if !havePerim || p > longestP {
				st.LongestPerimeter, longestP = s, p
			}
			if !havePerim || p < shortestP {
				st.ShortestPerimeter, shortestP = s, p
			}
			havePerim = true
		}

		area, err := s.Area()
		if err != nil {
			aerr := AreaError{Index: i, Shape: s, Err: err}
			if a.cfg.Policy == apis.PolicyFail {
				a.logger.Debug("aggregation aborted", zap.Int("index", i), zap.Error(err))
				a.notify("")
				return Stats{}, &aerr
			}
			a.logger.Warn("shape skipped from area extrema",
				zap.Int("index", i),
				zap.Stringer("kind", s.Kind()),
				zap.String("name", s.Name()),
				zap.Error(err),
			)
			st.Skipped = append(st.Skipped, aerr)
			continue
		}

		if !haveArea || area > largestA+tol {
			st.Largest, largestA = s, area
		}
		if !haveArea || area < smallestA-tol {
			st.Smallest, smallestA = s, area
		}
		haveArea = true
	}

	st.LargestAreaDescription = shape.Describe(st.Largest)
	st.SmallestAreaDescription = shape.Describe(st.Smallest)
	st.LongestPerimeterDescription = shape.Describe(st.LongestPerimeter)
	st.ShortestPerimeterDescription = shape.Describe(st.ShortestPerimeter)

	a.logger.Debug("aggregation finished",
		zap.Int("count", st.Count),
		zap.Int("skipped", len(st.Skipped)),
		zap.String("largest", st.LargestAreaDescription),
		zap.String("smallest", st.SmallestAreaDescription),
		zap.String("longest_perimeter", st.LongestPerimeterDescription),
		zap.String("shortest_perimeter", st.ShortestPerimeterDescription),
	)

	a.notify(st.LargestAreaDescription)
	return st, nil
}

func (a *Aggregator) notify(description string) {
	if a.notifier != nil {
		a.notifier.OnLargestShapeProcessed(description)
	}
}

func snapshot(reg apis.Registry) []shape.Shape {
	if reg == nil {
		return nil
	}
	return reg.Shapes()
}
