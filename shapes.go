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


package shapes

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/shapes/apis"
	"dirpx.dev/shapes/config"
	"dirpx.dev/shapes/registry"
	"dirpx.dev/shapes/shape"
	"dirpx.dev/shapes/stats"
)

// state is the immutable snapshot published through st.
type state struct {
	cfg apis.Config
	ntf apis.Notifier
	log *zap.Logger
	reg apis.Registry
	agg *stats.Aggregator
}

var (
	// st holds the current snapshot. Readers never lock.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

// init publishes the default snapshot.
func init() {
	st.Store(newState(config.DefaultConfig(), nil, nil, registry.New()))
}

// newState assembles a snapshot and the aggregator bound to it.
func newState(cfg apis.Config, ntf apis.Notifier, log *zap.Logger, reg apis.Registry) *state {
	if log == nil {
		log = zap.NewNop()
	}
	return &state{
		cfg: cfg,
		ntf: ntf,
		log: log,
		reg: reg,
		agg: stats.New(cfg, stats.WithNotifier(ntf), stats.WithLogger(log)),
	}
}

// update rebuilds the snapshot from the current one after mut has edited
// a copy of it.
func update(mut func(s *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	mut(&next)
	st.Store(newState(next.cfg, next.ntf, next.log, next.reg))
}

// Config returns the process-wide configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the process-wide configuration.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Notifier returns the process-wide notifier, or nil.
func Notifier() apis.Notifier {
	return st.Load().ntf
}

// SetNotifier replaces the process-wide notifier. Nil removes it.
func SetNotifier(n apis.Notifier) {
	update(func(s *state) { s.ntf = n })
}

// Logger returns the process-wide logger. It is never nil.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger replaces the process-wide logger. Nil installs a no-op logger.
func SetLogger(l *zap.Logger) {
	update(func(s *state) { s.log = l })
}

// Registry returns the process-wide registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the process-wide registry. Nil is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(s *state) { s.reg = reg })
}

// Add appends s to the process-wide registry.
func Add(s shape.Shape) error {
	return st.Load().reg.Add(s)
}

// SetAll replaces every component in one step. Nil cfg keeps the current
// configuration and nil reg installs a fresh, empty registry; the notifier
// and logger are always replaced.
func SetAll(cfg *apis.Config, n apis.Notifier, l *zap.Logger, reg apis.Registry) {
	update(func(s *state) {
		if cfg != nil {
			s.cfg = *cfg
		}
		if reg == nil {
			reg = registry.New()
		}
		s.ntf, s.log, s.reg = n, l, reg
	})
}

// Aggregator returns the aggregator bound to the current snapshot.
func Aggregator() *stats.Aggregator {
	return st.Load().agg
}

// Compute aggregates reg synchronously with the process-wide settings.
// A nil reg means the process-wide registry.
func Compute(reg apis.Registry) (stats.Stats, error) {
	s := st.Load()
	return s.agg.Compute(orDefault(reg, s))
}

// Go aggregates reg on a new goroutine and posts h to exec, see
// stats.Aggregator.Go. A nil reg means the process-wide registry.
func Go(reg apis.Registry, exec apis.Executor, h stats.Handler) *stats.Future {
	s := st.Load()
	return s.agg.Go(orDefault(reg, s), exec, h)
}

func orDefault(reg apis.Registry, s *state) apis.Registry {
	if reg == nil {
		return s.reg
	}
	return reg
}
