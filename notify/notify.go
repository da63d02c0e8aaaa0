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

// Package notify provides apis.Notifier implementations.
package notify

import (
	"go.uber.org/zap"

	"dirpx.dev/shapes/apis"
)

// Func adapts a plain function to apis.Notifier.
type Func func(description string)

// OnLargestShapeProcessed calls f(description).
func (f Func) OnLargestShapeProcessed(description string) { f(description) }

// Log returns a Notifier that writes each notification to l at info level.
// A nil logger yields a no-op notifier.
func Log(l *zap.Logger) apis.Notifier {
	if l == nil {
		l = zap.NewNop()
	}
	return logNotifier{logger: l.Named("notify")}
}

type logNotifier struct {
	logger *zap.Logger
}

func (n logNotifier) OnLargestShapeProcessed(description string) {
	if description == "" {
		n.logger.Info("aggregation finished without an area extremum")
		return
	}
	n.logger.Info("largest shape processed", zap.String("shape", description))
}

// Multi fans a notification out to every non-nil notifier, in order.
func Multi(ns ...apis.Notifier) apis.Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

type multi []apis.Notifier

func (m multi) OnLargestShapeProcessed(description string) {
	for _, n := range m {
		n.OnLargestShapeProcessed(description)
	}
}
