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

package config

import (
	"math"

	"dirpx.dev/shapes/apis"
)

const (
	// DefaultPolicy represents the default for Policy.
	// Failing shapes are skipped and reported instead of aborting the pass.
	DefaultPolicy = apis.PolicySkip
	// DefaultTolerance represents the default for Tolerance.
	// Areas are compared exactly.
	DefaultTolerance = 0.0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Tolerance is usable.
	if !validTolerance(cfg.Tolerance) {
		cfg.Tolerance = DefaultTolerance
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Policy:    DefaultPolicy,
		Tolerance: DefaultTolerance,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithPolicy sets the Policy option.
// Unknown values reset to the default.
func WithPolicy(p apis.Policy) Option {
	return func(c *apis.Config) {
		switch p {
		case apis.PolicySkip, apis.PolicyFail:
			c.Policy = p
		default:
			c.Policy = DefaultPolicy
		}
	}
}

// WithTolerance sets the Tolerance option.
// A negative, NaN or infinite value resets to the default.
func WithTolerance(tol float64) Option {
	return func(c *apis.Config) {
		if !validTolerance(tol) {
			c.Tolerance = DefaultTolerance
			return
		}
		c.Tolerance = tol
	}
}

func validTolerance(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 1)
}
