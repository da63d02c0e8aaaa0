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

import (
	"fmt"
	"strings"
)

// Policy controls how an aggregation pass treats a shape whose area
// evaluation fails (for example a triangle built from collinear points).
//
// # Values
//
//   - PolicySkip: exclude the shape from the area extrema, keep it for the
//     description extrema, and report it alongside the result.
//   - PolicyFail: abort the pass and return the first failure.
//
// The zero value is PolicySkip.
type Policy int

const (
	// PolicySkip isolates failing shapes and reports them.
	PolicySkip Policy = iota
	// PolicyFail aborts the whole pass on the first failing shape.
	PolicyFail
)

// String returns "skip" or "fail", or "Unknown(<n>)" for other values.
func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyFail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParsePolicy parses "skip" or "fail", case-insensitively and ignoring
// surrounding whitespace. On failure it returns PolicySkip and an error.
func ParsePolicy(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return PolicySkip, fmt.Errorf("shapes(apis): empty policy")
	}

	switch strings.ToLower(trimmed) {
	case "skip":
		return PolicySkip, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicySkip, fmt.Errorf("shapes(apis): unknown policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case PolicySkip, PolicyFail:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("shapes(apis): cannot marshal unknown policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *p is left
// unchanged.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Set implements pflag.Value so a Policy can be bound to a CLI flag.
func (p *Policy) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (*Policy) Type() string {
	return "policy"
}
