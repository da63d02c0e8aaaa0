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

// Package scene reads shape collections from YAML documents.
//
// A scene document looks like:
//
//	name: demo
//	shapes:
//	  - {kind: triangle, name: T1, points: [{x: 0, y: 0}, {x: 3, y: 0}, {x: 0, y: 4}]}
//	  - {kind: triangle, sides: [3, 4, 5]}
//	  - {kind: line, points: [{x: 0, y: 0}, {x: 0, y: 4}]}
//	  - {kind: line, length: 5}
//	  - {kind: quadrilateral, points: [{x: 0, y: 0}, {x: 4, y: 0}, {x: 4, y: 3}, {x: 0, y: 3}]}
//	  - {kind: rectangle, width: 3, height: 6}
//	  - {kind: square, side: 4}
//	  - {kind: rhombus, side: 5, height: 4}
//
// Scene files are external input, so unlike the shape constructors a wrong
// point count is reported as an error wrapping ErrInvalidScene, never as a
// panic. Numbers must be finite: .nan and .inf are rejected. Construction
// errors wrap ErrInvalidScene and keep their shape sentinel in the chain.
package scene

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"dirpx.dev/shapes/apis"
	"dirpx.dev/shapes/geometry"
	"dirpx.dev/shapes/registry"
	"dirpx.dev/shapes/shape"
)

// ErrInvalidScene is wrapped by every error caused by document content.
var ErrInvalidScene = errors.New("shapes(scene): invalid scene")

// Document is the YAML form of a scene.
type Document struct {
	Name   string      `yaml:"name" validate:"max=128"`
	Shapes []ShapeSpec `yaml:"shapes" validate:"dive"`
}

// PointSpec is the YAML form of a point.
type PointSpec struct {
	X float64 `yaml:"x" validate:"finite"`
	Y float64 `yaml:"y" validate:"finite"`
}

// ShapeSpec is the YAML form of one shape. Which fields are read depends
// on Kind.
type ShapeSpec struct {
	Kind   string      `yaml:"kind" validate:"required,shapekind"`
	Name   string      `yaml:"name,omitempty" validate:"max=64"`
	Points []PointSpec `yaml:"points,omitempty" validate:"omitempty,min=2,max=4,dive"`
	Sides  []float64   `yaml:"sides,omitempty" validate:"omitempty,len=3,dive,finite"`
	Length float64     `yaml:"length,omitempty" validate:"finite"`
	Side   float64     `yaml:"side,omitempty" validate:"finite"`
	Width  float64     `yaml:"width,omitempty" validate:"finite"`
	Height float64     `yaml:"height,omitempty" validate:"finite"`
}

// Scene is a decoded, fully constructed set of shapes.
type Scene struct {
	// Name is the document name, or the file base name for loaded files.
	Name string
	// Path is the file the scene was loaded from, if any.
	Path string
	// Shapes holds the shapes in document order.
	Shapes []shape.Shape
}

// sceneValidate is the validator instance for scene documents.
var sceneValidate *validator.Validate

func init() {
	sceneValidate = validator.New()
	_ = sceneValidate.RegisterValidation("shapekind", validateShapeKind)
	_ = sceneValidate.RegisterValidation("finite", validateFinite)
}

// validateShapeKind accepts any token shape.ParseKind understands.
func validateShapeKind(fl validator.FieldLevel) bool {
	_, err := shape.ParseKind(fl.Field().String())
	return err == nil
}

// validateFinite rejects NaN and infinities, which YAML spells .nan and .inf.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate checks the structure of d. It does not construct shapes.
func (d *Document) Validate() error {
	if err := sceneValidate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

// Parse decodes and builds a scene from YAML. Unknown fields are rejected.
// An empty document is an empty scene.
func Parse(data []byte) (*Scene, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return doc.Build()
}

// Build validates d and constructs its shapes.
func (d *Document) Build() (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	sc := &Scene{Name: d.Name, Shapes: make([]shape.Shape, 0, len(d.Shapes))}
	for i, spec := range d.Shapes {
		s, err := spec.Build()
		if err != nil {
			if errors.Is(err, ErrInvalidScene) {
				return nil, fmt.Errorf("shape #%d: %w", i, err)
			}
			return nil, fmt.Errorf("%w: shape #%d: %w", ErrInvalidScene, i, err)
		}
		sc.Shapes = append(sc.Shapes, s)
	}
	return sc, nil
}

// Build constructs the shape described by s.
func (s ShapeSpec) Build() (shape.Shape, error) {
	kind, err := shape.ParseKind(s.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	opts := []shape.Option{shape.WithName(s.Name)}
	pts := s.points()

	switch kind {
	case shape.KindLine:
		switch len(pts) {
		case 2:
			return shape.NewLine(pts[0], pts[1], opts...), nil
		case 0:
			return built[shape.Line](shape.NewLineOfLength(s.Length, opts...))
		}
		return nil, countError(kind, "2 points or a length", len(pts))

	case shape.KindTriangle:
		switch {
		case len(s.Sides) == 3 && len(pts) == 0:
			return built[shape.Triangle](shape.NewTriangle(s.Sides[0], s.Sides[1], s.Sides[2], opts...))
		case len(s.Sides) == 0 && len(pts) == 3:
			return shape.NewTriangleFromPoints(pts, opts...), nil
		}
		return nil, countError(kind, "3 sides or 3 points", len(pts))

	case shape.KindQuadrilateral:
		if len(pts) != 4 {
			return nil, countError(kind, "4 points", len(pts))
		}
		return shape.NewQuadrilateral(pts, opts...), nil

	case shape.KindRectangle:
		return built[shape.Rectangle](shape.NewRectangle(s.Width, s.Height, opts...))

	case shape.KindSquare:
		return built[shape.Square](shape.NewSquare(s.Side, opts...))

	case shape.KindRhombus:
		return built[shape.Rhombus](shape.NewRhombus(s.Side, s.Height, opts...))
	}

	return nil, fmt.Errorf("%w: unsupported kind %v", ErrInvalidScene, kind)
}

// built keeps a failed construction from leaking a zero shape as a
// non-nil interface.
func built[T shape.Shape](s T, err error) (shape.Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s ShapeSpec) points() []geometry.Point {
	if len(s.Points) == 0 {
		return nil
	}
	out := make([]geometry.Point, len(s.Points))
	for i, p := range s.Points {
		out[i] = geometry.Pt(p.X, p.Y)
	}
	return out
}

func countError(kind shape.Kind, want string, gotPoints int) error {
	return fmt.Errorf("%w: %s needs %s, got %d points", ErrInvalidScene, strings.ToLower(kind.String()), want, gotPoints)
}

// Load reads and builds the scene in path. The scene name defaults to the
// file name without extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shapes(scene): read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// LoadFiles loads every path concurrently and returns the scenes in the
// order of paths. The first failure cancels loads that have not started
// and is returned.
func LoadFiles(ctx context.Context, paths ...string) ([]*Scene, error) {
	scenes := make([]*Scene, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sc, err := Load(p)
			if err != nil {
				return err
			}
			scenes[i] = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenes, nil
}

// Registry returns a new registry holding the scene's shapes in order.
func (s *Scene) Registry() apis.Registry {
	reg := registry.New()
	for _, sh := range s.Shapes {
		// Shapes built by this package are never nil.
		_ = reg.Add(sh)
	}
	return reg
}
