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

package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/shapes/geometry"
	"dirpx.dev/shapes/shape"
)

const eps = 1e-9

func heron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

func TestTriangle_ValidSides(t *testing.T) {
	cases := [][3]float64{
		{3, 4, 5},
		{1, 1, 1},
		{2, 3, 4},
		{0.5, 0.5, 0.9},
		{10, 10, 19.99},
		{7, 24, 25},
	}
	for _, c := range cases {
		tri, err := shape.NewTriangle(c[0], c[1], c[2])
		require.NoError(t, err, "sides %v", c)

		assert.InDelta(t, c[0]+c[1]+c[2], tri.Perimeter(), eps)
		area, err := tri.Area()
		require.NoError(t, err)
		assert.InDelta(t, heron(c[0], c[1], c[2]), area, eps)
	}
}

func TestTriangle_345(t *testing.T) {
	tri, err := shape.NewTriangle(3, 4, 5, shape.WithName("T1"))
	require.NoError(t, err)

	area, err := tri.Area()
	require.NoError(t, err)
	assert.Equal(t, 6.0, area)
	assert.Equal(t, 12.0, tri.Perimeter())
	assert.Equal(t, "T1", tri.Name())
	assert.Equal(t, shape.KindTriangle, tri.Kind())
	_, fromPoints := tri.Points()
	assert.False(t, fromPoints)
}

func TestTriangle_InvalidSides(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"a+b==c", 1, 2, 3},
		{"a+b<c", 1, 2, 10},
		{"a+c<b", 1, 10, 2},
		{"b+c<a", 10, 1, 2},
		{"zero side", 0, 1, 1},
		{"negative side", -1, 2, 2},
		{"all zero", 0, 0, 0},
		{"NaN side", math.NaN(), 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.NewTriangle(tc.a, tc.b, tc.c)
			require.ErrorIs(t, err, shape.ErrNotATriangle)
		})
	}
}

func TestTriangle_FromPoints(t *testing.T) {
	tri := shape.NewTriangleFromPoints([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(3, 0), geometry.Pt(0, 4),
	}, shape.WithName("T1"))

	area, err := tri.Area()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, eps)
	assert.InDelta(t, 12.0, tri.Perimeter(), eps)

	pts, ok := tri.Points()
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(3, 0), pts[1])
}

func TestTriangle_CollinearPointsFailAtArea(t *testing.T) {
	// construction succeeds
	tri := shape.NewTriangleFromPoints([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(2, 0),
	})

	_, err := tri.Area()
	require.ErrorIs(t, err, shape.ErrNegativeArea)
	// perimeter stays defined
	assert.InDelta(t, 4.0, tri.Perimeter(), eps)
	assert.Equal(t, "Triangle 'Unnamed' area: degenerate", tri.String())
}

func TestTriangle_CoincidentPointsFailAtArea(t *testing.T) {
	p := geometry.Pt(1, 1)
	tri := shape.NewTriangleFromPoints([]geometry.Point{p, p, p})
	_, err := tri.Area()
	require.ErrorIs(t, err, shape.ErrNegativeArea)
}

func TestTriangle_WrongPointCountPanics(t *testing.T) {
	assert.Panics(t, func() {
		shape.NewTriangleFromPoints([]geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1)})
	})
	assert.Panics(t, func() {
		shape.NewTriangleFromPoints(make([]geometry.Point, 4))
	})
}

func TestQuadrilateral(t *testing.T) {
	q := shape.NewQuadrilateral([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(4, 0), geometry.Pt(4, 3), geometry.Pt(0, 3),
	}, shape.WithName("Q1"))

	area, err := q.Area()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, area, eps)
	assert.InDelta(t, 14.0, q.Perimeter(), eps)
	assert.Equal(t, shape.KindQuadrilateral, q.Kind())
	assert.Equal(t, "Quadrilateral 'Q1' perimeter: 14.0", q.String())
}

func TestQuadrilateral_Irregular(t *testing.T) {
	// kite: diagonals 4 (horizontal) and 6 (vertical) -> area 12
	q := shape.NewQuadrilateral([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(2, -2), geometry.Pt(4, 0), geometry.Pt(2, 4),
	})
	area, err := q.Area()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, area, eps)
}

func TestQuadrilateral_WrongPointCountPanics(t *testing.T) {
	assert.Panics(t, func() { shape.NewQuadrilateral(make([]geometry.Point, 3)) })
	assert.Panics(t, func() { shape.NewQuadrilateral(make([]geometry.Point, 5)) })
	assert.Panics(t, func() { shape.NewQuadrilateral(nil) })
}

func TestRectangleAndSquare(t *testing.T) {
	r, err := shape.NewRectangle(3, 6, shape.WithName("R1"))
	require.NoError(t, err)
	area, _ := r.Area()
	assert.Equal(t, 18.0, area)
	assert.Equal(t, 18.0, r.Perimeter())
	assert.Equal(t, shape.KindRectangle, r.Kind())

	s, err := shape.NewSquare(4, shape.WithName("S1"))
	require.NoError(t, err)
	area, _ = s.Area()
	assert.Equal(t, 16.0, area)
	assert.Equal(t, 16.0, s.Perimeter())
	assert.Equal(t, 4.0, s.Side())
	assert.Equal(t, shape.KindSquare, s.Kind())
	assert.Equal(t, "Square 'S1' area: 16.0", s.String())
	w, h := s.Dimensions()
	assert.Equal(t, w, h)
}

func TestRectangle_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 1},
		{"zero height", 1, 0},
		{"negative width", -2, 1},
		{"negative height", 1, -2},
		{"NaN", math.NaN(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.NewRectangle(tc.w, tc.h)
			require.ErrorIs(t, err, shape.ErrInvalidDimensions)
		})
	}

	_, err := shape.NewSquare(0)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
	_, err = shape.NewSquare(-1)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
}

func TestRhombus(t *testing.T) {
	r, err := shape.NewRhombus(5, 4, shape.WithName("Rh1"))
	require.NoError(t, err)
	area, _ := r.Area()
	assert.Equal(t, 20.0, area)
	assert.Equal(t, 20.0, r.Perimeter())
	assert.Equal(t, "Rhombus 'Rh1' area: 20.0", r.String())

	_, err = shape.NewRhombus(0, 4)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
	_, err = shape.NewRhombus(5, -1)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
}

func TestLine(t *testing.T) {
	l := shape.NewLine(geometry.Pt(0, 0), geometry.Pt(0, 4), shape.WithName("L1"))
	area, err := l.Area()
	require.NoError(t, err)
	assert.Zero(t, area)
	assert.Equal(t, 4.0, l.Perimeter())
	assert.Equal(t, 4.0, l.Length())
	dx, dy := l.Vector()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 4.0, dy)
	assert.Equal(t, "Line 'L1' length: 4.0", l.String())

	ll, err := shape.NewLineOfLength(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ll.Perimeter())
	_, _, ok := ll.Points()
	assert.False(t, ok)
	assert.Equal(t, "Line 'Unnamed' length: 5.0", ll.String())
}

func TestLine_InvalidLength(t *testing.T) {
	for _, l := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		_, err := shape.NewLineOfLength(l)
		require.ErrorIs(t, err, shape.ErrInvalidLength, "length %v", l)
	}
}

func TestDescribe(t *testing.T) {
	tri, _ := shape.NewTriangle(3, 4, 5, shape.WithName("T1"))
	rect, _ := shape.NewRectangle(1.5, 2, shape.WithName("R"))

	cases := []struct {
		s    shape.Shape
		want string
	}{
		{tri, "Triangle 'T1' area: 6.0"},
		{rect, "Rectangle 'R' area: 3.0"},
		{nil, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, shape.Describe(tc.s))
	}
}

func TestNilOptionIgnored(t *testing.T) {
	r, err := shape.NewRectangle(1, 1, nil, shape.WithName("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", r.Name())
}

func TestDescribe_NumberRendering(t *testing.T) {
	cases := []struct {
		name string
		s    shape.Shape
		want string
	}{
		{"integral", must(shape.NewSquare(2, shape.WithName("a"))), "Square 'a' area: 4.0"},
		{"fraction", must(shape.NewRectangle(1.5, 3, shape.WithName("b"))), "Rectangle 'b' area: 4.5"},
		{"large", must(shape.NewRectangle(1e8, 1e8, shape.WithName("c"))), "Rectangle 'c' area: 1e+16"},
		{"small", must(shape.NewRectangle(1e-3, 1e-2, shape.WithName("d"))), "Rectangle 'd' area: 1e-05"},
		{"nan length", shape.NewLine(geometry.Pt(math.NaN(), 0), geometry.Pt(1, 0), shape.WithName("e")), "Line 'e' length: nan"},
		{"inf perimeter", shape.NewQuadrilateral([]geometry.Point{
			geometry.Pt(math.Inf(1), 0), geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1),
		}, shape.WithName("f")), "Quadrilateral 'f' perimeter: inf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shape.Describe(tc.s))
		})
	}
}

func TestDescribe_IntegralAndFractionalTie(t *testing.T) {
	a := must(shape.NewRectangle(2, 2, shape.WithName("a")))
	b := must(shape.NewRectangle(1.5, 3, shape.WithName("b")))
	assert.Equal(t, len(a.String()), len(b.String()))
}

func must(s shape.Shape, err error) shape.Shape {
	if err != nil {
		panic(err)
	}
	return s
}

func TestNonFiniteCoordinatesFailAtArea(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	shapes := map[string]shape.Shape{
		"quad nan": shape.NewQuadrilateral([]geometry.Point{
			geometry.Pt(nan, 0), geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1),
		}),
		"quad inf": shape.NewQuadrilateral([]geometry.Point{
			geometry.Pt(0, 0), geometry.Pt(inf, 0), geometry.Pt(1, 1), geometry.Pt(0, 1),
		}),
		"triangle nan": shape.NewTriangleFromPoints([]geometry.Point{
			geometry.Pt(0, 0), geometry.Pt(3, nan), geometry.Pt(0, 4),
		}),
		"triangle inf": shape.NewTriangleFromPoints([]geometry.Point{
			geometry.Pt(0, 0), geometry.Pt(3, 0), geometry.Pt(0, -inf),
		}),
		"line nan": shape.NewLine(geometry.Pt(0, nan), geometry.Pt(1, 1)),
		"line inf": shape.NewLine(geometry.Pt(0, 0), geometry.Pt(inf, 1)),
	}
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			area, err := s.Area()
			require.ErrorIs(t, err, shape.ErrNonFinite)
			assert.Zero(t, area)
		})
	}
}

func TestAreaOverflowFails(t *testing.T) {
	r := must(shape.NewRectangle(1e200, 1e200))
	_, err := r.Area()
	require.ErrorIs(t, err, shape.ErrNonFinite)
	assert.Contains(t, r.String(), "degenerate")

	rh := must(shape.NewRhombus(1e200, 1e200))
	_, err = rh.Area()
	require.ErrorIs(t, err, shape.ErrNonFinite)
}

func TestInfiniteDimensionsRejected(t *testing.T) {
	inf := math.Inf(1)

	_, err := shape.NewRectangle(inf, 1)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
	_, err = shape.NewSquare(inf)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
	_, err = shape.NewRhombus(1, inf)
	require.ErrorIs(t, err, shape.ErrInvalidDimensions)
	_, err = shape.NewLineOfLength(inf)
	require.ErrorIs(t, err, shape.ErrInvalidLength)
	_, err = shape.NewTriangle(inf, inf, inf)
	require.ErrorIs(t, err, shape.ErrNotATriangle)
}
