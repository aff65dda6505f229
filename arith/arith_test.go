// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arith_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garith-org/garith/arith"
	"github.com/garith-org/garith/fail"
	"github.com/garith-org/garith/native"
	"github.com/garith-org/garith/tag"
)

// vec2 follows the minimal contract: binary addition plus unary
// negation and reciprocal. Subtraction and division are left to the
// derived forms; multiplication is deliberately not provided.
type vec2 struct {
	X, Y float64
}

const vec2Tag tag.Tag = "test:vec2"

func (vec2) ArithmeticTag() tag.Tag { return vec2Tag }

func registerVec2() error {
	if err := arith.Addition.RegisterBinary(vec2Tag, vec2Tag, func(x, y any) (any, error) {
		a, b := x.(vec2), y.(vec2)
		return vec2{X: a.X + b.X, Y: a.Y + b.Y}, nil
	}); err != nil {
		return err
	}
	if err := arith.Subtraction.RegisterUnary(vec2Tag, func(x any) (any, error) {
		v := x.(vec2)
		return vec2{X: -v.X, Y: -v.Y}, nil
	}); err != nil {
		return err
	}
	return arith.Division.RegisterUnary(vec2Tag, func(x any) (any, error) {
		v := x.(vec2)
		return vec2{X: 1 / v.X, Y: 1 / v.Y}, nil
	})
}

// scale provides binary multiplication and unary reciprocal only, so
// division resolves through the derived x*(1/y) path.
type scale float64

const scaleTag tag.Tag = "test:scale"

func (scale) ArithmeticTag() tag.Tag { return scaleTag }

func registerScale() error {
	if err := arith.Multiplication.RegisterBinary(scaleTag, scaleTag, func(x, y any) (any, error) {
		return x.(scale) * y.(scale), nil
	}); err != nil {
		return err
	}
	return arith.Division.RegisterUnary(scaleTag, func(x any) (any, error) {
		return 1 / x.(scale), nil
	})
}

func TestMain(m *testing.M) {
	if err := native.Install(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := registerVec2(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := registerScale(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func apply(t *testing.T, f func(...any) (any, error), xs ...any) any {
	t.Helper()
	got, err := f(xs...)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	return got
}

func TestIdentityLaws(t *testing.T) {
	values := []any{
		2.5,
		vec2{X: 1, Y: 2},
		scale(4),
	}
	for _, x := range values {
		t.Run(fmt.Sprintf("%T", x), func(t *testing.T) {
			for _, test := range []struct {
				name string
				got  any
			}{
				{"Add(x, Zero)", apply(t, arith.Add, x, arith.Zero)},
				{"Add(Zero, x)", apply(t, arith.Add, arith.Zero, x)},
				{"Mul(x, One)", apply(t, arith.Mul, x, arith.One)},
				{"Mul(One, x)", apply(t, arith.Mul, arith.One, x)},
				{"Sub(x, Zero)", apply(t, arith.Sub, x, arith.Zero)},
				{"Div(x, One)", apply(t, arith.Div, x, arith.One)},
				{"Add(x)", apply(t, arith.Add, x)},
				{"Mul(x)", apply(t, arith.Mul, x)},
			} {
				if diff := cmp.Diff(x, test.got); diff != "" {
					t.Errorf("%s does not return x unchanged (-want +got):\n%s", test.name, diff)
				}
			}
		})
	}
}

func TestNularyForms(t *testing.T) {
	if got := apply(t, arith.Add); got != arith.Zero {
		t.Errorf("Add() = %v but want Zero", got)
	}
	if got := apply(t, arith.Mul); got != arith.One {
		t.Errorf("Mul() = %v but want One", got)
	}
	for _, test := range []struct {
		name string
		f    func(...any) (any, error)
	}{
		{"Sub", arith.Sub},
		{"Div", arith.Div},
	} {
		_, err := test.f()
		if err == nil {
			t.Errorf("%s() returned no error but want an arity failure", test.name)
			continue
		}
		if !fail.IsKind(err, fail.IllegalArgument) {
			t.Errorf("%s() failed with %v but want kind %v", test.name, err, fail.IllegalArgument)
		}
	}
}

func TestSentinelEdges(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Sub(Zero, x)", apply(t, arith.Sub, arith.Zero, 4.0), -4.0},
		{"Div(One, x)", apply(t, arith.Div, arith.One, 4.0), 0.25},
		{"Sub(Zero, Zero)", apply(t, arith.Sub, arith.Zero, arith.Zero), arith.Zero},
		{"Div(One, One)", apply(t, arith.Div, arith.One, arith.One), arith.One},
		{"Add(Zero, Zero)", apply(t, arith.Add, arith.Zero, arith.Zero), arith.Zero},
		{"Mul(One, One)", apply(t, arith.Mul, arith.One, arith.One), arith.One},
		{"Add(One, Zero)", apply(t, arith.Add, arith.One, arith.Zero), arith.One},
		{"Mul(Zero, One)", apply(t, arith.Mul, arith.Zero, arith.One), arith.Zero},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %v but want %v", test.name, test.got, test.want)
		}
	}
}

func TestUnaryForms(t *testing.T) {
	if got := apply(t, arith.Sub, 3.0); got != -3.0 {
		t.Errorf("Sub(3.0) = %v but want -3", got)
	}
	if got := apply(t, arith.Div, 10.0); got != 0.1 {
		t.Errorf("Div(10.0) = %v but want 0.1", got)
	}
	want := vec2{X: -1, Y: -2}
	if got := apply(t, arith.Sub, vec2{X: 1, Y: 2}); got != want {
		t.Errorf("Sub(vec2{1, 2}) = %v but want %v", got, want)
	}
}

func TestDerivedSubtraction(t *testing.T) {
	a, b := vec2{X: 1, Y: 2}, vec2{X: 3, Y: 4}
	got := apply(t, arith.Sub, a, b)
	want := vec2{X: -2, Y: -2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sub(%v, %v) (-want +got):\n%s", a, b, diff)
	}
	// The derived form must agree with explicit negate-then-add.
	negB := apply(t, arith.Sub, b)
	if diff := cmp.Diff(apply(t, arith.Add, a, negB), got); diff != "" {
		t.Errorf("Sub(a, b) differs from Add(a, Sub(b)) (-want +got):\n%s", diff)
	}
}

func TestDerivedDivision(t *testing.T) {
	x, y := scale(10), scale(4)
	got := apply(t, arith.Div, x, y)
	if got != scale(2.5) {
		t.Errorf("Div(%v, %v) = %v but want 2.5", x, y, got)
	}
	recY := apply(t, arith.Div, y)
	if diff := cmp.Diff(apply(t, arith.Mul, x, recY), got); diff != "" {
		t.Errorf("Div(x, y) differs from Mul(x, Div(y)) (-want +got):\n%s", diff)
	}
}

func TestNaryLeftFold(t *testing.T) {
	tests := []struct {
		name string
		f    func(...any) (any, error)
		args []any
		want any
	}{
		{"Add", arith.Add, []any{2.0, 3.0, 4.0}, 9.0},
		{"Mul", arith.Mul, []any{2.0, 3.0, 4.0}, 24.0},
		{"Sub", arith.Sub, []any{5.0, 2.0, 1.0}, 2.0},
		{"Div", arith.Div, []any{100.0, 5.0, 2.0}, 10.0},
	}
	for _, test := range tests {
		if got := apply(t, test.f, test.args...); got != test.want {
			t.Errorf("%s(%v) = %v but want %v", test.name, test.args, got, test.want)
		}
	}
}

func TestNaryMatchesPairwise(t *testing.T) {
	a, b, c := 7.0, 2.5, 1.5
	for _, test := range []struct {
		name string
		f    func(...any) (any, error)
	}{
		{"Add", arith.Add},
		{"Sub", arith.Sub},
		{"Mul", arith.Mul},
		{"Div", arith.Div},
	} {
		nary := apply(t, test.f, a, b, c)
		pairwise := apply(t, test.f, apply(t, test.f, a, b), c)
		if nary != pairwise {
			t.Errorf("%s(a, b, c) = %v but pairwise left fold gives %v", test.name, nary, pairwise)
		}
	}
}

func TestNaryLongArgumentList(t *testing.T) {
	xs := make([]any, 10000)
	for i := range xs {
		xs[i] = 1.0
	}
	if got := apply(t, arith.Add, xs...); got != 10000.0 {
		t.Errorf("Add of %d ones = %v but want %v", len(xs), got, 10000.0)
	}
}

func TestDispatchMiss(t *testing.T) {
	// vec2 registers no multiplication.
	_, err := arith.Mul(vec2{X: 1, Y: 2}, vec2{X: 3, Y: 4})
	if err == nil {
		t.Fatal("Mul(vec2, vec2) returned no error but want a dispatch miss")
	}
	if !fail.IsKind(err, fail.NoImplementation) {
		t.Errorf("Mul(vec2, vec2) failed with %v but want kind %v", err, fail.NoImplementation)
	}
}

func TestUntaggedOperand(t *testing.T) {
	type plain struct{}
	for _, args := range [][]any{
		{plain{}},
		{plain{}, 2.0},
		{2.0, plain{}},
	} {
		_, err := arith.Add(args...)
		if err == nil {
			t.Errorf("Add(%v) returned no error but want a failure", args)
			continue
		}
		if !fail.IsKind(err, fail.NoImplementation) {
			t.Errorf("Add(%v) failed with %v but want kind %v", args, err, fail.NoImplementation)
		}
	}
}

// genericPoly is registered at the generic pair level only: no exact
// (genericPolyTag, genericPolyTag) entry exists, so addition must
// resolve through the supertag fallback.
type genericPoly struct {
	sum int
}

const genericPolyTag tag.Tag = "test:genericpoly"

func (genericPoly) ArithmeticTag() tag.Tag { return genericPolyTag }

func TestGenericPairFallback(t *testing.T) {
	err := arith.Addition.RegisterBinary(tag.Any, tag.Any, func(x, y any) (any, error) {
		a, aOK := x.(genericPoly)
		b, bOK := y.(genericPoly)
		if !aOK || !bOK {
			return nil, fail.Errorf(fail.NoImplementation, "no applicable implementation of operator + for (%T, %T)", x, y)
		}
		return genericPoly{sum: a.sum + b.sum}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	got := apply(t, arith.Add, genericPoly{sum: 1}, genericPoly{sum: 2})
	if diff := cmp.Diff(genericPoly{sum: 3}, got, cmp.AllowUnexported(genericPoly{})); diff != "" {
		t.Errorf("Add via generic pair fallback (-want +got):\n%s", diff)
	}
}
