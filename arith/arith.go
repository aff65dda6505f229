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

// Package arith dispatches the four arithmetic operators over values of
// arbitrary types.
//
// A type participates by registering a tag (see the tag package) and a
// minimal set of implementations: binary addition and multiplication,
// unary negation and reciprocal. The package derives binary subtraction
// as x + (-y) and binary division as x * (1/y), handles the Zero and One
// identity sentinels, and reduces longer argument lists by folding from
// the left. Types may register direct binary subtraction and division
// entries to bypass the derived forms.
package arith

import (
	"github.com/garith-org/garith/tag"
)

type (
	zeroValue struct{}
	oneValue  struct{}
)

var (
	// Zero is the additive identity sentinel: adding it to any
	// arithmetic value returns that value unchanged.
	Zero = zeroValue{}

	// One is the multiplicative identity sentinel: multiplying any
	// arithmetic value by it returns that value unchanged.
	One = oneValue{}
)

var (
	_ tag.Tagged = zeroValue{}
	_ tag.Tagged = oneValue{}
)

// ArithmeticTag of the additive identity.
func (zeroValue) ArithmeticTag() tag.Tag { return tag.Zero }

// ArithmeticTag of the multiplicative identity.
func (oneValue) ArithmeticTag() tag.Tag { return tag.One }

func (zeroValue) String() string { return "zero" }

func (oneValue) String() string { return "one" }

var (
	// Addition is the dispatch table of operator +.
	Addition = newTable("+")

	// Subtraction is the dispatch table of operator -.
	Subtraction = newTable("-")

	// Multiplication is the dispatch table of operator *.
	Multiplication = newTable("*")

	// Division is the dispatch table of operator /.
	Division = newTable("/")
)

// Add returns the sum of its arguments. With no argument, it returns
// Zero; with one argument, the argument unchanged.
func Add(xs ...any) (any, error) {
	return Addition.Apply(xs...)
}

// Sub returns its first argument minus the remaining ones, folding from
// the left. With one argument, it returns the argument negated. A call
// with no argument fails: subtraction has no identity-only form.
func Sub(xs ...any) (any, error) {
	return Subtraction.Apply(xs...)
}

// Mul returns the product of its arguments. With no argument, it
// returns One; with one argument, the argument unchanged.
func Mul(xs ...any) (any, error) {
	return Multiplication.Apply(xs...)
}

// Div returns its first argument divided by the remaining ones, folding
// from the left. With one argument, it returns the reciprocal of the
// argument. A call with no argument fails: division has no
// identity-only form.
func Div(xs ...any) (any, error) {
	return Division.Apply(xs...)
}
