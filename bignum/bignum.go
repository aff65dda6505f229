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

// Package bignum registers the arbitrary-precision numeric types of
// math/big on the arithmetic dispatch tables.
//
// *big.Float and *big.Rat each get direct entries for all four binary
// operators plus unary negation and reciprocal. The reciprocal of a
// *big.Rat is exact; the reciprocal of a *big.Float is computed at the
// operand's precision. Mixed pairs of the two types are not registered.
// Division by a zero value panics, as the math/big operators do.
package bignum

import (
	"math/big"

	"go.uber.org/multierr"

	"github.com/garith-org/garith/arith"
	"github.com/garith-org/garith/tag"
)

const (
	// FloatTag is the dispatch tag of *big.Float values.
	FloatTag tag.Tag = "bignum:float"

	// RatTag is the dispatch tag of *big.Rat values.
	RatTag tag.Tag = "bignum:rat"
)

// Install registers *big.Float and *big.Rat on all four tables.
func Install() error {
	return multierr.Combine(installFloat(), installRat())
}

func installFloat() error {
	tag.Register[*big.Float](FloatTag)
	return multierr.Combine(
		arith.Addition.RegisterBinary(FloatTag, FloatTag, func(x, y any) (any, error) {
			return new(big.Float).Add(x.(*big.Float), y.(*big.Float)), nil
		}),
		arith.Subtraction.RegisterBinary(FloatTag, FloatTag, func(x, y any) (any, error) {
			return new(big.Float).Sub(x.(*big.Float), y.(*big.Float)), nil
		}),
		arith.Subtraction.RegisterUnary(FloatTag, func(x any) (any, error) {
			return new(big.Float).Neg(x.(*big.Float)), nil
		}),
		arith.Multiplication.RegisterBinary(FloatTag, FloatTag, func(x, y any) (any, error) {
			return new(big.Float).Mul(x.(*big.Float), y.(*big.Float)), nil
		}),
		arith.Division.RegisterBinary(FloatTag, FloatTag, func(x, y any) (any, error) {
			return new(big.Float).Quo(x.(*big.Float), y.(*big.Float)), nil
		}),
		arith.Division.RegisterUnary(FloatTag, func(x any) (any, error) {
			xf := x.(*big.Float)
			return new(big.Float).SetPrec(xf.Prec()).Quo(big.NewFloat(1), xf), nil
		}),
	)
}

func installRat() error {
	tag.Register[*big.Rat](RatTag)
	return multierr.Combine(
		arith.Addition.RegisterBinary(RatTag, RatTag, func(x, y any) (any, error) {
			return new(big.Rat).Add(x.(*big.Rat), y.(*big.Rat)), nil
		}),
		arith.Subtraction.RegisterBinary(RatTag, RatTag, func(x, y any) (any, error) {
			return new(big.Rat).Sub(x.(*big.Rat), y.(*big.Rat)), nil
		}),
		arith.Subtraction.RegisterUnary(RatTag, func(x any) (any, error) {
			return new(big.Rat).Neg(x.(*big.Rat)), nil
		}),
		arith.Multiplication.RegisterBinary(RatTag, RatTag, func(x, y any) (any, error) {
			return new(big.Rat).Mul(x.(*big.Rat), y.(*big.Rat)), nil
		}),
		arith.Division.RegisterBinary(RatTag, RatTag, func(x, y any) (any, error) {
			return new(big.Rat).Quo(x.(*big.Rat), y.(*big.Rat)), nil
		}),
		arith.Division.RegisterUnary(RatTag, func(x any) (any, error) {
			return new(big.Rat).Inv(x.(*big.Rat)), nil
		}),
	)
}
