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

// Package native registers the platform's numeric types on the
// arithmetic dispatch tables.
//
// All entries use the built-in Go operators directly, including binary
// subtraction and division, so native arithmetic never goes through the
// derived forms. Precision and overflow behavior are those of the
// underlying Go type.
package native

import (
	"reflect"

	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"

	"github.com/garith-org/garith/arith"
	"github.com/garith-org/garith/tag"
)

// TagFor returns the dispatch tag registered for the numeric type T.
func TagFor[T constraints.Integer | constraints.Float]() tag.Tag {
	return tag.Tag("native:" + reflect.TypeFor[T]().String())
}

// Install registers float64, the host's native numeric type, on all
// four tables.
func Install() error {
	return InstallFloat[float64]()
}

// InstallFloat registers the floating point type T on all four tables,
// including unary negation and reciprocal.
func InstallFloat[T constraints.Float]() error {
	tg, err := installCommon[T]()
	return multierr.Combine(
		err,
		arith.Division.RegisterBinary(tg, tg, func(x, y any) (any, error) {
			return x.(T) / y.(T), nil
		}),
		arith.Division.RegisterUnary(tg, func(x any) (any, error) {
			return 1 / x.(T), nil
		}),
	)
}

// InstallInteger registers the integer type T on all four tables.
// Binary division truncates like the built-in / operator. No reciprocal
// is registered: a unary / call on T fails with a dispatch miss.
func InstallInteger[T constraints.Integer]() error {
	tg, err := installCommon[T]()
	return multierr.Combine(
		err,
		arith.Division.RegisterBinary(tg, tg, func(x, y any) (any, error) {
			return x.(T) / y.(T), nil
		}),
	)
}

func installCommon[T constraints.Integer | constraints.Float]() (tag.Tag, error) {
	tg := TagFor[T]()
	tag.Register[T](tg)
	err := multierr.Combine(
		arith.Addition.RegisterBinary(tg, tg, func(x, y any) (any, error) {
			return x.(T) + y.(T), nil
		}),
		arith.Subtraction.RegisterBinary(tg, tg, func(x, y any) (any, error) {
			return x.(T) - y.(T), nil
		}),
		arith.Subtraction.RegisterUnary(tg, func(x any) (any, error) {
			return -x.(T), nil
		}),
		arith.Multiplication.RegisterBinary(tg, tg, func(x, y any) (any, error) {
			return x.(T) * y.(T), nil
		}),
	)
	return tg, err
}
