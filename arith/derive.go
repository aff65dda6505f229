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

package arith

import (
	"github.com/garith-org/garith/fail"
	"github.com/garith-org/garith/tag"
)

// Default entries of the four tables: identity handling for the Zero
// and One sentinels and the algebraic derivations x-y = x+(-y) and
// x/y = x*(1/y). All of them can be overridden by later registrations.
func init() {
	identity := func(x any) (any, error) { return x, nil }
	left := func(x, y any) (any, error) { return x, nil }
	right := func(x, y any) (any, error) { return y, nil }

	mustRegister(Addition.RegisterNulary(func() (any, error) { return Zero, nil }))
	mustRegister(Addition.RegisterUnary(tag.Any, identity))
	mustRegister(Addition.RegisterBinary(tag.Any, tag.Zero, left))
	mustRegister(Addition.RegisterBinary(tag.Zero, tag.Any, right))

	mustRegister(Multiplication.RegisterNulary(func() (any, error) { return One, nil }))
	mustRegister(Multiplication.RegisterUnary(tag.Any, identity))
	mustRegister(Multiplication.RegisterBinary(tag.Any, tag.One, left))
	mustRegister(Multiplication.RegisterBinary(tag.One, tag.Any, right))

	mustRegister(Subtraction.RegisterNulary(func() (any, error) {
		return nil, fail.Errorf(fail.IllegalArgument, "operator - requires at least one argument")
	}))
	// The negation of the additive identity is itself.
	mustRegister(Subtraction.RegisterUnary(tag.Zero, func(any) (any, error) { return Zero, nil }))
	mustRegister(Subtraction.RegisterBinary(tag.Any, tag.Zero, left))
	mustRegister(Subtraction.RegisterBinary(tag.Zero, tag.Any, func(_, y any) (any, error) {
		return Subtraction.Apply(y)
	}))
	mustRegister(Subtraction.RegisterBinary(tag.Any, tag.Any, func(x, y any) (any, error) {
		negY, err := Subtraction.Apply(y)
		if err != nil {
			return nil, err
		}
		return Addition.Apply(x, negY)
	}))

	mustRegister(Division.RegisterNulary(func() (any, error) {
		return nil, fail.Errorf(fail.IllegalArgument, "operator / requires at least one argument")
	}))
	// The reciprocal of the multiplicative identity is itself.
	mustRegister(Division.RegisterUnary(tag.One, func(any) (any, error) { return One, nil }))
	mustRegister(Division.RegisterBinary(tag.Any, tag.One, left))
	mustRegister(Division.RegisterBinary(tag.One, tag.Any, func(_, y any) (any, error) {
		return Division.Apply(y)
	}))
	mustRegister(Division.RegisterBinary(tag.Any, tag.Any, func(x, y any) (any, error) {
		recY, err := Division.Apply(y)
		if err != nil {
			return nil, err
		}
		return Multiplication.Apply(x, recY)
	}))
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}
