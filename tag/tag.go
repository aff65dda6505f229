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

// Package tag assigns dispatch tags to arithmetic values.
//
// Every value participating in generic arithmetic has exactly one
// most-specific tag, and every tag belongs to the generic arithmetic
// family represented by Any. The hierarchy is one level deep: a concrete
// tag's supertag is always Any.
package tag

import (
	"reflect"

	gsync "github.com/garith-org/garith/base/sync"
)

// Tag identifies a concrete arithmetic type at dispatch time.
type Tag string

const (
	// Any is the supertag: the generic arithmetic family used for
	// fallback matching when no exact implementation is registered.
	Any Tag = "arith:any"

	// Zero tags the additive identity singleton.
	Zero Tag = "arith:zero"

	// One tags the multiplicative identity singleton.
	One Tag = "arith:one"
)

// Tagged is implemented by values that declare their own dispatch tag.
// Implementing Tagged is the declaration of membership in the generic
// arithmetic family.
type Tagged interface {
	ArithmeticTag() Tag
}

// byType maps dynamic Go types to their dispatch tag. It serves types,
// such as the platform numerics, that cannot implement Tagged.
var byType gsync.Map[reflect.Type, Tag]

// RegisterType declares the dispatch tag of values with dynamic type t.
// The declaration must happen before any dispatch on that type is
// attempted. The last registration for a type wins.
func RegisterType(t reflect.Type, tg Tag) {
	byType.Store(t, tg)
}

// Register declares the dispatch tag of values of type T.
func Register[T any](tg Tag) {
	RegisterType(reflect.TypeFor[T](), tg)
}

// Of returns the most-specific dispatch tag of v. A value implementing
// Tagged uses its declared tag; otherwise the tag registered for its
// dynamic type applies. The second return value is false if v has no tag.
func Of(v any) (Tag, bool) {
	if tagged, ok := v.(Tagged); ok {
		return tagged.ArithmeticTag(), true
	}
	if v == nil {
		return "", false
	}
	return byType.Load(reflect.TypeOf(v))
}

// Super returns the supertag of a tag.
func Super(Tag) Tag {
	return Any
}
