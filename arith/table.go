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
	"slices"
	"sync"

	"github.com/garith-org/garith/base/ordered"
	"github.com/garith-org/garith/fail"
	"github.com/garith-org/garith/tag"
)

type (
	// NularyFunc implements an operator called with no argument.
	NularyFunc func() (any, error)

	// UnaryFunc implements an operator called with one argument.
	UnaryFunc func(x any) (any, error)

	// BinaryFunc implements an operator called with two arguments.
	BinaryFunc func(x, y any) (any, error)

	// Pair is the dispatch key of a binary implementation.
	Pair struct {
		Left, Right tag.Tag
	}

	// Table is the dispatch table of one operator. Entries can be
	// registered from any package, at any time; registration during
	// concurrent dispatch is safe. The last registration for a key wins.
	Table struct {
		name string

		mu     sync.RWMutex
		nulary NularyFunc
		unary  *ordered.Map[tag.Tag, UnaryFunc]
		binary *ordered.Map[Pair, BinaryFunc]
	}
)

func newTable(name string) *Table {
	return &Table{
		name:   name,
		unary:  ordered.NewMap[tag.Tag, UnaryFunc](),
		binary: ordered.NewMap[Pair, BinaryFunc](),
	}
}

// Name returns the operator symbol of the table.
func (t *Table) Name() string {
	return t.name
}

// RegisterNulary sets the implementation used when the operator is
// called with no argument.
func (t *Table) RegisterNulary(f NularyFunc) error {
	if f == nil {
		return fail.Errorf(fail.InvalidRegistration, "operator %s: nil nulary implementation", t.name)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nulary = f
	return nil
}

// RegisterUnary registers the implementation used when the operator is
// called with one argument tagged tg. An implementation registered at
// tag.Any serves all tags without an exact entry.
func (t *Table) RegisterUnary(tg tag.Tag, f UnaryFunc) error {
	if tg == "" {
		return fail.Errorf(fail.InvalidRegistration, "operator %s: empty unary tag", t.name)
	}
	if f == nil {
		return fail.Errorf(fail.InvalidRegistration, "operator %s: nil unary implementation for %s", t.name, tg)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unary.Store(tg, f)
	return nil
}

// RegisterBinary registers the implementation used when the first two
// arguments of a call are tagged left and right. Entries using tag.Any
// for either side serve as fallbacks for tags without an exact entry.
func (t *Table) RegisterBinary(left, right tag.Tag, f BinaryFunc) error {
	if left == "" || right == "" {
		return fail.Errorf(fail.InvalidRegistration, "operator %s: empty tag in pair (%s, %s)", t.name, left, right)
	}
	if f == nil {
		return fail.Errorf(fail.InvalidRegistration, "operator %s: nil binary implementation for (%s, %s)", t.name, left, right)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.binary.Store(Pair{Left: left, Right: right}, f)
	return nil
}

// lookupUnary resolves a unary call: the exact tag first, then the
// supertag fallback.
func (t *Table) lookupUnary(tg tag.Tag) (UnaryFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if f, ok := t.unary.Load(tg); ok {
		return f, true
	}
	return t.unary.Load(tag.Super(tg))
}

// lookupBinary resolves a binary call. The lookup falls back from the
// exact pair to pairs involving the supertag, left specificity first:
// (a, b), (a, Any), (Any, b), (Any, Any).
func (t *Table) lookupBinary(a, b tag.Tag) (BinaryFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, key := range [...]Pair{
		{Left: a, Right: b},
		{Left: a, Right: tag.Super(b)},
		{Left: tag.Super(a), Right: b},
		{Left: tag.Super(a), Right: tag.Super(b)},
	} {
		if f, ok := t.binary.Load(key); ok {
			return f, true
		}
	}
	return nil, false
}

// Len returns the number of binary entries registered in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.binary.Size()
}

// BinaryKeys returns the binary dispatch keys of the table in
// registration order.
func (t *Table) BinaryKeys() []Pair {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Collect(t.binary.Keys())
}

// Apply calls the operator on the given arguments. A call with no
// argument uses the nulary entry and a call with one argument the unary
// entries. Calls with more arguments fold the argument list from the
// left, two operands at a time, re-dispatching at each step.
func (t *Table) Apply(xs ...any) (any, error) {
	switch len(xs) {
	case 0:
		return t.applyNulary()
	case 1:
		return t.applyUnary(xs[0])
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		var err error
		acc, err = t.applyBinary(acc, x)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (t *Table) applyNulary() (any, error) {
	t.mu.RLock()
	f := t.nulary
	t.mu.RUnlock()
	if f == nil {
		return nil, fail.Errorf(fail.NoImplementation, "no applicable implementation of operator %s for a call with no argument", t.name)
	}
	return f()
}

func (t *Table) applyUnary(x any) (any, error) {
	tg, ok := tag.Of(x)
	if !ok {
		return nil, fail.Errorf(fail.NoImplementation, "operator %s: %T is not an arithmetic type", t.name, x)
	}
	f, ok := t.lookupUnary(tg)
	if !ok {
		return nil, fail.Errorf(fail.NoImplementation, "no applicable implementation of unary %s for %s", t.name, tg)
	}
	return f(x)
}

func (t *Table) applyBinary(x, y any) (any, error) {
	tagX, ok := tag.Of(x)
	if !ok {
		return nil, fail.Errorf(fail.NoImplementation, "operator %s: %T is not an arithmetic type", t.name, x)
	}
	tagY, ok := tag.Of(y)
	if !ok {
		return nil, fail.Errorf(fail.NoImplementation, "operator %s: %T is not an arithmetic type", t.name, y)
	}
	f, ok := t.lookupBinary(tagX, tagY)
	if !ok {
		return nil, fail.Errorf(fail.NoImplementation, "no applicable implementation of operator %s for (%s, %s)", t.name, tagX, tagY)
	}
	return f(x, y)
}
