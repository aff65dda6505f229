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

// Package fail provides structured errors carrying a machine-matchable kind
// alongside a human-readable message and a detail map.
package fail

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Kind is a machine-matchable failure category.
type Kind string

const (
	// IllegalArgument reports a call with an argument count or value
	// the operation cannot accept.
	IllegalArgument Kind = "illegal-argument"

	// NoImplementation reports that dispatch found no applicable
	// implementation for the operand types.
	NoImplementation Kind = "no-implementation"

	// InvalidRegistration reports a malformed dispatch table registration.
	InvalidRegistration Kind = "invalid-registration"
)

type (
	// Failure is an error tagged with a Kind and carrying a detail map.
	Failure interface {
		error

		// Kind of the failure.
		Kind() Kind

		// Details attached to the failure.
		Details() map[string]any
	}

	failure struct {
		kind    Kind
		details map[string]any
		err     error
	}
)

var _ Failure = (*failure)(nil)

// Errorf returns a failure of the given kind with a formatted message
// and an empty detail map.
func Errorf(kind Kind, format string, a ...any) error {
	return &failure{
		kind:    kind,
		details: map[string]any{},
		err:     errors.Errorf(format, a...),
	}
}

// WithDetail returns a copy of err with a key,value pair added to its
// detail map. If err is not a failure, it is returned unchanged.
func WithDetail(err error, key string, value any) error {
	var f *failure
	if !errors.As(err, &f) {
		return err
	}
	details := make(map[string]any, len(f.details)+1)
	for k, v := range f.details {
		details[k] = v
	}
	details[key] = value
	return &failure{kind: f.kind, details: details, err: f.err}
}

// KindOf returns the kind of err and true if err is a failure.
func KindOf(err error) (Kind, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f.Kind(), true
	}
	return "", false
}

// IsKind reports whether err is a failure of the given kind.
func IsKind(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}

// Error returns a string description of the failure.
func (f *failure) Error() string {
	return string(f.kind) + ": " + f.err.Error()
}

// Kind of the failure.
func (f *failure) Kind() Kind {
	return f.kind
}

// Details attached to the failure.
func (f *failure) Details() map[string]any {
	return f.details
}

// Unwrap the underlying error.
func (f *failure) Unwrap() error {
	return f.err
}

// Format writes the failure into the state of the formatter.
func (f *failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", f.kind, f.err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
