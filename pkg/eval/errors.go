// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package eval

import (
	"fmt"

	"github.com/consensys/go-skim/pkg/sexpr"
)

// ErrorKind identifies the class of failure encountered whilst evaluating.
type ErrorKind int

// Evaluation failure classes.
const (
	// SyntaxError indicates a shape violation at special-form reduction time.
	SyntaxError ErrorKind = iota
	// Unbound indicates a lookup or set! on a name no frame binds.
	Unbound
	// TypeError indicates a primitive received the wrong kind of value.
	TypeError
	// ArityError indicates an argument count mismatch.
	ArityError
	// ContractViolation indicates a value-level precondition failed.
	ContractViolation
	// IndexError indicates an out-of-range index.
	IndexError
	// NotCallable indicates an application of a non-procedure.
	NotCallable
	// Internal is reserved for bugs.
	Internal
)

// Error signals a failed evaluation.  Errors propagate unchanged to the
// top-level entry point; primitives never catch errors from sub-evaluations.
type Error struct {
	// Failure class.
	Kind ErrorKind
	// Human-readable description naming the offending form or value.
	Msg string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return "Exception: " + e.Msg
}

func errSyntax(format string, args ...any) *Error {
	return &Error{SyntaxError, fmt.Sprintf(format, args...)}
}

func errUnbound(name string) *Error {
	return &Error{Unbound, fmt.Sprintf("could not find a value bound to <%s>", name)}
}

func errType(where string, actual sexpr.SExpr, expected string) *Error {
	return &Error{TypeError, fmt.Sprintf("in %s: %s is not %s", where, actual, expected)}
}

func errArity(where string, expected string, found int) *Error {
	return &Error{ArityError, fmt.Sprintf("in %s: expected %s, found %d", where, expected, found)}
}

func errContract(format string, args ...any) *Error {
	return &Error{ContractViolation, fmt.Sprintf(format, args...)}
}

func errIndex(where string, index int64) *Error {
	return &Error{IndexError, fmt.Sprintf("in %s: index %d out of range", where, index)}
}

func errNotCallable(value sexpr.SExpr) *Error {
	return &Error{NotCallable, fmt.Sprintf("#<%s> is not a procedure", value)}
}
