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
package sexpr

import (
	"strings"

	"github.com/consensys/go-skim/pkg/sexpr/number"
)

// SExpr is the universal runtime value: an atom (boolean, character, symbol,
// number, procedure or one of the two sentinels), or a handle to a shared
// mutable cell (string, pair, list, vector).  Copying an SExpr copies the
// handle, never the cell contents.
type SExpr interface {
	// String generates the external representation of this value, as written
	// by display.
	String() string
}

// Printers must terminate on cyclic structures created via set-car!, hence
// traversal depth is bounded.
const maxDisplayDepth = 64

// ===================================================================
// Boolean
// ===================================================================

// Boolean represents the literals #t and #f.
type Boolean bool

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExpr = Boolean(false)

func (b Boolean) String() string {
	if b {
		return "#t"
	}

	return "#f"
}

// ===================================================================
// Char
// ===================================================================

// Char represents a single Unicode scalar value.
type Char rune

var _ SExpr = Char(0)

func (c Char) String() string { return `#\` + string(rune(c)) }

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents an identifier.  Symbols compare by their text.
type Symbol string

var _ SExpr = Symbol("")

func (s Symbol) String() string { return string(s) }

// ===================================================================
// Number
// ===================================================================

// Number wraps a member of the numeric tower as a runtime value.
type Number struct {
	Value number.Number
}

var _ SExpr = Number{}

// NewNumber constructs a runtime value from a tower member.
func NewNumber(n number.Number) Number { return Number{n} }

// NewInt constructs a machine-integer runtime value.
func NewInt(i int64) Number { return Number{number.Int(i)} }

func (n Number) String() string { return n.Value.String() }

// ===================================================================
// Sentinels
// ===================================================================

// Unspecified is the sentinel produced by side-effecting forms with no useful
// result.  It displays as a bare newline.
type Unspecified struct{}

var _ SExpr = Unspecified{}

func (u Unspecified) String() string { return "\n" }

// Ok is the sentinel returned by definitions and assignments.
type Ok struct{}

var _ SExpr = Ok{}

func (o Ok) String() string { return "ok" }

// ===================================================================
// Display
// ===================================================================

// write appends the external representation of an expression, cutting the
// traversal off at a fixed depth so that cyclic structures terminate.
func write(sb *strings.Builder, e SExpr, depth int) {
	if depth > maxDisplayDepth {
		sb.WriteString("...")
		return
	}

	switch e := e.(type) {
	case List:
		sb.WriteByte('(')
		writeElements(sb, e.Elements(), depth+1)
		sb.WriteByte(')')
	case Pair:
		car, cdr := e.Car(), e.Cdr()
		sb.WriteByte('(')
		write(sb, car, depth+1)
		sb.WriteString(" . ")
		write(sb, cdr, depth+1)
		sb.WriteByte(')')
	case Vector:
		sb.WriteString("#(")
		writeElements(sb, e.Elements(), depth+1)
		sb.WriteByte(')')
	default:
		sb.WriteString(e.String())
	}
}

func writeElements(sb *strings.Builder, elements []SExpr, depth int) {
	for i, e := range elements {
		if i != 0 {
			sb.WriteByte(' ')
		}

		write(sb, e, depth)
	}
}
