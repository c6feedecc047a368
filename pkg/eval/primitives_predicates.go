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
	"github.com/consensys/go-skim/pkg/sexpr"
	"github.com/consensys/go-skim/pkg/sexpr/number"
)

// Type predicates.  Each takes exactly one argument.  The numeric
// classification predicates integer?/rational?/real?/complex? answer #f for
// non-numbers, whilst exact?/nan?/infinite?/zero? require a numeric operand.
var (
	isBooleanPrim = &sexpr.Primitive{Name: "boolean?", Fn: typePredicate("boolean?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.Boolean)
		return ok
	})}
	isCharPrim = &sexpr.Primitive{Name: "char?", Fn: typePredicate("char?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.Char)
		return ok
	})}
	isSymbolPrim = &sexpr.Primitive{Name: "symbol?", Fn: typePredicate("symbol?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.Symbol)
		return ok
	})}
	isStringPrim = &sexpr.Primitive{Name: "string?", Fn: typePredicate("string?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.String)
		return ok
	})}
	isNumberPrim = &sexpr.Primitive{Name: "number?", Fn: typePredicate("number?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.Number)
		return ok
	})}
	isIntegerPrim = &sexpr.Primitive{Name: "integer?", Fn: typePredicate("integer?", func(e sexpr.SExpr) bool {
		n, ok := sexpr.AsNumber(e)
		return ok && number.IsInteger(n)
	})}
	isRationalPrim = &sexpr.Primitive{Name: "rational?", Fn: typePredicate("rational?", func(e sexpr.SExpr) bool {
		n, ok := sexpr.AsNumber(e)
		return ok && number.IsRational(n)
	})}
	isRealPrim = &sexpr.Primitive{Name: "real?", Fn: typePredicate("real?", func(e sexpr.SExpr) bool {
		n, ok := sexpr.AsNumber(e)
		return ok && number.IsReal(n)
	})}
	isComplexPrim = &sexpr.Primitive{Name: "complex?", Fn: typePredicate("complex?", func(e sexpr.SExpr) bool {
		_, ok := sexpr.AsNumber(e)
		return ok
	})}
	isExactPrim    = &sexpr.Primitive{Name: "exact?", Fn: numberPredicate("exact?", number.Number.Exact)}
	isNanPrim      = &sexpr.Primitive{Name: "nan?", Fn: numberPredicate("nan?", number.IsNaN)}
	isInfinitePrim = &sexpr.Primitive{Name: "infinite?", Fn: numberPredicate("infinite?", number.IsInfinite)}
	isZeroPrim     = &sexpr.Primitive{Name: "zero?", Fn: numberPredicate("zero?", number.IsZero)}
	isPairPrim     = &sexpr.Primitive{Name: "pair?", Fn: typePredicate("pair?", func(e sexpr.SExpr) bool {
		switch e := e.(type) {
		case sexpr.Pair:
			return true
		case sexpr.List:
			return e.Len() > 0
		default:
			return false
		}
	})}
	isListPrim = &sexpr.Primitive{Name: "list?", Fn: typePredicate("list?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.List)
		return ok
	})}
	isVectorPrim = &sexpr.Primitive{Name: "vector?", Fn: typePredicate("vector?", func(e sexpr.SExpr) bool {
		_, ok := e.(sexpr.Vector)
		return ok
	})}
	isProcedurePrim = &sexpr.Primitive{Name: "procedure?", Fn: typePredicate("procedure?", sexpr.IsProcedure)}
	isNullPrim      = &sexpr.Primitive{Name: "null?", Fn: typePredicate("null?", func(e sexpr.SExpr) bool {
		list, ok := e.(sexpr.List)
		return ok && list.Len() == 0
	})}
)

// typePredicate builds a one-argument primitive deciding a property of its
// operand.
func typePredicate(where string, holds func(sexpr.SExpr) bool) sexpr.ProcFunc {
	return func(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
		if len(args) != 1 {
			return nil, errArity(where, "1 argument", len(args))
		}
		//
		return sexpr.Boolean(holds(args[0])), nil
	}
}

// numberPredicate builds a one-argument primitive which rejects non-numeric
// operands.
func numberPredicate(where string, holds func(number.Number) bool) sexpr.ProcFunc {
	return func(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
		if len(args) != 1 {
			return nil, errArity(where, "1 argument", len(args))
		}
		//
		n, ok := sexpr.AsNumber(args[0])
		if !ok {
			return nil, errType(where, args[0], "a number")
		}
		//
		return sexpr.Boolean(holds(n)), nil
	}
}
