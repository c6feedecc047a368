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

// Arithmetic and comparison primitives.
var (
	sumPrim  = &sexpr.Primitive{Name: "+", Fn: rSum}
	diffPrim = &sexpr.Primitive{Name: "-", Fn: rDiff}
	prodPrim = &sexpr.Primitive{Name: "*", Fn: rProd}
	quotPrim = &sexpr.Primitive{Name: "/", Fn: rQuot}
	numEqPrim = &sexpr.Primitive{Name: "=", Fn: compare("=", func(c int, ok bool) bool {
		return ok && c == 0
	})}
	gtPrim = &sexpr.Primitive{Name: ">", Fn: compare(">", func(c int, ok bool) bool {
		return ok && c > 0
	})}
	gePrim = &sexpr.Primitive{Name: ">=", Fn: compare(">=", func(c int, ok bool) bool {
		return ok && c >= 0
	})}
	ltPrim = &sexpr.Primitive{Name: "<", Fn: compare("<", func(c int, ok bool) bool {
		return ok && c < 0
	})}
	lePrim = &sexpr.Primitive{Name: "<=", Fn: compare("<=", func(c int, ok bool) bool {
		return ok && c <= 0
	})}
)

// rSum computes the left fold of + over its arguments, with identity 0.
func rSum(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	return fold("+", args, number.Int(0), number.Add)
}

// rProd computes the left fold of * over its arguments, with identity 1.
func rProd(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	return fold("*", args, number.Int(1), number.Mul)
}

// rDiff computes the left fold of - over its arguments; with a single
// argument it negates.
func rDiff(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return nil, errArity("-", "at least 1 argument", len(args))
	}
	//
	first, ok := sexpr.AsNumber(args[0])
	if !ok {
		return nil, errType("-", args[0], "a number")
	}
	//
	if len(args) == 1 {
		return sexpr.NewNumber(number.Neg(first)), nil
	}
	//
	return fold("-", args[1:], first, number.Sub)
}

// rQuot computes the left fold of / over its arguments; with a single
// argument it reciprocates (as an exact rational when the operand is exact).
func rQuot(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return nil, errArity("/", "at least 1 argument", len(args))
	}
	//
	first, ok := sexpr.AsNumber(args[0])
	if !ok {
		return nil, errType("/", args[0], "a number")
	}
	//
	acc := first
	rest := args[1:]
	//
	if len(args) == 1 {
		acc, rest = number.Int(1), args
	}
	//
	for _, arg := range rest {
		operand, ok := sexpr.AsNumber(arg)
		if !ok {
			return nil, errType("/", arg, "a number")
		}
		//
		quotient, ok := number.Div(acc, operand)
		if !ok {
			return nil, errContract("in /: division by zero")
		}
		//
		acc = quotient
	}
	//
	return sexpr.NewNumber(acc), nil
}

// fold reduces a numeric argument vector with the given binary operation.
func fold(where string, args []sexpr.SExpr, acc number.Number,
	op func(number.Number, number.Number) number.Number) (sexpr.SExpr, error) {
	for _, arg := range args {
		operand, ok := sexpr.AsNumber(arg)
		if !ok {
			return nil, errType(where, arg, "a number")
		}
		//
		acc = op(acc, operand)
	}
	//
	return sexpr.NewNumber(acc), nil
}

// compare builds an n-ary comparison primitive which holds exactly when the
// relation holds for every adjacent pair.  Comparisons involving NaN or a
// complex operand off the real line are false rather than errors, except
// that two identical complex operands satisfy =, <= and >=.
func compare(where string, relation func(int, bool) bool) sexpr.ProcFunc {
	return func(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
		if len(args) < 2 {
			return nil, errArity(where, "at least 2 arguments", len(args))
		}
		//
		operands := make([]number.Number, len(args))
		//
		for i, arg := range args {
			operand, ok := sexpr.AsNumber(arg)
			if !ok {
				return nil, errType(where, arg, "a number")
			}
			//
			operands[i] = operand
		}
		//
		for i := 0; i+1 < len(operands); i++ {
			if !relation(number.Cmp(operands[i], operands[i+1])) {
				return sexpr.Boolean(false), nil
			}
		}
		//
		return sexpr.Boolean(true), nil
	}
}
