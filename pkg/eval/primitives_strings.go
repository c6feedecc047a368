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
	"strings"

	"github.com/consensys/go-skim/pkg/sexpr"
)

// String primitives.
var (
	stringPrim         = &sexpr.Primitive{Name: "string", Fn: rString}
	makeStringPrim     = &sexpr.Primitive{Name: "make-string", Fn: rMakeString}
	stringAppendPrim   = &sexpr.Primitive{Name: "string-append", Fn: rStringAppend}
	stringRefPrim      = &sexpr.Primitive{Name: "string-ref", Fn: rStringRef}
	stringSetPrim      = &sexpr.Primitive{Name: "string-set!", Fn: rStringSet}
	stringLengthPrim   = &sexpr.Primitive{Name: "string-length", Fn: rStringLength}
	stringUpcasePrim   = &sexpr.Primitive{Name: "string-upcase", Fn: rStringUpcase}
	stringDowncasePrim = &sexpr.Primitive{Name: "string-downcase", Fn: rStringDowncase}
)

// rString builds a fresh string from its character arguments.
func rString(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return nil, errArity("string", "at least 1 argument", len(args))
	}
	//
	var sb strings.Builder
	//
	for _, arg := range args {
		c, ok := sexpr.AsChar(arg)
		if !ok {
			return nil, errType("string", arg, "a char")
		}
		//
		sb.WriteRune(c)
	}
	//
	return sexpr.NewString(sb.String()), nil
}

// rMakeString builds a fresh string of n copies of the given fill character
// (space when absent).
func rMakeString(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, errArity("make-string", "1 or 2 arguments", len(args))
	}
	//
	n, ok := sexpr.AsInt(args[0])
	if !ok {
		return nil, errType("make-string", args[0], "a number")
	} else if n < 0 {
		return nil, errContract("in make-string: negative length %d", n)
	}
	//
	fill := ' '
	//
	if len(args) == 2 {
		c, ok := sexpr.AsChar(args[1])
		if !ok {
			return nil, errType("make-string", args[1], "a char")
		}
		//
		fill = c
	}
	//
	return sexpr.NewString(strings.Repeat(string(fill), int(n))), nil
}

// rStringAppend concatenates its string arguments into a fresh string.
func rStringAppend(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	var sb strings.Builder
	//
	for _, arg := range args {
		s, ok := arg.(sexpr.String)
		if !ok {
			return nil, errType("string-append", arg, "a string")
		}
		//
		sb.WriteString(s.Text())
	}
	//
	return sexpr.NewString(sb.String()), nil
}

// rStringRef indexes a string by character position.
func rStringRef(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	s, index, err := stringAndIndex("string-ref", args, 2)
	if err != nil {
		return nil, err
	}
	//
	return sexpr.Char(s.At(int(index))), nil
}

// rStringSet overwrites one character of the shared string cell, in place;
// the mutation is visible through every alias.
func rStringSet(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	s, index, err := stringAndIndex("string-set!", args, 3)
	if err != nil {
		return nil, err
	}
	//
	c, ok := sexpr.AsChar(args[2])
	if !ok {
		return nil, errType("string-set!", args[2], "a char")
	}
	//
	s.SetAt(int(index), c)
	//
	return s, nil
}

// rStringLength returns the number of characters in a string.
func rStringLength(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("string-length", "1 argument", len(args))
	}
	//
	s, ok := args[0].(sexpr.String)
	if !ok {
		return nil, errType("string-length", args[0], "a string")
	}
	//
	return sexpr.NewInt(int64(s.Len())), nil
}

// rStringUpcase returns a fresh upper-cased copy of a string.
func rStringUpcase(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	return stringMap("string-upcase", args, strings.ToUpper)
}

// rStringDowncase returns a fresh lower-cased copy of a string.
func rStringDowncase(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	return stringMap("string-downcase", args, strings.ToLower)
}

func stringMap(where string, args []sexpr.SExpr, f func(string) string) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity(where, "1 argument", len(args))
	}
	//
	s, ok := args[0].(sexpr.String)
	if !ok {
		return nil, errType(where, args[0], "a string")
	}
	//
	return sexpr.NewString(f(s.Text())), nil
}

// stringAndIndex destructures the common (str k ...) argument shape,
// range-checking the index.
func stringAndIndex(where string, args []sexpr.SExpr, arity int) (sexpr.String, int64, error) {
	if len(args) != arity {
		return sexpr.String{}, 0, errArity(where, fmt.Sprintf("%d arguments", arity), len(args))
	}
	//
	s, ok := args[0].(sexpr.String)
	if !ok {
		return sexpr.String{}, 0, errType(where, args[0], "a string")
	}
	//
	index, ok := sexpr.AsInt(args[1])
	if !ok {
		return sexpr.String{}, 0, errType(where, args[1], "a valid index")
	}
	//
	if index < 0 || index >= int64(s.Len()) {
		return sexpr.String{}, 0, errIndex(where, index)
	}
	//
	return s, index, nil
}
