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
)

// List and pair primitives.
var (
	consPrim       = &sexpr.Primitive{Name: "cons", Fn: rCons}
	listPrim       = &sexpr.Primitive{Name: "list", Fn: rList}
	carPrim        = &sexpr.Primitive{Name: "car", Fn: rCar}
	cdrPrim        = &sexpr.Primitive{Name: "cdr", Fn: rCdr}
	setCarPrim     = &sexpr.Primitive{Name: "set-car!", Fn: rSetCar}
	lengthPrim     = &sexpr.Primitive{Name: "length", Fn: rLength}
	listRefPrim    = &sexpr.Primitive{Name: "list-ref", Fn: rListRef}
	listTailPrim   = &sexpr.Primitive{Name: "list-tail", Fn: rListTail}
	listSplicePrim = &sexpr.Primitive{Name: "list-splice", Fn: rListSplice}
	appendPrim     = &sexpr.Primitive{Name: "append", Fn: rAppend}
	reversePrim    = &sexpr.Primitive{Name: "reverse", Fn: rReverse}
)

// rCons prepends onto a list (sharing the element handles), or forms an
// improper pair when the second operand is not a list.
func rCons(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 2 {
		return nil, errArity("cons", "2 arguments", len(args))
	}
	//
	if tail, ok := sexpr.AsList(args[1]); ok {
		elements := make([]sexpr.SExpr, 0, tail.Len()+1)
		elements = append(elements, args[0])
		elements = append(elements, tail.Elements()...)
		//
		return sexpr.NewList(elements), nil
	}
	//
	return sexpr.NewPair(args[0], args[1]), nil
}

// rList collects its arguments into a fresh list.
func rList(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	return sexpr.NewList(append([]sexpr.SExpr(nil), args...)), nil
}

// rCar returns the first element of a pair or non-empty list.
func rCar(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("car", "1 argument", len(args))
	}
	//
	switch arg := args[0].(type) {
	case sexpr.Pair:
		return arg.Car(), nil
	case sexpr.List:
		if arg.Len() == 0 {
			return nil, errContract("car cannot take the empty list")
		}

		return arg.Get(0), nil
	default:
		return nil, errType("car", args[0], "a pair or list")
	}
}

// rCdr returns the rest of a pair or non-empty list.
func rCdr(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("cdr", "1 argument", len(args))
	}
	//
	switch arg := args[0].(type) {
	case sexpr.Pair:
		return arg.Cdr(), nil
	case sexpr.List:
		if arg.Len() == 0 {
			return nil, errContract("cdr cannot take the empty list")
		}

		return sexpr.NewList(arg.Tail(1)), nil
	default:
		return nil, errType("cdr", args[0], "a pair or list")
	}
}

// rSetCar mutates the shared cell in place; the mutation is visible through
// every alias of the cell.
func rSetCar(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 2 {
		return nil, errArity("set-car!", "2 arguments", len(args))
	}
	//
	switch arg := args[0].(type) {
	case sexpr.Pair:
		arg.SetCar(args[1])
	case sexpr.List:
		if arg.Len() == 0 {
			return nil, errContract("set-car! cannot take the empty list")
		}
		//
		arg.SetAt(0, args[1])
	default:
		return nil, errType("set-car!", args[0], "a pair or list")
	}
	//
	return sexpr.Unspecified{}, nil
}

// rLength returns the number of elements of a proper list.
func rLength(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("length", "1 argument", len(args))
	}
	//
	list, ok := sexpr.AsList(args[0])
	if !ok {
		return nil, errType("length", args[0], "a list")
	}
	//
	return sexpr.NewInt(int64(list.Len())), nil
}

// rListRef indexes into a list.
func rListRef(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	list, index, err := listAndIndex("list-ref", args)
	if err != nil {
		return nil, err
	}
	//
	if index < 0 || index >= int64(list.Len()) {
		return nil, errIndex("list-ref", index)
	}
	//
	return list.Get(int(index)), nil
}

// rListTail returns the list obtained by omitting the first k elements.
func rListTail(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	list, k, err := listAndIndex("list-tail", args)
	if err != nil {
		return nil, err
	}
	//
	if k < 0 || k > int64(list.Len()) {
		return nil, errIndex("list-tail", k)
	}
	//
	return sexpr.NewList(list.Tail(int(k))), nil
}

// rListSplice replaces lst[start..end) with the elements of the replacement
// list, in place.  With start == end the replacement is a pure insertion;
// otherwise its length must equal the width of the replaced range.
func rListSplice(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 4 {
		return nil, errArity("list-splice", "4 arguments", len(args))
	}
	//
	list, ok := sexpr.AsList(args[0])
	if !ok {
		return nil, errType("list-splice", args[0], "a list")
	}
	//
	start, ok := sexpr.AsInt(args[1])
	if !ok {
		return nil, errType("list-splice", args[1], "a valid index")
	}
	//
	end, ok := sexpr.AsInt(args[2])
	if !ok {
		return nil, errType("list-splice", args[2], "a valid index")
	}
	//
	replacement, ok := sexpr.AsList(args[3])
	if !ok {
		return nil, errType("list-splice", args[3], "a list")
	}
	//
	if start < 0 || end < start || end > int64(list.Len()) {
		return nil, errIndex("list-splice", end)
	}
	//
	if start != end && int64(replacement.Len()) != end-start {
		return nil, errContract("in list-splice: replacement length %d does not match range width %d",
			replacement.Len(), end-start)
	}
	//
	list.Splice(int(start), int(end), append([]sexpr.SExpr(nil), replacement.Elements()...))
	//
	return list, nil
}

// rAppend concatenates zero or more lists into a fresh list.
func rAppend(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	elements := make([]sexpr.SExpr, 0)
	//
	for _, arg := range args {
		list, ok := sexpr.AsList(arg)
		if !ok {
			return nil, errType("append", arg, "a list")
		}
		//
		elements = append(elements, list.Elements()...)
	}
	//
	return sexpr.NewList(elements), nil
}

// rReverse returns a fresh list holding the elements in reverse order.
func rReverse(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("reverse", "1 argument", len(args))
	}
	//
	list, ok := sexpr.AsList(args[0])
	if !ok {
		return nil, errType("reverse", args[0], "a list")
	}
	//
	n := list.Len()
	reversed := make([]sexpr.SExpr, n)
	//
	for i, e := range list.Elements() {
		reversed[n-1-i] = e
	}
	//
	return sexpr.NewList(reversed), nil
}

// listAndIndex destructures the common (lst k) argument shape.
func listAndIndex(where string, args []sexpr.SExpr) (sexpr.List, int64, error) {
	if len(args) != 2 {
		return sexpr.List{}, 0, errArity(where, "2 arguments", len(args))
	}
	//
	list, ok := sexpr.AsList(args[0])
	if !ok {
		return sexpr.List{}, 0, errType(where, args[0], "a list")
	}
	//
	index, ok := sexpr.AsInt(args[1])
	if !ok {
		return sexpr.List{}, 0, errType(where, args[1], "a valid index")
	}
	//
	return list, index, nil
}
