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
	"os"
	"sort"
	"strings"

	"github.com/consensys/go-skim/pkg/sexpr"
)

// Control and introspection primitives.  apply and eval are marked Tail:
// their result is an expression which the trampoline re-enters, so the call
// they stand for runs in tail position.
var (
	applyPrim = &sexpr.Primitive{Name: "apply", Tail: true, Fn: rApply}
	evalPrim  = &sexpr.Primitive{Name: "eval", Tail: true, Fn: rEval}
	displayPrim = &sexpr.Primitive{Name: "display", Fn: rDisplay}
	exitPrim    = &sexpr.Primitive{Name: "exit", Fn: rExit}
	environmentBindingsPrim = &sexpr.Primitive{
		Name: "environment-bindings", Fn: rEnvironmentBindings,
	}
)

// rApply rebuilds (proc arg1 arg2 ...) from a procedure and an argument
// list.  Each argument is shielded by a quote so the trampoline passes the
// raw data through rather than re-evaluating it.
func rApply(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 2 {
		return nil, errArity("apply", "2 arguments", len(args))
	}
	//
	if !sexpr.IsProcedure(args[0]) {
		return nil, errType("apply", args[0], "a procedure")
	}
	//
	arguments, ok := sexpr.AsList(args[1])
	if !ok {
		return nil, errType("apply", args[1], "a list")
	}
	//
	call := make([]sexpr.SExpr, 0, arguments.Len()+1)
	call = append(call, args[0])
	//
	for _, argument := range arguments.Elements() {
		call = append(call, quoteExpr(argument))
	}
	//
	return sexpr.NewList(call), nil
}

// rEval returns its argument as the expression to evaluate next, in the
// current environment and in tail position.
func rEval(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("eval", "1 argument", len(args))
	}
	//
	return args[0], nil
}

// rDisplay returns a symbol carrying the display text of its argument;
// strings lose their surrounding quotes.
func rDisplay(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("display", "1 argument", len(args))
	}
	//
	if s, ok := args[0].(sexpr.String); ok {
		return sexpr.Symbol(s.Text()), nil
	}
	//
	return sexpr.Symbol(args[0].String()), nil
}

// rExit terminates the process with code 0.
func rExit(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 0 {
		return nil, errArity("exit", "0 arguments", len(args))
	}
	//
	os.Exit(0)
	//
	return sexpr.Unspecified{}, nil
}

// rEnvironmentBindings returns a symbol carrying a sorted, newline-separated
// rendering of the bindings of the current frame.
func rEnvironmentBindings(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 0 {
		return nil, errArity("environment-bindings", "0 arguments", len(args))
	}
	//
	bindings := env.Bindings()
	names := make([]string, 0, len(bindings))
	//
	for name := range bindings {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	lines := make([]string, len(names))
	//
	for i, name := range names {
		lines[i] = fmt.Sprintf("(%s, %s)", name, bindings[name])
	}
	//
	return sexpr.Symbol(strings.Join(lines, "\n")), nil
}
