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

// Env is a frame in the environment chain: a symbol table plus an optional
// parent.  Frames are held by shared reference; compound procedures keep
// their capture frame alive, and the chain forms a tree rooted at the global
// frame.
type Env struct {
	parent sexpr.Environment
	table  map[string]sexpr.SExpr
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ sexpr.Environment = (*Env)(nil)

// NewEnv constructs an empty root frame.
func NewEnv() *Env {
	return &Env{table: make(map[string]sexpr.SExpr)}
}

// NewChildEnv constructs a fresh frame enclosed by the given parent.
func NewChildEnv(parent sexpr.Environment) *Env {
	return &Env{parent: parent, table: make(map[string]sexpr.SExpr)}
}

// Define unconditionally binds a name in this frame only, shadowing any
// outer binding of the same name.
func (e *Env) Define(name string, value sexpr.SExpr) {
	e.table[name] = value
}

// Set overwrites the nearest binding of a name: in this frame when bound
// here, otherwise delegating to the parent.  It reports whether any ancestor
// bound the name.
func (e *Env) Set(name string, value sexpr.SExpr) bool {
	if _, ok := e.table[name]; ok {
		e.table[name] = value
		return true
	}
	//
	if e.parent != nil {
		return e.parent.Set(name, value)
	}
	//
	return false
}

// Get searches this frame then its ancestors for a binding.
func (e *Env) Get(name string) (sexpr.SExpr, bool) {
	if value, ok := e.table[name]; ok {
		return value, true
	}
	//
	if e.parent != nil {
		return e.parent.Get(name)
	}
	//
	return nil, false
}

// Bindings returns a snapshot of the bindings held by this frame only.
func (e *Env) Bindings() map[string]sexpr.SExpr {
	snapshot := make(map[string]sexpr.SExpr, len(e.table))
	//
	for name, value := range e.table {
		snapshot[name] = value
	}
	//
	return snapshot
}

// Parent returns the enclosing frame, or nil for the root.
func (e *Env) Parent() sexpr.Environment {
	return e.parent
}

// Root walks the parent chain up to the topmost frame.
func Root(env sexpr.Environment) sexpr.Environment {
	for env.Parent() != nil {
		env = env.Parent()
	}
	//
	return env
}
