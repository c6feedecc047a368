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
package interp

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-skim/pkg/eval"
	"github.com/consensys/go-skim/pkg/reader"
	"github.com/consensys/go-skim/pkg/sexpr"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Interpreter is the host-level entry point: it owns one evaluator (and
// hence one global environment), feeds it strings through the reader, and
// formats results.
type Interpreter struct {
	evaluator *eval.Evaluator
}

// New constructs an interpreter over a given root environment (or the
// standard global environment when nil is passed), with the prelude
// evaluated into it.
func New(env sexpr.Environment) *Interpreter {
	i := &Interpreter{eval.NewEvaluator(env)}
	//
	if err := i.loadPrelude(); err != nil {
		log.Warnf("prelude failed to load: %v", err)
	}
	//
	return i
}

// Environment returns the root environment of this interpreter.
func (i *Interpreter) Environment() sexpr.Environment {
	return i.evaluator.Root()
}

// EvalExpression reads the first form of the given string and evaluates it.
func (i *Interpreter) EvalExpression(input string) (sexpr.SExpr, error) {
	form, err := reader.Parse(input)
	if err != nil {
		return nil, err
	} else if form == nil {
		// Nothing but whitespace or comments.
		return sexpr.Unspecified{}, nil
	}
	//
	return i.evaluator.Eval(form)
}

// EvalExpressionAndFormat evaluates the given string and renders the result
// via the display rules.
func (i *Interpreter) EvalExpressionAndFormat(input string) (string, error) {
	result, err := i.EvalExpression(input)
	if err != nil {
		return "", err
	}
	//
	return result.String(), nil
}

// EvalExpressionNoPrint evaluates the given string for its effects only.
func (i *Interpreter) EvalExpressionNoPrint(input string) error {
	_, err := i.EvalExpression(input)
	return err
}

// EvalExpressionAndPrint evaluates the given string and prints the result on
// stdout.
func (i *Interpreter) EvalExpressionAndPrint(input string) error {
	result, err := i.EvalExpression(input)
	if err != nil {
		return err
	}
	//
	i.print(result)
	//
	return nil
}

// RunREPL runs a read-eval-print loop over stdio, accumulating input lines
// until the bracket balance closes.  Evaluation errors are printed and the
// loop continues.
func (i *Interpreter) RunREPL() error {
	var (
		scanner     = bufio.NewScanner(os.Stdin)
		interactive = term.IsTerminal(int(os.Stdin.Fd()))
	)
	//
	for {
		input, ok := i.readBalanced(scanner, interactive)
		if !ok {
			break
		} else if input == "" {
			continue
		}
		//
		result, err := i.EvalExpression(input)
		if err != nil {
			fmt.Println(err)
			continue
		}
		//
		i.print(result)
	}
	//
	return errors.Wrap(scanner.Err(), "reading stdin")
}

// ExecuteFile feeds the lines of a file through the reader, evaluating (and
// printing) one form per balanced chunk.  Unlike the REPL, the first
// evaluation error aborts execution.
func (i *Interpreter) ExecuteFile(path string) error {
	stats := eval.NewPerfStats()
	//
	bytes, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read file %s", path)
	}
	//
	var chunk string
	//
	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimSpace(line)
		//
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		//
		chunk += line + "\n"
		//
		if balance, _ := reader.Balance(chunk); balance > 0 {
			continue
		}
		//
		if err := i.EvalExpressionAndPrint(chunk); err != nil {
			return err
		}
		//
		chunk = ""
	}
	//
	stats.Log(path)
	//
	return nil
}

// readBalanced accumulates input lines until the bracket balance closes.
// The ok flag is cleared at end of input.
func (i *Interpreter) readBalanced(scanner *bufio.Scanner, interactive bool) (string, bool) {
	var input string
	//
	for {
		if interactive {
			fmt.Print("> ")
		}
		//
		if !scanner.Scan() {
			return input, false
		}
		//
		line := strings.TrimSpace(scanner.Text())
		//
		if line == "" || strings.HasPrefix(line, ";") {
			if input == "" {
				return "", true
			}

			continue
		}
		//
		input += line + "\n"
		//
		if balance, _ := reader.Balance(input); balance <= 0 {
			return input, true
		}
	}
}

// print renders a result as the REPL does: the unspecified sentinel prints
// as its bare newline, everything else on a line of its own.
func (i *Interpreter) print(result sexpr.SExpr) {
	if _, ok := result.(sexpr.Unspecified); ok {
		fmt.Print(result)
		return
	}
	//
	fmt.Println(result)
}

// loadPrelude evaluates the bundled prelude into the global environment.
func (i *Interpreter) loadPrelude() error {
	forms, err := reader.ParseAll(prelude)
	if err != nil {
		return err
	}
	//
	for _, form := range forms {
		if _, err := i.evaluator.Eval(form); err != nil {
			return err
		}
	}
	//
	log.Debugf("prelude loaded (%d forms)", len(forms))
	//
	return nil
}
