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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-skim/pkg/interp"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop.",
	Long: `Start an interactive read-eval-print loop on stdio.
	Input lines accumulate until the bracket balance closes;
	evaluation errors are printed and the session continues.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) {
	configureLogging(cmd)
	//
	interpreter := interp.New(nil)
	//
	if err := interpreter.RunREPL(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
