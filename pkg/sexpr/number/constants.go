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
package number

// Numeric constants pre-bound in the global environment.
const (
	// Avogadro constant (1/mol)
	Avogadro Float = 6.0221515e23
	// Boltzmann constant
	Boltzmann Float = 1.380650e-23
	// Euler's number
	Euler Float = 2.718281828459045
	// Golden ratio
	GoldenRatio Float = 1.618033988749895
	// Newtonian constant of gravitation (m^3/(kg*s^2))
	GravitationalConstant Float = 6.67300e-11
	// Pi
	Pi Float = 3.141592653589793
	// Planck constant (J*s)
	Planck Float = 6.626068e-34
)
