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

// prelude is evaluated into the global environment at construction time.  It
// contains only derived forms built from the core primitives.
const prelude = `
; Compositions of car and cdr.
(define (caar x) (car (car x)))
(define (cadr x) (car (cdr x)))
(define (cdar x) (cdr (car x)))
(define (cddr x) (cdr (cdr x)))
(define (caddr x) (car (cddr x)))

; Positional accessors.
(define (first lst) (car lst))
(define (second lst) (cadr lst))
(define (third lst) (caddr lst))
(define (last lst) (list-ref lst (- (length lst) 1)))

; Numeric conveniences.
(define (abs n) (if (< n 0) (- n) n))
(define (positive? n) (> n 0))
(define (negative? n) (< n 0))
`
