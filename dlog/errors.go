/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dlog

import "github.com/pkg/errors"

// ErrNotFound is returned by the exhaustive solvers when no exponent
// within the searched range maps g to h.
var ErrNotFound = errors.New("failed to find the discrete logarithm within bound")

// ErrFailure is the common cause of all index calculus failures.
var ErrFailure = errors.New("index calculus failed")

var (
	// ErrEmptyFactorBase is returned when the factor base bound leaves
	// no primes to work with.
	ErrEmptyFactorBase = errors.WithMessage(ErrFailure, "empty factor base")
	// ErrNoRelations is returned when relation collection finds no
	// smooth power of g.
	ErrNoRelations = errors.WithMessage(ErrFailure, "no relations collected")
	// ErrUnsolvedSystem is returned when the final combination needs
	// the logarithm of a prime that the collected relations did not
	// determine.
	ErrUnsolvedSystem = errors.WithMessage(ErrFailure, "linear system not solved")
	// ErrAttemptsExhausted is returned when the final combination did
	// not find a smooth value within the configured number of attempts.
	ErrAttemptsExhausted = errors.WithMessage(ErrFailure, "no smooth combination found")
)
