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

// Package dlog computes discrete logarithms in the multiplicative group
// of a prime field: given p, g and h it finds x such that g^x = h (mod p).
//
// Two solvers are provided. The baby-step giant-step calculator
// (Calc, CalcZp and the BSGS shortcut) matches two sorted lists of
// about sqrt(p-1) group elements. Index calculus (IndexCalc and the
// IndexCalculus shortcut) collects relations between g and a factor
// base of small primes, solves them for the logarithms of the base
// primes and combines those logarithms into the answer. BruteForce is a linear scan kept for
// cross-checking.
//
// None of the solvers keep state between calls.
package dlog
