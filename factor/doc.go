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

// Package factor generates factor bases of small primes and factors
// integers that are smooth with respect to such a base.
//
// A number is B-smooth when all of its prime factors are smaller than
// B. Smooth numbers are the raw material of index calculus and of the
// quadratic sieve: both collect relations whose right-hand sides
// factor completely over a fixed factor base.
package factor
