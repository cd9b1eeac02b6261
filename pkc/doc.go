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

// Package pkc implements textbook RSA and ElGamal encryption and
// signatures on top of the numtheory primitives.
//
// The schemes are unpadded and meant for experimenting with the
// discrete logarithm solvers in package dlog, for example recovering
// an ElGamal secret key from its public key over a small prime. They
// offer no security guarantees.
package pkc
