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

// Package sample provides the Sampler interface along with a
// cryptographically secure implementation backed by crypto/rand and a
// deterministic implementation backed by the salsa20 keystream.
// Solvers that rely on randomness accept a Sampler, so callers can
// replay a run by supplying a deterministic sampler with a fixed key.
package sample
