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

package numtheory

import "math/big"

// ModPow computes base^exponent mod modulus by square-and-multiply,
// so it needs O(log exponent) multiplications. The exponent must be
// non-negative and the modulus positive; the result lies in
// [0, modulus).
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	b := new(big.Int).Mod(base, modulus)
	return new(big.Int).Exp(b, exponent, modulus)
}
