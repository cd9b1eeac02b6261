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

import (
	"math/big"

	"github.com/pkg/errors"
)

// BruteForce tries all exponents in [0, bound) and returns the first x
// with g^x = h (mod p). If bound is nil, it is set to p-1.
func BruteForce(h, g, p, bound *big.Int) (*big.Int, error) {
	if bound == nil {
		bound = new(big.Int).Sub(p, big.NewInt(1))
	}

	target := new(big.Int).Mod(h, p)
	x := new(big.Int).Mod(big.NewInt(1), p)
	one := big.NewInt(1)
	for i := big.NewInt(0); i.Cmp(bound) < 0; i.Add(i, one) {
		if x.Cmp(target) == 0 {
			return i, nil
		}
		x.Mul(x, g).Mod(x, p)
	}

	return nil, errors.Wrapf(ErrNotFound, "brute force up to %v", bound)
}
