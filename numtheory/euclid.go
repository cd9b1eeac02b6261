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

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNoInverse is returned when a modular inverse is requested for a
// number that shares a factor with the modulus.
var ErrNoInverse = errors.New("modular inverse does not exist")

var one = big.NewInt(1)

// GCDInverse runs the extended Euclidean algorithm on number and
// divisor. It returns gcd(number, divisor) and, when the gcd equals 1,
// the inverse of number modulo divisor as a residue in [0, divisor).
// If no inverse exists, inv is nil and ok is false.
func GCDInverse(number, divisor *big.Int) (gcd, inv *big.Int, ok bool) {
	x := new(big.Int)
	gcd = new(big.Int).GCD(x, nil, number, divisor)
	if divisor.Sign() <= 0 || gcd.Cmp(one) != 0 {
		return gcd, nil, false
	}

	return gcd, x.Mod(x, divisor), true
}

// ModInverse returns the inverse of number modulo divisor, or
// ErrNoInverse if gcd(number, divisor) != 1.
func ModInverse(number, divisor *big.Int) (*big.Int, error) {
	_, inv, ok := GCDInverse(number, divisor)
	if !ok {
		return nil, errors.Wrapf(ErrNoInverse, "%v modulo %v", number, divisor)
	}

	return inv, nil
}

// IsRelativelyPrime reports whether gcd(a, b) = 1.
func IsRelativelyPrime(a, b *big.Int) bool {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	if x.Cmp(y) < 0 {
		x, y = y, x
	}

	r := new(big.Int)
	for y.Sign() != 0 {
		r.Mod(x, y)
		x, y, r = y, r, x
	}

	return x.Cmp(one) == 0
}
