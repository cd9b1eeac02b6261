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

package factor

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fentec-project/godlog/data"
	"github.com/fentec-project/godlog/internal"
	"github.com/pkg/errors"
)

// ErrNotSmooth is returned when a number has a prime factor that is not
// part of the factor base.
var ErrNotSmooth = errors.New("number is not smooth over the factor base")

// Power is a prime raised to a positive exponent.
type Power struct {
	Prime *big.Int
	Exp   int
}

// Factorization is a product of prime powers, ordered by ascending
// prime as they appear in the factor base.
type Factorization []Power

// Factorize expresses n as a product of primes from the base. Each prime
// is divided out as often as possible, in ascending order, and primes
// that do not divide n are omitted. If a cofactor other than 1 remains,
// ErrNotSmooth is returned. The factorization of 1 is empty.
func (b Base) Factorize(n *big.Int) (Factorization, error) {
	if n.Sign() <= 0 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "cannot factorize %v", n)
	}

	rem := new(big.Int).Set(n)
	q, r := new(big.Int), new(big.Int)
	one := big.NewInt(1)
	factors := Factorization{}

	for _, p := range b {
		if rem.Cmp(one) == 0 {
			break
		}

		e := 0
		for {
			q.QuoRem(rem, p, r)
			if r.Sign() != 0 {
				break
			}
			rem.Set(q)
			e++
		}
		if e != 0 {
			factors = append(factors, Power{Prime: new(big.Int).Set(p), Exp: e})
		}
	}

	if rem.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNotSmooth, "%v leaves cofactor %v", n, rem)
	}

	return factors, nil
}

// Product multiplies the prime powers back together.
func (f Factorization) Product() *big.Int {
	prod := big.NewInt(1)
	for _, pw := range f {
		prod.Mul(prod, new(big.Int).Exp(pw.Prime, big.NewInt(int64(pw.Exp)), nil))
	}

	return prod
}

// Exponents returns the exponent vector of f over base: the i-th entry
// is the exponent of base[i] in f, or 0 if base[i] does not divide it.
func (f Factorization) Exponents(base Base) data.Vector {
	exps := make(data.Vector, len(base))
	for i := range exps {
		exps[i] = new(big.Int)
	}
	for _, pw := range f {
		if i := base.Index(pw.Prime); i >= 0 {
			exps[i].SetInt64(int64(pw.Exp))
		}
	}

	return exps
}

// String renders f as "2^2 * 5^3". The empty product is rendered as "1".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}

	parts := make([]string, len(f))
	for i, pw := range f {
		parts[i] = fmt.Sprintf("%v^%d", pw.Prime, pw.Exp)
	}
	return strings.Join(parts, " * ")
}
