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
	"math/big"
	"sort"

	"github.com/fentec-project/godlog/data"
)

// Base is a factor base: the primes strictly smaller than some bound,
// in ascending order and without duplicates. A Base must not be
// modified once created.
type Base []*big.Int

// SievePrimes returns the factor base of all primes p < bound, found
// with the sieve of Eratosthenes. A bound smaller than 2 yields an
// empty base, against which no number other than 1 is smooth.
func SievePrimes(bound int) Base {
	if bound < 2 {
		return Base{}
	}

	composite := make([]bool, bound)
	base := Base{}
	for i := 2; i < bound; i++ {
		if composite[i] {
			continue
		}
		base = append(base, big.NewInt(int64(i)))
		for j := i * i; j < bound; j += i {
			composite[j] = true
		}
	}

	return base
}

// Len returns the number of primes in the base.
func (b Base) Len() int {
	return len(b)
}

// Index returns the position of prime in the base, or -1 if the base
// does not contain it.
func (b Base) Index(prime *big.Int) int {
	i := sort.Search(len(b), func(i int) bool {
		return b[i].Cmp(prime) >= 0
	})
	if i < len(b) && b[i].Cmp(prime) == 0 {
		return i
	}

	return -1
}

// Vector returns a copy of the base primes as a data.Vector.
func (b Base) Vector() data.Vector {
	return data.Vector(b).Copy()
}

// String produces a string representation of the base.
func (b Base) String() string {
	return data.Vector(b).String()
}
