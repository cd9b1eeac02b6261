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

	"github.com/fentec-project/godlog/internal"
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
)

var log = logging.Logger("factor")

// ErrTooFewRelations is returned when the quadratic sieve runs out of
// candidates before it has collected enough relations.
var ErrTooFewRelations = errors.New("too few smooth relations")

// SieveRelation records a candidate x for which Q(x) = (m+x)^2 - n is
// smooth. Negative marks Q(x) < 0, in which case Factors is the
// factorization of -Q(x) and -1 is an extra factor.
type SieveRelation struct {
	X        *big.Int
	Q        *big.Int
	Negative bool
	Factors  Factorization
}

// QuadraticSieve runs the relation-collection stage of the quadratic
// sieve for n. With m = floor(sqrt(n)) it scans x = 0, 1, ... and keeps
// every x for which |Q(x)| is smooth over the primes below bound, until
// it holds as many relations as the base has primes. It gives up with
// ErrTooFewRelations after maxSteps candidates.
func QuadraticSieve(n *big.Int, bound, maxSteps int) ([]SieveRelation, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "cannot sieve %v", n)
	}

	base := SievePrimes(bound)
	if base.Len() == 0 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "bound %d gives an empty factor base", bound)
	}

	m := new(big.Int).Sqrt(n)
	relations := make([]SieveRelation, 0, base.Len())
	x := new(big.Int)
	for step := 0; step < maxSteps; step++ {
		q := new(big.Int).Add(m, x)
		q.Mul(q, q).Sub(q, n)

		// Q(x) = 0 only when n is a perfect square.
		if q.Sign() != 0 {
			factors, err := base.Factorize(new(big.Int).Abs(q))
			if err == nil {
				relations = append(relations, SieveRelation{
					X:        new(big.Int).Set(x),
					Q:        q,
					Negative: q.Sign() < 0,
					Factors:  factors,
				})
				log.Debugw("smooth value", "x", x, "Q", q, "factors", factors.String())
				if len(relations) == base.Len() {
					return relations, nil
				}
			}
		}
		x.Add(x, big.NewInt(1))
	}

	return nil, errors.Wrapf(ErrTooFewRelations, "found %d of %d after %d steps",
		len(relations), base.Len(), maxSteps)
}
