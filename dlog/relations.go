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

	"github.com/fentec-project/godlog/factor"
	"github.com/fentec-project/godlog/numtheory"
	"golang.org/x/sync/errgroup"
)

// searchLimit returns the largest k considered during relation
// collection.
func (ic *IndexCalc) searchLimit(y *big.Int) int64 {
	if ic.Params.SearchBudget > 0 {
		return ic.Params.SearchBudget
	}
	if y.IsInt64() && y.Int64() < DefaultSearchBudget {
		return y.Int64()
	}
	return DefaultSearchBudget
}

// relationBatch is the number of k values each worker is given per
// round of parallel relation collection.
const relationBatch = 64

// relations finds, for k = 1..limit, a smooth representative of g^k
// among g^k mod p and its shifts g^k mod p + s*p, s = 1..Shifts.
// A k without a smooth representative is skipped. With more than one
// worker the k values are processed in parallel rounds of bounded
// size, and the result is ordered by k exactly as in a sequential run.
func (ic *IndexCalc) relations(p, g, y *big.Int, base factor.Base) ([]Relation, error) {
	limit := ic.searchLimit(y)
	var relations []Relation

	if ic.Params.Workers <= 1 {
		for k := int64(1); k <= limit; k++ {
			if rel := ic.relationFor(p, g, base, k); rel != nil {
				relations = append(relations, *rel)
			}
		}
	} else {
		batch := int64(ic.Params.Workers) * relationBatch
		found := make([]*Relation, batch)
		for first := int64(1); first <= limit; first += batch {
			n := limit - first + 1
			if n > batch {
				n = batch
			}

			var eg errgroup.Group
			eg.SetLimit(ic.Params.Workers)
			for i := int64(0); i < n; i++ {
				i := i
				eg.Go(func() error {
					found[i] = ic.relationFor(p, g, base, first+i)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return nil, err
			}

			for _, rel := range found[:n] {
				if rel != nil {
					relations = append(relations, *rel)
				}
			}
		}
	}
	log.Debugw("collected relations", "limit", limit, "relations", len(relations))

	return relations, nil
}

func (ic *IndexCalc) relationFor(p, g *big.Int, base factor.Base, k int64) *Relation {
	kBig := big.NewInt(k)
	candidate := numtheory.ModPow(g, kBig, p)
	for s := 0; s <= ic.Params.Shifts; s++ {
		factors, err := base.Factorize(candidate)
		if err == nil {
			log.Debugw("relation", "g", g, "k", k, "shift", s, "factors", factors.String())
			return &Relation{K: kBig, Factors: factors}
		}
		candidate = new(big.Int).Add(candidate, p)
	}

	return nil
}
