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
	"sort"

	"github.com/fentec-project/godlog/data"
	"github.com/fentec-project/godlog/factor"
	"github.com/fentec-project/godlog/numtheory"
)

// LogTable holds the discrete logarithms of the factor base primes
// modulo p-1. Entries that are still unknown are nil.
type LogTable struct {
	base factor.Base
	logs []*big.Int
}

func newLogTable(base factor.Base) *LogTable {
	return &LogTable{
		base: base,
		logs: make([]*big.Int, base.Len()),
	}
}

// Log returns the logarithm of prime, or false if it is unknown or
// prime is not part of the factor base.
func (t *LogTable) Log(prime *big.Int) (*big.Int, bool) {
	i := t.base.Index(prime)
	if i < 0 || t.logs[i] == nil {
		return nil, false
	}
	return new(big.Int).Set(t.logs[i]), true
}

// Unknown returns the number of primes whose logarithm is unknown.
func (t *LogTable) Unknown() int {
	n := 0
	for _, l := range t.logs {
		if l == nil {
			n++
		}
	}
	return n
}

// Vector returns the logarithms as a vector over the factor base,
// with 0 in place of unknown entries.
func (t *LogTable) Vector() data.Vector {
	v := make(data.Vector, len(t.logs))
	for i, l := range t.logs {
		if l == nil {
			v[i] = new(big.Int)
		} else {
			v[i] = new(big.Int).Set(l)
		}
	}
	return v
}

// SolveRelations derives the logarithms base g of the factor base
// primes from relations g^k = prod p_i^e_i (mod p), working modulo p-1.
//
// The relations are sorted by their number of distinct primes. Each
// pass substitutes the known logarithms into every pending relation;
// a relation left with a single unknown prime is solved for it. Passes
// repeat until the table is full or a pass learns nothing new, so the
// outcome does not depend on the order in which relations were found.
// A relation with no unknown left, or whose single unknown has no
// solution consistent with g^x = prime (mod p), is discarded.
func SolveRelations(p, g *big.Int, base factor.Base, relations []Relation) *LogTable {
	n := new(big.Int).Sub(p, big.NewInt(1))
	table := newLogTable(base)
	if i := base.Index(g); i >= 0 {
		table.logs[i] = new(big.Int).Mod(big.NewInt(1), n)
	}

	pending := make([]Relation, len(relations))
	copy(pending, relations)
	sort.SliceStable(pending, func(i, j int) bool {
		return len(pending[i].Factors) < len(pending[j].Factors)
	})

	for progress := true; progress && table.Unknown() > 0; {
		progress = false
		next := make([]Relation, 0, len(pending))
		for _, rel := range pending {
			residual := new(big.Int).Set(rel.K)
			unknown := make([]factor.Power, 0, 1)
			for _, pw := range rel.Factors {
				l := table.logs[base.Index(pw.Prime)]
				if l == nil {
					unknown = append(unknown, pw)
					continue
				}
				residual.Sub(residual, new(big.Int).Mul(l, big.NewInt(int64(pw.Exp))))
			}
			residual.Mod(residual, n)

			switch len(unknown) {
			case 0:
			case 1:
				pw := unknown[0]
				if l, ok := solveSingle(p, g, pw, residual); ok {
					table.logs[base.Index(pw.Prime)] = l
					progress = true
					log.Debugw("solved logarithm", "prime", pw.Prime, "log", l, "k", rel.K)
				}
			default:
				next = append(next, rel)
			}
		}
		pending = next
	}

	return table
}

// solveSingle solves e*x = residual (mod p-1) for x = log_g(prime),
// where pw = prime^e. Multiples of p-1 are added to the residual until
// e divides it, which gives one solution x0. When gcd(e, p-1) = d > 1
// the congruence has d solutions x0 + t*(p-1)/d; the one with
// g^x = prime (mod p) is returned.
func solveSingle(p, g *big.Int, pw factor.Power, residual *big.Int) (*big.Int, bool) {
	n := new(big.Int).Sub(p, big.NewInt(1))
	e := big.NewInt(int64(pw.Exp))

	tmp := new(big.Int).Set(residual)
	r := new(big.Int)
	divisible := false
	for i := 0; i < pw.Exp; i++ {
		if r.Mod(tmp, e).Sign() == 0 {
			divisible = true
			break
		}
		tmp.Add(tmp, n)
	}
	if !divisible {
		return nil, false
	}

	x := tmp.Div(tmp, e)
	x.Mod(x, n)

	d, _, _ := numtheory.GCDInverse(e, n)
	stride := new(big.Int).Div(n, d)
	want := new(big.Int).Mod(pw.Prime, p)
	for t := int64(0); t < d.Int64(); t++ {
		if numtheory.ModPow(g, x, p).Cmp(want) == 0 {
			return x, true
		}
		x = new(big.Int).Add(x, stride)
		x.Mod(x, n)
	}

	return nil, false
}
