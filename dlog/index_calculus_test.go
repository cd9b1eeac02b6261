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
	"testing"

	"github.com/fentec-project/godlog/factor"
	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/numtheory"
	"github.com/fentec-project/godlog/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// constSampler always returns the same value.
type constSampler struct {
	v *big.Int
}

func (c constSampler) Sample() (*big.Int, error) {
	return new(big.Int).Set(c.v), nil
}

func TestIndexCalculus(t *testing.T) {
	p := big.NewInt(101)
	g := big.NewInt(2)
	y := big.NewInt(17)

	x, err := IndexCalculus(p, g, y, 10)
	if err != nil {
		t.Fatalf("Error in index calculus: %v", err)
	}

	assert.Equal(t, y, numtheory.ModPow(g, x, p), "index calculus result is wrong")
	assert.Equal(t, big.NewInt(30), x, "2 is a generator, so the log is unique")
}

func TestIndexCalculusDeterministic(t *testing.T) {
	var key [32]byte
	copy(key[:], "index calculus deterministic key")

	tests := []struct {
		p, g, y int64
		bound   int
	}{
		{101, 2, 17, 10},
		{809, 3, 500, 30},
		{1019, 2, 500, 30},
		{10007, 5, 500, 30},
	}

	for _, tt := range tests {
		p := big.NewInt(tt.p)
		params := DefaultIndexCalcParams(tt.bound)
		params.Sampler = sample.NewUniformDetRange(big.NewInt(2), big.NewInt(tt.p+1), &key)
		ic, err := NewIndexCalc(params)
		if err != nil {
			t.Fatalf("Error during index calculus configuration: %v", err)
		}

		x, err := ic.Solve(p, big.NewInt(tt.g), big.NewInt(tt.y))
		if err != nil {
			t.Fatalf("Error in index calculus for %d^x = %d mod %d: %v", tt.g, tt.y, tt.p, err)
		}
		assert.Equal(t, big.NewInt(tt.y), numtheory.ModPow(big.NewInt(tt.g), x, p),
			"%d^x = %d mod %d", tt.g, tt.y, tt.p)
	}
}

func TestIndexCalculusSearchBudget(t *testing.T) {
	p := big.NewInt(809)
	g := big.NewInt(3)
	y := big.NewInt(7)

	// k only runs up to y = 7 by default, which leaves log(7) unknown
	// and 7 * 3^2 = 63 = 3^2 * 7
	params := DefaultIndexCalcParams(30)
	params.MaxAttempts = 10
	params.Sampler = constSampler{big.NewInt(2)}
	ic, err := NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}
	_, err = ic.Solve(p, g, y)
	assert.True(t, errors.Is(err, ErrUnsolvedSystem))

	params.SearchBudget = 400
	params.MaxAttempts = 0
	params.Sampler = nil
	ic, err = NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}
	x, err := ic.Solve(p, g, y)
	if err != nil {
		t.Fatalf("Error in index calculus: %v", err)
	}
	assert.Equal(t, y, numtheory.ModPow(g, x, p))
}

func TestIndexCalculusAttemptsExhausted(t *testing.T) {
	// base {2}; 17 * 2^2 = 68 = 4 * 17 is never smooth
	params := DefaultIndexCalcParams(3)
	params.MaxAttempts = 3
	params.Sampler = constSampler{big.NewInt(2)}
	ic, err := NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}

	_, err = ic.Solve(big.NewInt(101), big.NewInt(2), big.NewInt(17))
	assert.True(t, errors.Is(err, ErrAttemptsExhausted))
	assert.True(t, errors.Is(err, ErrFailure))
}

func TestIndexCalculusUnsolvedSystem(t *testing.T) {
	// relations for k <= 6 only involve 2, while 17 * 2^3 = 35 = 5 * 7
	params := DefaultIndexCalcParams(10)
	params.SearchBudget = 6
	params.MaxAttempts = 5
	params.Sampler = constSampler{big.NewInt(3)}
	ic, err := NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}

	_, err = ic.Solve(big.NewInt(101), big.NewInt(2), big.NewInt(17))
	assert.True(t, errors.Is(err, ErrUnsolvedSystem))
	assert.True(t, errors.Is(err, ErrFailure))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestIndexCalculusNoRelations(t *testing.T) {
	params := DefaultIndexCalcParams(3)
	params.Shifts = 0
	params.SearchBudget = 5
	ic, err := NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}

	_, err = ic.Solve(big.NewInt(101), big.NewInt(3), big.NewInt(17))
	assert.True(t, errors.Is(err, ErrNoRelations))
}

func TestIndexCalculusEmptyBase(t *testing.T) {
	for _, bound := range []int{-1, 0, 1, 2} {
		_, err := IndexCalculus(big.NewInt(101), big.NewInt(2), big.NewInt(17), bound)
		assert.True(t, errors.Is(err, ErrEmptyFactorBase), "bound %d", bound)
	}
}

func TestIndexCalculusMalformed(t *testing.T) {
	_, err := IndexCalculus(big.NewInt(100), big.NewInt(3), big.NewInt(17), 10)
	assert.True(t, errors.Is(err, internal.ErrMalformedModulus))

	_, err = IndexCalculus(big.NewInt(101), big.NewInt(202), big.NewInt(17), 10)
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))

	_, err = NewIndexCalc(&IndexCalcParams{Bound: 10, Shifts: -1})
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))
}

func TestRelations(t *testing.T) {
	p := big.NewInt(101)
	g := big.NewInt(2)
	y := big.NewInt(17)
	base := factor.SievePrimes(10)

	ic, err := NewIndexCalc(DefaultIndexCalcParams(10))
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}
	relations, err := ic.Relations(p, g, y)
	if err != nil {
		t.Fatalf("Error during relation collection: %v", err)
	}

	// every k in 1..17 has a smooth representative within 10 shifts
	assert.Len(t, relations, 17)
	for i, rel := range relations {
		assert.Equal(t, int64(i+1), rel.K.Int64(), "relations should be ordered by k")
		prod := new(big.Int).Mod(rel.Factors.Product(), p)
		assert.Equal(t, numtheory.ModPow(g, rel.K, p), prod, "2^%v mod 101", rel.K)
		for _, pw := range rel.Factors {
			assert.True(t, base.Index(pw.Prime) >= 0)
		}
	}
}

func TestRelationsParallel(t *testing.T) {
	p := big.NewInt(10007)
	g := big.NewInt(5)
	y := big.NewInt(500)

	seq, err := NewIndexCalc(DefaultIndexCalcParams(30))
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}
	params := DefaultIndexCalcParams(30)
	params.Workers = 8
	par, err := NewIndexCalc(params)
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}

	r1, err := seq.Relations(p, g, y)
	if err != nil {
		t.Fatalf("Error during relation collection: %v", err)
	}
	r2, err := par.Relations(p, g, y)
	if err != nil {
		t.Fatalf("Error during relation collection: %v", err)
	}

	assert.Equal(t, r1, r2, "parallel collection should match sequential collection")
}

func TestRelationsParallelBatches(t *testing.T) {
	p := big.NewInt(10007)
	g := big.NewInt(5)
	y := big.NewInt(500)

	// budgets below, at and across several rounds of 3*relationBatch
	for _, budget := range []int64{1, 3 * relationBatch, 1000} {
		params := DefaultIndexCalcParams(30)
		params.SearchBudget = budget
		seq, err := NewIndexCalc(params)
		if err != nil {
			t.Fatalf("Error during index calculus configuration: %v", err)
		}
		parParams := *params
		parParams.Workers = 3
		par, err := NewIndexCalc(&parParams)
		if err != nil {
			t.Fatalf("Error during index calculus configuration: %v", err)
		}

		r1, err := seq.Relations(p, g, y)
		if err != nil {
			t.Fatalf("Error during relation collection: %v", err)
		}
		r2, err := par.Relations(p, g, y)
		if err != nil {
			t.Fatalf("Error during relation collection: %v", err)
		}

		assert.Equal(t, r1, r2, "budget %d", budget)
		if len(r1) > 0 {
			assert.True(t, r1[len(r1)-1].K.Int64() <= budget, "budget %d", budget)
		}
	}
}

func TestSolveRelations(t *testing.T) {
	p := big.NewInt(1019)
	g := big.NewInt(2)
	base := factor.SievePrimes(30)

	ic, err := NewIndexCalc(DefaultIndexCalcParams(30))
	if err != nil {
		t.Fatalf("Error during index calculus configuration: %v", err)
	}
	relations, err := ic.Relations(p, g, big.NewInt(500))
	if err != nil {
		t.Fatalf("Error during relation collection: %v", err)
	}

	// reversing the discovery order must not change the outcome
	reversed := make([]Relation, len(relations))
	for i, rel := range relations {
		reversed[len(relations)-1-i] = rel
	}

	for _, rels := range [][]Relation{relations, reversed} {
		table := SolveRelations(p, g, base, rels)
		assert.Equal(t, 0, table.Unknown())
		for _, prime := range base {
			l, ok := table.Log(prime)
			if !assert.True(t, ok, "log of %v should be known", prime) {
				continue
			}
			assert.Equal(t, prime, numtheory.ModPow(g, l, p), "2^log(%v)", prime)
		}
	}
}

func TestSolveRelationsAmbiguous(t *testing.T) {
	// 2*log(5) = 48 (mod 100) has the solutions 24 and 74; only 2^24 = 5
	p := big.NewInt(101)
	g := big.NewInt(2)
	base := factor.SievePrimes(10)
	relations := []Relation{
		{K: big.NewInt(17), Factors: factor.Factorization{{Prime: big.NewInt(3), Exp: 1}, {Prime: big.NewInt(5), Exp: 2}}},
		{K: big.NewInt(7), Factors: factor.Factorization{{Prime: big.NewInt(3), Exp: 3}}},
	}

	table := SolveRelations(p, g, base, relations)
	l3, ok := table.Log(big.NewInt(3))
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(69), l3)
	l5, ok := table.Log(big.NewInt(5))
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(24), l5)

	_, ok = table.Log(big.NewInt(7))
	assert.False(t, ok)
	_, ok = table.Log(big.NewInt(11))
	assert.False(t, ok, "11 is not part of the base")
	assert.Equal(t, 1, table.Unknown())
}
