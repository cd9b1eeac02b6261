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
	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/numtheory"
	"github.com/fentec-project/godlog/sample"
	"github.com/pkg/errors"
)

// DefaultShifts is the number of shifted candidates g^k + s*p,
// s = 1..DefaultShifts, tried for each k during relation collection.
const DefaultShifts = 10

// DefaultSearchBudget caps k during relation collection when
// IndexCalcParams.SearchBudget is not set.
const DefaultSearchBudget = int64(1 << 16)

// IndexCalcParams represents configuration parameters for an
// index calculus instance.
type IndexCalcParams struct {
	// Primes strictly smaller than Bound form the factor base.
	Bound int
	// Number of shifted candidates g^k + s*p tried when g^k mod p
	// is not smooth. Zero disables shifting.
	Shifts int
	// Relations are collected for k = 1..SearchBudget. If zero,
	// k runs up to min(y, DefaultSearchBudget).
	SearchBudget int64
	// Maximal number of random exponents tried in the final
	// combination. Zero means no limit.
	MaxAttempts int
	// Source of the random exponent r of the final combination.
	// If nil, r is drawn uniformly from [2, p].
	Sampler sample.Sampler
	// Number of goroutines used for relation collection.
	Workers int
}

// DefaultIndexCalcParams returns parameters with factor base bound
// bound and defaults for everything else.
func DefaultIndexCalcParams(bound int) *IndexCalcParams {
	return &IndexCalcParams{
		Bound:   bound,
		Shifts:  DefaultShifts,
		Workers: 1,
	}
}

// IndexCalc represents an index calculus solver for discrete
// logarithms in Z_p* with p prime.
type IndexCalc struct {
	Params *IndexCalcParams
}

// NewIndexCalc configures a new solver. It returns an error if
// any of the numeric parameters is negative.
func NewIndexCalc(params *IndexCalcParams) (*IndexCalc, error) {
	if params == nil {
		return nil, errors.Wrap(internal.ErrMalformedInput, "parameters must not be nil")
	}
	if params.Shifts < 0 || params.SearchBudget < 0 || params.MaxAttempts < 0 || params.Workers < 0 {
		return nil, errors.Wrap(internal.ErrMalformedInput, "index calculus parameters must not be negative")
	}

	p := *params
	if p.Workers == 0 {
		p.Workers = 1
	}

	return &IndexCalc{Params: &p}, nil
}

// Relation states that g^K = prod Factors (mod p).
type Relation struct {
	K       *big.Int
	Factors factor.Factorization
}

// IndexCalculus computes x with g^x = y (mod p) using a factor base of
// the primes below bound and default parameters otherwise.
func IndexCalculus(p, g, y *big.Int, bound int) (*big.Int, error) {
	ic, err := NewIndexCalc(DefaultIndexCalcParams(bound))
	if err != nil {
		return nil, err
	}

	return ic.Solve(p, g, y)
}

// Solve computes x with g^x = y (mod p).
//
// It collects relations between powers of g and the factor base
// (see Relations), derives the logarithms of the base primes (see
// SolveRelations) and then draws random exponents r until y*g^r mod p
// is smooth. The logarithms of its factors, minus r, give x modulo p-1.
// Every failure wraps ErrFailure; the returned x always satisfies
// g^x = y (mod p).
func (ic *IndexCalc) Solve(p, g, y *big.Int) (*big.Int, error) {
	g, y, err := checkField(p, g, y)
	if err != nil {
		return nil, err
	}

	base := factor.SievePrimes(ic.Params.Bound)
	if base.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptyFactorBase, "bound %d", ic.Params.Bound)
	}
	log.Debugw("factor base", "bound", ic.Params.Bound, "primes", base.String())

	relations, err := ic.relations(p, g, y, base)
	if err != nil {
		return nil, err
	}
	if len(relations) == 0 {
		return nil, errors.Wrapf(ErrNoRelations, "for %v^k mod %v", g, p)
	}

	table := SolveRelations(p, g, base, relations)
	log.Debugw("solved factor base", "known", base.Len()-table.Unknown(), "unknown", table.Unknown())

	return ic.combine(p, g, y, base, table)
}

// Relations collects the relations g^k = prod p_i^e_i (mod p) over the
// factor base of the configured bound, in order of increasing k.
func (ic *IndexCalc) Relations(p, g, y *big.Int) ([]Relation, error) {
	g, y, err := checkField(p, g, y)
	if err != nil {
		return nil, err
	}

	return ic.relations(p, g, y, factor.SievePrimes(ic.Params.Bound))
}

func checkField(p, g, y *big.Int) (*big.Int, *big.Int, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, nil, errors.Wrap(internal.ErrMalformedModulus, "group modulus p must be prime")
	}
	if g == nil || y == nil {
		return nil, nil, errors.Wrap(internal.ErrMalformedInput, "g and y must not be nil")
	}

	gRed := new(big.Int).Mod(g, p)
	yRed := new(big.Int).Mod(y, p)
	if gRed.Sign() == 0 || yRed.Sign() == 0 {
		return nil, nil, errors.Wrap(internal.ErrMalformedInput, "g and y must be invertible modulo p")
	}

	return gRed, yRed, nil
}

// combine draws r until y*g^r mod p factors over the base and turns the
// factorization into log_g(y) = sum e_i*log_g(p_i) - r (mod p-1).
func (ic *IndexCalc) combine(p, g, y *big.Int, base factor.Base, table *LogTable) (*big.Int, error) {
	n := new(big.Int).Sub(p, big.NewInt(1))
	sampler := ic.Params.Sampler
	if sampler == nil {
		sampler = sample.NewUniformRange(big.NewInt(2), new(big.Int).Add(p, big.NewInt(1)))
	}
	logs := table.Vector()

	for attempt := 0; ic.Params.MaxAttempts == 0 || attempt < ic.Params.MaxAttempts; attempt++ {
		r, err := sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "cannot sample combination exponent")
		}

		t := numtheory.ModPow(g, r, p)
		t.Mul(t, y).Mod(t, p)
		factors, err := base.Factorize(t)
		if errors.Is(err, factor.ErrNotSmooth) {
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, pw := range factors {
			if _, ok := table.Log(pw.Prime); !ok {
				return nil, errors.Wrapf(ErrUnsolvedSystem, "logarithm of %v is unknown", pw.Prime)
			}
		}

		x, err := factors.Exponents(base).Dot(logs)
		if err != nil {
			return nil, err
		}
		x.Sub(x, r).Mod(x, n)

		if numtheory.ModPow(g, x, p).Cmp(y) != 0 {
			return nil, errors.Wrapf(ErrUnsolvedSystem, "%v^%v != %v (mod %v)", g, x, y, p)
		}
		log.Debugw("combination", "r", r, "value", t, "factors", factors.String(), "x", x)

		return x, nil
	}

	return nil, errors.Wrapf(ErrAttemptsExhausted, "after %d attempts", ic.Params.MaxAttempts)
}
