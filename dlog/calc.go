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

	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/numtheory"
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
)

var log = logging.Logger("dlog")

// MaxBound limits the interval of values that are checked when
// computing discrete logarithms with baby-step giant-step. Both step
// lists hold about sqrt(bound) elements, so the bound keeps memory
// consumption practical. Calculators configured with a larger order or
// bound refuse to run.
var MaxBound = new(big.Int).Lsh(big.NewInt(1), 40)

// Calc represents a discrete logarithm calculator.
type Calc struct{}

func NewCalc() *Calc {
	return &Calc{}
}

// CalcZp represents a calculator for discrete logarithms
// that operates in the Zp group of integers modulo prime p.
type CalcZp struct {
	p     *big.Int
	order *big.Int
	bound *big.Int
}

// InZp configures a calculator for the group Z_p*. If order is nil, p
// must be prime and the order is set to p-1; otherwise order is the
// order of the subgroup in which logarithms are taken.
func (*Calc) InZp(p, order *big.Int) (*CalcZp, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrap(internal.ErrMalformedModulus, "group modulus p must be at least 2")
	}

	if order == nil {
		if !p.ProbablyPrime(20) {
			return nil, errors.Wrap(internal.ErrMalformedModulus, "group modulus p must be prime")
		}
		order = new(big.Int).Sub(p, big.NewInt(1))
	} else if order.Sign() <= 0 {
		return nil, errors.Wrap(internal.ErrMalformedInput, "group order must be positive")
	}

	return &CalcZp{
		p:     p,
		order: order,
		bound: order,
	}, nil
}

// WithBound returns a calculator that only searches exponents in
// [0, bound). A nil bound keeps the calculator unchanged. The bound
// must be positive; BabyStepGiantStep rejects it otherwise.
func (c *CalcZp) WithBound(bound *big.Int) *CalcZp {
	if bound != nil {
		return &CalcZp{
			p:     c.p,
			order: c.order,
			bound: bound,
		}
	}
	return c
}

func ceilSqrt(n *big.Int) *big.Int {
	s := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(s, s).Cmp(n) < 0 {
		s.Add(s, big.NewInt(1))
	}
	return s
}

// step is an entry (index, value) of one of the two step lists.
type step struct {
	idx int64
	val *big.Int
}

func sortSteps(steps []step) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].val.Cmp(steps[j].val) < 0
	})
}

// BabyStepGiantStep uses the baby-step giant-step method to
// compute the discrete logarithm in the Zp group.
//
// With m = ceil(sqrt(bound)) it builds the giant steps (j, g^(m*j)) and
// the baby steps (i, h*g^(-i)) for i, j in [0, m), sorts both lists by
// value and scans them in parallel, always advancing the cursor at the
// smaller value. The first equal pair gives x = m*j + i reduced modulo
// the group order. If g has no inverse modulo p, numtheory.ErrNoInverse
// is returned; if the lists share no value, ErrNotFound is. A bound
// that is not positive is malformed input.
func (c *CalcZp) BabyStepGiantStep(h, g *big.Int) (*big.Int, error) {
	if c.bound.Sign() <= 0 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "bound %v must be positive", c.bound)
	}
	if c.bound.Cmp(MaxBound) > 0 {
		return nil, errors.Errorf("bound %v exceeds the maximal bound %v", c.bound, MaxBound)
	}

	gInv, err := numtheory.ModInverse(g, c.p)
	if err != nil {
		return nil, err
	}

	mBig := ceilSqrt(c.bound)
	m := mBig.Int64()
	gm := numtheory.ModPow(g, mBig, c.p)
	giant := make([]step, m)
	baby := make([]step, m)

	x := big.NewInt(1)
	y := new(big.Int).Mod(h, c.p)
	for i := int64(0); i < m; i++ {
		giant[i] = step{idx: i, val: x}
		baby[i] = step{idx: i, val: y}
		x = new(big.Int).Mod(new(big.Int).Mul(x, gm), c.p)
		y = new(big.Int).Mod(new(big.Int).Mul(y, gInv), c.p)
	}

	sortSteps(giant)
	sortSteps(baby)

	i1, i2 := 0, 0
	for i1 < len(giant) && i2 < len(baby) {
		switch giant[i1].val.Cmp(baby[i2].val) {
		case 0:
			j, i := giant[i1].idx, baby[i2].idx
			ret := new(big.Int).Mul(mBig, big.NewInt(j))
			ret.Add(ret, big.NewInt(i))
			ret.Mod(ret, c.order)
			log.Debugw("matched steps", "m", mBig, "j", j, "i", i, "value", giant[i1].val, "x", ret)
			return ret, nil
		case -1:
			i1++
		default:
			i2++
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "baby-step giant-step up to %v", c.bound)
}

// BSGS computes x with a^x = b (mod p) for a prime p, using
// baby-step giant-step over the full group of order p-1.
func BSGS(p, a, b *big.Int) (*big.Int, error) {
	calc, err := NewCalc().InZp(p, nil)
	if err != nil {
		return nil, err
	}

	return calc.BabyStepGiantStep(b, a)
}
