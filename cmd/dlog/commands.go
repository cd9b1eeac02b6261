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

package main

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	"github.com/fentec-project/godlog/dlog"
	"github.com/fentec-project/godlog/factor"
	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/sample"
)

var (
	boundFlag = &cli.IntFlag{
		Name:  "bound",
		Usage: "primes strictly below this bound form the factor base",
		Value: 30,
	}
	shiftsFlag = &cli.IntFlag{
		Name:  "shifts",
		Usage: "shifted candidates g^k + s*p tried per exponent",
		Value: dlog.DefaultShifts,
	}
	budgetFlag = &cli.Int64Flag{
		Name:  "budget",
		Usage: "largest exponent k tried during relation collection (0 = automatic)",
	}
	attemptsFlag = &cli.IntFlag{
		Name:  "attempts",
		Usage: "random exponents tried in the final combination (0 = unlimited)",
		Value: 1000,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "goroutines used for relation collection",
		Value: 1,
	}
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "derive the random exponents from this seed, making runs reproducible",
	}
	limitFlag = &cli.StringFlag{
		Name:  "limit",
		Usage: "largest exponent considered (default: p-1)",
	}
	stepsFlag = &cli.IntFlag{
		Name:  "steps",
		Usage: "candidates scanned before the sieve gives up",
		Value: 10000,
	}
)

var commandBSGS = &cli.Command{
	Name:  "bsgs",
	Usage: "solve g^x = y (mod p) with baby-step giant-step",
	Flags: []cli.Flag{modulusFlag, baseFlag, targetFlag, limitFlag},
	Action: func(ctx *cli.Context) error {
		p, g, y, err := problem(ctx)
		if err != nil {
			return err
		}
		calc, err := dlog.NewCalc().InZp(p, nil)
		if err != nil {
			return err
		}
		if ctx.IsSet(limitFlag.Name) {
			limit, err := parseInt(ctx, limitFlag.Name)
			if err != nil {
				return err
			}
			calc = calc.WithBound(limit)
		}
		x, err := calc.BabyStepGiantStep(y, g)
		if err != nil {
			return err
		}
		fmt.Println(x)
		return nil
	},
}

var commandBrute = &cli.Command{
	Name:  "brute",
	Usage: "solve g^x = y (mod p) by exhaustive search",
	Flags: []cli.Flag{modulusFlag, baseFlag, targetFlag, limitFlag},
	Action: func(ctx *cli.Context) error {
		p, g, y, err := problem(ctx)
		if err != nil {
			return err
		}
		var limit *big.Int
		if ctx.IsSet(limitFlag.Name) {
			if limit, err = parseInt(ctx, limitFlag.Name); err != nil {
				return err
			}
		}
		x, err := dlog.BruteForce(y, g, p, limit)
		if err != nil {
			return err
		}
		fmt.Println(x)
		return nil
	},
}

var commandIndex = &cli.Command{
	Name:  "index",
	Usage: "solve g^x = y (mod p) with index calculus",
	Description: `
Collects relations g^k = prod q_i^e_i (mod p) over the primes below --bound,
solves them for the logarithms of the base primes and combines a smooth
y*g^r into the logarithm of y. Use --log-level=debug to follow the phases.
`,
	Flags: []cli.Flag{
		modulusFlag, baseFlag, targetFlag,
		boundFlag, shiftsFlag, budgetFlag, attemptsFlag, workersFlag, seedFlag,
	},
	Action: func(ctx *cli.Context) error {
		p, g, y, err := problem(ctx)
		if err != nil {
			return err
		}
		params := &dlog.IndexCalcParams{
			Bound:        ctx.Int(boundFlag.Name),
			Shifts:       ctx.Int(shiftsFlag.Name),
			SearchBudget: ctx.Int64(budgetFlag.Name),
			MaxAttempts:  ctx.Int(attemptsFlag.Name),
			Workers:      ctx.Int(workersFlag.Name),
		}
		if ctx.IsSet(seedFlag.Name) {
			key := sha3.Sum256([]byte(ctx.String(seedFlag.Name)))
			params.Sampler = sample.NewUniformDetRange(big.NewInt(2), new(big.Int).Add(p, big.NewInt(1)), &key)
		}
		ic, err := dlog.NewIndexCalc(params)
		if err != nil {
			return err
		}
		x, err := ic.Solve(p, g, y)
		if err != nil {
			return err
		}
		fmt.Println(x)
		return nil
	},
}

var commandFactor = &cli.Command{
	Name:      "factor",
	Usage:     "factor integers over the primes below --bound",
	ArgsUsage: "<n> [<n> ...]",
	Flags:     []cli.Flag{boundFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return errors.Wrap(internal.ErrMalformedInput, "no integers given")
		}
		base := factor.SievePrimes(ctx.Int(boundFlag.Name))
		for _, arg := range ctx.Args().Slice() {
			n, err := parseBig(arg, "n")
			if err != nil {
				return err
			}
			f, err := base.Factorize(n)
			if errors.Is(err, factor.ErrNotSmooth) {
				fmt.Printf("%v: not %d-smooth\n", n, ctx.Int(boundFlag.Name))
				continue
			}
			if err != nil {
				return err
			}
			fmt.Printf("%v = %v\n", n, f)
		}
		return nil
	},
}

var commandSieve = &cli.Command{
	Name:      "sieve",
	Usage:     "collect quadratic sieve relations for n",
	ArgsUsage: "<n>",
	Flags:     []cli.Flag{boundFlag, stepsFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return errors.Wrap(internal.ErrMalformedInput, "expected exactly one integer")
		}
		n, err := parseBig(ctx.Args().First(), "n")
		if err != nil {
			return err
		}
		relations, err := factor.QuadraticSieve(n, ctx.Int(boundFlag.Name), ctx.Int(stepsFlag.Name))
		if err != nil {
			return err
		}
		for _, r := range relations {
			sign := ""
			if r.Negative {
				sign = "-1 * "
			}
			fmt.Printf("x=%v Q=%v = %s%v\n", r.X, r.Q, sign, r.Factors)
		}
		return nil
	},
}

func problem(ctx *cli.Context) (p, g, y *big.Int, err error) {
	if p, err = parseInt(ctx, modulusFlag.Name); err != nil {
		return nil, nil, nil, err
	}
	if g, err = parseInt(ctx, baseFlag.Name); err != nil {
		return nil, nil, nil, err
	}
	if y, err = parseInt(ctx, targetFlag.Name); err != nil {
		return nil, nil, nil, err
	}
	return p, g, y, nil
}
