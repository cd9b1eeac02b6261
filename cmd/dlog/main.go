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

// Command dlog computes discrete logarithms modulo a prime and exposes
// the factoring helpers the solvers are built on.
package main

import (
	"fmt"
	"math/big"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/fentec-project/godlog/internal"
)

var (
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level of all subsystems (debug, info, warn, error)",
		Value: "error",
	}
	modulusFlag = &cli.StringFlag{
		Name:     "p",
		Usage:    "prime modulus",
		Required: true,
	}
	baseFlag = &cli.StringFlag{
		Name:     "g",
		Usage:    "base of the logarithm",
		Required: true,
	}
	targetFlag = &cli.StringFlag{
		Name:     "y",
		Usage:    "value whose logarithm is sought",
		Required: true,
	}
)

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = "dlog"
	app.Usage = "discrete logarithms in Z_p*"
	app.Flags = []cli.Flag{logLevelFlag}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		commandBSGS,
		commandBrute,
		commandIndex,
		commandFactor,
		commandSieve,
	}
}

func setupLogging(ctx *cli.Context) error {
	level, err := logging.LevelFromString(ctx.String(logLevelFlag.Name))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	logging.SetAllLoggers(level)
	return nil
}

// parseInt reads a decimal (or 0x-prefixed hexadecimal) integer flag.
func parseInt(ctx *cli.Context, name string) (*big.Int, error) {
	return parseBig(ctx.String(name), name)
}

func parseBig(s, name string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "flag %s: %q is not an integer", name, s)
	}
	return v, nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
