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
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/godlog/internal"
)

// run executes the app with args and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	stdout := os.Stdout
	os.Stdout = w
	runErr := app.Run(append([]string{"dlog"}, args...))
	os.Stdout = stdout
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return strings.TrimSpace(string(out)), runErr
}

func TestCommands(t *testing.T) {
	var tests = []struct {
		name string
		args []string
		want string
	}{
		{"bsgs", []string{"bsgs", "--p", "809", "--g", "3", "--y", "500"}, "30"},
		{"brute", []string{"brute", "--p", "809", "--g", "3", "--y", "500"}, "30"},
		{"bsgs hex", []string{"bsgs", "--p", "0x329", "--g", "3", "--y", "500"}, "30"},
		{"index", []string{"index", "--p", "809", "--g", "3", "--y", "500", "--budget", "400"}, "30"},
		{"index seeded", []string{"index", "--p", "1019", "--g", "2", "--y", "500", "--seed", "reproducible", "--workers", "4"}, "32"},
		{"factor", []string{"factor", "--bound", "10", "500", "11"}, "500 = 2^2 * 5^3\n11: not 10-smooth"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			assert.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestCommandsMalformed(t *testing.T) {
	_, err := run(t, "bsgs", "--p", "eight", "--g", "3", "--y", "5")
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))

	_, err = run(t, "bsgs", "--p", "101", "--g", "2", "--y", "3", "--limit", "-5")
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))

	_, err = run(t, "factor")
	assert.True(t, errors.Is(err, internal.ErrMalformedInput))

	_, err = run(t, "--log-level", "loud", "factor", "4")
	assert.Error(t, err)
}
