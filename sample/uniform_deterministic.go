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

package sample

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/salsa20"
)

// UniformDet samples values from the interval [min, max) using the
// salsa20 keystream under a fixed key. Two instances created with the
// same key and bounds return the same sequence of values.
type UniformDet struct {
	key      *[32]byte
	min      *big.Int
	width    *big.Int
	maxBytes int
	over     uint
	counter  uint64
}

// NewUniformDetRange returns an instance of the UniformDet sampler
// drawing from [min, max) with the stream determined by key.
func NewUniformDetRange(min, max *big.Int, key *[32]byte) *UniformDet {
	width := new(big.Int).Sub(max, min)
	maxBits := new(big.Int).Sub(width, big.NewInt(1)).BitLen()
	maxBytes := (maxBits + 7) / 8
	if maxBytes == 0 {
		maxBytes = 1
	}

	return &UniformDet{
		key:      key,
		min:      min,
		width:    width,
		maxBytes: maxBytes,
		over:     uint(8*maxBytes - maxBits),
	}
}

// Sample returns the next value of the stream. Candidates outside the
// interval are rejected, so the values are uniform in [min, max).
func (u *UniformDet) Sample() (*big.Int, error) {
	if u.width.Sign() <= 0 {
		return nil, errors.Errorf("empty sampling interval of width %v", u.width)
	}

	in := make([]byte, u.maxBytes)
	out := make([]byte, u.maxBytes)
	nonce := make([]byte, 8)
	for {
		binary.BigEndian.PutUint64(nonce, u.counter)
		u.counter++

		salsa20.XORKeyStream(out, in, nonce, u.key)
		out[0] = out[0] >> u.over
		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(u.width) < 0 {
			return ret.Add(ret, u.min), nil
		}
	}
}
