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

package pkc

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// HashFunc maps a message to the integer that is actually signed.
type HashFunc func(m *big.Int) *big.Int

// SHA3 hashes the big-endian bytes of m with SHA3-256.
func SHA3(m *big.Int) *big.Int {
	h := sha3.Sum256(m.Bytes())
	return new(big.Int).SetBytes(h[:])
}

func digest(m *big.Int, hash HashFunc) *big.Int {
	if hash == nil {
		return m
	}
	return hash(m)
}
