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

	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/numtheory"
	"github.com/fentec-project/godlog/sample"
	"github.com/pkg/errors"
)

// RSAParams represents configuration parameters for an RSA key.
type RSAParams struct {
	// Distinct primes whose product is the modulus. Required.
	P, Q *big.Int
	// Public exponent. If nil, a random exponent coprime to the
	// totient is chosen.
	E *big.Int
	// Use the Carmichael function lcm(P-1, Q-1) instead of Euler's
	// totient (P-1)(Q-1) to derive the private exponent.
	Carmichael bool
	// Source of the random public exponent. Defaults to crypto/rand.
	Sampler sample.Sampler
}

// RSAPublicKey is the public part (N, E) of an RSA key.
type RSAPublicKey struct {
	N *big.Int
	E *big.Int
}

// RSA holds an RSA key pair.
type RSA struct {
	PublicKey *RSAPublicKey
	D         *big.Int
}

// NewRSA derives an RSA key pair from params.
func NewRSA(params *RSAParams) (*RSA, error) {
	if params == nil || params.P == nil || params.Q == nil {
		return nil, errors.Wrap(internal.ErrMalformedInput, "primes P and Q are required")
	}
	if params.P.Cmp(params.Q) == 0 || !params.P.ProbablyPrime(20) || !params.Q.ProbablyPrime(20) {
		return nil, errors.Wrap(internal.ErrMalformedInput, "P and Q must be distinct primes")
	}

	one := big.NewInt(1)
	n := new(big.Int).Mul(params.P, params.Q)
	p1 := new(big.Int).Sub(params.P, one)
	q1 := new(big.Int).Sub(params.Q, one)
	totient := new(big.Int).Mul(p1, q1)
	if params.Carmichael {
		gcd, _, _ := numtheory.GCDInverse(p1, q1)
		totient.Div(totient, gcd)
	}

	e := params.E
	if e == nil {
		var err error
		e, err = randomExponent(totient, params.Sampler)
		if err != nil {
			return nil, err
		}
	}

	d, err := numtheory.ModInverse(e, totient)
	if err != nil {
		return nil, errors.Wrap(err, "public exponent must be coprime to the totient")
	}

	return &RSA{
		PublicKey: &RSAPublicKey{N: n, E: e},
		D:         d,
	}, nil
}

// randomExponent draws e from [3, totient) until gcd(e, totient) = 1.
func randomExponent(totient *big.Int, sampler sample.Sampler) (*big.Int, error) {
	if totient.Cmp(big.NewInt(4)) < 0 {
		return nil, errors.Wrap(internal.ErrMalformedInput, "totient too small")
	}
	if sampler == nil {
		sampler = sample.NewUniformRange(big.NewInt(3), totient)
	}

	for {
		e, err := sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "cannot sample public exponent")
		}
		if numtheory.IsRelativelyPrime(e, totient) {
			return e, nil
		}
	}
}

// Encrypt computes m^E mod N for a message m in [0, N).
func (k *RSAPublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	if k.N == nil || k.E == nil || k.N.Cmp(big.NewInt(2)) < 0 || k.E.Sign() <= 0 {
		return nil, errors.Wrap(internal.ErrMalformedPubKey, "N and E must be positive")
	}
	if m.Sign() < 0 || m.Cmp(k.N) >= 0 {
		return nil, errors.Wrap(internal.ErrMalformedInput, "message must lie in [0, N)")
	}
	return numtheory.ModPow(m, k.E, k.N), nil
}

// Verify reports whether s is a signature of m, that is whether
// s^E = hash(m) (mod N). A nil hash signs m itself.
func (k *RSAPublicKey) Verify(s, m *big.Int, hash HashFunc) bool {
	want := new(big.Int).Mod(digest(m, hash), k.N)
	return numtheory.ModPow(s, k.E, k.N).Cmp(want) == 0
}

// Encrypt encrypts m with the public key.
func (r *RSA) Encrypt(m *big.Int) (*big.Int, error) {
	return r.PublicKey.Encrypt(m)
}

// Decrypt computes c^D mod N.
func (r *RSA) Decrypt(c *big.Int) *big.Int {
	return numtheory.ModPow(c, r.D, r.PublicKey.N)
}

// Sign computes hash(m)^D mod N. A nil hash signs m itself.
func (r *RSA) Sign(m *big.Int, hash HashFunc) *big.Int {
	return numtheory.ModPow(digest(m, hash), r.D, r.PublicKey.N)
}

// Verify verifies a signature with the public key.
func (r *RSA) Verify(s, m *big.Int, hash HashFunc) bool {
	return r.PublicKey.Verify(s, m, hash)
}
