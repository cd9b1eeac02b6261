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
	"crypto/rand"
	"math/big"

	"github.com/fentec-project/godlog/internal"
	"github.com/fentec-project/godlog/numtheory"
	"github.com/fentec-project/godlog/sample"
	"github.com/pkg/errors"
)

// ElGamalParams represents configuration parameters for an ElGamal key.
type ElGamalParams struct {
	// Prime modulus. Required.
	P *big.Int
	// Generator of Z_P*. Required.
	G *big.Int
	// Secret key in [1, P-1). If nil, it is sampled.
	X *big.Int
	// Source of the secret key and of ephemeral values when the
	// caller does not supply them. Defaults to crypto/rand.
	Sampler sample.Sampler
}

// ElGamal holds an ElGamal key pair over Z_P*.
type ElGamal struct {
	P *big.Int // modulus
	G *big.Int // generator
	Y *big.Int // public key G^X mod P
	X *big.Int // secret key

	sampler sample.Sampler
}

// NewElGamal derives an ElGamal key pair from params.
func NewElGamal(params *ElGamalParams) (*ElGamal, error) {
	if params == nil || params.P == nil || params.G == nil {
		return nil, errors.Wrap(internal.ErrMalformedInput, "modulus P and generator G are required")
	}
	if !params.P.ProbablyPrime(20) {
		return nil, errors.Wrap(internal.ErrMalformedModulus, "P must be prime")
	}
	pMinus1 := new(big.Int).Sub(params.P, big.NewInt(1))
	if params.G.Cmp(big.NewInt(2)) < 0 || params.G.Cmp(pMinus1) > 0 {
		return nil, errors.Wrap(internal.ErrMalformedInput, "G must lie in [2, P-1]")
	}

	sampler := params.Sampler
	if sampler == nil {
		sampler = sample.NewUniformRange(big.NewInt(1), pMinus1)
	}

	x := params.X
	if x == nil {
		var err error
		x, err = sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "cannot sample secret key")
		}
	}
	if x.Sign() <= 0 || x.Cmp(pMinus1) >= 0 {
		return nil, errors.Wrap(internal.ErrMalformedSecKey, "X must lie in [1, P-1)")
	}

	return &ElGamal{
		P:       params.P,
		G:       params.G,
		Y:       numtheory.ModPow(params.G, x, params.P),
		X:       x,
		sampler: sampler,
	}, nil
}

// GenerateElGamal generates a key pair over a random safe prime P of
// modulusLength bits with a generator G of Z_P*.
// adapted from https://github.com/dlitz/pycrypto/blob/master/lib/Crypto/PublicKey/ElGamal.py
func GenerateElGamal(modulusLength int) (*ElGamal, error) {
	p, err := safePrime(modulusLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate safe prime")
	}
	// q = (p - 1) / 2
	q := new(big.Int).Rsh(p, 1)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	sampler := sample.NewUniformRange(big.NewInt(3), p)

	var g *big.Int
	for {
		g, err = sampler.Sample()
		if err != nil {
			return nil, err
		}

		// check if g is a generator of Z_p*
		if new(big.Int).Exp(g, q, p).Cmp(big.NewInt(1)) == 0 {
			continue
		}
		if new(big.Int).Exp(g, big.NewInt(2), p).Cmp(big.NewInt(1)) == 0 {
			continue
		}

		// additional checks to avoid some known attacks
		if new(big.Int).Mod(pMinus1, g).Sign() == 0 {
			continue
		}
		_, gInv, ok := numtheory.GCDInverse(g, p)
		if !ok || new(big.Int).Mod(pMinus1, gInv).Sign() == 0 {
			continue
		}

		break
	}

	return NewElGamal(&ElGamalParams{P: p, G: g})
}

// safePrime returns a prime p = 2q + 1 of the given bit length with q
// prime as well.
func safePrime(bits int) (*big.Int, error) {
	if bits < 3 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "cannot generate a %d-bit safe prime", bits)
	}

	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, err
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big.NewInt(1))
		if p.BitLen() == bits && p.ProbablyPrime(20) {
			return p, nil
		}
	}
}

// ephemeral returns k if it is set, or a fresh sample otherwise.
func (e *ElGamal) ephemeral(k *big.Int) (*big.Int, error) {
	if k != nil {
		return k, nil
	}
	k, err := e.sampler.Sample()
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample ephemeral key")
	}
	return k, nil
}

// Encrypt encrypts m in [1, P) as (G^k, m*Y^k) mod P. If k is nil, a
// random ephemeral key is used.
func (e *ElGamal) Encrypt(m, k *big.Int) (c1, c2 *big.Int, err error) {
	if m.Sign() <= 0 || m.Cmp(e.P) >= 0 {
		return nil, nil, errors.Wrap(internal.ErrMalformedInput, "message must lie in [1, P)")
	}
	k, err = e.ephemeral(k)
	if err != nil {
		return nil, nil, err
	}

	c1 = numtheory.ModPow(e.G, k, e.P)
	c2 = numtheory.ModPow(e.Y, k, e.P)
	c2.Mul(c2, m).Mod(c2, e.P)

	return c1, c2, nil
}

// Decrypt recovers m = c2 * c1^(-X) mod P.
func (e *ElGamal) Decrypt(c1, c2 *big.Int) (*big.Int, error) {
	mask, err := internal.ModExp(c1, new(big.Int).Neg(e.X), e.P)
	if err != nil {
		return nil, errors.Wrap(internal.ErrMalformedInput, "ciphertext is not invertible")
	}

	return mask.Mul(mask, c2).Mod(mask, e.P), nil
}

// Sign signs m with ephemeral key k, which must be coprime to P-1.
// It returns r = G^k mod P and s = (m - X*r) * k^(-1) mod (P-1). If k
// is nil, ephemeral keys are sampled until one is coprime to P-1.
func (e *ElGamal) Sign(m, k *big.Int) (r, s *big.Int, err error) {
	pMinus1 := new(big.Int).Sub(e.P, big.NewInt(1))

	var kInv *big.Int
	if k != nil {
		kInv, err = numtheory.ModInverse(k, pMinus1)
		if err != nil {
			return nil, nil, errors.Wrap(err, "ephemeral key must be coprime to P-1")
		}
	} else {
		for kInv == nil {
			if k, err = e.ephemeral(nil); err != nil {
				return nil, nil, err
			}
			_, kInv, _ = numtheory.GCDInverse(k, pMinus1)
		}
	}

	r = numtheory.ModPow(e.G, k, e.P)
	s = new(big.Int).Mul(e.X, r)
	s.Sub(m, s).Mod(s, pMinus1)
	s.Mul(s, kInv).Mod(s, pMinus1)

	return r, s, nil
}

// Verify reports whether (r, s) is a signature of m, that is whether
// Y^r * r^s = G^m (mod P).
func (e *ElGamal) Verify(r, s, m *big.Int) bool {
	if r.Sign() <= 0 || r.Cmp(e.P) >= 0 {
		return false
	}

	left := numtheory.ModPow(e.Y, r, e.P)
	left.Mul(left, numtheory.ModPow(r, s, e.P)).Mod(left, e.P)
	right := numtheory.ModPow(e.G, m, e.P)

	return left.Cmp(right) == 0
}
