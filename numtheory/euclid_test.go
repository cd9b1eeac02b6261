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

package numtheory

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGCDInverse(t *testing.T) {
	gcd, inv, ok := GCDInverse(big.NewInt(10), big.NewInt(11))
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(1), gcd)
	assert.Equal(t, big.NewInt(10), inv, "10 * 10 = 100 = 1 mod 11")

	gcd, inv, ok = GCDInverse(big.NewInt(12), big.NewInt(18))
	assert.False(t, ok)
	assert.Nil(t, inv)
	assert.Equal(t, big.NewInt(6), gcd)
}

func TestGCDInverseCoprime(t *testing.T) {
	n := big.NewInt(360)
	for a := int64(1); a < 360; a++ {
		aBig := big.NewInt(a)
		_, inv, ok := GCDInverse(aBig, n)
		if !IsRelativelyPrime(aBig, n) {
			assert.False(t, ok, "%d should have no inverse modulo 360", a)
			continue
		}
		if !assert.True(t, ok, "%d should have an inverse modulo 360", a) {
			continue
		}
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(n) < 0, "inverse should be reduced")
		prod := new(big.Int).Mod(new(big.Int).Mul(aBig, inv), n)
		assert.Equal(t, big.NewInt(1), prod)
	}
}

func TestGCDInverseNegative(t *testing.T) {
	_, inv, ok := GCDInverse(big.NewInt(-3), big.NewInt(7))
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(2), inv, "-3 * 2 = -6 = 1 mod 7")
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(big.NewInt(3), big.NewInt(100))
	if err != nil {
		t.Fatalf("Error in ModInverse: %v", err)
	}
	assert.Equal(t, big.NewInt(67), inv)

	_, err = ModInverse(big.NewInt(4), big.NewInt(100))
	assert.True(t, errors.Is(err, ErrNoInverse))
}

func TestIsRelativelyPrime(t *testing.T) {
	tests := []struct {
		a, b int64
		want bool
	}{
		{4, 9, true},
		{9, 4, true},
		{12, 18, false},
		{1, 1, true},
		{17, 0, false},
		{1, 0, true},
		{-15, 4, true},
	}

	for _, tt := range tests {
		got := IsRelativelyPrime(big.NewInt(tt.a), big.NewInt(tt.b))
		assert.Equal(t, tt.want, got, "gcd(%d, %d)", tt.a, tt.b)
	}
}
