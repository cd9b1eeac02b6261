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

package data

import (
	"math/big"
	"testing"

	"github.com/fentec-project/godlog/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	bound := new(big.Int).Exp(big.NewInt(2), big.NewInt(20), big.NewInt(0))
	sampler := sample.NewUniformRange(big.NewInt(1), bound)

	x := make(Vector, l)
	y := make(Vector, l)
	for i := 0; i < l; i++ {
		var err error
		if x[i], err = sampler.Sample(); err != nil {
			t.Fatalf("Error during random generation: %v", err)
		}
		if y[i], err = sampler.Sample(); err != nil {
			t.Fatalf("Error during random generation: %v", err)
		}
	}

	mul, err := x.Dot(y)
	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	innerProd := big.NewInt(0)
	for i := 0; i < l; i++ {
		innerProd = innerProd.Add(innerProd, new(big.Int).Mul(x[i], y[i]))
	}
	assert.Equal(t, 0, innerProd.Cmp(mul), "inner product should calculate correctly")

	_, err = x.Dot(y[:2])
	assert.Error(t, err, "dot product of vectors of different length should fail")
}

func TestVectorCopy(t *testing.T) {
	v := Vector{big.NewInt(2), big.NewInt(3), big.NewInt(5)}
	c := v.Copy()
	c[0].SetInt64(7)

	assert.Equal(t, big.NewInt(2), v[0], "copy should not share entries")
	assert.Equal(t, "[2 3 5]", v.String())
}
