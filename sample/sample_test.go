/*
 * Copyright (c) 2021 ProbeLab
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

package sample_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

func TestSample_ParseDistribution(t *testing.T) {
	d, err := sample.ParseDistribution("standard_normal")
	assert.NoError(t, err)
	assert.Equal(t, sample.StandardNormal, d)
	assert.Equal(t, "standard_normal", d.String())

	d, err = sample.ParseDistribution("wald")
	assert.NoError(t, err)
	assert.Equal(t, sample.Wald, d)
	assert.Equal(t, "wald", d.String())

	_, err = sample.ParseDistribution("cauchy")
	assert.ErrorIs(t, err, internal.ErrUnsupportedDistribution)

	_, err = sample.New(sample.Distribution(42), rand.NewPCG(1, 1))
	assert.ErrorIs(t, err, internal.ErrUnsupportedDistribution)
}

func TestSample_Normal(t *testing.T) {
	c := sample.NewNormal(0, 10, rand.NewPCG(1, 2))
	vec := make([]float64, 10000)
	for i := range vec {
		vec[i], _ = c.Sample()
	}
	me := stat.Mean(vec, nil)
	v := stat.Variance(vec, nil)
	// me should be around 0 and v should be around 100
	assert.True(t, me < 0.5, "mean value of the normal distribution is too big")
	assert.True(t, me > -0.5, "mean value of the normal distribution is too small")
	assert.True(t, v < 110, "variance of the normal distribution is too big")
	assert.True(t, v > 90, "variance of the normal distribution is too small")
}

func TestSample_Wald(t *testing.T) {
	c := sample.NewWald(1, 1, rand.NewPCG(2, 3))
	vec := make([]float64, 10000)
	for i := range vec {
		vec[i], _ = c.Sample()
		assert.True(t, vec[i] > 0, "Wald samples should be positive")
	}
	me := stat.Mean(vec, nil)
	v := stat.Variance(vec, nil)
	// the canonical Wald distribution has mean 1 and variance 1
	assert.InDelta(t, 1, me, 0.1, "mean value of the Wald distribution should be around 1")
	assert.InDelta(t, 1, v, 0.25, "variance of the Wald distribution should be around 1")
}

func TestSample_Uniform(t *testing.T) {
	c := sample.NewUniform(100, rand.NewPCG(3, 4))
	vec := make([]float64, 10000)
	for i := range vec {
		vec[i], _ = c.Sample()
		assert.True(t, vec[i] >= 0, "uniform samples should be above the lower bound")
		assert.True(t, vec[i] < 100, "uniform samples should be below the upper bound")
	}
	assert.InDelta(t, 50, stat.Mean(vec, nil), 2, "mean value of the uniform distribution should be around 50")
}

func TestSample_Affine(t *testing.T) {
	base := sample.NewNormal(0, 1, rand.NewPCG(4, 5))
	c, err := sample.NewAffine(base, 10, 4)
	assert.NoError(t, err)

	vec := make([]float64, 10000)
	for i := range vec {
		vec[i], err = c.Sample()
		assert.NoError(t, err)
	}
	assert.InDelta(t, 10, stat.Mean(vec, nil), 0.1, "affine draws should attain the target mean")
	assert.InDelta(t, 4, stat.Variance(vec, nil), 0.3, "affine draws should attain the target variance")

	_, err = sample.NewAffine(base, 10, -1)
	assert.ErrorIs(t, err, internal.ErrNegativeVariance)
}

func TestSample_Deterministic(t *testing.T) {
	for _, d := range []sample.Distribution{sample.StandardNormal, sample.Wald} {
		s1, err := sample.New(d, rand.NewPCG(7, 13))
		assert.NoError(t, err)
		s2, err := sample.New(d, rand.NewPCG(7, 13))
		assert.NoError(t, err)

		for i := 0; i < 100; i++ {
			x1, _ := s1.Sample()
			x2, _ := s2.Sample()
			assert.Equal(t, x1, x2, "draws with the same seed should be identical")
		}
	}
}
