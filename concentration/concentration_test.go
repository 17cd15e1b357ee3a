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

package concentration_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probelab/gomc/concentration"
	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

func TestConcentration_SamplerDimension(t *testing.T) {
	s, err := concentration.NewSampler(7, sample.StandardNormal, 2, 3, rand.NewPCG(1, 2))
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		vec, err := s.Sample()
		assert.NoError(t, err)
		assert.Equal(t, 7, len(vec), "sampled vectors should have exactly Dim coordinates")
	}
}

func TestConcentration_InvalidParams(t *testing.T) {
	src := rand.NewPCG(1, 2)

	_, err := concentration.NewSampler(0, sample.StandardNormal, 0, 1, src)
	assert.ErrorIs(t, err, internal.ErrNonPositiveDimension)

	_, err = concentration.NewSampler(5, sample.StandardNormal, 0, -1, src)
	assert.ErrorIs(t, err, internal.ErrNegativeVariance)

	_, err = concentration.NewSampler(5, sample.Distribution(42), 0, 1, src)
	assert.ErrorIs(t, err, internal.ErrUnsupportedDistribution)

	s, err := concentration.NewSampler(5, sample.StandardNormal, 0, 1, src)
	assert.NoError(t, err)
	_, err = concentration.NewEstimator(s).EstimateNormSquared(0)
	assert.ErrorIs(t, err, internal.ErrNonPositiveCount)
}

func TestConcentration_EstimateStandardNormal(t *testing.T) {
	s, err := concentration.NewSampler(5, sample.StandardNormal, 0, 1, rand.NewPCG(42, 1))
	assert.NoError(t, err)

	got, err := concentration.NewEstimator(s).EstimateNormSquared(100000)
	assert.NoError(t, err)

	// E‖X‖² = 5·1 + 5·0² = 5
	assert.InDelta(t, 5, got, 0.1)
	assert.InDelta(t, concentration.ExpectedNormSquared(s.Params), got, 0.1)
}

func TestConcentration_EstimateShiftedNormal(t *testing.T) {
	s, err := concentration.NewSampler(5, sample.StandardNormal, 10, 1, rand.NewPCG(42, 2))
	assert.NoError(t, err)

	got, err := concentration.NewEstimator(s).EstimateNormSquared(100000)
	assert.NoError(t, err)

	// E‖X‖² = 5·1 + 5·10² = 505
	assert.Equal(t, 505.0, concentration.ExpectedNormSquared(s.Params))
	assert.InDelta(t, 505, got, 2)
}

func TestConcentration_EstimateWald(t *testing.T) {
	s, err := concentration.NewSampler(5, sample.Wald, 0, 1, rand.NewPCG(42, 3))
	assert.NoError(t, err)

	got, err := concentration.NewEstimator(s).EstimateNormSquared(100000)
	assert.NoError(t, err)

	// the canonical Wald coordinate has mean 1 and variance 1, so
	// each of the 5 coordinates contributes 1 + 1² to E‖X‖²
	assert.InDelta(t, 10, got, 0.3)
}

func TestConcentration_Deterministic(t *testing.T) {
	estimate := func() float64 {
		s, err := concentration.NewSampler(5, sample.StandardNormal, 1, 2, rand.NewPCG(6, 28))
		assert.NoError(t, err)
		got, err := concentration.NewEstimator(s).EstimateNormSquared(1000)
		assert.NoError(t, err)
		return got
	}

	assert.Equal(t, estimate(), estimate(), "estimates with the same seed should be identical")
}
