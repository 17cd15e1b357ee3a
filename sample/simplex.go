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

package sample

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probelab/gomc/internal"
)

// SimplexSampler is an interface for sampling a random point of the
// probability simplex: m non-negative weights summing to 1.
type SimplexSampler interface {
	Sample(m int) ([]float64, error)
}

// StickBreaking samples simplex points by visiting the coordinates in
// a random order and breaking off a uniform piece of the remaining
// mass for each but the last one, which receives the leftover.
//
// The resulting distribution is not uniform over the simplex: the
// coordinates visited early receive larger weights on average. Use
// NormalizedExponential when uniform coverage of the simplex matters.
type StickBreaking struct {
	rand *rand.Rand
}

// NewStickBreaking returns an instance of the StickBreaking sampler
// drawing randomness from src.
func NewStickBreaking(src rand.Source) *StickBreaking {
	return &StickBreaking{
		rand: rand.New(src),
	}
}

// Sample returns m non-negative weights summing to 1.
// It returns an error if m is not positive.
func (s *StickBreaking) Sample(m int) ([]float64, error) {
	if m < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveCount, "m %d", m)
	}

	weights := make([]float64, m)
	perm := s.rand.Perm(m)
	remaining := 1.0
	for _, i := range perm[:m-1] {
		w := remaining * s.rand.Float64()
		weights[i] = w
		remaining -= w
	}
	weights[perm[m-1]] = remaining

	return weights, nil
}

// NormalizedExponential samples simplex points by normalizing m
// independent Exp(1) draws by their sum. The resulting distribution
// is uniform over the simplex.
type NormalizedExponential struct {
	dist distuv.Exponential
}

// NewNormalizedExponential returns an instance of the
// NormalizedExponential sampler drawing randomness from src.
func NewNormalizedExponential(src rand.Source) *NormalizedExponential {
	return &NormalizedExponential{
		dist: distuv.Exponential{Rate: 1, Src: src},
	}
}

// Sample returns m non-negative weights summing to 1.
// It returns an error if m is not positive.
func (n *NormalizedExponential) Sample(m int) ([]float64, error) {
	if m < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveCount, "m %d", m)
	}

	weights := make([]float64, m)
	for i := range weights {
		weights[i] = n.dist.Rand()
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return weights, nil
}
