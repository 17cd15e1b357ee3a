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

package concentration

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/probelab/gomc/data"
	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

// SamplerParams represents configuration parameters for a Sampler
// instance.
type SamplerParams struct {
	// Dim is the number of coordinates of sampled vectors.
	Dim int
	// Dist is the base distribution the coordinates are drawn from.
	Dist sample.Distribution
	// Mean is the target mean of each coordinate.
	Mean float64
	// Variance is the target variance of each coordinate.
	Variance float64
}

// Sampler draws random vectors whose coordinates are independent
// draws from the base distribution in canonical form, shifted and
// scaled to the target mean and variance.
type Sampler struct {
	Params *SamplerParams

	coord sample.Sampler
}

// NewSampler configures a new instance of the sampler. It accepts the
// dimension of sampled vectors, the base distribution, the target
// mean and variance of the coordinates, and the random source draws
// are taken from.
//
// It returns an error if the dimension is not positive, the variance
// is negative, or the distribution is not supported.
func NewSampler(dim int, dist sample.Distribution, mean, variance float64, src rand.Source) (*Sampler, error) {
	if dim < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveDimension, "dim %d", dim)
	}

	base, err := sample.New(dist, src)
	if err != nil {
		return nil, err
	}
	coord, err := sample.NewAffine(base, mean, variance)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		Params: &SamplerParams{
			Dim:      dim,
			Dist:     dist,
			Mean:     mean,
			Variance: variance,
		},
		coord: coord,
	}, nil
}

// Sample draws one random vector. The returned vector always has
// exactly Dim coordinates.
func (s *Sampler) Sample() (data.Vector, error) {
	vec, err := data.NewRandomVector(s.Params.Dim, s.coord)
	if err != nil {
		return nil, errors.Wrap(err, "error sampling random vector")
	}

	return vec, nil
}
