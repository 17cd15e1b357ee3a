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
	"math"

	"github.com/pkg/errors"

	"github.com/probelab/gomc/internal"
)

// Affine wraps a base sampler and shifts and scales its draws,
// yielding mean + sqrt(variance) * raw. Applied to a base
// distribution in canonical form (mean 0, variance 1), the draws
// have the requested mean and variance.
type Affine struct {
	base  Sampler
	mean  float64
	scale float64
}

// NewAffine returns an instance of the Affine sampler on top of the
// given base sampler. It returns an error if variance is negative.
func NewAffine(base Sampler, mean, variance float64) (*Affine, error) {
	if variance < 0 {
		return nil, errors.Wrapf(internal.ErrNegativeVariance, "variance %v", variance)
	}

	return &Affine{
		base:  base,
		mean:  mean,
		scale: math.Sqrt(variance),
	}, nil
}

func (a *Affine) Sample() (float64, error) {
	raw, err := a.base.Sample()
	if err != nil {
		return 0, errors.Wrap(err, "error sampling base distribution")
	}

	return a.mean + a.scale*raw, nil
}
