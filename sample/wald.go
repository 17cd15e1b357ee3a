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
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Wald samples random values from the Wald (inverse Gaussian)
// probability distribution with location mu and shape lambda.
// The distribution has mean mu and variance mu^3/lambda.
//
// Sampling is based on the transformation method of Michael,
// Schucany and Haas, "Generating Random Variates Using
// Transformations with Multiple Roots", The American Statistician
// 30 (1976): a squared standard normal draw is mapped to the smaller
// root of the inverse Gaussian quadratic, and a uniform draw selects
// between the two roots with the correct probability.
type WaldSampler struct {
	mu     float64
	lambda float64
	norm   distuv.Normal
	unif   distuv.Uniform
}

// NewWald returns an instance of the Wald sampler.
// It accepts the location mu and shape lambda of the distribution
// (both must be positive; the canonical form fixes both at 1), and
// the random source draws are taken from.
func NewWald(mu, lambda float64, src rand.Source) *WaldSampler {
	return &WaldSampler{
		mu:     mu,
		lambda: lambda,
		norm:   distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		unif:   distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

func (w *WaldSampler) Sample() (float64, error) {
	n := w.norm.Rand()
	y := n * n
	x := w.mu + (w.mu*w.mu*y)/(2*w.lambda) -
		(w.mu/(2*w.lambda))*math.Sqrt(4*w.mu*w.lambda*y+w.mu*w.mu*y*y)

	if w.unif.Rand() <= w.mu/(w.mu+x) {
		return x, nil
	}

	return w.mu * w.mu / x, nil
}
