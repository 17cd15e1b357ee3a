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

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the normal (Gaussian)
// probability distribution.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of the Normal sampler.
// It accepts the mean and the standard deviation of the
// distribution, and the random source draws are taken from.
func NewNormal(mu, sigma float64, src rand.Source) *Normal {
	return &Normal{
		dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: src},
	}
}

func (n *Normal) Sample() (float64, error) {
	return n.dist.Rand(), nil
}
