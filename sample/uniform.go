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

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	dist distuv.Uniform
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values, and the
// random source draws are taken from.
func NewUniformRange(min, max float64, src rand.Source) *UniformRange {
	return &UniformRange{
		dist: distuv.Uniform{Min: min, Max: max, Src: src},
	}
}

func (u *UniformRange) Sample() (float64, error) {
	return u.dist.Rand(), nil
}

// NewUniform returns an instance of the UniformRange sampler over
// the interval [0, max).
func NewUniform(max float64, src rand.Source) *UniformRange {
	return NewUniformRange(0, max, src)
}
