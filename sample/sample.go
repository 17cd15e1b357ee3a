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

	"github.com/probelab/gomc/internal"
)

// Sampler is an interface for sampling a single random
// float64 value.
type Sampler interface {
	Sample() (float64, error)
}

// Distribution enumerates the probability distributions supported as
// a base for random vector sampling.
type Distribution int

const (
	// StandardNormal is the normal distribution with mean 0 and
	// variance 1.
	StandardNormal Distribution = iota
	// Wald is the inverse Gaussian distribution with shape and
	// location parameters fixed at 1.
	Wald
)

// String returns the canonical name of the distribution.
func (d Distribution) String() string {
	switch d {
	case StandardNormal:
		return "standard_normal"
	case Wald:
		return "wald"
	}

	return "unknown"
}

// ParseDistribution maps a canonical distribution name to its
// Distribution value. It returns an error for any name outside the
// supported set.
func ParseDistribution(name string) (Distribution, error) {
	switch name {
	case "standard_normal":
		return StandardNormal, nil
	case "wald":
		return Wald, nil
	}

	return 0, errors.Wrapf(internal.ErrUnsupportedDistribution, "name %q", name)
}

// New returns a sampler for the canonical form of the given
// distribution, drawing randomness from src. It returns an error if
// the distribution is not supported.
func New(d Distribution, src rand.Source) (Sampler, error) {
	switch d {
	case StandardNormal:
		return NewNormal(0, 1, src), nil
	case Wald:
		return NewWald(1, 1, src), nil
	}

	return nil, errors.Wrapf(internal.ErrUnsupportedDistribution, "distribution %d", d)
}
