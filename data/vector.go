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

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

// Vector wraps a slice of float64 coordinates.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error if len is not positive or in case of sampling
// failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveDimension, "length %d", len)
	}

	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// Vectors must have the same number of elements.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// Vectors must have the same number of elements.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)

	return sub
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrap(internal.ErrDimensionMismatch, "vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Mean returns the arithmetic mean of the vector's coordinates.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// NormSquared returns the squared Euclidean norm of the vector,
// the sum of its squared coordinates. The coordinates are accumulated
// in order, so the result is exact in the sense of sequential
// floating-point summation.
func (v Vector) NormSquared() float64 {
	normSq := 0.0
	for _, c := range v {
		normSq += c * c
	}

	return normSq
}

// DistanceSquared returns the squared Euclidean distance between
// vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) DistanceSquared(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrap(internal.ErrDimensionMismatch, "vectors should be of same length")
	}

	d := floats.Distance(v, other, 2)

	return d * d, nil
}
