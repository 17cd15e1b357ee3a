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

package caratheodory

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/probelab/gomc/data"
	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

// weightSumTolerance bounds the deviation of the weight sum from 1.
const weightSumTolerance = 1e-9

// PointSet is a finite set of points in R^n together with a
// probability weight for each point. Points and weights are fixed at
// creation.
type PointSet struct {
	points  data.Matrix
	weights []float64
}

// NewPointSet returns a PointSet over the given points and weights.
// It returns an error if the set is empty, the points differ in
// dimension, the number of weights differs from the number of points,
// or the weights are not a probability vector (non-negative, summing
// to 1 within a small tolerance).
func NewPointSet(points []data.Vector, weights []float64) (*PointSet, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(internal.ErrEmptySet, "at least one point is needed")
	}

	mat, err := data.NewMatrix(points)
	if err != nil {
		return nil, err
	}
	if len(weights) != mat.Rows() {
		return nil, errors.Wrapf(internal.ErrDimensionMismatch, "%d points, %d weights", mat.Rows(), len(weights))
	}
	for _, w := range weights {
		if w < 0 {
			return nil, errors.Wrapf(internal.ErrMalformedWeights, "negative weight %v", w)
		}
	}
	if s := floats.Sum(weights); math.Abs(s-1) > weightSumTolerance {
		return nil, errors.Wrapf(internal.ErrMalformedWeights, "weights sum to %v", s)
	}

	w := make([]float64, len(weights))
	copy(w, weights)

	return &PointSet{
		points:  mat,
		weights: w,
	}, nil
}

// NewRandomlyWeightedPointSet returns a PointSet over the given
// points with weights drawn from the provided simplex sampler.
func NewRandomlyWeightedPointSet(points []data.Vector, s sample.SimplexSampler) (*PointSet, error) {
	weights, err := s.Sample(len(points))
	if err != nil {
		return nil, errors.Wrap(err, "error sampling weights")
	}

	return NewPointSet(points, weights)
}

// Len returns the number of points in the set.
func (p *PointSet) Len() int {
	return p.points.Rows()
}

// Dim returns the dimension of the ambient space.
func (p *PointSet) Dim() int {
	return p.points.Cols()
}

// Points returns a copy of the points of the set.
func (p *PointSet) Points() data.Matrix {
	return p.points.Copy()
}

// Weights returns a copy of the weights of the set.
func (p *PointSet) Weights() []float64 {
	w := make([]float64, len(p.weights))
	copy(w, p.weights)

	return w
}

// Target returns the convex combination of the set's points with the
// set's weights. The returned point lies in the convex hull of the
// set by construction.
func (p *PointSet) Target() data.Vector {
	target := data.NewConstantVector(p.Dim(), 0)
	for i, pt := range p.points {
		floats.AddScaled(target, p.weights[i], pt)
	}

	return target
}

// Diameter returns the largest Euclidean distance between two points
// of the set.
func (p *PointSet) Diameter() float64 {
	return p.points.Diameter()
}
