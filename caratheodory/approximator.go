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
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probelab/gomc/data"
	"github.com/probelab/gomc/internal"
)

// Trial is the outcome of a single repetition of the experiment:
// k points drawn from the set with replacement, their componentwise
// average, and the squared Euclidean distance of that average to the
// target.
type Trial struct {
	Drawn           data.Matrix
	EmpiricalMean   data.Vector
	SquaredDistance float64
}

// ApproximatorParams represents configuration parameters for an
// Approximator instance.
type ApproximatorParams struct {
	// TrialCount is the number of independent repetitions.
	TrialCount int
	// K is the number of points averaged in each repetition.
	K int
}

// Approximator measures how well averages of K weighted draws from a
// finite point set approximate a target point in the set's convex
// hull. The expected squared distance is bounded by Diameter²/K; see
// DistanceBound.
//
// Hull membership of the target is the caller's responsibility and is
// not verified; PointSet.Target yields a target for which it holds by
// construction.
type Approximator struct {
	Params *ApproximatorParams

	set    *PointSet
	target data.Vector
	draw   distuv.Categorical
}

// NewApproximator configures a new instance of the approximator.
// It accepts the point set draws are taken from, the target point the
// empirical means are measured against, the number of repetitions,
// the number of points averaged per repetition, and the random source
// draws are taken from.
//
// It returns an error if trialCount or k is not positive, or if the
// target's dimension differs from the point set's.
func NewApproximator(set *PointSet, target data.Vector, trialCount, k int, src rand.Source) (*Approximator, error) {
	if trialCount < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveCount, "trial count %d", trialCount)
	}
	if k < 1 {
		return nil, errors.Wrapf(internal.ErrNonPositiveCount, "k %d", k)
	}
	if len(target) != set.Dim() {
		return nil, errors.Wrapf(internal.ErrDimensionMismatch, "target has %d coordinates, points have %d", len(target), set.Dim())
	}

	return &Approximator{
		Params: &ApproximatorParams{
			TrialCount: trialCount,
			K:          k,
		},
		set:    set,
		target: target.Copy(),
		draw:   distuv.NewCategorical(set.Weights(), src),
	}, nil
}

// Result aggregates an approximation run: the best (minimal squared
// distance) trial, its distance, and the distances of all trials in
// repetition order, for downstream distributional analysis.
type Result struct {
	Best         Trial
	BestDistance float64
	Distances    []float64
}

// Approximate runs TrialCount repetitions and returns the aggregated
// result. The best trial is updated only on strict improvement, in
// repetition order.
func (a *Approximator) Approximate() (*Result, error) {
	res := &Result{
		BestDistance: math.Inf(1),
		Distances:    make([]float64, a.Params.TrialCount),
	}

	for t := 0; t < a.Params.TrialCount; t++ {
		trial, err := a.trial()
		if err != nil {
			return nil, err
		}

		res.Distances[t] = trial.SquaredDistance
		if trial.SquaredDistance < res.BestDistance {
			res.Best = *trial
			res.BestDistance = trial.SquaredDistance
		}
	}

	return res, nil
}

// trial draws K points with replacement, with the set's weights as
// probabilities, and measures their average against the target.
func (a *Approximator) trial() (*Trial, error) {
	drawn := make([]data.Vector, a.Params.K)
	for i := range drawn {
		drawn[i] = a.set.points[int(a.draw.Rand())].Copy()
	}

	mat, err := data.NewMatrix(drawn)
	if err != nil {
		return nil, err
	}
	mean, err := mat.MeanVector()
	if err != nil {
		return nil, err
	}
	dist, err := mean.DistanceSquared(a.target)
	if err != nil {
		return nil, err
	}

	return &Trial{
		Drawn:           mat,
		EmpiricalMean:   mean,
		SquaredDistance: dist,
	}, nil
}

// DistanceBound returns the approximate Caratheodory bound
// Diameter²/k on the expected squared distance between the empirical
// mean of k weighted draws and the target.
// It returns an error if k is not positive.
func DistanceBound(set *PointSet, k int) (float64, error) {
	if k < 1 {
		return 0, errors.Wrapf(internal.ErrNonPositiveCount, "k %d", k)
	}

	d := set.Diameter()

	return d * d / float64(k), nil
}
