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

	"github.com/probelab/gomc/internal"
	"github.com/probelab/gomc/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.ErrDimensionMismatch, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Copy creates a new matrix with the same values of the entries.
func (m Matrix) Copy() Matrix {
	mat := make(Matrix, m.Rows())
	for i, row := range m {
		mat[i] = row.Copy()
	}

	return mat
}

// MeanVector returns the componentwise average of the matrix's rows.
// It returns an error if the matrix has no rows.
func (m Matrix) MeanVector() (Vector, error) {
	if m.Rows() == 0 {
		return nil, errors.Wrap(internal.ErrEmptySet, "matrix should have at least one row")
	}

	mean := NewConstantVector(m.Cols(), 0)
	for _, row := range m {
		floats.Add(mean, row)
	}
	floats.Scale(1/float64(m.Rows()), mean)

	return mean, nil
}

// Diameter returns the largest Euclidean distance between two rows
// of the matrix. Matrices with fewer than two rows have diameter 0.
func (m Matrix) Diameter() float64 {
	diam := 0.0
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Rows(); j++ {
			if d := floats.Distance(m[i], m[j], 2); d > diam {
				diam = d
			}
		}
	}

	return diam
}
