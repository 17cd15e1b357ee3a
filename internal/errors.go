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

package internal

import (
	"errors"
)

// Errors of the invalid-argument family. Constructors wrap them with
// call-site context; callers can still test them with errors.Is.
var ErrNonPositiveDimension = errors.New("dimension should be a positive integer")
var ErrNonPositiveCount = errors.New("count should be a positive integer")
var ErrNegativeVariance = errors.New("variance should be non-negative")
var ErrDimensionMismatch = errors.New("dimensions should match")
var ErrMalformedWeights = errors.New("weights should be non-negative and sum to 1")
var ErrEmptySet = errors.New("point set should not be empty")

// ErrUnsupportedDistribution is returned when a distribution is not
// among the supported ones.
var ErrUnsupportedDistribution = errors.New("unsupported distribution")
