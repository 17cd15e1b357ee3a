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

// Package caratheodory implements the sampling experiment behind the
// approximate Caratheodory theorem.
//
// The theorem states that any point x in the convex hull of a finite
// set T can be approximated by the average of k points of T (repeats
// allowed) with squared Euclidean error at most diam(T)²/k,
// independent of the ambient dimension. The probabilistic proof draws
// the k points independently from T with the convex-combination
// weights of x as probabilities, so the empirical mean is an unbiased
// estimate of x with variance bounded by diam(T)²/k.
//
// The Approximator runs that experiment: it repeatedly draws k
// weighted points, averages them, measures the squared distance to
// the target and keeps the best sample seen, so the theorem's bound
// can be checked against the empirical distribution of distances.
package caratheodory
