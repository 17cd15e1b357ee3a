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

// Package concentration implements Monte-Carlo estimation of the
// expected squared Euclidean norm of random vectors.
//
// A random vector has independent identically distributed coordinates
// drawn from a chosen base distribution and shifted to a target mean
// and variance. For such vectors the identity
//
//	E‖X‖² = dim·Var + dim·mean²
//
// holds whenever the coordinate distribution has a finite second
// moment. The Estimator approximates the left-hand side by averaging
// squared norms over a batch of independent draws, which makes the
// identity empirically checkable for any supported distribution.
package concentration
