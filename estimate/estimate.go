//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package estimate recovers population parameters from randomized
// observations.
//
// The estimators only ever see perturbed values. They invert the known
// expectation relation of the mechanism that produced the observations;
// they never undo, and cannot undo, any individual perturbation.
package estimate

import (
	"errors"
	"fmt"

	"github.com/randresp/randresp/checks"
)

// ErrEmptySample is returned when an estimate is requested over zero
// observations. The mean of an empty sample is undefined, so the
// estimators report this condition instead of producing NaN.
var ErrEmptySample = errors.New("cannot estimate from an empty sample")

// Expectation relation of the two-coin binary response mechanism:
// E[y|x] = responseSlope*x + responseOffset.
const (
	responseSlope  = 0.5
	responseOffset = 0.25
)

// BernoulliP returns the bias-corrected estimate of the Bernoulli
// parameter p underlying a sample of binary responses:
//
//	estimated_p = (mean(sample) − 1/4) / (1/2)
//
// The estimate is unbiased but not clamped: for small samples it may
// legitimately fall outside [0, 1], and callers that need a probability
// must decide for themselves how to treat such values.
func BernoulliP(sample []int64) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("BernoulliP: %w", ErrEmptySample)
	}
	var ones int64
	for i, b := range sample {
		if err := checks.CheckBit(b, fmt.Sprintf("sample[%d]", i)); err != nil {
			return 0, err
		}
		ones += b
	}
	mean := float64(ones) / float64(len(sample))
	return (mean - responseOffset) / responseSlope, nil
}

// GaussianMean returns the estimate of the mean μ underlying a sample of
// chain-perturbed reals. Additive zero-mean noise does not bias the mean,
// so the arithmetic mean needs no correction term; the noise only
// inflates the estimator's variance, which shrinks as 1/N.
func GaussianMean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("GaussianMean: %w", ErrEmptySample)
	}
	var sum float64
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample)), nil
}
