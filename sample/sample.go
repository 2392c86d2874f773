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

// Package sample draws true values from the distributions whose parameters
// the library later estimates from randomized observations.
//
// True values exist only to be fed into a mechanism; estimators never see
// them.
package sample

import (
	"github.com/randresp/randresp/checks"
	"github.com/randresp/randresp/rand"
)

// Bernoulli returns n independent draws from a Bernoulli(p) distribution
// as 0/1 bits.
func Bernoulli(src *rand.Source, p float64, n int) ([]int64, error) {
	if err := checks.CheckProbability(p, "Bernoulli (p)"); err != nil {
		return nil, err
	}
	if err := checks.CheckSampleSize(n); err != nil {
		return nil, err
	}
	bits := make([]int64, n)
	for i := range bits {
		// Uniform is supported on (0, 1], so the draw is 1 with
		// probability exactly p, including at p = 0 and p = 1.
		if src.Uniform() <= p {
			bits[i] = 1
		}
	}
	return bits, nil
}

// Gaussian returns n independent draws from a Normal(mu, sigma)
// distribution.
func Gaussian(src *rand.Source, mu, sigma float64, n int) ([]float64, error) {
	if err := checks.CheckNoiseScale(sigma, "Gaussian (sigma)"); err != nil {
		return nil, err
	}
	if err := checks.CheckSampleSize(n); err != nil {
		return nil, err
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = mu + sigma*src.Normal()
	}
	return values, nil
}
