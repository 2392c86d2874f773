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

package sample

import (
	"math"
	"testing"

	"github.com/randresp/randresp/rand"
	"github.com/randresp/randresp/stattestutils"
)

func TestBernoulliArgumentChecks(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		p       float64
		n       int
		wantErr bool
	}{
		{"valid arguments", 0.42, 100, false},
		{"zero sample size", 0.42, 0, false},
		{"negative probability", -0.1, 100, true},
		{"probability larger than one", 1.1, 100, true},
		{"probability is NaN", math.NaN(), 100, true},
		{"negative sample size", 0.42, -1, true},
	} {
		_, err := Bernoulli(rand.NewSource(1), tc.p, tc.n)
		if (err != nil) != tc.wantErr {
			t.Errorf("Bernoulli: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestGaussianArgumentChecks(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		mu      float64
		sigma   float64
		n       int
		wantErr bool
	}{
		{"valid arguments", 42, 10, 100, false},
		{"zero sample size", 42, 10, 0, false},
		{"negative mean", -42, 10, 100, false},
		{"zero sigma", 42, 0, 100, true},
		{"negative sigma", 42, -10, 100, true},
		{"sigma is NaN", 42, math.NaN(), 100, true},
		{"negative sample size", 42, 10, -1, true},
	} {
		_, err := Gaussian(rand.NewSource(1), tc.mu, tc.sigma, tc.n)
		if (err != nil) != tc.wantErr {
			t.Errorf("Gaussian: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestBernoulliDegenerateProbabilities(t *testing.T) {
	src := rand.NewSource(1)
	zeros, err := Bernoulli(src, 0, 1000)
	if err != nil {
		t.Fatalf("Couldn't sample: %v", err)
	}
	for _, b := range zeros {
		if b != 0 {
			t.Fatalf("Bernoulli(0): got a draw of %d, want all draws to be 0", b)
		}
	}
	ones, err := Bernoulli(src, 1, 1000)
	if err != nil {
		t.Fatalf("Couldn't sample: %v", err)
	}
	for _, b := range ones {
		if b != 1 {
			t.Fatalf("Bernoulli(1): got a draw of %d, want all draws to be 1", b)
		}
	}
}

func TestBernoulliFrequency(t *testing.T) {
	const numberOfSamples = 200000
	for _, p := range []float64{0.1, 0.42, 0.5, 0.9} {
		bits, err := Bernoulli(rand.NewSource(42), p, numberOfSamples)
		if err != nil {
			t.Fatalf("Couldn't sample: %v", err)
		}
		var ones int64
		for _, b := range bits {
			ones += b
		}
		freq := float64(ones) / numberOfSamples
		// The frequency of ones is approximately Gaussian with a standard
		// deviation of at most 0.5 / √numberOfSamples ≈ 0.0012, so a
		// tolerance of 0.01 comfortably bounds statistical flakiness.
		if math.Abs(freq-p) > 0.01 {
			t.Errorf("Bernoulli(%f): got a frequency of ones of %f, want %f within a tolerance of 0.01", p, freq, p)
		}
	}
}

func TestGaussianStatistics(t *testing.T) {
	const numberOfSamples = 200000
	for _, tc := range []struct {
		mu    float64
		sigma float64
	}{
		{0, 1},
		{42, 10},
		{-7, 0.5},
	} {
		values, err := Gaussian(rand.NewSource(42), tc.mu, tc.sigma, numberOfSamples)
		if err != nil {
			t.Fatalf("Couldn't sample: %v", err)
		}
		mean := stattestutils.SampleMean(values)
		variance := stattestutils.SampleVariance(values)
		if math.Abs(mean-tc.mu) > 0.05*tc.sigma {
			t.Errorf("Gaussian(%f, %f): got sample mean %f, want %f", tc.mu, tc.sigma, mean, tc.mu)
		}
		wantVariance := tc.sigma * tc.sigma
		if math.Abs(variance-wantVariance) > 0.05*wantVariance {
			t.Errorf("Gaussian(%f, %f): got sample variance %f, want %f", tc.mu, tc.sigma, variance, wantVariance)
		}
	}
}
