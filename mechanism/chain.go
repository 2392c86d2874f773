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

package mechanism

import (
	"math"
	"sync"

	"github.com/randresp/randresp/checks"
	"github.com/randresp/randresp/rand"
)

// GaussianChain perturbs real values by folding them through an ordered
// sequence of additive Gaussian noise stages: stage i adds a fresh draw
// from Normal(0, σᵢ), independent of all other stages and of the input.
//
// The composed perturbation is itself Normal with mean 0 and scale
// √(σ₁²+…+σₖ²), so chaining stages never biases the value, it only
// widens its spread.
type GaussianChain struct {
	src    *rand.Source
	sigmas []float64
}

// NewGaussianChain returns a GaussianChain with the given stage scales,
// drawing its noise from src. At least one stage is required and every
// stage scale must be strictly positive and finite.
func NewGaussianChain(src *rand.Source, sigmas ...float64) (*GaussianChain, error) {
	if err := checks.CheckNoiseScales(sigmas, "StageScales"); err != nil {
		return nil, err
	}
	scales := make([]float64, len(sigmas))
	copy(scales, sigmas)
	return &GaussianChain{src: src, sigmas: scales}, nil
}

// Stages returns the number of noise stages in the chain.
func (m *GaussianChain) Stages() int {
	return len(m.sigmas)
}

// TotalScale returns the scale √(σ₁²+…+σₖ²) of the composed perturbation.
func (m *GaussianChain) TotalScale() float64 {
	var sumOfSquares float64
	for _, sigma := range m.sigmas {
		sumOfSquares += sigma * sigma
	}
	return math.Sqrt(sumOfSquares)
}

// Float64 perturbs a single true value, consuming one noise draw per
// stage. Calls are independent of each other.
func (m *GaussianChain) Float64(x float64) float64 {
	z := x
	for _, sigma := range m.sigmas {
		z += sigma * m.src.Normal()
	}
	return z
}

// Float64s perturbs every value of xs independently and returns the
// results. The input slice is not modified.
func (m *GaussianChain) Float64s(xs []float64) []float64 {
	zs := make([]float64, len(xs))
	for i, x := range xs {
		zs[i] = m.Float64(x)
	}
	return zs
}

// Float64sParallel perturbs xs like Float64s, splitting the batch across
// the given number of workers. Each worker perturbs its chunk with a
// forked source, so draws stay independent without any shared mutable
// state. Results keep the input order.
func (m *GaussianChain) Float64sParallel(xs []float64, workers int) []float64 {
	if workers <= 1 || len(xs) <= workers {
		return m.Float64s(xs)
	}
	zs := make([]float64, len(xs))
	chunk := (len(xs) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(xs); lo += chunk {
		hi := lo + chunk
		if hi > len(xs) {
			hi = len(xs)
		}
		worker := &GaussianChain{src: m.src.Fork(), sigmas: m.sigmas}
		wg.Add(1)
		go func(lo, hi int, worker *GaussianChain) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				zs[i] = worker.Float64(xs[i])
			}
		}(lo, hi, worker)
	}
	wg.Wait()
	return zs
}
