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

package estimate

import (
	"fmt"
	"math"

	"github.com/randresp/randresp/checks"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceInterval holds lower and upper bounds as float64 for the
// confidence interval of an estimate.
type ConfidenceInterval struct {
	LowerBound, UpperBound float64
}

// BernoulliPConfidenceInterval computes a normal-approximation interval
// that contains the true Bernoulli parameter p with probability roughly
// 1 - alpha, given the corrected estimate obtained from n binary
// responses.
//
// The responses are Bernoulli(q) with q = p/2 + 1/4, so the corrected
// estimator has variance q(1-q) / (n·(1/2)²); q is recovered from the
// estimate itself.
func BernoulliPConfidenceInterval(estimatedP float64, n int64, alpha float64) (ConfidenceInterval, error) {
	if err := checks.CheckAlpha(alpha); err != nil {
		return ConfidenceInterval{}, err
	}
	if n <= 0 {
		return ConfidenceInterval{}, fmt.Errorf("BernoulliPConfidenceInterval: sample size is %d, must be strictly positive", n)
	}
	q := responseSlope*estimatedP + responseOffset
	// The response frequency q always lies in [0, 1] when the estimate was
	// produced by BernoulliP; guard the variance term against callers
	// passing values from elsewhere.
	q = math.Max(0, math.Min(1, q))
	variance := q * (1 - q) / (float64(n) * responseSlope * responseSlope)
	halfWidth := distuv.UnitNormal.Quantile(1-alpha/2) * math.Sqrt(variance)
	return ConfidenceInterval{
		LowerBound: estimatedP - halfWidth,
		UpperBound: estimatedP + halfWidth,
	}, nil
}

// GaussianMeanConfidenceInterval computes an interval that contains the
// true mean μ with probability 1 - alpha, given the estimate obtained
// from n observations and the total scale √(σ₀²+σ₁²+…+σₖ²) combining the
// data-generating scale with the chain's composed noise scale.
func GaussianMeanConfidenceInterval(estimatedMu, totalScale float64, n int64, alpha float64) (ConfidenceInterval, error) {
	if err := checks.CheckAlpha(alpha); err != nil {
		return ConfidenceInterval{}, err
	}
	if err := checks.CheckNoiseScale(totalScale, "TotalScale"); err != nil {
		return ConfidenceInterval{}, err
	}
	if n <= 0 {
		return ConfidenceInterval{}, fmt.Errorf("GaussianMeanConfidenceInterval: sample size is %d, must be strictly positive", n)
	}
	halfWidth := distuv.UnitNormal.Quantile(1-alpha/2) * totalScale / math.Sqrt(float64(n))
	return ConfidenceInterval{
		LowerBound: estimatedMu - halfWidth,
		UpperBound: estimatedMu + halfWidth,
	}, nil
}
