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
)

// Mean accumulates chain-perturbed reals one at a time and produces the
// same estimate as GaussianMean. It keeps running first and second
// moments via Welford's algorithm, so the sample variance comes for free
// without a second pass.
//
// The result can be requested only once; afterwards the accumulator is
// spent and rejects further use.
//
// Not thread-safe.
type Mean struct {
	count          int64
	mean           float64
	m2             float64
	resultReturned bool
}

// NewMean returns an empty Mean accumulator.
func NewMean() *Mean {
	return &Mean{}
}

// Add records one perturbed observation. NaN observations are rejected:
// a single NaN would poison the mean regardless of every other
// observation.
func (m *Mean) Add(x float64) error {
	if m.resultReturned {
		return fmt.Errorf("Mean.Add: the estimate has already been returned, the accumulator cannot be amended")
	}
	if math.IsNaN(x) {
		return fmt.Errorf("Mean.Add: observation is NaN")
	}
	m.count++
	delta := x - m.mean
	m.mean += delta / float64(m.count)
	m.m2 += delta * (x - m.mean)
	return nil
}

// Count returns the number of observations recorded so far.
func (m *Mean) Count() int64 {
	return m.count
}

// SampleVariance returns the variance of the observations recorded so
// far, or 0 for fewer than two observations.
func (m *Mean) SampleVariance() float64 {
	if m.count < 2 {
		return 0
	}
	return m.m2 / float64(m.count)
}

// Result returns the estimate of the mean over all recorded observations.
// It can be called only once.
func (m *Mean) Result() (float64, error) {
	if m.resultReturned {
		return 0, fmt.Errorf("Mean.Result: the estimate has already been returned, it can only be returned once")
	}
	if m.count == 0 {
		return 0, fmt.Errorf("Mean.Result: %w", ErrEmptySample)
	}
	m.resultReturned = true
	return m.mean, nil
}

// Merge merges m2 into m (i.e., adds to m all observations that were
// added to m2). m2 is consumed by this operation: m2 may not be used
// after it is merged into m.
func (m *Mean) Merge(other *Mean) error {
	if err := checkMergeMean(m, other); err != nil {
		return err
	}
	if other.count == 0 {
		other.resultReturned = true
		return nil
	}
	total := m.count + other.count
	delta := other.mean - m.mean
	m.mean += delta * float64(other.count) / float64(total)
	m.m2 += other.m2 + delta*delta*float64(m.count)*float64(other.count)/float64(total)
	m.count = total
	other.resultReturned = true
	return nil
}

func checkMergeMean(m1, m2 *Mean) error {
	if m1.resultReturned {
		return fmt.Errorf("checkMergeMean: m1 already returned the result, cannot be merged with another Mean instance")
	}
	if m2.resultReturned {
		return fmt.Errorf("checkMergeMean: m2 already returned the result, cannot be merged with another Mean instance")
	}
	return nil
}
