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

	"github.com/randresp/randresp/checks"
)

// Frequency accumulates binary responses one at a time and produces the
// same bias-corrected estimate as BernoulliP. It is useful when responses
// arrive as a stream and keeping the whole sample in memory is not
// worthwhile.
//
// The result can be requested only once; afterwards the accumulator is
// spent and rejects further use.
//
// Not thread-safe.
type Frequency struct {
	ones           int64
	count          int64
	resultReturned bool
}

// NewFrequency returns an empty Frequency accumulator.
func NewFrequency() *Frequency {
	return &Frequency{}
}

// Add records one binary response.
func (f *Frequency) Add(bit int64) error {
	if f.resultReturned {
		return fmt.Errorf("Frequency.Add: the estimate has already been returned, the accumulator cannot be amended")
	}
	if err := checks.CheckBit(bit, "Frequency.Add (bit)"); err != nil {
		return err
	}
	f.ones += bit
	f.count++
	return nil
}

// Count returns the number of responses recorded so far.
func (f *Frequency) Count() int64 {
	return f.count
}

// Result returns the bias-corrected estimate of p over all recorded
// responses. It can be called only once.
func (f *Frequency) Result() (float64, error) {
	if f.resultReturned {
		return 0, fmt.Errorf("Frequency.Result: the estimate has already been returned, it can only be returned once")
	}
	if f.count == 0 {
		return 0, fmt.Errorf("Frequency.Result: %w", ErrEmptySample)
	}
	f.resultReturned = true
	mean := float64(f.ones) / float64(f.count)
	return (mean - responseOffset) / responseSlope, nil
}

// Merge merges f2 into f (i.e., adds to f all responses that were added
// to f2). f2 is consumed by this operation: f2 may not be used after it
// is merged into f.
func (f *Frequency) Merge(f2 *Frequency) error {
	if err := checkMergeFrequency(f, f2); err != nil {
		return err
	}
	f.ones += f2.ones
	f.count += f2.count
	f2.resultReturned = true
	return nil
}

func checkMergeFrequency(f1, f2 *Frequency) error {
	if f1.resultReturned {
		return fmt.Errorf("checkMergeFrequency: f1 already returned the result, cannot be merged with another Frequency instance")
	}
	if f2.resultReturned {
		return fmt.Errorf("checkMergeFrequency: f2 already returned the result, cannot be merged with another Frequency instance")
	}
	return nil
}
