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
	"github.com/randresp/randresp/rand"
)

// BinaryResponse perturbs single bits with the classical two-coin
// randomized response scheme: a first fair coin decides whether the true
// bit is disclosed; otherwise a second fair coin replaces it with a
// uniform bit.
//
// The resulting response distribution is
//
//	P(y = x) = 3/4    and    P(y = 1) = x/2 + 1/4,
//
// so for true bits drawn from Bernoulli(p) the responses are
// Bernoulli(p/2 + 1/4). The mechanism only ever sees the bit it is
// handed, never the parameter p.
type BinaryResponse struct {
	src *rand.Source
}

// NewBinaryResponse returns a BinaryResponse drawing its coins from src.
func NewBinaryResponse(src *rand.Source) *BinaryResponse {
	return &BinaryResponse{src: src}
}

// Bit perturbs a single true bit. Each call consumes fresh coin flips, so
// responses are independent across calls.
func (m *BinaryResponse) Bit(x int64) int64 {
	if m.src.Boolean() { // truthful branch
		return x
	}
	if m.src.Boolean() {
		return 1
	}
	return 0
}

// Bits perturbs every bit of xs independently and returns the responses.
// The input slice is not modified.
func (m *BinaryResponse) Bits(xs []int64) []int64 {
	ys := make([]int64, len(xs))
	for i, x := range xs {
		ys[i] = m.Bit(x)
	}
	return ys
}
