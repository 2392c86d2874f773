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

// Package rand provides explicit random-source handles for the distributions
// used by the randomized response library.
//
// All randomness the library consumes is drawn through a Source. A Source is
// either crypto-backed (see Crypto) or deterministically seeded (see
// NewSource); the latter makes experiments and statistical tests
// reproducible.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"math/bits"
	mathrand "math/rand"
	"sync"

	log "github.com/golang/glog"
)

// Source produces the random draws consumed by samplers and mechanisms.
//
// All draws go through the same mutex-guarded byte stream, so a Source is
// safe for concurrent use; concurrent access to a seeded Source does make
// the draw order, and therefore the produced sequence, nondeterministic.
// Confine a seeded Source to a single goroutine when reproducibility
// matters and hand workers their own Fork.
type Source struct {
	mu sync.Mutex
	r  io.Reader

	bitBuf uint8
	bitPos int8

	// rng adapts the byte stream to math/rand for normal variates.
	rng *mathrand.Rand

	seeded bool
}

// Crypto returns a Source backed by crypto/rand, buffered for throughput.
func Crypto() *Source {
	return newSource(bufio.NewReaderSize(cryptorand.Reader, 65536), false)
}

// NewSource returns a deterministic Source seeded with seed. Two Sources
// created with the same seed produce identical draw sequences.
func NewSource(seed int64) *Source {
	return newSource(&prngReader{rng: mathrand.New(mathrand.NewSource(seed))}, true)
}

func newSource(r io.Reader, seeded bool) *Source {
	s := &Source{r: r, bitPos: math.MaxInt8, seeded: seeded}
	s.rng = mathrand.New(&byteSource{s: s})
	return s
}

// Fork returns a Source whose draws are statistically independent of the
// parent's. Seeded parents produce a seeded child whose seed is drawn from
// the parent, so a run remains reproducible end to end; crypto-backed
// parents produce a fresh crypto-backed handle.
func (s *Source) Fork() *Source {
	if s.seeded {
		return NewSource(int64(s.U64() & 0x7fffffffffffffff))
	}
	return Crypto()
}

func (s *Source) read(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return io.ReadFull(s.r, b)
}

// U64 returns a uniformly random uint64.
func (s *Source) U64() uint64 {
	var r [8]uint8
	if _, err := s.read(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// U8 returns a uniformly random uint8.
func (s *Source) U8() uint8 {
	var r [1]uint8
	if _, err := s.read(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return r[0]
}

// Sign returns +1.0 or -1.0 with equal probabilities.
func (s *Source) Sign() float64 {
	if s.Boolean() {
		return 1.0
	}
	return -1.0
}

// Boolean returns true or false with equal probability.
func (s *Source) Boolean() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bitPos > 7 { // Out of random bits.
		var r [1]uint8
		if _, err := io.ReadFull(s.r, r[:]); err != nil {
			log.Fatalf("out of randomness, should never happen: %v", err)
		}
		s.bitBuf = r[0]
		s.bitPos = 0
	}
	res := s.bitBuf&(1<<s.bitPos) > 0
	s.bitPos++
	return res
}

// I63n returns an integer from the set {0,...,n-1} uniformly at random.
// The value of n must be positive.
func (s *Source) I63n(n int64) int64 {
	largestMultipleOfN := (math.MaxInt64 / n) * n
	var positiveRandomInteger int64
	for true {
		// Draw random 64 bit sequence and set sign bit to 0.
		positiveRandomInteger = int64(s.U64()) & 0x7fffffffffffffff
		if positiveRandomInteger < largestMultipleOfN {
			break
		}
	}
	return positiveRandomInteger % n
}

// Uniform returns a float64 from the interval (0,1] such that each float
// in the interval is returned with positive probability and the resulting
// distribution simulates a continuous uniform distribution on (0, 1].
func (s *Source) Uniform() float64 {
	i := s.U64() % (1 << 53)
	r := (1 + float64(i)/(1<<53)) / math.Pow(2, s.Geometric())
	// We want to avoid returning 0, since callers may take the log of the output.
	if r == 0 {
		return 1
	}
	return r
}

// Geometric returns a float64 that counts the number of Bernoulli trials until
// the first success for a success probability of 0.5.
func (s *Source) Geometric() float64 {
	// 1 plus the number of leading zeros from an infinite stream of random bits
	// follows the desired geometric distribution.
	b := 1
	var r uint8
	for r == 0 {
		r = s.U8()
		b += bits.LeadingZeros8(r)
	}
	return float64(b)
}

// Normal returns a normally distributed float with mean 0 and standard deviation 1.
func (s *Source) Normal() float64 {
	return s.rng.NormFloat64()
}

// prngReader serves a deterministic byte stream from math/rand.
type prngReader struct {
	rng *mathrand.Rand
}

func (r *prngReader) Read(b []byte) (int, error) {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		binary.LittleEndian.PutUint64(b[i:], r.rng.Uint64())
	}
	for ; i < len(b); i++ {
		b[i] = uint8(r.rng.Uint64())
	}
	return len(b), nil
}

// byteSource adapts a Source's byte stream to math/rand's Source interface.
type byteSource struct {
	s *Source
}

// Int63 returns a uniformly random int64 in [0, 1<<63).
func (bs *byteSource) Int63() int64 {
	var r [8]uint8
	if _, err := bs.s.read(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return int64(binary.LittleEndian.Uint64(r[:])) & 0x7fffffffffffffff
}

// Seed is a no-op.
func (bs *byteSource) Seed(_ int64) {}
