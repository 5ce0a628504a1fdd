// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

const defaultReservoirSize = 1028

// reservoir keeps a uniformly sampled, bounded subset of recorded values
// (Vitter's algorithm R). Until the capacity is reached every value is
// retained, so small populations snapshot exactly.
type reservoir struct {
	mtx    sync.Mutex
	values []int64
	seen   int64
	size   int
	rnd    *rand.Rand
}

func newReservoir(size int) *reservoir {
	if size <= 0 {
		size = defaultReservoirSize
	}
	return &reservoir{
		values: make([]int64, 0, size),
		size:   size,
		rnd:    rand.New(rand.NewSource(rand.Int63())),
	}
}

func (r *reservoir) update(v int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.seen++
	if len(r.values) < r.size {
		r.values = append(r.values, v)
		return
	}
	if i := r.rnd.Int63n(r.seen); i < int64(r.size) {
		r.values[i] = v
	}
}

func (r *reservoir) snapshot() *Snapshot {
	r.mtx.Lock()
	vals := make([]float64, len(r.values))
	for i, v := range r.values {
		vals[i] = float64(v)
	}
	r.mtx.Unlock()

	sort.Float64s(vals)
	return &Snapshot{values: vals}
}

// Snapshot is an immutable statistical summary of a set of recorded values.
// The zero value behaves like a snapshot of an empty set.
type Snapshot struct {
	values []float64 // sorted ascending
}

// NewSnapshot returns a snapshot over a copy of values. Exposed for tests and
// for feeding externally computed distributions through the export path.
func NewSnapshot(values []float64) *Snapshot {
	vals := make([]float64, len(values))
	copy(vals, values)
	sort.Float64s(vals)
	return &Snapshot{values: vals}
}

// ValueAtQuantile returns the value at quantile q in [0, 1], using the
// nearest-rank method over the retained values. Out-of-range quantiles are
// clamped; an empty snapshot yields 0 for every quantile.
func (s *Snapshot) ValueAtQuantile(q float64) float64 {
	n := len(s.values)
	if n == 0 {
		return 0
	}
	if q <= 0 {
		return s.values[0]
	}
	if q >= 1 {
		return s.values[n-1]
	}
	idx := int(math.Ceil(q*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return s.values[idx]
}

// Size returns the number of retained values.
func (s *Snapshot) Size() int {
	return len(s.values)
}

// Min returns the smallest retained value, or 0 if empty.
func (s *Snapshot) Min() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[0]
}

// Max returns the largest retained value, or 0 if empty.
func (s *Snapshot) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Mean returns the arithmetic mean of the retained values, or 0 if empty.
func (s *Snapshot) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// StdDev returns the sample standard deviation of the retained values, or 0
// for fewer than two values.
func (s *Snapshot) StdDev() float64 {
	n := len(s.values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	var sum float64
	for _, v := range s.values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}
