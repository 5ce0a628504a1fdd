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
	"sync/atomic"
	"time"
)

// Metric is any value held by a tagged registry. The concrete types understood
// by consumers are *Counter, Gauge, *Meter, *Histogram and *Timer; anything
// else is skipped at export time.
type Metric interface{}

// Counter is a value that can go up and down. All methods are safe for
// concurrent use.
type Counter struct {
	count atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	c.count.Add(1)
}

// Dec decrements the counter by one.
func (c *Counter) Dec() {
	c.count.Add(-1)
}

// Add adds delta, which may be negative.
func (c *Counter) Add(delta int64) {
	c.count.Add(delta)
}

// Count returns the current value.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// Gauge supplies an instantaneous value. Value may return any type; only
// numeric and boolean payloads are exportable, everything else is treated as
// an unsupported payload and dropped by consumers.
type Gauge interface {
	Value() any
}

// GaugeFunc adapts a plain function to the Gauge interface.
type GaugeFunc func() any

// Value implements Gauge.
func (f GaugeFunc) Value() any {
	return f()
}

// Meter counts occurrences of an event. Safe for concurrent use.
type Meter struct {
	count atomic.Int64
}

// NewMeter returns a meter with no marks.
func NewMeter() *Meter {
	return &Meter{}
}

// Mark records one occurrence.
func (m *Meter) Mark() {
	m.count.Add(1)
}

// MarkN records n occurrences.
func (m *Meter) MarkN(n int64) {
	m.count.Add(n)
}

// Count returns the number of recorded occurrences.
func (m *Meter) Count() int64 {
	return m.count.Load()
}

// Histogram records an int64 value distribution in a bounded reservoir and
// serves point-in-time statistical snapshots of it. Safe for concurrent use.
type Histogram struct {
	count atomic.Int64
	res   *reservoir
}

// NewHistogram returns a histogram backed by a reservoir of the default size.
func NewHistogram() *Histogram {
	return NewHistogramWithReservoirSize(defaultReservoirSize)
}

// NewHistogramWithReservoirSize returns a histogram retaining at most size
// recorded values for snapshot computation. The total count is exact
// regardless of size.
func NewHistogramWithReservoirSize(size int) *Histogram {
	return &Histogram{res: newReservoir(size)}
}

// Update records a value.
func (h *Histogram) Update(v int64) {
	h.count.Add(1)
	h.res.update(v)
}

// Count returns the total number of recorded values, including values no
// longer present in the reservoir.
func (h *Histogram) Count() int64 {
	return h.count.Load()
}

// Snapshot returns an immutable statistical view of the currently retained
// values.
func (h *Histogram) Snapshot() *Snapshot {
	return h.res.snapshot()
}

// Timer measures durations. Values are recorded in nanoseconds; consumers are
// expected to convert to their preferred unit. Safe for concurrent use.
type Timer struct {
	hist *Histogram
}

// NewTimer returns a timer backed by a default-sized histogram.
func NewTimer() *Timer {
	return &Timer{hist: NewHistogram()}
}

// Update records a completed duration.
func (t *Timer) Update(d time.Duration) {
	if d < 0 {
		return
	}
	t.hist.Update(int64(d))
}

// UpdateNanos records a completed duration given in nanoseconds. Negative
// values are dropped.
func (t *Timer) UpdateNanos(ns int64) {
	t.Update(time.Duration(ns))
}

// Time runs fn and records how long it took.
func (t *Timer) Time(fn func()) {
	start := time.Now()
	fn()
	t.Update(time.Since(start))
}

// Start returns a function that, when called, records the elapsed time since
// Start. Useful with defer.
func (t *Timer) Start() func() {
	start := time.Now()
	return func() {
		t.Update(time.Since(start))
	}
}

// Count returns the number of recorded durations.
func (t *Timer) Count() int64 {
	return t.hist.Count()
}

// Snapshot returns an immutable statistical view of the recorded durations,
// in nanoseconds.
func (t *Timer) Snapshot() *Snapshot {
	return t.hist.Snapshot()
}
