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

// Package registry implements a tagged, hierarchical metric registry: metrics
// are keyed by a raw name plus string tags and computed on demand. It is the
// read-only source that the translator walks on every scrape.
package registry

import (
	"sort"
	"sync"
)

// MetricEntry pairs an identifier with its metric.
type MetricEntry struct {
	Name   MetricName
	Metric Metric
}

// TaggedRegistry is an enumerable collection of tagged metrics.
type TaggedRegistry interface {
	// Each returns a one-shot, point-in-time view of all registered metrics,
	// sorted by canonical identifier. The returned slice is owned by the
	// caller; concurrent registrations after the call are not reflected.
	Each() []MetricEntry
}

// DefaultRegistry is the standard TaggedRegistry implementation. The zero
// value is not usable; use NewRegistry. All methods are safe for concurrent
// use.
type DefaultRegistry struct {
	mtx     sync.RWMutex
	metrics map[string]MetricEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{metrics: make(map[string]MetricEntry)}
}

// Counter returns the counter registered under name, creating it if absent.
// If a metric of a different kind is registered under name, it is replaced.
func (r *DefaultRegistry) Counter(name MetricName) *Counter {
	m := r.getOrAdd(name, func() Metric { return NewCounter() })
	if c, ok := m.(*Counter); ok {
		return c
	}
	return r.replace(name, NewCounter()).(*Counter)
}

// Gauge registers g under name, replacing any existing metric, and returns g.
func (r *DefaultRegistry) Gauge(name MetricName, g Gauge) Gauge {
	return r.replace(name, g).(Gauge)
}

// Meter returns the meter registered under name, creating it if absent.
func (r *DefaultRegistry) Meter(name MetricName) *Meter {
	m := r.getOrAdd(name, func() Metric { return NewMeter() })
	if mt, ok := m.(*Meter); ok {
		return mt
	}
	return r.replace(name, NewMeter()).(*Meter)
}

// Histogram returns the histogram registered under name, creating it if
// absent.
func (r *DefaultRegistry) Histogram(name MetricName) *Histogram {
	m := r.getOrAdd(name, func() Metric { return NewHistogram() })
	if h, ok := m.(*Histogram); ok {
		return h
	}
	return r.replace(name, NewHistogram()).(*Histogram)
}

// Timer returns the timer registered under name, creating it if absent.
func (r *DefaultRegistry) Timer(name MetricName) *Timer {
	m := r.getOrAdd(name, func() Metric { return NewTimer() })
	if t, ok := m.(*Timer); ok {
		return t
	}
	return r.replace(name, NewTimer()).(*Timer)
}

// Register stores an arbitrary metric under name, replacing any existing one.
// Intended for custom Metric implementations; the standard accessors are
// preferred for the built-in kinds.
func (r *DefaultRegistry) Register(name MetricName, m Metric) {
	r.replace(name, m)
}

// Remove deletes the metric registered under name and reports whether one was
// present.
func (r *DefaultRegistry) Remove(name MetricName) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	_, ok := r.metrics[name.Key()]
	delete(r.metrics, name.Key())
	return ok
}

// Len returns the number of registered metrics.
func (r *DefaultRegistry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.metrics)
}

// Each implements TaggedRegistry.
func (r *DefaultRegistry) Each() []MetricEntry {
	r.mtx.RLock()
	entries := make([]MetricEntry, 0, len(r.metrics))
	for _, e := range r.metrics {
		entries = append(entries, e)
	}
	r.mtx.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name.Key() < entries[j].Name.Key()
	})
	return entries
}

func (r *DefaultRegistry) getOrAdd(name MetricName, create func() Metric) Metric {
	r.mtx.RLock()
	e, ok := r.metrics[name.Key()]
	r.mtx.RUnlock()
	if ok {
		return e.Metric
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	if e, ok := r.metrics[name.Key()]; ok {
		return e.Metric
	}
	m := create()
	r.metrics[name.Key()] = MetricEntry{Name: name, Metric: m}
	return m
}

func (r *DefaultRegistry) replace(name MetricName, m Metric) Metric {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.metrics[name.Key()] = MetricEntry{Name: name, Metric: m}
	return m
}
