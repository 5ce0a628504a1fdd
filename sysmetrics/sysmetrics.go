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

// Package sysmetrics samples host CPU, memory and load statistics and
// publishes them as gauges on a tagged registry.
package sysmetrics

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/prometheus-community/tritium_exporter/registry"
)

// sample is one point-in-time host reading. Fields left nil were unavailable
// on this platform or failed to read.
type sample struct {
	cpuPercent *float64
	memUsed    *uint64
	memTotal   *uint64
	memPercent *float64
	load1      *float64
	load5      *float64
	load15     *float64
}

// Collector periodically samples host statistics and exposes them as gauges.
// Create one with New, register its gauges once, then drive it with Run.
type Collector struct {
	logger *slog.Logger

	mtx  sync.RWMutex
	last sample
}

// New returns a collector with no samples yet. A nil logger discards output.
func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{logger: logger}
}

// Register adds the host gauges to reg. Gauges for statistics that have not
// been sampled yet, or that the platform cannot provide, report a nil payload
// and are skipped on export.
func (c *Collector) Register(reg *registry.DefaultRegistry) {
	tags := map[string]string{"host_os": runtime.GOOS}

	reg.Gauge(registry.NewMetricName("system.cpu.utilization", tags), c.gauge(func(s sample) any {
		return deref(s.cpuPercent)
	}))
	reg.Gauge(registry.NewMetricName("system.memory.used_bytes", tags), c.gauge(func(s sample) any {
		return deref(s.memUsed)
	}))
	reg.Gauge(registry.NewMetricName("system.memory.total_bytes", tags), c.gauge(func(s sample) any {
		return deref(s.memTotal)
	}))
	reg.Gauge(registry.NewMetricName("system.memory.utilization", tags), c.gauge(func(s sample) any {
		return deref(s.memPercent)
	}))
	reg.Gauge(registry.NewMetricName("system.load.1m", tags), c.gauge(func(s sample) any {
		return deref(s.load1)
	}))
	reg.Gauge(registry.NewMetricName("system.load.5m", tags), c.gauge(func(s sample) any {
		return deref(s.load5)
	}))
	reg.Gauge(registry.NewMetricName("system.load.15m", tags), c.gauge(func(s sample) any {
		return deref(s.load15)
	}))
}

func (c *Collector) gauge(read func(sample) any) registry.GaugeFunc {
	return func() any {
		c.mtx.RLock()
		defer c.mtx.RUnlock()
		return read(c.last)
	}
}

// Run samples immediately and then on every tick of interval until ctx is
// canceled.
func (c *Collector) Run(ctx context.Context, interval time.Duration) {
	c.Sample(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sample(ctx)
		}
	}
}

// Sample takes one host reading. Statistics that fail to read keep their
// previous value absent rather than reporting stale data.
func (c *Collector) Sample(ctx context.Context) {
	var s sample

	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		c.logger.Debug("failed to read cpu utilization", "err", err)
	} else if len(pcts) > 0 {
		s.cpuPercent = &pcts[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		c.logger.Debug("failed to read memory statistics", "err", err)
	} else {
		s.memUsed = &vm.Used
		s.memTotal = &vm.Total
		s.memPercent = &vm.UsedPercent
	}

	if avg, err := load.AvgWithContext(ctx); err != nil {
		c.logger.Debug("failed to read load averages", "err", err)
	} else {
		s.load1 = &avg.Load1
		s.load5 = &avg.Load5
		s.load15 = &avg.Load15
	}

	c.mtx.Lock()
	c.last = s
	c.mtx.Unlock()
}

// deref unwraps an optional reading into a gauge payload. Nil stays nil so the
// exporter drops the series instead of reporting zero.
func deref[T float64 | uint64](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
