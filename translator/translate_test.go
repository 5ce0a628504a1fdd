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

package translator

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/prometheus-community/tritium_exporter/model"
	"github.com/prometheus-community/tritium_exporter/registry"
)

// listRegistry is a fixed-order TaggedRegistry for tests that need full
// control over enumeration order.
type listRegistry []registry.MetricEntry

func (l listRegistry) Each() []registry.MetricEntry {
	return l
}

func entry(name string, tags map[string]string, m registry.Metric) registry.MetricEntry {
	return registry.MetricEntry{Name: registry.NewMetricName(name, tags), Metric: m}
}

func TestExportCounter(t *testing.T) {
	c := registry.NewCounter()
	c.Add(7)
	reg := listRegistry{
		entry("request.count", map[string]string{"service": "api", "Host": "h1"}, c),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)

	fam := fams[0]
	require.Equal(t, "request_count", fam.Name)
	require.Equal(t, model.KindGauge, fam.Kind)
	require.NotEmpty(t, fam.Help)
	require.Len(t, fam.Samples, 1)

	s := fam.Samples[0]
	require.Equal(t, "request_count", s.Name)
	require.Equal(t, []string{"host", "service"}, s.LabelNames)
	require.Equal(t, []string{"h1", "api"}, s.LabelValues)
	require.Equal(t, model.SampleValue(7), s.Value)
}

func TestExportCounterBlankTagsDropped(t *testing.T) {
	c := registry.NewCounter()
	c.Inc()
	reg := listRegistry{
		entry("name", map[string]string{
			"":      "orphan value",
			"blank": "",
			"space": "   ",
			"kept":  "v",
		}, c),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	s := fams[0].Samples[0]
	require.Equal(t, []string{"kept"}, s.LabelNames)
	require.Equal(t, []string{"v"}, s.LabelValues)
}

func TestExportGauge(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		expected model.SampleValue
	}{
		{"int", 1234, 1234},
		{"int64", int64(1234), 1234},
		{"uint32", uint32(42), 42},
		{"float64", 1.234, 1.234},
		{"float32", float32(0.5), 0.5},
		{"bool true", true, 1},
		{"bool false", false, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := listRegistry{
				entry("g", nil, registry.GaugeFunc(func() any { return test.payload })),
			}
			fams := New(nil).Export(reg)
			require.Len(t, fams, 1)
			require.Equal(t, model.KindGauge, fams[0].Kind)
			require.Equal(t, test.expected, fams[0].Samples[0].Value)
		})
	}
}

func TestExportGaugeUnsupportedPayload(t *testing.T) {
	payloads := []any{nil, "a string", []int{1, 2}, struct{}{}, map[string]int{"a": 1}}
	for _, payload := range payloads {
		reg := listRegistry{
			entry("g", nil, registry.GaugeFunc(func() any { return payload })),
		}
		fams := New(nil).Export(reg)
		require.Empty(t, fams, "payload %T must be skipped", payload)
	}
}

type bogusMetric struct{}

func TestExportUnrecognizedKindSkipped(t *testing.T) {
	c := registry.NewCounter()
	c.Inc()
	reg := listRegistry{
		entry("weird", nil, bogusMetric{}),
		entry("fine", nil, c),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	require.Equal(t, "fine", fams[0].Name)
}

func TestExportHistogram(t *testing.T) {
	h := registry.NewHistogram()
	for i := 0; i < 100; i++ {
		h.Update(int64(i))
	}
	reg := listRegistry{entry("h", map[string]string{"k": "v"}, h)}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	fam := fams[0]
	require.Equal(t, model.KindSummary, fam.Kind)
	// 6 quantiles + count/min/max/mean/stddev.
	require.Len(t, fam.Samples, 11)

	count, ok := fams.Sample("h_count", []string{"k"}, []string{"v"})
	require.True(t, ok)
	require.Equal(t, model.SampleValue(100), count)

	for _, q := range []string{"0.75", "0.95", "0.98", "0.99"} {
		v, ok := fams.Sample("h", []string{"quantile", "k"}, []string{q, "v"})
		require.True(t, ok, "missing quantile %s", q)
		qf, err := strconv.ParseFloat(q, 64)
		require.NoError(t, err)
		require.InDelta(t, (qf-0.01)*100, float64(v), 1e-9, "quantile %s", q)
	}

	minV, ok := fams.Sample("h_min", []string{"k"}, []string{"v"})
	require.True(t, ok)
	require.Equal(t, model.SampleValue(0), minV)
	maxV, ok := fams.Sample("h_max", []string{"k"}, []string{"v"})
	require.True(t, ok)
	require.Equal(t, model.SampleValue(99), maxV)
	mean, ok := fams.Sample("h_mean", []string{"k"}, []string{"v"})
	require.True(t, ok)
	require.InDelta(t, 49.5, float64(mean), 1e-9)
}

func TestExportHistogramQuantileLabelFirst(t *testing.T) {
	h := registry.NewHistogram()
	h.Update(1)
	reg := listRegistry{entry("h", map[string]string{"zz": "v", "aa": "w"}, h)}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	for _, s := range fams[0].Samples {
		if s.Name != "h" {
			continue
		}
		require.Equal(t, []string{"quantile", "aa", "zz"}, s.LabelNames)
		require.Equal(t, []string{"w", "v"}, s.LabelValues[1:3])
	}
}

func TestExportTimerSecondsConversion(t *testing.T) {
	tm := registry.NewTimer()
	tm.Update(1 * time.Second)
	tm.Update(2 * time.Second)
	tm.Update(3 * time.Second)
	reg := listRegistry{entry("t", nil, tm)}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)

	// Quantile values are converted to seconds.
	median, ok := fams.Sample("t", []string{"quantile"}, []string{"0.5"})
	require.True(t, ok)
	require.InDelta(t, 2.0, float64(median), 1e-9)

	// Count and statistics are not: they stay in nanoseconds.
	count, ok := fams.Sample("t_count", nil, nil)
	require.True(t, ok)
	require.Equal(t, model.SampleValue(3), count)
	minV, ok := fams.Sample("t_min", nil, nil)
	require.True(t, ok)
	require.Equal(t, model.SampleValue(1e9), minV)
	maxV, ok := fams.Sample("t_max", nil, nil)
	require.True(t, ok)
	require.Equal(t, model.SampleValue(3e9), maxV)
	mean, ok := fams.Sample("t_mean", nil, nil)
	require.True(t, ok)
	require.InDelta(t, 2e9, float64(mean), 1e-3)
	stddev, ok := fams.Sample("t_stddev", nil, nil)
	require.True(t, ok)
	require.InDelta(t, 1e9, float64(stddev), 1e-3)
}

func TestExportMeter(t *testing.T) {
	m := registry.NewMeter()
	m.Mark()
	m.Mark()
	reg := listRegistry{entry("events", nil, m)}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	fam := fams[0]
	require.Equal(t, "events_total", fam.Name)
	require.Equal(t, model.KindCounter, fam.Kind)
	require.Len(t, fam.Samples, 1)
	require.Equal(t, "events_total", fam.Samples[0].Name)
	require.Equal(t, model.SampleValue(2), fam.Samples[0].Value)
}

func TestExportMergesCollidingNames(t *testing.T) {
	c1 := registry.NewCounter()
	c1.Add(1)
	c2 := registry.NewCounter()
	c2.Add(2)
	reg := listRegistry{
		entry("foo", map[string]string{"which": "lower"}, c1),
		entry("FOO", map[string]string{"which": "upper"}, c2),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	fam := fams[0]
	require.Equal(t, "foo", fam.Name)
	require.Len(t, fam.Samples, 2)

	v1, ok := fams.Sample("foo", []string{"which"}, []string{"lower"})
	require.True(t, ok)
	require.Equal(t, model.SampleValue(1), v1)
	v2, ok := fams.Sample("foo", []string{"which"}, []string{"upper"})
	require.True(t, ok)
	require.Equal(t, model.SampleValue(2), v2)
}

// A counter and a gauge colliding on the sanitized name keep the first-seen
// family's kind and help. This pins the merge policy for mixed-kind
// collisions, which the source behavior leaves open.
func TestExportMergeFirstKindWins(t *testing.T) {
	c := registry.NewCounter()
	c.Add(3)
	reg := listRegistry{
		entry("Mixed", nil, registry.GaugeFunc(func() any { return 1.5 })),
		entry("mixed", map[string]string{"k": "v"}, c),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	fam := fams[0]
	require.Equal(t, "mixed", fam.Name)
	require.Equal(t, model.KindGauge, fam.Kind)
	require.Len(t, fam.Samples, 2)
}

func TestExportInvalidTagKeySanitized(t *testing.T) {
	c := registry.NewCounter()
	c.Inc()
	reg := listRegistry{
		entry("metric_name", map[string]string{"1234": "1234"}, c),
	}

	fams := New(nil).Export(reg)
	require.Len(t, fams, 1)
	s := fams[0].Samples[0]
	require.Equal(t, []string{InvalidName}, s.LabelNames)
	require.Equal(t, []string{"1234"}, s.LabelValues)
}

func TestExportDeterministic(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Counter(registry.NewMetricName("a.counter", map[string]string{"k": "v"})).Add(4)
	reg.Meter(registry.NewMetricName("b.meter", nil)).Mark()
	h := reg.Histogram(registry.NewMetricName("c.hist", nil))
	for i := 0; i < 10; i++ {
		h.Update(int64(i))
	}
	reg.Gauge(registry.NewMetricName("d.gauge", nil), registry.GaugeFunc(func() any { return 2 }))

	tr := New(nil)
	first := tr.Export(reg)
	second := tr.Export(reg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated export differs (-first +second):\n%s", diff)
	}
	require.Len(t, first, 4)
}

func TestExportEmptyRegistry(t *testing.T) {
	fams := New(nil).Export(listRegistry{})
	require.Empty(t, fams)
}
