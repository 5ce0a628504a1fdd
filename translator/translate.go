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

// Package translator converts tagged-registry metrics into Prometheus sample
// families: it sanitizes names and tag keys into the exposition identifier
// grammar, maps each metric kind onto labeled samples, and merges families
// whose sanitized names collide. Translation is a stateless, best-effort
// transform; it never fails, it only skips what it cannot express.
package translator

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus-community/tritium_exporter/model"
	"github.com/prometheus-community/tritium_exporter/registry"
)

const (
	quantileLabel = "quantile"

	suffixTotal  = "_total"
	suffixCount  = "_count"
	suffixMin    = "_min"
	suffixMax    = "_max"
	suffixMean   = "_mean"
	suffixStddev = "_stddev"

	helpFormat = "Generated from Tritium metric import (metric=%s, type=%T)"
)

// Quantiles reported for every histogram and timer, in exposition order.
var quantiles = []float64{0.5, 0.75, 0.95, 0.98, 0.99, 0.999}

// nanosPerSecond converts timer snapshot values (nanoseconds) to seconds.
const nanosPerSecond = 1e9

// Translator turns one registry view into sample families. A Translator is
// stateless apart from its logger and safe for concurrent use.
type Translator struct {
	logger *slog.Logger
}

// New returns a Translator logging skipped metrics to logger. A nil logger
// discards them.
func New(logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Translator{logger: logger}
}

// Export takes one consistent enumeration of reg and translates every metric
// it can. Unsupported gauge payloads and unrecognized metric kinds are skipped
// with a log line; Export itself always succeeds. Families are returned in
// first-appearance order of their exported names, with colliding names merged
// into a single family (first-seen kind and help win).
func (t *Translator) Export(reg registry.TaggedRegistry) model.Families {
	var (
		out   model.Families
		index = make(map[string]int)
	)

	for _, entry := range reg.Each() {
		var fam *model.SampleFamily

		switch m := entry.Metric.(type) {
		case *registry.Counter:
			fam = t.fromCounter(entry.Name, m)
		case *registry.Histogram:
			fam = t.fromHistogram(entry.Name, m)
		case *registry.Timer:
			fam = t.fromTimer(entry.Name, m)
		case *registry.Meter:
			fam = t.fromMeter(entry.Name, m)
		case registry.Gauge:
			fam = t.fromGauge(entry.Name, m)
		default:
			t.logger.Warn("unexpected metric kind, skipping",
				"name", entry.Name.Name(),
				"type", fmt.Sprintf("%T", entry.Metric))
			continue
		}
		if fam == nil {
			continue
		}

		// Fold into the accumulated families: colliding exported names
		// concatenate their samples under the first-seen family.
		if i, ok := index[fam.Name]; ok {
			out[i].Samples = append(out[i].Samples, fam.Samples...)
			continue
		}
		index[fam.Name] = len(out)
		out = append(out, fam)
	}

	return out
}

// labelPairs sanitizes the identifier's tags into positional label pairs. Tags
// with a blank key or value are dropped; values are kept verbatim. Keys are
// walked in sorted order so output is deterministic.
func labelPairs(name registry.MetricName) (labelNames, labelValues []string) {
	for _, k := range name.SortedTagKeys() {
		v, _ := name.Tag(k)
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			continue
		}
		labelNames = append(labelNames, Sanitize(k))
		labelValues = append(labelValues, v)
	}
	return labelNames, labelValues
}

func helpMessage(name registry.MetricName, m registry.Metric) string {
	return fmt.Sprintf(helpFormat, name.Name(), m)
}

// Counters are exported as gauges: the source registry treats a counter as an
// instantaneous value that may also decrease.
func (t *Translator) fromCounter(name registry.MetricName, c *registry.Counter) *model.SampleFamily {
	labelNames, labelValues := labelPairs(name)
	exported := Sanitize(name.Name())
	return &model.SampleFamily{
		Name: exported,
		Kind: model.KindGauge,
		Help: helpMessage(name, c),
		Samples: model.Samples{{
			Name:        exported,
			LabelNames:  labelNames,
			LabelValues: labelValues,
			Value:       model.SampleValue(c.Count()),
		}},
	}
}

func (t *Translator) fromGauge(name registry.MetricName, g registry.Gauge) *model.SampleFamily {
	exported := Sanitize(name.Name())
	raw := g.Value()
	value, ok := gaugeValue(raw)
	if !ok {
		t.logger.Debug("unsupported gauge payload, skipping",
			"name", exported,
			"type", fmt.Sprintf("%T", raw))
		return nil
	}
	labelNames, labelValues := labelPairs(name)
	return &model.SampleFamily{
		Name: exported,
		Kind: model.KindGauge,
		Help: helpMessage(name, g),
		Samples: model.Samples{{
			Name:        exported,
			LabelNames:  labelNames,
			LabelValues: labelValues,
			Value:       model.SampleValue(value),
		}},
	}
}

func (t *Translator) fromHistogram(name registry.MetricName, h *registry.Histogram) *model.SampleFamily {
	labelNames, labelValues := labelPairs(name)
	return fromSnapshot(Sanitize(name.Name()), h.Snapshot(), h.Count(), 1.0,
		helpMessage(name, h), labelNames, labelValues)
}

// Timers record nanoseconds internally; quantile values are converted to
// seconds. The min/max/mean/stddev statistics intentionally stay in
// nanoseconds, matching the source registry's export behavior.
func (t *Translator) fromTimer(name registry.MetricName, tm *registry.Timer) *model.SampleFamily {
	labelNames, labelValues := labelPairs(name)
	return fromSnapshot(Sanitize(name.Name()), tm.Snapshot(), tm.Count(), 1.0/nanosPerSecond,
		helpMessage(name, tm), labelNames, labelValues)
}

func (t *Translator) fromMeter(name registry.MetricName, m *registry.Meter) *model.SampleFamily {
	labelNames, labelValues := labelPairs(name)
	exported := Sanitize(name.Name()) + suffixTotal
	return &model.SampleFamily{
		Name: exported,
		Kind: model.KindCounter,
		Help: helpMessage(name, m),
		Samples: model.Samples{{
			Name:        exported,
			LabelNames:  labelNames,
			LabelValues: labelValues,
			Value:       model.SampleValue(m.Count()),
		}},
	}
}

// fromSnapshot renders a snapshot as one summary family: one sample per fixed
// quantile on the base name, carrying the quantile label in the first label
// position, followed by the count and the min/max/mean/stddev statistics on
// suffixed names. factor scales quantile values only.
func fromSnapshot(exported string, snap *registry.Snapshot, count int64, factor float64,
	help string, labelNames, labelValues []string,
) *model.SampleFamily {
	samples := make(model.Samples, 0, len(quantiles)+5)

	qNames := append([]string{quantileLabel}, labelNames...)
	for _, q := range quantiles {
		qValues := append([]string{formatQuantile(q)}, labelValues...)
		samples = append(samples, &model.Sample{
			Name:        exported,
			LabelNames:  qNames,
			LabelValues: qValues,
			Value:       model.SampleValue(snap.ValueAtQuantile(q) * factor),
		})
	}

	for _, sc := range []struct {
		suffix string
		value  float64
	}{
		{suffixCount, float64(count)},
		{suffixMin, snap.Min()},
		{suffixMax, snap.Max()},
		{suffixMean, snap.Mean()},
		{suffixStddev, snap.StdDev()},
	} {
		samples = append(samples, &model.Sample{
			Name:        exported + sc.suffix,
			LabelNames:  labelNames,
			LabelValues: labelValues,
			Value:       model.SampleValue(sc.value),
		})
	}

	return &model.SampleFamily{
		Name:    exported,
		Kind:    model.KindSummary,
		Help:    help,
		Samples: samples,
	}
}

// formatQuantile renders q the way it appears as a label value: "0.5",
// "0.999".
func formatQuantile(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// gaugeValue collapses the open-ended gauge payload type into a float64.
// Numeric types cast directly, booleans map to 1 and 0. The second return
// value is false for nil and for any other payload type.
func gaugeValue(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
