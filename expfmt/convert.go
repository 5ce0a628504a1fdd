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

package expfmt

import (
	"strconv"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"

	"github.com/prometheus-community/tritium_exporter/model"
)

const quantileLabel = "quantile"

// FamiliesToDTO converts sample families into client_model MetricFamily
// protobufs, the representation understood by client_golang gatherers and the
// protobuf exposition format.
//
// Gauge and counter families map directly. Summary families are restructured:
// the quantile-labeled samples and the _count sample of each label set become
// one dto.Summary metric, while the flat _min/_max/_mean/_stddev statistic
// samples become companion gauge families under their suffixed names (the
// protobuf schema has no place for them inside a summary). The recorded sum
// is not tracked by the source registry, so summaries report a zero sample
// sum.
func FamiliesToDTO(fams model.Families) []*dto.MetricFamily {
	var out []*dto.MetricFamily
	for _, f := range fams {
		out = append(out, familyToDTO(f)...)
	}
	return out
}

func familyToDTO(f *model.SampleFamily) []*dto.MetricFamily {
	if f.Kind == model.KindSummary {
		return summaryToDTO(f)
	}

	main := &dto.MetricFamily{
		Name: proto.String(f.Name),
		Help: proto.String(f.Help),
		Type: kindToDTO(f.Kind).Enum(),
	}
	companions := make(map[string]*dto.MetricFamily)
	var order []string

	for _, s := range f.Samples {
		m := &dto.Metric{Label: labelPairsToDTO(s.LabelNames, s.LabelValues)}
		switch f.Kind {
		case model.KindCounter:
			m.Counter = &dto.Counter{Value: proto.Float64(float64(s.Value))}
		default:
			m.Gauge = &dto.Gauge{Value: proto.Float64(float64(s.Value))}
		}

		// Samples carried into this family by a name collision may use
		// suffixed names; they get their own gauge families.
		if s.Name == f.Name {
			main.Metric = append(main.Metric, m)
			continue
		}
		c, ok := companions[s.Name]
		if !ok {
			c = &dto.MetricFamily{
				Name: proto.String(s.Name),
				Help: proto.String(f.Help),
				Type: dto.MetricType_GAUGE.Enum(),
			}
			companions[s.Name] = c
			order = append(order, s.Name)
		}
		m.Counter = nil
		m.Gauge = &dto.Gauge{Value: proto.Float64(float64(s.Value))}
		c.Metric = append(c.Metric, m)
	}

	out := []*dto.MetricFamily{main}
	for _, name := range order {
		out = append(out, companions[name])
	}
	return out
}

func summaryToDTO(f *model.SampleFamily) []*dto.MetricFamily {
	main := &dto.MetricFamily{
		Name: proto.String(f.Name),
		Help: proto.String(f.Help),
		Type: dto.MetricType_SUMMARY.Enum(),
	}

	type group struct {
		labelNames  []string
		labelValues []string
		summary     *dto.Summary
	}
	groups := make(map[string]*group)
	var groupOrder []string
	companions := make(map[string]*dto.MetricFamily)
	var companionOrder []string

	groupFor := func(labelNames, labelValues []string) *group {
		sig := signature(labelNames, labelValues)
		g, ok := groups[sig]
		if !ok {
			g = &group{
				labelNames:  labelNames,
				labelValues: labelValues,
				summary:     &dto.Summary{SampleCount: proto.Uint64(0)},
			}
			groups[sig] = g
			groupOrder = append(groupOrder, sig)
		}
		return g
	}

	for _, s := range f.Samples {
		switch {
		case s.Name == f.Name && len(s.LabelNames) > 0 && s.LabelNames[0] == quantileLabel:
			g := groupFor(s.LabelNames[1:], s.LabelValues[1:])
			q, err := parseQuantile(s.LabelValues[0])
			if err != nil {
				continue
			}
			g.summary.Quantile = append(g.summary.Quantile, &dto.Quantile{
				Quantile: proto.Float64(q),
				Value:    proto.Float64(float64(s.Value)),
			})
		case s.Name == f.Name+"_count":
			g := groupFor(s.LabelNames, s.LabelValues)
			g.summary.SampleCount = proto.Uint64(uint64(s.Value))
		default:
			c, ok := companions[s.Name]
			if !ok {
				c = &dto.MetricFamily{
					Name: proto.String(s.Name),
					Help: proto.String(f.Help),
					Type: dto.MetricType_GAUGE.Enum(),
				}
				companions[s.Name] = c
				companionOrder = append(companionOrder, s.Name)
			}
			c.Metric = append(c.Metric, &dto.Metric{
				Label: labelPairsToDTO(s.LabelNames, s.LabelValues),
				Gauge: &dto.Gauge{Value: proto.Float64(float64(s.Value))},
			})
		}
	}

	for _, sig := range groupOrder {
		g := groups[sig]
		main.Metric = append(main.Metric, &dto.Metric{
			Label:   labelPairsToDTO(g.labelNames, g.labelValues),
			Summary: g.summary,
		})
	}

	out := []*dto.MetricFamily{main}
	for _, name := range companionOrder {
		out = append(out, companions[name])
	}
	return out
}

func kindToDTO(k model.MetricKind) dto.MetricType {
	switch k {
	case model.KindCounter:
		return dto.MetricType_COUNTER
	case model.KindSummary:
		return dto.MetricType_SUMMARY
	default:
		return dto.MetricType_GAUGE
	}
}

func labelPairsToDTO(labelNames, labelValues []string) []*dto.LabelPair {
	if len(labelNames) == 0 {
		return nil
	}
	pairs := make([]*dto.LabelPair, 0, len(labelNames))
	for i, ln := range labelNames {
		lv := ""
		if i < len(labelValues) {
			lv = labelValues[i]
		}
		pairs = append(pairs, &dto.LabelPair{
			Name:  proto.String(ln),
			Value: proto.String(lv),
		})
	}
	return pairs
}

func parseQuantile(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func signature(labelNames, labelValues []string) string {
	var b strings.Builder
	for i, ln := range labelNames {
		b.WriteString(ln)
		b.WriteByte(0xff)
		if i < len(labelValues) {
			b.WriteString(labelValues[i])
		}
		b.WriteByte(0xfe)
	}
	return b.String()
}
