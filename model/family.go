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

package model

import "fmt"

// MetricKind is the exposition type of a sample family.
type MetricKind int

const (
	KindGauge MetricKind = iota
	KindCounter
	KindSummary
)

// String returns the kind as it appears on a # TYPE line.
func (k MetricKind) String() string {
	switch k {
	case KindGauge:
		return "gauge"
	case KindCounter:
		return "counter"
	case KindSummary:
		return "summary"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SampleFamily groups all samples sharing an exported name under one kind and
// help string. Within a summary family, samples carrying a quantile label use
// the family name itself while the statistic samples use suffixed names.
type SampleFamily struct {
	Name    string
	Kind    MetricKind
	Help    string
	Samples Samples
}

// Equal compares name, kind, help, and all samples in order.
func (f *SampleFamily) Equal(o *SampleFamily) bool {
	if f == o {
		return true
	}
	return f.Name == o.Name && f.Kind == o.Kind && f.Help == o.Help &&
		f.Samples.Equal(o.Samples)
}

// Families is an ordered collection of sample families as returned by one
// export call. Order is the first-appearance order of each exported name.
type Families []*SampleFamily

// Get returns the family with the given exported name, or nil.
func (fs Families) Get(name string) *SampleFamily {
	for _, f := range fs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Sample returns the value of the sample in fs matching name and exact label
// pairs. The second return value reports whether such a sample exists.
// Intended for tests and simple lookups, not hot paths.
func (fs Families) Sample(name string, labelNames, labelValues []string) (SampleValue, bool) {
	probe := &Sample{Name: name, LabelNames: labelNames, LabelValues: labelValues}
	for _, f := range fs {
		for _, s := range f.Samples {
			probe.Value = s.Value
			if s.Equal(probe) {
				return s.Value, true
			}
		}
	}
	return 0, false
}
