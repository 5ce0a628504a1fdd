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

import (
	"fmt"
	"strconv"
	"strings"
)

// A SampleValue is a representation of a metric value at scrape time.
type SampleValue float64

// Equal does a straight v==o.
func (v SampleValue) Equal(o SampleValue) bool {
	return v == o
}

func (v SampleValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// Sample is a single exported data point. Labels are positional: LabelValues[i]
// is the value for LabelNames[i]. The name may carry a statistic suffix
// (_count, _min, ...) and therefore differ from the owning family's name.
type Sample struct {
	Name        string
	LabelNames  []string
	LabelValues []string
	Value       SampleValue
}

// Equal compares name, labels (including order), and value.
func (s *Sample) Equal(o *Sample) bool {
	if s == o {
		return true
	}
	if s.Name != o.Name || !s.Value.Equal(o.Value) {
		return false
	}
	if len(s.LabelNames) != len(o.LabelNames) || len(s.LabelValues) != len(o.LabelValues) {
		return false
	}
	for i, ln := range s.LabelNames {
		if ln != o.LabelNames[i] {
			return false
		}
	}
	for i, lv := range s.LabelValues {
		if lv != o.LabelValues[i] {
			return false
		}
	}
	return true
}

// String implements Stringer in the usual name{label="value"} notation.
func (s *Sample) String() string {
	if len(s.LabelNames) == 0 {
		return fmt.Sprintf("%s %s", s.Name, s.Value)
	}
	pairs := make([]string, 0, len(s.LabelNames))
	for i, ln := range s.LabelNames {
		lv := ""
		if i < len(s.LabelValues) {
			lv = s.LabelValues[i]
		}
		pairs = append(pairs, fmt.Sprintf("%s=%q", ln, lv))
	}
	return fmt.Sprintf("%s{%s} %s", s.Name, strings.Join(pairs, ","), s.Value)
}

// Samples is a Sample slice.
type Samples []*Sample

// Equal compares two sets of samples pairwise, order included.
func (s Samples) Equal(o Samples) bool {
	if len(s) != len(o) {
		return false
	}
	for i, sample := range s {
		if !sample.Equal(o[i]) {
			return false
		}
	}
	return true
}
