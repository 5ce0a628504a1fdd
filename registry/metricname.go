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
	"fmt"
	"sort"
	"strings"
)

// MetricName identifies a measurement series: a raw name plus a set of string
// tags. Two MetricNames with the same name and the same tag pairs are the same
// identifier regardless of tag insertion order. MetricName is immutable after
// construction.
type MetricName struct {
	name string
	tags map[string]string
	key  string
}

// NewMetricName builds an identifier from a raw name and tags. The tag map is
// copied; the caller keeps ownership of the argument. A nil tag map is
// equivalent to an empty one.
func NewMetricName(name string, tags map[string]string) MetricName {
	t := make(map[string]string, len(tags))
	for k, v := range tags {
		t[k] = v
	}
	return MetricName{name: name, tags: t, key: canonicalKey(name, t)}
}

// Name returns the raw, unsanitized metric name.
func (n MetricName) Name() string {
	return n.name
}

// Tags returns a copy of the tag set.
func (n MetricName) Tags() map[string]string {
	t := make(map[string]string, len(n.tags))
	for k, v := range n.tags {
		t[k] = v
	}
	return t
}

// SortedTagKeys returns the tag keys in lexicographic order.
func (n MetricName) SortedTagKeys() []string {
	keys := make([]string, 0, len(n.tags))
	for k := range n.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tag returns the value for a single tag key.
func (n MetricName) Tag(key string) (string, bool) {
	v, ok := n.tags[key]
	return v, ok
}

// Key returns a canonical string form of the identifier, usable as a map key
// and as a total ordering for stable registry iteration.
func (n MetricName) Key() string {
	return n.key
}

// String implements Stringer.
func (n MetricName) String() string {
	if len(n.tags) == 0 {
		return n.name
	}
	pairs := make([]string, 0, len(n.tags))
	for _, k := range n.SortedTagKeys() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, n.tags[k]))
	}
	return fmt.Sprintf("%s{%s}", n.name, strings.Join(pairs, ", "))
}

func canonicalKey(name string, tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	for _, k := range keys {
		b.WriteByte(0)
		b.WriteString(k)
		b.WriteByte(1)
		b.WriteString(tags[k])
	}
	return b.String()
}
