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

package sysmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prometheus-community/tritium_exporter/registry"
)

func TestRegisterPublishesGauges(t *testing.T) {
	reg := registry.NewRegistry()
	c := New(nil)
	c.Register(reg)

	require.Equal(t, 7, reg.Len())
	for _, e := range reg.Each() {
		g, ok := e.Metric.(registry.Gauge)
		require.True(t, ok, "metric %s is not a gauge", e.Name)
		// Nothing sampled yet, payloads must be absent rather than zero.
		require.Nil(t, g.Value())
	}
}

func TestSamplePopulatesMemory(t *testing.T) {
	reg := registry.NewRegistry()
	c := New(nil)
	c.Register(reg)
	c.Sample(context.Background())

	total := gaugeValue(t, reg, "system.memory.total_bytes")
	require.NotNil(t, total)
	require.Positive(t, total.(uint64))
}

func gaugeValue(t *testing.T, reg *registry.DefaultRegistry, name string) any {
	t.Helper()
	for _, e := range reg.Each() {
		if e.Name.Name() == name {
			return e.Metric.(registry.Gauge).Value()
		}
	}
	t.Fatalf("gauge %s not registered", name)
	return nil
}
