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

// Package exporter binds a tagged registry to scrape-time consumers: it runs
// the translator on demand and offers the result both as sample families and
// as a client_golang-compatible Gatherer.
package exporter

import (
	"log/slog"

	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus-community/tritium_exporter/expfmt"
	"github.com/prometheus-community/tritium_exporter/model"
	"github.com/prometheus-community/tritium_exporter/registry"
	"github.com/prometheus-community/tritium_exporter/translator"
)

// Exporter translates a tagged registry on every call. It holds no state
// between scrapes and is safe for concurrent use.
type Exporter struct {
	reg        registry.TaggedRegistry
	translator *translator.Translator
}

// New returns an exporter reading from reg. A nil logger discards skip
// diagnostics.
func New(reg registry.TaggedRegistry, logger *slog.Logger) *Exporter {
	return &Exporter{
		reg:        reg,
		translator: translator.New(logger),
	}
}

// Families runs one export pass and returns the translated sample families.
func (e *Exporter) Families() model.Families {
	return e.translator.Export(e.reg)
}

// Gather implements prometheus.Gatherer, so an Exporter can be served by
// promhttp or merged into prometheus.Gatherers alongside other collectors.
// It never returns an error: translation is best-effort by design.
func (e *Exporter) Gather() ([]*dto.MetricFamily, error) {
	return expfmt.FamiliesToDTO(e.Families()), nil
}
