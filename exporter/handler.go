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

package exporter

import (
	"log/slog"
	"net/http"

	"github.com/prometheus-community/tritium_exporter/expfmt"
)

// Handler returns an http.Handler serving e's families in the negotiated
// exposition format. Encoding errors after the header is written can only be
// logged; the scrape itself is already under way.
func Handler(e *Exporter, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fams := e.Families()

		format := expfmt.Negotiate(r.Header)
		w.Header().Set("Content-Type", string(format))

		enc, err := expfmt.NewEncoder(w, format)
		if err != nil {
			logger.Error("no encoder for negotiated format", "format", format, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		for _, f := range fams {
			if err := enc.Encode(f); err != nil {
				logger.Warn("error encoding family", "family", f.Name, "err", err)
				return
			}
		}
	})
}
