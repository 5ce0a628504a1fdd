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

package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouting(t *testing.T) {
	router := New()
	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics = %d, want 200", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /missing = %d, want 404", w.Code)
	}
}

func TestParamContext(t *testing.T) {
	router := New()
	var got string
	router.Get("/series/:name", func(w http.ResponseWriter, r *http.Request) {
		got = Param(r.Context(), "name")
	})

	r := httptest.NewRequest(http.MethodGet, "/series/up", nil)
	router.ServeHTTP(httptest.NewRecorder(), r)
	if got != "up" {
		t.Errorf("Param(name) = %q, want %q", got, "up")
	}

	if v := Param(r.Context(), "unset"); v != "" {
		t.Errorf("unset param = %q, want empty", v)
	}
}
