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

package promslog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	lvl := &AllowedLevel{}
	if err := lvl.Set("warn"); err != nil {
		t.Fatal(err)
	}
	logger := New(&Config{Level: lvl, Writer: &buf})

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	logger.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("log output contains gated lines:\n%s", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("log output missing expected lines:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	format := &AllowedFormat{}
	if err := format.Set("json"); err != nil {
		t.Fatal(err)
	}
	logger := New(&Config{Format: format, Writer: &buf})
	logger.Info("hello", "key", "value")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestInvalidLevelAndFormat(t *testing.T) {
	if err := (&AllowedLevel{}).Set("loud"); err == nil {
		t.Error("expected error for invalid level")
	}
	if err := (&AllowedFormat{}).Set("xml"); err == nil {
		t.Error("expected error for invalid format")
	}
}
