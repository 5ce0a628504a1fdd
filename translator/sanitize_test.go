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

package translator

import (
	"regexp"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"service-name", "service_name"},
		{"Stack", "stack"},
		{"$Host", "host"},
		{"32metricName", "metricname"},
		{"3metricName", "metricname"},
		{"3metr1c", "metr1c"},
		{"1234", InvalidName},
		{"response_code_", "response_code"},
		{"dirty:Label", "dirty_label"},
		{"foo.service", "foo_service"},
		{"myservice", "myservice"},
		{"", InvalidName},
		{"_", InvalidName},
		{"___", InvalidName},
		{"$$$", InvalidName},
		{"_leading_underscore", "leading_underscore"},
		{"__9__9__x__", "x"},
		{"UPPER_CASE", "upper_case"},
		{"a", "a"},
		{"a1_b2", "a1_b2"},
		{"with space", "with_space"},
		{"tab\tand\nnewline", "tab_and_newline"},
		{"ünïcode", "n_code"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := Sanitize(test.input); got != test.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", test.input, got, test.expected)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"service-name", "Stack", "$Host", "32metricName", "1234",
		"response_code_", "dirty:Label", "", "_", "already_clean",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeOutputGrammar(t *testing.T) {
	validRE := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	inputs := []string{
		"", " ", "_", "1234", "99 red balloons", "a-b-c", "Foo.Bar",
		"metric:name:with:colons", "__reserved__", "0_0", "x",
		"CamelCaseName42", "trailing____", "\x00\x01", "日本語",
	}
	for _, input := range inputs {
		got := Sanitize(input)
		if got == InvalidName {
			continue
		}
		if !validRE.MatchString(got) {
			t.Errorf("Sanitize(%q) = %q does not match %s", input, got, validRE)
		}
	}
}
