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
	"strings"
)

// InvalidName is returned by Sanitize for inputs that contain no usable
// characters at all, e.g. "1234" or "$$$". It is itself a valid metric and
// label name, so callers never have to special-case it.
const InvalidName = "invalid_prometheus_metric_or_label_name"

// Regexp for name characters that must be replaced with _.
var invalidNameCharRE = regexp.MustCompile(`[^a-zA-Z0-9_]`)

const leadingStrip = "_0123456789"

// Sanitize maps an arbitrary registry-supplied name to a name matching
// ^[a-z][a-z0-9_]*$. Characters outside [a-zA-Z0-9_] become underscores, the
// result is lower-cased, leading underscores and digits as well as trailing
// underscores are trimmed. If nothing remains, InvalidName is returned.
//
// Sanitize is total and idempotent. Distinct inputs may collapse onto the
// same output (e.g. "foo" and "FOO"); resolving such collisions is the
// caller's concern.
func Sanitize(name string) string {
	s := strings.ToLower(invalidNameCharRE.ReplaceAllString(name, "_"))
	s = strings.TrimLeft(s, leadingStrip)
	s = strings.TrimRight(s, "_")
	if s == "" {
		return InvalidName
	}
	return s
}
