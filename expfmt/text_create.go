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

package expfmt

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus-community/tritium_exporter/model"
)

// FamilyToText writes f in the text exposition format version 0.0.4: a # HELP
// and # TYPE line followed by one line per sample. Label braces carry a
// trailing comma after every pair and integral float values render with a
// trailing ".0", for compatibility with the simpleclient text writer. It
// returns the number of bytes written and any error encountered.
func FamilyToText(out io.Writer, f *model.SampleFamily) (written int, err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	n, err := w.WriteString("# HELP " + f.Name + " " + escapeString(f.Help, false) + "\n")
	written += n
	if err != nil {
		return written, err
	}
	n, err = w.WriteString("# TYPE " + f.Name + " " + f.Kind.String() + "\n")
	written += n
	if err != nil {
		return written, err
	}

	for _, s := range f.Samples {
		n, err = writeSample(w, s)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteFamilies renders all families in order.
func WriteFamilies(out io.Writer, fams model.Families) (written int, err error) {
	for _, f := range fams {
		n, err := FamilyToText(out, f)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func writeSample(w *bufio.Writer, s *model.Sample) (written int, err error) {
	n, err := w.WriteString(s.Name)
	written += n
	if err != nil {
		return written, err
	}

	if len(s.LabelNames) > 0 {
		if err := w.WriteByte('{'); err != nil {
			return written, err
		}
		written++
		for i, ln := range s.LabelNames {
			lv := ""
			if i < len(s.LabelValues) {
				lv = s.LabelValues[i]
			}
			n, err = w.WriteString(ln + `="` + escapeString(lv, true) + `",`)
			written += n
			if err != nil {
				return written, err
			}
		}
		if err := w.WriteByte('}'); err != nil {
			return written, err
		}
		written++
	}

	n, err = w.WriteString(" " + formatValue(float64(s.Value)) + "\n")
	written += n
	return written, err
}

// formatValue renders a float the way the exposition format renders doubles:
// shortest representation, but integral values keep a ".0" suffix.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var (
	helpEscaper  = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)
)

// escapeString escapes backslashes and newlines, plus double quotes when the
// string is used as a label value.
func escapeString(s string, includeDoubleQuote bool) string {
	if includeDoubleQuote {
		return valueEscaper.Replace(s)
	}
	return helpEscaper.Replace(s)
}
