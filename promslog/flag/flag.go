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

// Package flag defines standardized flag interactions for use with promslog
// across Prometheus components.
package flag

import (
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2"

	"github.com/prometheus-community/tritium_exporter/promslog"
)

// LevelFlagName is the canonical flag name to configure the allowed log
// level.
const LevelFlagName = "log.level"

// FormatFlagName is the canonical flag name to configure the log format.
const FormatFlagName = "log.format"

// AddFlags adds the flags used by this package to the Kingpin application.
func AddFlags(a *kingpin.Application, config *promslog.Config) {
	config.Level = &promslog.AllowedLevel{}
	a.Flag(LevelFlagName, "Only log messages with the given severity or above. One of: ["+strings.Join(promslog.LevelFlagOptions, ", ")+"]").
		Default("info").SetValue(config.Level)

	config.Format = &promslog.AllowedFormat{}
	a.Flag(FormatFlagName, "Output format of log messages. One of: ["+strings.Join(promslog.FormatFlagOptions, ", ")+"]").
		Default("logfmt").SetValue(config.Format)
}
