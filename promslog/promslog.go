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

// Package promslog defines standardized ways to initialize the Go standard
// library's log/slog logger. It should typically only ever be imported by
// main packages.
package promslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// LevelFlagOptions are the valid --log.level values.
	LevelFlagOptions = []string{"debug", "info", "warn", "error"}
	// FormatFlagOptions are the valid --log.format values.
	FormatFlagOptions = []string{"logfmt", "json"}
)

// AllowedLevel is a settable identifier for the minimum level a log entry
// must have.
type AllowedLevel struct {
	s   string
	lvl *slog.LevelVar
}

func (l *AllowedLevel) String() string {
	return l.s
}

// Set updates the value of the allowed level.
func (l *AllowedLevel) Set(s string) error {
	if l.lvl == nil {
		l.lvl = &slog.LevelVar{}
	}
	switch strings.ToLower(s) {
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	case "info":
		l.lvl.Set(slog.LevelInfo)
	case "warn":
		l.lvl.Set(slog.LevelWarn)
	case "error":
		l.lvl.Set(slog.LevelError)
	default:
		return fmt.Errorf("unrecognized log level %s", s)
	}
	l.s = s
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (l *AllowedLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	return l.Set(s)
}

// AllowedFormat is a settable identifier for the output format that the
// logger can have.
type AllowedFormat struct {
	s string
}

func (f *AllowedFormat) String() string {
	return f.s
}

// Set updates the value of the allowed format.
func (f *AllowedFormat) Set(s string) error {
	switch s {
	case "logfmt", "json":
		f.s = s
	default:
		return fmt.Errorf("unrecognized log format %s", s)
	}
	return nil
}

// Config is a struct containing configurable settings for the logger.
type Config struct {
	Level  *AllowedLevel
	Format *AllowedFormat
	Writer io.Writer
}

// New returns a new slog.Logger. Each logged line will be annotated with a
// timestamp. The output always goes to stderr unless overridden in config.
func New(config *Config) *slog.Logger {
	if config.Level == nil {
		config.Level = &AllowedLevel{}
		_ = config.Level.Set("info")
	}
	if config.Writer == nil {
		config.Writer = os.Stderr
	}

	logHandlerOpts := &slog.HandlerOptions{
		Level: config.Level.lvl,
	}
	if config.Format != nil && config.Format.s == "json" {
		return slog.New(slog.NewJSONHandler(config.Writer, logHandlerOpts))
	}
	return slog.New(slog.NewTextHandler(config.Writer, logHandlerOpts))
}

// NewNopLogger is a convenience function to return a slog.Logger that
// discards all log output.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
