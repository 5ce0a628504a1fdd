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

// Package config holds the YAML configuration for the exporter binary.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v2"

	"github.com/prometheus-community/tritium_exporter/model"
)

// DefaultConfig is the config used when no file or field is given.
var DefaultConfig = Config{
	Web: WebConfig{
		ListenAddress: ":9858",
		TelemetryPath: "/metrics",
	},
	Collectors: CollectorsConfig{
		System:         true,
		ScrapeInterval: model.Duration(15 * time.Second),
	},
}

// Config is the top-level exporter configuration.
type Config struct {
	Web        WebConfig        `yaml:"web,omitempty"`
	Collectors CollectorsConfig `yaml:"collectors,omitempty"`
}

// WebConfig configures the HTTP exposition surface.
type WebConfig struct {
	ListenAddress string `yaml:"listen_address,omitempty"`
	TelemetryPath string `yaml:"telemetry_path,omitempty"`
}

// CollectorsConfig toggles the built-in metric collectors.
type CollectorsConfig struct {
	System         bool           `yaml:"system"`
	ScrapeInterval model.Duration `yaml:"scrape_interval,omitempty"`
}

// String renders the effective configuration as YAML.
func (c Config) String() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<error creating config string: %s>", err)
	}
	return string(b)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*c = DefaultConfig
	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the config for inconsistencies and fills in defaults for
// fields left empty.
func (c *Config) Validate() error {
	if c.Web.ListenAddress == "" {
		c.Web.ListenAddress = DefaultConfig.Web.ListenAddress
	}
	if c.Web.TelemetryPath == "" {
		c.Web.TelemetryPath = DefaultConfig.Web.TelemetryPath
	}
	if !strings.HasPrefix(c.Web.TelemetryPath, "/") {
		return fmt.Errorf("telemetry_path %q must start with /", c.Web.TelemetryPath)
	}
	if c.Collectors.ScrapeInterval <= 0 {
		c.Collectors.ScrapeInterval = DefaultConfig.Collectors.ScrapeInterval
	}
	return nil
}

// Load parses the YAML-encoded config and validates it.
func Load(s string) (*Config, error) {
	// An empty document never reaches UnmarshalYAML, so seed the defaults
	// here as well.
	cfg := DefaultConfig
	if err := yaml.UnmarshalStrict([]byte(s), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses the given YAML config file. An empty filename
// yields the default configuration.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		cfg := DefaultConfig
		return &cfg, nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing YAML file %s: %w", filename, err)
	}
	return cfg, nil
}
