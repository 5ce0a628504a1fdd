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

// The tritium_exporter binary exposes the metrics of a tagged Tritium-style
// registry in Prometheus exposition formats, alongside the process's own
// metrics.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prometheus-community/tritium_exporter/config"
	"github.com/prometheus-community/tritium_exporter/exporter"
	"github.com/prometheus-community/tritium_exporter/promslog"
	promslogflag "github.com/prometheus-community/tritium_exporter/promslog/flag"
	"github.com/prometheus-community/tritium_exporter/registry"
	"github.com/prometheus-community/tritium_exporter/route"
	"github.com/prometheus-community/tritium_exporter/sysmetrics"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		app           = kingpin.New("tritium_exporter", "Exposes tagged Tritium registry metrics in Prometheus exposition formats.")
		configFile    = app.Flag("config.file", "Path to the YAML configuration file. Empty uses built-in defaults.").Default("").String()
		listenAddress = app.Flag("web.listen-address", "Address to listen on for telemetry. Overrides the config file when set.").Default("").String()
		telemetryPath = app.Flag("web.telemetry-path", "Path under which to expose metrics. Overrides the config file when set.").Default("").String()
		promslogCfg   = &promslog.Config{}
	)
	promslogflag.AddFlags(app, promslogCfg)
	app.Version(version)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := promslog.New(promslogCfg)

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		logger.Error("failed to load configuration", "file", *configFile, "err", err)
		return 1
	}
	if *listenAddress != "" {
		cfg.Web.ListenAddress = *listenAddress
	}
	if *telemetryPath != "" {
		cfg.Web.TelemetryPath = *telemetryPath
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}
	logger.Debug("effective configuration", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := registry.NewRegistry()
	if cfg.Collectors.System {
		collector := sysmetrics.New(logger.With("component", "sysmetrics"))
		collector.Register(reg)
		go collector.Run(ctx, time.Duration(cfg.Collectors.ScrapeInterval))
	}

	exp := exporter.New(reg, logger.With("component", "exporter"))

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, exp}
	metricsHandler := promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{
			ErrorLog:      slogErrorLogger{logger},
			ErrorHandling: promhttp.ContinueOnError,
		}),
	)

	router := route.New()
	router.Get(cfg.Web.TelemetryPath, metricsHandler.ServeHTTP)
	router.Get("/-/healthy", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	})
	router.Head("/-/healthy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/-/ready", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	})
	router.Get("/", landingPage(cfg.Web.TelemetryPath))

	srv := &http.Server{
		Addr:         cfg.Web.ListenAddress,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening for telemetry", "address", cfg.Web.ListenAddress, "path", cfg.Web.TelemetryPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		logger.Error("http server failed", "err", err)
		return 1
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		return 1
	}
	return 0
}

func landingPage(telemetryPath string) http.HandlerFunc {
	page := []byte(`<html>
<head><title>Tritium Exporter</title></head>
<body>
<h1>Tritium Exporter</h1>
<p><a href="` + telemetryPath + `">Metrics</a></p>
</body>
</html>
`)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

// slogErrorLogger adapts slog to promhttp's print-style logger.
type slogErrorLogger struct {
	logger *slog.Logger
}

func (l slogErrorLogger) Println(v ...interface{}) {
	l.logger.Error(fmt.Sprintln(v...))
}
