// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "netalert"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	httpRequests    *prom.CounterVec
	httpDuration    *prom.HistogramVec
	configSaves     *prom.CounterVec
	metadataReloads *prom.CounterVec
	metadataOptions *prom.GaugeVec
	alertsSent      *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them, together
// with the Go runtime and process collectors, on reg. A nil reg gets a fresh
// registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		registry: reg,
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
		configSaves: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "server_config_saves_total",
			Help:      "Server configuration saves by result",
		}, []string{"result"}),
		metadataReloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_reloads_total",
			Help:      "Metadata document reloads by result",
		}, []string{"result"}),
		metadataOptions: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "metadata_options",
			Help:      "Number of options per metadata group",
		}, []string{"group"}),
		alertsSent: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_sent_total",
			Help:      "Alert e-mails handed to the SMTP server by result",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		pr.httpRequests,
		pr.httpDuration,
		pr.configSaves,
		pr.metadataReloads,
		pr.metadataOptions,
		pr.alertsSent,
	)

	return pr
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncServerConfigSave(result ResultLabel) {
	if p == nil {
		return
	}
	p.configSaves.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncMetadataReload(result ResultLabel) {
	if p == nil {
		return
	}
	p.metadataReloads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) SetMetadataOptions(group string, n int) {
	if p == nil {
		return
	}
	p.metadataOptions.WithLabelValues(group).Set(float64(n))
}

func (p *PrometheusRecorder) IncAlertSent(result ResultLabel) {
	if p == nil {
		return
	}
	p.alertsSent.WithLabelValues(string(result)).Inc()
}
