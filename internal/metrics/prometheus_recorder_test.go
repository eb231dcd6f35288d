// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveHTTPRequest(http.MethodGet, "/db/metadata.json", http.StatusOK, 20*time.Millisecond)
	pr.ObserveHTTPRequest(http.MethodGet, "/db/metadata.json", http.StatusOK, 10*time.Millisecond)
	pr.IncServerConfigSave(ResultOf(nil))
	pr.IncServerConfigSave(ResultOf(errors.New("boom")))
	pr.IncMetadataReload(ResultSuccess)
	pr.SetMetadataOptions("owner", 4)
	pr.IncAlertSent(ResultFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(pr.httpRequests.WithLabelValues("GET", "/db/metadata.json", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.configSaves.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.configSaves.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.metadataReloads.WithLabelValues("success")))
	assert.Equal(t, 4.0, testutil.ToFloat64(pr.metadataOptions.WithLabelValues("owner")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.alertsSent.WithLabelValues("failed")))
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncMetadataReload(ResultFailed)

	rec := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `netalert_metadata_reloads_total{result="failed"} 1`))
	assert.Contains(t, body, "go_goroutines")
}

func TestNilPrometheusRecorder(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncServerConfigSave(ResultSuccess)
		pr.SetMetadataOptions("owner", 1)
	})
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveHTTPRequest("GET", "/", 200, time.Second)
		r.IncMetadataReload(ResultSuccess)
	})
}
