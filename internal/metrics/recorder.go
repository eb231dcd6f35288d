// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import "time"

// ResultLabel enumerates operation outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// ResultOf maps an operation error to its result label.
func ResultOf(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}

// Recorder receives the metrics of the admin server.
type Recorder interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
	IncServerConfigSave(result ResultLabel)
	IncMetadataReload(result ResultLabel)
	SetMetadataOptions(group string, n int)
	IncAlertSent(result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured, and in tests).
type NoopRecorder struct{}

func (NoopRecorder) ObserveHTTPRequest(string, string, int, time.Duration) {}
func (NoopRecorder) IncServerConfigSave(ResultLabel)                       {}
func (NoopRecorder) IncMetadataReload(ResultLabel)                         {}
func (NoopRecorder) SetMetadataOptions(string, int)                        {}
func (NoopRecorder) IncAlertSent(ResultLabel)                              {}
