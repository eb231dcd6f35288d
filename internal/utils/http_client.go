// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace ID between the console and the server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Requests whose context carries a trace ID (see [WithTraceID]) are sent
// with the [TraceIDHeader] header, so server log entries can be matched with
// console actions.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(propagateTraceID)
	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok && req.Header.Get(TraceIDHeader) == "" {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
