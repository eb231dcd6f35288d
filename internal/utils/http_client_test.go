// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_PropagatesTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient()

	_, err := client.R().SetContext(WithTraceID(context.Background(), "trace-1")).Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "trace-1", got)

	_, err = client.R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, got)
}
