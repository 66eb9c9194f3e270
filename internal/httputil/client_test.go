// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/filing-converter/pkg/types"
)

func TestNewClient_SetsUserAgentAndTimeout(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "filing-converter/test"})
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "filing-converter/test", gotUA)
}

func TestNewClient_KeepsExplicitUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")

	resp, err := NewClient(types.HTTPConfig{UserAgent: "default"}).Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "custom", gotUA)
}

func TestNewClient_DoesNotRetry(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	resp, err := NewClient(types.HTTPConfig{UserAgent: "ua"}).Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestCheckHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","environment":"development"}`))
	}))
	defer ts.Close()

	h, err := CheckHealth(context.Background(), ts.Client(), ts.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, Health{Status: "ok", Environment: "development"}, h)
}

func TestCheckHealth_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name:    "non-200",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) },
			wantErr: "HTTP 503",
		},
		{
			name:    "bad json",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("up")) },
			wantErr: "parsing health response",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := CheckHealth(context.Background(), ts.Client(), ts.URL)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
