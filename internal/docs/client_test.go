package docs

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_MissingCredential(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "", server.Client())

	resp, err := client.Call(context.Background(), http.MethodGet, "/version/v2-main", nil, nil)

	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Nil(t, resp)
	assert.Equal(t, int32(0), hits.Load(), "no request may be sent without a credential")
}

func TestCall_Headers(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", "secret-key", server.Client())

	t.Run("defaults", func(t *testing.T) {
		_, err := client.Call(context.Background(), http.MethodGet, "/version", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "application/json", got.Get("Accept"))
		want := "Basic " + base64.StdEncoding.EncodeToString([]byte("secret-key"))
		assert.Equal(t, want, got.Get("Authorization"))
	})

	t.Run("caller headers win", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("accept", "text/plain")
		headers.Set("x-readme-version", "v2-main")

		_, err := client.Call(context.Background(), http.MethodGet, "/version", nil, headers)
		require.NoError(t, err)

		assert.Equal(t, []string{"text/plain"}, got.Values("Accept"))
		assert.Equal(t, "v2-main", got.Get(VersionHeader))
	})
}

func TestCall_ReturnsRawResponse(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantOK       bool
		wantNotFound bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"version":"v2-main"}`, wantOK: true},
		{name: "created", status: http.StatusCreated, body: `{}`, wantOK: true},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"VERSION_NOTFOUND"}`, wantNotFound: true},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"APIKEY_NOTFOUND"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(server.Close)

			client := NewClient(server.URL, "key", server.Client())
			resp, err := client.Call(context.Background(), http.MethodGet, "/version/x", nil, nil)

			require.NoError(t, err, "status codes are never turned into errors")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantOK, resp.OK())
			assert.Equal(t, tt.wantNotFound, resp.NotFound())
			assert.Equal(t, tt.body, string(resp.Body))
		})
	}
}

func TestCall_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, "key", nil)
	_, err := client.Call(context.Background(), http.MethodGet, "/version", nil, nil)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingCredential))
	assert.Contains(t, err.Error(), "GET /version failed")
}

func TestResponseJSON(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, Body: []byte(`[{"_id":"abc","title":"Swagger Petstore"}]`)}

	var specs []Spec
	require.NoError(t, resp.JSON(&specs))
	assert.Equal(t, []Spec{{ID: "abc", Title: "Swagger Petstore"}}, specs)

	bad := &Response{Body: []byte("<html>")}
	assert.Error(t, bad.JSON(&specs))
}

func TestNewAPIError(t *testing.T) {
	t.Run("json body is compacted", func(t *testing.T) {
		resp := &Response{StatusCode: 500, Body: []byte("{\n  \"error\": \"INTERNAL\",\n  \"message\": \"boom\"\n}\n")}
		err := NewAPIError("version lookup", resp)

		assert.Equal(t, `version lookup failed with status 500: {"error":"INTERNAL","message":"boom"}`, err.Error())
	})

	t.Run("plain body kept as text", func(t *testing.T) {
		resp := &Response{StatusCode: 502, Body: []byte("  Bad Gateway\n")}
		err := NewAPIError("spec upload", resp)

		assert.Equal(t, 502, err.StatusCode)
		assert.True(t, strings.HasSuffix(err.Error(), ": Bad Gateway"))
	})
}
