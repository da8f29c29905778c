package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigmonlabs/bigmonctl/internal/transport"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

func TestClientHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := transport.New(&transport.SessionCookieAuth{})
	resp, err := client.Get(context.Background(), server.URL+"/policy", nil, "secret-token")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "session_cookie=secret-token", got.Get("Cookie"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))
}

func TestClientQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := transport.New(&transport.SessionCookieAuth{})
	_, err := client.Get(context.Background(), server.URL+"/policy", url.Values{"config": []string{"true"}}, "tok")
	require.NoError(t, err)

	assert.Equal(t, "true", gotQuery.Get("config"))
}

func TestClientPut(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := transport.New(&transport.SessionCookieAuth{})
	resp, err := client.Put(context.Background(), server.URL+"/policy", map[string]any{"name": "policy1"}, "tok")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "policy1", decoded["name"])
}

func TestClientDelete(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := transport.New(&transport.SessionCookieAuth{})
	resp, err := client.Delete(context.Background(), server.URL+"/policy", nil, "tok")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	// Deletes carry an empty JSON object body
	assert.JSONEq(t, `{}`, string(gotBody))
}

func TestClientNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // force connection refused

	client := transport.New(&transport.SessionCookieAuth{})
	_, err := client.Get(context.Background(), server.URL+"/policy", nil, "tok")
	require.Error(t, err)

	var transportErr *errors.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "get", transportErr.Op)
}

func TestClientCertValidation(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	t.Run("validation rejects self-signed certificates", func(t *testing.T) {
		client := transport.New(&transport.SessionCookieAuth{}, transport.WithCertValidation(true))
		_, err := client.Get(context.Background(), server.URL+"/policy", nil, "tok")
		require.Error(t, err)

		var transportErr *errors.TransportError
		assert.ErrorAs(t, err, &transportErr)
	})

	t.Run("disabled validation accepts self-signed certificates", func(t *testing.T) {
		client := transport.New(&transport.SessionCookieAuth{}, transport.WithCertValidation(false))
		resp, err := client.Get(context.Background(), server.URL+"/policy", nil, "tok")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
