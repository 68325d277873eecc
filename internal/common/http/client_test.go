package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte("document-bytes"))
	}))
	defer server.Close()

	data, err := NewClient(5*time.Second).FetchBytes(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("document-bytes"), data)
}

func TestFetchBytes_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(5*time.Second).FetchBytes(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestPutCallback(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	err := NewClient(5*time.Second).PutCallback(context.Background(), server.URL, []byte(`{"Status":"SUCCESS"}`))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	// The presigned URL signature covers a blank Content-Type.
	assert.Empty(t, gotContentType)
	assert.Equal(t, []byte(`{"Status":"SUCCESS"}`), gotBody)
}

func TestPutCallback_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := NewClient(5*time.Second).PutCallback(context.Background(), server.URL, []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
