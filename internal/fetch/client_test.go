package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestPlayer(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rosterUnit":[{"id":"u1"}]}`))
	}))
	defer server.Close()

	client := New(server.URL+"/", time.Second)
	data, err := client.Player(context.Background(), "659735537")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/player", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "659735537", gjson.GetBytes(gotBody, "payload.allyCode").String())
	assert.JSONEq(t, `{"rosterUnit":[{"id":"u1"}]}`, string(data))
}

func TestPlayer_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "player not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL, time.Second).Player(context.Background(), "000000000")
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Equal(t, "player not found", transportErr.Body)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestPlayer_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, time.Second).Player(context.Background(), "659735537")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Zero(t, transportErr.StatusCode)
}

func TestPlayer_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(server.URL, time.Second).Player(ctx, "659735537")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlayer_NoRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := New(server.URL, time.Second).Player(context.Background(), "659735537")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Minute}
	client := New("http://localhost:3000", 0, WithHTTPClient(custom))
	assert.Same(t, custom, client.httpClient)
	assert.Equal(t, "http://localhost:3000", client.baseURL)
}

func TestSnippet(t *testing.T) {
	long := strings.Repeat("x", maxSnippetBytes+10)
	assert.Len(t, snippet([]byte(long)), maxSnippetBytes+3)
	assert.Equal(t, "short", snippet([]byte("  short\n")))
}
