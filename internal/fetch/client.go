package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	playerPath      = "/player"
	maxSnippetBytes = 512
	DefaultTimeout  = 30 * time.Second
)

// TransportError reports a player request that did not succeed. StatusCode is
// zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type playerRequest struct {
	Payload playerPayload `json:"payload"`
}

type playerPayload struct {
	AllyCode string `json:"allyCode"`
}

// Player requests the roster document of one player and returns the raw body.
// Failures are returned as *TransportError and are never retried.
func (c *Client) Player(ctx context.Context, allyCode string) ([]byte, error) {
	url := c.baseURL + playerPath

	body, err := jsoniter.Marshal(playerRequest{Payload: playerPayload{AllyCode: allyCode}})
	if err != nil {
		return nil, errors.Wrap(err, "encoding player request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.WithStack(err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", url).Str("allyCode", allyCode).Msg("requesting player")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.Wrap(err, "reading response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       snippet(data),
			Err:        errors.Errorf("status %d", resp.StatusCode),
		}
	}

	log.Debug().Int("bytes", len(data)).Msg("player received")
	return data, nil
}

func snippet(data []byte) string {
	text := strings.TrimSpace(string(data))
	if len(text) > maxSnippetBytes {
		return text[:maxSnippetBytes] + "..."
	}
	return text
}
