// Package httpds fetches pipeline inputs over HTTP with retry and
// exponential backoff. Transient failures (network errors, 429 and 5xx
// responses) are retried; any other non-200 status fails immediately.
package httpds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config tunes the remote source. Zero values get defaults: 30s timeout,
// 3 retries, 200ms initial backoff capped at 5s.
type Config struct {
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Transport overrides the HTTP transport, for tests.
	Transport http.RoundTripper
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	} else if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 200 * time.Millisecond
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 5 * time.Second
	}
	return c
}

// Remote fetches one URL per call to Open.
type Remote struct {
	url    string
	cfg    Config
	client *http.Client

	// sleep is injectable so tests run without real backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRemote builds a Remote source for url.
func NewRemote(url string, cfg Config) *Remote {
	cfg = cfg.withDefaults()
	return &Remote{
		url: url,
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		sleep: sleepCtx,
	}
}

// Open issues a GET and returns the response body on 200. Attempts beyond
// the first wait with exponential backoff, doubling from InitialBackoff up
// to MaxBackoff; context cancellation interrupts both requests and waits.
func (r *Remote) Open(ctx context.Context) (io.ReadCloser, error) {
	backoff := r.cfg.InitialBackoff
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := r.sleep(ctx, backoff); err != nil {
				return nil, err
			}
			backoff *= 2
			if backoff > r.cfg.MaxBackoff {
				backoff = r.cfg.MaxBackoff
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
		if err != nil {
			return nil, fmt.Errorf("httpds: build request: %w", err)
		}
		resp, err := r.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp.Body, nil
		case retryable(resp.StatusCode):
			resp.Body.Close()
			lastErr = fmt.Errorf("httpds: GET %s: status %s", r.url, resp.Status)
			continue
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("httpds: GET %s: status %s", r.url, resp.Status)
		}
	}

	return nil, fmt.Errorf("httpds: GET %s: %d attempts failed: %w",
		r.url, r.cfg.MaxRetries+1, lastErr)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
