package hotels

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	coreconfig "github.com/m3rciful/staybot/core/config"
	"github.com/m3rciful/staybot/core/logger"
	"github.com/m3rciful/staybot/core/telegram/netutil"
)

const (
	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"

	dialTimeout     = 5 * time.Second
	tlsHandshake    = 5 * time.Second
	idleConnTimeout = 30 * time.Second
	retryBackoff    = 2 * time.Second
)

// Notice classifies a user-visible message emitted while a provider call is
// being retried.
type Notice int

const (
	// NoticeRetrying is sent between attempts after a bad provider status.
	NoticeRetrying Notice = iota
	// NoticeReconnecting is sent between attempts after a network failure
	// or timeout.
	NoticeReconnecting
)

// Notifier receives retry notices so the conversation can keep the user
// informed while the executor works through its attempt budget. A nil
// Notifier is allowed and suppresses notices.
type Notifier func(n Notice)

// Client talks to the hotel search provider. All calls share one underlying
// HTTP client with a per-attempt timeout; retries are driven by Do, not by
// the transport, so each attempt can surface a notice to the user.
type Client struct {
	cfg     coreconfig.HotelsConfig
	http    *http.Client
	backoff time.Duration
}

// NewClient builds a provider client from the hotels configuration section.
func NewClient(cfg coreconfig.HotelsConfig) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: idleConnTimeout}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsHandshake,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Transport: transport},
		backoff: retryBackoff,
	}
}

// Do executes the prepared request with a bounded retry loop. Every failure
// mode is treated as transient: timeouts, connection errors and non-2xx
// statuses all consume one attempt. Between attempts the notifier is told
// which kind of retry is happening; once the budget is spent, Do returns
// ErrUnavailable wrapping the last failure.
func (c *Client) Do(ctx context.Context, spec RequestSpec, notify Notifier) ([]byte, error) {
	attempts := c.cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := c.roundTrip(ctx, spec)
		if err == nil {
			if attempt > 1 {
				logger.Info(ctx, "hotels.api", "provider.recovered",
					slog.String("op", spec.Path),
					slog.Int("attempt", attempt),
				)
			}
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logger.Warn(ctx, "hotels.api", "provider.attempt_failed",
			slog.String("op", spec.Path),
			slog.Int("attempt", attempt),
			slog.Int("attempts", attempts),
			slog.Bool("retryable", attempt < attempts),
			slog.String("err", err.Error()),
		)

		if attempt == attempts {
			break
		}
		if notify != nil {
			notify(classifyNotice(err))
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoff):
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *Client) roundTrip(ctx context.Context, spec RequestSpec) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	var reqBody io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := strings.TrimSuffix(c.cfg.BaseURL, "/") + spec.Path
	if len(spec.Query) > 0 {
		target += "?" + spec.Query.Encode()
	}
	req, err := http.NewRequestWithContext(attemptCtx, spec.Method, target, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set(headerAPIHost, c.cfg.APIHost)
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, op: spec.Path}
	}

	if logger.ShouldSampleDebug() {
		logger.Debug(attemptCtx, "hotels.api", "provider.response",
			slog.String("op", spec.Path),
			slog.Int("http_code", resp.StatusCode),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		)
	}
	return data, nil
}

// statusError marks a well-formed HTTP exchange that returned a non-2xx code.
type statusError struct {
	code int
	op   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned %d for %s", e.code, e.op)
}

func classifyNotice(err error) Notice {
	var se *statusError
	if errors.As(err, &se) {
		return NoticeRetrying
	}
	if netutil.ShouldRetry(err) {
		return NoticeReconnecting
	}
	return NoticeReconnecting
}
