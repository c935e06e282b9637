package hotels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	coreconfig "github.com/m3rciful/staybot/core/config"
)

func testClient(baseURL string) *Client {
	c := NewClient(coreconfig.HotelsConfig{
		BaseURL:       baseURL,
		APIKey:        "test-key",
		APIHost:       "test-host",
		Locale:        "en_US",
		Currency:      "USD",
		RetryAttempts: 3,
	})
	c.backoff = time.Millisecond
	return c
}

func TestDoStopsAfterAttemptBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var notices []Notice
	c := testClient(srv.URL)
	_, err := c.Do(context.Background(), RequestSpec{Method: "GET", Path: "/x"}, func(n Notice) {
		notices = append(notices, n)
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want exactly 3", got)
	}
	// Notices fire between attempts, never after the last one.
	if len(notices) != 2 {
		t.Fatalf("notices = %d, want 2", len(notices))
	}
	for _, n := range notices {
		if n != NoticeRetrying {
			t.Fatalf("notice = %v, want NoticeRetrying for bad status", n)
		}
	}
}

func TestDoRecoversMidBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	body, err := c.Do(context.Background(), RequestSpec{Method: "GET", Path: "/x"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("body = %s", body)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
}

func TestDoSendsProviderHeaders(t *testing.T) {
	var gotKey, gotHost, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Do(context.Background(), RequestSpec{
		Method: "POST",
		Path:   "/x",
		Body:   detailPayload{PropertyID: "1"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" || gotHost != "test-host" {
		t.Fatalf("headers = %q / %q", gotKey, gotHost)
	}
	if gotType != "application/json" {
		t.Fatalf("content type = %q", gotType)
	}
}

func TestDoHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(srv.URL)
	_, err := c.Do(ctx, RequestSpec{Method: "GET", Path: "/x"}, nil)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("cancellation must not be reported as unavailability: %v", err)
	}
}
