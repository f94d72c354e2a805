package relay_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hasbyte1/go-laravel-relay/relay"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// target answers with statuses in order, repeating the last one.
func target(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(hits.Add(1))
		w.WriteHeader(statuses[min(n, len(statuses))-1])
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func fastRetry(attempts int) relay.RetryConfig {
	return relay.RetryConfig{Attempts: attempts, Backoff: time.Millisecond, Timeout: time.Second}
}

func TestForwardRetriesUntilSuccess(t *testing.T) {
	srv, hits := target(t, http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusOK)
	f := relay.NewForwarder(fastRetry(3), discardLogger(), nil)

	d, err := f.Forward(context.Background(), relay.RouteConfig{Name: "r", Target: srv.URL}, []byte(`{}`), "application/json")
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if d.Attempts != 3 || d.Status != http.StatusOK || d.ID == "" {
		t.Fatalf("Delivery = %+v; want 3 attempts ending in 200", d)
	}
	if hits.Load() != 3 {
		t.Fatalf("target hits = %d; want 3", hits.Load())
	}
}

func TestForwardGivesUp(t *testing.T) {
	srv, hits := target(t, http.StatusBadGateway)
	f := relay.NewForwarder(fastRetry(2), discardLogger(), nil)

	d, err := f.Forward(context.Background(), relay.RouteConfig{Name: "r", Target: srv.URL}, nil, "application/json")
	if !errors.Is(err, relay.ErrDeliveryFailed) {
		t.Fatalf("err = %v; want ErrDeliveryFailed", err)
	}
	if d.Attempts != 2 || d.Status != http.StatusBadGateway || hits.Load() != 2 {
		t.Fatalf("Delivery = %+v, hits = %d; want 2 attempts", d, hits.Load())
	}
}

func TestForwardDoesNotRetryClientErrors(t *testing.T) {
	srv, hits := target(t, http.StatusBadRequest)
	f := relay.NewForwarder(fastRetry(5), discardLogger(), nil)

	d, err := f.Forward(context.Background(), relay.RouteConfig{Name: "r", Target: srv.URL}, nil, "application/json")
	if !errors.Is(err, relay.ErrDeliveryFailed) {
		t.Fatalf("err = %v; want ErrDeliveryFailed", err)
	}
	if d.Attempts != 1 || hits.Load() != 1 {
		t.Fatalf("Delivery = %+v, hits = %d; want a single attempt", d, hits.Load())
	}
}

func TestForwardTransportError(t *testing.T) {
	srv, _ := target(t, http.StatusOK)
	url := srv.URL
	srv.Close()

	f := relay.NewForwarder(fastRetry(2), discardLogger(), nil)
	d, err := f.Forward(context.Background(), relay.RouteConfig{Name: "r", Target: url}, nil, "application/json")
	if !errors.Is(err, relay.ErrDeliveryFailed) {
		t.Fatalf("err = %v; want ErrDeliveryFailed", err)
	}
	if d.Attempts != 2 || d.Status != 0 {
		t.Fatalf("Delivery = %+v; want 2 attempts without a status", d)
	}
}

func TestForwardStopsOnContextDone(t *testing.T) {
	srv, hits := target(t, http.StatusServiceUnavailable)
	f := relay.NewForwarder(relay.RetryConfig{Attempts: 3, Backoff: time.Hour}, discardLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	d, err := f.Forward(ctx, relay.RouteConfig{Name: "r", Target: srv.URL}, nil, "application/json")
	if !errors.Is(err, relay.ErrDeliveryFailed) {
		t.Fatalf("err = %v; want ErrDeliveryFailed", err)
	}
	if d.Attempts != 1 || hits.Load() != 1 {
		t.Fatalf("Delivery = %+v, hits = %d; want to stop after the first attempt", d, hits.Load())
	}
}

func TestForwardHeaders(t *testing.T) {
	var got http.Header
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	f := relay.NewForwarder(fastRetry(1), discardLogger(), srv.Client())
	route := relay.RouteConfig{Name: "orders", Target: srv.URL, Headers: map[string]string{"X-Source": "relay"}}
	d, err := f.Forward(context.Background(), route, []byte("id: 7\n"), "application/yaml")
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	checks := map[string]string{
		"Content-Type":     "application/yaml",
		"X-Relay-Delivery": d.ID,
		"X-Relay-Route":    "orders",
		"X-Source":         "relay",
	}
	for name, want := range checks {
		if v := got.Get(name); v != want {
			t.Errorf("header %s = %q; want %q", name, v, want)
		}
	}
	if string(body) != "id: 7\n" {
		t.Errorf("body = %q", body)
	}
}
