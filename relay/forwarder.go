package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Delivery describes the outcome of one forwarded payload.
type Delivery struct {
	ID       string `json:"delivery_id"`
	Attempts int    `json:"attempts"`
	// Status is the HTTP status of the last response, 0 when no response
	// was received.
	Status int `json:"status"`
}

// Forwarder POSTs shaped bodies to route targets, retrying transport errors,
// 5xx and 429 responses with linear backoff.
type Forwarder struct {
	client *http.Client
	retry  RetryConfig
	logger *slog.Logger
}

// NewForwarder creates a Forwarder whose client is instrumented with
// OpenTelemetry. A nil client uses http.DefaultTransport.
func NewForwarder(retry RetryConfig, logger *slog.Logger, client *http.Client) *Forwarder {
	if client == nil {
		client = &http.Client{Transport: http.DefaultTransport}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	instrumented := *client
	instrumented.Transport = otelhttp.NewTransport(base)
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	return &Forwarder{client: &instrumented, retry: retry, logger: logger}
}

// Forward delivers body to route.Target. It stops early when ctx is done.
// After the last failed attempt it returns the Delivery so far together
// with an error wrapping [ErrDeliveryFailed].
func (f *Forwarder) Forward(ctx context.Context, route RouteConfig, body []byte, contentType string) (Delivery, error) {
	d := Delivery{ID: uuid.New().String()}
	var lastErr error

	for attempt := 1; attempt <= f.retry.Attempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * f.retry.Backoff
			select {
			case <-ctx.Done():
				return d, fmt.Errorf("%w: %s: %v", ErrDeliveryFailed, route.Name, ctx.Err())
			case <-time.After(wait):
			}
		}

		d.Attempts = attempt
		status, err := f.send(ctx, route, d.ID, body, contentType)
		d.Status = status

		attrs := []any{
			slog.String("route", route.Name),
			slog.String("delivery_id", d.ID),
			slog.Int("attempt", attempt),
			slog.Int("status", status),
		}
		if err == nil && !retryable(status) {
			if status >= 400 {
				f.logger.Warn("delivery rejected", attrs...)
				return d, fmt.Errorf("%w: %s: target answered %d", ErrDeliveryFailed, route.Name, status)
			}
			f.logger.Info("delivery completed", attrs...)
			return d, nil
		}

		if err != nil {
			lastErr = err
			attrs = append(attrs, slog.String("error", err.Error()))
		} else {
			lastErr = fmt.Errorf("target answered %d", status)
		}
		f.logger.Warn("delivery attempt failed", attrs...)
	}
	return d, fmt.Errorf("%w: %s after %d attempts: %v", ErrDeliveryFailed, route.Name, d.Attempts, lastErr)
}

func (f *Forwarder) send(ctx context.Context, route RouteConfig, id string, body []byte, contentType string) (int, error) {
	if f.retry.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.retry.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, route.Target, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	for name, value := range route.Headers {
		req.Header.Set(name, value)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Relay-Delivery", id)
	req.Header.Set("X-Relay-Route", route.Name)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
