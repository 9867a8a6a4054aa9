package throttle_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oceanbio/obisgo/client/throttle"
)

func noLogger() *slog.Logger { return nil }

func TestNewRoundTripper_RejectsZeroValues(t *testing.T) {
	if _, err := throttle.NewRoundTripper(0, 1, noLogger, http.DefaultTransport); !errors.Is(err, throttle.ErrMustNotBeZero) {
		t.Errorf("rps=0: expected ErrMustNotBeZero, got: %v", err)
	}
	if _, err := throttle.NewRoundTripper(1, 0, noLogger, http.DefaultTransport); !errors.Is(err, throttle.ErrMustNotBeZero) {
		t.Errorf("burst=0: expected ErrMustNotBeZero, got: %v", err)
	}
}

func TestRoundTrip_LimitsRate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	rt, err := throttle.NewRoundTripper(10, 1, noLogger, http.DefaultTransport)
	if err != nil {
		t.Fatalf("building round tripper: %v", err)
	}
	hc := &http.Client{Transport: rt}

	// Burst of 1 at 10rps: the second call must wait roughly 100ms.
	start := time.Now()
	for i := 0; i < 2; i++ {
		resp, err := hc.Get(ts.URL)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		resp.Body.Close()
	}

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("two requests completed in %v, throttle not applied", elapsed)
	}
}

func TestRoundTrip_CancelledContext(t *testing.T) {
	rt, err := throttle.NewRoundTripper(1, 1, noLogger, http.DefaultTransport)
	if err != nil {
		t.Fatalf("building round tripper: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:0", nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := rt.RoundTrip(req); !errors.Is(err, throttle.ErrContextEnded) {
		t.Errorf("expected ErrContextEnded, got: %v", err)
	}
}
