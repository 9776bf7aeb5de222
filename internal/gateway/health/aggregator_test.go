package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roombook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func TestProbe_MixedDownstreamHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected probe path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	agg := NewAggregator(2*time.Second, testLogger())
	agg.Register("Room Directory", healthy.URL)
	agg.Register("Booking Ledger", failing.URL)
	agg.Register("Email Notifier", dead.URL)

	report := agg.Probe(context.Background())

	if report.Gateway != StatusOnline {
		t.Errorf("gateway must always report online, got %q", report.Gateway)
	}
	if len(report.Services) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Services))
	}

	if got := report.Services["Room Directory"]; got.Status != StatusOnline {
		t.Errorf("expected online, got %+v", got)
	}
	if got := report.Services["Booking Ledger"]; got.Status != StatusDegraded || got.Code != http.StatusInternalServerError {
		t.Errorf("expected degraded 500, got %+v", got)
	}
	if got := report.Services["Email Notifier"]; got.Status != StatusOffline || got.Error == "" {
		t.Errorf("expected offline with error detail, got %+v", got)
	}
}

func TestProbe_SlowServiceIsBounded(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()

	agg := NewAggregator(100*time.Millisecond, testLogger())
	agg.Register("Availability Checker", slow.URL)

	start := time.Now()
	report := agg.Probe(context.Background())
	elapsed := time.Since(start)

	if elapsed > 2*time.Second {
		t.Fatalf("probe was not bounded by its timeout, took %s", elapsed)
	}
	if got := report.Services["Availability Checker"]; got.Status != StatusOffline {
		t.Errorf("expected timed-out service offline, got %+v", got)
	}
}

func TestProbe_NoTargets(t *testing.T) {
	agg := NewAggregator(time.Second, testLogger())

	report := agg.Probe(context.Background())
	if report.Gateway != StatusOnline {
		t.Errorf("expected online gateway, got %q", report.Gateway)
	}
	if len(report.Services) != 0 {
		t.Errorf("expected empty service map, got %+v", report.Services)
	}
}
