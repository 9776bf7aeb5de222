package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "roombook/pkg/errors"
)

func TestTranslateError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCode   string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"validation failed","code":"VALIDATION_ERROR"}`, apperrors.CodeValidation},
		{"unprocessable", http.StatusUnprocessableEntity, `{"error":"bad interval"}`, apperrors.CodeValidation},
		{"not found", http.StatusNotFound, `{"error":"Room not found","code":"NOT_FOUND"}`, apperrors.CodeNotFound},
		{"conflict", http.StatusConflict, `{"error":"Room already booked"}`, apperrors.CodeConflict},
		{"unavailable", http.StatusServiceUnavailable, `{"error":"down"}`, apperrors.CodeUnavailable},
		{"bad gateway", http.StatusBadGateway, ``, apperrors.CodeUnavailable},
		{"gateway timeout", http.StatusGatewayTimeout, ``, apperrors.CodeUnavailable},
		{"teapot", http.StatusTeapot, `{"error":"weird"}`, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewRoomClient(server.URL, 2*time.Second)
			_, err := c.Lookup(context.Background(), "LAB-01")
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := apperrors.CodeOf(err); code != tt.wantCode {
				t.Errorf("expected %s, got %s (err=%v)", tt.wantCode, code, err)
			}
		})
	}
}

func TestTranslateError_CarriesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Booking time overlaps with existing booking (19:00 - 21:00)"}`))
	}))
	defer server.Close()

	c := NewBookingClient(server.URL, 2*time.Second)
	_, err := c.GetByID(context.Background(), "b-1")
	if err == nil {
		t.Fatal("expected an error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Message != "Booking time overlaps with existing booking (19:00 - 21:00)" {
		t.Errorf("remote message not carried through, got %q", appErr.Message)
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewRoomClient(server.URL, 500*time.Millisecond)
	_, err := c.Lookup(context.Background(), "LAB-01")
	if code := apperrors.CodeOf(err); code != apperrors.CodeUnavailable {
		t.Errorf("expected %s, got %s (err=%v)", apperrors.CodeUnavailable, code, err)
	}
}

func TestClient_DecodesSuccessEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms/LAB-01" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"LAB-01","name":"Laboratory 1","location":"Building A, Floor 1","capacity":30,"available":true}}`))
	}))
	defer server.Close()

	c := NewRoomClient(server.URL, 2*time.Second)
	room, err := c.Lookup(context.Background(), "LAB-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Name != "Laboratory 1" || room.Capacity != 30 || !room.Available {
		t.Errorf("room not decoded correctly: %+v", room)
	}
}
