package weather_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripplanner/internal/types"
	"tripplanner/internal/weather"
)

func TestDescribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"weather": []map[string]any{{"description": "light rain"}},
		})
	}))
	defer ts.Close()

	cl, err := weather.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.Describe(ctx, types.Point{Lat: 38.72, Lng: -9.14})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "light rain" {
		t.Errorf("Describe() = %q, want %q", got, "light rain")
	}
}

func TestDescribe_NoWeatherBlock(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"cod": 200})
	}))
	defer ts.Close()

	cl, err := weather.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := cl.Describe(context.Background(), types.Point{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != weather.NotAvailable {
		t.Errorf("Describe() = %q, want the not-available sentinel", got)
	}
}

func TestDescribe_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	cl, err := weather.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := cl.Describe(context.Background(), types.Point{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := weather.New("", "", 5); err == nil {
		t.Error("expected error for missing API key")
	}
}
