package envinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDetails_Empty(t *testing.T) {
	var nilDetails *Details
	if !nilDetails.Empty() {
		t.Error("nil Details should be empty")
	}
	if !(&Details{}).Empty() {
		t.Error("zero Details should be empty")
	}
	if (&Details{TimeZone: String("UTC")}).Empty() {
		t.Error("Details with one field should not be empty")
	}
	if (&Details{Location: &Location{Latitude: 1}}).Empty() {
		t.Error("Details with only a location should not be empty")
	}
}

func TestCollect(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	d := Collect(now)

	if d.LocalTime == nil || d.UTCTime == nil || d.TimeZone == nil {
		t.Fatal("Collect left a time field absent")
	}
	if *d.UTCTime != "2026-03-14 09:26:53 UTC" {
		t.Errorf("UTCTime = %q", *d.UTCTime)
	}
	if d.UserAgent != nil || d.Location != nil {
		t.Error("Collect must not invent user agent or location")
	}
}

func TestLocateWithTimeout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude": 52.52, "longitude": 13.405, "accuracy": 5000}`))
	}))
	defer srv.Close()

	loc := LocateWithTimeout(context.Background(), &HTTPLocator{Endpoint: srv.URL}, time.Second)
	if loc == nil {
		t.Fatal("expected a location")
	}
	if loc.Latitude != 52.52 || loc.Longitude != 13.405 {
		t.Errorf("location = %+v", loc)
	}
	if loc.AccuracyM != 5000 {
		t.Errorf("AccuracyM = %v, want 5000", loc.AccuracyM)
	}
}

func TestLocateWithTimeout_TimesOutToAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	start := time.Now()
	loc := LocateWithTimeout(context.Background(), &HTTPLocator{Endpoint: srv.URL}, 50*time.Millisecond)
	if loc != nil {
		t.Errorf("expected absent location on timeout, got %+v", loc)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("lookup did not respect the timeout, took %v", elapsed)
	}
}

func TestLocateWithTimeout_ServerErrorToAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if loc := LocateWithTimeout(context.Background(), &HTTPLocator{Endpoint: srv.URL}, time.Second); loc != nil {
		t.Errorf("expected absent location on refusal, got %+v", loc)
	}
}

func TestLocateWithTimeout_NilLocator(t *testing.T) {
	if loc := LocateWithTimeout(context.Background(), nil, time.Second); loc != nil {
		t.Errorf("nil locator should resolve to absent, got %+v", loc)
	}
}
