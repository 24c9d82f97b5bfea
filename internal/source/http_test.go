package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"golang.org/x/time/rate"
)

func newTestFetcher(baseURL string) *Fetcher {
	f := NewFetcher(baseURL)
	f.limiter = rate.NewLimiter(rate.Inf, 1)
	return f
}

func TestFetchPaginates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{
			"page": %s,
			"total_pages": 2,
			"records": [
				{"artist_name": "Artist %s", "song_name": "Song %s",
				 "popularity": 80, "valence": 0.4, "danceability": 0.6,
				 "mode": 1, "explicit": false, "loudness": -7.2, "duration_ms": 210000}
			]
		}`, page, page, page)
	}))
	defer server.Close()

	records, err := newTestFetcher(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("fetched %d records, want 2", len(records))
	}
	if records[0].ArtistName != "Artist 1" || records[1].ArtistName != "Artist 2" {
		t.Errorf("pages out of order: %+v", records)
	}
	if records[0].Mode != "1" {
		t.Errorf("Mode = %q, want \"1\"", records[0].Mode)
	}
	if records[0].Explicit != "false" {
		t.Errorf("Explicit = %q, want \"false\"", records[0].Explicit)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "try again", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"page": 1, "total_pages": 1, "records": []}`)
	}))
	defer server.Close()

	if _, err := newTestFetcher(server.URL).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Errorf("server called %d times, want a retry after the 502", calls)
	}
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := newTestFetcher(server.URL).Fetch(context.Background()); err == nil {
		t.Fatal("Fetch should fail on 404")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retry on 4xx)", calls)
	}
}
