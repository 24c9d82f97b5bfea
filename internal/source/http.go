package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/time/rate"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
)

// providerError carries the HTTP status so retries can be limited to
// server-side failures.
type providerError struct {
	Code int
	URL  string
}

func (e *providerError) Error() string {
	return fmt.Sprintf("provider returned %d for %s", e.Code, e.URL)
}

type providerPage struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Records    []wireRecord `json:"records"`
}

type wireRecord struct {
	ArtistName   string   `json:"artist_name"`
	SongName     string   `json:"song_name"`
	Popularity   *float64 `json:"popularity"`
	Valence      *float64 `json:"valence"`
	Danceability *float64 `json:"danceability"`
	Mode         *int     `json:"mode"`
	Explicit     *bool    `json:"explicit"`
	Loudness     *float64 `json:"loudness"`
	DurationMs   *float64 `json:"duration_ms"`
}

// Fetcher retrieves raw song records from the provider's paginated
// JSON endpoint, one request per second, retrying server errors.
type Fetcher struct {
	BaseURL string
	Client  *http.Client

	limiter *rate.Limiter
}

// NewFetcher returns a Fetcher for the given endpoint URL.
func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(1*time.Second), 1),
	}
}

// Fetch downloads all pages of records.
func (f *Fetcher) Fetch(ctx context.Context) ([]dataset.SongRecord, error) {
	var records []dataset.SongRecord

	page := 1 // First page is 1
	pages := 0
	for {
		var body providerPage
		err := retry.Do(
			func() error {
				var err error
				body, err = f.getPage(ctx, page)
				return err
			},
			retry.RetryIf(func(err error) bool {
				if perr, ok := err.(*providerError); ok {
					return perr.Code/100 == 5
				}
				return false
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		if pages == 0 {
			pages = body.TotalPages
		}
		for _, w := range body.Records {
			records = append(records, w.toRecord())
		}

		page++
		if page > pages {
			break
		}
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (f *Fetcher) getPage(ctx context.Context, page int) (providerPage, error) {
	var body providerPage

	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return body, fmt.Errorf("parsing provider url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return body, err
	}
	req.Header.Set("User-Agent", "chart-audio-tools/1.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return body, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return body, &providerError{Code: resp.StatusCode, URL: u.String()}
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return body, fmt.Errorf("decoding page %d: %w", page, err)
	}
	return body, nil
}

func (w wireRecord) toRecord() dataset.SongRecord {
	rec := dataset.SongRecord{
		ArtistName:   w.ArtistName,
		SongName:     w.SongName,
		Popularity:   w.Popularity,
		Valence:      w.Valence,
		Danceability: w.Danceability,
		Loudness:     w.Loudness,
		DurationMs:   w.DurationMs,
	}
	if w.Mode != nil {
		rec.Mode = strconv.Itoa(*w.Mode)
	}
	if w.Explicit != nil {
		rec.Explicit = strconv.FormatBool(*w.Explicit)
	}
	return rec
}
