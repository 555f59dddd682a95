// Package alquran is a read-only client for the api.alquran.cloud REST API.
//
// All transport-level failures are translated into the small taxonomy in
// errors.go before they reach callers; no raw *url.Error or status code
// escapes this package.
//
// # Usage
//
//	client := alquran.NewClient("", 0, "", logger)
//	surahs, err := client.GetSurahs(ctx)
package alquran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hmaged/mushaf/internal/entities"
)

const (
	// DefaultBaseURL is the public api.alquran.cloud endpoint.
	DefaultBaseURL = "https://api.alquran.cloud/v1"

	// DefaultTimeout bounds every API call.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "Mushaf/1.0 (https://github.com/hmaged/mushaf)"
)

// Client fetches Quran content from api.alquran.cloud.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates an API client. Zero values select the public endpoint,
// the default timeout and user agent.
func NewClient(baseURL string, timeout time.Duration, userAgent string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// envelope is the wrapper every API response arrives in.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// GetSurahs returns all 114 surahs in canonical order.
func (c *Client) GetSurahs(ctx context.Context) ([]entities.Surah, error) {
	var surahs []entities.Surah
	if err := c.get(ctx, "/surah", &surahs); err != nil {
		return nil, err
	}
	if len(surahs) == 0 {
		return nil, newError(KindUnknown, "surah list response was empty", nil)
	}
	return surahs, nil
}

// GetSurah returns one surah with its full ordered verse list.
func (c *Client) GetSurah(ctx context.Context, number int) (*entities.SurahDetail, error) {
	if !entities.IsValidSurahNumber(number) {
		return nil, newError(KindNotFound, fmt.Sprintf("surah %d does not exist", number), nil)
	}

	var detail entities.SurahDetail
	if err := c.get(ctx, "/surah/"+strconv.Itoa(number), &detail); err != nil {
		return nil, err
	}
	if detail.Number != number || len(detail.Ayahs) == 0 {
		return nil, newError(KindUnknown, fmt.Sprintf("malformed response for surah %d", number), nil)
	}
	return &detail, nil
}

// SearchVerses searches verse text for query. A surahNumber of 0 searches
// the whole text; otherwise the search is scoped to that surah. Matches
// keep the relevance order returned by the API; count is the API-reported
// total.
func (c *Client) SearchVerses(ctx context.Context, query string, surahNumber int) ([]entities.SearchResult, int, error) {
	scope := "all"
	if surahNumber != 0 {
		if !entities.IsValidSurahNumber(surahNumber) {
			return nil, 0, newError(KindNotFound, fmt.Sprintf("surah %d does not exist", surahNumber), nil)
		}
		scope = strconv.Itoa(surahNumber)
	}

	var result struct {
		Count   int                     `json:"count"`
		Matches []entities.SearchResult `json:"matches"`
	}
	if err := c.get(ctx, "/search/"+url.PathEscape(query)+"/"+scope, &result); err != nil {
		return nil, 0, err
	}
	return result.Matches, result.Count, nil
}

// GetRandomAyah returns one random verse with its parent surah embedded.
func (c *Client) GetRandomAyah(ctx context.Context) (*entities.RandomAyah, error) {
	var ayah entities.RandomAyah
	if err := c.get(ctx, "/ayah/random", &ayah); err != nil {
		return nil, err
	}
	if ayah.Number == 0 || ayah.Surah.Number == 0 {
		return nil, newError(KindUnknown, "malformed random verse response", nil)
	}
	return &ayah, nil
}

// get performs one API call and decodes the enveloped payload into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return newError(KindUnknown, "could not build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("api request", zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return translateTransport(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return newError(KindRateLimited, "rate limit exceeded, please try again later", nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return newError(KindServerError, "server error, please try again later", nil)
	case resp.StatusCode == http.StatusNotFound:
		return newError(KindNotFound, "requested content was not found", nil)
	case resp.StatusCode != http.StatusOK:
		return newError(KindUnknown, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return newError(KindUnknown, "could not decode API response", err)
	}
	if env.Code != http.StatusOK {
		return newError(KindUnknown, fmt.Sprintf("API error: %s", env.Status), nil)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newError(KindUnknown, "could not decode API payload", err)
	}
	return nil
}

func translateTransport(err error) *Error {
	var uerr *url.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &uerr) && uerr.Timeout()) {
		return newError(KindTimeout, "request timed out, please check your connection", err)
	}
	return newError(KindUnknown, "network error, please check your connection", err)
}
