// Package aerodatabox fetches airport flight schedules from the AeroDataBox
// API in half-day windows.
package aerodatabox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/saviobatista/route-builder/internal/config"
	"github.com/saviobatista/route-builder/internal/stats"
	"github.com/saviobatista/route-builder/internal/types"
)

const (
	headerHost = "x-rapidapi-host"
	headerKey  = "x-rapidapi-key"

	// Lengths of the error excerpts kept in markers and printed in warnings
	bodyExcerptLen    = 200
	warningExcerptLen = 80
)

// scheduleQuery asks for both directions and every flight category, without positions
var scheduleQuery = url.Values{
	"withLeg":        {"true"},
	"direction":      {"Both"},
	"withCancelled":  {"true"},
	"withCodeshared": {"true"},
	"withCargo":      {"true"},
	"withPrivate":    {"true"},
	"withLocation":   {"false"},
}

// Client issues schedule requests against the AeroDataBox airport endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	stats      *stats.Stats
	logger     *log.Logger
}

// New creates a client from the loaded configuration and an API key
func New(cfg *config.Config, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		host:       cfg.APIHost,
		apiKey:     apiKey,
		logger:     log.Default(),
	}
}

// SetStats attaches a statistics collector to record request outcomes
func (c *Client) SetStats(s *stats.Stats) {
	c.stats = s
}

// SetLogger overrides the logger used for fetch warnings
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

// WindowURL builds the request URL for one half-day window
func (c *Client) WindowURL(codeType, code string, day time.Time, half types.HalfDay) string {
	date := day.Format(types.DateLayout)
	return fmt.Sprintf("%s/%s/%s/%sT%s/%sT%s?%s",
		c.baseURL, codeType, code, date, half.From, date, half.To, scheduleQuery.Encode())
}

// FetchWindow fetches one half-day window. Failures are returned as an error
// marker payload together with the error text, so a caller can keep going.
func (c *Client) FetchWindow(ctx context.Context, codeType, code string, day time.Time, half types.HalfDay) (json.RawMessage, string) {
	if c.stats != nil {
		c.stats.IncrementRequests()
	}

	raw, errText := c.fetch(ctx, c.WindowURL(codeType, code, day, half))
	if errText != "" {
		if c.stats != nil {
			c.stats.IncrementFailedWindows()
		}
		return types.NewErrorMarker(errText), errText
	}

	if c.stats != nil {
		c.stats.IncrementFetchedWindows()
	}
	return raw, ""
}

func (c *Client) fetch(ctx context.Context, target string) (json.RawMessage, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Sprintf("request error: %v", err)
	}
	req.Header.Set(headerHost, c.host)
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Sprintf("request error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Sprintf("request error: reading body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Sprintf("%d %s", resp.StatusCode, truncate(string(body), bodyExcerptLen))
	}

	if !json.Valid(body) {
		return nil, fmt.Sprintf("JSON error: %v", decodeError(body))
	}

	return json.RawMessage(body), ""
}

// FetchWeek fetches every half-day window of the 7 days starting at start,
// one request at a time. Each window's result is kept under its key whether
// it succeeded or not. Only cancellation of ctx stops the run early.
func (c *Client) FetchWeek(ctx context.Context, codeType, code string, start time.Time) (types.CombinedSchedule, error) {
	combined := make(types.CombinedSchedule, types.WindowDays*len(types.HalfDays))

	for _, day := range types.WindowDates(start) {
		for _, half := range types.HalfDays {
			if err := ctx.Err(); err != nil {
				return combined, fmt.Errorf("schedule fetch interrupted: %w", err)
			}

			raw, errText := c.FetchWindow(ctx, codeType, code, day, half)
			combined[types.WindowKey(day, half.Label)] = raw
			if errText != "" {
				c.logger.Printf("Warning: %s %s -> %s", day.Format(types.DateLayout), half.Label, truncate(errText, warningExcerptLen))
			}
		}
	}

	return combined, nil
}

func decodeError(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}
	return fmt.Errorf("invalid JSON")
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
