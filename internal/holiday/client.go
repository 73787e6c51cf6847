// Package holiday fetches public holidays from an external feed and
// caches them per year. The feed speaks the Nager.Date JSON shape:
// GET {base}/{year}/{countryCode} returning a list of {date, name,
// localName} objects.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// Config holds the feed location and request behavior.
type Config struct {
	BaseURL     string
	CountryCode string
	Timeout     time.Duration
	MaxRetries  int
}

// DefaultConfig targets the public Nager.Date API for Norway.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://date.nager.at/api/v3/PublicHolidays",
		CountryCode: "NO",
		Timeout:     5 * time.Second,
		MaxRetries:  2,
	}
}

// Client fetches and caches public holidays. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	mu    sync.Mutex
	cache map[int][]domain.Holiday
}

// NewClient creates a feed client. A nil httpClient gets a default
// with a dial timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		cfg:   cfg,
		http:  httpClient,
		cache: make(map[int][]domain.Holiday),
	}
}

// feedEntry is one holiday in the feed's JSON response.
type feedEntry struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// Holidays returns the holidays falling inside [from, to]. The window
// may span a year boundary, in which case both years are fetched.
func (c *Client) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)
	if to.Before(from) {
		return nil, nil
	}

	var all []domain.Holiday
	for year := from.Year(); year <= to.Year(); year++ {
		hs, err := c.year(ctx, year)
		if err != nil {
			return nil, err
		}
		all = append(all, hs...)
	}

	result := all[:0]
	for _, h := range all {
		if !h.Date.Before(from) && !h.Date.After(to) {
			result = append(result, h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (c *Client) year(ctx context.Context, year int) ([]domain.Holiday, error) {
	c.mu.Lock()
	cached, ok := c.cache[year]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		hs, err := c.fetch(ctx, year)
		if err == nil {
			c.mu.Lock()
			c.cache[year] = hs
			c.mu.Unlock()
			return hs, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("fetching holidays for %d: %w", year, lastErr)
}

func (c *Client) fetch(ctx context.Context, year int) ([]domain.Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", c.cfg.BaseURL, year, c.cfg.CountryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var entries []feedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	holidays := make([]domain.Holiday, 0, len(entries))
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		holidays = append(holidays, domain.Holiday{
			Name:      e.Name,
			LocalName: e.LocalName,
			Date:      d,
		})
	}
	return holidays, nil
}
