package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hillcosite/priceguide/internal/config"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"go.uber.org/zap"
)

// Fetcher obtains a CPI rate for a year from an external service. Treated as
// unreliable: callers fall back or fail, never retry here.
type Fetcher interface {
	Fetch(ctx context.Context, year int) (*ratedomain.Resolved, error)
}

type rateResponse struct {
	CPIRate *float64 `json:"cpiRate"`
	Source  string   `json:"source"`
}

// HTTPFetcher tries each configured endpoint in order and returns the first
// usable rate.
type HTTPFetcher struct {
	client *http.Client
	cfg    *config.PipelineConfigHolder
	log    *zap.Logger
}

func New(cfg *config.PipelineConfigHolder, log *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{},
		cfg:    cfg,
		log:    log.Named("rate.fetch"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, year int) (*ratedomain.Resolved, error) {
	cfg := f.cfg.Get()
	if len(cfg.CPIEndpoints) == 0 {
		return nil, fmt.Errorf("no CPI endpoints configured")
	}

	timeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	var lastErr error
	for _, endpoint := range cfg.CPIEndpoints {
		resolved, err := f.fetchOne(ctx, endpoint, year, timeout)
		if err != nil {
			f.log.Warn("cpi endpoint failed",
				zap.String("endpoint", endpoint),
				zap.Int("year", year),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		return resolved, nil
	}
	return nil, fmt.Errorf("all CPI endpoints failed: %w", lastErr)
}

func (f *HTTPFetcher) fetchOne(ctx context.Context, endpoint string, year int, timeout time.Duration) (*ratedomain.Resolved, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("year", strconv.Itoa(year))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.CPIRate == nil {
		return nil, fmt.Errorf("response missing cpiRate")
	}

	source := body.Source
	if source == "" {
		source = u.Host
	}
	return &ratedomain.Resolved{Rate: *body.CPIRate, Source: source}, nil
}
