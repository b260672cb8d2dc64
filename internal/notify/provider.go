package notify

import "context"

// RunSummary is the payload sent to the notification channel after a live
// pipeline run. Delivery is best-effort: failures are logged by the caller
// and never change the run's outcome.
type RunSummary struct {
	Success       bool     `json:"success"`
	Year          int      `json:"year"`
	CPIRate       float64  `json:"cpi_rate"`
	RateSource    string   `json:"rate_source,omitempty"`
	PricesUpdated int      `json:"prices_updated"`
	SampleChanges []Change `json:"sample_changes,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type Change struct {
	Name     string `json:"name"`
	OldPrice string `json:"old_price"`
	NewPrice string `json:"new_price"`
}

type Provider interface {
	Notify(ctx context.Context, summary RunSummary) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Notify(ctx context.Context, summary RunSummary) error {
	return nil
}
