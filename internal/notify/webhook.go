package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WebhookProvider posts the run summary to a Slack-compatible incoming
// webhook: a human-readable text block plus the structured summary.
type WebhookProvider struct {
	url    string
	client *http.Client
}

func NewWebhook(url string) *WebhookProvider {
	return &WebhookProvider{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Text    string     `json:"text"`
	Summary RunSummary `json:"summary"`
}

func (p *WebhookProvider) Notify(ctx context.Context, summary RunSummary) error {
	body, err := json.Marshal(webhookPayload{
		Text:    renderText(summary),
		Summary: summary,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func renderText(summary RunSummary) string {
	var b strings.Builder
	if summary.Success {
		fmt.Fprintf(&b, "✅ Pricing inflation applied for %d: %d entries updated at %.2f%% CPI",
			summary.Year, summary.PricesUpdated, summary.CPIRate)
		if summary.RateSource != "" {
			fmt.Fprintf(&b, " (%s)", summary.RateSource)
		}
		for _, change := range summary.SampleChanges {
			fmt.Fprintf(&b, "\n• %s: %s → %s", change.Name, change.OldPrice, change.NewPrice)
		}
	} else {
		fmt.Fprintf(&b, "❌ Pricing inflation failed for %d: %s", summary.Year, summary.Error)
	}
	return b.String()
}
