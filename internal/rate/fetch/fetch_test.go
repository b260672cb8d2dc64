package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hillcosite/priceguide/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFetcher(endpoints ...string) *HTTPFetcher {
	cfg := config.DefaultPipelineConfig()
	cfg.CPIEndpoints = endpoints
	cfg.FetchTimeoutSeconds = 2
	return New(config.NewStaticPipelineConfigHolder(cfg), zap.NewNop())
}

func TestFetch_ParsesRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cpiRate": 3.2, "source": "bls"}`))
	}))
	defer srv.Close()

	resolved, err := newFetcher(srv.URL).Fetch(context.Background(), 2026)
	assert.NoError(t, err)
	assert.Equal(t, 3.2, resolved.Rate)
	assert.Equal(t, "bls", resolved.Source)
}

func TestFetch_SourceDefaultsToHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cpiRate": -1.0}`))
	}))
	defer srv.Close()

	resolved, err := newFetcher(srv.URL).Fetch(context.Background(), 2026)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, resolved.Rate)
	assert.NotEmpty(t, resolved.Source)
}

func TestFetch_FallsBackToNextEndpoint(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cpiRate": 2.4, "source": "backup"}`))
	}))
	defer good.Close()

	resolved, err := newFetcher(bad.URL, good.URL).Fetch(context.Background(), 2026)
	assert.NoError(t, err)
	assert.Equal(t, 2.4, resolved.Rate)
	assert.Equal(t, "backup", resolved.Source)
}

func TestFetch_MissingRateIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"source": "bls"}`))
	}))
	defer srv.Close()

	_, err := newFetcher(srv.URL).Fetch(context.Background(), 2026)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cpiRate")
}

func TestFetch_AllEndpointsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newFetcher(srv.URL).Fetch(context.Background(), 2026)
	assert.Error(t, err)
}
