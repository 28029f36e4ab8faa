package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rately/rately/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraperServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, ScraperClient) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewScraperClient(&config.ScraperConfig{
		BaseURL: server.URL,
		APIKey:  "test-api-key",
		Timeout: 5 * time.Second,
	})
	return server, client
}

func TestFetchRates(t *testing.T) {
	ctx := context.Background()
	stayDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		_, client := newTestScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/rates", r.URL.Path)
			assert.Equal(t, "hotels near lisbon", r.URL.Query().Get("query"))
			assert.Equal(t, "2026-04-10", r.URL.Query().Get("stay_date"))
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(CompetitorRates{
				StayDate:    "2026-04-10",
				AvgPrice:    108.50,
				MinPrice:    89.00,
				MaxPrice:    132.00,
				SampleCount: 7,
				Currency:    "EUR",
			})
		})

		rates, err := client.FetchRates(ctx, "hotels near lisbon", stayDate)
		require.NoError(t, err)
		require.NotNil(t, rates)
		assert.InDelta(t, 108.50, rates.AvgPrice, 0.001)
		assert.InDelta(t, 89.00, rates.MinPrice, 0.001)
		assert.InDelta(t, 132.00, rates.MaxPrice, 0.001)
		assert.Equal(t, 7, rates.SampleCount)
		assert.Equal(t, "EUR", rates.Currency)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		_, client := newTestScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		rates, err := client.FetchRates(ctx, "hotels near lisbon", stayDate)
		require.Error(t, err)
		assert.Nil(t, rates)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		_, client := newTestScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		rates, err := client.FetchRates(ctx, "hotels near lisbon", stayDate)
		require.Error(t, err)
		assert.Nil(t, rates)
	})

	t.Run("InconsistentPrices", func(t *testing.T) {
		_, client := newTestScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(CompetitorRates{
				AvgPrice: 80.00,
				MinPrice: 95.00,
				MaxPrice: 130.00,
			})
		})

		rates, err := client.FetchRates(ctx, "hotels near lisbon", stayDate)
		require.Error(t, err)
		assert.Nil(t, rates)
		assert.Contains(t, err.Error(), "inconsistent prices")
	})

	t.Run("ContextCancelled", func(t *testing.T) {
		_, client := newTestScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		rates, err := client.FetchRates(cancelledCtx, "hotels near lisbon", stayDate)
		require.Error(t, err)
		assert.Nil(t, rates)
	})
}
