// Package services provides external service integrations and technical concerns like scraping and tokens
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rately/rately/config"
)

// ScraperClient fetches competitor rates from the external scraper service
type ScraperClient interface {
	FetchRates(ctx context.Context, query string, stayDate time.Time) (*CompetitorRates, error)
}

// CompetitorRates holds aggregated competitor prices for one stay date
type CompetitorRates struct {
	StayDate    string  `json:"stay_date"`
	AvgPrice    float64 `json:"avg_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	SampleCount int     `json:"sample_count"`
	Currency    string  `json:"currency"`
}

// ScraperClientImpl implements ScraperClient
type ScraperClientImpl struct {
	config *config.ScraperConfig
	client *http.Client
}

// NewScraperClient creates a new scraper client instance
func NewScraperClient(cfg *config.ScraperConfig) ScraperClient {
	return &ScraperClientImpl{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchRates queries the scraper for competitor rates on a stay date
func (s *ScraperClientImpl) FetchRates(ctx context.Context, query string, stayDate time.Time) (*CompetitorRates, error) {
	endpoint, err := url.Parse(s.config.BaseURL + "/v1/rates")
	if err != nil {
		return nil, fmt.Errorf("invalid scraper base URL: %w", err)
	}

	params := endpoint.Query()
	params.Set("query", query)
	params.Set("stay_date", stayDate.Format("2006-01-02"))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scraper request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper returned status %d", resp.StatusCode)
	}

	var rates CompetitorRates
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("failed to decode scraper response: %w", err)
	}

	if rates.MinPrice > rates.AvgPrice || rates.AvgPrice > rates.MaxPrice {
		return nil, fmt.Errorf("scraper returned inconsistent prices: min=%.2f avg=%.2f max=%.2f", rates.MinPrice, rates.AvgPrice, rates.MaxPrice)
	}

	return &rates, nil
}
