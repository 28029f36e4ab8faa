package dto

// CompetitorSnapshotDTO represents one scraped competitor rate set in API responses
type CompetitorSnapshotDTO struct {
	ID          uint    `json:"id"`
	HotelID     uint    `json:"hotel_id"`
	StayDate    string  `json:"stay_date"`
	AvgPrice    float64 `json:"avg_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	SampleCount int     `json:"sample_count"`
	Currency    string  `json:"currency"`
	Source      string  `json:"source"`
	ScrapedAt   string  `json:"scraped_at"`
}

// RecordCompetitorSnapshotRequest stores competitor rates observed for a stay date
type RecordCompetitorSnapshotRequest struct {
	HotelUUID   string  `json:"-"`
	StayDate    string  `json:"stay_date" validate:"required,datetime=2006-01-02"`
	AvgPrice    float64 `json:"avg_price" validate:"required,gt=0"`
	MinPrice    float64 `json:"min_price" validate:"required,gt=0"`
	MaxPrice    float64 `json:"max_price" validate:"required,gt=0"`
	SampleCount int     `json:"sample_count" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Source      string  `json:"source" validate:"omitempty,oneof=scraper import manual"`
}

// RecordCompetitorSnapshotResponse represents the response to storing a snapshot
type RecordCompetitorSnapshotResponse struct {
	Message  string                `json:"message"`
	Snapshot CompetitorSnapshotDTO `json:"snapshot"`
}

// ListCompetitorSnapshotsRequest represents query parameters for listing snapshots
type ListCompetitorSnapshotsRequest struct {
	HotelUUID string `json:"-"`
	From      string `json:"from" query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to" query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ListCompetitorSnapshotsResponse represents the latest snapshot per stay date
type ListCompetitorSnapshotsResponse struct {
	Message string                  `json:"message"`
	Items   []CompetitorSnapshotDTO `json:"items"`
}

// SyncCompetitorPricesResponse reports the outcome of a manual scraper sync
type SyncCompetitorPricesResponse struct {
	Message      string `json:"message"`
	HotelsSynced int    `json:"hotels_synced"`
	DatesCovered int    `json:"dates_covered"`
	ScrapeErrors int    `json:"scrape_errors"`
}
