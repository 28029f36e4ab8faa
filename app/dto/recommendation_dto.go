package dto

// RecommendPriceRequest asks the engine for a price recommendation
type RecommendPriceRequest struct {
	HotelUUID    string   `json:"-"`
	TargetDate   string   `json:"target_date" validate:"required,datetime=2006-01-02"`
	CurrentPrice *float64 `json:"current_price,omitempty" validate:"omitempty,gt=0"`
}

// RecommendationFactorsDTO is the display subset of the factors behind a recommendation
type RecommendationFactorsDTO struct {
	DemandLevel        string  `json:"demand_level"`
	CompetitorAvgPrice float64 `json:"competitor_avg_price"`
	SeasonalityFactor  float64 `json:"seasonality_factor"`
	OccupancyTrend     string  `json:"occupancy_trend"`
	DayOfWeek          string  `json:"day_of_week"`
	IsWeekend          bool    `json:"is_weekend"`
	IsHoliday          bool    `json:"is_holiday"`
}

// PriceRecommendationDTO represents one recommendation in API responses
type PriceRecommendationDTO struct {
	HotelUUID        string                   `json:"hotel_uuid"`
	TargetDate       string                   `json:"target_date"`
	CurrentPrice     float64                  `json:"current_price"`
	RecommendedPrice float64                  `json:"recommended_price"`
	MinPrice         float64                  `json:"min_price"`
	MaxPrice         float64                  `json:"max_price"`
	Currency         string                   `json:"currency"`
	Confidence       float64                  `json:"confidence"`
	Reasoning        string                   `json:"reasoning"`
	Factors          RecommendationFactorsDTO `json:"factors"`
	ServedFromCache  bool                     `json:"served_from_cache"`
}

// RecommendPriceResponse wraps a single recommendation
type RecommendPriceResponse struct {
	Message        string                 `json:"message"`
	Recommendation PriceRecommendationDTO `json:"recommendation"`
}

// RecommendCalendarRequest asks for recommendations across a span of future dates
type RecommendCalendarRequest struct {
	HotelUUID    string   `json:"-"`
	From         string   `json:"from" query:"from" validate:"required,datetime=2006-01-02"`
	Days         int      `json:"days" query:"days" validate:"omitempty,gte=1,lte=60"`
	CurrentPrice *float64 `json:"current_price,omitempty" query:"current_price" validate:"omitempty,gt=0"`
}

// RecommendCalendarResponse represents recommendations for consecutive dates
type RecommendCalendarResponse struct {
	Message string                   `json:"message"`
	Items   []PriceRecommendationDTO `json:"items"`
}

// ListRecommendationLogsRequest represents the paging parameters for the audit listing
type ListRecommendationLogsRequest struct {
	HotelUUID string `json:"-"`
	Page      int    `json:"page" query:"page"`
	PageSize  int    `json:"page_size" query:"page_size"`
}

// RecommendationLogDTO represents one stored recommendation audit row
type RecommendationLogDTO struct {
	UUID             string  `json:"uuid"`
	TargetDate       string  `json:"target_date"`
	CurrentPrice     float64 `json:"current_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	Confidence       float64 `json:"confidence"`
	Reasoning        string  `json:"reasoning"`
	ServedFromCache  bool    `json:"served_from_cache"`
	CreatedAt        string  `json:"created_at"`
}

// ListRecommendationLogsResponse represents a page of recommendation audit rows
type ListRecommendationLogsResponse struct {
	Message string                 `json:"message"`
	Items   []RecommendationLogDTO `json:"items"`
	Total   int64                  `json:"total"`
}
