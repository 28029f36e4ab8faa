package dto

// HistoricalRecordDTO represents one day of hotel performance data in API responses
type HistoricalRecordDTO struct {
	ID                 uint     `json:"id"`
	HotelID            uint     `json:"hotel_id"`
	Date               string   `json:"date"`
	OccupancyRate      float64  `json:"occupancy_rate"`
	ADR                float64  `json:"adr"`
	RoomsSold          int      `json:"rooms_sold"`
	TotalRevenue       float64  `json:"total_revenue"`
	TotalCosts         float64  `json:"total_costs"`
	RevPAR             float64  `json:"revpar"`
	CompetitorAvgPrice *float64 `json:"competitor_avg_price,omitempty"`
	CompetitorMinPrice *float64 `json:"competitor_min_price,omitempty"`
	CompetitorMaxPrice *float64 `json:"competitor_max_price,omitempty"`
	WeatherScore       *float64 `json:"weather_score,omitempty"`
	EventImpactScore   *float64 `json:"event_impact_score,omitempty"`
	IsWeekend          bool     `json:"is_weekend"`
	IsHoliday          bool     `json:"is_holiday"`
}

// HistoricalRecordInput is one record in an import or upsert request
type HistoricalRecordInput struct {
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	OccupancyRate      float64  `json:"occupancy_rate" validate:"gte=0,lte=100"`
	ADR                float64  `json:"adr" validate:"gte=0"`
	RoomsSold          int      `json:"rooms_sold" validate:"gte=0"`
	TotalRevenue       float64  `json:"total_revenue" validate:"gte=0"`
	TotalCosts         float64  `json:"total_costs" validate:"gte=0"`
	CompetitorAvgPrice *float64 `json:"competitor_avg_price,omitempty" validate:"omitempty,gt=0"`
	CompetitorMinPrice *float64 `json:"competitor_min_price,omitempty" validate:"omitempty,gt=0"`
	CompetitorMaxPrice *float64 `json:"competitor_max_price,omitempty" validate:"omitempty,gt=0"`
	WeatherScore       *float64 `json:"weather_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	EventImpactScore   *float64 `json:"event_impact_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsHoliday          bool     `json:"is_holiday"`
}

// UpsertHistoricalRecordRequest upserts one day of data for a hotel
type UpsertHistoricalRecordRequest struct {
	HotelUUID string                `json:"-"`
	Record    HistoricalRecordInput `json:"record" validate:"required"`
}

// UpsertHistoricalRecordResponse represents the response to a single-day upsert
type UpsertHistoricalRecordResponse struct {
	Message string              `json:"message"`
	Record  HistoricalRecordDTO `json:"record"`
}

// ImportHistoricalRecordsRequest imports a batch of daily records for a hotel
type ImportHistoricalRecordsRequest struct {
	HotelUUID string                  `json:"-"`
	Records   []HistoricalRecordInput `json:"records" validate:"required,min=1,dive"`
}

// ImportHistoricalRecordsResponse represents the response to a batch import
type ImportHistoricalRecordsResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// ListHistoricalRecordsRequest represents the query parameters for listing records
type ListHistoricalRecordsRequest struct {
	HotelUUID string `json:"-"`
	From      string `json:"from" query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to" query:"to" validate:"omitempty,datetime=2006-01-02"`
	Page      int    `json:"page" query:"page"`
	PageSize  int    `json:"page_size" query:"page_size"`
}

// ListHistoricalRecordsResponse represents a page of historical records
type ListHistoricalRecordsResponse struct {
	Message string                `json:"message"`
	Items   []HistoricalRecordDTO `json:"items"`
	Total   int64                 `json:"total"`
}

// RevenueSummaryRequest represents the query parameters for a revenue summary
type RevenueSummaryRequest struct {
	HotelUUID string `json:"-"`
	From      string `json:"from" query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to" query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// RevenueSummaryResponse aggregates a hotel's performance over a date range
type RevenueSummaryResponse struct {
	Message         string  `json:"message"`
	Days            int64   `json:"days"`
	AvgOccupancy    float64 `json:"avg_occupancy"`
	AvgADR          float64 `json:"avg_adr"`
	RevPAR          float64 `json:"revpar"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	GrossMargin     float64 `json:"gross_margin"`
	WeekendAvgOcc   float64 `json:"weekend_avg_occ"`
	WeekdayAvgOcc   float64 `json:"weekday_avg_occ"`
	DaysWithScrapes int64   `json:"days_with_scrapes"`
}
