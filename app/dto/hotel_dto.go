package dto

// HotelDTO represents a hotel in API responses
type HotelDTO struct {
	ID            uint    `json:"id"`
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Category      string  `json:"category"`
	RoomCount     int     `json:"room_count"`
	BasePrice     float64 `json:"base_price"`
	Currency      string  `json:"currency"`
	ScrapeEnabled *bool   `json:"scrape_enabled,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// CreateHotelRequest represents the request to enroll a new hotel
type CreateHotelRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
	Country     string  `json:"country" validate:"required,len=2"`
	Category    string  `json:"category" validate:"omitempty,oneof=budget midscale upscale luxury"`
	RoomCount   int     `json:"room_count" validate:"required,gt=0"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	ScrapeQuery *string `json:"scrape_query,omitempty" validate:"omitempty,max=500"`
}

// CreateHotelResponse represents the response to enrolling a new hotel
type CreateHotelResponse struct {
	Message string   `json:"message"`
	Hotel   HotelDTO `json:"hotel"`
}

// UpdateHotelRequest represents the request to update an existing hotel
type UpdateHotelRequest struct {
	UUID          string   `json:"-"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,oneof=budget midscale upscale luxury"`
	RoomCount     *int     `json:"room_count,omitempty" validate:"omitempty,gt=0"`
	BasePrice     *float64 `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	ScrapeEnabled *bool    `json:"scrape_enabled,omitempty"`
	ScrapeQuery   *string  `json:"scrape_query,omitempty" validate:"omitempty,max=500"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// UpdateHotelResponse represents the response to updating a hotel
type UpdateHotelResponse struct {
	Message string   `json:"message"`
	Hotel   HotelDTO `json:"hotel"`
}

// GetHotelResponse represents a single hotel response
type GetHotelResponse struct {
	Message string   `json:"message"`
	Hotel   HotelDTO `json:"hotel"`
}

// ListHotelsRequest represents the paging parameters for listing hotels
type ListHotelsRequest struct {
	Page     int     `json:"page" query:"page"`
	PageSize int     `json:"page_size" query:"page_size"`
	City     *string `json:"city,omitempty" query:"city"`
}

// ListHotelsResponse represents a page of hotels
type ListHotelsResponse struct {
	Message string     `json:"message"`
	Items   []HotelDTO `json:"items"`
	Total   int64      `json:"total"`
}
