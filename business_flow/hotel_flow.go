package businessflow

import (
	"context"
	"strings"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/models"
	"github.com/rately/rately/repository"
	"github.com/rately/rately/utils"
)

// HotelFlow defines hotel portfolio operations
type HotelFlow interface {
	CreateHotel(ctx context.Context, req *dto.CreateHotelRequest, metadata *ClientMetadata) (*dto.CreateHotelResponse, error)
	UpdateHotel(ctx context.Context, req *dto.UpdateHotelRequest, metadata *ClientMetadata) (*dto.UpdateHotelResponse, error)
	GetHotel(ctx context.Context, hotelUUID string) (*dto.GetHotelResponse, error)
	ListHotels(ctx context.Context, req *dto.ListHotelsRequest) (*dto.ListHotelsResponse, error)
}

type HotelFlowImpl struct {
	hotelRepo repository.HotelRepository
}

func NewHotelFlow(hotelRepo repository.HotelRepository) HotelFlow {
	return &HotelFlowImpl{hotelRepo: hotelRepo}
}

// CreateHotel enrolls a new property into the pricing platform
func (f *HotelFlowImpl) CreateHotel(ctx context.Context, req *dto.CreateHotelRequest, metadata *ClientMetadata) (*dto.CreateHotelResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewBusinessError("HOTEL_NAME_REQUIRED", "Hotel name is required", ErrHotelNameRequired)
	}
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, NewBusinessError("HOTEL_CITY_REQUIRED", "Hotel city is required", ErrHotelCityRequired)
	}
	if req.RoomCount <= 0 {
		return nil, NewBusinessError("HOTEL_ROOM_COUNT_INVALID", "Room count must be greater than zero", ErrRoomCountInvalid)
	}
	if req.BasePrice <= 0 {
		return nil, NewBusinessError("HOTEL_BASE_PRICE_INVALID", "Base price must be greater than zero", ErrBasePriceInvalid)
	}

	category := req.Category
	if category == "" {
		category = models.HotelCategoryMidscale
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	hotel := &models.Hotel{
		Name:          name,
		City:          city,
		Country:       strings.ToUpper(req.Country),
		Category:      category,
		RoomCount:     req.RoomCount,
		BasePrice:     req.BasePrice,
		Currency:      currency,
		ScrapeEnabled: utils.ToPtr(true),
		ScrapeQuery:   req.ScrapeQuery,
		IsActive:      utils.ToPtr(true),
		CreatedAt:     utils.UTCNow(),
		UpdatedAt:     utils.UTCNow(),
	}

	if err := f.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, NewBusinessError("HOTEL_SAVE_FAILED", "Failed to save hotel", err)
	}

	return &dto.CreateHotelResponse{
		Message: "Hotel created successfully",
		Hotel:   ToHotelDTO(*hotel),
	}, nil
}

// UpdateHotel applies partial updates to an existing property
func (f *HotelFlowImpl) UpdateHotel(ctx context.Context, req *dto.UpdateHotelRequest, metadata *ClientMetadata) (*dto.UpdateHotelResponse, error) {
	hotel, err := f.findHotel(ctx, req.UUID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewBusinessError("HOTEL_NAME_REQUIRED", "Hotel name is required", ErrHotelNameRequired)
		}
		hotel.Name = name
	}
	if req.Category != nil {
		switch *req.Category {
		case models.HotelCategoryBudget, models.HotelCategoryMidscale, models.HotelCategoryUpscale, models.HotelCategoryLuxury:
			hotel.Category = *req.Category
		default:
			return nil, NewBusinessError("HOTEL_CATEGORY_UNKNOWN", "Unknown hotel category", ErrHotelCategoryUnknown)
		}
	}
	if req.RoomCount != nil {
		if *req.RoomCount <= 0 {
			return nil, NewBusinessError("HOTEL_ROOM_COUNT_INVALID", "Room count must be greater than zero", ErrRoomCountInvalid)
		}
		hotel.RoomCount = *req.RoomCount
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, NewBusinessError("HOTEL_BASE_PRICE_INVALID", "Base price must be greater than zero", ErrBasePriceInvalid)
		}
		hotel.BasePrice = *req.BasePrice
	}
	if req.ScrapeEnabled != nil {
		hotel.ScrapeEnabled = req.ScrapeEnabled
	}
	if req.ScrapeQuery != nil {
		hotel.ScrapeQuery = req.ScrapeQuery
	}
	if req.IsActive != nil {
		hotel.IsActive = req.IsActive
	}
	if err := f.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, NewBusinessError("HOTEL_UPDATE_FAILED", "Failed to update hotel", err)
	}

	return &dto.UpdateHotelResponse{
		Message: "Hotel updated successfully",
		Hotel:   ToHotelDTO(*hotel),
	}, nil
}

// GetHotel returns a single hotel by UUID
func (f *HotelFlowImpl) GetHotel(ctx context.Context, hotelUUID string) (*dto.GetHotelResponse, error) {
	hotel, err := f.findHotel(ctx, hotelUUID)
	if err != nil {
		return nil, err
	}

	return &dto.GetHotelResponse{
		Message: "Hotel retrieved successfully",
		Hotel:   ToHotelDTO(*hotel),
	}, nil
}

// ListHotels returns a page of hotels, optionally filtered by city
func (f *HotelFlowImpl) ListHotels(ctx context.Context, req *dto.ListHotelsRequest) (*dto.ListHotelsResponse, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, NewBusinessError("INVALID_PAGE", "Page must be at least 1", ErrInvalidPage)
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, NewBusinessError("INVALID_PAGE_SIZE", "Page size must be between 1 and 100", ErrInvalidPageSize)
	}

	filter := models.HotelFilter{IsActive: utils.ToPtr(true)}
	if req.City != nil && strings.TrimSpace(*req.City) != "" {
		filter.City = req.City
	}

	total, err := f.hotelRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("HOTEL_LIST_FAILED", "Failed to count hotels", err)
	}

	rows, err := f.hotelRepo.ByFilter(ctx, filter, "created_at DESC", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("HOTEL_LIST_FAILED", "Failed to list hotels", err)
	}

	items := make([]dto.HotelDTO, 0, len(rows))
	for _, h := range rows {
		items = append(items, ToHotelDTO(*h))
	}

	return &dto.ListHotelsResponse{
		Message: "Hotels retrieved successfully",
		Items:   items,
		Total:   total,
	}, nil
}

// findHotel loads an active hotel by UUID or returns the matching business error
func (f *HotelFlowImpl) findHotel(ctx context.Context, hotelUUID string) (*models.Hotel, error) {
	if strings.TrimSpace(hotelUUID) == "" {
		return nil, NewBusinessError("HOTEL_UUID_REQUIRED", "Hotel UUID is required", ErrHotelUUIDRequired)
	}

	hotel, err := f.hotelRepo.ByUUID(ctx, hotelUUID)
	if err != nil {
		return nil, NewBusinessError("HOTEL_LOOKUP_FAILED", "Failed to look up hotel", err)
	}
	if hotel == nil {
		return nil, NewBusinessError("HOTEL_NOT_FOUND", "Hotel not found", ErrHotelNotFound)
	}
	if !utils.IsTrue(hotel.IsActive) {
		return nil, NewBusinessError("HOTEL_INACTIVE", "Hotel is inactive", ErrHotelInactive)
	}

	return hotel, nil
}
