// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/rately/rately/app/dto"
	businessflow "github.com/rately/rately/business_flow"
	"github.com/rately/rately/utils"
)

// HotelHandlerInterface defines the contract for hotel handlers
type HotelHandlerInterface interface {
	CreateHotel(c fiber.Ctx) error
	UpdateHotel(c fiber.Ctx) error
	GetHotel(c fiber.Ctx) error
	ListHotels(c fiber.Ctx) error
}

// HotelHandler handles hotel portfolio HTTP requests
type HotelHandler struct {
	hotelFlow businessflow.HotelFlow
	validator *validator.Validate
}

func (h *HotelHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *HotelHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(hotelFlow businessflow.HotelFlow) *HotelHandler {
	return &HotelHandler{
		hotelFlow: hotelFlow,
		validator: validator.New(),
	}
}

// CreateHotel handles the hotel enrollment process
// @Summary Create Hotel
// @Description Enroll a new hotel property with its base price and room inventory
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Hotel creation data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateHotelResponse} "Hotel created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels [post]
func (h *HotelHandler) CreateHotel(c fiber.Ctx) error {
	var req dto.CreateHotelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	// Call business logic with proper context
	result, err := h.hotelFlow.CreateHotel(h.createRequestContext(c, "/api/v1/hotels"), &req, metadata)
	if err != nil {
		log.Println("Hotel creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Hotel creation failed", "HOTEL_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Hotel created successfully", fiber.Map{
		"message": result.Message,
		"hotel":   result.Hotel,
	})
}

// UpdateHotel handles the hotel update process
// @Summary Update Hotel
// @Description Update an existing hotel's attributes such as base price or scrape settings
// @Tags Hotels
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param request body dto.UpdateHotelRequest true "Hotel update data"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateHotelResponse} "Hotel updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid} [put]
func (h *HotelHandler) UpdateHotel(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	var req dto.UpdateHotelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.UUID = hotelUUID

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	// Call business logic with proper context
	result, err := h.hotelFlow.UpdateHotel(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}

		log.Println("Hotel update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Hotel update failed", "HOTEL_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Hotel updated successfully", fiber.Map{
		"message": result.Message,
		"hotel":   result.Hotel,
	})
}

// GetHotel returns a single hotel by UUID
// @Summary Get Hotel
// @Description Retrieve a hotel by its UUID
// @Tags Hotels
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Success 200 {object} dto.APIResponse{data=dto.GetHotelResponse} "Hotel retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid} [get]
func (h *HotelHandler) GetHotel(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	result, err := h.hotelFlow.GetHotel(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID), hotelUUID)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}

		log.Println("Get hotel failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve hotel", "GET_HOTEL_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Hotel retrieved successfully", fiber.Map{
		"message": result.Message,
		"hotel":   result.Hotel,
	})
}

// ListHotels returns hotels with filters and pagination
// @Summary List Hotels
// @Description Retrieve hotels with pagination and optional city filter
// @Tags Hotels
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(10)
// @Param city query string false "Filter by city"
// @Success 200 {object} dto.APIResponse{data=dto.ListHotelsResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels [get]
func (h *HotelHandler) ListHotels(c fiber.Ctx) error {
	// Parse query params
	page := 1
	if v, err := strconv.Atoi(c.Query("page", "1")); err == nil && v > 0 {
		page = v
	}
	pageSize := 10
	if v, err := strconv.Atoi(c.Query("page_size", "10")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > 100 {
		pageSize = 100
	}

	req := &dto.ListHotelsRequest{
		Page:     page,
		PageSize: pageSize,
	}
	if city := c.Query("city"); city != "" {
		req.City = &city
	}

	result, err := h.hotelFlow.ListHotels(h.createRequestContext(c, "/api/v1/hotels"), req)
	if err != nil {
		log.Println("List hotels failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list hotels", "LIST_HOTELS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Hotels retrieved successfully", fiber.Map{
		"message": result.Message,
		"items":   result.Items,
		"total":   result.Total,
	})
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *HotelHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *HotelHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	// Add request-scoped values for observability
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel) // Store cancel function for cleanup

	return ctx
}
