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
	"github.com/rately/rately/app/middleware"
	businessflow "github.com/rately/rately/business_flow"
	"github.com/rately/rately/utils"
)

// RecommendationHandlerInterface defines the contract for recommendation handlers
type RecommendationHandlerInterface interface {
	RecommendPrice(c fiber.Ctx) error
	RecommendCalendar(c fiber.Ctx) error
	ListRecommendationLogs(c fiber.Ctx) error
}

// RecommendationHandler handles price recommendation HTTP requests
type RecommendationHandler struct {
	recommendationFlow businessflow.RecommendationFlow
	validator          *validator.Validate
}

func (h *RecommendationHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *RecommendationHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationFlow businessflow.RecommendationFlow) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationFlow: recommendationFlow,
		validator:          validator.New(),
	}
}

// RecommendPrice handles a single-date price recommendation request
// @Summary Recommend Price
// @Description Compute a price recommendation for a hotel on a target date from its historical performance and competitor rates
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param request body dto.RecommendPriceRequest true "Recommendation parameters"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendPriceResponse} "Recommendation computed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/recommendations [post]
func (h *RecommendationHandler) RecommendPrice(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	var req dto.RecommendPriceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.HotelUUID = hotelUUID

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
	result, err := h.recommendationFlow.RecommendPrice(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/recommendations"), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsHotelInactive(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Hotel is inactive", "HOTEL_INACTIVE", nil)
		}
		if businessflow.IsCurrentPriceInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Current price must be greater than zero", "CURRENT_PRICE_INVALID", nil)
		}
		if businessflow.IsTargetDateTooFarAhead(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Target date is too far in the future", "TARGET_DATE_TOO_FAR_AHEAD", nil)
		}

		log.Println("Price recommendation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Price recommendation failed", "RECOMMENDATION_FAILED", nil)
	}

	middleware.ObserveRecommendationServed(result.Recommendation.ServedFromCache)

	return h.SuccessResponse(c, fiber.StatusOK, "Price recommendation computed successfully", fiber.Map{
		"message":        result.Message,
		"recommendation": result.Recommendation,
	})
}

// RecommendCalendar handles a multi-date recommendation request
// @Summary Recommend Calendar
// @Description Compute price recommendations for a consecutive range of stay dates
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param from query string true "First stay date (YYYY-MM-DD)"
// @Param days query int false "Number of days (1-60)" default(7)
// @Param current_price query number false "Price to evaluate instead of the hotel base price"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendCalendarResponse} "Calendar computed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/recommendations/calendar [get]
func (h *RecommendationHandler) RecommendCalendar(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	req := dto.RecommendCalendarRequest{
		HotelUUID: hotelUUID,
		From:      c.Query("from"),
	}
	if v, err := strconv.Atoi(c.Query("days", "0")); err == nil && v > 0 {
		req.Days = v
	}
	if v, err := strconv.ParseFloat(c.Query("current_price", ""), 64); err == nil && v > 0 {
		req.CurrentPrice = &v
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
	result, err := h.recommendationFlow.RecommendCalendar(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/recommendations/calendar"), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsHotelInactive(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Hotel is inactive", "HOTEL_INACTIVE", nil)
		}
		if businessflow.IsCurrentPriceInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Current price must be greater than zero", "CURRENT_PRICE_INVALID", nil)
		}
		if businessflow.IsTargetDateTooFarAhead(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Target date is too far in the future", "TARGET_DATE_TOO_FAR_AHEAD", nil)
		}

		log.Println("Calendar recommendation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Calendar recommendation failed", "CALENDAR_RECOMMENDATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Price calendar computed successfully", fiber.Map{
		"message": result.Message,
		"items":   result.Items,
	})
}

// ListRecommendationLogs returns the recommendation audit trail for a hotel
// @Summary List Recommendation Logs
// @Description Retrieve past price recommendations for a hotel with pagination
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListRecommendationLogsResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/recommendations/logs [get]
func (h *RecommendationHandler) ListRecommendationLogs(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

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

	req := &dto.ListRecommendationLogsRequest{
		HotelUUID: hotelUUID,
		Page:      page,
		PageSize:  pageSize,
	}

	result, err := h.recommendationFlow.ListRecommendationLogs(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/recommendations/logs"), req)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}

		log.Println("List recommendation logs failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list recommendation logs", "LIST_RECOMMENDATION_LOGS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Recommendation logs retrieved successfully", fiber.Map{
		"message": result.Message,
		"items":   result.Items,
		"total":   result.Total,
	})
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *RecommendationHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *RecommendationHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
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
