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

// CompetitorHandlerInterface defines the contract for competitor data handlers
type CompetitorHandlerInterface interface {
	RecordSnapshot(c fiber.Ctx) error
	ListSnapshots(c fiber.Ctx) error
	SyncCompetitorPrices(c fiber.Ctx) error
}

// CompetitorHandler handles competitor rate HTTP requests
type CompetitorHandler struct {
	competitorFlow businessflow.CompetitorFlow
	validator      *validator.Validate
}

func (h *CompetitorHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CompetitorHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewCompetitorHandler creates a new competitor handler
func NewCompetitorHandler(competitorFlow businessflow.CompetitorFlow) *CompetitorHandler {
	return &CompetitorHandler{
		competitorFlow: competitorFlow,
		validator:      validator.New(),
	}
}

// RecordSnapshot handles a manual competitor rate submission
// @Summary Record Competitor Snapshot
// @Description Store a competitor rate snapshot for a hotel and stay date and fold it into the pricing history
// @Tags Competitors
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param request body dto.RecordCompetitorSnapshotRequest true "Competitor snapshot data"
// @Success 201 {object} dto.APIResponse{data=dto.RecordCompetitorSnapshotResponse} "Snapshot recorded successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/competitors [post]
func (h *CompetitorHandler) RecordSnapshot(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	var req dto.RecordCompetitorSnapshotRequest
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
	result, err := h.competitorFlow.RecordSnapshot(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/competitors"), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsSnapshotPricesInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Snapshot prices must satisfy min <= avg <= max", "SNAPSHOT_PRICES_INVALID", nil)
		}

		log.Println("Snapshot recording failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Snapshot recording failed", "SNAPSHOT_RECORDING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Snapshot recorded successfully", fiber.Map{
		"message":  result.Message,
		"snapshot": result.Snapshot,
	})
}

// ListSnapshots returns competitor snapshots for a hotel
// @Summary List Competitor Snapshots
// @Description Retrieve competitor rate snapshots for a hotel with an optional stay date range
// @Tags Competitors
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param from query string false "Start stay date (YYYY-MM-DD)"
// @Param to query string false "End stay date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.ListCompetitorSnapshotsResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/competitors [get]
func (h *CompetitorHandler) ListSnapshots(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	req := &dto.ListCompetitorSnapshotsRequest{
		HotelUUID: hotelUUID,
		From:      c.Query("from"),
		To:        c.Query("to"),
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.competitorFlow.ListSnapshots(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/competitors"), req)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Start date cannot be after end date", "START_DATE_AFTER_END_DATE", nil)
		}

		log.Println("List snapshots failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list snapshots", "LIST_SNAPSHOTS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Snapshots retrieved successfully", fiber.Map{
		"message": result.Message,
		"items":   result.Items,
	})
}

// SyncCompetitorPrices triggers an on-demand scrape of competitor rates
// @Summary Sync Competitor Prices
// @Description Scrape competitor rates for all scrape-enabled hotels over the next days and fold them into the pricing history
// @Tags Competitors
// @Accept json
// @Produce json
// @Param days query int false "Days ahead to scrape (1-30)" default(7)
// @Success 200 {object} dto.APIResponse{data=dto.SyncCompetitorPricesResponse} "Sync completed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/competitors/sync [post]
func (h *CompetitorHandler) SyncCompetitorPrices(c fiber.Ctx) error {
	daysAhead := 0
	if v, err := strconv.Atoi(c.Query("days", "0")); err == nil && v > 0 && v <= 30 {
		daysAhead = v
	}

	// Scraping a full portfolio takes longer than a normal request
	result, err := h.competitorFlow.SyncCompetitorPrices(h.createRequestContextWithTimeout(c, "/api/v1/competitors/sync", 5*time.Minute), daysAhead)
	if err != nil {
		if businessflow.IsScraperUnavailable(err) {
			return h.ErrorResponse(c, fiber.StatusServiceUnavailable, "Scraper service unavailable", "SCRAPER_UNAVAILABLE", nil)
		}

		log.Println("Competitor sync failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Competitor sync failed", "COMPETITOR_SYNC_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Competitor sync completed", result)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *CompetitorHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *CompetitorHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
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
