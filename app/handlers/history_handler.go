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

// HistoryHandlerInterface defines the contract for historical data handlers
type HistoryHandlerInterface interface {
	UpsertRecord(c fiber.Ctx) error
	ImportRecords(c fiber.Ctx) error
	ListRecords(c fiber.Ctx) error
	RevenueSummary(c fiber.Ctx) error
	ExportRecords(c fiber.Ctx) error
}

// HistoryHandler handles historical performance data HTTP requests
type HistoryHandler struct {
	historyFlow businessflow.HistoryFlow
	validator   *validator.Validate
}

func (h *HistoryHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *HistoryHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyFlow businessflow.HistoryFlow) *HistoryHandler {
	return &HistoryHandler{
		historyFlow: historyFlow,
		validator:   validator.New(),
	}
}

// UpsertRecord handles creating or replacing a single daily record
// @Summary Upsert Historical Record
// @Description Create or replace the performance record for one hotel and stay date
// @Tags History
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param request body dto.UpsertHistoricalRecordRequest true "Daily record data"
// @Success 200 {object} dto.APIResponse{data=dto.UpsertHistoricalRecordResponse} "Record stored successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/history [put]
func (h *HistoryHandler) UpsertRecord(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	var req dto.UpsertHistoricalRecordRequest
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
	result, err := h.historyFlow.UpsertRecord(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/history"), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsOccupancyOutOfRange(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Occupancy rate must be between 0 and 100", "OCCUPANCY_OUT_OF_RANGE", nil)
		}

		log.Println("Record upsert failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Record upsert failed", "RECORD_UPSERT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Record stored successfully", fiber.Map{
		"message": result.Message,
		"record":  result.Record,
	})
}

// ImportRecords handles a bulk import of daily records
// @Summary Import Historical Records
// @Description Import a batch of daily performance records for a hotel in one transaction
// @Tags History
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param request body dto.ImportHistoricalRecordsRequest true "Batch of daily records"
// @Success 200 {object} dto.APIResponse{data=dto.ImportHistoricalRecordsResponse} "Records imported successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or batch too large"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/history/import [post]
func (h *HistoryHandler) ImportRecords(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	var req dto.ImportHistoricalRecordsRequest
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
	result, err := h.historyFlow.ImportRecords(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/history/import"), &req, metadata)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsImportBatchTooLarge(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Import batch exceeds the maximum size", "IMPORT_BATCH_TOO_LARGE", nil)
		}
		if businessflow.IsOccupancyOutOfRange(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Occupancy rate must be between 0 and 100", "OCCUPANCY_OUT_OF_RANGE", nil)
		}

		log.Println("Record import failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Record import failed", "RECORD_IMPORT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Records imported successfully", fiber.Map{
		"message":  result.Message,
		"imported": result.Imported,
	})
}

// ListRecords returns daily records with filters and pagination
// @Summary List Historical Records
// @Description Retrieve a hotel's daily performance records with optional date range and pagination
// @Tags History
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListHistoricalRecordsResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/history [get]
func (h *HistoryHandler) ListRecords(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	req := h.listRequestFromQuery(c, hotelUUID)

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.historyFlow.ListRecords(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/history"), req)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Start date cannot be after end date", "START_DATE_AFTER_END_DATE", nil)
		}

		log.Println("List records failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list records", "LIST_RECORDS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Records retrieved successfully", fiber.Map{
		"message": result.Message,
		"items":   result.Items,
		"total":   result.Total,
	})
}

// RevenueSummary returns aggregated revenue metrics for a hotel
// @Summary Revenue Summary
// @Description Aggregate occupancy, ADR, RevPAR, and margin metrics over a date range (defaults to the trailing 90 days)
// @Tags History
// @Accept json
// @Produce json
// @Param uuid path string true "Hotel UUID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.RevenueSummaryResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/history/summary [get]
func (h *HistoryHandler) RevenueSummary(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	req := &dto.RevenueSummaryRequest{
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

	result, err := h.historyFlow.RevenueSummary(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/history/summary"), req)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Start date cannot be after end date", "START_DATE_AFTER_END_DATE", nil)
		}

		log.Println("Revenue summary failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Revenue summary failed", "REVENUE_SUMMARY_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Revenue summary computed successfully", result)
}

// ExportRecords streams a hotel's records as an Excel workbook
// @Summary Export Historical Records
// @Description Download a hotel's daily performance records as an XLSX file
// @Tags History
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param uuid path string true "Hotel UUID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary "XLSX export"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Hotel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/hotels/{uuid}/history/export [get]
func (h *HistoryHandler) ExportRecords(c fiber.Ctx) error {
	hotelUUID := c.Params("uuid")
	if hotelUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Hotel UUID is required", "MISSING_HOTEL_UUID", nil)
	}

	req := h.listRequestFromQuery(c, hotelUUID)

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	filename, content, err := h.historyFlow.ExportRecordsExcel(h.createRequestContext(c, "/api/v1/hotels/"+hotelUUID+"/history/export"), req)
	if err != nil {
		if businessflow.IsHotelNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Start date cannot be after end date", "START_DATE_AFTER_END_DATE", nil)
		}

		log.Println("Record export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Record export failed", "RECORD_EXPORT_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(content)
}

// listRequestFromQuery builds a list request from path and query parameters
func (h *HistoryHandler) listRequestFromQuery(c fiber.Ctx, hotelUUID string) *dto.ListHistoricalRecordsRequest {
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

	return &dto.ListHistoricalRecordsRequest{
		HotelUUID: hotelUUID,
		From:      c.Query("from"),
		To:        c.Query("to"),
		Page:      page,
		PageSize:  pageSize,
	}
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *HistoryHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *HistoryHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
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
