// Package businessflow contains the core business logic and use cases for pricing workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Hotel-related errors
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrHotelInactive        = errors.New("hotel is inactive")
	ErrHotelNameRequired    = errors.New("hotel name is required")
	ErrHotelCityRequired    = errors.New("hotel city is required")
	ErrHotelUUIDRequired    = errors.New("hotel UUID is required")
	ErrRoomCountInvalid     = errors.New("room count must be greater than zero")
	ErrBasePriceInvalid     = errors.New("base price must be greater than zero")
	ErrHotelCategoryUnknown = errors.New("unknown hotel category")

	// Recommendation errors
	ErrCurrentPriceInvalid   = errors.New("current price must be greater than zero")
	ErrTargetDateRequired    = errors.New("target date is required")
	ErrTargetDateTooFarAhead = errors.New("target date is too far in the future")

	// Historical data errors
	ErrRecordDateRequired     = errors.New("record date is required")
	ErrOccupancyOutOfRange    = errors.New("occupancy rate must be between 0 and 100")
	ErrImportBatchEmpty       = errors.New("import batch is empty")
	ErrImportBatchTooLarge    = errors.New("import batch exceeds the maximum size")
	ErrNegativeMonetaryAmount = errors.New("monetary amounts cannot be negative")

	// Competitor data errors
	ErrSnapshotPricesInvalid = errors.New("snapshot prices must satisfy min <= avg <= max")
	ErrScraperUnavailable    = errors.New("scraper service unavailable")

	// Cache errors
	ErrCacheNotAvailable = errors.New("cache not available")

	// Filter errors
	ErrInvalidPage           = errors.New("page must be at least 1")
	ErrInvalidPageSize       = errors.New("page size must be between 1 and 100")
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsHotelNotFound(err error) bool {
	return errors.Is(err, ErrHotelNotFound)
}

func IsHotelInactive(err error) bool {
	return errors.Is(err, ErrHotelInactive)
}

func IsCurrentPriceInvalid(err error) bool {
	return errors.Is(err, ErrCurrentPriceInvalid)
}

func IsTargetDateTooFarAhead(err error) bool {
	return errors.Is(err, ErrTargetDateTooFarAhead)
}

func IsOccupancyOutOfRange(err error) bool {
	return errors.Is(err, ErrOccupancyOutOfRange)
}

func IsImportBatchTooLarge(err error) bool {
	return errors.Is(err, ErrImportBatchTooLarge)
}

func IsSnapshotPricesInvalid(err error) bool {
	return errors.Is(err, ErrSnapshotPricesInvalid)
}

func IsScraperUnavailable(err error) bool {
	return errors.Is(err, ErrScraperUnavailable)
}

func IsStartDateAfterEndDate(err error) bool {
	return errors.Is(err, ErrStartDateAfterEndDate)
}
