package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/config"
	"github.com/rately/rately/models"
	"github.com/rately/rately/pricing"
	"github.com/rately/rately/repository"
	"github.com/rately/rately/utils"
	"github.com/redis/go-redis/v9"
)

// RecommendationFlow defines the price recommendation use cases
type RecommendationFlow interface {
	RecommendPrice(ctx context.Context, req *dto.RecommendPriceRequest, metadata *ClientMetadata) (*dto.RecommendPriceResponse, error)
	RecommendCalendar(ctx context.Context, req *dto.RecommendCalendarRequest, metadata *ClientMetadata) (*dto.RecommendCalendarResponse, error)
	ListRecommendationLogs(ctx context.Context, req *dto.ListRecommendationLogsRequest) (*dto.ListRecommendationLogsResponse, error)
}

type RecommendationFlowImpl struct {
	hotelRepo   repository.HotelRepository
	recordRepo  repository.HistoricalRecordRepository
	logRepo     repository.PriceRecommendationLogRepository
	rc          *redis.Client
	cacheConfig *config.CacheConfig
}

func NewRecommendationFlow(
	hotelRepo repository.HotelRepository,
	recordRepo repository.HistoricalRecordRepository,
	logRepo repository.PriceRecommendationLogRepository,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) RecommendationFlow {
	return &RecommendationFlowImpl{
		hotelRepo:   hotelRepo,
		recordRepo:  recordRepo,
		logRepo:     logRepo,
		rc:          rc,
		cacheConfig: cacheConfig,
	}
}

// RecommendPrice runs the pricing engine for one hotel and target date.
// Fresh results are cached and written to the audit log; cache hits skip
// both the engine and the history query.
func (f *RecommendationFlowImpl) RecommendPrice(ctx context.Context, req *dto.RecommendPriceRequest, metadata *ClientMetadata) (*dto.RecommendPriceResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		return nil, err
	}

	currentPrice := hotel.BasePrice
	if req.CurrentPrice != nil {
		currentPrice = *req.CurrentPrice
	}
	if currentPrice <= 0 {
		return nil, NewBusinessError("CURRENT_PRICE_INVALID", "Current price must be greater than zero", ErrCurrentPriceInvalid)
	}

	if cached := f.cachedRecommendation(ctx, hotel, targetDate, currentPrice); cached != nil {
		return &dto.RecommendPriceResponse{
			Message:        "Price recommendation retrieved from cache",
			Recommendation: *cached,
		}, nil
	}

	recommendation, err := f.computeRecommendation(ctx, hotel, targetDate, currentPrice)
	if err != nil {
		return nil, err
	}

	item := toRecommendationDTO(hotel, recommendation, false)
	f.storeRecommendation(ctx, hotel, targetDate, currentPrice, recommendation, item)

	return &dto.RecommendPriceResponse{
		Message:        "Price recommendation generated successfully",
		Recommendation: item,
	}, nil
}

// RecommendCalendar runs the engine for a span of consecutive target dates.
// Calendar responses are computed fresh; only single-date requests go
// through the cache.
func (f *RecommendationFlowImpl) RecommendCalendar(ctx context.Context, req *dto.RecommendCalendarRequest, metadata *ClientMetadata) (*dto.RecommendCalendarResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	from, err := parseTargetDate(req.From)
	if err != nil {
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = 7
	}

	currentPrice := hotel.BasePrice
	if req.CurrentPrice != nil {
		currentPrice = *req.CurrentPrice
	}
	if currentPrice <= 0 {
		return nil, NewBusinessError("CURRENT_PRICE_INVALID", "Current price must be greater than zero", ErrCurrentPriceInvalid)
	}

	// One history load covers every date in the span.
	points, err := f.loadHistory(ctx, hotel.ID, from.AddDate(0, 0, days-1))
	if err != nil {
		return nil, err
	}

	items := make([]dto.PriceRecommendationDTO, 0, days)
	for i := 0; i < days; i++ {
		recommendation := pricing.Recommend(points, from.AddDate(0, 0, i), currentPrice)
		items = append(items, toRecommendationDTO(hotel, recommendation, false))
	}

	return &dto.RecommendCalendarResponse{
		Message: "Price calendar generated successfully",
		Items:   items,
	}, nil
}

// ListRecommendationLogs returns a hotel's stored recommendation history
func (f *RecommendationFlowImpl) ListRecommendationLogs(ctx context.Context, req *dto.ListRecommendationLogsRequest) (*dto.ListRecommendationLogsResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

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

	hotelID := hotel.ID
	total, err := f.logRepo.Count(ctx, models.PriceRecommendationLogFilter{HotelID: &hotelID})
	if err != nil {
		return nil, NewBusinessError("RECOMMENDATION_LOG_LIST_FAILED", "Failed to count recommendation logs", err)
	}

	rows, err := f.logRepo.ListByHotel(ctx, hotel.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("RECOMMENDATION_LOG_LIST_FAILED", "Failed to list recommendation logs", err)
	}

	items := make([]dto.RecommendationLogDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.RecommendationLogDTO{
			UUID:             row.UUID.String(),
			TargetDate:       row.TargetDate.Format("2006-01-02"),
			CurrentPrice:     row.CurrentPrice,
			RecommendedPrice: row.RecommendedPrice,
			MinPrice:         row.MinPrice,
			MaxPrice:         row.MaxPrice,
			Confidence:       row.Confidence,
			Reasoning:        row.Reasoning,
			ServedFromCache:  row.ServedFromCache,
			CreatedAt:        row.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.ListRecommendationLogsResponse{
		Message: "Recommendation logs retrieved successfully",
		Items:   items,
		Total:   total,
	}, nil
}

// computeRecommendation loads the history window and runs the pure engine
func (f *RecommendationFlowImpl) computeRecommendation(ctx context.Context, hotel *models.Hotel, targetDate time.Time, currentPrice float64) (pricing.PriceRecommendation, error) {
	points, err := f.loadHistory(ctx, hotel.ID, targetDate)
	if err != nil {
		return pricing.PriceRecommendation{}, err
	}
	return pricing.Recommend(points, targetDate, currentPrice), nil
}

// loadHistory fetches the hotel's records for the window ending at the
// target date and maps them to engine inputs
func (f *RecommendationFlowImpl) loadHistory(ctx context.Context, hotelID uint, targetDate time.Time) ([]pricing.HistoryPoint, error) {
	from := targetDate.AddDate(0, 0, -utils.HistoryWindowDays)
	records, err := f.recordRepo.ListByHotelAndRange(ctx, hotelID, from, targetDate)
	if err != nil {
		return nil, NewBusinessError("HISTORY_LOAD_FAILED", "Failed to load historical records", err)
	}

	points := make([]pricing.HistoryPoint, 0, len(records))
	for _, r := range records {
		points = append(points, pricing.HistoryPoint{
			Date:             utils.DateOnly(r.Date),
			OccupancyRate:    r.OccupancyRate,
			ADR:              r.ADR,
			TotalRevenue:     r.TotalRevenue,
			TotalCosts:       r.TotalCosts,
			CompetitorAvg:    r.CompetitorAvgPrice,
			CompetitorMin:    r.CompetitorMinPrice,
			CompetitorMax:    r.CompetitorMaxPrice,
			WeatherScore:     r.WeatherScore,
			EventImpactScore: r.EventImpactScore,
			IsWeekend:        r.IsWeekend,
			IsHoliday:        r.IsHoliday,
		})
	}
	return points, nil
}

// cachedRecommendation returns a cached DTO when the cache holds a fresh
// answer for the same hotel, date, and price. Cache failures degrade to a
// fresh computation.
func (f *RecommendationFlowImpl) cachedRecommendation(ctx context.Context, hotel *models.Hotel, targetDate time.Time, currentPrice float64) *dto.PriceRecommendationDTO {
	if f.rc == nil {
		return nil
	}

	bs, err := f.rc.Get(ctx, f.cacheKey(hotel.UUID.String(), targetDate, currentPrice)).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}

	var out dto.PriceRecommendationDTO
	if err := json.Unmarshal(bs, &out); err != nil {
		return nil
	}
	out.ServedFromCache = true
	return &out
}

// storeRecommendation caches the DTO and appends the audit row. Both are
// best-effort: a recommendation already computed is always returned to the
// caller.
func (f *RecommendationFlowImpl) storeRecommendation(ctx context.Context, hotel *models.Hotel, targetDate time.Time, currentPrice float64, rec pricing.PriceRecommendation, item dto.PriceRecommendationDTO) {
	if f.rc != nil {
		if bs, err := json.Marshal(item); err == nil {
			ttl := time.Hour
			if f.cacheConfig != nil && f.cacheConfig.RecommendationTTL > 0 {
				ttl = f.cacheConfig.RecommendationTTL
			}
			_ = f.rc.Set(ctx, f.cacheKey(hotel.UUID.String(), targetDate, currentPrice), bs, ttl).Err()
		}
	}

	factors, err := json.Marshal(rec.Factors)
	if err != nil {
		factors = []byte("{}")
	}

	_ = f.logRepo.Save(ctx, &models.PriceRecommendationLog{
		HotelID:          hotel.ID,
		TargetDate:       targetDate,
		CurrentPrice:     rec.CurrentPrice,
		RecommendedPrice: rec.RecommendedPrice,
		MinPrice:         rec.MinPrice,
		MaxPrice:         rec.MaxPrice,
		Confidence:       rec.Confidence,
		Reasoning:        rec.Reasoning,
		Factors:          factors,
		ServedFromCache:  false,
		CreatedAt:        utils.UTCNow(),
	})
}

func (f *RecommendationFlowImpl) cacheKey(hotelUUID string, targetDate time.Time, currentPrice float64) string {
	prefix := "rately:"
	if f.cacheConfig != nil && f.cacheConfig.RedisPrefix != "" {
		prefix = f.cacheConfig.RedisPrefix
	}
	return fmt.Sprintf("%srecommendation:%s:%s:%.2f", prefix, hotelUUID, targetDate.Format("2006-01-02"), currentPrice)
}

// findActiveHotel loads an active hotel by UUID or returns the matching business error
func (f *RecommendationFlowImpl) findActiveHotel(ctx context.Context, hotelUUID string) (*models.Hotel, error) {
	if hotelUUID == "" {
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

// parseTargetDate validates the date string and the recommendation horizon
func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, NewBusinessError("TARGET_DATE_REQUIRED", "Target date is required", ErrTargetDateRequired)
	}

	targetDate, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, NewBusinessError("TARGET_DATE_INVALID", "Target date must be formatted as YYYY-MM-DD", err)
	}

	horizon := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, utils.MaxRecommendationHorizonDays)
	if targetDate.After(horizon) {
		return time.Time{}, NewBusinessError("TARGET_DATE_TOO_FAR_AHEAD", "Target date is too far in the future", ErrTargetDateTooFarAhead)
	}

	return targetDate, nil
}

// toRecommendationDTO maps an engine result to its API representation
func toRecommendationDTO(hotel *models.Hotel, rec pricing.PriceRecommendation, fromCache bool) dto.PriceRecommendationDTO {
	return dto.PriceRecommendationDTO{
		HotelUUID:        hotel.UUID.String(),
		TargetDate:       rec.TargetDate.Format("2006-01-02"),
		CurrentPrice:     rec.CurrentPrice,
		RecommendedPrice: rec.RecommendedPrice,
		MinPrice:         rec.MinPrice,
		MaxPrice:         rec.MaxPrice,
		Currency:         hotel.Currency,
		Confidence:       rec.Confidence,
		Reasoning:        rec.Reasoning,
		Factors: dto.RecommendationFactorsDTO{
			DemandLevel:        rec.Factors.DemandLevel,
			CompetitorAvgPrice: rec.Factors.CompetitorAvgPrice,
			SeasonalityFactor:  rec.Factors.SeasonalityFactor,
			OccupancyTrend:     rec.Factors.OccupancyTrend,
			DayOfWeek:          rec.Factors.DayOfWeek.String(),
			IsWeekend:          rec.Factors.IsWeekend,
			IsHoliday:          rec.Factors.IsHoliday,
		},
		ServedFromCache: fromCache,
	}
}
