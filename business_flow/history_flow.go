package businessflow

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/models"
	"github.com/rately/rately/repository"
	"github.com/rately/rately/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// HistoryFlow defines historical performance data operations
type HistoryFlow interface {
	UpsertRecord(ctx context.Context, req *dto.UpsertHistoricalRecordRequest, metadata *ClientMetadata) (*dto.UpsertHistoricalRecordResponse, error)
	ImportRecords(ctx context.Context, req *dto.ImportHistoricalRecordsRequest, metadata *ClientMetadata) (*dto.ImportHistoricalRecordsResponse, error)
	ListRecords(ctx context.Context, req *dto.ListHistoricalRecordsRequest) (*dto.ListHistoricalRecordsResponse, error)
	RevenueSummary(ctx context.Context, req *dto.RevenueSummaryRequest) (*dto.RevenueSummaryResponse, error)
	ExportRecordsExcel(ctx context.Context, req *dto.ListHistoricalRecordsRequest) (string, []byte, error)
}

type HistoryFlowImpl struct {
	hotelRepo  repository.HotelRepository
	recordRepo repository.HistoricalRecordRepository
	db         *gorm.DB
}

func NewHistoryFlow(
	hotelRepo repository.HotelRepository,
	recordRepo repository.HistoricalRecordRepository,
	db *gorm.DB,
) HistoryFlow {
	return &HistoryFlowImpl{
		hotelRepo:  hotelRepo,
		recordRepo: recordRepo,
		db:         db,
	}
}

// UpsertRecord stores or replaces one day of data for a hotel
func (f *HistoryFlowImpl) UpsertRecord(ctx context.Context, req *dto.UpsertHistoricalRecordRequest, metadata *ClientMetadata) (*dto.UpsertHistoricalRecordResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	record, err := recordFromInput(hotel.ID, req.Record)
	if err != nil {
		return nil, err
	}

	if err := f.recordRepo.Upsert(ctx, record); err != nil {
		return nil, NewBusinessError("HISTORICAL_RECORD_SAVE_FAILED", "Failed to save historical record", err)
	}

	saved, err := f.recordRepo.ByHotelAndDate(ctx, hotel.ID, record.Date)
	if err != nil || saved == nil {
		saved = record
	}

	return &dto.UpsertHistoricalRecordResponse{
		Message: "Historical record saved successfully",
		Record:  ToHistoricalRecordDTO(*saved),
	}, nil
}

// ImportRecords upserts a batch of daily records in one transaction
func (f *HistoryFlowImpl) ImportRecords(ctx context.Context, req *dto.ImportHistoricalRecordsRequest, metadata *ClientMetadata) (*dto.ImportHistoricalRecordsResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	if len(req.Records) == 0 {
		return nil, NewBusinessError("IMPORT_BATCH_EMPTY", "Import batch is empty", ErrImportBatchEmpty)
	}
	if len(req.Records) > utils.MaxImportBatchSize {
		return nil, NewBusinessErrorf("IMPORT_BATCH_TOO_LARGE", "Import batch exceeds the maximum of %d records", ErrImportBatchTooLarge, utils.MaxImportBatchSize)
	}

	records := make([]*models.HistoricalRecord, 0, len(req.Records))
	for i, input := range req.Records {
		record, err := recordFromInput(hotel.ID, input)
		if err != nil {
			if be, ok := err.(*BusinessError); ok {
				return nil, NewBusinessErrorf(be.Code, "Record %d: %s", be.Err, i+1, be.Message)
			}
			return nil, err
		}
		records = append(records, record)
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.recordRepo.UpsertBatch(txCtx, records)
	})
	if err != nil {
		return nil, NewBusinessError("HISTORICAL_IMPORT_FAILED", "Failed to import historical records", err)
	}

	return &dto.ImportHistoricalRecordsResponse{
		Message:  "Historical records imported successfully",
		Imported: len(records),
	}, nil
}

// ListRecords returns a page of a hotel's historical records
func (f *HistoryFlowImpl) ListRecords(ctx context.Context, req *dto.ListHistoricalRecordsRequest) (*dto.ListHistoricalRecordsResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To)
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
		pageSize = 30
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, NewBusinessError("INVALID_PAGE_SIZE", "Page size must be between 1 and 100", ErrInvalidPageSize)
	}

	hotelID := hotel.ID
	filter := models.HistoricalRecordFilter{HotelID: &hotelID, DateFrom: from, DateTo: to}

	total, err := f.recordRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("HISTORICAL_RECORD_LIST_FAILED", "Failed to count historical records", err)
	}

	rows, err := f.recordRepo.ByFilter(ctx, filter, "date DESC", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("HISTORICAL_RECORD_LIST_FAILED", "Failed to list historical records", err)
	}

	items := make([]dto.HistoricalRecordDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, ToHistoricalRecordDTO(*r))
	}

	return &dto.ListHistoricalRecordsResponse{
		Message: "Historical records retrieved successfully",
		Items:   items,
		Total:   total,
	}, nil
}

// RevenueSummary aggregates occupancy, rate, and revenue figures over a range
func (f *HistoryFlowImpl) RevenueSummary(ctx context.Context, req *dto.RevenueSummaryRequest) (*dto.RevenueSummaryResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	// Default to the trailing 90 days when the caller gives no range.
	end := utils.DateOnly(utils.UTCNow())
	start := end.AddDate(0, 0, -utils.HistoryWindowDays)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	stats, err := f.recordRepo.DailyStats(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, NewBusinessError("REVENUE_SUMMARY_FAILED", "Failed to aggregate revenue summary", err)
	}

	return &dto.RevenueSummaryResponse{
		Message:         "Revenue summary retrieved successfully",
		Days:            stats.Days,
		AvgOccupancy:    stats.AvgOccupancy,
		AvgADR:          stats.AvgADR,
		RevPAR:          stats.AvgADR * stats.AvgOccupancy / 100,
		TotalRevenue:    stats.TotalRevenue,
		TotalCosts:      stats.TotalCosts,
		GrossMargin:     stats.TotalRevenue - stats.TotalCosts,
		WeekendAvgOcc:   stats.WeekendAvgOcc,
		WeekdayAvgOcc:   stats.WeekdayAvgOcc,
		DaysWithScrapes: stats.DaysWithScrapes,
	}, nil
}

// ExportRecordsExcel renders a hotel's historical records as an Excel workbook
func (f *HistoryFlowImpl) ExportRecordsExcel(ctx context.Context, req *dto.ListHistoricalRecordsRequest) (string, []byte, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return "", nil, err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return "", nil, err
	}

	end := utils.DateOnly(utils.UTCNow())
	start := end.AddDate(0, 0, -utils.HistoryWindowDays)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	rows, err := f.recordRepo.ListByHotelAndRange(ctx, hotel.ID, start, end)
	if err != nil {
		return "", nil, NewBusinessError("HISTORICAL_EXPORT_FAILED", "Failed to fetch historical records", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := xl.GetSheetName(0)
	header := []string{"date", "occupancy_rate", "adr", "revpar", "rooms_sold", "total_revenue", "total_costs", "competitor_avg", "competitor_min", "competitor_max", "weather_score", "event_impact_score", "is_weekend", "is_holiday"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, r := range rows {
		record := []string{
			r.Date.Format("2006-01-02"),
			strconv.FormatFloat(r.OccupancyRate, 'f', 2, 64),
			strconv.FormatFloat(r.ADR, 'f', 2, 64),
			strconv.FormatFloat(r.RevPAR(), 'f', 2, 64),
			strconv.Itoa(r.RoomsSold),
			strconv.FormatFloat(r.TotalRevenue, 'f', 2, 64),
			strconv.FormatFloat(r.TotalCosts, 'f', 2, 64),
			formatOptionalFloat(r.CompetitorAvgPrice),
			formatOptionalFloat(r.CompetitorMinPrice),
			formatOptionalFloat(r.CompetitorMaxPrice),
			formatOptionalFloat(r.WeatherScore),
			formatOptionalFloat(r.EventImpactScore),
			strconv.FormatBool(r.IsWeekend),
			strconv.FormatBool(r.IsHoliday),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	filename := fmt.Sprintf("history_%s_%s_%s.xlsx", hotel.UUID.String(), start.Format("2006-01-02"), end.Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// findActiveHotel loads an active hotel by UUID or returns the matching business error
func (f *HistoryFlowImpl) findActiveHotel(ctx context.Context, hotelUUID string) (*models.Hotel, error) {
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

// recordFromInput validates one input row and maps it to the model
func recordFromInput(hotelID uint, input dto.HistoricalRecordInput) (*models.HistoricalRecord, error) {
	if input.Date == "" {
		return nil, NewBusinessError("RECORD_DATE_REQUIRED", "Record date is required", ErrRecordDateRequired)
	}
	date, err := time.ParseInLocation("2006-01-02", input.Date, time.UTC)
	if err != nil {
		return nil, NewBusinessError("RECORD_DATE_INVALID", "Record date must be formatted as YYYY-MM-DD", err)
	}
	if input.OccupancyRate < 0 || input.OccupancyRate > 100 {
		return nil, NewBusinessError("OCCUPANCY_OUT_OF_RANGE", "Occupancy rate must be between 0 and 100", ErrOccupancyOutOfRange)
	}
	if input.ADR < 0 || input.TotalRevenue < 0 || input.TotalCosts < 0 {
		return nil, NewBusinessError("NEGATIVE_MONETARY_AMOUNT", "Monetary amounts cannot be negative", ErrNegativeMonetaryAmount)
	}

	return &models.HistoricalRecord{
		HotelID:            hotelID,
		Date:               date,
		OccupancyRate:      input.OccupancyRate,
		ADR:                input.ADR,
		RoomsSold:          input.RoomsSold,
		TotalRevenue:       input.TotalRevenue,
		TotalCosts:         input.TotalCosts,
		CompetitorAvgPrice: input.CompetitorAvgPrice,
		CompetitorMinPrice: input.CompetitorMinPrice,
		CompetitorMaxPrice: input.CompetitorMaxPrice,
		WeatherScore:       input.WeatherScore,
		EventImpactScore:   input.EventImpactScore,
		IsHoliday:          input.IsHoliday,
		CreatedAt:          utils.UTCNow(),
		UpdatedAt:          utils.UTCNow(),
	}, nil
}

// parseDateRange parses optional from/to bounds and checks their order
func parseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromStr != "" {
		t, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
		if err != nil {
			return nil, nil, NewBusinessError("DATE_RANGE_INVALID", "From date must be formatted as YYYY-MM-DD", err)
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
		if err != nil {
			return nil, nil, NewBusinessError("DATE_RANGE_INVALID", "To date must be formatted as YYYY-MM-DD", err)
		}
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, NewBusinessError("DATE_RANGE_INVALID", "Start date cannot be after end date", ErrStartDateAfterEndDate)
	}

	return from, to, nil
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
