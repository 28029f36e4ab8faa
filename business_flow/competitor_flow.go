package businessflow

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/app/services"
	"github.com/rately/rately/models"
	"github.com/rately/rately/repository"
	"github.com/rately/rately/utils"
)

// CompetitorFlow defines competitor rate operations
type CompetitorFlow interface {
	RecordSnapshot(ctx context.Context, req *dto.RecordCompetitorSnapshotRequest, metadata *ClientMetadata) (*dto.RecordCompetitorSnapshotResponse, error)
	ListSnapshots(ctx context.Context, req *dto.ListCompetitorSnapshotsRequest) (*dto.ListCompetitorSnapshotsResponse, error)
	SyncCompetitorPrices(ctx context.Context, daysAhead int) (*dto.SyncCompetitorPricesResponse, error)
}

type CompetitorFlowImpl struct {
	hotelRepo    repository.HotelRepository
	snapshotRepo repository.CompetitorSnapshotRepository
	recordRepo   repository.HistoricalRecordRepository
	scraper      services.ScraperClient
}

func NewCompetitorFlow(
	hotelRepo repository.HotelRepository,
	snapshotRepo repository.CompetitorSnapshotRepository,
	recordRepo repository.HistoricalRecordRepository,
	scraper services.ScraperClient,
) CompetitorFlow {
	return &CompetitorFlowImpl{
		hotelRepo:    hotelRepo,
		snapshotRepo: snapshotRepo,
		recordRepo:   recordRepo,
		scraper:      scraper,
	}
}

// RecordSnapshot stores competitor rates observed for a stay date and folds
// them into the day's historical record
func (f *CompetitorFlowImpl) RecordSnapshot(ctx context.Context, req *dto.RecordCompetitorSnapshotRequest, metadata *ClientMetadata) (*dto.RecordCompetitorSnapshotResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	stayDate, err := time.ParseInLocation("2006-01-02", req.StayDate, time.UTC)
	if err != nil {
		return nil, NewBusinessError("STAY_DATE_INVALID", "Stay date must be formatted as YYYY-MM-DD", err)
	}
	if req.MinPrice > req.AvgPrice || req.AvgPrice > req.MaxPrice {
		return nil, NewBusinessError("SNAPSHOT_PRICES_INVALID", "Snapshot prices must satisfy min <= avg <= max", ErrSnapshotPricesInvalid)
	}

	source := req.Source
	if source == "" {
		source = models.SnapshotSourceManual
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = hotel.Currency
	}

	snapshot := &models.CompetitorSnapshot{
		HotelID:     hotel.ID,
		StayDate:    stayDate,
		AvgPrice:    req.AvgPrice,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		SampleCount: req.SampleCount,
		Currency:    currency,
		Source:      source,
		ScrapedAt:   utils.UTCNow(),
		CreatedAt:   utils.UTCNow(),
	}

	if err := f.snapshotRepo.Save(ctx, snapshot); err != nil {
		return nil, NewBusinessError("SNAPSHOT_SAVE_FAILED", "Failed to save competitor snapshot", err)
	}

	if err := f.recordRepo.ApplyCompetitorPrices(ctx, hotel.ID, stayDate, req.AvgPrice, req.MinPrice, req.MaxPrice); err != nil {
		return nil, NewBusinessError("SNAPSHOT_APPLY_FAILED", "Failed to apply competitor prices to historical record", err)
	}

	return &dto.RecordCompetitorSnapshotResponse{
		Message:  "Competitor snapshot recorded successfully",
		Snapshot: ToCompetitorSnapshotDTO(*snapshot),
	}, nil
}

// ListSnapshots returns the latest snapshot per stay date within a range
func (f *CompetitorFlowImpl) ListSnapshots(ctx context.Context, req *dto.ListCompetitorSnapshotsRequest) (*dto.ListCompetitorSnapshotsResponse, error) {
	hotel, err := f.findActiveHotel(ctx, req.HotelUUID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	end := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, 30)
	start := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, -utils.HistoryWindowDays)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	rows, err := f.snapshotRepo.ListByHotelAndRange(ctx, hotel.ID, start, end)
	if err != nil {
		return nil, NewBusinessError("SNAPSHOT_LIST_FAILED", "Failed to list competitor snapshots", err)
	}

	items := make([]dto.CompetitorSnapshotDTO, 0, len(rows))
	for _, s := range rows {
		items = append(items, ToCompetitorSnapshotDTO(*s))
	}

	return &dto.ListCompetitorSnapshotsResponse{
		Message: "Competitor snapshots retrieved successfully",
		Items:   items,
	}, nil
}

// SyncCompetitorPrices scrapes competitor rates for every scrape-enabled
// hotel over the next daysAhead stay dates. Per-hotel failures are counted
// and logged, never fatal to the whole sync.
func (f *CompetitorFlowImpl) SyncCompetitorPrices(ctx context.Context, daysAhead int) (*dto.SyncCompetitorPricesResponse, error) {
	if f.scraper == nil {
		return nil, NewBusinessError("SCRAPER_UNAVAILABLE", "Scraper service unavailable", ErrScraperUnavailable)
	}
	if daysAhead <= 0 {
		daysAhead = 7
	}

	hotels, err := f.hotelRepo.ListScrapeEnabled(ctx)
	if err != nil {
		return nil, NewBusinessError("SYNC_HOTEL_LIST_FAILED", "Failed to list scrape-enabled hotels", err)
	}

	today := utils.DateOnly(utils.UTCNow())
	synced := 0
	dates := 0
	scrapeErrors := 0

	for _, hotel := range hotels {
		query := hotel.Name + " " + hotel.City
		if hotel.ScrapeQuery != nil && strings.TrimSpace(*hotel.ScrapeQuery) != "" {
			query = *hotel.ScrapeQuery
		}

		hotelSynced := false
		for i := 0; i < daysAhead; i++ {
			stayDate := today.AddDate(0, 0, i)

			rates, err := f.scraper.FetchRates(ctx, query, stayDate)
			if err != nil {
				log.Printf("competitor sync: scrape failed for hotel %d on %s: %v", hotel.ID, stayDate.Format("2006-01-02"), err)
				scrapeErrors++
				continue
			}

			currency := rates.Currency
			if currency == "" {
				currency = hotel.Currency
			}

			snapshot := &models.CompetitorSnapshot{
				HotelID:     hotel.ID,
				StayDate:    stayDate,
				AvgPrice:    rates.AvgPrice,
				MinPrice:    rates.MinPrice,
				MaxPrice:    rates.MaxPrice,
				SampleCount: rates.SampleCount,
				Currency:    currency,
				Source:      models.SnapshotSourceScraper,
				ScrapedAt:   utils.UTCNow(),
				CreatedAt:   utils.UTCNow(),
			}
			if err := f.snapshotRepo.Save(ctx, snapshot); err != nil {
				log.Printf("competitor sync: snapshot save failed for hotel %d: %v", hotel.ID, err)
				scrapeErrors++
				continue
			}

			if err := f.recordRepo.ApplyCompetitorPrices(ctx, hotel.ID, stayDate, rates.AvgPrice, rates.MinPrice, rates.MaxPrice); err != nil {
				log.Printf("competitor sync: record update failed for hotel %d: %v", hotel.ID, err)
				scrapeErrors++
				continue
			}

			dates++
			hotelSynced = true
		}
		if hotelSynced {
			synced++
		}
	}

	return &dto.SyncCompetitorPricesResponse{
		Message:      "Competitor price sync completed",
		HotelsSynced: synced,
		DatesCovered: dates,
		ScrapeErrors: scrapeErrors,
	}, nil
}

// findActiveHotel loads an active hotel by UUID or returns the matching business error
func (f *CompetitorFlowImpl) findActiveHotel(ctx context.Context, hotelUUID string) (*models.Hotel, error) {
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
