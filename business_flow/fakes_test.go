package businessflow_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rately/rately/app/services"
	"github.com/rately/rately/models"
	"github.com/rately/rately/repository"
	"github.com/rately/rately/utils"
)

// In-memory repository fakes. They implement just enough behavior for the
// flows under test; unsupported lookups return empty results.

type fakeHotelRepo struct {
	hotels  []*models.Hotel
	nextID  uint
	saveErr error
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{nextID: 1}
}

func (r *fakeHotelRepo) addHotel(h *models.Hotel) *models.Hotel {
	if h.ID == 0 {
		h.ID = r.nextID
		r.nextID++
	}
	if h.UUID == uuid.Nil {
		h.UUID = uuid.New()
	}
	r.hotels = append(r.hotels, h)
	return h
}

func (r *fakeHotelRepo) ByID(ctx context.Context, id uint) (*models.Hotel, error) {
	for _, h := range r.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHotelRepo) ByFilter(ctx context.Context, filter models.HotelFilter, orderBy string, limit, offset int) ([]*models.Hotel, error) {
	var out []*models.Hotel
	for _, h := range r.hotels {
		if filter.City != nil && h.City != *filter.City {
			continue
		}
		if filter.IsActive != nil && utils.IsTrue(h.IsActive) != *filter.IsActive {
			continue
		}
		out = append(out, h)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeHotelRepo) Save(ctx context.Context, hotel *models.Hotel) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.addHotel(hotel)
	return nil
}

func (r *fakeHotelRepo) SaveBatch(ctx context.Context, hotels []*models.Hotel) error {
	for _, h := range hotels {
		if err := r.Save(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeHotelRepo) Count(ctx context.Context, filter models.HotelFilter) (int64, error) {
	rows, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (r *fakeHotelRepo) Exists(ctx context.Context, filter models.HotelFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	return count > 0, err
}

func (r *fakeHotelRepo) ByUUID(ctx context.Context, id string) (*models.Hotel, error) {
	for _, h := range r.hotels {
		if h.UUID.String() == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHotelRepo) Update(ctx context.Context, hotel *models.Hotel) error {
	for i, h := range r.hotels {
		if h.ID == hotel.ID {
			r.hotels[i] = hotel
			return nil
		}
	}
	return errors.New("hotel not found")
}

func (r *fakeHotelRepo) ListActive(ctx context.Context, limit, offset int) ([]*models.Hotel, error) {
	return r.ByFilter(ctx, models.HotelFilter{IsActive: utils.ToPtr(true)}, "", limit, offset)
}

func (r *fakeHotelRepo) ListScrapeEnabled(ctx context.Context) ([]*models.Hotel, error) {
	var out []*models.Hotel
	for _, h := range r.hotels {
		if utils.IsTrue(h.IsActive) && utils.IsTrue(h.ScrapeEnabled) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHotelRepo) UpdateBasePrice(ctx context.Context, hotelID uint, basePrice float64) error {
	for _, h := range r.hotels {
		if h.ID == hotelID {
			h.BasePrice = basePrice
			return nil
		}
	}
	return errors.New("hotel not found")
}

type fakeRecordRepo struct {
	records []*models.HistoricalRecord
	listErr error
	applied []appliedPrices
}

type appliedPrices struct {
	hotelID uint
	date    time.Time
	avg     float64
	min     float64
	max     float64
}

func (r *fakeRecordRepo) ByID(ctx context.Context, id uint) (*models.HistoricalRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) ByFilter(ctx context.Context, filter models.HistoricalRecordFilter, orderBy string, limit, offset int) ([]*models.HistoricalRecord, error) {
	var out []*models.HistoricalRecord
	for _, rec := range r.records {
		if filter.HotelID != nil && rec.HotelID != *filter.HotelID {
			continue
		}
		if filter.DateFrom != nil && rec.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && rec.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, rec)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRecordRepo) Save(ctx context.Context, record *models.HistoricalRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeRecordRepo) SaveBatch(ctx context.Context, records []*models.HistoricalRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeRecordRepo) Count(ctx context.Context, filter models.HistoricalRecordFilter) (int64, error) {
	rows, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (r *fakeRecordRepo) Exists(ctx context.Context, filter models.HistoricalRecordFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	return count > 0, err
}

func (r *fakeRecordRepo) ByHotelAndDate(ctx context.Context, hotelID uint, date time.Time) (*models.HistoricalRecord, error) {
	for _, rec := range r.records {
		if rec.HotelID == hotelID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.HistoricalRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.HistoricalRecord
	for _, rec := range r.records {
		if rec.HotelID == hotelID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) Upsert(ctx context.Context, record *models.HistoricalRecord) error {
	return r.UpsertBatch(ctx, []*models.HistoricalRecord{record})
}

func (r *fakeRecordRepo) UpsertBatch(ctx context.Context, records []*models.HistoricalRecord) error {
	for _, record := range records {
		replaced := false
		for i, existing := range r.records {
			if existing.HotelID == record.HotelID && existing.Date.Equal(record.Date) {
				r.records[i] = record
				replaced = true
				break
			}
		}
		if !replaced {
			r.records = append(r.records, record)
		}
	}
	return nil
}

func (r *fakeRecordRepo) ApplyCompetitorPrices(ctx context.Context, hotelID uint, date time.Time, avg, min, max float64) error {
	r.applied = append(r.applied, appliedPrices{hotelID: hotelID, date: date, avg: avg, min: min, max: max})
	return nil
}

func (r *fakeRecordRepo) DailyStats(ctx context.Context, hotelID uint, from, to time.Time) (*repository.DailyStats, error) {
	rows, err := r.ListByHotelAndRange(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}
	stats := &repository.DailyStats{Days: int64(len(rows))}
	for _, rec := range rows {
		stats.AvgOccupancy += rec.OccupancyRate
		stats.AvgADR += rec.ADR
		stats.TotalRevenue += rec.TotalRevenue
		stats.TotalCosts += rec.TotalCosts
		if rec.CompetitorAvgPrice != nil {
			stats.DaysWithScrapes++
		}
	}
	if stats.Days > 0 {
		stats.AvgOccupancy /= float64(stats.Days)
		stats.AvgADR /= float64(stats.Days)
	}
	return stats, nil
}

type fakeSnapshotRepo struct {
	snapshots []*models.CompetitorSnapshot
	saveErr   error
}

func (r *fakeSnapshotRepo) ByID(ctx context.Context, id uint) (*models.CompetitorSnapshot, error) {
	for _, s := range r.snapshots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSnapshotRepo) ByFilter(ctx context.Context, filter models.CompetitorSnapshotFilter, orderBy string, limit, offset int) ([]*models.CompetitorSnapshot, error) {
	return r.snapshots, nil
}

func (r *fakeSnapshotRepo) Save(ctx context.Context, snapshot *models.CompetitorSnapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	snapshot.ID = uint(len(r.snapshots) + 1)
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) SaveBatch(ctx context.Context, snapshots []*models.CompetitorSnapshot) error {
	for _, s := range snapshots {
		if err := r.Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeSnapshotRepo) Count(ctx context.Context, filter models.CompetitorSnapshotFilter) (int64, error) {
	return int64(len(r.snapshots)), nil
}

func (r *fakeSnapshotRepo) Exists(ctx context.Context, filter models.CompetitorSnapshotFilter) (bool, error) {
	return len(r.snapshots) > 0, nil
}

func (r *fakeSnapshotRepo) LatestByHotelAndStayDate(ctx context.Context, hotelID uint, stayDate time.Time) (*models.CompetitorSnapshot, error) {
	var latest *models.CompetitorSnapshot
	for _, s := range r.snapshots {
		if s.HotelID == hotelID && s.StayDate.Equal(stayDate) {
			if latest == nil || s.ScrapedAt.After(latest.ScrapedAt) {
				latest = s
			}
		}
	}
	return latest, nil
}

func (r *fakeSnapshotRepo) ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.CompetitorSnapshot, error) {
	var out []*models.CompetitorSnapshot
	for _, s := range r.snapshots {
		if s.HotelID == hotelID && !s.StayDate.Before(from) && !s.StayDate.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	entries []*models.PriceRecommendationLog
}

func (r *fakeLogRepo) ByID(ctx context.Context, id uint) (*models.PriceRecommendationLog, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeLogRepo) ByFilter(ctx context.Context, filter models.PriceRecommendationLogFilter, orderBy string, limit, offset int) ([]*models.PriceRecommendationLog, error) {
	return r.entries, nil
}

func (r *fakeLogRepo) Save(ctx context.Context, entry *models.PriceRecommendationLog) error {
	entry.ID = uint(len(r.entries) + 1)
	if entry.UUID == uuid.Nil {
		entry.UUID = uuid.New()
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLogRepo) SaveBatch(ctx context.Context, entries []*models.PriceRecommendationLog) error {
	for _, e := range entries {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeLogRepo) Count(ctx context.Context, filter models.PriceRecommendationLogFilter) (int64, error) {
	if filter.HotelID == nil {
		return int64(len(r.entries)), nil
	}
	var count int64
	for _, e := range r.entries {
		if e.HotelID == *filter.HotelID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLogRepo) Exists(ctx context.Context, filter models.PriceRecommendationLogFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	return count > 0, err
}

func (r *fakeLogRepo) ListByHotel(ctx context.Context, hotelID uint, limit, offset int) ([]*models.PriceRecommendationLog, error) {
	var out []*models.PriceRecommendationLog
	for _, e := range r.entries {
		if e.HotelID == hotelID {
			out = append(out, e)
		}
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLogRepo) LatestByHotelAndTargetDate(ctx context.Context, hotelID uint, targetDate time.Time) (*models.PriceRecommendationLog, error) {
	var latest *models.PriceRecommendationLog
	for _, e := range r.entries {
		if e.HotelID == hotelID && e.TargetDate.Equal(targetDate) {
			if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
				latest = e
			}
		}
	}
	return latest, nil
}

type fakeScraper struct {
	rates    *services.CompetitorRates
	err      error
	requests []string
}

func (s *fakeScraper) FetchRates(ctx context.Context, query string, stayDate time.Time) (*services.CompetitorRates, error) {
	s.requests = append(s.requests, query)
	if s.err != nil {
		return nil, s.err
	}
	rates := *s.rates
	rates.StayDate = stayDate.Format("2006-01-02")
	return &rates, nil
}

// activeTestHotel seeds the hotel repo with an active midscale property
func activeTestHotel(repo *fakeHotelRepo) *models.Hotel {
	return repo.addHotel(&models.Hotel{
		Name:          "Harbor View",
		City:          "Lisbon",
		Country:       "PT",
		Category:      models.HotelCategoryMidscale,
		RoomCount:     80,
		BasePrice:     120.00,
		Currency:      "EUR",
		ScrapeEnabled: utils.ToPtr(true),
		IsActive:      utils.ToPtr(true),
		CreatedAt:     utils.UTCNow(),
		UpdatedAt:     utils.UTCNow(),
	})
}
