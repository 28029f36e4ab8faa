package businessflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/rately/rately/app/dto"
	businessflow "github.com/rately/rately/business_flow"
	"github.com/rately/rately/models"
	"github.com/rately/rately/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationFlow(hotelRepo *fakeHotelRepo, recordRepo *fakeRecordRepo, logRepo *fakeLogRepo) businessflow.RecommendationFlow {
	return businessflow.NewRecommendationFlow(hotelRepo, recordRepo, logRepo, nil, nil)
}

// seedHistory fills the trailing window before today with steady occupancy
func seedHistory(recordRepo *fakeRecordRepo, hotelID uint, days int, occupancy, adr float64) {
	today := utils.DateOnly(utils.UTCNow())
	for i := days; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)
		wd := date.Weekday()
		recordRepo.records = append(recordRepo.records, &models.HistoricalRecord{
			HotelID:       hotelID,
			Date:          date,
			OccupancyRate: occupancy,
			ADR:           adr,
			IsWeekend:     wd == time.Saturday || wd == time.Sunday,
		})
	}
}

func TestRecommendPrice(t *testing.T) {
	ctx := context.Background()
	targetDate := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, 7).Format("2006-01-02")

	t.Run("Success", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		recordRepo := &fakeRecordRepo{}
		logRepo := &fakeLogRepo{}
		seedHistory(recordRepo, hotel.ID, 30, 75.0, 115.00)

		flow := newRecommendationFlow(hotelRepo, recordRepo, logRepo)

		resp, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:    hotel.UUID.String(),
			TargetDate:   targetDate,
			CurrentPrice: utils.ToPtr(110.00),
		}, testMetadata())
		require.NoError(t, err)
		require.NotNil(t, resp)

		rec := resp.Recommendation
		assert.Equal(t, hotel.UUID.String(), rec.HotelUUID)
		assert.Equal(t, targetDate, rec.TargetDate)
		assert.InDelta(t, 110.00, rec.CurrentPrice, 0.001)
		assert.Greater(t, rec.RecommendedPrice, 0.0)
		assert.LessOrEqual(t, rec.MinPrice, rec.RecommendedPrice)
		assert.GreaterOrEqual(t, rec.MaxPrice, rec.RecommendedPrice)
		assert.GreaterOrEqual(t, rec.Confidence, 0.0)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
		assert.NotEmpty(t, rec.Reasoning)
		assert.False(t, rec.ServedFromCache)
		assert.Equal(t, "EUR", rec.Currency)

		// The recommendation is written to the audit log
		require.Len(t, logRepo.entries, 1)
		assert.Equal(t, hotel.ID, logRepo.entries[0].HotelID)
		assert.False(t, logRepo.entries[0].ServedFromCache)
	})

	t.Run("FullWindowSaturatesConfidence", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		recordRepo := &fakeRecordRepo{}
		seedHistory(recordRepo, hotel.ID, 45, 70.0, 110.00)

		flow := newRecommendationFlow(hotelRepo, recordRepo, &fakeLogRepo{})

		resp, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  hotel.UUID.String(),
			TargetDate: targetDate,
		}, testMetadata())
		require.NoError(t, err)
		assert.InDelta(t, 1.0, resp.Recommendation.Confidence, 0.001)
	})

	t.Run("NoHistoryStillRecommends", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)

		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		resp, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  hotel.UUID.String(),
			TargetDate: targetDate,
		}, testMetadata())
		require.NoError(t, err)
		assert.Greater(t, resp.Recommendation.RecommendedPrice, 0.0)
		assert.InDelta(t, 0.0, resp.Recommendation.Confidence, 0.001)
	})

	t.Run("DefaultsToBasePrice", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)

		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		resp, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  hotel.UUID.String(),
			TargetDate: targetDate,
		}, testMetadata())
		require.NoError(t, err)
		assert.InDelta(t, hotel.BasePrice, resp.Recommendation.CurrentPrice, 0.001)
	})

	t.Run("HotelNotFound", func(t *testing.T) {
		flow := newRecommendationFlow(newFakeHotelRepo(), &fakeRecordRepo{}, &fakeLogRepo{})

		_, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  "00000000-0000-0000-0000-000000000001",
			TargetDate: targetDate,
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelNotFound(err))
	})

	t.Run("TargetDateInvalid", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		_, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  hotel.UUID.String(),
			TargetDate: "20-07-2026",
		}, testMetadata())
		require.Error(t, err)
	})

	t.Run("TargetDateTooFarAhead", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		farAhead := utils.DateOnly(utils.UTCNow()).AddDate(2, 0, 0).Format("2006-01-02")
		_, err := flow.RecommendPrice(ctx, &dto.RecommendPriceRequest{
			HotelUUID:  hotel.UUID.String(),
			TargetDate: farAhead,
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsTargetDateTooFarAhead(err))
	})
}

func TestRecommendCalendar(t *testing.T) {
	ctx := context.Background()
	from := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, 1)

	t.Run("DefaultSpan", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		recordRepo := &fakeRecordRepo{}
		seedHistory(recordRepo, hotel.ID, 30, 72.0, 112.00)

		flow := newRecommendationFlow(hotelRepo, recordRepo, &fakeLogRepo{})

		resp, err := flow.RecommendCalendar(ctx, &dto.RecommendCalendarRequest{
			HotelUUID: hotel.UUID.String(),
			From:      from.Format("2006-01-02"),
		}, testMetadata())
		require.NoError(t, err)
		require.Len(t, resp.Items, 7)

		for i, item := range resp.Items {
			expected := from.AddDate(0, 0, i).Format("2006-01-02")
			assert.Equal(t, expected, item.TargetDate)
			assert.LessOrEqual(t, item.MinPrice, item.RecommendedPrice)
			assert.GreaterOrEqual(t, item.MaxPrice, item.RecommendedPrice)
		}
	})

	t.Run("CustomSpan", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)

		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		resp, err := flow.RecommendCalendar(ctx, &dto.RecommendCalendarRequest{
			HotelUUID: hotel.UUID.String(),
			From:      from.Format("2006-01-02"),
			Days:      14,
		}, testMetadata())
		require.NoError(t, err)
		assert.Len(t, resp.Items, 14)
	})

	t.Run("CurrentPriceInvalid", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)

		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, &fakeLogRepo{})

		_, err := flow.RecommendCalendar(ctx, &dto.RecommendCalendarRequest{
			HotelUUID:    hotel.UUID.String(),
			From:         from.Format("2006-01-02"),
			CurrentPrice: utils.ToPtr(-10.0),
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsCurrentPriceInvalid(err))
	})
}

func TestListRecommendationLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("Pagination", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		logRepo := &fakeLogRepo{}

		targetDate := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, 3)
		for i := 0; i < 5; i++ {
			require.NoError(t, logRepo.Save(ctx, &models.PriceRecommendationLog{
				HotelID:          hotel.ID,
				TargetDate:       targetDate,
				CurrentPrice:     100.00,
				RecommendedPrice: 105.00,
				MinPrice:         95.00,
				MaxPrice:         115.00,
				Confidence:       0.8,
				Reasoning:        "Current price already optimal.",
				Factors:          []byte(`{}`),
				CreatedAt:        utils.UTCNow(),
			}))
		}

		flow := newRecommendationFlow(hotelRepo, &fakeRecordRepo{}, logRepo)

		resp, err := flow.ListRecommendationLogs(ctx, &dto.ListRecommendationLogsRequest{
			HotelUUID: hotel.UUID.String(),
			Page:      1,
			PageSize:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.Total)
		assert.Len(t, resp.Items, 3)
	})

	t.Run("HotelNotFound", func(t *testing.T) {
		flow := newRecommendationFlow(newFakeHotelRepo(), &fakeRecordRepo{}, &fakeLogRepo{})

		_, err := flow.ListRecommendationLogs(ctx, &dto.ListRecommendationLogsRequest{
			HotelUUID: "00000000-0000-0000-0000-000000000001",
		})
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelNotFound(err))
	})
}
