package businessflow_test

import (
	"context"
	"testing"

	"github.com/rately/rately/app/dto"
	businessflow "github.com/rately/rately/business_flow"
	"github.com/rately/rately/models"
	"github.com/rately/rately/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata() *businessflow.ClientMetadata {
	return businessflow.NewClientMetadata("127.0.0.1", "test-agent")
}

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeHotelRepo()
		flow := businessflow.NewHotelFlow(repo)

		resp, err := flow.CreateHotel(ctx, &dto.CreateHotelRequest{
			Name:      "Harbor View",
			City:      "Lisbon",
			Country:   "pt",
			RoomCount: 80,
			BasePrice: 120.00,
		}, testMetadata())
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "Harbor View", resp.Hotel.Name)
		assert.Equal(t, "PT", resp.Hotel.Country)
		assert.Equal(t, models.HotelCategoryMidscale, resp.Hotel.Category)
		assert.Equal(t, utils.DefaultCurrency, resp.Hotel.Currency)
		assert.NotEmpty(t, resp.Hotel.UUID)
	})

	t.Run("NameRequired", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.CreateHotel(ctx, &dto.CreateHotelRequest{
			Name:      "   ",
			City:      "Lisbon",
			Country:   "PT",
			RoomCount: 80,
			BasePrice: 120.00,
		}, testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrHotelNameRequired)
	})

	t.Run("RoomCountInvalid", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.CreateHotel(ctx, &dto.CreateHotelRequest{
			Name:      "Harbor View",
			City:      "Lisbon",
			Country:   "PT",
			RoomCount: 0,
			BasePrice: 120.00,
		}, testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrRoomCountInvalid)
	})

	t.Run("BasePriceInvalid", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.CreateHotel(ctx, &dto.CreateHotelRequest{
			Name:      "Harbor View",
			City:      "Lisbon",
			Country:   "PT",
			RoomCount: 80,
			BasePrice: -5,
		}, testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrBasePriceInvalid)
	})
}

func TestUpdateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeHotelRepo()
		hotel := activeTestHotel(repo)
		flow := businessflow.NewHotelFlow(repo)

		resp, err := flow.UpdateHotel(ctx, &dto.UpdateHotelRequest{
			UUID:      hotel.UUID.String(),
			Name:      utils.ToPtr("Harbor View Deluxe"),
			Category:  utils.ToPtr(models.HotelCategoryUpscale),
			BasePrice: utils.ToPtr(145.00),
		}, testMetadata())
		require.NoError(t, err)
		assert.Equal(t, "Harbor View Deluxe", resp.Hotel.Name)
		assert.Equal(t, models.HotelCategoryUpscale, resp.Hotel.Category)
		assert.InDelta(t, 145.00, resp.Hotel.BasePrice, 0.001)
	})

	t.Run("NotFound", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.UpdateHotel(ctx, &dto.UpdateHotelRequest{
			UUID: "00000000-0000-0000-0000-000000000001",
			Name: utils.ToPtr("Nowhere"),
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelNotFound(err))
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		repo := newFakeHotelRepo()
		hotel := activeTestHotel(repo)
		flow := businessflow.NewHotelFlow(repo)

		_, err := flow.UpdateHotel(ctx, &dto.UpdateHotelRequest{
			UUID:     hotel.UUID.String(),
			Category: utils.ToPtr("boutique"),
		}, testMetadata())
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrHotelCategoryUnknown)
	})

	t.Run("InactiveHotel", func(t *testing.T) {
		repo := newFakeHotelRepo()
		hotel := activeTestHotel(repo)
		hotel.IsActive = utils.ToPtr(false)
		flow := businessflow.NewHotelFlow(repo)

		_, err := flow.UpdateHotel(ctx, &dto.UpdateHotelRequest{
			UUID: hotel.UUID.String(),
			Name: utils.ToPtr("Renamed"),
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelInactive(err))
	})
}

func TestGetHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeHotelRepo()
		hotel := activeTestHotel(repo)
		flow := businessflow.NewHotelFlow(repo)

		resp, err := flow.GetHotel(ctx, hotel.UUID.String())
		require.NoError(t, err)
		assert.Equal(t, hotel.UUID.String(), resp.Hotel.UUID)
		assert.Equal(t, hotel.Name, resp.Hotel.Name)
	})

	t.Run("UUIDRequired", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.GetHotel(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrHotelUUIDRequired)
	})

	t.Run("NotFound", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.GetHotel(ctx, "00000000-0000-0000-0000-000000000001")
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelNotFound(err))
	})
}

func TestListHotels(t *testing.T) {
	ctx := context.Background()

	t.Run("Pagination", func(t *testing.T) {
		repo := newFakeHotelRepo()
		for i := 0; i < 5; i++ {
			activeTestHotel(repo)
		}
		flow := businessflow.NewHotelFlow(repo)

		resp, err := flow.ListHotels(ctx, &dto.ListHotelsRequest{Page: 1, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.Total)
		assert.Len(t, resp.Items, 3)

		resp, err = flow.ListHotels(ctx, &dto.ListHotelsRequest{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
	})

	t.Run("ExcludesInactive", func(t *testing.T) {
		repo := newFakeHotelRepo()
		activeTestHotel(repo)
		inactive := activeTestHotel(repo)
		inactive.IsActive = utils.ToPtr(false)
		flow := businessflow.NewHotelFlow(repo)

		resp, err := flow.ListHotels(ctx, &dto.ListHotelsRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Total)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("InvalidPageSize", func(t *testing.T) {
		flow := businessflow.NewHotelFlow(newFakeHotelRepo())

		_, err := flow.ListHotels(ctx, &dto.ListHotelsRequest{PageSize: 500})
		require.Error(t, err)
		assert.ErrorIs(t, err, businessflow.ErrInvalidPageSize)
	})
}
