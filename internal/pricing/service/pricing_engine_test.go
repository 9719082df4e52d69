package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourquote/internal/currency"
	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

func intPtr(i int) *int {
	return &i
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRates() currency.Table {
	return currency.Table{
		currency.JPY: 1.0,
		currency.USD: 0.0067,
		currency.VND: 170.0,
	}
}

// Two-day tour: base 50,000 x 1.2 season, vehicle 10,000/day plus driver
// 5,000/day, one vehicle, nothing else.
func baseBooking() (domain.Booking, ResolvedCatalog) {
	b := domain.Booking{
		TourID:       1,
		VehicleID:    1,
		StartDate:    date(2026, time.April, 1),
		EndDate:      date(2026, time.April, 3),
		VehicleCount: 1,
		Participants: 2,
		Currency:     currency.JPY,
	}
	cat := ResolvedCatalog{
		Tour:    domain.Tour{ID: 1, Name: "Kansai Highlights", BasePrice: 50000},
		Season:  &domain.Season{ID: 1, Name: "Spring", StartMonth: 3, EndMonth: 5, PriceMultiplier: 1.2},
		Vehicle: domain.Vehicle{ID: 1, Name: "Hiace", PricePerDay: 10000, DriverCostPerDay: 5000},
	}
	return b, cat
}

func TestEngine_Calculate_SeasonalTourWithVehicle_JPY(t *testing.T) {
	b, cat := baseBooking()
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	// 50,000 x 1.2 + (10,000 + 5,000) x 2 = 90,000 JPY
	assert.Equal(t, 90000.0, quote.Total)
	assert.Equal(t, currency.JPY, quote.Currency)
	require.Len(t, quote.Items, 3)
	assert.Equal(t, 60000.0, quote.Items[0].Subtotal)
	assert.Equal(t, 20000.0, quote.Items[1].Subtotal)
	assert.Equal(t, 10000.0, quote.Items[2].Subtotal)
}

func TestEngine_Calculate_ConvertsTotalToUSD(t *testing.T) {
	b, cat := baseBooking()
	b.Currency = currency.USD
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	assert.Equal(t, 603.00, quote.Total)
	assert.Equal(t, currency.USD, quote.Currency)
}

func TestEngine_Calculate_AirportTransferAddsOneItem(t *testing.T) {
	b, cat := baseBooking()
	b.ServiceTags = []string{"airportTransfer"}
	cat.Services = []domain.SpecialService{
		{Tag: "airportTransfer", Label: "Airport transfer", PriceJPY: 3000},
	}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	require.Len(t, quote.Items, 4)
	last := quote.Items[3]
	assert.Equal(t, "Airport transfer", last.Label)
	assert.Equal(t, 3000.0, last.Subtotal)
	assert.Equal(t, 93000.0, quote.Total)
}

func TestEngine_Calculate_TotalEqualsSumOfSubtotals(t *testing.T) {
	b, cat := baseBooking()
	b.Currency = currency.USD
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomDouble
	b.IncludeBreakfast = true
	b.IncludeDinner = true
	b.IncludeGuide = true
	b.GuideID = intPtr(4)
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", DoubleRoomPrice: 12000, BreakfastPrice: 1500, DinnerPrice: 3500}
	cat.Guide = &domain.Guide{ID: 4, Name: "Sato", PricePerDay: 20000}
	cat.Services = []domain.SpecialService{
		{Tag: "teaCeremony", Label: "Tea ceremony", PriceJPY: 4000},
	}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	var sum float64
	for _, item := range quote.Items {
		sum += item.Subtotal
	}
	// Items and total round independently at 2 dp.
	assert.InDelta(t, quote.Total, sum, 0.01*float64(len(quote.Items)))
}

func TestEngine_Calculate_Deterministic(t *testing.T) {
	b, cat := baseBooking()
	b.Currency = currency.VND
	engine := NewEngine()

	first, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)
	second, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Calculate_ZeroNight_SkipsAccommodation(t *testing.T) {
	b, cat := baseBooking()
	b.EndDate = b.StartDate
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomSingle
	b.IncludeBreakfast = true
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", SingleRoomPrice: 8000, BreakfastPrice: 1500}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	// Base tour plus one chargeable vehicle/driver day, no per-night items.
	require.Len(t, quote.Items, 3)
	assert.Equal(t, 60000.0+10000+5000, quote.Total)
	for _, item := range quote.Items {
		assert.NotContains(t, item.Label, "room")
		assert.NotEqual(t, "Breakfast", item.Label)
	}
}

func TestEngine_Calculate_NoSeason_UsesMultiplierOne(t *testing.T) {
	b, cat := baseBooking()
	cat.Season = nil
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	assert.Equal(t, 50000.0, quote.Items[0].Subtotal)
	assert.Equal(t, 80000.0, quote.Total)
}

func TestEngine_Calculate_RoomCountsTakePrecedence(t *testing.T) {
	b, cat := baseBooking()
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomSingle
	b.SingleRoomCount = 1
	b.DoubleRoomCount = 2
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", SingleRoomPrice: 8000, DoubleRoomPrice: 12000, TripleRoomPrice: 15000}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	// 2 nights: 8,000x1x2 + 12,000x2x2 = 64,000 on top of the 90,000 base.
	require.Len(t, quote.Items, 5)
	assert.Equal(t, 16000.0, quote.Items[3].Subtotal)
	assert.Equal(t, 48000.0, quote.Items[4].Subtotal)
	assert.Equal(t, 154000.0, quote.Total)
}

func TestEngine_Calculate_RoomTypeTier(t *testing.T) {
	b, cat := baseBooking()
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomTriple
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", TripleRoomPrice: 15000}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	require.Len(t, quote.Items, 4)
	room := quote.Items[3]
	assert.Equal(t, "Triple room (Gion Inn)", room.Label)
	assert.Equal(t, 2, room.Quantity)
	assert.Equal(t, 30000.0, room.Subtotal)
}

func TestEngine_Calculate_ZeroPriceMealStillItemized(t *testing.T) {
	b, cat := baseBooking()
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomDouble
	b.IncludeBreakfast = true
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", DoubleRoomPrice: 12000, BreakfastPrice: 0}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	require.Len(t, quote.Items, 5)
	breakfast := quote.Items[4]
	assert.Equal(t, "Breakfast", breakfast.Label)
	assert.Equal(t, 0.0, breakfast.Subtotal)
	assert.Equal(t, 4, breakfast.Quantity) // 2 participants x 2 nights
}

func TestEngine_Calculate_MealQuantityScalesWithParticipantsAndNights(t *testing.T) {
	b, cat := baseBooking()
	b.Participants = 3
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomDouble
	b.IncludeDinner = true
	cat.Hotel = &domain.Hotel{ID: 3, Name: "Gion Inn", DoubleRoomPrice: 12000, DinnerPrice: 3500}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	dinner := quote.Items[len(quote.Items)-1]
	assert.Equal(t, "Dinner", dinner.Label)
	assert.Equal(t, 6, dinner.Quantity)
	assert.Equal(t, 21000.0, dinner.Subtotal)
}

func TestEngine_Calculate_GuideBilledPerDay(t *testing.T) {
	b, cat := baseBooking()
	b.IncludeGuide = true
	b.GuideID = intPtr(4)
	cat.Guide = &domain.Guide{ID: 4, Name: "Sato", PricePerDay: 20000}
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	guide := quote.Items[len(quote.Items)-1]
	assert.Equal(t, "Guide: Sato", guide.Label)
	assert.Equal(t, 40000.0, guide.Subtotal)
}

func TestEngine_Calculate_MultipleVehicles(t *testing.T) {
	b, cat := baseBooking()
	b.VehicleCount = 3
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, testRates())
	require.NoError(t, err)

	assert.Equal(t, 6, quote.Items[1].Quantity)
	assert.Equal(t, 60000.0, quote.Items[1].Subtotal)
	assert.Equal(t, 30000.0, quote.Items[2].Subtotal)
}

func TestEngine_Calculate_ValidationFailures(t *testing.T) {
	engine := NewEngine()
	rates := testRates()

	t.Run("participants below one", func(t *testing.T) {
		b, cat := baseBooking()
		b.Participants = 0

		quote, err := engine.Calculate(b, cat, rates)
		assert.Nil(t, quote)
		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "participants", ve.Details[0].Field)
	})

	t.Run("end date before start date", func(t *testing.T) {
		b, cat := baseBooking()
		b.StartDate = date(2026, time.April, 5)
		b.EndDate = date(2026, time.April, 1)

		quote, err := engine.Calculate(b, cat, rates)
		assert.Nil(t, quote)
		ve, ok := apperrors.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "endDate", ve.Details[0].Field)
	})

	t.Run("vehicle count below one", func(t *testing.T) {
		b, cat := baseBooking()
		b.VehicleCount = 0

		quote, err := engine.Calculate(b, cat, rates)
		assert.Nil(t, quote)
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok)
	})
}

func TestEngine_Calculate_NoRateTable_StaysInBaseAmounts(t *testing.T) {
	b, cat := baseBooking()
	b.Currency = currency.USD
	engine := NewEngine()

	quote, err := engine.Calculate(b, cat, nil)
	require.NoError(t, err)

	// Conversion degrades to the unconverted amount rather than failing.
	assert.Equal(t, 90000.0, quote.Total)
	assert.Equal(t, currency.USD, quote.Currency)
}
