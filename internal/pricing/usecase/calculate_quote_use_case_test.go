package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourquote/internal/currency"
	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
	"tourquote/internal/pricing/service"
)

func intPtr(i int) *int {
	return &i
}

// Mock implementations

type mockCatalogResolver struct {
	ResolveTourFunc     func(ctx context.Context, id int) (*domain.Tour, error)
	ResolveVehicleFunc  func(ctx context.Context, id int) (*domain.Vehicle, error)
	ResolveHotelFunc    func(ctx context.Context, id int) (*domain.Hotel, error)
	ResolveGuideFunc    func(ctx context.Context, id int) (*domain.Guide, error)
	SeasonForFunc       func(ctx context.Context, date time.Time) (*domain.Season, error)
	ResolveServicesFunc func(tags []string) ([]domain.SpecialService, error)
}

func (m *mockCatalogResolver) ResolveTour(ctx context.Context, id int) (*domain.Tour, error) {
	return m.ResolveTourFunc(ctx, id)
}

func (m *mockCatalogResolver) ResolveVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	return m.ResolveVehicleFunc(ctx, id)
}

func (m *mockCatalogResolver) ResolveHotel(ctx context.Context, id int) (*domain.Hotel, error) {
	return m.ResolveHotelFunc(ctx, id)
}

func (m *mockCatalogResolver) ResolveGuide(ctx context.Context, id int) (*domain.Guide, error) {
	return m.ResolveGuideFunc(ctx, id)
}

func (m *mockCatalogResolver) SeasonFor(ctx context.Context, date time.Time) (*domain.Season, error) {
	return m.SeasonForFunc(ctx, date)
}

func (m *mockCatalogResolver) ResolveServices(tags []string) ([]domain.SpecialService, error) {
	return m.ResolveServicesFunc(tags)
}

type mockRateSource struct {
	SnapshotFunc func() currency.Table
}

func (m *mockRateSource) Snapshot() currency.Table {
	return m.SnapshotFunc()
}

func happyCatalog() *mockCatalogResolver {
	return &mockCatalogResolver{
		ResolveTourFunc: func(ctx context.Context, id int) (*domain.Tour, error) {
			return &domain.Tour{ID: id, Name: "Kansai Highlights", BasePrice: 50000}, nil
		},
		ResolveVehicleFunc: func(ctx context.Context, id int) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, Name: "Hiace", PricePerDay: 10000, DriverCostPerDay: 5000}, nil
		},
		ResolveHotelFunc: func(ctx context.Context, id int) (*domain.Hotel, error) {
			return &domain.Hotel{ID: id, Name: "Gion Inn", DoubleRoomPrice: 12000}, nil
		},
		ResolveGuideFunc: func(ctx context.Context, id int) (*domain.Guide, error) {
			return &domain.Guide{ID: id, Name: "Sato", PricePerDay: 20000}, nil
		},
		SeasonForFunc: func(ctx context.Context, date time.Time) (*domain.Season, error) {
			return &domain.Season{ID: 1, Name: "Spring", StartMonth: 3, EndMonth: 5, PriceMultiplier: 1.2}, nil
		},
		ResolveServicesFunc: func(tags []string) ([]domain.SpecialService, error) {
			return nil, nil
		},
	}
}

func jpyRates() *mockRateSource {
	return &mockRateSource{
		SnapshotFunc: func() currency.Table {
			return currency.Table{currency.JPY: 1.0, currency.USD: 0.0067}
		},
	}
}

func validBooking() domain.Booking {
	return domain.Booking{
		TourID:       1,
		VehicleID:    1,
		StartDate:    time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC),
		VehicleCount: 1,
		Participants: 2,
		Currency:     currency.JPY,
	}
}

func newTestUseCase(catalog CatalogResolver, rates RateSource) *CalculateQuoteUseCase {
	return NewCalculateQuoteUseCase(catalog, rates, service.NewEngine(), zap.NewNop())
}

func TestCalculateQuote_Success(t *testing.T) {
	uc := newTestUseCase(happyCatalog(), jpyRates())

	resp, err := uc.CalculateQuote(context.Background(), validBooking())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, 90000.0, resp.Total)
	assert.Equal(t, "JPY", resp.Currency)
	assert.Len(t, resp.Items, 3)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestCalculateQuote_UnresolvableTour_IsValidationError(t *testing.T) {
	catalog := happyCatalog()
	catalog.ResolveTourFunc = func(ctx context.Context, id int) (*domain.Tour, error) {
		return nil, apperrors.NewNotFoundError("tour 42 not found")
	}
	uc := newTestUseCase(catalog, jpyRates())

	b := validBooking()
	b.TourID = 42

	resp, err := uc.CalculateQuote(context.Background(), b)
	assert.Nil(t, resp)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "tourId", ve.Details[0].Field)
}

func TestCalculateQuote_GuideRequestedWithoutGuideID(t *testing.T) {
	uc := newTestUseCase(happyCatalog(), jpyRates())

	b := validBooking()
	b.IncludeGuide = true
	b.GuideID = nil

	resp, err := uc.CalculateQuote(context.Background(), b)
	assert.Nil(t, resp)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "guideId", ve.Details[0].Field)
}

func TestCalculateQuote_UnresolvableGuide_IsValidationError(t *testing.T) {
	catalog := happyCatalog()
	catalog.ResolveGuideFunc = func(ctx context.Context, id int) (*domain.Guide, error) {
		return nil, apperrors.NewNotFoundError("guide 9 not found")
	}
	uc := newTestUseCase(catalog, jpyRates())

	b := validBooking()
	b.IncludeGuide = true
	b.GuideID = intPtr(9)

	resp, err := uc.CalculateQuote(context.Background(), b)
	assert.Nil(t, resp)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "guideId", ve.Details[0].Field)
}

func TestCalculateQuote_UnknownServiceTag_IsValidationError(t *testing.T) {
	catalog := happyCatalog()
	catalog.ResolveServicesFunc = func(tags []string) ([]domain.SpecialService, error) {
		return nil, apperrors.NewNotFoundError(`special service "helicopterTour" not found`)
	}
	uc := newTestUseCase(catalog, jpyRates())

	b := validBooking()
	b.ServiceTags = []string{"helicopterTour"}

	resp, err := uc.CalculateQuote(context.Background(), b)
	assert.Nil(t, resp)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "specialServices", ve.Details[0].Field)
}

func TestCalculateQuote_CatalogOutage_PassesThrough(t *testing.T) {
	catalog := happyCatalog()
	catalog.ResolveVehicleFunc = func(ctx context.Context, id int) (*domain.Vehicle, error) {
		return nil, apperrors.NewUpstreamUnavailableError("catalog", nil)
	}
	uc := newTestUseCase(catalog, jpyRates())

	resp, err := uc.CalculateQuote(context.Background(), validBooking())
	assert.Nil(t, resp)

	_, ok := apperrors.IsUpstreamUnavailableError(err)
	assert.True(t, ok)
}

func TestCalculateQuote_HotelResolvedWhenSet(t *testing.T) {
	uc := newTestUseCase(happyCatalog(), jpyRates())

	b := validBooking()
	b.HotelID = intPtr(3)
	b.RoomType = domain.RoomDouble

	resp, err := uc.CalculateQuote(context.Background(), b)
	require.NoError(t, err)

	// Base, vehicle, driver plus the room line: 12,000 x 2 nights.
	assert.Len(t, resp.Items, 4)
	assert.Equal(t, 90000.0+24000.0, resp.Total)
}
