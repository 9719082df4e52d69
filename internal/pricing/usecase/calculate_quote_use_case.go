package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tourquote/internal/currency"
	"tourquote/internal/domain"
	"tourquote/internal/dto"
	apperrors "tourquote/internal/errors"
	"tourquote/internal/pricing/service"
)

type CatalogResolver interface {
	ResolveTour(ctx context.Context, id int) (*domain.Tour, error)
	ResolveVehicle(ctx context.Context, id int) (*domain.Vehicle, error)
	ResolveHotel(ctx context.Context, id int) (*domain.Hotel, error)
	ResolveGuide(ctx context.Context, id int) (*domain.Guide, error)
	SeasonFor(ctx context.Context, date time.Time) (*domain.Season, error)
	ResolveServices(tags []string) ([]domain.SpecialService, error)
}

type RateSource interface {
	Snapshot() currency.Table
}

type Engine interface {
	Calculate(b domain.Booking, cat service.ResolvedCatalog, rates currency.Table) (*domain.Quote, error)
}

// CalculateQuoteUseCase resolves a booking's catalog references, snapshots the
// rate table and runs the pricing engine.
type CalculateQuoteUseCase struct {
	catalog CatalogResolver
	rates   RateSource
	engine  Engine
	logger  *zap.Logger
	now     func() time.Time
}

func NewCalculateQuoteUseCase(catalog CatalogResolver, rates RateSource, engine Engine, logger *zap.Logger) *CalculateQuoteUseCase {
	return &CalculateQuoteUseCase{
		catalog: catalog,
		rates:   rates,
		engine:  engine,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *CalculateQuoteUseCase) CalculateQuote(ctx context.Context, b domain.Booking) (*dto.CalculationResponse, error) {
	cat, err := uc.resolve(ctx, b)
	if err != nil {
		return nil, err
	}

	quote, err := uc.engine.Calculate(b, *cat, uc.rates.Snapshot())
	if err != nil {
		return nil, err
	}

	items := make([]dto.LineItemDTO, len(quote.Items))
	for i, item := range quote.Items {
		items[i] = dto.LineItemDTO{
			Label:     item.Label,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}

	uc.logger.Info("quote calculated",
		zap.Int("tourId", b.TourID),
		zap.Int("items", len(items)),
		zap.Float64("total", quote.Total),
		zap.String("currency", string(quote.Currency)),
	)

	return &dto.CalculationResponse{
		QuoteID:   uuid.New().String(),
		Items:     items,
		Total:     quote.Total,
		Currency:  string(quote.Currency),
		Timestamp: uc.now().UTC(),
	}, nil
}

// resolve looks up every referenced catalog entity. Unresolvable required
// references surface as ValidationErrors: the configuration, not the catalog,
// is at fault.
func (uc *CalculateQuoteUseCase) resolve(ctx context.Context, b domain.Booking) (*service.ResolvedCatalog, error) {
	tour, err := uc.catalog.ResolveTour(ctx, b.TourID)
	if err != nil {
		return nil, referenceError(err, "tourId", b.TourID)
	}

	vehicle, err := uc.catalog.ResolveVehicle(ctx, b.VehicleID)
	if err != nil {
		return nil, referenceError(err, "vehicleId", b.VehicleID)
	}

	season, err := uc.catalog.SeasonFor(ctx, b.StartDate)
	if err != nil {
		return nil, err
	}

	cat := &service.ResolvedCatalog{
		Tour:    *tour,
		Vehicle: *vehicle,
		Season:  season,
	}

	if b.HotelID != nil {
		hotel, err := uc.catalog.ResolveHotel(ctx, *b.HotelID)
		if err != nil {
			return nil, referenceError(err, "hotelId", *b.HotelID)
		}
		cat.Hotel = hotel
	}

	if b.IncludeGuide {
		if b.GuideID == nil {
			return nil, apperrors.NewValidationError("invalid booking configuration", apperrors.ValidationDetail{
				Field:   "guideId",
				Message: "guideId is required when includeGuide is true",
			})
		}
		guide, err := uc.catalog.ResolveGuide(ctx, *b.GuideID)
		if err != nil {
			return nil, referenceError(err, "guideId", *b.GuideID)
		}
		cat.Guide = guide
	}

	if len(b.ServiceTags) > 0 {
		services, err := uc.catalog.ResolveServices(b.ServiceTags)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewValidationError("invalid booking configuration", apperrors.ValidationDetail{
					Field:   "specialServices",
					Message: err.Error(),
				})
			}
			return nil, err
		}
		cat.Services = services
	}

	return cat, nil
}

func referenceError(err error, field string, id int) error {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return apperrors.NewValidationError("invalid booking configuration", apperrors.ValidationDetail{
			Field:   field,
			Message: fmt.Sprintf("%s %d does not reference a catalog entry", field, id),
		})
	}
	return err
}
