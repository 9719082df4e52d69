package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

type TourRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Tour, error)
	FindAll(ctx context.Context) ([]domain.Tour, error)
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	FindAll(ctx context.Context) ([]domain.Vehicle, error)
}

type HotelRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Hotel, error)
	FindAll(ctx context.Context) ([]domain.Hotel, error)
}

type GuideRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Guide, error)
	FindAll(ctx context.Context) ([]domain.Guide, error)
}

type SeasonRepository interface {
	FindAll(ctx context.Context) ([]domain.Season, error)
}

type SpecialServiceRepository interface {
	FindByTag(tag string) (*domain.SpecialService, error)
	FindAll() []domain.SpecialService
}

// CatalogService is the read-only lookup layer the pricing engine resolves
// entities through.
type CatalogService struct {
	tours    TourRepository
	vehicles VehicleRepository
	hotels   HotelRepository
	guides   GuideRepository
	seasons  SeasonRepository
	services SpecialServiceRepository
	logger   *zap.Logger
}

func NewCatalogService(
	tours TourRepository,
	vehicles VehicleRepository,
	hotels HotelRepository,
	guides GuideRepository,
	seasons SeasonRepository,
	services SpecialServiceRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		tours:    tours,
		vehicles: vehicles,
		hotels:   hotels,
		guides:   guides,
		seasons:  seasons,
		services: services,
		logger:   logger,
	}
}

func (s *CatalogService) ResolveTour(ctx context.Context, id int) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return tour, nil
}

func (s *CatalogService) ResolveVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return vehicle, nil
}

func (s *CatalogService) ResolveHotel(ctx context.Context, id int) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return hotel, nil
}

func (s *CatalogService) ResolveGuide(ctx context.Context, id int) (*domain.Guide, error) {
	guide, err := s.guides.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return guide, nil
}

// SeasonFor returns the season covering the given date's month, or nil when no
// season applies. Stays crossing a season boundary use the start date only.
func (s *CatalogService) SeasonFor(ctx context.Context, date time.Time) (*domain.Season, error) {
	seasons, err := s.seasons.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}

	for _, season := range seasons {
		if season.Covers(date.Month()) {
			return &season, nil
		}
	}
	return nil, nil
}

// ResolveServices maps enabled special-service tags to their catalog entries.
func (s *CatalogService) ResolveServices(tags []string) ([]domain.SpecialService, error) {
	resolved := make([]domain.SpecialService, 0, len(tags))
	for _, tag := range tags {
		svc, err := s.services.FindByTag(tag)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *svc)
	}
	return resolved, nil
}

func (s *CatalogService) ListTours(ctx context.Context) ([]domain.Tour, error) {
	tours, err := s.tours.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return tours, nil
}

func (s *CatalogService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return vehicles, nil
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.hotels.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return hotels, nil
}

func (s *CatalogService) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	guides, err := s.guides.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return guides, nil
}

func (s *CatalogService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	seasons, err := s.seasons.FindAll(ctx)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}
	return seasons, nil
}

func (s *CatalogService) ListServices() []domain.SpecialService {
	return s.services.FindAll()
}

// wrapLookupError keeps NotFoundError intact and classifies everything else as
// a catalog availability failure so controllers can answer with a retryable
// status.
func (s *CatalogService) wrapLookupError(err error) error {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return err
	}
	s.logger.Error("catalog lookup failed", zap.Error(err))
	return apperrors.NewUpstreamUnavailableError("catalog", err)
}
