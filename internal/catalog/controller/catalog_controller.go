package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tourquote/internal/domain"
	"tourquote/internal/dto"
	apperrors "tourquote/internal/errors"
)

type CatalogReader interface {
	ResolveTour(ctx context.Context, id int) (*domain.Tour, error)
	ListTours(ctx context.Context) ([]domain.Tour, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	ListGuides(ctx context.Context) ([]domain.Guide, error)
	ListSeasons(ctx context.Context) ([]domain.Season, error)
	ListServices() []domain.SpecialService
}

type Controller struct {
	catalog CatalogReader
	logger  *zap.Logger
}

func NewController(catalog CatalogReader, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *Controller) HandleListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := c.catalog.ListTours(r.Context())
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	out := make([]dto.TourDTO, 0, len(tours))
	for _, t := range tours {
		out = append(out, dto.TourDTO{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			BasePrice:   t.BasePrice,
			IsActive:    t.IsActive,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetTour(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "tourId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:     "VALIDATION_ERROR",
			Message:   "tourId must be a positive integer",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	tour, err := c.catalog.ResolveTour(r.Context(), id)
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.TourDTO{
		ID:          tour.ID,
		Name:        tour.Name,
		Description: tour.Description,
		BasePrice:   tour.BasePrice,
		IsActive:    tour.IsActive,
	})
}

func (c *Controller) HandleListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := c.catalog.ListVehicles(r.Context())
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	out := make([]dto.VehicleDTO, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, dto.VehicleDTO{
			ID:               v.ID,
			Name:             v.Name,
			Capacity:         v.Capacity,
			PricePerDay:      v.PricePerDay,
			DriverCostPerDay: v.DriverCostPerDay,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := c.catalog.ListHotels(r.Context())
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	out := make([]dto.HotelDTO, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, dto.HotelDTO{
			ID:              h.ID,
			Name:            h.Name,
			SingleRoomPrice: h.SingleRoomPrice,
			DoubleRoomPrice: h.DoubleRoomPrice,
			TripleRoomPrice: h.TripleRoomPrice,
			BreakfastPrice:  h.BreakfastPrice,
			LunchPrice:      h.LunchPrice,
			DinnerPrice:     h.DinnerPrice,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := c.catalog.ListGuides(r.Context())
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	out := make([]dto.GuideDTO, 0, len(guides))
	for _, g := range guides {
		out = append(out, dto.GuideDTO{
			ID:          g.ID,
			Name:        g.Name,
			Languages:   g.Languages,
			PricePerDay: g.PricePerDay,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := c.catalog.ListSeasons(r.Context())
	if err != nil {
		c.writeLookupError(w, err)
		return
	}

	out := make([]dto.SeasonDTO, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, dto.SeasonDTO{
			ID:              s.ID,
			Name:            s.Name,
			StartMonth:      s.StartMonth,
			EndMonth:        s.EndMonth,
			PriceMultiplier: s.PriceMultiplier,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleListSpecialServices(w http.ResponseWriter, r *http.Request) {
	services := c.catalog.ListServices()

	out := make([]dto.SpecialServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.SpecialServiceDTO{
			Tag:      s.Tag,
			Label:    s.Label,
			PriceJPY: s.PriceJPY,
		})
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) writeLookupError(w http.ResponseWriter, err error) {
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			Error:     "NOT_FOUND",
			Message:   nf.Message,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	if _, ok := apperrors.IsUpstreamUnavailableError(err); ok {
		c.writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     "UPSTREAM_UNAVAILABLE",
			Message:   "catalog is temporarily unavailable, please retry",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.logger.Error("catalog request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Error:     "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
