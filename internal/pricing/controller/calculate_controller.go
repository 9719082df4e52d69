package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tourquote/internal/currency"
	"tourquote/internal/domain"
	"tourquote/internal/dto"
	apperrors "tourquote/internal/errors"
)

const dateLayout = "2006-01-02"

type CalculateQuoteUseCase interface {
	CalculateQuote(ctx context.Context, b domain.Booking) (*dto.CalculationResponse, error)
}

type CalculateController struct {
	useCase CalculateQuoteUseCase
	logger  *zap.Logger
}

func NewCalculateController(useCase CalculateQuoteUseCase, logger *zap.Logger) *CalculateController {
	return &CalculateController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CalculateController) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	booking, validationErr := c.parseRequest(req)
	if validationErr != nil {
		logger.Warn("invalid calculation request", zap.String("message", validationErr.Message))
		c.writeValidationError(w, traceID, validationErr.Message, validationErr.Details...)
		return
	}

	resp, err := c.useCase.CalculateQuote(r.Context(), *booking)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	resp.TraceID = traceID
	c.writeJSON(w, http.StatusOK, resp)
}

// parseRequest validates the payload and freezes it into an immutable Booking
// snapshot. vehicleCount defaults to 1 when omitted; it never defaults below 1.
func (c *CalculateController) parseRequest(req dto.CalculationRequest) (*domain.Booking, *apperrors.ValidationError) {
	var details []apperrors.ValidationDetail

	if req.TourID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "tourId",
			Message: "tourId must be a positive integer",
		})
	}

	if req.VehicleID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "vehicleId",
			Message: "vehicleId must be a positive integer",
		})
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "startDate",
			Message: "startDate must be a date in YYYY-MM-DD form",
		})
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "endDate",
			Message: "endDate must be a date in YYYY-MM-DD form",
		})
	} else if !startDate.IsZero() && endDate.Before(startDate) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "endDate",
			Message: "endDate must not precede startDate",
		})
	}

	vehicleCount := req.VehicleCount
	if vehicleCount == 0 {
		vehicleCount = 1
	}
	if vehicleCount < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "vehicleCount",
			Message: "vehicleCount must be at least 1",
		})
	}

	if req.Participants < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "participants",
			Message: "participants must be at least 1",
		})
	}

	roomType := domain.RoomType(req.RoomType)
	if req.RoomType != "" && !roomType.Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "roomType",
			Message: "roomType must be one of single, double, triple",
		})
	}

	if req.SingleRoomCount < 0 || req.DoubleRoomCount < 0 || req.TripleRoomCount < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "roomCounts",
			Message: "room counts must not be negative",
		})
	}

	hasRooms := req.SingleRoomCount > 0 || req.DoubleRoomCount > 0 || req.TripleRoomCount > 0
	if req.HotelID != nil && req.RoomType == "" && !hasRooms {
		details = append(details, apperrors.ValidationDetail{
			Field:   "roomType",
			Message: "roomType or room counts are required when hotelId is set",
		})
	}

	if req.IncludeGuide && req.GuideID == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "guideId",
			Message: "guideId is required when includeGuide is true",
		})
	}

	code := currency.Code(req.Currency)
	if req.Currency == "" {
		code = currency.Base
	} else if !currency.IsSupported(code) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "currency",
			Message: "currency is not supported",
		})
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	var tags []string
	for tag, enabled := range req.SpecialServices {
		if enabled {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)

	return &domain.Booking{
		TourID:           req.TourID,
		VehicleID:        req.VehicleID,
		StartDate:        startDate,
		EndDate:          endDate,
		VehicleCount:     vehicleCount,
		Participants:     req.Participants,
		HotelID:          req.HotelID,
		RoomType:         roomType,
		SingleRoomCount:  req.SingleRoomCount,
		DoubleRoomCount:  req.DoubleRoomCount,
		TripleRoomCount:  req.TripleRoomCount,
		IncludeBreakfast: req.IncludeBreakfast,
		IncludeLunch:     req.IncludeLunch,
		IncludeDinner:    req.IncludeDinner,
		IncludeGuide:     req.IncludeGuide,
		GuideID:          req.GuideID,
		Currency:         code,
		ServiceTags:      tags,
		Notes:            req.Notes,
	}, nil
}

func (c *CalculateController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", nf.Message)
		return
	}

	if _, ok := apperrors.IsUpstreamUnavailableError(err); ok {
		logger.Warn("upstream unavailable during calculation", zap.Error(err))
		c.writeError(w, traceID, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE",
			"a required data source is temporarily unavailable, please retry")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CalculateController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CalculateController) writeError(w http.ResponseWriter, traceID string, status int, code string, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *CalculateController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
