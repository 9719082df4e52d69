package currency

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tourquote/internal/dto"
)

// Controller exposes the current conversion table for client-side display.
type Controller struct {
	cache  *RateCache
	logger *zap.Logger
}

func NewController(cache *RateCache, logger *zap.Logger) *Controller {
	return &Controller{
		cache:  cache,
		logger: logger,
	}
}

func (c *Controller) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	table := c.cache.Snapshot()
	fetchedAt, fromFallback := c.cache.Status()

	rates := make(map[string]float64, len(table))
	for code, rate := range table {
		rates[string(code)] = rate
	}

	resp := dto.RatesResponse{
		Base:         string(Base),
		Rates:        rates,
		FetchedAt:    fetchedAt,
		FromFallback: fromFallback,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
