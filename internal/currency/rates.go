package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "tourquote/internal/errors"
)

// fallbackTable is the pinned snapshot used whenever the external rate source
// cannot be reached. Multipliers are relative to JPY.
var fallbackTable = Table{
	JPY: 1.0,
	USD: 0.0067,
	VND: 170.0,
	CNY: 0.048,
	KRW: 9.1,
	EUR: 0.0062,
	THB: 0.24,
}

// FallbackTable returns a copy of the pinned rate snapshot.
func FallbackTable() Table {
	return cloneTable(fallbackTable)
}

type ratesPayload struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// RateCache owns the process-wide conversion rate table. Refreshes replace the
// whole table atomically; readers always see a complete snapshot. On fetch
// failure the fallback table is substituted so conversion stays usable.
type RateCache struct {
	sourceURL string
	client    *http.Client
	logger    *zap.Logger
	now       func() time.Time

	mu           sync.RWMutex
	table        Table
	fetchedAt    time.Time
	fromFallback bool
}

func NewRateCache(sourceURL string, fetchTimeout time.Duration, logger *zap.Logger) *RateCache {
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &RateCache{
		sourceURL:    sourceURL,
		client:       &http.Client{Timeout: fetchTimeout},
		logger:       logger,
		now:          time.Now,
		table:        cloneTable(fallbackTable),
		fromFallback: true,
	}
}

// Snapshot returns a copy of the current rate table.
func (c *RateCache) Snapshot() Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneTable(c.table)
}

// Status reports when the table was last refreshed and whether it came from
// the fallback snapshot rather than the external source.
func (c *RateCache) Status() (fetchedAt time.Time, fromFallback bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt, c.fromFallback
}

// Refresh fetches the rate table from the external source. On any failure the
// fallback table is installed and an UpstreamUnavailableError is returned so
// callers can log the degradation; the cache itself remains usable.
func (c *RateCache) Refresh(ctx context.Context) error {
	table, err := c.fetch(ctx)
	if err != nil {
		c.install(cloneTable(fallbackTable), true)
		c.logger.Warn("rate source unreachable, using fallback table", zap.Error(err))
		return apperrors.NewUpstreamUnavailableError("rate source", err)
	}

	c.install(table, false)
	c.logger.Info("rate table refreshed", zap.Int("currencies", len(table)))
	return nil
}

// Start refreshes the table once and then keeps it fresh on the given interval
// until ctx is canceled.
func (c *RateCache) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	c.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

func (c *RateCache) fetch(ctx context.Context) (Table, error) {
	if c.sourceURL == "" {
		return nil, fmt.Errorf("no rate source configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding rate payload: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rate payload contains no rates")
	}

	table := make(Table, len(payload.Rates)+1)
	table[Base] = 1.0
	for code, rate := range payload.Rates {
		c := Code(code)
		if !IsSupported(c) || rate <= 0 {
			continue
		}
		table[c] = rate
	}

	return table, nil
}

func (c *RateCache) install(table Table, fromFallback bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = table
	c.fetchedAt = c.now()
	c.fromFallback = fromFallback
}

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
