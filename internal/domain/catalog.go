package domain

import "time"

// All catalog prices are stored in JPY.

type Tour struct {
	ID          int
	Name        string
	Description string
	BasePrice   float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Vehicle struct {
	ID               int
	Name             string
	Capacity         int
	PricePerDay      float64
	DriverCostPerDay float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Hotel struct {
	ID              int
	Name            string
	SingleRoomPrice float64
	DoubleRoomPrice float64
	TripleRoomPrice float64
	BreakfastPrice  float64
	LunchPrice      float64
	DinnerPrice     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RoomPrice returns the per-night unit price for the given room type.
func (h Hotel) RoomPrice(rt RoomType) float64 {
	switch rt {
	case RoomSingle:
		return h.SingleRoomPrice
	case RoomDouble:
		return h.DoubleRoomPrice
	case RoomTriple:
		return h.TripleRoomPrice
	}
	return 0
}

type Guide struct {
	ID          int
	Name        string
	Languages   string
	PricePerDay float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Season covers an inclusive month range; StartMonth may exceed EndMonth for
// ranges that wrap the year end (e.g. November through February).
type Season struct {
	ID              int
	Name            string
	StartMonth      int
	EndMonth        int
	PriceMultiplier float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Covers reports whether the season applies to the given month (1..12).
func (s Season) Covers(month time.Month) bool {
	m := int(month)
	if s.StartMonth <= s.EndMonth {
		return m >= s.StartMonth && m <= s.EndMonth
	}
	return m >= s.StartMonth || m <= s.EndMonth
}

// SpecialService is a toggleable add-on with a fixed surcharge, defined as
// catalog data so new toggles do not require code changes.
type SpecialService struct {
	Tag      string  `yaml:"tag"`
	Label    string  `yaml:"label"`
	PriceJPY float64 `yaml:"priceJPY"`
}
