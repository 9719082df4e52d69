package domain

import (
	"time"

	"tourquote/internal/currency"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTriple RoomType = "triple"
)

func (rt RoomType) Valid() bool {
	switch rt {
	case RoomSingle, RoomDouble, RoomTriple:
		return true
	}
	return false
}

// Booking is the validated, immutable snapshot of one quote request. It is
// never mutated after submission; every calculation is a pure function of a
// Booking plus the catalog and rate snapshots it is calculated against.
type Booking struct {
	TourID    int
	VehicleID int

	StartDate time.Time
	EndDate   time.Time

	VehicleCount int
	Participants int

	HotelID         *int
	RoomType        RoomType
	SingleRoomCount int
	DoubleRoomCount int
	TripleRoomCount int

	IncludeBreakfast bool
	IncludeLunch     bool
	IncludeDinner    bool

	IncludeGuide bool
	GuideID      *int

	Currency currency.Code

	// ServiceTags holds the enabled special-service toggles, sorted for
	// deterministic line-item ordering.
	ServiceTags []string
	Notes       string
}

// Nights is the stay duration in nights, derived from the date difference.
func (b Booking) Nights() int {
	if b.EndDate.Before(b.StartDate) {
		return 0
	}
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// ChargeableDays is the number of days billed for per-day costs (vehicle,
// driver, guide). A same-day tour still pays for its single day.
func (b Booking) ChargeableDays() int {
	if n := b.Nights(); n > 0 {
		return n
	}
	return 1
}

// HasRoomCounts reports whether explicit per-type room counts were supplied;
// they take precedence over the RoomType tier selection.
func (b Booking) HasRoomCounts() bool {
	return b.SingleRoomCount > 0 || b.DoubleRoomCount > 0 || b.TripleRoomCount > 0
}
