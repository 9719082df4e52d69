package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Nights(t *testing.T) {
	b := Booking{StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 3)}
	assert.Equal(t, 2, b.Nights())

	sameDay := Booking{StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 1)}
	assert.Equal(t, 0, sameDay.Nights())

	inverted := Booking{StartDate: date(2026, time.April, 3), EndDate: date(2026, time.April, 1)}
	assert.Equal(t, 0, inverted.Nights())
}

func TestBooking_ChargeableDays_SameDayBillsOneDay(t *testing.T) {
	sameDay := Booking{StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 1)}
	assert.Equal(t, 1, sameDay.ChargeableDays())

	twoNights := Booking{StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 3)}
	assert.Equal(t, 2, twoNights.ChargeableDays())
}

func TestBooking_HasRoomCounts(t *testing.T) {
	assert.False(t, Booking{}.HasRoomCounts())
	assert.True(t, Booking{DoubleRoomCount: 2}.HasRoomCounts())
}

func TestSeason_Covers(t *testing.T) {
	spring := Season{StartMonth: 3, EndMonth: 5}
	assert.True(t, spring.Covers(time.April))
	assert.True(t, spring.Covers(time.March))
	assert.False(t, spring.Covers(time.June))

	winter := Season{StartMonth: 11, EndMonth: 2}
	assert.True(t, winter.Covers(time.December))
	assert.True(t, winter.Covers(time.January))
	assert.False(t, winter.Covers(time.October))
}

func TestHotel_RoomPrice(t *testing.T) {
	h := Hotel{SingleRoomPrice: 8000, DoubleRoomPrice: 12000, TripleRoomPrice: 15000}

	assert.Equal(t, 8000.0, h.RoomPrice(RoomSingle))
	assert.Equal(t, 12000.0, h.RoomPrice(RoomDouble))
	assert.Equal(t, 15000.0, h.RoomPrice(RoomTriple))
	assert.Equal(t, 0.0, h.RoomPrice(RoomType("suite")))
}

func TestRoomType_Valid(t *testing.T) {
	assert.True(t, RoomSingle.Valid())
	assert.True(t, RoomDouble.Valid())
	assert.True(t, RoomTriple.Valid())
	assert.False(t, RoomType("").Valid())
	assert.False(t, RoomType("quad").Valid())
}
