package service

import (
	"fmt"
	"math"

	"tourquote/internal/currency"
	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

// ResolvedCatalog carries the catalog entities a booking references, resolved
// ahead of calculation so the engine itself stays pure.
type ResolvedCatalog struct {
	Tour     domain.Tour
	Season   *domain.Season
	Vehicle  domain.Vehicle
	Hotel    *domain.Hotel
	Guide    *domain.Guide
	Services []domain.SpecialService
}

// Engine produces an itemized price breakdown for a booking. Calculation is
// deterministic: identical booking, catalog and rate snapshots always yield an
// identical quote. All intermediate math happens in JPY; the requested
// currency is applied as the final step.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Calculate(b domain.Booking, cat ResolvedCatalog, rates currency.Table) (*domain.Quote, error) {
	if err := e.validate(b); err != nil {
		return nil, err
	}

	nights := b.Nights()
	days := b.ChargeableDays()

	var items []domain.LineItem

	// 1-2. Base tour cost with the season multiplier for the start date.
	multiplier := 1.0
	if cat.Season != nil {
		multiplier = cat.Season.PriceMultiplier
	}
	baseLabel := fmt.Sprintf("Tour: %s", cat.Tour.Name)
	if cat.Season != nil {
		baseLabel = fmt.Sprintf("Tour: %s (%s season)", cat.Tour.Name, cat.Season.Name)
	}
	basePrice := round2(cat.Tour.BasePrice * multiplier)
	items = append(items, domain.LineItem{
		Label:     baseLabel,
		UnitPrice: basePrice,
		Quantity:  1,
		Subtotal:  basePrice,
	})

	// 3. Vehicle and driver, billed per day per vehicle.
	vehicleQty := days * b.VehicleCount
	items = append(items, domain.LineItem{
		Label:     fmt.Sprintf("Vehicle: %s", cat.Vehicle.Name),
		UnitPrice: cat.Vehicle.PricePerDay,
		Quantity:  vehicleQty,
		Subtotal:  round2(cat.Vehicle.PricePerDay * float64(vehicleQty)),
	})
	items = append(items, domain.LineItem{
		Label:     "Driver",
		UnitPrice: cat.Vehicle.DriverCostPerDay,
		Quantity:  vehicleQty,
		Subtotal:  round2(cat.Vehicle.DriverCostPerDay * float64(vehicleQty)),
	})

	// 4. Accommodation and meals, billed per night. Same-day tours have no
	// nights and therefore no per-night items.
	if cat.Hotel != nil && nights > 0 {
		items = append(items, e.roomItems(b, *cat.Hotel, nights)...)
		items = append(items, e.mealItems(b, *cat.Hotel, nights)...)
	}

	// 5. Guide, billed per day.
	if b.IncludeGuide && cat.Guide != nil {
		items = append(items, domain.LineItem{
			Label:     fmt.Sprintf("Guide: %s", cat.Guide.Name),
			UnitPrice: cat.Guide.PricePerDay,
			Quantity:  days,
			Subtotal:  round2(cat.Guide.PricePerDay * float64(days)),
		})
	}

	// 6. Special services, one fixed surcharge per enabled toggle.
	for _, svc := range cat.Services {
		items = append(items, domain.LineItem{
			Label:     svc.Label,
			UnitPrice: svc.PriceJPY,
			Quantity:  1,
			Subtotal:  svc.PriceJPY,
		})
	}

	// 7-8. Total in base currency, then convert everything to the requested one.
	var rawTotal float64
	for _, item := range items {
		rawTotal += item.Subtotal
	}

	target := b.Currency
	if target == "" {
		target = currency.Base
	}

	for i := range items {
		items[i].UnitPrice = currency.Convert(items[i].UnitPrice, currency.Base, target, rates)
		items[i].Subtotal = currency.Convert(items[i].Subtotal, currency.Base, target, rates)
	}

	return &domain.Quote{
		Items:    items,
		Total:    currency.Convert(rawTotal, currency.Base, target, rates),
		Currency: target,
	}, nil
}

func (e *Engine) validate(b domain.Booking) error {
	var details []apperrors.ValidationDetail

	if b.Participants < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "participants",
			Message: "participants must be at least 1",
		})
	}

	if b.VehicleCount < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "vehicleCount",
			Message: "vehicleCount must be at least 1",
		})
	}

	if b.EndDate.Before(b.StartDate) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "endDate",
			Message: "endDate must not precede startDate",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid booking configuration", details...)
	}

	return nil
}

func (e *Engine) roomItems(b domain.Booking, hotel domain.Hotel, nights int) []domain.LineItem {
	if b.HasRoomCounts() {
		var items []domain.LineItem
		type roomLine struct {
			label string
			price float64
			count int
		}
		for _, rl := range []roomLine{
			{"Single room", hotel.SingleRoomPrice, b.SingleRoomCount},
			{"Double room", hotel.DoubleRoomPrice, b.DoubleRoomCount},
			{"Triple room", hotel.TripleRoomPrice, b.TripleRoomCount},
		} {
			if rl.count == 0 {
				continue
			}
			qty := rl.count * nights
			items = append(items, domain.LineItem{
				Label:     fmt.Sprintf("%s (%s)", rl.label, hotel.Name),
				UnitPrice: rl.price,
				Quantity:  qty,
				Subtotal:  round2(rl.price * float64(qty)),
			})
		}
		return items
	}

	price := hotel.RoomPrice(b.RoomType)
	return []domain.LineItem{{
		Label:     fmt.Sprintf("%s room (%s)", roomTypeLabel(b.RoomType), hotel.Name),
		UnitPrice: price,
		Quantity:  nights,
		Subtotal:  round2(price * float64(nights)),
	}}
}

// mealItems itemizes every included meal, zero-priced meals included, so the
// breakdown shows each selection explicitly.
func (e *Engine) mealItems(b domain.Booking, hotel domain.Hotel, nights int) []domain.LineItem {
	type mealLine struct {
		label    string
		price    float64
		included bool
	}

	qty := b.Participants * nights
	var items []domain.LineItem
	for _, ml := range []mealLine{
		{"Breakfast", hotel.BreakfastPrice, b.IncludeBreakfast},
		{"Lunch", hotel.LunchPrice, b.IncludeLunch},
		{"Dinner", hotel.DinnerPrice, b.IncludeDinner},
	} {
		if !ml.included {
			continue
		}
		items = append(items, domain.LineItem{
			Label:     ml.label,
			UnitPrice: ml.price,
			Quantity:  qty,
			Subtotal:  round2(ml.price * float64(qty)),
		})
	}
	return items
}

func roomTypeLabel(rt domain.RoomType) string {
	switch rt {
	case domain.RoomSingle:
		return "Single"
	case domain.RoomDouble:
		return "Double"
	case domain.RoomTriple:
		return "Triple"
	}
	return string(rt)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
