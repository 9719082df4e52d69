package currency

import "math"

type Code string

const (
	JPY Code = "JPY"
	USD Code = "USD"
	VND Code = "VND"
	CNY Code = "CNY"
	KRW Code = "KRW"
	EUR Code = "EUR"
	THB Code = "THB"
)

// Base is the currency all catalog prices and rate multipliers are anchored to.
const Base = JPY

// Table maps a currency code to its multiplier relative to Base (Base itself is 1.0).
type Table map[Code]float64

var supported = map[Code]struct{}{
	JPY: {}, USD: {}, VND: {}, CNY: {}, KRW: {}, EUR: {}, THB: {},
}

func IsSupported(c Code) bool {
	_, ok := supported[c]
	return ok
}

// Convert converts amount from one currency to another using the given rate table.
// Conversions go through the base currency and are rounded to 2 decimal places.
// A same-currency conversion returns the amount untouched, and a missing or empty
// rate table degrades to returning the amount unconverted rather than failing.
func Convert(amount float64, from, to Code, table Table) float64 {
	if from == to {
		return amount
	}
	if len(table) == 0 {
		return amount
	}

	if from == Base {
		rate, ok := table[to]
		if !ok {
			return amount
		}
		return round2(amount * rate)
	}

	fromRate, ok := table[from]
	if !ok || fromRate == 0 {
		return amount
	}

	if to == Base {
		return round2(amount / fromRate)
	}

	toRate, ok := table[to]
	if !ok {
		return amount
	}
	return round2(amount / fromRate * toRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
