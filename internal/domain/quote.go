package domain

import "tourquote/internal/currency"

type LineItem struct {
	Label     string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

// Quote is an itemized price breakdown. Items and Total share one currency.
type Quote struct {
	Items    []LineItem
	Total    float64
	Currency currency.Code
}
