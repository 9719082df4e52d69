package dto

import "time"

type LineItemDTO struct {
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CalculationResponse struct {
	TraceID   string        `json:"traceId"`
	QuoteID   string        `json:"quoteId"`
	Items     []LineItemDTO `json:"items"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
	Timestamp time.Time     `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId,omitempty"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
