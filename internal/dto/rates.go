package dto

import "time"

type RatesResponse struct {
	Base         string             `json:"base"`
	Rates        map[string]float64 `json:"rates"`
	FetchedAt    time.Time          `json:"fetchedAt"`
	FromFallback bool               `json:"fromFallback"`
}

type SessionResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
