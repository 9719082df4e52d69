package dto

// CalculationRequest is the BookingConfiguration payload accepted by the
// calculation endpoint. Dates use the YYYY-MM-DD form.
type CalculationRequest struct {
	TourID    int    `json:"tourId"`
	VehicleID int    `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	VehicleCount int `json:"vehicleCount"`
	Participants int `json:"participants"`

	HotelID         *int   `json:"hotelId,omitempty"`
	RoomType        string `json:"roomType,omitempty"`
	SingleRoomCount int    `json:"singleRoomCount,omitempty"`
	DoubleRoomCount int    `json:"doubleRoomCount,omitempty"`
	TripleRoomCount int    `json:"tripleRoomCount,omitempty"`

	IncludeBreakfast bool `json:"includeBreakfast,omitempty"`
	IncludeLunch     bool `json:"includeLunch,omitempty"`
	IncludeDinner    bool `json:"includeDinner,omitempty"`

	IncludeGuide bool `json:"includeGuide,omitempty"`
	GuideID      *int `json:"guideId,omitempty"`

	Currency string `json:"currency,omitempty"`

	SpecialServices map[string]bool `json:"specialServices,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}
