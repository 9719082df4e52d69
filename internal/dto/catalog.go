package dto

type TourDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	IsActive    bool    `json:"isActive"`
}

type VehicleDTO struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Capacity         int     `json:"capacity"`
	PricePerDay      float64 `json:"pricePerDay"`
	DriverCostPerDay float64 `json:"driverCostPerDay"`
}

type HotelDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	SingleRoomPrice float64 `json:"singleRoomPrice"`
	DoubleRoomPrice float64 `json:"doubleRoomPrice"`
	TripleRoomPrice float64 `json:"tripleRoomPrice"`
	BreakfastPrice  float64 `json:"breakfastPrice"`
	LunchPrice      float64 `json:"lunchPrice"`
	DinnerPrice     float64 `json:"dinnerPrice"`
}

type GuideDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Languages   string  `json:"languages"`
	PricePerDay float64 `json:"pricePerDay"`
}

type SeasonDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	StartMonth      int     `json:"startMonth"`
	EndMonth        int     `json:"endMonth"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

type SpecialServiceDTO struct {
	Tag      string  `json:"tag"`
	Label    string  `json:"label"`
	PriceJPY float64 `json:"priceJPY"`
}
