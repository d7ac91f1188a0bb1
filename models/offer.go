package models

// RoomBreakdownEntry describes one room type line inside an offer.
type RoomBreakdownEntry struct {
	RoomTypeName string  `json:"roomTypeName"`
	Count        int     `json:"count"`
	AdultCount   int     `json:"adultCount,omitempty"`
	ChildCount   int     `json:"childCount,omitempty"`
	RoomSize     float64 `json:"roomSize,omitempty"` // square meters
}

// TaxItem is a single entry of an offer's tax breakdown.
type TaxItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Included bool    `json:"included"`
}

// RetailRate is the priced part of an offer.
type RetailRate struct {
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
	PreDiscount float64   `json:"preDiscount,omitempty"` // pre-discount amount, if any
	Taxes       []TaxItem `json:"taxes,omitempty"`
}

// RoomOffer is a priced, bookable room combination. OfferID is server-issued
// and must be non-empty for any offer that can be prebooked.
type RoomOffer struct {
	OfferID       string               `json:"offerId"`
	HotelID       string               `json:"hotelId,omitempty"`
	BoardType     string               `json:"boardType,omitempty"`
	Refundable    bool                 `json:"refundable,omitempty"`
	RoomBreakdown []RoomBreakdownEntry `json:"roomBreakdown"`
	RetailRate    RetailRate           `json:"retailRate"`
}

// RoomConfigurationGroup folds offers that describe the identical physical
// room combination. Members are sorted ascending by retail total.
type RoomConfigurationGroup struct {
	ConfigurationKey string               `json:"configurationKey"`
	RoomBreakdown    []RoomBreakdownEntry `json:"roomBreakdown"`
	Offers           []RoomOffer          `json:"offers"`
	StartingPrice    RetailRate           `json:"startingPrice"`
}
