package models

// HotelSummary is a single hotel entry from a supplier search page.
// Identity is HotelID: two summaries with the same id are the same hotel
// even when display fields differ between pages.
type HotelSummary struct {
	HotelID      string      `json:"hotelId"`
	Name         string      `json:"name"`
	Address      string      `json:"address,omitempty"`
	City         string      `json:"city,omitempty"`
	CountryCode  string      `json:"countryCode,omitempty"`
	Stars        int         `json:"stars,omitempty"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	ReviewScore  float64     `json:"reviewScore,omitempty"`
	ReviewCount  int         `json:"reviewCount,omitempty"`
	LowestRate   *RetailRate `json:"lowestRate,omitempty"`
	Offers       []RoomOffer `json:"offers,omitempty"`
}

// HotelDetails is the per-hotel rate listing used on the room selection screen.
type HotelDetails struct {
	HotelID     string      `json:"hotelId"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Rates       []RoomOffer `json:"rates"`
}
