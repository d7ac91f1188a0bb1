package models

// RoomOccupancy describes the guests for a single requested room.
type RoomOccupancy struct {
	Adults    int   `json:"adults"`              // at least 1
	ChildAges []int `json:"childAges,omitempty"` // ages 0-17
}

// SearchParams holds the normalized search criteria for a trip.
type SearchParams struct {
	PlaceID     string          `json:"placeId"`
	Destination string          `json:"destination"` // display name of the chosen place
	CheckIn     string          `json:"checkin"`     // "YYYY-MM-DD"
	CheckOut    string          `json:"checkout"`    // "YYYY-MM-DD", strictly after CheckIn
	Occupancies []RoomOccupancy `json:"occupancies"`
	Currency    string          `json:"currency,omitempty"`
	Nationality string          `json:"nationality,omitempty"`
}

// SearchParamsPatch carries a partial update to SearchParams.
// Nil fields are left untouched; set fields win (last write wins per field).
type SearchParamsPatch struct {
	PlaceID     *string          `json:"placeId,omitempty"`
	Destination *string          `json:"destination,omitempty"`
	CheckIn     *string          `json:"checkin,omitempty"`
	CheckOut    *string          `json:"checkout,omitempty"`
	Occupancies *[]RoomOccupancy `json:"occupancies,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Nationality *string          `json:"nationality,omitempty"`
}

// SearchRequest is the wire shape the supplier search endpoint expects.
type SearchRequest struct {
	PlaceID     string          `json:"placeId"`
	CheckIn     string          `json:"checkin"`
	CheckOut    string          `json:"checkout"`
	Occupancies []RoomOccupancy `json:"occupancies"`
	Currency    string          `json:"currency"`
	Nationality string          `json:"nationality"`
	Limit       int             `json:"limit,omitempty"`
	Offset      int             `json:"offset,omitempty"`
}

// Place is a destination returned by the supplier place search.
type Place struct {
	PlaceID     string `json:"placeId"`
	DisplayName string `json:"displayName"`
}
