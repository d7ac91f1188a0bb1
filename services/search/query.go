package search

import (
	"errors"

	"tripnest/models"
)

// Validation is advisory: the UI blocks an empty destination before search,
// these checks are the server-side backstop.
var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDates       = errors.New("check-in and check-out dates are required")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrNoOccupancy        = errors.New("at least one room occupancy is required")
)

// Defaults are the centralized fallbacks applied when building a wire request.
// All defaulting happens here, never at call sites.
type Defaults struct {
	Currency    string
	Nationality string
}

// MergeQuery applies a partial update onto params, last write wins per field.
func MergeQuery(params models.SearchParams, patch models.SearchParamsPatch) models.SearchParams {
	if patch.PlaceID != nil {
		params.PlaceID = *patch.PlaceID
	}
	if patch.Destination != nil {
		params.Destination = *patch.Destination
	}
	if patch.CheckIn != nil {
		params.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		params.CheckOut = *patch.CheckOut
	}
	if patch.Occupancies != nil {
		params.Occupancies = *patch.Occupancies
	}
	if patch.Currency != nil {
		params.Currency = *patch.Currency
	}
	if patch.Nationality != nil {
		params.Nationality = *patch.Nationality
	}
	return params
}

// ValidateParams checks that params are complete enough to search.
func ValidateParams(params models.SearchParams) error {
	if params.PlaceID == "" {
		return ErrMissingDestination
	}
	if params.CheckIn == "" || params.CheckOut == "" {
		return ErrMissingDates
	}
	// Dates travel as "YYYY-MM-DD", so lexicographic order is date order.
	if params.CheckOut <= params.CheckIn {
		return ErrInvalidDateRange
	}
	if len(params.Occupancies) == 0 {
		return ErrNoOccupancy
	}
	for _, occ := range params.Occupancies {
		if occ.Adults < 1 {
			return ErrNoOccupancy
		}
	}
	return nil
}

// BuildRequest maps params into the supplier wire shape, filling in the
// configured currency/nationality when the traveler did not choose one.
func BuildRequest(params models.SearchParams, d Defaults, limit, offset int) models.SearchRequest {
	req := models.SearchRequest{
		PlaceID:     params.PlaceID,
		CheckIn:     params.CheckIn,
		CheckOut:    params.CheckOut,
		Occupancies: params.Occupancies,
		Currency:    params.Currency,
		Nationality: params.Nationality,
		Limit:       limit,
		Offset:      offset,
	}
	if req.Currency == "" {
		req.Currency = d.Currency
	}
	if req.Nationality == "" {
		req.Nationality = d.Nationality
	}
	return req
}
