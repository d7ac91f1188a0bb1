package search

import (
	"testing"

	"tripnest/models"
)

func strPtr(s string) *string { return &s }

func TestMergeQuery_LastWriteWinsPerField(t *testing.T) {
	params := models.SearchParams{
		PlaceID:  "p1",
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-05",
		Currency: "EUR",
	}

	merged := MergeQuery(params, models.SearchParamsPatch{
		CheckIn: strPtr("2026-09-02"),
	})

	if merged.CheckIn != "2026-09-02" {
		t.Errorf("expected patched check-in, got %q", merged.CheckIn)
	}
	if merged.PlaceID != "p1" || merged.CheckOut != "2026-09-05" || merged.Currency != "EUR" {
		t.Error("untouched fields must survive the merge")
	}
}

func TestMergeQuery_Occupancies(t *testing.T) {
	occ := []models.RoomOccupancy{{Adults: 2, ChildAges: []int{4}}}
	merged := MergeQuery(models.SearchParams{}, models.SearchParamsPatch{Occupancies: &occ})

	if len(merged.Occupancies) != 1 || merged.Occupancies[0].Adults != 2 {
		t.Errorf("expected occupancies to be replaced, got %+v", merged.Occupancies)
	}
}

func TestBuildRequest_CentralizedDefaulting(t *testing.T) {
	params := models.SearchParams{
		PlaceID:     "p1",
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-05",
		Occupancies: []models.RoomOccupancy{{Adults: 2}},
	}
	d := Defaults{Currency: "USD", Nationality: "US"}

	req := BuildRequest(params, d, 25, 0)
	if req.Currency != "USD" {
		t.Errorf("expected default currency USD, got %q", req.Currency)
	}
	if req.Nationality != "US" {
		t.Errorf("expected default nationality US, got %q", req.Nationality)
	}

	params.Currency = "MAD"
	params.Nationality = "MA"
	req = BuildRequest(params, d, 25, 0)
	if req.Currency != "MAD" || req.Nationality != "MA" {
		t.Error("traveler's explicit choice must win over defaults")
	}
}

func TestValidateParams(t *testing.T) {
	valid := models.SearchParams{
		PlaceID:     "p1",
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-05",
		Occupancies: []models.RoomOccupancy{{Adults: 1}},
	}
	if err := ValidateParams(valid); err != nil {
		t.Errorf("expected valid params, got %v", err)
	}

	noPlace := valid
	noPlace.PlaceID = ""
	if err := ValidateParams(noPlace); err != ErrMissingDestination {
		t.Errorf("expected ErrMissingDestination, got %v", err)
	}

	noDates := valid
	noDates.CheckOut = ""
	if err := ValidateParams(noDates); err != ErrMissingDates {
		t.Errorf("expected ErrMissingDates, got %v", err)
	}

	reversed := valid
	reversed.CheckIn, reversed.CheckOut = reversed.CheckOut, reversed.CheckIn
	if err := ValidateParams(reversed); err != ErrInvalidDateRange {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	sameDay := valid
	sameDay.CheckOut = sameDay.CheckIn
	if err := ValidateParams(sameDay); err != ErrInvalidDateRange {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	noAdults := valid
	noAdults.Occupancies = []models.RoomOccupancy{{Adults: 0}}
	if err := ValidateParams(noAdults); err != ErrNoOccupancy {
		t.Errorf("expected ErrNoOccupancy, got %v", err)
	}
}
