package search

import (
	"testing"

	"tripnest/models"
)

func page(ids ...string) []models.HotelSummary {
	hotels := make([]models.HotelSummary, 0, len(ids))
	for _, id := range ids {
		hotels = append(hotels, models.HotelSummary{HotelID: id, Name: "Hotel " + id})
	}
	return hotels
}

func heldIDs(a *Aggregator) []string {
	ids := make([]string, 0, a.Len())
	for _, h := range a.All() {
		ids = append(ids, h.HotelID)
	}
	return ids
}

func TestAppend_OverlappingPages(t *testing.T) {
	a := NewAggregator(10)
	a.Append(page("A", "B"))
	a.Append(page("B", "C"))

	got := heldIDs(a)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %d hotels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAppend_DuplicatesWithinPage(t *testing.T) {
	a := NewAggregator(10)
	added := a.Append(page("A", "A", "B"))

	if added != 2 {
		t.Errorf("expected 2 added, got %d", added)
	}
	if a.Len() != 2 {
		t.Errorf("expected 2 held, got %d", a.Len())
	}
}

func TestAppend_PageReplayIsNoOp(t *testing.T) {
	a := NewAggregator(10)
	a.Append(page("A", "B"))
	added := a.Append(page("A", "B"))

	if added != 0 {
		t.Errorf("expected replay to add 0, added %d", added)
	}
	if a.Len() != 2 {
		t.Errorf("expected 2 held after replay, got %d", a.Len())
	}
}

func TestAppend_NeverReplacesHeldEntry(t *testing.T) {
	a := NewAggregator(10)
	a.Append([]models.HotelSummary{{HotelID: "A", Name: "Original"}})
	a.Append([]models.HotelSummary{{HotelID: "A", Name: "Refreshed"}})

	if a.All()[0].Name != "Original" {
		t.Errorf("held entry was replaced: got %q", a.All()[0].Name)
	}
}

func TestAppend_SkipsEmptyID(t *testing.T) {
	a := NewAggregator(10)
	a.Append([]models.HotelSummary{{HotelID: ""}, {HotelID: "A"}})

	if a.Len() != 1 {
		t.Errorf("expected 1 held, got %d", a.Len())
	}
}

func TestVisible_WindowIndependentOfFetchBatch(t *testing.T) {
	a := NewAggregator(3)
	// One large fetch batch; the display window still starts at one page.
	a.Append(page("A", "B", "C", "D", "E", "F", "G"))

	if len(a.Visible()) != 3 {
		t.Fatalf("expected 3 visible, got %d", len(a.Visible()))
	}
	if !a.HasMore() {
		t.Error("expected more results beyond the window")
	}

	a.ShowMore()
	if len(a.Visible()) != 6 {
		t.Errorf("expected 6 visible after ShowMore, got %d", len(a.Visible()))
	}

	a.ShowMore()
	if len(a.Visible()) != 7 {
		t.Errorf("expected window clamped to 7, got %d", len(a.Visible()))
	}
}

func TestReset_ClearsState(t *testing.T) {
	a := NewAggregator(5)
	a.Append(page("A", "B"))
	a.ShowMore()
	a.Reset()

	if a.Len() != 0 {
		t.Errorf("expected empty after reset, got %d", a.Len())
	}
	if a.Displayed() != 5 {
		t.Errorf("expected window back to one page (5), got %d", a.Displayed())
	}

	// Previously seen ids merge again after a reset.
	if added := a.Append(page("A")); added != 1 {
		t.Errorf("expected A to merge after reset, added %d", added)
	}
}

func TestNewAggregatorFrom_Rehydration(t *testing.T) {
	a := NewAggregator(10)
	a.Append(page("A", "B"))

	b := NewAggregatorFrom(a.All(), a.Displayed(), 10)
	if added := b.Append(page("B", "C")); added != 1 {
		t.Errorf("expected rehydrated aggregator to dedup B, added %d", added)
	}
	if b.Len() != 3 {
		t.Errorf("expected 3 held, got %d", b.Len())
	}
}
