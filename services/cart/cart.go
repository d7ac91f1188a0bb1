package cart

import (
	"time"

	"tripnest/models"
)

// Cart is the ordered collection of offers the traveler intends to book.
// Mutations are synchronous and immediately observable; there is no batching.
// Quantity per line is fixed at 1 by policy.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// Add appends a chosen offer. Adding an offer whose offerId is already held
// fails: each line must map to its own prebookable offer.
func (c *Cart) Add(offer models.RoomOffer, pref models.GuestPreference) error {
	if offer.OfferID != "" {
		for _, item := range c.Items {
			if item.Offer.OfferID == offer.OfferID {
				return ErrDuplicateOffer
			}
		}
	}
	if pref == "" {
		pref = models.PreferenceNone
	}
	c.Items = append(c.Items, models.CartItem{
		Offer:      offer,
		Quantity:   1,
		Preference: pref,
		AddedAt:    time.Now(),
	})
	return nil
}

// Remove deletes the line at the given position.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// Increment is a no-op above quantity 1: requests beyond the clamp are
// silently rejected.
func (c *Cart) Increment(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrIndexOutOfRange
	}
	return nil
}

// Decrement at quantity 1 removes the line instead of dropping to 0.
func (c *Cart) Decrement(index int) error {
	return c.Remove(index)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.Items)
}

// Clear empties the cart (used after a successful booking).
func (c *Cart) Clear() {
	c.Items = nil
}

// Total sums the retail totals of all lines. An empty cart totals to zero
// with an empty currency. Mixed currencies fail with ErrCurrencyMismatch.
func (c *Cart) Total() (float64, string, error) {
	if len(c.Items) == 0 {
		return 0, "", nil
	}
	currency := c.Items[0].Offer.RetailRate.Currency
	total := 0.0
	for _, item := range c.Items {
		if item.Offer.RetailRate.Currency != currency {
			return 0, "", ErrCurrencyMismatch
		}
		total += item.Offer.RetailRate.Total
	}
	return total, currency, nil
}
