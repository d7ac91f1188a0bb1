package cart

import "errors"

var (
	// ErrCurrencyMismatch means the cart holds items priced in different
	// currencies. The cart never converts; callers must keep one currency.
	ErrCurrencyMismatch = errors.New("cart items carry different currencies")

	// ErrDuplicateOffer means the offer is already in the cart. A cart line
	// maps one-to-one to a prebookable offer.
	ErrDuplicateOffer = errors.New("offer is already in the cart")

	ErrIndexOutOfRange = errors.New("cart index out of range")
)
