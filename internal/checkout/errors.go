package checkout

import "errors"

var (
	ErrCartEmpty = errors.New("checkout: cart is empty")
	ErrInFlight  = errors.New("checkout: a submission is already being processed for this cart")
)
