package booking

import "errors"

// Every failure of a booking operation is an expected business outcome (lost
// a race for a slot, stale client state), never a reason to unwind the
// process. Handlers map these to HTTP statuses.
var (
	ErrSellerNotFound     = errors.New("seller not found")
	ErrBuyerNotFound      = errors.New("buyer not found")
	ErrSellerUnavailable  = errors.New("seller not available")
	ErrSlotConflict       = errors.New("slot already booked")
	ErrInvalidSlot        = errors.New("day or time outside the bookable grid")
	ErrNotFound           = errors.New("appointment not found")
	ErrUnauthorized       = errors.New("principal does not own this appointment")
	ErrAlreadyCancelled   = errors.New("appointment already cancelled")
	ErrAlreadyCompleted   = errors.New("appointment already completed")
	ErrPaymentOnCancelled = errors.New("cannot confirm payment on a cancelled appointment")
)
