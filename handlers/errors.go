package handlers

import (
	"errors"
	"net/http"

	"slotmart/services/booking"
)

// statusForBookingError maps booking protocol error kinds to HTTP statuses.
// Anything unmapped is an internal failure.
func statusForBookingError(err error) int {
	switch {
	case errors.Is(err, booking.ErrSellerNotFound),
		errors.Is(err, booking.ErrBuyerNotFound),
		errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrSlotConflict):
		return http.StatusConflict
	case errors.Is(err, booking.ErrSellerUnavailable),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrPaymentOnCancelled),
		errors.Is(err, booking.ErrInvalidSlot):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
