package booking

import (
	"context"
	"time"

	appointmentRepo "slotmart/database/repository/appointment"
	sellerRepo "slotmart/database/repository/seller"
	userRepo "slotmart/database/repository/user"
	"slotmart/models"
)

// BookingService is the booking protocol: the sole path through which
// appointments are created and change state, and through which the seller's
// booked-slot ledger is mutated.
type BookingService interface {
	Book(ctx context.Context, buyerID, sellerID, day, slot string) (*models.Appointment, error)
	Cancel(ctx context.Context, requesterID, role, appointmentID string) error
	Complete(ctx context.Context, sellerID, appointmentID string) error
	ConfirmPayment(ctx context.Context, appointmentID string) error

	AvailableSlots(ctx context.Context, sellerID string) ([]DayAvailability, error)
	ListForBuyer(ctx context.Context, buyerID string) ([]models.Appointment, error)
	ListForSeller(ctx context.Context, sellerID string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}

// DayAvailability is one day of a seller's free grid.
type DayAvailability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// ReminderScheduler enqueues an appointment reminder to fire near the slot
// start. Enqueue failures never fail a booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	SellerRepo sellerRepo.SellerRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	UserRepo   userRepo.UserRepository
	Reminders  ReminderScheduler // optional

	// Now is the clock used for grid generation; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
