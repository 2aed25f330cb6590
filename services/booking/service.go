package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "slotmart/database/repository/appointment"
	sellerRepo "slotmart/database/repository/seller"
	userRepo "slotmart/database/repository/user"
	"slotmart/models"
	"slotmart/utils"
)

const reminderLead = time.Hour

// Book reserves (sellerID, day, slot) and creates the appointment with a
// snapshot of the seller's current fee. The reservation is a single atomic
// conditional update in the seller repository; the appointment insert follows,
// and an insert failure compensates by releasing the just-reserved slot.
func (s *DefaultBookingService) Book(ctx context.Context, buyerID, sellerID, day, slot string) (*models.Appointment, error) {
	now := s.now()
	if !ValidSlot(day, slot, now) {
		return nil, ErrInvalidSlot
	}

	if _, err := s.UserRepo.GetByID(ctx, buyerID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrBuyerNotFound
		}
		return nil, fmt.Errorf("buyer lookup failed: %w", err)
	}

	seller, err := s.SellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("seller lookup failed: %w", err)
	}
	if !seller.Available {
		return nil, ErrSellerUnavailable
	}

	if err := s.SellerRepo.ReserveSlot(ctx, sellerID, day, slot); err != nil {
		if errors.Is(err, sellerRepo.ErrSlotNotReserved) {
			return nil, s.classifyReservationFailure(ctx, sellerID)
		}
		return nil, fmt.Errorf("slot reservation failed: %w", err)
	}

	appt := &models.Appointment{
		BuyerID:   buyerID,
		SellerID:  sellerID,
		SlotDay:   day,
		SlotTime:  slot,
		Amount:    seller.Fee,
		Status:    models.AppointmentActive,
		CreatedAt: now,
	}
	if err := s.ApptRepo.Insert(ctx, appt); err != nil {
		// Compensate so the reservation does not orphan the slot.
		if relErr := s.SellerRepo.ReleaseSlot(ctx, sellerID, day, slot); relErr != nil {
			utils.GetLogger().Error("failed to release slot after insert failure",
				zap.String("sellerId", sellerID), zap.String("day", day),
				zap.String("slot", slot), zap.Error(relErr))
		}
		return nil, fmt.Errorf("appointment insert failed: %w", err)
	}

	s.scheduleReminder(ctx, appt)
	return appt, nil
}

// classifyReservationFailure re-reads the seller to turn a failed conditional
// update into a precise error kind.
func (s *DefaultBookingService) classifyReservationFailure(ctx context.Context, sellerID string) error {
	seller, err := s.SellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			return ErrSellerNotFound
		}
		return fmt.Errorf("seller lookup failed: %w", err)
	}
	if !seller.Available {
		return ErrSellerUnavailable
	}
	return ErrSlotConflict
}

// Cancel transitions an appointment to cancelled and releases its slot. Only
// the owning buyer, the owning seller, or an admin may cancel. Cancelling an
// already-cancelled appointment is a no-op success; the slot is released by
// whichever caller wins the active-to-cancelled transition, exactly once.
func (s *DefaultBookingService) Cancel(ctx context.Context, requesterID, role, appointmentID string) error {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	switch role {
	case utils.RoleBuyer:
		if appt.BuyerID != requesterID {
			return ErrUnauthorized
		}
	case utils.RoleSeller:
		if appt.SellerID != requesterID {
			return ErrUnauthorized
		}
	case utils.RoleAdmin:
	default:
		return ErrUnauthorized
	}

	switch appt.Status {
	case models.AppointmentCancelled:
		return nil
	case models.AppointmentCompleted:
		return ErrAlreadyCompleted
	}

	if err := s.ApptRepo.MarkCancelled(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoTransition) {
			// Lost a race; re-read to see which terminal state won.
			current, getErr := s.getAppointment(ctx, appointmentID)
			if getErr != nil {
				return getErr
			}
			if current.Status == models.AppointmentCompleted {
				return ErrAlreadyCompleted
			}
			return nil
		}
		return fmt.Errorf("cancel failed: %w", err)
	}

	if err := s.SellerRepo.ReleaseSlot(ctx, appt.SellerID, appt.SlotDay, appt.SlotTime); err != nil {
		return fmt.Errorf("slot release failed: %w", err)
	}
	return nil
}

// Complete marks an appointment completed. Only the owning seller may do so;
// completing an already-completed appointment is a no-op success.
func (s *DefaultBookingService) Complete(ctx context.Context, sellerID, appointmentID string) error {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.SellerID != sellerID {
		return ErrUnauthorized
	}

	switch appt.Status {
	case models.AppointmentCancelled:
		return ErrAlreadyCancelled
	case models.AppointmentCompleted:
		return nil
	}

	if err := s.ApptRepo.MarkCompleted(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoTransition) {
			current, getErr := s.getAppointment(ctx, appointmentID)
			if getErr != nil {
				return getErr
			}
			if current.Status == models.AppointmentCancelled {
				return ErrAlreadyCancelled
			}
			return nil
		}
		return fmt.Errorf("complete failed: %w", err)
	}
	return nil
}

// ConfirmPayment records a gateway-confirmed capture. The paid flag is set at
// most once and never on a cancelled appointment.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, appointmentID string) error {
	if err := s.ApptRepo.MarkPaid(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoTransition) {
			appt, getErr := s.getAppointment(ctx, appointmentID)
			if getErr != nil {
				return getErr
			}
			if appt.Status == models.AppointmentCancelled {
				return ErrPaymentOnCancelled
			}
			return nil
		}
		return fmt.Errorf("payment confirmation failed: %w", err)
	}
	return nil
}

// AvailableSlots returns the seller's free grid for the whole horizon: the
// generated slots minus the booked set, per day.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, sellerID string) ([]DayAvailability, error) {
	seller, err := s.SellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("seller lookup failed: %w", err)
	}

	now := s.now()
	days := GridDays(now)
	availability := make([]DayAvailability, 0, len(days))
	for _, day := range days {
		booked := seller.SlotsBooked[day]
		var free []string
		for _, slot := range DaySlots(day, now) {
			if !contains(booked, slot) {
				free = append(free, slot)
			}
		}
		availability = append(availability, DayAvailability{Day: day, Slots: free})
	}
	return availability, nil
}

func (s *DefaultBookingService) ListForBuyer(ctx context.Context, buyerID string) ([]models.Appointment, error) {
	return s.ApptRepo.ListByBuyer(ctx, buyerID)
}

func (s *DefaultBookingService) ListForSeller(ctx context.Context, sellerID string) ([]models.Appointment, error) {
	return s.ApptRepo.ListBySeller(ctx, sellerID)
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.ApptRepo.ListAll(ctx)
}

func (s *DefaultBookingService) getAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}
	return appt, nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	start, err := SlotStart(appt.SlotDay, appt.SlotTime, s.now().Location())
	if err != nil {
		utils.GetLogger().Warn("unparseable slot for reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		BuyerID:       appt.BuyerID,
		SellerID:      appt.SellerID,
		SlotDay:       appt.SlotDay,
		SlotTime:      appt.SlotTime,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, start.Add(-reminderLead)); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
