package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"slotmart/config"
	appointmentRepo "slotmart/database/repository/appointment"
	"slotmart/models"
	"slotmart/services/booking"
	"slotmart/utils"
)

// ErrPaymentFailed is returned when the gateway reports an unsuccessful capture.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentService creates Stripe checkout sessions for appointment fees and
// applies the gateway's verdict to the booking protocol.
type PaymentService interface {
	CreateCheckout(ctx context.Context, buyerID, appointmentID string) (*models.CheckoutSession, error)
	Verify(ctx context.Context, appointmentID string, success bool) error
}

// PaymentConfirmer is the slice of the booking protocol the payment flow needs.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, appointmentID string) error
}

// CheckoutGateway wraps the Stripe checkout session calls.
type CheckoutGateway interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string) (*stripe.CheckoutSession, error)
}

type stripeGateway struct{}

func (stripeGateway) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (stripeGateway) GetSession(id string) (*stripe.CheckoutSession, error) {
	return session.Get(id, nil)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	ApptRepo appointmentRepo.AppointmentRepository
	Booking  PaymentConfirmer
	Gateway  CheckoutGateway // nil means live Stripe
}

func (s *DefaultPaymentService) gateway() CheckoutGateway {
	if s.Gateway != nil {
		return s.Gateway
	}
	return stripeGateway{}
}

// CreateCheckout builds a Stripe checkout session charging the appointment's
// snapshotted amount and records the session on the appointment for later
// verification. Only the owning buyer may pay, and never for a cancelled
// appointment.
func (s *DefaultPaymentService) CreateCheckout(ctx context.Context, buyerID, appointmentID string) (*models.CheckoutSession, error) {
	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}
	if appt.BuyerID != buyerID {
		return nil, booking.ErrUnauthorized
	}
	if appt.Status == models.AppointmentCancelled {
		return nil, booking.ErrPaymentOnCancelled
	}

	origin := config.AppConfig.FrontendOrigin
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(config.AppConfig.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Appointment Fees"),
					},
					UnitAmount: stripe.Int64(int64(appt.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&appointmentId=%s", origin, appt.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&appointmentId=%s", origin, appt.ID)),
	}

	sess, err := s.gateway().CreateSession(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err := s.ApptRepo.SetCheckoutSession(ctx, appt.ID, sess.ID); err != nil {
		return nil, fmt.Errorf("failed to record checkout session: %w", err)
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("appointmentId", appt.ID), zap.String("sessionId", sess.ID))

	return &models.CheckoutSession{
		AppointmentID: appt.ID,
		SessionID:     sess.ID,
		SessionURL:    sess.URL,
	}, nil
}

// Verify confirms the capture with Stripe before recording it. The redirect's
// success flag alone is never trusted: the recorded session is retrieved and
// its payment status checked, so a forged callback cannot mark an unpaid
// appointment as paid.
func (s *DefaultPaymentService) Verify(ctx context.Context, appointmentID string, success bool) error {
	if !success {
		return ErrPaymentFailed
	}

	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return booking.ErrNotFound
		}
		return fmt.Errorf("appointment lookup failed: %w", err)
	}
	if appt.CheckoutSessionID == "" {
		return ErrPaymentFailed
	}

	sess, err := s.gateway().GetSession(appt.CheckoutSessionID)
	if err != nil {
		return fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return ErrPaymentFailed
	}

	return s.Booking.ConfirmPayment(ctx, appointmentID)
}
