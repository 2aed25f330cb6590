package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	appointmentRepo "slotmart/database/repository/appointment"
	"slotmart/models"
	"slotmart/services/booking"
)

type stubApptRepo struct {
	appts map[string]*models.Appointment
}

func newStubApptRepo() *stubApptRepo {
	return &stubApptRepo{appts: make(map[string]*models.Appointment)}
}

func (r *stubApptRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	copied := *appt
	r.appts[appt.ID] = &copied
	return nil
}

func (r *stubApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	copied := *appt
	return &copied, nil
}

func (r *stubApptRepo) ListByBuyer(ctx context.Context, buyerID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubApptRepo) ListBySeller(ctx context.Context, sellerID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubApptRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubApptRepo) SetCheckoutSession(ctx context.Context, id, sessionID string) error {
	appt, ok := r.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	appt.CheckoutSessionID = sessionID
	return nil
}

func (r *stubApptRepo) MarkCancelled(ctx context.Context, id string) error {
	return appointmentRepo.ErrNoTransition
}

func (r *stubApptRepo) MarkCompleted(ctx context.Context, id string) error {
	return appointmentRepo.ErrNoTransition
}

func (r *stubApptRepo) MarkPaid(ctx context.Context, id string) error {
	return appointmentRepo.ErrNoTransition
}

type stubConfirmer struct {
	confirmed []string
}

func (s *stubConfirmer) ConfirmPayment(ctx context.Context, appointmentID string) error {
	s.confirmed = append(s.confirmed, appointmentID)
	return nil
}

type stubGateway struct {
	sessions map[string]*stripe.CheckoutSession
	created  []*stripe.CheckoutSessionParams
}

func newStubGateway() *stubGateway {
	return &stubGateway{sessions: make(map[string]*stripe.CheckoutSession)}
}

func (g *stubGateway) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	g.created = append(g.created, params)
	sess := &stripe.CheckoutSession{
		ID:            "cs_test_1",
		URL:           "https://checkout.test/cs_test_1",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
	}
	g.sessions[sess.ID] = sess
	return sess, nil
}

func (g *stubGateway) GetSession(id string) (*stripe.CheckoutSession, error) {
	sess, ok := g.sessions[id]
	if !ok {
		return nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing}
	}
	return sess, nil
}

type paymentFixture struct {
	svc       *DefaultPaymentService
	appts     *stubApptRepo
	confirmer *stubConfirmer
	gateway   *stubGateway
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		appts:     newStubApptRepo(),
		confirmer: &stubConfirmer{},
		gateway:   newStubGateway(),
	}
	f.svc = &DefaultPaymentService{
		ApptRepo: f.appts,
		Booking:  f.confirmer,
		Gateway:  f.gateway,
	}
	require.NoError(t, f.appts.Insert(context.Background(), &models.Appointment{
		ID:       "appt-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Amount:   50,
		Status:   models.AppointmentActive,
	}))
	return f
}

func TestCreateCheckoutRecordsSession(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	sess, err := f.svc.CreateCheckout(ctx, "buyer-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sess.SessionID)
	assert.Equal(t, "appt-1", sess.AppointmentID)

	stored, err := f.appts.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", stored.CheckoutSessionID)

	require.Len(t, f.gateway.created, 1)
	params := f.gateway.created[0]
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, int64(5000), *params.LineItems[0].PriceData.UnitAmount)
}

func TestCreateCheckoutGuards(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCheckout(ctx, "buyer-2", "appt-1")
	assert.ErrorIs(t, err, booking.ErrUnauthorized)

	_, err = f.svc.CreateCheckout(ctx, "buyer-1", "ghost")
	assert.ErrorIs(t, err, booking.ErrNotFound)

	f.appts.appts["appt-1"].Status = models.AppointmentCancelled
	_, err = f.svc.CreateCheckout(ctx, "buyer-1", "appt-1")
	assert.ErrorIs(t, err, booking.ErrPaymentOnCancelled)
}

func TestVerifyChecksGateway(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCheckout(ctx, "buyer-1", "appt-1")
	require.NoError(t, err)

	// The redirect flag alone proves nothing while the session is unpaid.
	assert.ErrorIs(t, f.svc.Verify(ctx, "appt-1", true), ErrPaymentFailed)
	assert.Empty(t, f.confirmer.confirmed)

	f.gateway.sessions["cs_test_1"].PaymentStatus = stripe.CheckoutSessionPaymentStatusPaid
	require.NoError(t, f.svc.Verify(ctx, "appt-1", true))
	assert.Equal(t, []string{"appt-1"}, f.confirmer.confirmed)
}

func TestVerifyFailureShortCircuits(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Verify(ctx, "appt-1", false), ErrPaymentFailed)
	assert.Empty(t, f.confirmer.confirmed)
}

func TestVerifyWithoutRecordedSession(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Verify(ctx, "appt-1", true), ErrPaymentFailed)
	assert.ErrorIs(t, f.svc.Verify(ctx, "ghost", true), booking.ErrNotFound)
	assert.Empty(t, f.confirmer.confirmed)
}
