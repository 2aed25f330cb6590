package models

import "time"

// AppointmentStatus is the appointment lifecycle state. Active appointments
// hold a slot; Cancelled and Completed are terminal.
type AppointmentStatus string

const (
	AppointmentActive    AppointmentStatus = "active"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// Appointment represents a buyer's reservation of one slot with a seller.
type Appointment struct {
	ID       string `bson:"id" json:"id"`
	BuyerID  string `bson:"buyer_id" json:"buyerId"`
	SellerID string `bson:"seller_id" json:"sellerId"`

	// SlotDay is the booked calendar day in "2006-01-02" format; SlotTime is
	// the half-hour grid label, e.g. "10:30 AM".
	SlotDay  string `bson:"slot_day" json:"slotDay"`
	SlotTime string `bson:"slot_time" json:"slotTime"`

	// Amount is a snapshot of the seller's fee at booking time; it is never
	// re-read from the seller afterwards.
	Amount float64 `bson:"amount" json:"amount"`

	Status AppointmentStatus `bson:"status" json:"status"`

	// Paid overlays Active/Completed; it is set once by the payment
	// confirmation callback and never unset.
	Paid bool `bson:"paid" json:"paid"`

	// CheckoutSessionID is the Stripe session created for this appointment,
	// recorded so the verify callback can confirm the capture with the
	// gateway instead of trusting the redirect.
	CheckoutSessionID string `bson:"checkout_session_id,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Terminal reports whether the appointment can no longer change state.
func (a Appointment) Terminal() bool {
	return a.Status == AppointmentCancelled || a.Status == AppointmentCompleted
}
