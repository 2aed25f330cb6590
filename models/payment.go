package models

// CheckoutSession is returned when a Stripe checkout session is created for
// an appointment's fee.
type CheckoutSession struct {
	AppointmentID string `json:"appointmentId"`
	SessionID     string `json:"sessionId"`
	SessionURL    string `json:"sessionUrl"`
}
