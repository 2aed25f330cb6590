package models

import "time"

// Seller represents a marketplace-side party offering a bookable service at a fee.
type Seller struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Email     string  `bson:"email" json:"email"`
	Category  string  `bson:"category" json:"category"` // e.g., "photography", "tutoring"
	About     string  `bson:"about,omitempty" json:"about,omitempty"`
	Fee       float64 `bson:"fee" json:"fee"` // current fee per appointment
	Available bool    `bson:"available" json:"available"`

	// SlotsBooked maps a calendar day ("2006-01-02") to the time labels
	// already reserved on that day. Mutated only through the slot ledger.
	SlotsBooked map[string][]string `bson:"slots_booked,omitempty" json:"slots_booked,omitempty"`

	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicView strips credentials and ledger state for directory listings.
func (s Seller) PublicView() Seller {
	s.PasswordHash = ""
	s.SlotsBooked = nil
	return s
}

// SellerProfileUpdate carries the seller-editable listing fields; a nil Fee
// leaves the current fee in place. Fee changes never touch existing
// appointments, whose amounts are booking-time snapshots.
type SellerProfileUpdate struct {
	About string   `json:"about"`
	Fee   *float64 `json:"fee" binding:"omitempty,gt=0"`
}

// SellerRegistrationData is the payload for admin seller onboarding.
type SellerRegistrationData struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Category string  `json:"category" binding:"required"`
	About    string  `json:"about"`
	Fee      float64 `json:"fee" binding:"required,gt=0"`
}
