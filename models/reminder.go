package models

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	BuyerID       string `json:"buyerId"`
	SellerID      string `json:"sellerId"`
	SlotDay       string `json:"slotDay"`
	SlotTime      string `json:"slotTime"`
}
