package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotmart/middleware"
	"slotmart/services/booking"
	"slotmart/utils"
)

// BookingHandler exposes the booking protocol over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// BookAppointment reserves a slot and creates an appointment for the
// authenticated buyer.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req struct {
		SellerID string `json:"sellerId" binding:"required"`
		SlotDay  string `json:"slotDay" binding:"required"`
		SlotTime string `json:"slotTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	buyerID := middleware.PrincipalID(c)
	appt, err := h.Service.Book(c.Request.Context(), buyerID, req.SellerID, req.SlotDay, req.SlotTime)
	if err != nil {
		utils.JSONError(c, statusForBookingError(err), "booking failed", err.Error())
		return
	}

	h.Logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("buyerId", buyerID),
		zap.String("sellerId", req.SellerID),
		zap.String("slot", req.SlotDay+" "+req.SlotTime))
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// CancelAppointment cancels an appointment on behalf of the authenticated
// principal (buyer, seller, or admin).
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	requesterID := middleware.PrincipalID(c)
	role := middleware.PrincipalRole(c)
	if err := h.Service.Cancel(c.Request.Context(), requesterID, role, req.AppointmentID); err != nil {
		utils.JSONError(c, statusForBookingError(err), "cancellation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Cancelled"})
}

// CompleteAppointment marks an appointment completed on behalf of the
// authenticated seller.
func (h *BookingHandler) CompleteAppointment(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sellerID := middleware.PrincipalID(c)
	if err := h.Service.Complete(c.Request.Context(), sellerID, req.AppointmentID); err != nil {
		utils.JSONError(c, statusForBookingError(err), "completion failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Completed"})
}

// GetAvailableSlots returns the seller's free grid for the booking horizon.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	sellerID := c.Param("id")
	availability, err := h.Service.AvailableSlots(c.Request.Context(), sellerID)
	if err != nil {
		utils.JSONError(c, statusForBookingError(err), "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": availability})
}

// ListMyAppointments returns the authenticated buyer's appointments.
func (h *BookingHandler) ListMyAppointments(c *gin.Context) {
	appts, err := h.Service.ListForBuyer(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListSellerAppointments returns the authenticated seller's appointments.
func (h *BookingHandler) ListSellerAppointments(c *gin.Context) {
	appts, err := h.Service.ListForSeller(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
