package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotmart/middleware"
	"slotmart/services/payment"
	"slotmart/utils"
)

// PaymentHandler exposes the Stripe checkout flow.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckout creates a Stripe checkout session for an appointment's fee.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Service.CreateCheckout(c.Request.Context(), middleware.PrincipalID(c), req.AppointmentID)
	if err != nil {
		utils.JSONError(c, statusForBookingError(err), "failed to create checkout session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_url": sess.SessionURL, "session_id": sess.SessionID})
}

// VerifyCheckout applies the gateway redirect verdict to the appointment.
func (h *PaymentHandler) VerifyCheckout(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
		Success       bool   `json:"success"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.Verify(c.Request.Context(), req.AppointmentID, req.Success); err != nil {
		if errors.Is(err, payment.ErrPaymentFailed) {
			utils.JSONError(c, http.StatusPaymentRequired, "payment failed", "")
			return
		}
		utils.JSONError(c, statusForBookingError(err), "payment verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment Successful"})
}
