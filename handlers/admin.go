package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slotmart/config"
	sellerRepo "slotmart/database/repository/seller"
	"slotmart/models"
	"slotmart/services/booking"
	"slotmart/services/seller"
	"slotmart/utils"
)

const adminTokenTTL = 24 * time.Hour

// AdminHandler exposes the operator endpoints: seller onboarding, the global
// appointment list, and administrative cancellation.
type AdminHandler struct {
	Sellers seller.SellerService
	Booking booking.BookingService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(sellers seller.SellerService, bookingSvc booking.BookingService) *AdminHandler {
	return &AdminHandler{Sellers: sellers, Booking: bookingSvc}
}

// AuthenticateAdmin checks the configured operator credentials and issues an
// admin token.
func (h *AdminHandler) AuthenticateAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if req.Email != config.AppConfig.AdminEmail || req.Password != config.AppConfig.AdminPassword {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken("admin", utils.RoleAdmin, adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AddSeller onboards a new seller.
func (h *AdminHandler) AddSeller(c *gin.Context) {
	var data models.SellerRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s, err := h.Sellers.Register(c.Request.Context(), data)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add seller", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seller": s})
}

// ListAllAppointments returns every appointment for the admin dashboard.
func (h *AdminHandler) ListAllAppointments(c *gin.Context) {
	appts, err := h.Booking.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointment cancels any appointment on the admin's authority.
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Booking.Cancel(c.Request.Context(), "admin", utils.RoleAdmin, req.AppointmentID); err != nil {
		utils.JSONError(c, statusForBookingError(err), "cancellation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Cancelled"})
}

// SetSellerAvailability overrides a seller's availability flag.
func (h *AdminHandler) SetSellerAvailability(c *gin.Context) {
	var req struct {
		SellerID  string `json:"sellerId" binding:"required"`
		Available *bool  `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Sellers.SetAvailability(c.Request.Context(), req.SellerID, *req.Available); err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "seller not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to change availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability Changed", "available": *req.Available})
}
