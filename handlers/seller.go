package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sellerRepo "slotmart/database/repository/seller"
	"slotmart/middleware"
	"slotmart/models"
	"slotmart/services/seller"
	"slotmart/utils"
)

// SellerHandler exposes seller directory and account endpoints.
type SellerHandler struct {
	Service seller.SellerService
}

// NewSellerHandler constructs a SellerHandler.
func NewSellerHandler(svc seller.SellerService) *SellerHandler {
	return &SellerHandler{Service: svc}
}

// AuthenticateSeller logs a seller in.
func (h *SellerHandler) AuthenticateSeller(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, seller.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSellers returns the public seller directory.
func (h *SellerHandler) ListSellers(c *gin.Context) {
	sellers, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list sellers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellers": sellers})
}

// GetSellerByID returns one seller's public profile.
func (h *SellerHandler) GetSellerByID(c *gin.Context) {
	s, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "seller not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch seller", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seller": s.PublicView()})
}

// UpdateProfile updates the authenticated seller's listing (about, fee).
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	var update models.SellerProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s, err := h.Service.UpdateProfile(c.Request.Context(), middleware.PrincipalID(c), update)
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "seller not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seller": s})
}

// ChangeAvailability toggles the authenticated seller's availability flag.
func (h *SellerHandler) ChangeAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sellerID := middleware.PrincipalID(c)
	if err := h.Service.SetAvailability(c.Request.Context(), sellerID, *req.Available); err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "seller not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to change availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability Changed", "available": *req.Available})
}
