package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userRepo "slotmart/database/repository/user"
	"slotmart/middleware"
	"slotmart/models"
	"slotmart/services/user"
	"slotmart/utils"
)

// UserHandler exposes buyer account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUser creates a buyer account and returns a session token.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var data models.UserRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), data)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUser logs a buyer in.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
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
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile updates the authenticated buyer's editable profile fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.UpdateProfile(c.Request.Context(), middleware.PrincipalID(c), update)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// GetProfile returns the authenticated buyer's profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
