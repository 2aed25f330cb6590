package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotmart/config"
	"slotmart/handlers"
	"slotmart/middleware"
	"slotmart/utils"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	User    *handlers.UserHandler
	Seller  *handlers.SellerHandler
	Admin   *handlers.AdminHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
}

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerUserRoutes(r, h)
	registerSellerRoutes(r, h)
	registerAdminRoutes(r, h)
}

func registerUserRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/users")
	{
		api.POST("/register", h.User.RegisterUser)
		api.POST("/login", h.User.AuthenticateUser)

		// Protected routes (Require Authentication)
		auth := api.Group("")
		auth.Use(middleware.RequireRole(utils.RoleBuyer))
		auth.GET("/me", h.User.GetProfile)
		auth.PUT("/me", h.User.UpdateProfile)
		auth.GET("/appointments", h.Booking.ListMyAppointments)
		auth.POST("/book", h.Booking.BookAppointment)
		auth.POST("/cancel", h.Booking.CancelAppointment)
		auth.POST("/payment/checkout", h.Payment.CreateCheckout)
	}

	// Gateway redirect callback; the redirect carries no bearer token.
	r.POST("/api/payment/verify", h.Payment.VerifyCheckout)
}

func registerSellerRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/sellers")
	{
		// Public directory endpoints.
		api.GET("", h.Seller.ListSellers)
		api.GET("/id/:id", h.Seller.GetSellerByID)
		api.GET("/id/:id/slots", h.Booking.GetAvailableSlots)
		api.POST("/login", h.Seller.AuthenticateSeller)

		// Endpoints that modify seller data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.RequireRole(utils.RoleSeller))
		protected.GET("/appointments", h.Booking.ListSellerAppointments)
		protected.POST("/appointments/cancel", h.Booking.CancelAppointment)
		protected.POST("/appointments/complete", h.Booking.CompleteAppointment)
		protected.PUT("/profile", h.Seller.UpdateProfile)
		protected.PATCH("/availability", h.Seller.ChangeAvailability)
	}
}

func registerAdminRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", h.Admin.AuthenticateAdmin)

		protected := api.Group("")
		protected.Use(middleware.RequireRole(utils.RoleAdmin))
		protected.POST("/sellers", h.Admin.AddSeller)
		protected.PATCH("/sellers/availability", h.Admin.SetSellerAvailability)
		protected.GET("/appointments", h.Admin.ListAllAppointments)
		protected.POST("/appointments/cancel", h.Admin.CancelAppointment)
	}
}
