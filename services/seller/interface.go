package seller

import (
	"context"

	"github.com/go-redis/redis/v8"

	sellerRepo "slotmart/database/repository/seller"
	"slotmart/models"
)

// SellerService manages the seller directory: onboarding, authentication,
// fee/availability lookups, and the public listing consumed by buyers.
type SellerService interface {
	Register(ctx context.Context, data models.SellerRegistrationData) (*models.Seller, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Seller, error)
	List(ctx context.Context) ([]models.Seller, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	UpdateProfile(ctx context.Context, id string, update models.SellerProfileUpdate) (*models.Seller, error)
}

// AuthResponse carries a seller's ID and session token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// DefaultSellerService is the production implementation.
type DefaultSellerService struct {
	Repo  sellerRepo.SellerRepository
	Cache *redis.Client // optional; nil disables directory caching
}
