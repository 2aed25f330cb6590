// File: database/repository/seller/interface.go
package sellerRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"slotmart/config"
	"slotmart/database"
	"slotmart/models"
	"slotmart/utils"
)

// ErrNotFound is returned when no seller matches the given identifier.
var ErrNotFound = errors.New("seller not found")

// ErrSlotNotReserved is returned by ReserveSlot when the conditional update
// matched no document: the slot is already booked, the seller is unavailable,
// or the seller does not exist. Callers disambiguate with a follow-up read.
var ErrSlotNotReserved = errors.New("slot not reserved")

type SellerRepository interface {
	Create(ctx context.Context, seller *models.Seller) error
	GetByID(ctx context.Context, id string) (*models.Seller, error)
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	List(ctx context.Context) ([]models.Seller, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	UpdateProfile(ctx context.Context, id string, update models.SellerProfileUpdate) error

	// Slot ledger. ReserveSlot is the single atomic check-and-set for a
	// (seller, day, time) triple; ReleaseSlot is its idempotent inverse.
	ReserveSlot(ctx context.Context, sellerID, day, slot string) error
	ReleaseSlot(ctx context.Context, sellerID, day, slot string) error
}

type mongoSellerRepo struct {
	coll *mongo.Collection
}

// NewMongoSellerRepo constructs a new MongoDB SellerRepository.
func NewMongoSellerRepo() SellerRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoSellerRepo{
		coll: db.Collection("sellers"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure seller indexes", zap.Error(err))
	}
	return repo
}
