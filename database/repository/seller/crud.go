// File: database/repository/seller/crud.go
package sellerRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotmart/models"
)

func (r *mongoSellerRepo) Create(ctx context.Context, seller *models.Seller) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	now := time.Now()
	seller.CreatedAt = now
	seller.UpdatedAt = now
	if seller.SlotsBooked == nil {
		seller.SlotsBooked = map[string][]string{}
	}

	if _, err := r.coll.InsertOne(ctx, seller); err != nil {
		return fmt.Errorf("failed to insert seller: %w", err)
	}
	return nil
}

func (r *mongoSellerRepo) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var seller models.Seller
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seller %s: %w", id, err)
	}
	return &seller, nil
}

func (r *mongoSellerRepo) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var seller models.Seller
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seller by email: %w", err)
	}
	return &seller, nil
}

func (r *mongoSellerRepo) List(ctx context.Context) ([]models.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	defer cursor.Close(ctx)

	var sellers []models.Seller
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("error decoding sellers: %w", err)
	}
	return sellers, nil
}

// UpdateProfile applies the seller-editable listing fields. The fee applies
// to future bookings only; booked appointments keep their snapshotted amount.
func (r *mongoSellerRepo) UpdateProfile(ctx context.Context, id string, update models.SellerProfileUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.About != "" {
		set["about"] = update.About
	}
	if update.Fee != nil {
		set["fee"] = *update.Fee
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update profile for seller %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSellerRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"available": available, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for seller %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
