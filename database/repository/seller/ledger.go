// File: database/repository/seller/ledger.go
package sellerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ReserveSlot marks (day, slot) booked for the seller in a single conditional
// update. The filter requires the seller to be available and the slot to be
// absent from the day's booked set, so two concurrent reservations for the
// same triple cannot both match: MongoDB serializes writes per document.
// Never split this into a read followed by a write.
func (r *mongoSellerRepo) ReserveSlot(ctx context.Context, sellerID, day, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := "slots_booked." + day
	filter := bson.M{
		"id":        sellerID,
		"available": true,
		field:       bson.M{"$ne": slot},
	}
	update := bson.M{
		"$addToSet": bson.M{field: slot},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot %s %s for seller %s: %w", day, slot, sellerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotNotReserved
	}
	return nil
}

// ReleaseSlot removes (day, slot) from the seller's booked set. Pulling a
// slot that is not present is a no-op, not an error, so release is idempotent.
func (r *mongoSellerRepo) ReleaseSlot(ctx context.Context, sellerID, day, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := "slots_booked." + day
	update := bson.M{
		"$pull": bson.M{field: slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": sellerID}, update); err != nil {
		return fmt.Errorf("failed to release slot %s %s for seller %s: %w", day, slot, sellerID, err)
	}
	return nil
}
