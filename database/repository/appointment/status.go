// File: database/repository/appointment/status.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotmart/models"
)

// MarkCancelled sets status to cancelled, only from the active state. Exactly
// one of two concurrent cancels can win the transition, which is what makes
// the subsequent slot release happen exactly once.
func (r *mongoAppointmentRepo) MarkCancelled(ctx context.Context, id string) error {
	filter := bson.M{
		"id":     id,
		"status": models.AppointmentActive,
	}
	update := bson.M{"$set": bson.M{"status": models.AppointmentCancelled}}
	return r.conditionalUpdate(ctx, filter, update, "cancel")
}

// MarkCompleted sets status to completed, only from the active state.
func (r *mongoAppointmentRepo) MarkCompleted(ctx context.Context, id string) error {
	filter := bson.M{
		"id":     id,
		"status": models.AppointmentActive,
	}
	update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted}}
	return r.conditionalUpdate(ctx, filter, update, "complete")
}

// MarkPaid sets the payment flag. Cancelled appointments are excluded so a
// late gateway callback cannot mark a released slot as paid.
func (r *mongoAppointmentRepo) MarkPaid(ctx context.Context, id string) error {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$ne": models.AppointmentCancelled},
	}
	update := bson.M{"$set": bson.M{"paid": true}}
	return r.conditionalUpdate(ctx, filter, update, "mark paid")
}

func (r *mongoAppointmentRepo) conditionalUpdate(ctx context.Context, filter, update bson.M, op string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to %s appointment: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoTransition
	}
	return nil
}
