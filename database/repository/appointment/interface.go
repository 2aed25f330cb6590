// File: database/repository/appointment/interface.go
package appointmentRepo

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

// ErrNotFound is returned when no appointment matches the given identifier.
var ErrNotFound = errors.New("appointment not found")

// ErrNoTransition is returned by the conditional status updates when the
// appointment exists but its current state does not admit the transition
// (e.g. completing a cancelled appointment). Callers re-read the record to
// report the precise reason.
var ErrNoTransition = errors.New("appointment state does not admit transition")

type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]models.Appointment, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	SetCheckoutSession(ctx context.Context, id, sessionID string) error

	// Status transitions are single-field conditional updates; the filter
	// carries the state precondition so concurrent writers cannot produce an
	// invalid combination.
	MarkCancelled(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure appointment indexes", zap.Error(err))
	}
	return repo
}
