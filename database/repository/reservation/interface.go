// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"thalibook/database"
	"thalibook/models"
	"thalibook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when a commit loses the race for a slot: either
// the in-transaction conflict re-check found an active reservation, or the
// unique index rejected the insert.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNoMatch is returned by UpdateStatus when no reservation matched the
// expected (id, status) pair.
var ErrNoMatch = errors.New("no reservation matched id and expected status")

// ReservationRepository is the system-of-record for committed reservations.
type ReservationRepository interface {
	// CommitIfFree re-checks the conflict window for active reservations
	// and inserts the reservation as one atomic unit.
	CommitIfFree(ctx context.Context, res *models.Reservation, from, to models.TimeOfDay) error
	FindByID(ctx context.Context, id string) (*models.Reservation, error)
	FindConflicts(ctx context.Context, tableID, date string, from, to models.TimeOfDay, statuses []string) ([]models.Reservation, error)
	// UpdateStatus performs a compare-and-set on the status field.
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListByRestaurantAndDate(ctx context.Context, restaurantID, date string) ([]models.Reservation, error)
	ListByRestaurants(ctx context.Context, restaurantIDs []string) ([]models.Reservation, error)
	CountByRestaurantAndDate(ctx context.Context, restaurantID, date string, statuses []string) (int64, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository
// and ensures its indexes, including the unique active-slot arbiter.
func NewMongoReservationRepo() ReservationRepository {
	repo := &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to ensure reservation indexes", zap.Error(err))
	}
	return repo
}
