package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	reservationRepo "thalibook/database/repository/reservation"
	"thalibook/models"
	"thalibook/utils"
)

// Cancel transitions a reservation to CANCELLED. The actor is an explicit
// parameter: a customer may cancel only their own booking, and a manager may
// not cancel at all (business rule). CANCELLED is terminal; the row is kept
// for audit and a second cancel fails.
func (e *DefaultBookingEngine) Cancel(ctx context.Context, bookingID string, actor models.Actor) error {
	res, err := e.Reservations.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		return fmt.Errorf("resolving booking %s: %w", bookingID, err)
	}

	if actor.Role == models.RoleManager {
		return fmt.Errorf("%w: managers are not allowed to cancel bookings", ErrForbidden)
	}
	if actor.Role == models.RoleCustomer && res.UserID != actor.ID {
		return fmt.Errorf("%w: you can only cancel your own bookings", ErrForbidden)
	}
	if res.Status == models.StatusCancelled {
		return ErrAlreadyCancelled
	}

	// Compare-and-set on the loaded status closes the race with a
	// concurrent cancel.
	if err := e.Reservations.UpdateStatus(ctx, res.ID, res.Status, models.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrNoMatch) {
			return ErrAlreadyCancelled
		}
		return fmt.Errorf("cancelling booking %s: %w", bookingID, err)
	}

	e.notifyCancelled(ctx, res)
	return nil
}

func (e *DefaultBookingEngine) notifyCancelled(ctx context.Context, res *models.Reservation) {
	if e.Notifier == nil {
		return
	}
	restaurant, err := e.Restaurants.GetByID(ctx, res.RestaurantID)
	if err != nil {
		utils.GetLogger().Warn("cancel notification skipped: restaurant lookup failed",
			zap.String("booking", res.ID), zap.Error(err))
		return
	}
	msg := fmt.Sprintf("Booking at %s on %s at %s was cancelled", restaurant.Name, res.Date, res.Time)
	if err := e.Notifier.Notify(ctx, restaurant.ManagerID, msg); err != nil {
		utils.GetLogger().Warn("failed to notify manager of cancellation",
			zap.String("booking", res.ID), zap.Error(err))
	}
}
