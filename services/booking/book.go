package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	reservationRepo "thalibook/database/repository/reservation"
	"thalibook/models"
	"thalibook/utils"
)

// Book runs the full commit pipeline: resolve restaurant, select a table,
// and insert the reservation under the store's transactional conflict
// re-check. A lost race triggers exactly one re-selection before giving up
// with ErrConflict. New reservations are created CONFIRMED; there is no
// confirmation step.
func (e *DefaultBookingEngine) Book(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error) {
	requested, err := req.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	restaurant, err := e.Restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, req.RestaurantID)
		}
		return nil, fmt.Errorf("resolving restaurant %s: %w", req.RestaurantID, err)
	}

	tables, err := e.Tables.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tables for restaurant %s: %w", restaurant.ID, err)
	}

	// The selection scan is read-only; only the final commit for the chosen
	// table is serialized. One retry absorbs a benign race.
	for attempt := 0; attempt < 2; attempt++ {
		table, err := e.selectTable(ctx, tables, req.Date, requested, req.PartySize)
		if err != nil {
			return nil, err
		}

		res := &models.Reservation{
			ID:           uuid.New().String(),
			TableID:      table.ID,
			RestaurantID: restaurant.ID,
			UserID:       userID,
			Date:         req.Date,
			Time:         requested,
			PartySize:    req.PartySize,
			Status:       models.StatusConfirmed,
			CreatedAt:    time.Now(),
		}

		from, to := ConflictWindow(requested)
		err = e.Reservations.CommitIfFree(ctx, res, from, to)
		if err == nil {
			e.notifyBooked(ctx, restaurant, res)
			return res, nil
		}
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			continue
		}
		return nil, fmt.Errorf("committing reservation: %w", err)
	}
	return nil, ErrConflict
}

// notifyBooked emits the confirmation events. Delivery is best-effort:
// failures are logged, never propagated to the booking caller.
func (e *DefaultBookingEngine) notifyBooked(ctx context.Context, restaurant *models.Restaurant, res *models.Reservation) {
	if e.Notifier == nil {
		return
	}
	logger := utils.GetLogger()

	customerMsg := fmt.Sprintf("Your booking is confirmed at %s on %s at %s", restaurant.Name, res.Date, res.Time)
	if err := e.Notifier.Notify(ctx, res.UserID, customerMsg); err != nil {
		logger.Warn("failed to notify customer", zap.String("booking", res.ID), zap.Error(err))
	}

	managerMsg := fmt.Sprintf("New booking at %s on %s at %s for a party of %d", restaurant.Name, res.Date, res.Time, res.PartySize)
	if err := e.Notifier.Notify(ctx, restaurant.ManagerID, managerMsg); err != nil {
		logger.Warn("failed to notify manager", zap.String("booking", res.ID), zap.Error(err))
	}

	if fireAt, ok := reminderTime(res); ok {
		payload := models.ReminderPayload{
			UserID:    res.UserID,
			BookingID: res.ID,
			Date:      res.Date,
			Time:      res.Time.String(),
		}
		if err := e.Notifier.ScheduleReminder(ctx, payload, fireAt); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("booking", res.ID), zap.Error(err))
		}
	}
}

// reminderTime computes the day-ahead reminder instant; ok is false when the
// reservation is too soon for a reminder.
func reminderTime(res *models.Reservation) (time.Time, bool) {
	day, err := time.Parse(models.DateLayout, res.Date)
	if err != nil {
		return time.Time{}, false
	}
	at := day.Add(time.Duration(res.Time) * time.Minute).Add(-24 * time.Hour)
	if at.Before(time.Now()) {
		return time.Time{}, false
	}
	return at, true
}
