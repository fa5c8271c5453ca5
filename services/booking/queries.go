package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"thalibook/models"
)

// Availability returns, for each table seating at least partySize, the grid
// slots not blocked by an active reservation's conflict window on the date.
func (e *DefaultBookingEngine) Availability(ctx context.Context, restaurantID, date string, partySize int) ([]models.TableAvailability, error) {
	if _, err := e.Restaurants.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, restaurantID)
		}
		return nil, fmt.Errorf("resolving restaurant %s: %w", restaurantID, err)
	}

	tables, err := e.Tables.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listing tables for restaurant %s: %w", restaurantID, err)
	}
	existing, err := e.Reservations.ListByRestaurantAndDate(ctx, restaurantID, date)
	if err != nil {
		return nil, fmt.Errorf("listing reservations for restaurant %s on %s: %w", restaurantID, date, err)
	}

	out := make([]models.TableAvailability, 0, len(tables))
	for _, table := range tables {
		if table.Size < partySize {
			continue
		}
		free, err := FreeSlots(table, date, existing)
		if err != nil {
			return nil, err
		}
		out = append(out, models.TableAvailability{
			TableID:   table.ID,
			Size:      table.Size,
			FreeSlots: free,
		})
	}
	return out, nil
}

func (e *DefaultBookingEngine) ListForUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return e.Reservations.ListByUser(ctx, userID)
}

// ListForManager returns the bookings across every restaurant the manager owns.
func (e *DefaultBookingEngine) ListForManager(ctx context.Context, managerID string) ([]models.Reservation, error) {
	restaurants, err := e.Restaurants.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants for manager %s: %w", managerID, err)
	}
	if len(restaurants) == 0 {
		return []models.Reservation{}, nil
	}
	ids := make([]string, len(restaurants))
	for i, r := range restaurants {
		ids[i] = r.ID
	}
	return e.Reservations.ListByRestaurants(ctx, ids)
}

func (e *DefaultBookingEngine) CountForDate(ctx context.Context, restaurantID, date string, statuses []string) (int64, error) {
	return e.Reservations.CountByRestaurantAndDate(ctx, restaurantID, date, statuses)
}
