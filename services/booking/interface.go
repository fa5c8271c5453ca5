package booking

import (
	"context"

	reservationRepo "thalibook/database/repository/reservation"
	restaurantRepo "thalibook/database/repository/restaurant"
	tableRepo "thalibook/database/repository/table"
	"thalibook/models"
	"thalibook/services/notification"
)

// BookingService is the availability and booking-conflict engine.
type BookingService interface {
	// Book resolves the restaurant, selects the first table that satisfies
	// the request, and atomically commits a CONFIRMED reservation for it.
	Book(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error)
	// Cancel transitions an active reservation to CANCELLED on behalf of an
	// explicit actor. Customers may cancel only their own bookings;
	// managers may not cancel at all.
	Cancel(ctx context.Context, bookingID string, actor models.Actor) error
	// Availability reports each sufficiently sized table's free slots for a
	// restaurant and date.
	Availability(ctx context.Context, restaurantID, date string, partySize int) ([]models.TableAvailability, error)
	ListForUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListForManager(ctx context.Context, managerID string) ([]models.Reservation, error)
	CountForDate(ctx context.Context, restaurantID, date string, statuses []string) (int64, error)
}

// DefaultBookingEngine implements BookingService.
type DefaultBookingEngine struct {
	Restaurants  restaurantRepo.RestaurantRepository
	Tables       tableRepo.TableRepository
	Reservations reservationRepo.ReservationRepository
	Notifier     notification.Sink
}
