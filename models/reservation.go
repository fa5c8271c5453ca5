package models

import (
	"fmt"
	"time"
)

// Reservation statuses. CANCELLED is terminal: there is no path back to
// PENDING or CONFIRMED, and cancelled rows are kept for audit.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// ActiveStatuses are the statuses that occupy a slot for conflict checks.
var ActiveStatuses = []string{StatusConfirmed, StatusPending}

// Reservation is a committed hold on a table for a date and start time.
// It references its table and restaurant by id only.
type Reservation struct {
	ID           string    `bson:"id" json:"bookingId"`
	TableID      string    `bson:"table_id" json:"tableId"`
	RestaurantID string    `bson:"restaurant_id" json:"restaurantId"`
	UserID       string    `bson:"user_id" json:"userId"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Time         TimeOfDay `bson:"time" json:"time"`
	PartySize    int       `bson:"party_size" json:"partySize"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// Active reports whether the reservation still occupies its slot.
func (r *Reservation) Active() bool {
	return r.Status == StatusConfirmed || r.Status == StatusPending
}

// BookingRequest is the shape consumed from the HTTP layer.
type BookingRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PartySize    int    `json:"partySize" binding:"required,gt=0"`
}

// Validate parses and range-checks the request fields.
func (br *BookingRequest) Validate() (TimeOfDay, error) {
	if _, err := time.Parse(DateLayout, br.Date); err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", br.Date, err)
	}
	t, err := ParseTimeOfDay(br.Time)
	if err != nil {
		return 0, err
	}
	if br.PartySize <= 0 {
		return 0, fmt.Errorf("party size must be positive, got %d", br.PartySize)
	}
	return t, nil
}
