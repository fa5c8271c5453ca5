package models

import "time"

// NotificationPayload is the body of a queued notification task.
type NotificationPayload struct {
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderPayload is queued at booking time and delivered the day before
// the reservation.
type ReminderPayload struct {
	UserID    string `json:"user_id"`
	BookingID string `json:"booking_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
