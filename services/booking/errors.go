package booking

import "errors"

// Error kinds surfaced by the booking engine. The HTTP layer maps these to
// status codes; none of them should crash the process.
var (
	// ErrNotFound means the restaurant, table, or reservation does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoAvailability means no table satisfies the requested time and
	// party size. The caller may retry with different parameters.
	ErrNoAvailability = errors.New("no available table found for the requested time and size")
	// ErrConflict means the atomic commit detected a race: another request
	// won the slot between selection and insert, and the single internal
	// retry also lost.
	ErrConflict = errors.New("reservation conflict")
	// ErrForbidden means the actor lacks rights for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyCancelled guards the terminal state: cancelling twice is an
	// error, never a silent no-op.
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	// ErrDataIntegrity means persisted slot-grid or hours data is malformed.
	// Requests fail closed; the engine never guesses a time.
	ErrDataIntegrity = errors.New("data integrity error")
	// ErrInvalidRequest covers unparseable dates, times, or party sizes.
	ErrInvalidRequest = errors.New("invalid booking request")
)
