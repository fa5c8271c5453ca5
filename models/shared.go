package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for reservation dates.
const DateLayout = "2006-01-02"

// TimeOfDay is a clock time expressed as minutes from midnight
// (e.g., 660 for 11:00 AM).
type TimeOfDay int

// ParseTimeOfDay parses a strict "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add returns the time shifted by the given number of minutes.
func (t TimeOfDay) Add(mins int) TimeOfDay {
	return t + TimeOfDay(mins)
}

// Valid reports whether the value falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < 24*60
}

// MinutesApart returns the absolute difference between two times in minutes.
func MinutesApart(a, b TimeOfDay) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

// DayHours is a single day's parsed open/close window.
type DayHours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// WeekHours maps short day names ("Mon".."Sun") to "HH:MM-HH:MM" strings.
// A missing day means the restaurant is closed that day.
type WeekHours map[string]string

var dayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ForDay parses the hours for the given short day name. The second return
// is false when the restaurant is closed that day. A present but malformed
// entry is a data-integrity error.
func (h WeekHours) ForDay(day string) (DayHours, bool, error) {
	raw, ok := h[day]
	if !ok || raw == "" {
		return DayHours{}, false, nil
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return DayHours{}, false, fmt.Errorf("malformed hours %q for %s: want HH:MM-HH:MM", raw, day)
	}
	open, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return DayHours{}, false, fmt.Errorf("malformed open time for %s: %w", day, err)
	}
	close, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return DayHours{}, false, fmt.Errorf("malformed close time for %s: %w", day, err)
	}
	if open >= close {
		return DayHours{}, false, fmt.Errorf("hours %q for %s: open must precede close", raw, day)
	}
	return DayHours{Open: open, Close: close}, true, nil
}

// Validate checks every entry parses and no unknown day keys are present.
func (h WeekHours) Validate() error {
	known := make(map[string]bool, len(dayOrder))
	for _, d := range dayOrder {
		known[d] = true
	}
	for day := range h {
		if !known[day] {
			return fmt.Errorf("unknown day key %q in hours", day)
		}
		if _, _, err := h.ForDay(day); err != nil {
			return err
		}
	}
	return nil
}

// DayKeyFor maps a reservation date to its short day name.
func DayKeyFor(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Weekday().String()[:3], nil
}

// Actor identifies the authenticated caller of a core operation. Core code
// takes it as an explicit parameter; there is no ambient security context.
type Actor struct {
	ID   string
	Role string
}

// Roles recognized by the booking engine.
const (
	RoleCustomer = "CUSTOMER"
	RoleManager  = "RESTAURANT_MANAGER"
	RoleAdmin    = "ADMIN"
)

// SortedSizes returns the table sizes of a size->count map in ascending order.
func SortedSizes(tables map[int]int) []int {
	sizes := make([]int, 0, len(tables))
	for size := range tables {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}
