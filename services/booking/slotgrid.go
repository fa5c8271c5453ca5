package booking

import (
	"fmt"

	"thalibook/config"
	"thalibook/models"
)

// GenerateSlotGrid derives the ordered list of valid reservation start times
// for one table: starting at open, stepping by the turn interval, keeping
// every time t with t+interval <= close. Pure and deterministic; returns nil
// when open >= close or the interval is not positive.
func GenerateSlotGrid(open, close models.TimeOfDay, intervalMinutes int) []models.TimeOfDay {
	if intervalMinutes <= 0 || open >= close {
		return nil
	}
	var grid []models.TimeOfDay
	for t := open; t.Add(intervalMinutes) <= close; t = t.Add(intervalMinutes) {
		grid = append(grid, t)
	}
	return grid
}

// GridForDay builds the grid for a table size on a given day's hours,
// using the configured size -> turn-interval mapping.
func GridForDay(hours models.DayHours, size int) []models.TimeOfDay {
	return GenerateSlotGrid(hours.Open, hours.Close, config.TurnIntervalFor(size))
}

// SeedHours resolves the hours window used when seeding slot grids. The grid
// is day-independent derived state, so it is generated from the Monday
// window, falling back to the first open day of the week.
func SeedHours(hours models.WeekHours) (models.DayHours, error) {
	if dh, open, err := hours.ForDay("Mon"); err != nil {
		return models.DayHours{}, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	} else if open {
		return dh, nil
	}
	for _, day := range []string{"Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		dh, open, err := hours.ForDay(day)
		if err != nil {
			return models.DayHours{}, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
		}
		if open {
			return dh, nil
		}
	}
	return models.DayHours{}, fmt.Errorf("%w: no open day in hours", ErrDataIntegrity)
}
