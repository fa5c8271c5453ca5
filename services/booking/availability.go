package booking

import (
	"fmt"

	"thalibook/models"
)

// ToleranceMinutes is the half-width of the conflict window: a requested
// time matches a slot within +/-30 minutes, and a reservation at T blocks
// new requests anywhere in [T-30, T+30]. Requests are not forced onto the
// grid lattice, so the window is a range, not a discrete set: a booking at
// 12:00 must also block a request at 12:15.
const ToleranceMinutes = 30

// ConflictWindow returns the inclusive [from, to] range a time occupies for
// conflict purposes.
func ConflictWindow(t models.TimeOfDay) (models.TimeOfDay, models.TimeOfDay) {
	return t.Add(-ToleranceMinutes), t.Add(ToleranceMinutes)
}

// IsAvailable decides whether the requested time is satisfiable on the given
// table: the time must fall within tolerance of a grid slot, and no existing
// active reservation for the same table and date may sit inside the conflict
// window. A malformed persisted grid fails the request, never skips.
func IsAvailable(table models.Table, date string, requested models.TimeOfDay, existing []models.Reservation) (bool, error) {
	if err := table.ValidateSlotGrid(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}

	withinGrid := false
	for _, slot := range table.SlotGrid {
		if models.MinutesApart(slot, requested) <= ToleranceMinutes {
			withinGrid = true
			break
		}
	}
	if !withinGrid {
		return false, nil
	}

	for _, res := range existing {
		if res.TableID != table.ID || res.Date != date || !res.Active() {
			continue
		}
		if models.MinutesApart(res.Time, requested) <= ToleranceMinutes {
			return false, nil
		}
	}
	return true, nil
}

// FreeSlots returns the grid slots of a table not blocked by an active
// reservation's conflict window on the given date.
func FreeSlots(table models.Table, date string, existing []models.Reservation) ([]models.TimeOfDay, error) {
	if err := table.ValidateSlotGrid(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}

	free := make([]models.TimeOfDay, 0, len(table.SlotGrid))
	for _, slot := range table.SlotGrid {
		blocked := false
		for _, res := range existing {
			if res.TableID != table.ID || res.Date != date || !res.Active() {
				continue
			}
			if models.MinutesApart(res.Time, slot) <= ToleranceMinutes {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, slot)
		}
	}
	return free, nil
}
