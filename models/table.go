package models

import "fmt"

// Table is a physical table belonging to a restaurant. SlotGrid is derived
// state: the ascending list of valid reservation start times, regenerated
// whenever the restaurant's hours or table counts change. It is validated at
// write time so readers never have to parse defensively.
type Table struct {
	ID           string      `bson:"id" json:"id"`
	RestaurantID string      `bson:"restaurant_id" json:"restaurantId"`
	Size         int         `bson:"size" json:"size"`
	SlotGrid     []TimeOfDay `bson:"slot_grid" json:"slotGrid"`
}

// TableAvailability is the per-table view of free start times returned by
// the availability query.
type TableAvailability struct {
	TableID   string      `json:"tableId"`
	Size      int         `json:"size"`
	FreeSlots []TimeOfDay `json:"freeSlots"`
}

// ValidateSlotGrid checks the persisted grid is well formed: every entry a
// valid time of day, strictly ascending. A violation is a data-integrity
// fault; callers must fail the request rather than guess.
func (t *Table) ValidateSlotGrid() error {
	for i, slot := range t.SlotGrid {
		if !slot.Valid() {
			return fmt.Errorf("table %s: slot %d (%d) out of range", t.ID, i, int(slot))
		}
		if i > 0 && slot <= t.SlotGrid[i-1] {
			return fmt.Errorf("table %s: slot grid not ascending at index %d", t.ID, i)
		}
	}
	return nil
}
