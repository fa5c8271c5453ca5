package booking

import (
	"context"
	"fmt"
	"sort"

	"thalibook/models"
)

// selectTable iterates the restaurant's tables in ascending id order,
// restricted to size >= partySize, and returns the first one the
// availability check accepts. First fit wins: a party of 2 may take a table
// for 6 if it comes first in iteration order. Returns ErrNoAvailability when
// no table satisfies size and availability.
func (e *DefaultBookingEngine) selectTable(ctx context.Context, tables []models.Table, date string, requested models.TimeOfDay, partySize int) (*models.Table, error) {
	sort.SliceStable(tables, func(i, j int) bool { return tables[i].ID < tables[j].ID })

	for i := range tables {
		table := tables[i]
		if table.Size < partySize {
			continue
		}
		from, to := ConflictWindow(requested)
		conflicts, err := e.Reservations.FindConflicts(ctx, table.ID, date, from, to, models.ActiveStatuses)
		if err != nil {
			return nil, fmt.Errorf("conflict lookup for table %s: %w", table.ID, err)
		}
		ok, err := IsAvailable(table, date, requested, conflicts)
		if err != nil {
			return nil, err
		}
		if ok {
			return &table, nil
		}
	}
	return nil, ErrNoAvailability
}
