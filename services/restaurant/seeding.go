package restaurant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"thalibook/models"
	"thalibook/services/booking"
)

// regenerateTables rebuilds the restaurant's full table inventory from its
// authored hours and size->count map. Grids are derived-but-cached state:
// this is the single regenerate-on-write step, so readers never re-derive
// them inline.
func (s *DefaultDirectoryService) regenerateTables(ctx context.Context, r *models.Restaurant) error {
	hours, err := booking.SeedHours(r.Hours)
	if err != nil {
		return fmt.Errorf("seeding tables for restaurant %s: %w", r.ID, err)
	}

	var tables []models.Table
	for _, size := range models.SortedSizes(r.Tables) {
		grid := booking.GridForDay(hours, size)
		for i := 0; i < r.Tables[size]; i++ {
			tables = append(tables, models.Table{
				ID:           uuid.New().String(),
				RestaurantID: r.ID,
				Size:         size,
				SlotGrid:     grid,
			})
		}
	}
	return s.Tables.ReplaceForRestaurant(ctx, r.ID, tables)
}
