package models

import (
	"fmt"
	"time"
)

// Restaurant is a bookable venue. Hours and table counts are authored by the
// manager; the per-table slot grids are derived from them (see Table).
type Restaurant struct {
	ID          string      `bson:"id" json:"id"`
	ManagerID   string      `bson:"manager_id" json:"managerId"`
	Name        string      `bson:"name" json:"name"`
	Address     string      `bson:"address" json:"address"`
	City        string      `bson:"city" json:"city"`
	State       string      `bson:"state" json:"state"`
	ZipCode     string      `bson:"zip_code" json:"zipCode"`
	Phone       string      `bson:"phone" json:"phone"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Cuisine     string      `bson:"cuisine" json:"cuisine"`
	CostRating  int         `bson:"cost_rating" json:"costRating"`
	Hours       WeekHours   `bson:"hours" json:"hours"`
	Tables      map[int]int `bson:"tables" json:"tables"` // size -> count
	Approved    bool        `bson:"approved" json:"approved"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
}

// Validate checks the authored fields that the booking engine depends on.
func (r *Restaurant) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if len(r.Hours) == 0 {
		return fmt.Errorf("restaurant hours are required")
	}
	if err := r.Hours.Validate(); err != nil {
		return fmt.Errorf("restaurant hours: %w", err)
	}
	if len(r.Tables) == 0 {
		return fmt.Errorf("restaurant needs at least one table size")
	}
	for size, count := range r.Tables {
		if size <= 0 {
			return fmt.Errorf("table size must be positive, got %d", size)
		}
		if count <= 0 {
			return fmt.Errorf("table count for size %d must be positive, got %d", size, count)
		}
	}
	return nil
}

// RestaurantFilter narrows approved-restaurant listings.
type RestaurantFilter struct {
	City    string
	Cuisine string
	Name    string
}
