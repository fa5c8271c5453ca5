// File: database/repository/reservation/conflicts.go
package reservationRepo

import (
	"context"
	"fmt"

	"thalibook/database"
	"thalibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FindConflicts returns the reservations for a table and date whose time
// falls in the inclusive [from, to] window and whose status is in statuses.
func (r *mongoReservationRepo) FindConflicts(ctx context.Context, tableID, date string, from, to models.TimeOfDay, statuses []string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	cursor, err := r.coll.Find(ctx, conflictFilter(tableID, date, from, to, statuses))
	if err != nil {
		return nil, fmt.Errorf("error querying conflicts for table %s on %s: %w", tableID, date, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func conflictFilter(tableID, date string, from, to models.TimeOfDay, statuses []string) bson.M {
	return bson.M{
		"table_id": tableID,
		"date":     date,
		"time":     bson.M{"$gte": from, "$lte": to},
		"status":   bson.M{"$in": statuses},
	}
}
