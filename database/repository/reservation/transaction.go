// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"

	"thalibook/database"
	"thalibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CommitIfFree performs the conflict re-check and the insert as one atomic
// unit: both run inside a single Mongo transaction, so two concurrent
// commits for the same (table, date, time window) cannot both pass the
// check. The partial unique index on (table_id, date, time) for active
// statuses backs up the exact-time case; a duplicate-key error from the
// insert maps to ErrSlotTaken like a lost re-check does.
func (r *mongoReservationRepo) CommitIfFree(ctx context.Context, res *models.Reservation, from, to models.TimeOfDay) error {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		cursor, err := r.coll.Find(sc, conflictFilter(res.TableID, res.Date, from, to, models.ActiveStatuses))
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		var conflicts []models.Reservation
		if err := cursor.All(sc, &conflicts); err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, res); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
