// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"

	"thalibook/database"
	"thalibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReservationRepo) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	filter := bson.M{"id": id, "status": fromStatus}
	update := bson.M{"$set": bson.M{"status": toStatus}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

func (r *mongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoReservationRepo) ListByRestaurantAndDate(ctx context.Context, restaurantID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"restaurant_id": restaurantID, "date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for restaurant %s on %s: %w", restaurantID, date, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoReservationRepo) ListByRestaurants(ctx context.Context, restaurantIDs []string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"restaurant_id": bson.M{"$in": restaurantIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoReservationRepo) CountByRestaurantAndDate(ctx context.Context, restaurantID, date string, statuses []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	filter := bson.M{"restaurant_id": restaurantID, "date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting reservations for restaurant %s on %s: %w", restaurantID, date, err)
	}
	return n, nil
}
