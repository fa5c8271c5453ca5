// File: database/repository/table/crud.go
package tableRepo

import (
	"context"
	"fmt"

	"thalibook/database"
	"thalibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTableRepo) ReplaceForRestaurant(ctx context.Context, restaurantID string, tables []models.Table) error {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"restaurant_id": restaurantID}); err != nil {
		return fmt.Errorf("error clearing tables for restaurant %s: %w", restaurantID, err)
	}
	if len(tables) == 0 {
		return nil
	}

	docs := make([]interface{}, len(tables))
	for i, t := range tables {
		docs[i] = t
	}
	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("error inserting tables for restaurant %s: %w", restaurantID, err)
	}
	return nil
}

func (r *mongoTableRepo) GetByID(ctx context.Context, id string) (*models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	var table models.Table
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *mongoTableRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing tables for restaurant %s: %w", restaurantID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Table
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
