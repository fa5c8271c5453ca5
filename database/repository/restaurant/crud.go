// File: database/repository/restaurant/crud.go
package restaurantRepo

import (
	"context"
	"fmt"

	"thalibook/database"
	"thalibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRestaurantRepo) Create(ctx context.Context, restaurant *models.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, restaurant); err != nil {
		return fmt.Errorf("error creating restaurant: %w", err)
	}
	return nil
}

func (r *mongoRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	var restaurant models.Restaurant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *mongoRestaurantRepo) ListApproved(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	query := bson.M{"approved": true}
	if filter.City != "" {
		query["city"] = caseInsensitive(filter.City)
	}
	if filter.Cuisine != "" {
		query["cuisine"] = caseInsensitive(filter.Cuisine)
	}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: filter.Name, Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing approved restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Restaurant
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRestaurantRepo) ListPending(ctx context.Context) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"approved": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing pending restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Restaurant
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRestaurantRepo) ListByManager(ctx context.Context, managerID string) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"manager_id": managerID})
	if err != nil {
		return nil, fmt.Errorf("error listing restaurants for manager %s: %w", managerID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Restaurant
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRestaurantRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setField(ctx, id, "approved", approved)
}

func (r *mongoRestaurantRepo) UpdateHours(ctx context.Context, id string, hours models.WeekHours) error {
	return r.setField(ctx, id, "hours", hours)
}

func (r *mongoRestaurantRepo) UpdateTables(ctx context.Context, id string, tables map[int]int) error {
	return r.setField(ctx, id, "tables", tables)
}

func (r *mongoRestaurantRepo) setField(ctx context.Context, id, field string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, database.StoreTimeout())
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("error updating restaurant %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("restaurant %s not found", id)
	}
	return nil
}

func caseInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + s + "$", Options: "i"}
}
