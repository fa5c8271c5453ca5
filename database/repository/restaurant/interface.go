// File: database/repository/restaurant/interface.go
package restaurantRepo

import (
	"context"

	"thalibook/database"
	"thalibook/models"
	"thalibook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RestaurantRepository is the restaurant directory's system of record.
type RestaurantRepository interface {
	Create(ctx context.Context, r *models.Restaurant) error
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	ListApproved(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)
	ListPending(ctx context.Context) ([]models.Restaurant, error)
	ListByManager(ctx context.Context, managerID string) ([]models.Restaurant, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	UpdateHours(ctx context.Context, id string, hours models.WeekHours) error
	UpdateTables(ctx context.Context, id string, tables map[int]int) error
}

type mongoRestaurantRepo struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepo constructs a new MongoDB RestaurantRepository.
func NewMongoRestaurantRepo() RestaurantRepository {
	repo := &mongoRestaurantRepo{
		coll: database.DB().Collection("restaurants"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to ensure restaurant indexes", zap.Error(err))
	}
	return repo
}
