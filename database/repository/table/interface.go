// File: database/repository/table/interface.go
package tableRepo

import (
	"context"

	"thalibook/database"
	"thalibook/models"
	"thalibook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TableRepository stores the derived table inventory. Grids are written by
// the regenerate-on-write step and read by the booking engine.
type TableRepository interface {
	// ReplaceForRestaurant swaps the restaurant's full table set for the
	// freshly generated one.
	ReplaceForRestaurant(ctx context.Context, restaurantID string, tables []models.Table) error
	GetByID(ctx context.Context, id string) (*models.Table, error)
	// ListByRestaurant returns tables in ascending id order, the stable
	// iteration order the table selector depends on.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Table, error)
}

type mongoTableRepo struct {
	coll *mongo.Collection
}

// NewMongoTableRepo constructs a new MongoDB TableRepository.
func NewMongoTableRepo() TableRepository {
	repo := &mongoTableRepo{
		coll: database.DB().Collection("tables"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to ensure table indexes", zap.Error(err))
	}
	return repo
}
