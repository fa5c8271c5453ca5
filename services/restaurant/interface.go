package restaurant

import (
	"context"

	"github.com/go-redis/redis/v8"

	restaurantRepo "thalibook/database/repository/restaurant"
	tableRepo "thalibook/database/repository/table"
	"thalibook/models"
	"thalibook/services/notification"
)

// DirectoryService manages the restaurant directory and owns the
// regenerate-on-write step for derived slot grids.
type DirectoryService interface {
	// Create registers an unapproved restaurant for the manager and
	// notifies the admin for approval.
	Create(ctx context.Context, managerID string, r *models.Restaurant) (*models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Search(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)
	ListPending(ctx context.Context, actor models.Actor) ([]models.Restaurant, error)
	// Approve marks the restaurant bookable and seeds its table inventory.
	Approve(ctx context.Context, id string, actor models.Actor) error
	// UpdateHours and UpdateTables regenerate every slot grid for the
	// restaurant; grids are derived state and never authored directly.
	UpdateHours(ctx context.Context, id string, hours models.WeekHours, actor models.Actor) error
	UpdateTables(ctx context.Context, id string, tables map[int]int, actor models.Actor) error
	ListTables(ctx context.Context, restaurantID string) ([]models.Table, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Repo     restaurantRepo.RestaurantRepository
	Tables   tableRepo.TableRepository
	Cache    *redis.Client // nil disables caching
	Notifier notification.Sink
}
