package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"thalibook/config"
	"thalibook/models"
	"thalibook/services/booking"
	"thalibook/utils"
)

const (
	cachePrefix = "restaurant:"
	cacheTTL    = 10 * time.Minute
)

func (s *DefaultDirectoryService) Create(ctx context.Context, managerID string, r *models.Restaurant) (*models.Restaurant, error) {
	r.ID = uuid.New().String()
	r.ManagerID = managerID
	r.Approved = false
	r.CreatedAt = time.Now()

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInvalidRequest, err)
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		msg := fmt.Sprintf("A new restaurant %q was submitted for approval by manager %s", r.Name, managerID)
		if err := s.Notifier.Notify(ctx, config.AppConfig.AdminUserID, msg); err != nil {
			utils.GetLogger().Warn("failed to notify admin of new restaurant",
				zap.String("restaurant", r.ID), zap.Error(err))
		}
	}
	return r, nil
}

func (s *DefaultDirectoryService) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: restaurant %s", booking.ErrNotFound, id)
		}
		return nil, err
	}
	s.cacheSet(ctx, r)
	return r, nil
}

func (s *DefaultDirectoryService) Search(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	return s.Repo.ListApproved(ctx, filter)
}

func (s *DefaultDirectoryService) ListPending(ctx context.Context, actor models.Actor) ([]models.Restaurant, error) {
	if actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may list pending restaurants", booking.ErrForbidden)
	}
	return s.Repo.ListPending(ctx)
}

// Approve flips the approval flag and seeds the table inventory: approval is
// one of the two writes that (re)generate slot grids.
func (s *DefaultDirectoryService) Approve(ctx context.Context, id string, actor models.Actor) error {
	if actor.Role != models.RoleAdmin {
		return fmt.Errorf("%w: only admins may approve restaurants", booking.ErrForbidden)
	}
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.SetApproved(ctx, id, true); err != nil {
		return err
	}
	if err := s.regenerateTables(ctx, r); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, id)

	if s.Notifier != nil {
		msg := fmt.Sprintf("Your restaurant %q has been approved and is now taking reservations", r.Name)
		if err := s.Notifier.Notify(ctx, r.ManagerID, msg); err != nil {
			utils.GetLogger().Warn("failed to notify manager of approval",
				zap.String("restaurant", id), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultDirectoryService) UpdateHours(ctx context.Context, id string, hours models.WeekHours, actor models.Actor) error {
	r, err := s.authorizeOwner(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := hours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", booking.ErrInvalidRequest, err)
	}
	if err := s.Repo.UpdateHours(ctx, id, hours); err != nil {
		return err
	}
	r.Hours = hours
	if err := s.regenerateTables(ctx, r); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func (s *DefaultDirectoryService) UpdateTables(ctx context.Context, id string, tables map[int]int, actor models.Actor) error {
	r, err := s.authorizeOwner(ctx, id, actor)
	if err != nil {
		return err
	}
	for size, count := range tables {
		if size <= 0 || count <= 0 {
			return fmt.Errorf("%w: table sizes and counts must be positive", booking.ErrInvalidRequest)
		}
	}
	if err := s.Repo.UpdateTables(ctx, id, tables); err != nil {
		return err
	}
	r.Tables = tables
	if err := s.regenerateTables(ctx, r); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func (s *DefaultDirectoryService) ListTables(ctx context.Context, restaurantID string) ([]models.Table, error) {
	return s.Tables.ListByRestaurant(ctx, restaurantID)
}

func (s *DefaultDirectoryService) authorizeOwner(ctx context.Context, id string, actor models.Actor) (*models.Restaurant, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleAdmin {
		return r, nil
	}
	if actor.Role != models.RoleManager || r.ManagerID != actor.ID {
		return nil, fmt.Errorf("%w: only the owning manager may modify this restaurant", booking.ErrForbidden)
	}
	return r, nil
}

func (s *DefaultDirectoryService) cacheGet(ctx context.Context, id string) *models.Restaurant {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, cachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var r models.Restaurant
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil
	}
	return &r
}

func (s *DefaultDirectoryService) cacheSet(ctx context.Context, r *models.Restaurant) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cachePrefix+r.ID, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("restaurant cache set failed", zap.String("restaurant", r.ID), zap.Error(err))
	}
}

func (s *DefaultDirectoryService) cacheInvalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cachePrefix+id).Err(); err != nil {
		utils.GetLogger().Debug("restaurant cache invalidate failed", zap.String("restaurant", id), zap.Error(err))
	}
}
