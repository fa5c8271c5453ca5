package restaurant

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"thalibook/models"
)

type mockRestaurantRepo struct {
	restaurants map[string]*models.Restaurant
}

func newMockRestaurantRepo(restaurants ...*models.Restaurant) *mockRestaurantRepo {
	m := &mockRestaurantRepo{restaurants: make(map[string]*models.Restaurant)}
	for _, r := range restaurants {
		m.restaurants[r.ID] = r
	}
	return m
}

func (m *mockRestaurantRepo) Create(ctx context.Context, r *models.Restaurant) error {
	m.restaurants[r.ID] = r
	return nil
}

func (m *mockRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	r, ok := m.restaurants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *r
	return &cp, nil
}

func (m *mockRestaurantRepo) ListApproved(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range m.restaurants {
		if r.Approved {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRestaurantRepo) ListPending(ctx context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range m.restaurants {
		if !r.Approved {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRestaurantRepo) ListByManager(ctx context.Context, managerID string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range m.restaurants {
		if r.ManagerID == managerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRestaurantRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	if r, ok := m.restaurants[id]; ok {
		r.Approved = approved
	}
	return nil
}

func (m *mockRestaurantRepo) UpdateHours(ctx context.Context, id string, hours models.WeekHours) error {
	if r, ok := m.restaurants[id]; ok {
		r.Hours = hours
	}
	return nil
}

func (m *mockRestaurantRepo) UpdateTables(ctx context.Context, id string, tables map[int]int) error {
	if r, ok := m.restaurants[id]; ok {
		r.Tables = tables
	}
	return nil
}

type mockTableRepo struct {
	tables []models.Table
}

func (m *mockTableRepo) ReplaceForRestaurant(ctx context.Context, restaurantID string, tables []models.Table) error {
	var kept []models.Table
	for _, t := range m.tables {
		if t.RestaurantID != restaurantID {
			kept = append(kept, t)
		}
	}
	m.tables = append(kept, tables...)
	return nil
}

func (m *mockTableRepo) GetByID(ctx context.Context, id string) (*models.Table, error) {
	for i := range m.tables {
		if m.tables[i].ID == id {
			return &m.tables[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockTableRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Table, error) {
	var out []models.Table
	for _, t := range m.tables {
		if t.RestaurantID == restaurantID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type mockSink struct {
	mu         sync.Mutex
	notified   []string
	NotifyFunc func(ctx context.Context, userID, message string) error
}

func (m *mockSink) Notify(ctx context.Context, userID, message string) error {
	if m.NotifyFunc != nil {
		if err := m.NotifyFunc(ctx, userID, message); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified = append(m.notified, userID+": "+message)
	return nil
}

func (m *mockSink) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	return nil
}
