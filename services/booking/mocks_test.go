package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	reservationRepo "thalibook/database/repository/reservation"
	"thalibook/models"
)

// mockRestaurantRepo is an in-memory RestaurantRepository for testing.
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
	return r, nil
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

// mockTableRepo is an in-memory TableRepository for testing.
type mockTableRepo struct {
	tables []models.Table
}

func newMockTableRepo(tables ...models.Table) *mockTableRepo {
	return &mockTableRepo{tables: tables}
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

// mockReservationRepo is an in-memory ReservationRepository. CommitIfFree
// re-checks and inserts under one mutex, mirroring the store's transaction.
type mockReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation

	// commitFailures fails the next N CommitIfFree calls with ErrSlotTaken
	// without inserting, to simulate lost commit races.
	commitFailures int
	commitCalls    int
}

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (m *mockReservationRepo) conflictsLocked(tableID, date string, from, to models.TimeOfDay, statuses []string) []models.Reservation {
	var out []models.Reservation
	for _, res := range m.reservations {
		if res.TableID != tableID || res.Date != date {
			continue
		}
		statusMatch := false
		for _, s := range statuses {
			if res.Status == s {
				statusMatch = true
				break
			}
		}
		if !statusMatch {
			continue
		}
		if res.Time >= from && res.Time <= to {
			out = append(out, *res)
		}
	}
	return out
}

func (m *mockReservationRepo) CommitIfFree(ctx context.Context, res *models.Reservation, from, to models.TimeOfDay) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commitCalls++
	if m.commitFailures > 0 {
		m.commitFailures--
		return reservationRepo.ErrSlotTaken
	}
	if len(m.conflictsLocked(res.TableID, res.Date, from, to, models.ActiveStatuses)) > 0 {
		return reservationRepo.ErrSlotTaken
	}
	cp := *res
	m.reservations[res.ID] = &cp
	return nil
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.reservations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *res
	return &cp, nil
}

func (m *mockReservationRepo) FindConflicts(ctx context.Context, tableID, date string, from, to models.TimeOfDay, statuses []string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conflictsLocked(tableID, date, from, to, statuses), nil
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.reservations[id]
	if !ok || res.Status != fromStatus {
		return reservationRepo.ErrNoMatch
	}
	res.Status = toStatus
	return nil
}

func (m *mockReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Reservation
	for _, res := range m.reservations {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (m *mockReservationRepo) ListByRestaurantAndDate(ctx context.Context, restaurantID, date string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Reservation
	for _, res := range m.reservations {
		if res.RestaurantID == restaurantID && res.Date == date {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (m *mockReservationRepo) ListByRestaurants(ctx context.Context, restaurantIDs []string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make(map[string]bool, len(restaurantIDs))
	for _, id := range restaurantIDs {
		ids[id] = true
	}
	var out []models.Reservation
	for _, res := range m.reservations {
		if ids[res.RestaurantID] {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (m *mockReservationRepo) CountByRestaurantAndDate(ctx context.Context, restaurantID, date string, statuses []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, res := range m.reservations {
		if res.RestaurantID != restaurantID || res.Date != date {
			continue
		}
		for _, s := range statuses {
			if res.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

// mockSink is a Sink recording notifications, with injectable failures.
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
