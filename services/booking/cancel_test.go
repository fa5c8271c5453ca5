package booking

import (
	"context"
	"errors"
	"testing"

	"thalibook/models"
)

func seedReservation(repo *mockReservationRepo, id, userID, status string) {
	repo.reservations[id] = &models.Reservation{
		ID:           id,
		TableID:      "t1",
		RestaurantID: "r1",
		UserID:       userID,
		Date:         testDate,
		Time:         720,
		PartySize:    2,
		Status:       status,
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		actor   models.Actor
		wantErr error
	}{
		{
			name:   "owner cancels own booking",
			status: models.StatusConfirmed,
			actor:  models.Actor{ID: "u1", Role: models.RoleCustomer},
		},
		{
			name:    "customer cannot cancel another's booking",
			status:  models.StatusConfirmed,
			actor:   models.Actor{ID: "u2", Role: models.RoleCustomer},
			wantErr: ErrForbidden,
		},
		{
			name:    "manager may never cancel",
			status:  models.StatusConfirmed,
			actor:   models.Actor{ID: "m1", Role: models.RoleManager},
			wantErr: ErrForbidden,
		},
		{
			name:   "admin cancels any booking",
			status: models.StatusConfirmed,
			actor:  models.Actor{ID: "root", Role: models.RoleAdmin},
		},
		{
			name:    "already cancelled",
			status:  models.StatusCancelled,
			actor:   models.Actor{ID: "u1", Role: models.RoleCustomer},
			wantErr: ErrAlreadyCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, repo, _ := newTestEngine(nil)
			seedReservation(repo, "b1", "u1", tt.status)

			err := engine.Cancel(context.Background(), "b1", tt.actor)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Cancel = %v, want %v", err, tt.wantErr)
				}
				if tt.status != models.StatusCancelled && repo.reservations["b1"].Status != tt.status {
					t.Error("rejected cancel mutated the reservation")
				}
				return
			}
			if err != nil {
				t.Fatalf("Cancel: %v", err)
			}
			if repo.reservations["b1"].Status != models.StatusCancelled {
				t.Errorf("status = %q, want CANCELLED", repo.reservations["b1"].Status)
			}
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		engine, _, _ := newTestEngine(nil)
		err := engine.Cancel(context.Background(), "missing", models.Actor{ID: "u1", Role: models.RoleCustomer})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Cancel(missing) = %v, want ErrNotFound", err)
		}
	})

	t.Run("second cancel fails", func(t *testing.T) {
		engine, repo, _ := newTestEngine(nil)
		seedReservation(repo, "b1", "u1", models.StatusConfirmed)
		actor := models.Actor{ID: "u1", Role: models.RoleCustomer}

		if err := engine.Cancel(context.Background(), "b1", actor); err != nil {
			t.Fatalf("first Cancel: %v", err)
		}
		if err := engine.Cancel(context.Background(), "b1", actor); !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("second Cancel = %v, want ErrAlreadyCancelled", err)
		}
	})

	t.Run("cancel frees the slot for rebooking", func(t *testing.T) {
		engine, _, _ := newTestEngine([]models.Table{testTable("t1", 4, "11:00", "12:00", "13:00")})
		actor := models.Actor{ID: "u1", Role: models.RoleCustomer}

		res, err := engine.Book(context.Background(), "u1", bookingReq("12:00", 2))
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if err := engine.Cancel(context.Background(), res.ID, actor); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if _, err := engine.Book(context.Background(), "u2", bookingReq("12:00", 2)); err != nil {
			t.Fatalf("rebooking after cancel: %v", err)
		}
	})
}
