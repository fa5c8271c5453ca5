package booking

import (
	"errors"
	"testing"

	"thalibook/config"
	"thalibook/models"
)

func mustTime(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	tod, err := models.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tod
}

func gridStrings(grid []models.TimeOfDay) []string {
	out := make([]string, len(grid))
	for i, t := range grid {
		out[i] = t.String()
	}
	return out
}

func equalGrids(a []models.TimeOfDay, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i] {
			return false
		}
	}
	return true
}

func TestGenerateSlotGrid(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		interval int
		want     []string
	}{
		{
			name: "hourly over a full day",
			open: "11:00", close: "22:00", interval: 60,
			want: []string{"11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00"},
		},
		{
			name: "short window",
			open: "11:00", close: "14:00", interval: 60,
			want: []string{"11:00", "12:00", "13:00"},
		},
		{
			name: "turn must finish before close",
			open: "11:00", close: "14:00", interval: 90,
			want: []string{"11:00", "12:30"},
		},
		{
			name: "interval exactly fills the window",
			open: "11:00", close: "13:00", interval: 120,
			want: []string{"11:00"},
		},
		{
			name: "interval longer than the window",
			open: "11:00", close: "12:00", interval: 120,
			want: nil,
		},
		{
			name: "zero-width window",
			open: "11:00", close: "11:00", interval: 60,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlotGrid(mustTime(t, tt.open), mustTime(t, tt.close), tt.interval)
			if !equalGrids(got, tt.want) {
				t.Errorf("GenerateSlotGrid(%s, %s, %d) = %v, want %v",
					tt.open, tt.close, tt.interval, gridStrings(got), tt.want)
			}
		})
	}

	t.Run("non-positive interval", func(t *testing.T) {
		if got := GenerateSlotGrid(660, 1320, 0); got != nil {
			t.Errorf("GenerateSlotGrid with interval 0 = %v, want nil", gridStrings(got))
		}
		if got := GenerateSlotGrid(660, 1320, -30); got != nil {
			t.Errorf("GenerateSlotGrid with interval -30 = %v, want nil", gridStrings(got))
		}
	})
}

func TestGridForDay(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.TurnIntervals = map[string]int{"2": 60, "4": 90, "6": 120}
	config.AppConfig.DefaultTurnInterval = 60

	hours := models.DayHours{Open: mustTime(t, "11:00"), Close: mustTime(t, "14:00")}

	tests := []struct {
		size int
		want []string
	}{
		{size: 2, want: []string{"11:00", "12:00", "13:00"}},
		{size: 4, want: []string{"11:00", "12:30"}},
		{size: 6, want: []string{"11:00"}},
		{size: 8, want: []string{"11:00", "12:00", "13:00"}}, // unmapped size uses the default
	}

	for _, tt := range tests {
		got := GridForDay(hours, tt.size)
		if !equalGrids(got, tt.want) {
			t.Errorf("GridForDay(size=%d) = %v, want %v", tt.size, gridStrings(got), tt.want)
		}
	}
}

func TestSeedHours(t *testing.T) {
	t.Run("uses monday", func(t *testing.T) {
		dh, err := SeedHours(models.WeekHours{"Mon": "11:00-21:00", "Sat": "10:00-23:00"})
		if err != nil {
			t.Fatalf("SeedHours: %v", err)
		}
		if dh.Open != mustTime(t, "11:00") || dh.Close != mustTime(t, "21:00") {
			t.Errorf("SeedHours = %v, want Monday's window", dh)
		}
	})

	t.Run("falls back to first open day", func(t *testing.T) {
		dh, err := SeedHours(models.WeekHours{"Sat": "10:00-23:00", "Sun": "10:00-20:00"})
		if err != nil {
			t.Fatalf("SeedHours: %v", err)
		}
		if dh.Open != mustTime(t, "10:00") || dh.Close != mustTime(t, "23:00") {
			t.Errorf("SeedHours = %v, want Saturday's window", dh)
		}
	})

	t.Run("no open day", func(t *testing.T) {
		_, err := SeedHours(models.WeekHours{})
		if !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("SeedHours on empty hours = %v, want ErrDataIntegrity", err)
		}
	})

	t.Run("malformed monday", func(t *testing.T) {
		_, err := SeedHours(models.WeekHours{"Mon": "closed"})
		if !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("SeedHours with malformed Monday = %v, want ErrDataIntegrity", err)
		}
	})
}
