package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestBuildDraftBasics(t *testing.T) {
	p := Provider{ID: 7, PricePerHour: 1500}
	when := time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local)

	b, err := BuildDraft(p, when, 3, 42)
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	if b.ProviderID != 7 {
		t.Errorf("providerId = %d, want 7", b.ProviderID)
	}
	if b.UserID != 42 {
		t.Errorf("userId = %d, want 42", b.UserID)
	}
	if b.Date != "2024-03-05" {
		t.Errorf("date = %q, want %q", b.Date, "2024-03-05")
	}
	if b.Time != "14:07" {
		t.Errorf("time = %q, want %q", b.Time, "14:07")
	}
	if b.Hours != 3 {
		t.Errorf("hours = %d, want 3", b.Hours)
	}
	if b.TotalCost != 4500 {
		t.Errorf("totalCost = %v, want 4500", b.TotalCost)
	}
	if b.Status != StatusPending {
		t.Errorf("status = %q, want %q", b.Status, StatusPending)
	}
	if b.ID != 0 {
		t.Errorf("draft should carry no id, got %d", b.ID)
	}
}

func TestBuildDraftClampsHours(t *testing.T) {
	p := Provider{ID: 1, PricePerHour: 2000}
	when := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)

	tests := []struct {
		hours     int
		wantHours int
		wantCost  float64
	}{
		{0, 1, 2000},
		{-3, 1, 2000},
		{1, 1, 2000},
		{4, 4, 8000},
	}
	for _, tt := range tests {
		b, err := BuildDraft(p, when, tt.hours, 1)
		if err != nil {
			t.Fatalf("BuildDraft(hours=%d): %v", tt.hours, err)
		}
		if b.Hours != tt.wantHours {
			t.Errorf("hours=%d: clamped = %d, want %d", tt.hours, b.Hours, tt.wantHours)
		}
		if b.TotalCost != tt.wantCost {
			t.Errorf("hours=%d: totalCost = %v, want %v (cost must use the clamped count)", tt.hours, b.TotalCost, tt.wantCost)
		}
	}
}

func TestBuildDraftStatusAlwaysPending(t *testing.T) {
	p := Provider{ID: 2, PricePerHour: 100}
	when := time.Date(2025, 1, 1, 0, 5, 0, 0, time.Local)
	for _, hours := range []int{-1, 0, 1, 24} {
		b, err := BuildDraft(p, when, hours, 1)
		if err != nil {
			t.Fatalf("BuildDraft(hours=%d): %v", hours, err)
		}
		if b.Status != StatusPending {
			t.Errorf("hours=%d: status = %q, want pending", hours, b.Status)
		}
	}
}

func TestBuildDraftZeroPaddedTime(t *testing.T) {
	p := Provider{ID: 3, PricePerHour: 500}
	when := time.Date(2024, 11, 2, 8, 5, 0, 0, time.Local)
	b, err := BuildDraft(p, when, 1, 1)
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	if b.Time != "08:05" {
		t.Errorf("time = %q, want zero-padded %q", b.Time, "08:05")
	}
}

func TestBuildDraftInvalidInput(t *testing.T) {
	when := time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local)

	if _, err := BuildDraft(Provider{}, when, 1, 1); !errors.Is(err, ErrInvalidBookingInput) {
		t.Errorf("missing provider: err = %v, want ErrInvalidBookingInput", err)
	}
	if _, err := BuildDraft(Provider{ID: 1}, time.Time{}, 1, 1); !errors.Is(err, ErrInvalidBookingInput) {
		t.Errorf("zero time: err = %v, want ErrInvalidBookingInput", err)
	}
}

func TestClampHours(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {100, 100},
	}
	for _, tt := range tests {
		if got := ClampHours(tt.in); got != tt.want {
			t.Errorf("ClampHours(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
