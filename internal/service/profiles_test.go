package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"decarb_pathways/internal/engine"
)

func TestProfileService_Save_HourOfYearConversion(t *testing.T) {
	repo := newFakeLoadRepo()
	svc := NewProfileService(repo)

	h0, h1 := 0, 1
	got, err := svc.Save(context.Background(), ProfileParams{
		Name: "two hours",
		Year: 2025,
		Hours: []HourParams{
			{HourOfYear: &h0, HeatingKW: 5, OutdoorTempC: 2},
			{HourOfYear: &h1, HeatingKW: 6, OutdoorTempC: 3},
		},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}

	want0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Hours[0].Timestamp.Equal(want0) {
		t.Fatalf("hour 0 timestamp = %v, want %v", got.Hours[0].Timestamp, want0)
	}
	if !got.Hours[1].Timestamp.Equal(want0.Add(time.Hour)) {
		t.Fatalf("hour 1 timestamp = %v, want %v", got.Hours[1].Timestamp, want0.Add(time.Hour))
	}

	if _, ok := repo.profiles[got.ID]; !ok {
		t.Fatalf("profile not persisted")
	}
}

func TestProfileService_Save_HourOfYearWithoutYear(t *testing.T) {
	svc := NewProfileService(newFakeLoadRepo())

	h := 12
	_, err := svc.Save(context.Background(), ProfileParams{
		Name:  "broken",
		Hours: []HourParams{{HourOfYear: &h}},
	})
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_Save_GapRejected(t *testing.T) {
	svc := NewProfileService(newFakeLoadRepo())

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Save(context.Background(), ProfileParams{
		Name: "gappy",
		Hours: []HourParams{
			{Timestamp: base},
			{Timestamp: base.Add(2 * time.Hour)}, // missing hour
		},
	})
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_Save_NormalizesToUTC(t *testing.T) {
	repo := newFakeLoadRepo()
	svc := NewProfileService(repo)

	loc, _ := time.LoadLocation("America/New_York")
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, loc)

	got, err := svc.Save(context.Background(), ProfileParams{
		ID:   "prof-tz",
		Name: "tz",
		Hours: []HourParams{
			{Timestamp: base, CoolingKW: 3, OutdoorTempC: 28},
		},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got.Hours[0].Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not UTC: %v", got.Hours[0].Timestamp)
	}
	if !got.Hours[0].Timestamp.Equal(base) {
		t.Fatalf("UTC conversion changed the instant: %v vs %v", got.Hours[0].Timestamp, base)
	}
}
