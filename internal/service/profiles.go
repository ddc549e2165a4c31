package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"decarb_pathways/internal/engine"
	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository"
)

// HourParams is one intake row. Timestamps may arrive explicit or as an
// hour-of-year index (0-based) resolved against Year.
type HourParams struct {
	Timestamp    time.Time `json:"timestamp,omitempty"`
	HourOfYear   *int      `json:"hour_of_year,omitempty"`
	HeatingKW    float64   `json:"heating_kw"`
	CoolingKW    float64   `json:"cooling_kw"`
	OutdoorTempC float64   `json:"outdoor_temp_c"`
}

// ProfileParams is the intake payload for a load profile.
type ProfileParams struct {
	ID    string       `json:"id,omitempty"`
	Name  string       `json:"name"`
	Year  int          `json:"year,omitempty"` // required when rows use hour_of_year
	Hours []HourParams `json:"hours"`
}

type ProfileService struct {
	loads repository.LoadRepo
}

func NewProfileService(loads repository.LoadRepo) *ProfileService {
	return &ProfileService{loads: loads}
}

// Save converts the intake payload to a canonical timeline, validates it,
// and persists it. Hour-of-year rows are resolved to UTC timestamps in the
// given year.
func (s *ProfileService) Save(ctx context.Context, p ProfileParams) (*models.LoadProfile, error) {
	profile := models.LoadProfile{
		ID:   p.ID,
		Name: p.Name,
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	yearStart := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, h := range p.Hours {
		ts := h.Timestamp
		if h.HourOfYear != nil {
			if p.Year == 0 {
				return nil, fmt.Errorf("%w: row %d uses hour_of_year but no year is given", engine.ErrInvalidInput, i)
			}
			ts = yearStart.Add(time.Duration(*h.HourOfYear) * time.Hour)
		}
		profile.Hours = append(profile.Hours, models.HourRecord{
			Timestamp:    ts.UTC(),
			HeatingKW:    h.HeatingKW,
			CoolingKW:    h.CoolingKW,
			OutdoorTempC: h.OutdoorTempC,
		})
	}

	if err := engine.ValidateProfile(&profile); err != nil {
		return nil, err
	}
	if err := s.loads.Save(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*models.LoadProfile, error) {
	return s.loads.Get(ctx, id)
}

func (s *ProfileService) List(ctx context.Context) ([]models.LoadProfile, error) {
	return s.loads.List(ctx)
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.loads.Delete(ctx, id)
}
