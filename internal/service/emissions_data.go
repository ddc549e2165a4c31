package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"decarb_pathways/internal/engine"
	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository"
)

type EmissionsDataService struct {
	emissions repository.EmissionsRepo
}

func NewEmissionsDataService(emissions repository.EmissionsRepo) *EmissionsDataService {
	return &EmissionsDataService{emissions: emissions}
}

// ImportRates bounds-checks the dataset rows and upserts them, returning
// the number accepted. A single bad row rejects the whole batch.
func (s *EmissionsDataService) ImportRates(ctx context.Context, rows []models.EmissionsRow) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no dataset rows given", engine.ErrInvalidInput)
	}
	for i, r := range rows {
		if r.GridScenario == "" || r.GridRegion == "" {
			return 0, fmt.Errorf("%w: row %d is missing grid scenario or region", engine.ErrInvalidInput, i)
		}
		if r.Month < 1 || r.Month > 12 {
			return 0, fmt.Errorf("%w: row %d month %d outside 1..12", engine.ErrInvalidInput, i, r.Month)
		}
		if r.HourOfDay < 0 || r.HourOfDay > 23 {
			return 0, fmt.Errorf("%w: row %d hour %d outside 0..23", engine.ErrInvalidInput, i, r.HourOfDay)
		}
	}
	if err := s.emissions.InsertRates(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *EmissionsDataService) GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error) {
	return s.emissions.GetRates(ctx, gridScenario, gridRegion)
}

// SaveConfig validates an emissions scenario before persisting it.
func (s *EmissionsDataService) SaveConfig(ctx context.Context, c models.EmissionsConfig) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.GridScenario == "" || c.GridRegion == "" {
		return fmt.Errorf("%w: emissions config needs a grid scenario and region", engine.ErrInvalidInput)
	}
	if err := engine.ValidateEmissionsConfig(c); err != nil {
		return err
	}
	return s.emissions.SaveConfig(ctx, c)
}

func (s *EmissionsDataService) GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error) {
	return s.emissions.GetConfig(ctx, id)
}

func (s *EmissionsDataService) ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error) {
	return s.emissions.ListConfigs(ctx)
}
