package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"decarb_pathways/internal/engine"
	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository"
)

var errUnknownEquipmentType = errors.New("unknown equipment type")

type LibraryService struct {
	library repository.LibraryRepo
	events  repository.EventRepo
	opts    Options
}

func NewLibraryService(library repository.LibraryRepo, events repository.EventRepo, opts Options) *LibraryService {
	return &LibraryService{library: library, events: events, opts: opts}
}

// SaveEquipment validates and persists a library entry and logs the change.
func (s *LibraryService) SaveEquipment(ctx context.Context, e models.EquipmentSpec) error {
	switch e.Type {
	case models.TypeHRWWHP, models.TypeAWHPHeating, models.TypeAWHPCooling,
		models.TypeBoiler, models.TypeChiller:
	default:
		return fmt.Errorf("%w: %q", errUnknownEquipmentType, e.Type)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if err := s.library.SaveEquipment(ctx, e); err != nil {
		return err
	}
	return s.appendChange(ctx, "equipment "+e.ID+" saved", map[string]any{
		"equipment_id": e.ID,
		"type":         e.Type,
	})
}

func (s *LibraryService) GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error) {
	return s.library.GetEquipment(ctx, id)
}

func (s *LibraryService) ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error) {
	return s.library.ListEquipment(ctx)
}

func (s *LibraryService) DeleteEquipment(ctx context.Context, id string) error {
	if err := s.library.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	return s.appendChange(ctx, "equipment "+id+" deleted", map[string]any{"equipment_id": id})
}

// SaveScenario resolves and validates the config before persisting, so the
// library never holds a scenario that cannot run.
func (s *LibraryService) SaveScenario(ctx context.Context, cfg models.ScenarioConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if _, err := s.resolve(ctx, cfg); err != nil {
		return err
	}

	if err := s.library.SaveScenario(ctx, cfg); err != nil {
		return err
	}
	return s.appendChange(ctx, "scenario "+cfg.ID+" saved", map[string]any{"scenario_id": cfg.ID})
}

func (s *LibraryService) GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error) {
	return s.library.GetScenario(ctx, id)
}

func (s *LibraryService) ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error) {
	return s.library.ListScenarios(ctx)
}

func (s *LibraryService) DeleteScenario(ctx context.Context, id string) error {
	if err := s.library.DeleteScenario(ctx, id); err != nil {
		return err
	}
	return s.appendChange(ctx, "scenario "+id+" deleted", map[string]any{"scenario_id": id})
}

// Resolve loads a stored scenario config and materializes its equipment
// references for the engine.
func (s *LibraryService) Resolve(ctx context.Context, scenarioID string) (*models.Scenario, error) {
	cfg, err := s.library.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: scenario %q not found", engine.ErrInvalidInput, scenarioID)
	}
	return s.resolve(ctx, *cfg)
}

func (s *LibraryService) resolve(ctx context.Context, cfg models.ScenarioConfig) (*models.Scenario, error) {
	scen := &models.Scenario{Config: cfg, ChillerCOP: cfg.ChillerCOP}
	if scen.ChillerCOP == 0 {
		scen.ChillerCOP = s.opts.ChillerCOP()
	}

	for _, ref := range []struct {
		id   string
		want models.EquipmentType
		dst  **models.EquipmentSpec
	}{
		{cfg.HRWWHPID, models.TypeHRWWHP, &scen.HRWWHP},
		{cfg.AWHPHeatingID, models.TypeAWHPHeating, &scen.AWHPHeating},
		{cfg.AWHPCoolingID, models.TypeAWHPCooling, &scen.AWHPCooling},
		{cfg.BoilerID, models.TypeBoiler, &scen.Boiler},
	} {
		if ref.id == "" {
			continue
		}
		e, err := s.library.GetEquipment(ctx, ref.id)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, fmt.Errorf("%w: scenario %q references missing equipment %q",
				engine.ErrInconsistentScenario, cfg.ID, ref.id)
		}
		if e.Type != ref.want {
			return nil, fmt.Errorf("%w: scenario %q uses equipment %q as %s but it is %s",
				engine.ErrInconsistentScenario, cfg.ID, ref.id, ref.want, e.Type)
		}
		*ref.dst = e
	}

	if err := engine.ValidateScenario(scen); err != nil {
		return nil, err
	}
	return scen, nil
}

func (s *LibraryService) appendChange(ctx context.Context, msg string, meta map[string]any) error {
	return s.events.Append(ctx, models.RunEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        "LIBRARY_CHANGE",
		Description: msg,
		Metadata:    meta,
	})
}
