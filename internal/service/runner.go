package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"decarb_pathways/internal/engine"
	"decarb_pathways/internal/logger"
	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository"
)

// RunParams names the stored inputs of one pipeline execution.
type RunParams struct {
	ProfileID         string `json:"profile_id" binding:"required"`
	ScenarioID        string `json:"scenario_id" binding:"required"`
	EmissionsConfigID string `json:"emissions_config_id" binding:"required"`
}

type RunnerService struct {
	loads     repository.LoadRepo
	emissions repository.EmissionsRepo
	runs      repository.RunRepo
	events    repository.EventRepo
	library   Library
	opts      Options
	log       *logger.Logger
}

func NewRunnerService(repos *repository.Repository, library Library, opts Options, log *logger.Logger) *RunnerService {
	return &RunnerService{
		loads:     repos.Loads,
		emissions: repos.Emissions,
		runs:      repos.Runs,
		events:    repos.Events,
		library:   library,
		opts:      opts,
		log:       log,
	}
}

// Execute loads the referenced inputs, runs the dispatch + emissions
// pipeline, and records the run through its status transitions. The run
// row exists from the moment inputs resolve, so a crash mid-run leaves a
// RUNNING record rather than nothing.
func (s *RunnerService) Execute(ctx context.Context, p RunParams) (*models.Run, error) {
	run := models.Run{
		ID:                uuid.NewString(),
		ProfileID:         p.ProfileID,
		ScenarioID:        p.ScenarioID,
		EmissionsConfigID: p.EmissionsConfigID,
		Status:            models.RunPending,
		StartedAt:         time.Now().UTC(),
	}

	in, err := s.gatherInput(ctx, p)
	if err != nil {
		return s.fail(ctx, run, err)
	}

	run.Status = models.RunRunning
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}
	if err := s.events.Append(ctx, models.RunEvent{
		Type:        "RUN_STARTED",
		Description: "run " + run.ID + " started",
		Metadata:    map[string]any{"run_id": run.ID, "scenario_id": p.ScenarioID},
	}); err != nil {
		s.log.Warnw("append RUN_STARTED failed", "run_id", run.ID, "err", err)
	}

	out, err := engine.Run(ctx, *in)
	if err != nil {
		return s.fail(ctx, run, err)
	}

	run.Status = models.RunCompleted
	run.FinishedAt = time.Now().UTC()
	run.AWHPUnitCount = out.Dispatch.AWHPUnitCount
	run.TotalElectricityKWh = out.Dispatch.TotalElectricityKWh
	run.TotalGasKWh = out.Dispatch.TotalGasKWh
	run.CurveClampedHours = out.Dispatch.CurveClampedHours
	for _, ye := range out.Emissions.Years {
		run.Annual = append(run.Annual, models.AnnualSummary{
			Year:          ye.Year,
			ElectricityKg: ye.ElectricityKg,
			GasKg:         ye.GasKg,
			RefrigerantKg: ye.RefrigerantKg,
			TotalKg:       ye.TotalKg,
		})
	}

	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}
	if err := s.events.Append(ctx, models.RunEvent{
		Type:        "RUN_COMPLETED",
		Description: "run " + run.ID + " completed",
		Metadata: map[string]any{
			"run_id":              run.ID,
			"awhp_unit_count":     run.AWHPUnitCount,
			"curve_clamped_hours": run.CurveClampedHours,
		},
	}); err != nil {
		s.log.Warnw("append RUN_COMPLETED failed", "run_id", run.ID, "err", err)
	}

	s.log.Infow("run completed",
		"run_id", run.ID,
		"scenario_id", run.ScenarioID,
		"hours", len(out.Dispatch.Hours),
		"electricity_kwh", run.TotalElectricityKWh,
		"gas_kwh", run.TotalGasKWh,
	)
	return &run, nil
}

// gatherInput resolves the three stored references into engine input.
func (s *RunnerService) gatherInput(ctx context.Context, p RunParams) (*engine.Input, error) {
	profile, err := s.loads.Get(ctx, p.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: load profile %q not found", engine.ErrInvalidInput, p.ProfileID)
	}

	scen, err := s.library.Resolve(ctx, p.ScenarioID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.emissions.GetConfig(ctx, p.EmissionsConfigID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: emissions config %q not found", engine.ErrInvalidInput, p.EmissionsConfigID)
	}
	if cfg.GasRateGramsPerKWh == 0 {
		cfg.GasRateGramsPerKWh = s.opts.GasRateGramsPerKWh
	}
	if cfg.DefaultLeakageRate == 0 {
		cfg.DefaultLeakageRate = s.opts.DefaultLeakageRate
	}

	rows, err := s.emissions.GetRates(ctx, cfg.GridScenario, cfg.GridRegion)
	if err != nil {
		return nil, err
	}

	return &engine.Input{Profile: profile, Scenario: scen, Rows: rows, Config: *cfg}, nil
}

// fail persists the FAILED transition and logs it; the pipeline error is
// returned to the caller unchanged.
func (s *RunnerService) fail(ctx context.Context, run models.Run, cause error) (*models.Run, error) {
	run.Status = models.RunFailed
	run.Error = cause.Error()
	run.FinishedAt = time.Now().UTC()

	if err := s.runs.Save(ctx, run); err != nil {
		s.log.Errorw("persist failed run", "run_id", run.ID, "err", err)
	}
	if err := s.events.Append(ctx, models.RunEvent{
		Type:        "RUN_FAILED",
		Description: "run " + run.ID + " failed: " + cause.Error(),
		Metadata:    map[string]any{"run_id": run.ID},
	}); err != nil {
		s.log.Warnw("append RUN_FAILED failed", "run_id", run.ID, "err", err)
	}

	return nil, cause
}

func (s *RunnerService) Get(ctx context.Context, id string) (*models.Run, error) {
	return s.runs.Get(ctx, id)
}

func (s *RunnerService) Latest(ctx context.Context) (*models.Run, error) {
	return s.runs.Latest(ctx)
}

func (s *RunnerService) List(ctx context.Context) ([]models.Run, error) {
	return s.runs.List(ctx)
}
