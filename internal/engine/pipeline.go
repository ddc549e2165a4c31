package engine

import (
	"context"

	"decarb_pathways/internal/models"
)

// Input bundles everything one pipeline execution needs. All fields are
// read-only to the engine.
type Input struct {
	Profile  *models.LoadProfile
	Scenario *models.Scenario
	Rows     []models.EmissionsRow // pre-filtered to Config's grid scenario and region
	Config   models.EmissionsConfig
}

// Output is the pair of immutable results a pipeline execution produces.
type Output struct {
	Dispatch  *models.DispatchResult
	Emissions *models.EmissionsResult
}

// Run executes the full pipeline: validate, dispatch the load, reduce and
// align the grid-emissions dataset, and account emissions per hour and
// year. Pure and deterministic; identical inputs give identical outputs.
func Run(ctx context.Context, in Input) (*Output, error) {
	dispatch, err := Allocate(ctx, in.Profile, in.Scenario)
	if err != nil {
		return nil, err
	}

	table, err := ReduceRates(in.Rows, in.Config)
	if err != nil {
		return nil, err
	}
	rates, err := AlignRates(in.Profile, table)
	if err != nil {
		return nil, err
	}

	emissions, err := ComputeEmissions(dispatch, rates, in.Scenario, in.Config)
	if err != nil {
		return nil, err
	}

	return &Output{Dispatch: dispatch, Emissions: emissions}, nil
}
