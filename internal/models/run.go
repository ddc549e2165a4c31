package models

import "time"

// Run statuses.
const (
	RunPending   = "PENDING"
	RunRunning   = "RUNNING"
	RunCompleted = "COMPLETED"
	RunFailed    = "FAILED"
)

// AnnualSummary is the persisted per-year emissions rollup of a run.
type AnnualSummary struct {
	Year          int     `json:"year"`
	ElectricityKg float64 `json:"electricity_kg"`
	GasKg         float64 `json:"gas_kg"`
	RefrigerantKg float64 `json:"refrigerant_kg"`
	TotalKg       float64 `json:"total_kg"`
}

// Run is one execution of the dispatch + emissions pipeline for a
// {load profile, equipment scenario, emissions config} triple.
type Run struct {
	ID                string    `json:"id"`
	ProfileID         string    `json:"profile_id"`
	ScenarioID        string    `json:"scenario_id"`
	EmissionsConfigID string    `json:"emissions_config_id"`
	Status            string    `json:"status"` // PENDING | RUNNING | COMPLETED | FAILED
	Error             string    `json:"error,omitempty"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at,omitempty"`

	AWHPUnitCount       int             `json:"awhp_unit_count,omitempty"`
	TotalElectricityKWh float64         `json:"total_electricity_kwh,omitempty"`
	TotalGasKWh         float64         `json:"total_gas_kwh,omitempty"`
	CurveClampedHours   int             `json:"curve_clamped_hours,omitempty"`
	Annual              []AnnualSummary `json:"annual,omitempty"`
}

// RunEvent is a single audit-log entry.
type RunEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // RUN_STARTED | RUN_COMPLETED | RUN_FAILED | LIBRARY_CHANGE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
