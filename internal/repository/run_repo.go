package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"decarb_pathways/internal/models"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite { return &RunSQLite{db: db} }

const (
	upsertRunSQL = `
		INSERT INTO runs
			(id, profile_id, scenario_id, emissions_config_id, status, error,
			 started_at, finished_at, awhp_unit_count,
			 total_electricity_kwh, total_gas_kwh, curve_clamped_hours, annual)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status=excluded.status,
			error=excluded.error,
			finished_at=excluded.finished_at,
			awhp_unit_count=excluded.awhp_unit_count,
			total_electricity_kwh=excluded.total_electricity_kwh,
			total_gas_kwh=excluded.total_gas_kwh,
			curve_clamped_hours=excluded.curve_clamped_hours,
			annual=excluded.annual
	`

	selectRunCols = `
		id, profile_id, scenario_id, emissions_config_id, status, error,
		started_at, finished_at, awhp_unit_count,
		total_electricity_kwh, total_gas_kwh, curve_clamped_hours, annual
	`
)

// Save upserts a run. Status transitions rewrite the same row, so a run id
// always resolves to its latest state.
func (r *RunSQLite) Save(ctx context.Context, run models.Run) error {
	var annualPtr *string
	if len(run.Annual) > 0 {
		b, err := json.Marshal(run.Annual)
		if err != nil {
			return fmt.Errorf("marshal annual summary for run %q: %w", run.ID, err)
		}
		s := string(b)
		annualPtr = &s
	}

	var finished *time.Time
	if !run.FinishedAt.IsZero() {
		t := run.FinishedAt.UTC()
		finished = &t
	}

	_, err := r.db.ExecContext(ctx, upsertRunSQL,
		run.ID, run.ProfileID, run.ScenarioID, run.EmissionsConfigID,
		run.Status, nullIfEmpty(run.Error),
		run.StartedAt.UTC(), finished, run.AWHPUnitCount,
		run.TotalElectricityKWh, run.TotalGasKWh, run.CurveClampedHours, annualPtr,
	)
	return err
}

func (r *RunSQLite) Get(ctx context.Context, id string) (*models.Run, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+selectRunCols+" FROM runs WHERE id=?", id)
	return scanRun(row)
}

// Latest returns the most recently started run, or (nil, nil) when no run
// has ever happened.
func (r *RunSQLite) Latest(ctx context.Context) (*models.Run, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+selectRunCols+" FROM runs ORDER BY started_at DESC LIMIT 1")
	return scanRun(row)
}

func (r *RunSQLite) List(ctx context.Context) ([]models.Run, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+selectRunCols+" FROM runs ORDER BY started_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Run
	for rows.Next() {
		run, err := scanRunRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *run)
	}
	return out, rows.Err()
}

func scanRun(row *sql.Row) (*models.Run, error) {
	run, err := scanRunRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return run, nil
}

func scanRunRow(scan func(dest ...any) error) (*models.Run, error) {
	var (
		run      models.Run
		errMsg   sql.NullString
		finished sql.NullTime
		annual   sql.NullString
	)
	if err := scan(
		&run.ID, &run.ProfileID, &run.ScenarioID, &run.EmissionsConfigID,
		&run.Status, &errMsg,
		&run.StartedAt, &finished, &run.AWHPUnitCount,
		&run.TotalElectricityKWh, &run.TotalGasKWh, &run.CurveClampedHours, &annual,
	); err != nil {
		return nil, err
	}

	run.StartedAt = run.StartedAt.UTC()
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	if finished.Valid {
		run.FinishedAt = finished.Time.UTC()
	}
	if annual.Valid && annual.String != "" {
		if err := json.Unmarshal([]byte(annual.String), &run.Annual); err != nil {
			return nil, fmt.Errorf("unmarshal annual summary for run %q: %w", run.ID, err)
		}
	}
	return &run, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
