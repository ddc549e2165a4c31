package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"decarb_pathways/internal/models"
)

type EmissionsSQLite struct {
	db *sql.DB
}

func NewEmissionsSQLite(db *sql.DB) *EmissionsSQLite {
	return &EmissionsSQLite{db: db}
}

const (
	insertRateSQL = `
		INSERT INTO emission_rates
			(grid_scenario, grid_region, year, month, hour,
			 lrmer_co2e_c, lrmer_co2e_p, srmer_co2e_c, srmer_co2e_p)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(grid_scenario, grid_region, year, month, hour) DO UPDATE SET
			lrmer_co2e_c=excluded.lrmer_co2e_c,
			lrmer_co2e_p=excluded.lrmer_co2e_p,
			srmer_co2e_c=excluded.srmer_co2e_c,
			srmer_co2e_p=excluded.srmer_co2e_p
	`

	selectRatesSQL = `
		SELECT grid_scenario, grid_region, year, month, hour,
		       lrmer_co2e_c, lrmer_co2e_p, srmer_co2e_c, srmer_co2e_p
		FROM emission_rates
		WHERE grid_scenario=? AND grid_region=?
		ORDER BY year ASC, month ASC, hour ASC
	`

	upsertEmissionConfigSQL = `
		INSERT INTO emission_configs (id, name, config)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			config=excluded.config
	`
)

// InsertRates upserts dataset rows in one transaction. Datasets arrive in
// bulk (a full grid scenario at a time), so a prepared statement is reused
// across rows.
func (r *EmissionsSQLite) InsertRates(ctx context.Context, rows []models.EmissionsRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert rates: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertRateSQL)
	if err != nil {
		return fmt.Errorf("prepare rate insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.GridScenario, row.GridRegion, row.Year, row.Month, row.HourOfDay,
			row.LRCombustion, row.LRPrecombustion, row.SRCombustion, row.SRPrecombustion,
		); err != nil {
			return fmt.Errorf("insert rate %s/%s %d-%02d h%02d: %w",
				row.GridScenario, row.GridRegion, row.Year, row.Month, row.HourOfDay, err)
		}
	}

	return tx.Commit()
}

func (r *EmissionsSQLite) GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error) {
	rows, err := r.db.QueryContext(ctx, selectRatesSQL, gridScenario, gridRegion)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.EmissionsRow
	for rows.Next() {
		var row models.EmissionsRow
		if err := rows.Scan(
			&row.GridScenario, &row.GridRegion, &row.Year, &row.Month, &row.HourOfDay,
			&row.LRCombustion, &row.LRPrecombustion, &row.SRCombustion, &row.SRPrecombustion,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *EmissionsSQLite) SaveConfig(ctx context.Context, c models.EmissionsConfig) error {
	cfg, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal emissions config %q: %w", c.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertEmissionConfigSQL, c.ID, c.Name, string(cfg))
	return err
}

func (r *EmissionsSQLite) GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error) {
	var raw string
	row := r.db.QueryRowContext(ctx, "SELECT config FROM emission_configs WHERE id=?", id)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var c models.EmissionsConfig
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("unmarshal emissions config %q: %w", id, err)
	}
	return &c, nil
}

func (r *EmissionsSQLite) ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT config FROM emission_configs ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.EmissionsConfig
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var c models.EmissionsConfig
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("unmarshal emissions config row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
