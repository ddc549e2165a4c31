package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"decarb_pathways/internal/models"
)

// LibrarySQLite persists equipment specs and scenario configs. Specs are
// stored as a JSON column: curve tables are irregular and read back whole,
// never queried by field.
type LibrarySQLite struct {
	db *sql.DB
}

func NewLibrarySQLite(db *sql.DB) *LibrarySQLite {
	return &LibrarySQLite{db: db}
}

const (
	upsertEquipmentSQL = `
		INSERT INTO equipment (id, type, model, spec)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type=excluded.type,
			model=excluded.model,
			spec=excluded.spec
	`

	upsertScenarioSQL = `
		INSERT INTO scenarios (id, name, config)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			config=excluded.config
	`
)

func (r *LibrarySQLite) SaveEquipment(ctx context.Context, e models.EquipmentSpec) error {
	spec, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal equipment %q: %w", e.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertEquipmentSQL, e.ID, string(e.Type), e.Model, string(spec))
	return err
}

func (r *LibrarySQLite) GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error) {
	var raw string
	row := r.db.QueryRowContext(ctx, "SELECT spec FROM equipment WHERE id=?", id)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var e models.EquipmentSpec
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("unmarshal equipment %q: %w", id, err)
	}
	return &e, nil
}

func (r *LibrarySQLite) ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT spec FROM equipment ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.EquipmentSpec
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var e models.EquipmentSpec
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("unmarshal equipment row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *LibrarySQLite) DeleteEquipment(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM equipment WHERE id=?", id)
	return err
}

func (r *LibrarySQLite) SaveScenario(ctx context.Context, s models.ScenarioConfig) error {
	cfg, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario %q: %w", s.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertScenarioSQL, s.ID, s.Name, string(cfg))
	return err
}

func (r *LibrarySQLite) GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error) {
	var raw string
	row := r.db.QueryRowContext(ctx, "SELECT config FROM scenarios WHERE id=?", id)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var s models.ScenarioConfig
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("unmarshal scenario %q: %w", id, err)
	}
	return &s, nil
}

func (r *LibrarySQLite) ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT config FROM scenarios ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.ScenarioConfig
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var s models.ScenarioConfig
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("unmarshal scenario row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *LibrarySQLite) DeleteScenario(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM scenarios WHERE id=?", id)
	return err
}
