package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"decarb_pathways/internal/models"
)

type LoadSQLite struct {
	db *sql.DB
}

func NewLoadSQLite(db *sql.DB) *LoadSQLite {
	return &LoadSQLite{db: db}
}

const (
	insertProfileSQL = `
		INSERT INTO load_profiles (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name
	`

	insertHourSQL = `
		INSERT INTO load_hours (profile_id, ts, heating_kw, cooling_kw, outdoor_temp_c)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(profile_id, ts) DO UPDATE SET
			heating_kw=excluded.heating_kw,
			cooling_kw=excluded.cooling_kw,
			outdoor_temp_c=excluded.outdoor_temp_c
	`

	selectHoursSQL = `
		SELECT ts, heating_kw, cooling_kw, outdoor_temp_c
		FROM load_hours WHERE profile_id=? ORDER BY ts ASC
	`
)

// Save upserts the profile header and all hourly rows in one transaction,
// so a reader never observes a half-written timeline.
func (r *LoadSQLite) Save(ctx context.Context, p models.LoadProfile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save profile: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertProfileSQL, p.ID, p.Name, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert profile %q: %w", p.ID, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM load_hours WHERE profile_id=?", p.ID); err != nil {
		return fmt.Errorf("clear hours for %q: %w", p.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertHourSQL)
	if err != nil {
		return fmt.Errorf("prepare hour insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, h := range p.Hours {
		if _, err := stmt.ExecContext(ctx, p.ID, h.Timestamp.UTC(), h.HeatingKW, h.CoolingKW, h.OutdoorTempC); err != nil {
			return fmt.Errorf("insert hour %s: %w", h.Timestamp, err)
		}
	}

	return tx.Commit()
}

func (r *LoadSQLite) Get(ctx context.Context, id string) (*models.LoadProfile, error) {
	var p models.LoadProfile
	row := r.db.QueryRowContext(ctx, "SELECT id, name FROM load_profiles WHERE id=?", id)
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectHoursSQL, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var h models.HourRecord
		if err := rows.Scan(&h.Timestamp, &h.HeatingKW, &h.CoolingKW, &h.OutdoorTempC); err != nil {
			return nil, err
		}
		h.Timestamp = h.Timestamp.UTC()
		p.Hours = append(p.Hours, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns profile headers only; hourly data stays in the DB until a
// profile is fetched by id.
func (r *LoadSQLite) List(ctx context.Context) ([]models.LoadProfile, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM load_profiles ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.LoadProfile
	for rows.Next() {
		var p models.LoadProfile
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *LoadSQLite) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM load_profiles WHERE id=?", id)
	return err
}
