package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaLoadProfiles = `
CREATE TABLE IF NOT EXISTS load_profiles (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const schemaLoadHours = `
CREATE TABLE IF NOT EXISTS load_hours (
    profile_id TEXT NOT NULL REFERENCES load_profiles(id) ON DELETE CASCADE,
    ts TIMESTAMP NOT NULL,
    heating_kw REAL NOT NULL,
    cooling_kw REAL NOT NULL,
    outdoor_temp_c REAL NOT NULL,
    PRIMARY KEY (profile_id, ts)
);
`

const schemaEquipment = `
CREATE TABLE IF NOT EXISTS equipment (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    model TEXT NOT NULL,
    spec TEXT NOT NULL
);
`

const schemaScenarios = `
CREATE TABLE IF NOT EXISTS scenarios (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    config TEXT NOT NULL
);
`

const schemaEmissionRates = `
CREATE TABLE IF NOT EXISTS emission_rates (
    grid_scenario TEXT NOT NULL,
    grid_region TEXT NOT NULL,
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    hour INTEGER NOT NULL,
    lrmer_co2e_c REAL NOT NULL,
    lrmer_co2e_p REAL NOT NULL,
    srmer_co2e_c REAL NOT NULL,
    srmer_co2e_p REAL NOT NULL,
    PRIMARY KEY (grid_scenario, grid_region, year, month, hour)
);
`

const schemaEmissionConfigs = `
CREATE TABLE IF NOT EXISTS emission_configs (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    config TEXT NOT NULL
);
`

const schemaRuns = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    scenario_id TEXT NOT NULL,
    emissions_config_id TEXT NOT NULL,
    status TEXT NOT NULL,
    error TEXT,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    awhp_unit_count INTEGER,
    total_electricity_kwh REAL,
    total_gas_kwh REAL,
    curve_clamped_hours INTEGER,
    annual TEXT
);
`

const schemaRunEvents = `
CREATE TABLE IF NOT EXISTS run_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaLoadProfiles,
		schemaLoadHours,
		schemaEquipment,
		schemaScenarios,
		schemaEmissionRates,
		schemaEmissionConfigs,
		schemaRuns,
		schemaRunEvents,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
