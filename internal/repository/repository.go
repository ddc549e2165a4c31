package repository

import (
	"context"
	"database/sql"
	"time"

	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// LoadRepo stores canonical hourly load profiles.
type LoadRepo interface {
	Save(ctx context.Context, p models.LoadProfile) error
	Get(ctx context.Context, id string) (*models.LoadProfile, error)
	List(ctx context.Context) ([]models.LoadProfile, error) // without hours
	Delete(ctx context.Context, id string) error
}

// LibraryRepo stores the equipment library and named scenario configs.
type LibraryRepo interface {
	SaveEquipment(ctx context.Context, e models.EquipmentSpec) error
	GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error)
	ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error)
	DeleteEquipment(ctx context.Context, id string) error

	SaveScenario(ctx context.Context, s models.ScenarioConfig) error
	GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error)
	ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error)
	DeleteScenario(ctx context.Context, id string) error
}

// EmissionsRepo stores grid-emissions dataset rows and emissions configs.
type EmissionsRepo interface {
	InsertRates(ctx context.Context, rows []models.EmissionsRow) error
	GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error)

	SaveConfig(ctx context.Context, c models.EmissionsConfig) error
	GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error)
	ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error)
}

// RunRepo stores run records and their annual summaries.
type RunRepo interface {
	Save(ctx context.Context, r models.Run) error
	Get(ctx context.Context, id string) (*models.Run, error)
	Latest(ctx context.Context) (*models.Run, error)
	List(ctx context.Context) ([]models.Run, error)
}

// EventRepo is the append-only audit log.
type EventRepo interface {
	Append(ctx context.Context, e models.RunEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.RunEvent, error)
}

type Repository struct {
	Loads     LoadRepo
	Library   LibraryRepo
	Emissions EmissionsRepo
	Runs      RunRepo
	Events    EventRepo
	Auth      Authorization
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Loads:     NewLoadSQLite(conn),
		Library:   NewLibrarySQLite(conn),
		Emissions: NewEmissionsSQLite(conn),
		Runs:      NewRunSQLite(conn),
		Events:    NewEventSQLite(conn),
		Auth:      NewUserRepository(conn),
	}
}

// InitDB re-exports the sqlite bootstrap for main's wiring.
func InitDB(path string) (*sql.DB, error) { return db.InitDB(path) }
