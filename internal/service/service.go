package service

import (
	"context"
	"time"

	"decarb_pathways/internal/logger"
	"decarb_pathways/internal/models"
	"decarb_pathways/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Profiles manages hourly load profiles: intake, retrieval, deletion.
type Profiles interface {
	Save(ctx context.Context, p ProfileParams) (*models.LoadProfile, error)
	Get(ctx context.Context, id string) (*models.LoadProfile, error)
	List(ctx context.Context) ([]models.LoadProfile, error)
	Delete(ctx context.Context, id string) error
}

// Library manages the equipment library and named scenario configs, and
// resolves a config into the form the dispatch engine consumes.
type Library interface {
	SaveEquipment(ctx context.Context, e models.EquipmentSpec) error
	GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error)
	ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error)
	DeleteEquipment(ctx context.Context, id string) error

	SaveScenario(ctx context.Context, s models.ScenarioConfig) error
	GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error)
	ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error)
	DeleteScenario(ctx context.Context, id string) error

	Resolve(ctx context.Context, scenarioID string) (*models.Scenario, error)
}

// EmissionsData manages the grid-emissions dataset and named emissions
// configs.
type EmissionsData interface {
	ImportRates(ctx context.Context, rows []models.EmissionsRow) (int, error)
	GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error)

	SaveConfig(ctx context.Context, c models.EmissionsConfig) error
	GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error)
	ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error)
}

// Runner executes the dispatch + emissions pipeline for a stored
// {profile, scenario, emissions config} triple and records the run.
type Runner interface {
	Execute(ctx context.Context, p RunParams) (*models.Run, error)
	Get(ctx context.Context, id string) (*models.Run, error)
	Latest(ctx context.Context) (*models.Run, error)
	List(ctx context.Context) ([]models.Run, error)
}

// RunLog exposes the append-only audit log with filtering access.
type RunLog interface {
	List(ctx context.Context, f LogFilter) ([]models.RunEvent, error)
}

// LogFilter narrows the audit log by time range and/or event type.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string
}

type Service struct {
	Profiles
	Library
	EmissionsData
	Runner
	RunLog
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger, opts Options) *Service {
	library := NewLibraryService(repos.Library, repos.Events, opts)
	return &Service{
		Profiles:      NewProfileService(repos.Loads),
		Library:       library,
		EmissionsData: NewEmissionsDataService(repos.Emissions),
		Runner:        NewRunnerService(repos, library, opts, log),
		RunLog:        NewRunLogService(repos.Events),
		Authorization: NewAuthService(repos.Auth),
	}
}

// Options carries engine defaults loaded from configuration.
type Options struct {
	DefaultChillerCOP  float64 // used when a scenario leaves chiller_cop unset
	GasRateGramsPerKWh float64 // 0 keeps the built-in default
	DefaultLeakageRate float64 // 0 keeps the built-in default
}

// ChillerCOP resolves the configured default, falling back to 5.0.
func (o Options) ChillerCOP() float64 {
	if o.DefaultChillerCOP > 0 {
		return o.DefaultChillerCOP
	}
	return 5.0
}
