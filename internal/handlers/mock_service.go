package handlers

import (
	"context"
	"net/http"
	"time"

	"decarb_pathways/internal/models"
	"decarb_pathways/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfiles struct {
	saveResp *models.LoadProfile
	saveErr  error
	getResp  *models.LoadProfile
	getErr   error
	listResp []models.LoadProfile
	listErr  error
	delErr   error

	lastSaved service.ProfileParams
	lastGetID string
	lastDelID string
}

func (m *mockProfiles) Save(ctx context.Context, p service.ProfileParams) (*models.LoadProfile, error) {
	m.lastSaved = p
	return m.saveResp, m.saveErr
}
func (m *mockProfiles) Get(ctx context.Context, id string) (*models.LoadProfile, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}
func (m *mockProfiles) List(ctx context.Context) ([]models.LoadProfile, error) {
	return m.listResp, m.listErr
}
func (m *mockProfiles) Delete(ctx context.Context, id string) error {
	m.lastDelID = id
	return m.delErr
}

type mockLibrary struct {
	saveEquipErr    error
	getEquipResp    *models.EquipmentSpec
	getEquipErr     error
	listEquipResp   []models.EquipmentSpec
	listEquipErr    error
	delEquipErr     error
	saveScenErr     error
	getScenResp     *models.ScenarioConfig
	getScenErr      error
	listScenResp    []models.ScenarioConfig
	listScenErr     error
	delScenErr      error
	resolveResp     *models.Scenario
	resolveErr      error

	lastSavedEquip models.EquipmentSpec
	lastSavedScen  models.ScenarioConfig
}

func (m *mockLibrary) SaveEquipment(ctx context.Context, e models.EquipmentSpec) error {
	m.lastSavedEquip = e
	return m.saveEquipErr
}
func (m *mockLibrary) GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error) {
	return m.getEquipResp, m.getEquipErr
}
func (m *mockLibrary) ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error) {
	return m.listEquipResp, m.listEquipErr
}
func (m *mockLibrary) DeleteEquipment(ctx context.Context, id string) error {
	return m.delEquipErr
}
func (m *mockLibrary) SaveScenario(ctx context.Context, s models.ScenarioConfig) error {
	m.lastSavedScen = s
	return m.saveScenErr
}
func (m *mockLibrary) GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error) {
	return m.getScenResp, m.getScenErr
}
func (m *mockLibrary) ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error) {
	return m.listScenResp, m.listScenErr
}
func (m *mockLibrary) DeleteScenario(ctx context.Context, id string) error {
	return m.delScenErr
}
func (m *mockLibrary) Resolve(ctx context.Context, scenarioID string) (*models.Scenario, error) {
	return m.resolveResp, m.resolveErr
}

type mockEmissionsData struct {
	importN     int
	importErr   error
	ratesResp   []models.EmissionsRow
	ratesErr    error
	saveCfgErr  error
	getCfgResp  *models.EmissionsConfig
	getCfgErr   error
	listCfgResp []models.EmissionsConfig
	listCfgErr  error

	lastImported []models.EmissionsRow
	lastSavedCfg models.EmissionsConfig
}

func (m *mockEmissionsData) ImportRates(ctx context.Context, rows []models.EmissionsRow) (int, error) {
	m.lastImported = rows
	return m.importN, m.importErr
}
func (m *mockEmissionsData) GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error) {
	return m.ratesResp, m.ratesErr
}
func (m *mockEmissionsData) SaveConfig(ctx context.Context, c models.EmissionsConfig) error {
	m.lastSavedCfg = c
	return m.saveCfgErr
}
func (m *mockEmissionsData) GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error) {
	return m.getCfgResp, m.getCfgErr
}
func (m *mockEmissionsData) ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error) {
	return m.listCfgResp, m.listCfgErr
}

type mockRunner struct {
	execResp   *models.Run
	execErr    error
	getResp    *models.Run
	getErr     error
	latestResp *models.Run
	latestErr  error
	listResp   []models.Run
	listErr    error

	lastParams service.RunParams
	execCalls  int
}

func (m *mockRunner) Execute(ctx context.Context, p service.RunParams) (*models.Run, error) {
	m.execCalls++
	m.lastParams = p
	return m.execResp, m.execErr
}
func (m *mockRunner) Get(ctx context.Context, id string) (*models.Run, error) {
	return m.getResp, m.getErr
}
func (m *mockRunner) Latest(ctx context.Context) (*models.Run, error) {
	return m.latestResp, m.latestErr
}
func (m *mockRunner) List(ctx context.Context) ([]models.Run, error) {
	return m.listResp, m.listErr
}

type mockRunLog struct {
	resp     []models.RunEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockRunLog) List(ctx context.Context, f service.LogFilter) ([]models.RunEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
