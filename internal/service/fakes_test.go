package service

import (
	"context"
	"time"

	"decarb_pathways/internal/models"
)

// Hand-rolled repository fakes shared by the service tests.

type fakeLoadRepo struct {
	profiles map[string]models.LoadProfile
	saveErr  error
	getErr   error
}

func newFakeLoadRepo() *fakeLoadRepo {
	return &fakeLoadRepo{profiles: map[string]models.LoadProfile{}}
}

func (f *fakeLoadRepo) Save(ctx context.Context, p models.LoadProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeLoadRepo) Get(ctx context.Context, id string) (*models.LoadProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeLoadRepo) List(ctx context.Context) ([]models.LoadProfile, error) {
	var out []models.LoadProfile
	for _, p := range f.profiles {
		out = append(out, models.LoadProfile{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (f *fakeLoadRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

type fakeLibraryRepo struct {
	equipment map[string]models.EquipmentSpec
	scenarios map[string]models.ScenarioConfig
}

func newFakeLibraryRepo() *fakeLibraryRepo {
	return &fakeLibraryRepo{
		equipment: map[string]models.EquipmentSpec{},
		scenarios: map[string]models.ScenarioConfig{},
	}
}

func (f *fakeLibraryRepo) SaveEquipment(ctx context.Context, e models.EquipmentSpec) error {
	f.equipment[e.ID] = e
	return nil
}

func (f *fakeLibraryRepo) GetEquipment(ctx context.Context, id string) (*models.EquipmentSpec, error) {
	e, ok := f.equipment[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeLibraryRepo) ListEquipment(ctx context.Context) ([]models.EquipmentSpec, error) {
	var out []models.EquipmentSpec
	for _, e := range f.equipment {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeLibraryRepo) DeleteEquipment(ctx context.Context, id string) error {
	delete(f.equipment, id)
	return nil
}

func (f *fakeLibraryRepo) SaveScenario(ctx context.Context, s models.ScenarioConfig) error {
	f.scenarios[s.ID] = s
	return nil
}

func (f *fakeLibraryRepo) GetScenario(ctx context.Context, id string) (*models.ScenarioConfig, error) {
	s, ok := f.scenarios[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeLibraryRepo) ListScenarios(ctx context.Context) ([]models.ScenarioConfig, error) {
	var out []models.ScenarioConfig
	for _, s := range f.scenarios {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeLibraryRepo) DeleteScenario(ctx context.Context, id string) error {
	delete(f.scenarios, id)
	return nil
}

type fakeEmissionsRepo struct {
	rows    []models.EmissionsRow
	configs map[string]models.EmissionsConfig
}

func newFakeEmissionsRepo() *fakeEmissionsRepo {
	return &fakeEmissionsRepo{configs: map[string]models.EmissionsConfig{}}
}

func (f *fakeEmissionsRepo) InsertRates(ctx context.Context, rows []models.EmissionsRow) error {
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeEmissionsRepo) GetRates(ctx context.Context, gridScenario, gridRegion string) ([]models.EmissionsRow, error) {
	var out []models.EmissionsRow
	for _, r := range f.rows {
		if r.GridScenario == gridScenario && r.GridRegion == gridRegion {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEmissionsRepo) SaveConfig(ctx context.Context, c models.EmissionsConfig) error {
	f.configs[c.ID] = c
	return nil
}

func (f *fakeEmissionsRepo) GetConfig(ctx context.Context, id string) (*models.EmissionsConfig, error) {
	c, ok := f.configs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeEmissionsRepo) ListConfigs(ctx context.Context) ([]models.EmissionsConfig, error) {
	var out []models.EmissionsConfig
	for _, c := range f.configs {
		out = append(out, c)
	}
	return out, nil
}

type fakeRunRepo struct {
	saved []models.Run
}

func (f *fakeRunRepo) Save(ctx context.Context, r models.Run) error {
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeRunRepo) Get(ctx context.Context, id string) (*models.Run, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].ID == id {
			return &f.saved[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRunRepo) Latest(ctx context.Context) (*models.Run, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return &f.saved[len(f.saved)-1], nil
}

func (f *fakeRunRepo) List(ctx context.Context) ([]models.Run, error) {
	return f.saved, nil
}

type fakeEventRepo struct {
	appendErr error
	events    []models.RunEvent
	listErr   error
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.RunEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.RunEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.RunEvent
	for _, e := range f.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func eventTypes(events []models.RunEvent) []string {
	var out []string
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
