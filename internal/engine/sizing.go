package engine

import (
	"fmt"
	"math"

	"decarb_pathways/internal/models"
)

// DesignHeatingOATC is the cold reference temperature for AWHP sizing.
// Per-unit capacity is taken at this temperature so the fleet is sized
// against its worst heating-season output.
const DesignHeatingOATC = 0.0

// awhpUnitCount derives the heating AWHP fleet size once per scenario. The
// same count is reused by the cooling phase; cooling sizing is deliberately
// not evaluated on its own.
func awhpUnitCount(s *models.Scenario, profile *models.LoadProfile) (int, error) {
	e := s.AWHPHeating
	if e == nil {
		return 0, nil
	}

	sz := s.Config.AWHPSizing
	if sz.Mode == models.SizingFixedUnits {
		return int(math.Ceil(sz.Value)), nil
	}

	capAtDesign, _ := evalCurve(e.CapacityCurve, DesignHeatingOATC)
	if capAtDesign <= 0 {
		return 0, fmt.Errorf("%w: AWHP %q has no capacity at design temperature %g°C",
			ErrInvalidInput, e.ID, DesignHeatingOATC)
	}

	peak := profile.PeakHeatingKW()
	return int(math.Ceil(peak * sz.Value / capAtDesign)), nil
}
