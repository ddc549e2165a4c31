package engine

import (
	"fmt"
	"time"

	"decarb_pathways/internal/models"
)

// ValidateProfile checks the load timeline before any dispatch work:
// non-empty, strictly increasing hourly timestamps, non-negative loads.
// Validation is eager; a profile that fails here produces no partial result.
func ValidateProfile(p *models.LoadProfile) error {
	if p == nil || len(p.Hours) == 0 {
		return fmt.Errorf("%w: load profile is empty", ErrInvalidInput)
	}
	for i, h := range p.Hours {
		if h.Timestamp.IsZero() {
			return fmt.Errorf("%w: hour %d has no timestamp", ErrInvalidInput, i)
		}
		if h.HeatingKW < 0 {
			return fmt.Errorf("%w: hour %d has negative heating load %g", ErrInvalidInput, i, h.HeatingKW)
		}
		if h.CoolingKW < 0 {
			return fmt.Errorf("%w: hour %d has negative cooling load %g", ErrInvalidInput, i, h.CoolingKW)
		}
		if i > 0 {
			gap := h.Timestamp.Sub(p.Hours[i-1].Timestamp)
			if gap != time.Hour {
				return fmt.Errorf("%w: hour %d is %s after hour %d, want exactly 1h", ErrInvalidInput, i, gap, i-1)
			}
		}
	}
	return nil
}

// ValidateScenario checks the resolved equipment configuration. All checks
// run before the hourly fan-out starts.
func ValidateScenario(s *models.Scenario) error {
	if s == nil {
		return fmt.Errorf("%w: scenario is nil", ErrInvalidInput)
	}

	switch s.Config.ResidualHeatingFuel {
	case models.FuelGas:
		if s.Boiler == nil {
			return fmt.Errorf("%w: residual heating fuel is gas but no boiler is configured", ErrInconsistentScenario)
		}
	case models.FuelElectric:
		if s.Boiler != nil {
			return fmt.Errorf("%w: both gas boiler and electric resistance configured for residual heating", ErrInconsistentScenario)
		}
	default:
		return fmt.Errorf("%w: residual heating fuel %q is not gas or electric", ErrInconsistentScenario, s.Config.ResidualHeatingFuel)
	}

	if s.AWHPCooling != nil && s.AWHPHeating == nil {
		return fmt.Errorf("%w: AWHP cooling requires an AWHP heating phase to source the unit count", ErrInconsistentScenario)
	}

	if e := s.HRWWHP; e != nil {
		if e.RatedCapacityKW <= 0 {
			return fmt.Errorf("%w: HR WWHP %q needs a positive rated capacity", ErrInvalidInput, e.ID)
		}
		if e.TurndownFraction < 0 || e.TurndownFraction >= 1 {
			return fmt.Errorf("%w: HR WWHP %q turndown %g outside [0,1)", ErrInvalidInput, e.ID, e.TurndownFraction)
		}
		if err := validateCurve("HR WWHP COP", e.COPCurve, true); err != nil {
			return err
		}
		if e.CapacityCurve != nil {
			if err := validateCurve("HR WWHP capacity", e.CapacityCurve, true); err != nil {
				return err
			}
		}
	}

	for _, awhp := range []*models.EquipmentSpec{s.AWHPHeating, s.AWHPCooling} {
		if awhp == nil {
			continue
		}
		if err := validateCurve(string(awhp.Type)+" capacity", awhp.CapacityCurve, true); err != nil {
			return err
		}
		if err := validateCurve(string(awhp.Type)+" COP", awhp.COPCurve, true); err != nil {
			return err
		}
	}

	if s.AWHPHeating != nil {
		sz := s.Config.AWHPSizing
		switch sz.Mode {
		case models.SizingFixedUnits, models.SizingPeakFraction:
			if sz.Value <= 0 {
				return fmt.Errorf("%w: AWHP sizing value must be positive, got %g", ErrInvalidInput, sz.Value)
			}
		default:
			return fmt.Errorf("%w: AWHP sizing mode %q unknown", ErrInvalidInput, sz.Mode)
		}
	}

	if b := s.Boiler; b != nil {
		if b.Efficiency <= 0 {
			return fmt.Errorf("%w: boiler %q needs a positive efficiency", ErrInvalidInput, b.ID)
		}
		if b.AuxElectricFraction < 0 {
			return fmt.Errorf("%w: boiler %q auxiliary electric fraction is negative", ErrInvalidInput, b.ID)
		}
	}

	if s.ChillerCOP <= 0 {
		return fmt.Errorf("%w: chiller COP must be positive, got %g", ErrInvalidInput, s.ChillerCOP)
	}

	return nil
}

// ValidateEmissionsConfig checks the emissions scenario options.
func ValidateEmissionsConfig(c models.EmissionsConfig) error {
	if len(c.Years) == 0 {
		return fmt.Errorf("%w: emissions config has no years", ErrInvalidInput)
	}
	switch c.RateType {
	case models.RateCombustionOnly, models.RateWithPrecomb:
	default:
		return fmt.Errorf("%w: rate type %q unknown", ErrInvalidInput, c.RateType)
	}
	switch c.Weighting {
	case models.WeightShortRun, models.WeightLongRun:
	case models.WeightBlended:
		if c.ShortRunShare < 0 || c.ShortRunShare > 1 {
			return fmt.Errorf("%w: blended short-run share %g outside [0,1]", ErrInvalidInput, c.ShortRunShare)
		}
	default:
		return fmt.Errorf("%w: weighting %q unknown", ErrInvalidInput, c.Weighting)
	}
	return nil
}
