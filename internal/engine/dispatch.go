package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"decarb_pathways/internal/models"
)

// hourState is the remaining load threaded through the six phases of one
// hour. Each phase takes a state and returns a new one; nothing is shared
// across hours.
type hourState struct {
	remHeatKW float64
	remCoolKW float64
}

// Allocate runs the six-phase cascading dispatch over every hour of the
// profile and returns the per-hour, per-equipment site-energy result.
//
// Phase order is fixed by equipment role:
//  1. HR WWHP on the heating/cooling overlap (turndown cut-out)
//  2. heating AWHPs up to fleet capacity at the hour's outdoor temperature
//  3. gas boiler or 4. electric resistance on residual heating (exclusive)
//  5. cooling AWHPs reusing the heating fleet size
//  6. electric chiller on residual cooling
//
// Hours are independent, so they are dispatched in parallel; only the AWHP
// fleet size is computed up front and shared read-only.
func Allocate(ctx context.Context, profile *models.LoadProfile, scen *models.Scenario) (*models.DispatchResult, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	if err := ValidateScenario(scen); err != nil {
		return nil, err
	}

	units, err := awhpUnitCount(scen, profile)
	if err != nil {
		return nil, err
	}

	res := &models.DispatchResult{
		ScenarioID:    scen.Config.ID,
		AWHPUnitCount: units,
		Hours:         make([]models.HourDispatch, len(profile.Hours)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	const chunk = 512
	for start := 0; start < len(profile.Hours); start += chunk {
		end := min(start+chunk, len(profile.Hours))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				res.Hours[i] = allocateHour(scen, units, profile.Hours[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range res.Hours {
		res.TotalElectricityKWh += res.Hours[i].ElectricityKWh
		res.TotalGasKWh += res.Hours[i].GasKWh
		if res.Hours[i].CurveClamped {
			res.CurveClampedHours++
		}
	}
	return res, nil
}

// allocateHour folds one hour's loads through the six phases.
func allocateHour(scen *models.Scenario, units int, rec models.HourRecord) models.HourDispatch {
	hd := models.HourDispatch{
		Timestamp:    rec.Timestamp,
		OutdoorTempC: rec.OutdoorTempC,
	}
	st := hourState{remHeatKW: rec.HeatingKW, remCoolKW: rec.CoolingKW}
	clamped := false

	st = phaseHeatRecovery(scen.HRWWHP, st, &hd.HRWWHP, &clamped)
	st = phaseAWHPHeating(scen.AWHPHeating, units, rec.OutdoorTempC, st, &hd.AWHPHeating, &clamped)
	if scen.Config.ResidualHeatingFuel == models.FuelGas {
		st = phaseBoiler(scen.Boiler, st, &hd.Boiler)
	} else {
		st = phaseResistance(st, &hd.Resistance)
	}
	st = phaseAWHPCooling(scen.AWHPCooling, units, rec.OutdoorTempC, st, &hd.AWHPCooling, &clamped)
	st = phaseChiller(scen.ChillerCOP, st, &hd.Chiller)

	for _, out := range []models.EquipmentOutput{hd.HRWWHP, hd.AWHPHeating, hd.Boiler, hd.Resistance, hd.AWHPCooling, hd.Chiller} {
		hd.ElectricityKWh += out.ElectricityKWh
		hd.GasKWh += out.GasKWh
	}
	hd.UnservedHeatingKW = st.remHeatKW
	hd.UnservedCoolingKW = st.remCoolKW
	hd.CurveClamped = clamped
	return hd
}

// phaseHeatRecovery dispatches the HR WWHP on the simultaneous portion of
// heating and cooling demand. Below the turndown PLR the unit does not run
// at all; there is no partial or cycling credit.
func phaseHeatRecovery(e *models.EquipmentSpec, st hourState, out *models.EquipmentOutput, clamped *bool) hourState {
	if e == nil {
		return st
	}
	overlap := min(st.remHeatKW, st.remCoolKW)
	if overlap <= 0 {
		return st
	}

	plr := overlap / e.RatedCapacityKW
	if plr < e.TurndownFraction {
		return st
	}

	served := min(overlap, e.RatedCapacityKW)
	plrServed := served / e.RatedCapacityKW

	cop, c := evalCurve(e.COPCurve, plrServed)
	*clamped = *clamped || c

	capKW := e.RatedCapacityKW
	if e.CapacityCurve != nil {
		var cc bool
		capKW, cc = evalCurve(e.CapacityCurve, plrServed)
		*clamped = *clamped || cc
	}

	out.Active = true
	out.ServedHeatingKW = served
	out.ServedCoolingKW = served
	out.ElectricityKWh = served / cop
	out.CapacityKW = capKW
	out.COP = cop

	st.remHeatKW -= served
	st.remCoolKW -= served
	return st
}

// phaseAWHPHeating serves residual heating up to the fleet's capacity at
// the hour's outdoor temperature.
func phaseAWHPHeating(e *models.EquipmentSpec, units int, oatC float64, st hourState, out *models.EquipmentOutput, clamped *bool) hourState {
	if e == nil || units <= 0 {
		return st
	}

	capUnit, c1 := evalCurve(e.CapacityCurve, oatC)
	cop, c2 := evalCurve(e.COPCurve, oatC)
	*clamped = *clamped || c1 || c2

	available := float64(units) * capUnit
	served := min(st.remHeatKW, available)
	if served < 0 {
		served = 0
	}

	out.Active = true
	out.ServedHeatingKW = served
	out.ElectricityKWh = served / cop
	out.CapacityKW = available
	out.COP = cop

	st.remHeatKW -= served
	return st
}

// phaseBoiler covers all residual heating with gas. The boiler is modeled
// as uncapped; a small auxiliary electric draw scales with served load.
func phaseBoiler(e *models.EquipmentSpec, st hourState, out *models.EquipmentOutput) hourState {
	served := st.remHeatKW
	if served <= 0 {
		st.remHeatKW = 0
		return st
	}
	out.Active = true
	out.ServedHeatingKW = served
	out.GasKWh = served / e.Efficiency
	out.ElectricityKWh = served * e.AuxElectricFraction
	st.remHeatKW = 0
	return st
}

// phaseResistance covers all residual heating electrically at COP 1.
func phaseResistance(st hourState, out *models.EquipmentOutput) hourState {
	served := st.remHeatKW
	if served <= 0 {
		st.remHeatKW = 0
		return st
	}
	out.Active = true
	out.ServedHeatingKW = served
	out.ElectricityKWh = served
	out.COP = 1.0
	st.remHeatKW = 0
	return st
}

// phaseAWHPCooling serves residual cooling with the same fleet size the
// heating phase computed. Cooling capacity is not sized independently.
func phaseAWHPCooling(e *models.EquipmentSpec, units int, oatC float64, st hourState, out *models.EquipmentOutput, clamped *bool) hourState {
	if e == nil || units <= 0 {
		return st
	}

	capUnit, c1 := evalCurve(e.CapacityCurve, oatC)
	cop, c2 := evalCurve(e.COPCurve, oatC)
	*clamped = *clamped || c1 || c2

	available := float64(units) * capUnit
	served := min(st.remCoolKW, available)
	if served < 0 {
		served = 0
	}

	out.Active = true
	out.ServedCoolingKW = served
	out.ElectricityKWh = served / cop
	out.CapacityKW = available
	out.COP = cop

	st.remCoolKW -= served
	return st
}

// phaseChiller covers all residual cooling with an uncapped fixed-COP
// electric chiller.
func phaseChiller(cop float64, st hourState, out *models.EquipmentOutput) hourState {
	served := st.remCoolKW
	if served <= 0 {
		st.remCoolKW = 0
		return st
	}
	out.Active = true
	out.ServedCoolingKW = served
	out.ElectricityKWh = served / cop
	out.COP = cop
	st.remCoolKW = 0
	return st
}
