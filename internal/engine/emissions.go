package engine

import (
	"fmt"
	"sort"

	"decarb_pathways/internal/models"
)

const gramsPerKg = 1000.0

// AnnualRefrigerantKg sums the yearly refrigerant leakage emissions of the
// scenario's equipment: GWP × charge × leakage rate per unit, in kgCO2e.
// Units without their own leakage rate use the config default.
func AnnualRefrigerantKg(scen *models.Scenario, cfg models.EmissionsConfig) float64 {
	total := 0.0
	for _, e := range scen.Equipment() {
		r := e.Refrigerant
		if r == nil {
			continue
		}
		leak := r.LeakageRate
		if leak == 0 {
			leak = cfg.LeakageRate()
		}
		total += r.GWP * r.ChargeKg * leak
	}
	return total
}

// ComputeEmissions combines the dispatch result with aligned electricity
// rates into per-hour and per-year emissions, one timeline per requested
// grid year.
//
// Gas burns at the fixed configured rate; it does not vary by hour.
// Refrigerant leakage is an annual quantity spread uniformly across the
// 8760-hour year regardless of run hours — an accounting convention, not a
// physical leak schedule.
func ComputeEmissions(dispatch *models.DispatchResult, rates []float64, scen *models.Scenario, cfg models.EmissionsConfig) (*models.EmissionsResult, error) {
	if err := ValidateEmissionsConfig(cfg); err != nil {
		return nil, err
	}
	if len(rates) != len(dispatch.Hours) {
		return nil, fmt.Errorf("%w: %d aligned rates for %d dispatch hours", ErrInvalidInput, len(rates), len(dispatch.Hours))
	}

	gasRate := cfg.GasRate()
	refrigPerHourKg := AnnualRefrigerantKg(scen, cfg) / models.HoursPerYear

	years := append([]int(nil), cfg.Years...)
	sort.Ints(years)

	res := &models.EmissionsResult{
		ScenarioID:        dispatch.ScenarioID,
		EmissionsConfigID: cfg.ID,
		Years:             make([]models.YearEmissions, 0, len(years)),
	}

	for _, year := range years {
		ye := models.YearEmissions{
			Year:  year,
			Hours: make([]models.HourEmissions, len(dispatch.Hours)),
		}
		for i, h := range dispatch.Hours {
			he := models.HourEmissions{
				Timestamp:     h.Timestamp,
				ElecRate:      rates[i],
				ElectricityKg: h.ElectricityKWh * rates[i] / gramsPerKg,
				GasKg:         h.GasKWh * gasRate / gramsPerKg,
				RefrigerantKg: refrigPerHourKg,
			}
			ye.Hours[i] = he
			ye.ElectricityKg += he.ElectricityKg
			ye.GasKg += he.GasKg
			ye.RefrigerantKg += he.RefrigerantKg
		}
		ye.TotalKg = ye.ElectricityKg + ye.GasKg + ye.RefrigerantKg
		res.Years = append(res.Years, ye)
	}
	return res, nil
}
