package engine

import (
	"fmt"
	"time"

	"decarb_pathways/internal/models"
)

// rateKey addresses the monthly×hourly rate table.
type rateKey struct {
	Month time.Month
	Hour  int
}

// RateTable is the reduced grid-emissions dataset: one averaged electricity
// rate (gCO2e/kWh) per {month, hour-of-day} key.
type RateTable map[rateKey]float64

// ReduceRates collapses dataset rows (already filtered to one grid scenario
// and region) into a RateTable. Per row, short-run and long-run marginal
// rates blend per the configured weighting, and the pre-combustion adder is
// included when the rate type asks for it; rows sharing a {month, hour} key
// across source years are then averaged.
//
// The reduction must complete before any per-hour lookup: averages depend on
// the full set of matching rows.
func ReduceRates(rows []models.EmissionsRow, cfg models.EmissionsConfig) (RateTable, error) {
	if err := ValidateEmissionsConfig(cfg); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no dataset rows for scenario %q region %q",
			ErrMissingEmissionsRate, cfg.GridScenario, cfg.GridRegion)
	}

	w := cfg.ShortRunWeight()
	sums := make(map[rateKey]float64)
	counts := make(map[rateKey]int)

	for i, r := range rows {
		if r.Month < 1 || r.Month > 12 || r.HourOfDay < 0 || r.HourOfDay > 23 {
			return nil, fmt.Errorf("%w: dataset row %d has month=%d hour=%d", ErrInvalidInput, i, r.Month, r.HourOfDay)
		}
		lr := r.LRCombustion
		sr := r.SRCombustion
		if cfg.RateType == models.RateWithPrecomb {
			lr += r.LRPrecombustion
			sr += r.SRPrecombustion
		}
		k := rateKey{Month: time.Month(r.Month), Hour: r.HourOfDay}
		sums[k] += lr*(1-w) + sr*w
		counts[k]++
	}

	table := make(RateTable, len(sums))
	for k, s := range sums {
		table[k] = s / float64(counts[k])
	}
	return table, nil
}

// AlignRates maps the reduced table onto the load timeline: for each profile
// hour, the averaged rate for its {month, hour-of-day}. This is a
// monthly×hourly approximation of a true hourly series. A key missing from
// the table is fatal; silently defaulting it would bias annual totals.
func AlignRates(profile *models.LoadProfile, table RateTable) ([]float64, error) {
	rates := make([]float64, len(profile.Hours))
	for i, h := range profile.Hours {
		k := rateKey{Month: h.Timestamp.Month(), Hour: h.Timestamp.Hour()}
		rate, ok := table[k]
		if !ok {
			return nil, fmt.Errorf("%w: no rate for month=%d hour=%d (profile hour %d)",
				ErrMissingEmissionsRate, k.Month, k.Hour, i)
		}
		rates[i] = rate
	}
	return rates, nil
}
