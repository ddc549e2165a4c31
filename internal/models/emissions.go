package models

// EmissionsRow is one row of the grid-emissions dataset: marginal rates for
// a {grid scenario, region, source year, month, hour-of-day} key, in
// gCO2e/kWh. LR/SR are long-run and short-run marginal estimates; the _p
// columns are pre-combustion adders.
type EmissionsRow struct {
	GridScenario    string  `json:"grid_scenario"`
	GridRegion      string  `json:"grid_region"`
	Year            int     `json:"year"`
	Month           int     `json:"month"` // 1..12
	HourOfDay       int     `json:"hour"`  // 0..23
	LRCombustion    float64 `json:"lrmer_co2e_c"`
	LRPrecombustion float64 `json:"lrmer_co2e_p"`
	SRCombustion    float64 `json:"srmer_co2e_c"`
	SRPrecombustion float64 `json:"srmer_co2e_p"`
}

// RateType selects which emissions components count toward the electricity
// rate.
type RateType string

const (
	RateCombustionOnly RateType = "combustion_only"
	RateWithPrecomb    RateType = "combustion_precombustion"
)

// Weighting selects how short-run and long-run marginal rates combine.
type Weighting string

const (
	WeightShortRun Weighting = "short_run"
	WeightLongRun  Weighting = "long_run"
	WeightBlended  Weighting = "blended"
)

// Default accounting constants, overridable per config.
const (
	DefaultGasRateGramsPerKWh = 240.0
	DefaultLeakageRate        = 0.05
)

// EmissionsConfig is a named grid-emissions scenario: which slice of the
// dataset to use and how to turn it into rates.
type EmissionsConfig struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	GridScenario       string    `json:"grid_scenario"`
	GridRegion         string    `json:"grid_region"`
	Years              []int     `json:"years"`
	RateType           RateType  `json:"rate_type"`
	Weighting          Weighting `json:"weighting"`
	ShortRunShare      float64   `json:"short_run_share,omitempty"` // used when Weighting == blended
	GasRateGramsPerKWh float64   `json:"gas_rate_g_per_kwh,omitempty"`
	DefaultLeakageRate float64   `json:"default_leakage_rate,omitempty"`
}

// GasRate returns the configured gas emissions rate, falling back to the
// default 240 gCO2e/kWh.
func (c EmissionsConfig) GasRate() float64 {
	if c.GasRateGramsPerKWh > 0 {
		return c.GasRateGramsPerKWh
	}
	return DefaultGasRateGramsPerKWh
}

// LeakageRate returns the refrigerant leakage fraction to assume for
// equipment that does not carry its own.
func (c EmissionsConfig) LeakageRate() float64 {
	if c.DefaultLeakageRate > 0 {
		return c.DefaultLeakageRate
	}
	return DefaultLeakageRate
}

// ShortRunWeight maps the weighting mode onto the short-run share used in
// the rate blend: 1 for short_run, 0 for long_run, ShortRunShare otherwise.
func (c EmissionsConfig) ShortRunWeight() float64 {
	switch c.Weighting {
	case WeightShortRun:
		return 1.0
	case WeightLongRun:
		return 0.0
	default:
		return c.ShortRunShare
	}
}
