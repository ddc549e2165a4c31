package models

import "time"

// HoursPerYear is the non-leap-year hour count used throughout the engine,
// including the uniform refrigerant-emissions spread.
const HoursPerYear = 8760

// EquipmentOutput is the contribution of one dispatch phase in one hour.
// Active distinguishes "ran with zero load" from "not in play this hour"
// (absent equipment, or an HR WWHP below its turndown).
type EquipmentOutput struct {
	Active          bool    `json:"active"`
	ServedHeatingKW float64 `json:"served_heating_kw,omitempty"`
	ServedCoolingKW float64 `json:"served_cooling_kw,omitempty"`
	ElectricityKWh  float64 `json:"electricity_kwh,omitempty"`
	GasKWh          float64 `json:"gas_kwh,omitempty"`
	CapacityKW      float64 `json:"capacity_kw,omitempty"`
	COP             float64 `json:"cop,omitempty"`
}

// HourDispatch is the per-hour outcome of the six-phase cascade.
type HourDispatch struct {
	Timestamp    time.Time `json:"timestamp"`
	OutdoorTempC float64   `json:"outdoor_temp_c"`

	HRWWHP      EquipmentOutput `json:"hr_wwhp"`
	AWHPHeating EquipmentOutput `json:"awhp_heating"`
	Boiler      EquipmentOutput `json:"boiler"`
	Resistance  EquipmentOutput `json:"resistance"`
	AWHPCooling EquipmentOutput `json:"awhp_cooling"`
	Chiller     EquipmentOutput `json:"chiller"`

	ElectricityKWh float64 `json:"electricity_kwh"`
	GasKWh         float64 `json:"gas_kwh"`

	// Residual load after the final phases. Zero by construction while the
	// boiler/resistance/chiller stages are uncapped; kept visible so a
	// future capped final stage cannot silently drop load.
	UnservedHeatingKW float64 `json:"unserved_heating_kw"`
	UnservedCoolingKW float64 `json:"unserved_cooling_kw"`

	// CurveClamped marks hours where any curve lookup fell outside its
	// tabulated domain and was clamped to the boundary point.
	CurveClamped bool `json:"curve_clamped,omitempty"`
}

// DispatchResult is the full hourly site-energy picture for one scenario.
type DispatchResult struct {
	ScenarioID    string         `json:"scenario_id"`
	AWHPUnitCount int            `json:"awhp_unit_count"`
	Hours         []HourDispatch `json:"hours"`

	TotalElectricityKWh float64 `json:"total_electricity_kwh"`
	TotalGasKWh         float64 `json:"total_gas_kwh"`
	CurveClampedHours   int     `json:"curve_clamped_hours"`
}

// HourEmissions is one hour of carbon accounting, in kgCO2e.
type HourEmissions struct {
	Timestamp       time.Time `json:"timestamp"`
	ElecRate        float64   `json:"elec_rate_g_per_kwh"`
	ElectricityKg   float64   `json:"electricity_kg"`
	GasKg           float64   `json:"gas_kg"`
	RefrigerantKg   float64   `json:"refrigerant_kg"`
}

// YearEmissions is the aligned hourly series and annual totals for one
// requested grid year.
type YearEmissions struct {
	Year  int             `json:"year"`
	Hours []HourEmissions `json:"hours,omitempty"`

	ElectricityKg float64 `json:"electricity_kg"`
	GasKg         float64 `json:"gas_kg"`
	RefrigerantKg float64 `json:"refrigerant_kg"`
	TotalKg       float64 `json:"total_kg"`
}

// EmissionsResult holds per-year emissions for one scenario pairing,
// ordered by year ascending.
type EmissionsResult struct {
	ScenarioID        string          `json:"scenario_id"`
	EmissionsConfigID string          `json:"emissions_config_id"`
	Years             []YearEmissions `json:"years"`
}

// Year returns the entry for the given grid year, or nil.
func (r *EmissionsResult) Year(y int) *YearEmissions {
	for i := range r.Years {
		if r.Years[i].Year == y {
			return &r.Years[i]
		}
	}
	return nil
}
