package models

// EquipmentType identifies the dispatch role of a unit.
type EquipmentType string

const (
	TypeHRWWHP      EquipmentType = "HR_WWHP"      // heat-recovery water-to-water heat pump
	TypeAWHPHeating EquipmentType = "AWHP_HEATING" // air-to-water heat pump, heating mode
	TypeAWHPCooling EquipmentType = "AWHP_COOLING" // air-to-water heat pump, cooling mode
	TypeBoiler      EquipmentType = "BOILER"
	TypeResistance  EquipmentType = "RESISTANCE"
	TypeChiller     EquipmentType = "CHILLER"
)

// Curve is a tabulated performance curve. X is part-load ratio for the
// HR WWHP and outdoor air temperature (°C) for AWHP units. Points need not
// arrive sorted; the engine sorts before evaluating.
type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Refrigerant holds the leakage-emissions metadata of a unit.
type Refrigerant struct {
	Name        string  `json:"name,omitempty"`
	GWP         float64 `json:"gwp"`                    // kgCO2e per kg leaked
	ChargeKg    float64 `json:"charge_kg"`              // installed charge
	LeakageRate float64 `json:"leakage_rate,omitempty"` // fraction per year; 0 falls back to the scenario default
}

// EquipmentSpec describes one equipment model in the library.
// Which fields apply depends on Type:
//   - HR_WWHP: RatedCapacityKW, TurndownFraction, CapacityCurve/COPCurve over PLR
//   - AWHP_*:  CapacityCurve/COPCurve over outdoor air temperature
//   - BOILER:  Efficiency (thermal), AuxElectricFraction
//   - CHILLER: FixedCOP
//
// Resistance heating has no library entry; it is an implicit COP=1 fallback.
type EquipmentSpec struct {
	ID                  string        `json:"id"`
	Type                EquipmentType `json:"type"`
	Model               string        `json:"model"`
	RatedCapacityKW     float64       `json:"rated_capacity_kw,omitempty"`
	CapacityCurve       *Curve        `json:"capacity_curve,omitempty"`
	COPCurve            *Curve        `json:"cop_curve,omitempty"`
	TurndownFraction    float64       `json:"turndown_fraction,omitempty"`
	Efficiency          float64       `json:"efficiency,omitempty"`
	AuxElectricFraction float64       `json:"aux_electric_fraction,omitempty"`
	FixedCOP            float64       `json:"fixed_cop,omitempty"`
	Refrigerant         *Refrigerant  `json:"refrigerant,omitempty"`
}

// SizingMode selects how the AWHP unit count is derived.
type SizingMode string

const (
	SizingFixedUnits   SizingMode = "fixed_units"
	SizingPeakFraction SizingMode = "peak_fraction"
)

// AWHPSizing fixes the heating AWHP fleet size for a scenario. With
// peak_fraction, Value is the share of peak heating load the fleet must
// cover at the cold design temperature.
type AWHPSizing struct {
	Mode  SizingMode `json:"mode"`
	Value float64    `json:"value"`
}

// ResidualFuel selects how heating load left after the heat pumps is served.
type ResidualFuel string

const (
	FuelGas      ResidualFuel = "gas"      // gas boiler
	FuelElectric ResidualFuel = "electric" // resistance heating, COP=1
)

// ScenarioConfig is a user-selected equipment configuration referencing
// library entries by id. Dispatch order is fixed by role, not by the user.
type ScenarioConfig struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	HRWWHPID            string       `json:"hr_wwhp_id,omitempty"`
	AWHPHeatingID       string       `json:"awhp_heating_id,omitempty"`
	AWHPCoolingID       string       `json:"awhp_cooling_id,omitempty"`
	AWHPSizing          AWHPSizing   `json:"awhp_sizing,omitempty"`
	ResidualHeatingFuel ResidualFuel `json:"residual_heating_fuel"`
	BoilerID            string       `json:"boiler_id,omitempty"`
	ChillerCOP          float64      `json:"chiller_cop,omitempty"` // 0 uses the configured default
}

// Scenario is a ScenarioConfig with its equipment references resolved
// against the library. This is what the engine consumes; it is read-only
// during dispatch.
type Scenario struct {
	Config      ScenarioConfig
	HRWWHP      *EquipmentSpec
	AWHPHeating *EquipmentSpec
	AWHPCooling *EquipmentSpec
	Boiler      *EquipmentSpec
	ChillerCOP  float64
}

// Equipment returns the resolved specs present in the scenario, in
// dispatch order.
func (s *Scenario) Equipment() []*EquipmentSpec {
	var out []*EquipmentSpec
	for _, e := range []*EquipmentSpec{s.HRWWHP, s.AWHPHeating, s.Boiler, s.AWHPCooling} {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
