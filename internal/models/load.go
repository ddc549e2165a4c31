package models

import "time"

// HourRecord is one hour of the canonical load profile.
// Loads are thermal demand in kW; over one hour this equals kWh of heat.
type HourRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	HeatingKW    float64   `json:"heating_kw"`
	CoolingKW    float64   `json:"cooling_kw"`
	OutdoorTempC float64   `json:"outdoor_temp_c"`
}

// LoadProfile is an ordered hourly timeline of building thermal demand.
// Schema: timestamp | outdoor_temp_c | heating_kw | cooling_kw.
type LoadProfile struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Hours []HourRecord `json:"hours"`
}

// PeakHeatingKW returns the maximum heating load across the profile.
func (p *LoadProfile) PeakHeatingKW() float64 {
	peak := 0.0
	for _, h := range p.Hours {
		if h.HeatingKW > peak {
			peak = h.HeatingKW
		}
	}
	return peak
}

// PeakCoolingKW returns the maximum cooling load across the profile.
func (p *LoadProfile) PeakCoolingKW() float64 {
	peak := 0.0
	for _, h := range p.Hours {
		if h.CoolingKW > peak {
			peak = h.CoolingKW
		}
	}
	return peak
}
