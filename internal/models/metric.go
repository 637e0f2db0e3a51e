package models

import "time"

type MetricType string

const (
	MetricStrength    MetricType = "Strength"
	MetricEndurance   MetricType = "Endurance"
	MetricSpeed       MetricType = "Speed"
	MetricFlexibility MetricType = "Flexibility"
	MetricPower       MetricType = "Power"
)

// MetricTypes lists the recordable metric types in display order.
var MetricTypes = []MetricType{
	MetricStrength,
	MetricEndurance,
	MetricSpeed,
	MetricFlexibility,
	MetricPower,
}

// metricUnits constrains the unit domain per metric type. The first entry is
// the default selected when the type changes.
var metricUnits = map[MetricType][]string{
	MetricStrength:    {"kg", "lbs", "reps"},
	MetricEndurance:   {"km", "miles", "minutes"},
	MetricSpeed:       {"km/h", "mph", "m/s"},
	MetricFlexibility: {"cm", "inches", "degrees"},
	MetricPower:       {"watts", "joules"},
}

// UnitsFor returns the allowed units for a metric type.
func UnitsFor(t MetricType) []string {
	return metricUnits[t]
}

// ValidUnit reports whether unit is in the domain of the metric type.
func ValidUnit(t MetricType, unit string) bool {
	for _, u := range metricUnits[t] {
		if u == unit {
			return true
		}
	}
	return false
}

// PerformanceMetric is a single recorded performance measurement.
type PerformanceMetric struct {
	ID         int        `json:"id,omitempty"`
	UserID     int        `json:"userId"`
	MetricType MetricType `json:"metricType"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	Date       time.Time  `json:"date"`
	Notes      string     `json:"notes,omitempty"`
}
