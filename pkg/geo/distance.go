// pkg/geo/distance.go - Distance and metric types
package geo

import (
	"fmt"
	"strings"
)

// Metric is the unit a Distance is expressed in
type Metric int

const (
	Neutral Metric = iota
	Kilometers
	Miles
)

type metricInfo struct {
	name         string
	abbreviation string
	multiplier   float64
}

// Multipliers are the earth radius in the given unit, so dividing by them
// yields radians.
var metrics = map[Metric]metricInfo{
	Neutral:    {name: "NEUTRAL", abbreviation: "", multiplier: 1},
	Kilometers: {name: "KILOMETERS", abbreviation: "km", multiplier: 6378.137},
	Miles:      {name: "MILES", abbreviation: "mi", multiplier: 3963.191},
}

// ParseMetric resolves a metric from its name or abbreviation, ignoring case
func ParseMetric(s string) (Metric, error) {
	for m, info := range metrics {
		if strings.EqualFold(s, info.name) || (info.abbreviation != "" && strings.EqualFold(s, info.abbreviation)) {
			return m, nil
		}
	}
	return Neutral, fmt.Errorf("unknown metric: %q", s)
}

// IsValid checks if the metric is one of the known units
func (m Metric) IsValid() bool {
	_, ok := metrics[m]
	return ok
}

// IsNeutral reports whether the metric is the unitless one
func (m Metric) IsNeutral() bool {
	return m == Neutral
}

// Multiplier returns the earth radius expressed in the metric
func (m Metric) Multiplier() float64 {
	if info, ok := metrics[m]; ok {
		return info.multiplier
	}
	return 1
}

// Abbreviation returns the short unit name, empty for Neutral
func (m Metric) Abbreviation() string {
	return metrics[m].abbreviation
}

// String returns the metric name as stored in documents
func (m Metric) String() string {
	if info, ok := metrics[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler
func (m Metric) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid metric %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Metric) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = Neutral
		return nil
	}
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Distance is a value together with the metric it is measured in
type Distance struct {
	Value  float64 `json:"value"`
	Metric Metric  `json:"metric"`
}

// NewDistance creates a unitless distance
func NewDistance(value float64) Distance {
	return Distance{Value: value, Metric: Neutral}
}

// NewDistanceIn creates a distance in the given metric
func NewDistanceIn(value float64, metric Metric) Distance {
	return Distance{Value: value, Metric: metric}
}

// Normalized returns the value divided by the metric multiplier. For the
// earth metrics this is the distance in radians.
func (d Distance) Normalized() float64 {
	return d.Value / d.Metric.Multiplier()
}

// String returns a string representation of the distance
func (d Distance) String() string {
	if d.Metric.IsNeutral() {
		return fmt.Sprintf("%g", d.Value)
	}
	return fmt.Sprintf("%g%s", d.Value, d.Metric.Abbreviation())
}
