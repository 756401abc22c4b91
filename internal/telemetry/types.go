// Satellite telemetry sample and its input domains
package telemetry

import "fmt"

// Sample holds the three sensor readings the dashboard works with.
type Sample struct {
	Energy      int `json:"energy" yaml:"energy"`           // percent
	Temperature int `json:"temperature" yaml:"temperature"` // °C
	Signal      int `json:"signal" yaml:"signal"`           // percent
}

// Field identifies one of the telemetry readings.
type Field int

const (
	Energy Field = iota
	Temperature
	Signal
)

// Fields lists the readings in display order.
var Fields = []Field{Energy, Temperature, Signal}

// Input domains.
const (
	PercentMin     = 0
	PercentMax     = 100
	TemperatureMin = -50
	TemperatureMax = 150

	// GaugeDangerThreshold is the fixed red marker drawn on every gauge.
	GaugeDangerThreshold = 85
)

// Default returns the sample a new session starts with.
func Default() Sample {
	return Sample{Energy: 65, Temperature: 45, Signal: 70}
}

// Range returns the inclusive input bounds for the field.
func (f Field) Range() (lo, hi int) {
	if f == Temperature {
		return TemperatureMin, TemperatureMax
	}
	return PercentMin, PercentMax
}

// Unit returns the display unit suffix.
func (f Field) Unit() string {
	if f == Temperature {
		return "°C"
	}
	return "%"
}

// Label returns the control panel label.
func (f Field) Label() string {
	switch f {
	case Energy:
		return "Energy"
	case Temperature:
		return "Temperature"
	case Signal:
		return "Signal"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// GaugeLabel returns the title used on the live gauges.
func (f Field) GaugeLabel() string {
	switch f {
	case Energy:
		return "Battery Level"
	case Temperature:
		return "Temperature"
	case Signal:
		return "Signal Strength"
	}
	return f.Label()
}

func (f Field) String() string { return f.Label() }

// ParseField maps a name such as "energy" or "temp" to a Field.
func ParseField(name string) (Field, error) {
	switch name {
	case "energy", "battery":
		return Energy, nil
	case "temperature", "temp":
		return Temperature, nil
	case "signal":
		return Signal, nil
	}
	return 0, fmt.Errorf("unknown telemetry field %q", name)
}

// Clamp limits v to the field's input domain.
func (f Field) Clamp(v int) int {
	lo, hi := f.Range()
	return clamp(v, lo, hi)
}

// Get returns the value of a field.
func (s Sample) Get(f Field) int {
	switch f {
	case Energy:
		return s.Energy
	case Temperature:
		return s.Temperature
	default:
		return s.Signal
	}
}

// With returns a copy of s with f set to v, clamped to the field's domain.
func (s Sample) With(f Field, v int) Sample {
	v = f.Clamp(v)
	switch f {
	case Energy:
		s.Energy = v
	case Temperature:
		s.Temperature = v
	case Signal:
		s.Signal = v
	}
	return s
}

// Adjust moves a field by delta steps, staying inside its domain.
func (s Sample) Adjust(f Field, delta int) Sample {
	return s.With(f, s.Get(f)+delta)
}

// Clamp returns s with every field forced into its input domain.
func (s Sample) Clamp() Sample {
	for _, f := range Fields {
		s = s.With(f, s.Get(f))
	}
	return s
}

// GaugeValue returns the field on the 0..100 gauge scale. Temperature is
// clamped here independently of its wider input domain.
func (s Sample) GaugeValue(f Field) int {
	return clamp(s.Get(f), PercentMin, PercentMax)
}

func (s Sample) String() string {
	return fmt.Sprintf("energy=%d%% temperature=%d°C signal=%d%%", s.Energy, s.Temperature, s.Signal)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
