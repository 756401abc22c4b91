package scenario

import "qazaqspace/internal/telemetry"

// BuiltIn returns the emergency scenarios in control panel order.
func BuiltIn() []Scenario {
	return []Scenario{
		{
			Key:         "normal",
			Name:        "Normal",
			Description: "Nominal orbit with healthy power, thermal and link budgets.",
			Telemetry:   telemetry.Default(),
		},
		{
			Key:         "solar-storm",
			Name:        "Solar Storm",
			Description: "Charged particle event heats the bus and degrades the downlink.",
			Telemetry:   telemetry.Sample{Energy: 28, Temperature: 92, Signal: 40},
		},
		{
			Key:         "battery-failure",
			Name:        "Battery Failure",
			Description: "Cell failure drains the battery while other systems stay nominal.",
			Telemetry:   telemetry.Sample{Energy: 10, Temperature: 35, Signal: 60},
		},
		{
			Key:         "signal-lost",
			Name:        "Signal Lost",
			Description: "Antenna misalignment drops the ground link.",
			Telemetry:   telemetry.Sample{Energy: 60, Temperature: 40, Signal: 15},
		},
	}
}
