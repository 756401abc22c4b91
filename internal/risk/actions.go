package risk

// Dashboard engine actions.
const (
	ActionPowerSaving = "Rotate solar panels + power saving mode"
	ActionCooling     = "Activate cooling system"
	ActionAntenna     = "Reorient antenna"
	ActionStable      = "All systems stable"
)

// Assistant actions, rendered bilingually.
const (
	AssistantPowerSaving = "🔋 Power-saving mode / Энергия үнемдеу режимі"
	AssistantThermal     = "🌡 Thermal control + reduce load / Салқындату + жүктемені азайту"
	AssistantAntenna     = "📡 Adjust antenna + backup comms / Антеннаны түзету + резерв байланыс"
	AssistantNominal     = "✅ Nominal ops + monitoring / Қалыпты жұмыс + бақылау"
)

// DashboardActions returns what the "Let AI Analyze" engine recommends.
// The result is never empty and is ordered energy, temperature, signal.
func DashboardActions(energy, temperature, signal int) []string {
	var actions []string
	if energy < 35 {
		actions = append(actions, ActionPowerSaving)
	}
	if temperature > 75 {
		actions = append(actions, ActionCooling)
	}
	if signal < 45 {
		actions = append(actions, ActionAntenna)
	}
	if len(actions) == 0 {
		actions = append(actions, ActionStable)
	}
	return actions
}

// AssistantActions returns the recommendations quoted in assistant answers.
// Thresholds are 40/70/40, not the dashboard's 35/75/45.
func AssistantActions(energy, temperature, signal int) []string {
	var actions []string
	if energy < 40 {
		actions = append(actions, AssistantPowerSaving)
	}
	if temperature > 70 {
		actions = append(actions, AssistantThermal)
	}
	if signal < 40 {
		actions = append(actions, AssistantAntenna)
	}
	if len(actions) == 0 {
		actions = append(actions, AssistantNominal)
	}
	return actions
}
