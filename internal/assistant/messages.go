package assistant

import "qazaqspace/internal/risk"

// Message keys a fixed bilingual text.
type Message int

const (
	BatteryCritical Message = iota
	BatteryLow
	BatteryOK
	SignalCritical
	SignalWeak
	SignalStable
	TemperatureOverheat
	TemperatureElevated
	TemperatureNormal
	Fallback
	ReportHeader
	ReportBattery
	ReportTemperature
	ReportSignal
	ReportRiskLevel
	RiskHeader
	ActionsHeader
	EmptyQuery
)

var messages = map[Message]string{
	BatteryCritical:     "🔋 Battery CRITICAL / Қуат өте төмен. ✅ Actions: power-saving, disable non-essential modules.",
	BatteryLow:          "🔋 Battery LOW / Қуат төмен. ✅ Actions: optimize power usage, limit high-load tasks.",
	BatteryOK:           "🔋 Battery OK / Қуат қалыпты. ✅ Continue monitoring.",
	SignalCritical:      "📡 Signal LOST/CRITICAL / Байланыс өте әлсіз. ✅ Actions: reorient antenna, backup channel.",
	SignalWeak:          "📡 Signal WEAK / Байланыс әлсіз. ✅ Actions: fine-tune antenna, reduce bandwidth.",
	SignalStable:        "📡 Signal STABLE / Байланыс тұрақты.",
	TemperatureOverheat: "🌡 OVERHEAT / Қызу жоғары! ✅ Actions: thermal protection, reduce CPU load.",
	TemperatureElevated: "🌡 Temperature elevated / Температура көтерілген. ✅ Monitor trend, reduce workload if rising.",
	TemperatureNormal:   "🌡 Temperature normal / Температура қалыпты.",
	Fallback:            "Мен тек спутник телеметриясы бойынша жауап беремін.\nСұрақ үлгілері: status, risk, battery, signal, temperature, what to do.",
	ReportHeader:        "📊 System Report / Жүйе есебі:",
	ReportBattery:       "- Battery / Қуат: %d%%",
	ReportTemperature:   "- Temperature / Температура: %d°C",
	ReportSignal:        "- Signal / Сигнал: %d%%",
	ReportRiskLevel:     "⚙️ Risk Level / Қауіп деңгейі: %s (%d/100)",
	RiskHeader:          "⚠️ Risk / Қауіп: %s (%d/100)",
	ActionsHeader:       "✅ Recommended actions / Ұсыныстар:",
	EmptyQuery:          "Сұрақ жазып жібер / Please type a question.",
}

// Text returns the bilingual text for a message key.
func Text(m Message) string {
	return messages[m]
}

// TierLabel renders a risk tier the way the assistant prints it.
func TierLabel(t risk.Tier) string {
	switch t {
	case risk.High:
		return "HIGH / ЖОҒАРЫ"
	case risk.Medium:
		return "MEDIUM / ОРТАША"
	default:
		return "LOW / ТӨМЕН"
	}
}

func batteryMessage(energy int) Message {
	switch {
	case energy < 20:
		return BatteryCritical
	case energy < 40:
		return BatteryLow
	default:
		return BatteryOK
	}
}

func signalMessage(signal int) Message {
	switch {
	case signal < 20:
		return SignalCritical
	case signal < 40:
		return SignalWeak
	default:
		return SignalStable
	}
}

func temperatureMessage(temp int) Message {
	switch {
	case temp > 80:
		return TemperatureOverheat
	case temp > 60:
		return TemperatureElevated
	default:
		return TemperatureNormal
	}
}
