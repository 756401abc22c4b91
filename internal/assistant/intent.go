package assistant

import "strings"

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentStatus      Intent = "status"
	IntentRisk        Intent = "risk"
	IntentBattery     Intent = "battery"
	IntentSignal      Intent = "signal"
	IntentTemperature Intent = "temperature"
	IntentRecommend   Intent = "recommend"
	IntentUnknown     Intent = "unknown"
)

// route pairs an intent with the keywords that select it.
type route struct {
	intent   Intent
	keywords []string
}

// routes are tested in order and the first hit wins. Keywords are matched as
// plain substrings, so "danger" also matches "endangered". The misspelled
// Kazakh entries are part of the accepted vocabulary.
var routes = []route{
	{IntentStatus, []string{"status", "report", "жағдай", "статус", "есеп"}},
	{IntentRisk, []string{"risk", "қауіп", "danger", "kayın", "қайын", "қауін"}},
	{IntentBattery, []string{"battery", "energy", "қуат", "батарея"}},
	{IntentSignal, []string{"signal", "communication", "байланыс", "сигнал"}},
	{IntentTemperature, []string{"temperature", "temp", "қызу", "температура"}},
	{IntentRecommend, []string{"what to do", "recommend", "ұсыныс", "не істеу", "не істейміз", "не істеу керек"}},
}

// Classify returns the first intent whose keywords occur in the lowercased,
// trimmed query.
func Classify(query string) Intent {
	text := normalize(query)
	for _, r := range routes {
		if containsAny(text, r.keywords) {
			return r.intent
		}
	}
	return IntentUnknown
}

// Intents lists the routable intents in matching order.
func Intents() []Intent {
	out := make([]Intent, len(routes))
	for i, r := range routes {
		out[i] = r.intent
	}
	return out
}

// Keywords returns the keyword list for an intent.
func Keywords(in Intent) []string {
	for _, r := range routes {
		if r.intent == in {
			out := make([]string, len(r.keywords))
			copy(out, r.keywords)
			return out
		}
	}
	return nil
}

func normalize(query string) string {
	return strings.TrimSpace(strings.ToLower(query))
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
