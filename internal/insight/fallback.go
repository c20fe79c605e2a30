package insight

// Kind identifies one of the four insight requesters.
type Kind string

// The four requester kinds.
const (
	KindSummary      Kind = "summary"
	KindDiagnostics  Kind = "diagnostics"
	KindCostInsights Kind = "cost_insights"
	KindTripPlan     Kind = "trip_plan"
)

// TripPlan is the structured result of a trip planning request.
type TripPlan struct {
	Distance       float64 `json:"distance"`
	EstimatedTime  float64 `json:"estimatedTime"`
	BatteryUsage   float64 `json:"batteryUsage"`
	CO2Saved       float64 `json:"co2Saved"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	Suggestions    string  `json:"suggestions"`
}

// textFallbacks maps each text-producing requester to the exact literal
// returned when the external service fails. Fallback policy lives here as
// data rather than scattered through request code; the values must stay
// byte-for-byte stable because they are what riders see on every outage.
var textFallbacks = map[Kind]string{
	KindSummary: "Your e-bike has logged some miles. Keep up the great work! " +
		"You're due for a checkup soon.",
	KindDiagnostics: "Unable to generate diagnostics at this time. " +
		"Please try again later.",
	KindCostInsights: "Your e-bike expenses are well-managed. " +
		"Consider budgeting for regular maintenance to avoid costly repairs.",
}

// tripPlanFallback is the fixed plan substituted when planning fails or the
// service returns unparseable text.
var tripPlanFallback = TripPlan{
	Distance:       8.5,
	EstimatedTime:  28,
	BatteryUsage:   15,
	CO2Saved:       2.1,
	CaloriesBurned: 180,
	Suggestions: "Take the bike lane on Main Street for a safer route. " +
		"Consider charging your battery before the trip. " +
		"Weather looks clear for riding.",
}

// emptyExpensesInsight is returned, without calling the generator, when the
// rider has not logged any expenses yet. This is a genuine response, not a
// fallback: there is nothing to analyze.
const emptyExpensesInsight = "Start tracking your expenses to get personalized " +
	"financial insights and cost-saving recommendations."

// Fallback returns the fixed literal for a text-producing kind.
func Fallback(kind Kind) string {
	return textFallbacks[kind]
}

// TripPlanFallback returns the fixed fallback plan.
func TripPlanFallback() TripPlan {
	return tripPlanFallback
}
