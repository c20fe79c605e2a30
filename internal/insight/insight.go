package insight

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/voltlink/dashboard/internal/models"
)

// fallbackTotal counts how often each requester had to substitute its
// fallback value. A nonzero rate here is the only operational signal that
// the external service is unhealthy, since callers never see the error.
var fallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "voltlink_insight_fallback_total",
	Help: "Insight requests that returned the fixed fallback value.",
}, []string{"kind"})

// Requester runs the four insight exchanges against a Generator and
// normalizes every failure into the fixed fallback for that kind.
type Requester struct {
	gen Generator
}

// NewRequester creates a Requester backed by gen.
func NewRequester(gen Generator) *Requester {
	return &Requester{gen: gen}
}

// Summary generates the dashboard greeting for the given profile.
// The second return reports whether the fallback was substituted.
func (r *Requester) Summary(ctx context.Context, profile models.BikeProfile) (string, bool) {
	return r.text(ctx, KindSummary, summaryPrompt(profile))
}

// Diagnostics generates a maintenance diagnostic from the profile and the
// service history.
func (r *Requester) Diagnostics(ctx context.Context, profile models.BikeProfile, records []models.MaintenanceRecord) (string, bool) {
	return r.text(ctx, KindDiagnostics, diagnosticsPrompt(profile, records))
}

// CostInsights generates a spending analysis over the expense log. An empty
// log short-circuits to the starter text without touching the generator;
// that path is a genuine response, not a fallback.
func (r *Requester) CostInsights(ctx context.Context, expenses []models.Expense) (string, bool) {
	if len(expenses) == 0 {
		return emptyExpensesInsight, false
	}
	return r.text(ctx, KindCostInsights, costInsightsPrompt(expenses))
}

// PlanTrip asks the generator for trip data between origin and destination
// and parses the completion as JSON. A completion that is not a valid plan
// is treated identically to a transport failure.
func (r *Requester) PlanTrip(ctx context.Context, origin, destination string) (TripPlan, bool) {
	text, err := r.gen.Generate(ctx, tripPrompt(origin, destination))
	if err != nil {
		slog.Error("Trip plan generation failed", "error", err,
			"origin", origin, "destination", destination)
		fallbackTotal.WithLabelValues(string(KindTripPlan)).Inc()
		return tripPlanFallback, true
	}

	var plan TripPlan
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &plan); err != nil {
		slog.Error("Trip plan response was not valid JSON", "error", err,
			"origin", origin, "destination", destination)
		fallbackTotal.WithLabelValues(string(KindTripPlan)).Inc()
		return tripPlanFallback, true
	}
	return plan, false
}

func (r *Requester) text(ctx context.Context, kind Kind, prompt string) (string, bool) {
	result, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		slog.Error("Insight generation failed", "kind", kind, "error", err)
		fallbackTotal.WithLabelValues(string(kind)).Inc()
		return textFallbacks[kind], true
	}
	return result, false
}

// stripCodeFence removes a surrounding markdown code fence. Models emit
// fenced JSON often enough, despite being told not to, that tolerating it
// noticeably reduces fallback rates.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
