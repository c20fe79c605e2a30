package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voltlink/dashboard/internal/insight"
)

func setupInsightServer(t *testing.T, gen insight.Generator) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	NewInsightService(insight.NewRequester(gen)).Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func workingGenerator(text string) insight.Generator {
	return insight.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return text, nil
	})
}

func brokenGenerator() insight.Generator {
	return insight.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("connection refused")
	})
}

func TestGenerateSummarySuccess(t *testing.T) {
	server := setupInsightServer(t, workingGenerator("Great month of riding!"))

	resp := postJSON(t, server.URL+"/api/generate-summary", map[string]any{
		"modelName":  "VoltLink 350R",
		"totalMiles": 142,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["summary"] != "Great month of riding!" {
		t.Errorf("summary = %q, want generator output", body["summary"])
	}
}

// Text insight routes answer 500 when the fallback is substituted, with a
// complete payload in the body. The trip route answers 200 either way.
// Browsers depend on that asymmetry, so it is pinned here.
func TestFallbackStatusAsymmetry(t *testing.T) {
	server := setupInsightServer(t, brokenGenerator())

	tests := []struct {
		name       string
		path       string
		body       map[string]any
		wantStatus int
		wantField  string
		wantValue  string
	}{
		{
			"summary falls back with 500",
			"/api/generate-summary",
			map[string]any{"modelName": "VoltLink 350R"},
			http.StatusInternalServerError,
			"summary",
			"Your e-bike has logged some miles. Keep up the great work! You're due for a checkup soon.",
		},
		{
			"diagnostics falls back with 500",
			"/api/generate-diagnostics",
			map[string]any{"bikeData": map[string]any{"modelName": "VoltLink 350R"}},
			http.StatusInternalServerError,
			"diagnostics",
			"Unable to generate diagnostics at this time. Please try again later.",
		},
		{
			"cost insights falls back with 500",
			"/api/generate-cost-insights",
			map[string]any{"expenses": []map[string]any{{"category": "Repair", "amount": 50}}},
			http.StatusInternalServerError,
			"insights",
			"Your e-bike expenses are well-managed. Consider budgeting for regular maintenance to avoid costly repairs.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+tt.path, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body map[string]string
			decodeBody(t, resp, &body)
			if body[tt.wantField] != tt.wantValue {
				t.Errorf("%s = %q, want the exact fallback literal", tt.wantField, body[tt.wantField])
			}
		})
	}
}

func TestPlanTripFallbackIs200(t *testing.T) {
	server := setupInsightServer(t, brokenGenerator())

	resp := postJSON(t, server.URL+"/api/plan-trip", map[string]any{
		"origin":      "Home",
		"destination": "Office",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on fallback", resp.StatusCode)
	}

	var body map[string]insight.TripPlan
	decodeBody(t, resp, &body)

	plan := body["plan"]
	if plan.Distance != 8.5 || plan.EstimatedTime != 28 || plan.BatteryUsage != 15 {
		t.Errorf("plan = %+v, want the fixed fallback plan", plan)
	}
	if plan.Suggestions == "" {
		t.Error("fallback plan must carry the full suggestions text")
	}
}

func TestPlanTripSuccess(t *testing.T) {
	server := setupInsightServer(t, workingGenerator(
		`{"distance": 5.2, "estimatedTime": 19, "batteryUsage": 11, "co2Saved": 1.3, "caloriesBurned": 115, "suggestions": "Flat route, easy ride."}`,
	))

	resp := postJSON(t, server.URL+"/api/plan-trip", map[string]any{
		"origin":      "Home",
		"destination": "Cafe",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]insight.TripPlan
	decodeBody(t, resp, &body)
	if body["plan"].Distance != 5.2 {
		t.Errorf("distance = %v, want parsed 5.2", body["plan"].Distance)
	}
}

func TestPlanTripRequiresEndpoints(t *testing.T) {
	server := setupInsightServer(t, workingGenerator("{}"))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing origin", map[string]any{"destination": "Office"}},
		{"missing destination", map[string]any{"origin": "Home"}},
		{"missing both", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/plan-trip", tt.body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestCostInsightsEmptyLog(t *testing.T) {
	server := setupInsightServer(t, brokenGenerator())

	// Even with the generator down, an empty log gets the starter text
	// as a success because nothing was requested from the service.
	resp := postJSON(t, server.URL+"/api/generate-cost-insights", map[string]any{
		"expenses": []any{},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	want := "Start tracking your expenses to get personalized financial insights and cost-saving recommendations."
	if body["insights"] != want {
		t.Errorf("insights = %q, want starter text", body["insights"])
	}
}
