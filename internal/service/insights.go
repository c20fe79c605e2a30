package service

import (
	"net/http"

	"github.com/voltlink/dashboard/internal/insight"
	"github.com/voltlink/dashboard/internal/models"
)

// InsightService serves the four AI insight routes. Failures of the
// external text-generation service never surface as errors: the response
// body is always a complete insight payload, with the route's fixed
// fallback substituted on failure. Three of the routes mark a fallback
// with status 500; trip planning historically answers 200 either way, and
// browsers with saved behavior depend on that asymmetry.
type InsightService struct {
	requester *insight.Requester
}

// NewInsightService creates an InsightService backed by requester.
func NewInsightService(requester *insight.Requester) *InsightService {
	return &InsightService{requester: requester}
}

// Register attaches the insight routes to mux. Route names mirror the
// original dashboard's API so the frontend needs no changes.
func (s *InsightService) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/generate-summary", s.generateSummary)
	mux.HandleFunc("POST /api/generate-diagnostics", s.generateDiagnostics)
	mux.HandleFunc("POST /api/generate-cost-insights", s.generateCostInsights)
	mux.HandleFunc("POST /api/plan-trip", s.planTrip)
}

func (s *InsightService) generateSummary(w http.ResponseWriter, r *http.Request) {
	var profile models.BikeProfile
	if err := decodeJSON(r, &profile); err != nil {
		// An unreadable request is handled like a failed generation:
		// the rider still gets a summary.
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"summary": insight.Fallback(insight.KindSummary)})
		return
	}

	summary, fellBack := s.requester.Summary(r.Context(), profile)
	writeJSON(w, statusFor(fellBack), map[string]string{"summary": summary})
}

// diagnosticsRequest is the POST /api/generate-diagnostics body.
type diagnosticsRequest struct {
	BikeData           models.BikeProfile         `json:"bikeData"`
	MaintenanceRecords []models.MaintenanceRecord `json:"maintenanceRecords"`
}

func (s *InsightService) generateDiagnostics(w http.ResponseWriter, r *http.Request) {
	var req diagnosticsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"diagnostics": insight.Fallback(insight.KindDiagnostics)})
		return
	}

	diagnostics, fellBack := s.requester.Diagnostics(r.Context(), req.BikeData, req.MaintenanceRecords)
	writeJSON(w, statusFor(fellBack), map[string]string{"diagnostics": diagnostics})
}

// costInsightsRequest is the POST /api/generate-cost-insights body.
type costInsightsRequest struct {
	Expenses []models.Expense `json:"expenses"`
}

func (s *InsightService) generateCostInsights(w http.ResponseWriter, r *http.Request) {
	var req costInsightsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"insights": insight.Fallback(insight.KindCostInsights)})
		return
	}

	insights, fellBack := s.requester.CostInsights(r.Context(), req.Expenses)
	writeJSON(w, statusFor(fellBack), map[string]string{"insights": insights})
}

// tripRequest is the POST /api/plan-trip body.
type tripRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (s *InsightService) planTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip request")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	// Trip planning always answers 200, fallback or not.
	plan, _ := s.requester.PlanTrip(r.Context(), req.Origin, req.Destination)
	writeJSON(w, http.StatusOK, map[string]insight.TripPlan{"plan": plan})
}

// statusFor maps a fallback result to the status the frontend expects:
// the fallback body rides on a 500 even though it is a complete payload.
func statusFor(fellBack bool) int {
	if fellBack {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
