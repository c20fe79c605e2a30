package service

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/voltlink/dashboard/internal/calculator"
	"github.com/voltlink/dashboard/internal/models"
	"github.com/voltlink/dashboard/internal/storage"
)

// RecordService serves the bike profile, maintenance history, and expense
// log, plus the derived metrics computed from them.
type RecordService struct {
	store storage.Store

	// now supplies record dates when the client omits one.
	now func() time.Time
}

// NewRecordService creates a RecordService with the given storage backend.
func NewRecordService(store storage.Store) *RecordService {
	return &RecordService{store: store, now: time.Now}
}

// Register attaches the record routes to mux.
func (s *RecordService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/bike", s.getProfile)
	mux.HandleFunc("PUT /api/bike", s.saveProfile)
	mux.HandleFunc("GET /api/maintenance", s.listMaintenance)
	mux.HandleFunc("POST /api/maintenance", s.addMaintenance)
	mux.HandleFunc("GET /api/expenses", s.listExpenses)
	mux.HandleFunc("POST /api/expenses", s.addExpense)
	mux.HandleFunc("GET /api/expenses/summary", s.expenseSummary)
	mux.HandleFunc("GET /api/impact", s.impact)
}

func (s *RecordService) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.LoadProfile(r.Context())
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load bike profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *RecordService) saveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.BikeProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bike profile")
		return
	}
	if profile.TotalMiles < 0 || profile.AverageSpeed < 0 {
		writeError(w, http.StatusBadRequest, "miles and speed must not be negative")
		return
	}

	// Wholesale overwrite: the profile is a singleton with no merge.
	if err := s.store.SaveProfile(r.Context(), profile); err != nil {
		slog.Error("Failed to save profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save bike profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *RecordService) listMaintenance(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.LoadMaintenance(r.Context())
	if err != nil {
		slog.Error("Failed to load maintenance records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load maintenance records")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// newMaintenanceRequest is the POST /api/maintenance body.
type newMaintenanceRequest struct {
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`
}

func (s *RecordService) addMaintenance(w http.ResponseWriter, r *http.Request) {
	var req newMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid maintenance record")
		return
	}
	if req.ServiceType == "" {
		writeError(w, http.StatusBadRequest, "serviceType is required")
		return
	}
	if req.Date == "" {
		req.Date = s.now().Format(models.DateLayout)
	}

	record := models.MaintenanceRecord{
		ID:          uuid.New().String(),
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	}

	records, err := s.store.LoadMaintenance(r.Context())
	if err != nil {
		slog.Error("Failed to load maintenance records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load maintenance records")
		return
	}

	// Newest first by insertion.
	records = append([]models.MaintenanceRecord{record}, records...)
	if err := s.store.SaveMaintenance(r.Context(), records); err != nil {
		slog.Error("Failed to save maintenance records", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save maintenance record")
		return
	}

	slog.Info("Maintenance record added", "id", record.ID, "service_type", record.ServiceType)
	writeJSON(w, http.StatusCreated, record)
}

func (s *RecordService) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.LoadExpenses(r.Context())
	if err != nil {
		slog.Error("Failed to load expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// newExpenseRequest is the POST /api/expenses body.
type newExpenseRequest struct {
	Date     string                 `json:"date"`
	Category models.ExpenseCategory `json:"category"`
	Amount   float64                `json:"amount"`
	Notes    string                 `json:"notes"`
}

func (s *RecordService) addExpense(w http.ResponseWriter, r *http.Request) {
	var req newExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense")
		return
	}
	if !models.ValidCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "category must be Purchase, Repair, Accessory, or Maintenance")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}
	if req.Date == "" {
		req.Date = s.now().Format(models.DateLayout)
	}

	expense := models.Expense{
		ID:       uuid.New().String(),
		Date:     req.Date,
		Category: req.Category,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}

	expenses, err := s.store.LoadExpenses(r.Context())
	if err != nil {
		slog.Error("Failed to load expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	expenses = append([]models.Expense{expense}, expenses...)
	if err := s.store.SaveExpenses(r.Context(), expenses); err != nil {
		slog.Error("Failed to save expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save expense")
		return
	}

	slog.Info("Expense added", "id", expense.ID, "category", expense.Category, "amount", expense.Amount)
	writeJSON(w, http.StatusCreated, expense)
}

// expenseSummaryResponse is the GET /api/expenses/summary body.
type expenseSummaryResponse struct {
	TotalSpent     float64                            `json:"totalSpent"`
	CategoryTotals map[models.ExpenseCategory]float64 `json:"categoryTotals"`
	AverageMonthly float64                            `json:"averageMonthly"`
	Count          int                                `json:"count"`
}

func (s *RecordService) expenseSummary(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.LoadExpenses(r.Context())
	if err != nil {
		slog.Error("Failed to load expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenseSummaryResponse{
		TotalSpent:     calculator.TotalSpent(expenses),
		CategoryTotals: calculator.CategoryTotals(expenses),
		AverageMonthly: calculator.AverageMonthly(expenses),
		Count:          len(expenses),
	})
}

func (s *RecordService) impact(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.LoadProfile(r.Context())
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load bike profile")
		return
	}
	writeJSON(w, http.StatusOK, calculator.Impact(profile.TotalMiles))
}
