package models

// MaintenanceRecord represents one service event in the bike's history.
// Records are immutable once created and ordered newest-first.
type MaintenanceRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// Date is when the service happened, in YYYY-MM-DD form.
	Date string `json:"date"`

	// ServiceType is the kind of work done (e.g., "Tire Replacement",
	// "Brake Adjustment"). Free text from the rider.
	ServiceType string `json:"serviceType"`

	// Notes is an optional description of the work.
	Notes string `json:"notes"`
}

// ExpenseCategory classifies an ownership cost entry.
type ExpenseCategory string

// The four expense categories the dashboard tracks.
const (
	CategoryPurchase    ExpenseCategory = "Purchase"
	CategoryRepair      ExpenseCategory = "Repair"
	CategoryAccessory   ExpenseCategory = "Accessory"
	CategoryMaintenance ExpenseCategory = "Maintenance"
)

// ValidCategory reports whether c is one of the known expense categories.
func ValidCategory(c ExpenseCategory) bool {
	switch c {
	case CategoryPurchase, CategoryRepair, CategoryAccessory, CategoryMaintenance:
		return true
	}
	return false
}

// Expense represents one ownership cost entry. Like maintenance records,
// expenses are immutable once created and ordered newest-first.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Date is when the money was spent, in YYYY-MM-DD form.
	Date string `json:"date"`

	// Category is one of Purchase, Repair, Accessory, Maintenance.
	Category ExpenseCategory `json:"category"`

	// Amount is the cost in dollars. Never negative.
	Amount float64 `json:"amount"`

	// Notes is an optional description of the expense.
	Notes string `json:"notes"`
}
