// Package calculator implements the dashboard's derived metrics: spending
// aggregates over the expense log and environmental estimates from mileage.
// Everything here is a pure function over in-memory slices; no I/O, no state.
package calculator

import "github.com/voltlink/dashboard/internal/models"

// TotalSpent returns the sum of all expense amounts. An empty log yields 0.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CategoryTotals returns the summed amount per expense category.
// The totals partition the overall spend: summing the map's values
// always equals TotalSpent for the same input.
func CategoryTotals(expenses []models.Expense) map[models.ExpenseCategory]float64 {
	totals := make(map[models.ExpenseCategory]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// AverageMonthly estimates monthly spend as total / max(1, count/3),
// assuming expenses arrive roughly three per month. This is deliberately
// not calendar-aware; the dashboard has always shown this approximation.
func AverageMonthly(expenses []models.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	months := float64(len(expenses)) / 3
	if months < 1 {
		months = 1
	}
	return TotalSpent(expenses) / months
}
