package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voltlink/dashboard/internal/calculator"
	"github.com/voltlink/dashboard/internal/models"
)

// Prompt templates. The wording here is load-bearing: it shapes tone and
// length of every generated insight, so edits should be deliberate.

func summaryPrompt(profile models.BikeProfile) string {
	return fmt.Sprintf(`You are a friendly e-bike assistant. Generate a brief, encouraging summary for the user's e-bike dashboard.

Bike Data:
- Model: %s
- Total Miles: %g
- Average Speed: %g mph
- Last Maintenance: %s

Provide 2-3 sentences that:
1. Acknowledge their riding achievements
2. Mention any maintenance considerations
3. Encourage continued riding

Be friendly, concise, and motivating.`,
		profile.ModelName, profile.TotalMiles, profile.AverageSpeed, profile.LastMaintenance)
}

func diagnosticsPrompt(profile models.BikeProfile, records []models.MaintenanceRecord) string {
	recent := "No records"
	if len(records) > 0 {
		n := len(records)
		if n > 3 {
			n = 3
		}
		parts := make([]string, 0, n)
		for _, r := range records[:n] {
			parts = append(parts, fmt.Sprintf("%s on %s", r.ServiceType, r.Date))
		}
		recent = strings.Join(parts, ", ")
	}

	return fmt.Sprintf(`You are an expert e-bike mechanic. Based on the following bike data and maintenance history, provide a brief diagnostic summary with maintenance recommendations.

Bike Data:
- Model: %s
- Total Miles: %g
- Last Maintenance: %s

Recent Maintenance Records: %s

Provide a 2-3 sentence diagnostic summary with specific maintenance recommendations. Be concise and actionable.`,
		profile.ModelName, profile.TotalMiles, profile.LastMaintenance, recent)
}

func costInsightsPrompt(expenses []models.Expense) string {
	totalSpent := calculator.TotalSpent(expenses)
	breakdown, _ := json.Marshal(calculator.CategoryTotals(expenses))

	n := len(expenses)
	if n > 5 {
		n = 5
	}
	parts := make([]string, 0, n)
	for _, e := range expenses[:n] {
		parts = append(parts, fmt.Sprintf("%s: $%g on %s", e.Category, e.Amount, e.Date))
	}

	return fmt.Sprintf(`You are a financial advisor specializing in e-bike ownership costs. Analyze the following expense data and provide insights.

Total Spent: $%.2f
Number of Expenses: %d
Category Breakdown: %s

Recent Expenses: %s

Provide 2-3 sentences with:
1. An assessment of their spending patterns
2. Specific cost-saving recommendations
3. Comparison to typical car ownership costs if relevant

Be concise, actionable, and encouraging.`,
		totalSpent, len(expenses), breakdown, strings.Join(parts, ", "))
}

func tripPrompt(origin, destination string) string {
	return fmt.Sprintf(`You are a cycling route planner. Generate realistic trip data for an e-bike journey from "%s" to "%s".

Provide a JSON response with:
- distance: estimated miles (number)
- estimatedTime: estimated minutes (number)
- batteryUsage: percentage of battery used (number, 10-30%%)
- co2Saved: pounds of CO2 saved vs driving (number, roughly 0.25 lbs per mile)
- caloriesBurned: calories burned (number, roughly 20-25 per mile)
- suggestions: 2-3 sentences with route tips, safety advice, or weather considerations (string)

Return ONLY valid JSON, no markdown or extra text.`, origin, destination)
}
