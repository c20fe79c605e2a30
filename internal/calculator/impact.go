package calculator

// Environmental coefficients. These are the dashboard's fixed domain
// constants; changing them changes every number the impact page has ever
// shown, so keep them exactly as-is.
const (
	// co2PerMile is pounds of CO2 saved per mile ridden instead of driven.
	co2PerMile = 0.89

	// carMPG is the assumed fuel economy of the car not being driven.
	carMPG = 25

	// co2PerTree is pounds of CO2 absorbed by one tree per year.
	co2PerTree = 48

	// caloriesPerMile is calories burned per mile of e-bike riding.
	caloriesPerMile = 22
)

// ImpactReport holds the environmental estimates derived from total mileage.
type ImpactReport struct {
	// TotalMiles is the input mileage the report was computed from.
	TotalMiles float64 `json:"totalMiles"`

	// CO2Saved is pounds of CO2 not emitted versus driving.
	CO2Saved float64 `json:"co2Saved"`

	// GasolineSaved is gallons of gasoline not burned.
	GasolineSaved float64 `json:"gasolineSaved"`

	// TreeEquivalent is the number of trees absorbing CO2Saved in a year.
	TreeEquivalent float64 `json:"treeEquivalent"`

	// CaloriesBurned is total calories burned riding.
	CaloriesBurned float64 `json:"caloriesBurned"`
}

// Impact computes the environmental estimates for the given mileage.
// At zero miles every output is zero.
func Impact(totalMiles float64) ImpactReport {
	co2 := totalMiles * co2PerMile
	return ImpactReport{
		TotalMiles:     totalMiles,
		CO2Saved:       co2,
		GasolineSaved:  totalMiles / carMPG,
		TreeEquivalent: co2 / co2PerTree,
		CaloriesBurned: totalMiles * caloriesPerMile,
	}
}
