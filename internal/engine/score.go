package engine

import "github.com/Fizik0/MarketUnitCalc/internal/entity"

// Margin benchmarks shared by the scorer and the recommendation rules.
const (
	marginExcellent  = 30.0
	marginGood       = 20.0
	marginAcceptable = 10.0
)

// Score computes the composite P.R.O.F.I.T. health score in [0,100] from an
// economics snapshot: six independent step functions, summed and clamped.
// Every ratio of price is skipped (scores 0) when the price is non-positive.
func Score(res entity.EconomicsResult) int {
	score := 0

	// P - Profitability (0-25)
	switch {
	case res.ProfitMargin >= marginExcellent:
		score += 25
	case res.ProfitMargin >= marginGood:
		score += 20
	case res.ProfitMargin >= marginAcceptable:
		score += 15
	case res.ProfitMargin >= 0:
		score += 10
	}

	// R - Resource Optimization (0-15): total cost share of price
	if res.SellingPrice > 0 {
		costShare := res.TotalCosts / res.SellingPrice * 100
		switch {
		case costShare <= 70:
			score += 15
		case costShare <= 80:
			score += 12
		case costShare <= 90:
			score += 8
		}
	}

	// O - Operations Excellence (0-15): operational cost share of price
	if res.SellingPrice > 0 {
		opShare := res.OperationalCosts / res.SellingPrice * 100
		switch {
		case opShare <= 5:
			score += 15
		case opShare <= 10:
			score += 12
		case opShare <= 15:
			score += 8
		}
	}

	// F - Financial Intelligence (0-15): margin sign bands
	switch {
	case res.ProfitMargin > 0:
		score += 15
	case res.ProfitMargin >= -5:
		score += 10
	case res.ProfitMargin >= -10:
		score += 5
	}

	// I - Intelligence Automation (0-15): marketplace cost share of price
	if res.SellingPrice > 0 {
		mpShare := res.MarketplaceCosts / res.SellingPrice * 100
		switch {
		case mpShare <= 20:
			score += 15
		case mpShare <= 30:
			score += 12
		case mpShare <= 40:
			score += 8
		}
	}

	// T - Transformation (0-15): contribution margin vs price fractions
	switch {
	case res.ContributionMargin > res.SellingPrice*0.5:
		score += 15
	case res.ContributionMargin > res.SellingPrice*0.3:
		score += 12
	case res.ContributionMargin > res.SellingPrice*0.1:
		score += 8
	case res.ContributionMargin > 0:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
