package engine

import (
	"fmt"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

// The automation matrix entry is a baseline placeholder: automation maturity
// is not modeled yet. TODO: derive it from PPC share once ad data is wired in.
const matrixAutomationBaseline = 60.0

// Thresholds for the recommendation rules, as percents of selling price.
const (
	marketplaceShareWarning = 30.0
	marketingShareWarning   = 25.0
	cogsShareStrength       = 40.0
	longTermScoreGate       = 70
)

// Recommend runs the economics and scoring engines over a record and applies
// the threshold rules. Rules are independent and accumulate in order; they
// never overwrite earlier findings.
func Recommend(in *entity.InputRecord) entity.RecommendationSet {
	res := Compute(in)
	profitScore := Score(res)

	rec := entity.RecommendationSet{
		CriticalIssues: []string{},
		Improvements:   []string{},
		Strengths:      []string{},
		ActionPlan: entity.ActionPlan{
			Immediate: []string{},
			ShortTerm: []string{},
			LongTerm:  []string{},
		},
		TotalScore: profitScore,
	}

	if res.ProfitMargin < 0 {
		rec.CriticalIssues = append(rec.CriticalIssues, fmt.Sprintf(
			"Product is loss-making: %.1f%% margin. Price or costs need urgent correction.", res.ProfitMargin))
		rec.ActionPlan.Immediate = append(rec.ActionPlan.Immediate,
			"Raise the price or find ways to cut costs")
	}

	if res.ProfitMargin < marginAcceptable {
		rec.CriticalIssues = append(rec.CriticalIssues,
			"Very low margin. The business is unstable under cost fluctuations.")
	}

	// Percentage rules only apply with a positive price; the shares are
	// meaningless otherwise.
	cogsShare := 0.0
	opShare := 0.0
	if res.SellingPrice > 0 {
		marketplaceShare := res.MarketplaceCosts / res.SellingPrice * 100
		if marketplaceShare > marketplaceShareWarning {
			rec.Improvements = append(rec.Improvements, fmt.Sprintf(
				"High marketplace costs (%.1f%%). Consider another category or platform.", marketplaceShare))
		}

		marketingShare := res.MarketingCosts / res.SellingPrice * 100
		if marketingShare > marketingShareWarning {
			rec.Improvements = append(rec.Improvements, fmt.Sprintf(
				"High marketing costs (%.1f%%). Optimize ad campaigns.", marketingShare))
			rec.ActionPlan.ShortTerm = append(rec.ActionPlan.ShortTerm,
				"Audit ad campaigns and optimize bids")
		}

		cogsShare = res.TotalCOGS / res.SellingPrice * 100
		opShare = res.OperationalCosts / res.SellingPrice * 100
	}

	if res.ProfitMargin > marginGood {
		rec.Strengths = append(rec.Strengths, fmt.Sprintf(
			"Excellent margin (%.1f%%). Potential for scaling.", res.ProfitMargin))
	}

	if res.SellingPrice > 0 && cogsShare < cogsShareStrength {
		rec.Strengths = append(rec.Strengths, fmt.Sprintf(
			"Efficient cost structure (%.1f%% COGS).", cogsShare))
	}

	rec.ProfitMatrix = map[string]float64{
		entity.MatrixProfitability:  clampScore(res.ProfitMargin * 3),
		entity.MatrixResource:       clampScore(100 - cogsShare),
		entity.MatrixOperations:     clampScore(100 - opShare*10),
		entity.MatrixFinancial:      clampScore(float64(profitScore)),
		entity.MatrixAutomation:     matrixAutomationBaseline,
		entity.MatrixTransformation: clampScore(res.ProfitMargin * 2),
	}

	if profitScore >= longTermScoreGate {
		rec.ActionPlan.LongTerm = append(rec.ActionPlan.LongTerm,
			"Consider expanding the assortment within this category",
			"Evaluate entering additional marketplaces")
	}

	return rec
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
