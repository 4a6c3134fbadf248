package engine

import "github.com/Fizik0/MarketUnitCalc/internal/entity"

// AnalyzeLTVCAC computes the simple (non-cohort) customer lifetime value
// against acquisition cost. CAC is the per-unit marketing spend; ratio and
// payback are guarded to 0 when their denominators are non-positive.
func AnalyzeLTVCAC(in *entity.InputRecord) entity.LTVCACAnalysis {
	purchasesPerCustomer := float64(in.CustomerLifespanMonths) / 12 * in.AvgPurchasesPerYear
	ltv := in.SellingPrice*purchasesPerCustomer + in.CrossSellRevenue + in.ReferralBonus
	cac := MarketingCosts(in)

	out := entity.LTVCACAnalysis{LTV: ltv, CAC: cac}
	if cac > 0 {
		out.Ratio = ltv / cac
	}

	monthlyRevenue := in.SellingPrice * in.AvgPurchasesPerYear / 12
	if monthlyRevenue > 0 {
		out.PaybackMonths = cac / monthlyRevenue
	}
	return out
}
