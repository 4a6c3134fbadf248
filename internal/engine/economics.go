package engine

import "github.com/Fizik0/MarketUnitCalc/internal/entity"

// breakeven back-solves the price at which total costs are 80% of revenue,
// i.e. a 20% target margin.
const targetCostShare = 0.8

// Compute derives the per-unit economics snapshot from a record. It is a pure
// function: cheap, side-effect free, safe to re-run per scenario.
func Compute(in *entity.InputRecord) entity.EconomicsResult {
	cogs := TotalCOGS(in)
	marketplaceCosts := MarketplaceCosts(in)
	marketingCosts := MarketingCosts(in)
	operationalCosts := OperationalCosts(in)
	totalCosts := cogs + marketplaceCosts + marketingCosts + operationalCosts

	unitProfit := in.SellingPrice - totalCosts

	profitMargin := 0.0
	if in.SellingPrice > 0 {
		profitMargin = unitProfit / in.SellingPrice * 100
	}

	// Negative total costs would inflate into a nonsense breakeven price.
	breakevenPrice := totalCosts
	if totalCosts > 0 {
		breakevenPrice = totalCosts / targetCostShare
	}

	return entity.EconomicsResult{
		SellingPrice:       in.SellingPrice,
		TotalCOGS:          cogs,
		MarketplaceCosts:   marketplaceCosts,
		MarketingCosts:     marketingCosts,
		OperationalCosts:   operationalCosts,
		TotalCosts:         totalCosts,
		UnitProfit:         unitProfit,
		ProfitMargin:       profitMargin,
		ContributionMargin: in.SellingPrice - cogs - marketplaceCosts,
		BreakevenPrice:     breakevenPrice,
	}
}
