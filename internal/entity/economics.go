package entity

// EconomicsResult is the per-unit profitability snapshot derived from one
// InputRecord. It is created fresh per calculation and never mutated.
type EconomicsResult struct {
	SellingPrice       float64 `json:"selling_price"`
	TotalCOGS          float64 `json:"total_cogs"`
	MarketplaceCosts   float64 `json:"marketplace_costs"`
	MarketingCosts     float64 `json:"marketing_costs"`
	OperationalCosts   float64 `json:"operational_costs"`
	TotalCosts         float64 `json:"total_costs"`
	UnitProfit         float64 `json:"unit_profit"`
	ProfitMargin       float64 `json:"profit_margin"` // percent of selling price
	ContributionMargin float64 `json:"contribution_margin"`
	BreakevenPrice     float64 `json:"breakeven_price"`
}
