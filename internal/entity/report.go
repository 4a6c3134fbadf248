package entity

// BenchmarkComparison positions a product against its category averages on
// the chosen marketplace.
type BenchmarkComparison struct {
	Marketplace      string  `json:"marketplace"`
	Category         string  `json:"category"`
	CommissionRate   float64 `json:"commission_rate"`
	AvgPrice         float64 `json:"avg_price"`
	AvgMargin        float64 `json:"avg_margin"`   // fraction, e.g. 0.25
	AvgLTVCAC        float64 `json:"avg_ltv_cac"`
	MarginVsCategory float64 `json:"margin_vs_category"` // margin% minus category avg%
}

// Report is the full analysis assembled for one input record: everything the
// dashboard and exporters read.
type Report struct {
	Input           InputRecord         `json:"input"`
	Economics       EconomicsResult     `json:"economics"`
	ProfitScore     int                 `json:"profit_score"`
	Recommendations RecommendationSet   `json:"recommendations"`
	Scenarios       ScenarioSet         `json:"scenarios"`
	MonthlyProfit   map[string]float64  `json:"monthly_profit"` // per scenario name
	Cohort          CohortLTV           `json:"cohort_ltv"`
	LTVCAC          LTVCACAnalysis      `json:"ltv_cac"`
	Benchmark       BenchmarkComparison `json:"benchmark"`
}
