package entity

// CohortLTV is a month-by-month retention-decayed revenue projection for one
// customer cohort, capped at 36 months. CumulativeLTV is the running
// undiscounted sum; LTVSimple and LTVDiscounted are the totals.
type CohortLTV struct {
	RetentionByMonth []float64 `json:"retention_by_month"`
	RevenueByMonth   []float64 `json:"revenue_by_month"`
	CumulativeLTV    []float64 `json:"cumulative_ltv"`
	LTVSimple        float64   `json:"ltv_simple"`
	LTVDiscounted    float64   `json:"ltv_discounted"`
}

// LTVCACAnalysis is the simple (non-cohort) customer value block: lifetime
// value against acquisition cost with the payback period in months.
type LTVCACAnalysis struct {
	LTV           float64 `json:"ltv"`
	CAC           float64 `json:"cac"`
	Ratio         float64 `json:"ltv_cac_ratio"`
	PaybackMonths float64 `json:"payback_period"`
}
