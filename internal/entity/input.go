package entity

// DefaultCommissionRate is applied when a record does not carry its own
// commission rate (percent of selling price).
const DefaultCommissionRate = 15.0

// InputRecord holds every business parameter a seller enters for one product.
// All numeric fields default to 0 when absent; commission_rate is the one
// field whose default differs, so it is a pointer resolved through
// CommissionRateOrDefault.
type InputRecord struct {
	// Identity
	Marketplace string `json:"marketplace"`
	Category    string `json:"category"`
	ProductName string `json:"product_name"`

	// Pricing
	SellingPrice float64 `json:"selling_price"`
	Weight       float64 `json:"weight"`

	// Cost components (COGS)
	PurchaseCost   float64 `json:"purchase_cost"`
	PackagingCost  float64 `json:"packaging_cost"`
	LabelingCost   float64 `json:"labeling_cost"`
	QualityControl float64 `json:"quality_control"`
	Certification  float64 `json:"certification"`

	// Marketplace fee parameters
	CommissionRate  *float64 `json:"commission_rate,omitempty"`
	FulfillmentCost float64  `json:"fulfillment_cost"`
	StorageTotal    float64  `json:"storage_total"`
	PaymentAmount   float64  `json:"payment_amount"`

	// Marketing spend per unit
	PPCCostPerUnit      float64 `json:"ppc_cost_per_unit"`
	ExternalMarketing   float64 `json:"external_marketing"`
	InfluencerMarketing float64 `json:"influencer_marketing"`
	ContentCreation     float64 `json:"content_creation"`

	// Operational components
	FixedCostPerUnit  float64 `json:"fixed_cost_per_unit"`
	CustomerService   float64 `json:"customer_service"`
	ReturnCostPerUnit float64 `json:"return_cost_per_unit"`

	// Sales volume
	MonthlySalesVolume float64 `json:"monthly_sales_volume"`

	// Customer lifecycle parameters
	RepeatPurchaseRate     float64 `json:"repeat_purchase_rate"`
	AvgPurchasesPerYear    float64 `json:"avg_purchases_per_year"`
	CustomerLifespanMonths int     `json:"customer_lifespan_months"`
	CrossSellRevenue       float64 `json:"cross_sell_revenue"`
	ReferralBonus          float64 `json:"referral_bonus"`
}

// CommissionRateOrDefault returns the record's commission rate in percent,
// falling back to DefaultCommissionRate when unset.
func (in *InputRecord) CommissionRateOrDefault() float64 {
	if in.CommissionRate == nil {
		return DefaultCommissionRate
	}
	return *in.CommissionRate
}

// Clone returns an independent copy of the record. Scenario runs mutate their
// clone, so the commission pointer must not be shared with the original.
func (in *InputRecord) Clone() *InputRecord {
	out := *in
	if in.CommissionRate != nil {
		rate := *in.CommissionRate
		out.CommissionRate = &rate
	}
	return &out
}
