package api

import (
	"fmt"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

// ValidationError points at the specific field that failed validation. The
// engine itself never validates; malformed input is stopped here.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateRecord enforces the input contract before the engine runs:
// a positive price, non-negative components and percentage fields in range.
func validateRecord(in *entity.InputRecord) *ValidationError {
	if in.SellingPrice <= 0 {
		return &ValidationError{Field: "selling_price", Message: "must be greater than 0"}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"purchase_cost", in.PurchaseCost},
		{"packaging_cost", in.PackagingCost},
		{"labeling_cost", in.LabelingCost},
		{"quality_control", in.QualityControl},
		{"certification", in.Certification},
		{"fulfillment_cost", in.FulfillmentCost},
		{"storage_total", in.StorageTotal},
		{"payment_amount", in.PaymentAmount},
		{"ppc_cost_per_unit", in.PPCCostPerUnit},
		{"external_marketing", in.ExternalMarketing},
		{"influencer_marketing", in.InfluencerMarketing},
		{"content_creation", in.ContentCreation},
		{"fixed_cost_per_unit", in.FixedCostPerUnit},
		{"customer_service", in.CustomerService},
		{"return_cost_per_unit", in.ReturnCostPerUnit},
		{"monthly_sales_volume", in.MonthlySalesVolume},
		{"avg_purchases_per_year", in.AvgPurchasesPerYear},
		{"cross_sell_revenue", in.CrossSellRevenue},
		{"referral_bonus", in.ReferralBonus},
		{"weight", in.Weight},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ValidationError{Field: f.field, Message: "must not be negative"}
		}
	}

	if in.CommissionRate != nil && (*in.CommissionRate < 0 || *in.CommissionRate > 100) {
		return &ValidationError{Field: "commission_rate", Message: "must be between 0 and 100"}
	}
	if in.RepeatPurchaseRate < 0 || in.RepeatPurchaseRate > 100 {
		return &ValidationError{Field: "repeat_purchase_rate", Message: "must be between 0 and 100"}
	}
	if in.CustomerLifespanMonths < 0 {
		return &ValidationError{Field: "customer_lifespan_months", Message: "must not be negative"}
	}

	// Consistency check: a purchase cost an order of magnitude above the
	// price is a data-entry mistake, not a business case.
	if in.PurchaseCost > in.SellingPrice*10 {
		return &ValidationError{Field: "purchase_cost", Message: "implausibly high relative to selling_price"}
	}

	return nil
}
