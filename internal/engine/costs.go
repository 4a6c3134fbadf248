package engine

import (
	"github.com/Fizik0/MarketUnitCalc/internal/benchmark"
	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

// TotalCOGS sums the cost-of-goods components of a record.
func TotalCOGS(in *entity.InputRecord) float64 {
	return in.PurchaseCost + in.PackagingCost + in.LabelingCost +
		in.QualityControl + in.Certification
}

// MarketplaceCosts sums everything the platform charges per unit: commission
// on the selling price, fulfillment, storage, payment processing and any
// platform-mandated marketing surcharge from the benchmark table.
func MarketplaceCosts(in *entity.InputRecord) float64 {
	commission := in.SellingPrice * (in.CommissionRateOrDefault() / 100)
	surcharge := in.SellingPrice * benchmark.SurchargeRate(in.Marketplace)
	return commission + in.FulfillmentCost + in.StorageTotal + in.PaymentAmount + surcharge
}

// MarketingCosts sums the per-unit marketing spend components.
func MarketingCosts(in *entity.InputRecord) float64 {
	return in.PPCCostPerUnit + in.ExternalMarketing +
		in.InfluencerMarketing + in.ContentCreation
}

// OperationalCosts sums the per-unit operational components.
func OperationalCosts(in *entity.InputRecord) float64 {
	return in.FixedCostPerUnit + in.CustomerService + in.ReturnCostPerUnit
}
