package benchmark

import "strings"

// CommissionProfile holds the fee parameters a marketplace charges for a
// category. Rates are percents, costs are per unit in account currency.
type CommissionProfile struct {
	CommissionRate     float64 `json:"commission_rate"`
	FulfillmentBase    float64 `json:"fulfillment_base"`
	StoragePerDay      float64 `json:"storage_per_day"`
	MandatoryMarketing float64 `json:"mandatory_marketing"` // percent of price
}

// CategoryBenchmark holds observed category averages used for positioning a
// product against its peers.
type CategoryBenchmark struct {
	AvgPrice      float64 `json:"avg_price"`
	AvgConversion float64 `json:"avg_conversion"`
	AvgReturnRate float64 `json:"avg_return_rate"`
	AvgMargin     float64 `json:"avg_margin"` // fraction
	AvgLTVCAC     float64 `json:"avg_ltv_cac"`
}

// 2024 marketplace fee data.
var commissions = map[string]map[string]CommissionProfile{
	"OZON": {
		"electronics": {CommissionRate: 12.0, FulfillmentBase: 60.0, StoragePerDay: 2.0, MandatoryMarketing: 2.0},
		"clothing":    {CommissionRate: 15.0, FulfillmentBase: 80.0, StoragePerDay: 1.5, MandatoryMarketing: 2.0},
		"home":        {CommissionRate: 18.0, FulfillmentBase: 70.0, StoragePerDay: 2.5, MandatoryMarketing: 2.0},
		"beauty":      {CommissionRate: 20.0, FulfillmentBase: 50.0, StoragePerDay: 1.0, MandatoryMarketing: 2.0},
		"kids":        {CommissionRate: 16.0, FulfillmentBase: 65.0, StoragePerDay: 1.8, MandatoryMarketing: 2.0},
		"sports":      {CommissionRate: 14.0, FulfillmentBase: 90.0, StoragePerDay: 3.0, MandatoryMarketing: 2.0},
		"auto":        {CommissionRate: 13.0, FulfillmentBase: 85.0, StoragePerDay: 2.8, MandatoryMarketing: 2.0},
	},
	"Wildberries": {
		"electronics": {CommissionRate: 8.5, FulfillmentBase: 55.0, StoragePerDay: 3.0},
		"clothing":    {CommissionRate: 11.0, FulfillmentBase: 70.0, StoragePerDay: 2.0},
		"home":        {CommissionRate: 13.0, FulfillmentBase: 65.0, StoragePerDay: 2.8},
		"beauty":      {CommissionRate: 15.0, FulfillmentBase: 45.0, StoragePerDay: 1.2},
		"kids":        {CommissionRate: 12.0, FulfillmentBase: 60.0, StoragePerDay: 2.2},
		"sports":      {CommissionRate: 10.0, FulfillmentBase: 80.0, StoragePerDay: 3.5},
		"auto":        {CommissionRate: 9.0, FulfillmentBase: 75.0, StoragePerDay: 3.2},
	},
}

var benchmarks = map[string]map[string]CategoryBenchmark{
	"OZON": {
		"electronics": {AvgPrice: 8500, AvgConversion: 0.025, AvgReturnRate: 0.12, AvgMargin: 0.18, AvgLTVCAC: 2.8},
		"clothing":    {AvgPrice: 3200, AvgConversion: 0.018, AvgReturnRate: 0.25, AvgMargin: 0.35, AvgLTVCAC: 2.2},
		"home":        {AvgPrice: 2800, AvgConversion: 0.022, AvgReturnRate: 0.08, AvgMargin: 0.28, AvgLTVCAC: 3.1},
		"beauty":      {AvgPrice: 1500, AvgConversion: 0.030, AvgReturnRate: 0.06, AvgMargin: 0.40, AvgLTVCAC: 3.8},
	},
	"Wildberries": {
		"electronics": {AvgPrice: 7800, AvgConversion: 0.028, AvgReturnRate: 0.14, AvgMargin: 0.16, AvgLTVCAC: 2.6},
		"clothing":    {AvgPrice: 2600, AvgConversion: 0.021, AvgReturnRate: 0.30, AvgMargin: 0.38, AvgLTVCAC: 2.4},
		"home":        {AvgPrice: 2200, AvgConversion: 0.024, AvgReturnRate: 0.09, AvgMargin: 0.30, AvgLTVCAC: 3.3},
	},
}

// surcharges maps a marketplace to its mandatory-marketing fee as a fraction
// of selling price. Adding a platform is a data change, not a code change.
var surcharges = map[string]float64{
	"OZON": 0.02,
}

// SeasonalFactor is a demand multiplier by calendar month (1 = January).
var seasonalFactors = map[int]float64{
	1: 0.85, 2: 0.90, 3: 1.05, 4: 0.95, 5: 1.10, 6: 1.00,
	7: 0.90, 8: 0.85, 9: 1.15, 10: 1.10, 11: 1.25, 12: 1.40,
}

// defaultProfile is returned for marketplaces missing from the table.
var defaultProfile = CommissionProfile{
	CommissionRate:  15.0,
	FulfillmentBase: 60.0,
	StoragePerDay:   2.0,
}

// defaultBenchmark is returned for unknown marketplace/category pairs.
var defaultBenchmark = CategoryBenchmark{
	AvgPrice:      3000,
	AvgConversion: 0.025,
	AvgReturnRate: 0.12,
	AvgMargin:     0.25,
	AvgLTVCAC:     3.0,
}

// SurchargeRate returns the mandatory-marketing surcharge fraction for a
// marketplace, 0 when the platform charges none.
func SurchargeRate(marketplace string) float64 {
	return surcharges[strings.TrimSpace(marketplace)]
}

// CommissionFor returns the fee profile for a marketplace and category. An
// unknown category falls back to the marketplace average; an unknown
// marketplace falls back to the generic default profile.
func CommissionFor(marketplace, category string) CommissionProfile {
	categories, ok := commissions[strings.TrimSpace(marketplace)]
	if !ok {
		return defaultProfile
	}
	if profile, ok := categories[normalizeCategory(category)]; ok {
		return profile
	}

	var avg CommissionProfile
	for _, p := range categories {
		avg.CommissionRate += p.CommissionRate
		avg.FulfillmentBase += p.FulfillmentBase
		avg.StoragePerDay += p.StoragePerDay
		avg.MandatoryMarketing += p.MandatoryMarketing
	}
	n := float64(len(categories))
	avg.CommissionRate /= n
	avg.FulfillmentBase /= n
	avg.StoragePerDay /= n
	avg.MandatoryMarketing /= n
	return avg
}

// BenchmarkFor returns category averages for a marketplace, falling back to
// the cross-marketplace default when the pair is not tracked.
func BenchmarkFor(marketplace, category string) CategoryBenchmark {
	if categories, ok := benchmarks[strings.TrimSpace(marketplace)]; ok {
		if b, ok := categories[normalizeCategory(category)]; ok {
			return b
		}
	}
	return defaultBenchmark
}

// SeasonalFactor returns the demand multiplier for a month (1-12), 1.0 for
// anything out of range.
func SeasonalFactor(month int) float64 {
	if f, ok := seasonalFactors[month]; ok {
		return f
	}
	return 1.0
}

// FulfillmentCost estimates the per-unit fulfillment charge from weight in kg.
func FulfillmentCost(weight float64) float64 {
	switch {
	case weight <= 0.5:
		return 50.0
	case weight <= 1.0:
		return 80.0
	case weight <= 2.0:
		return 120.0
	default:
		return 150.0 + (weight-2.0)*30
	}
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
