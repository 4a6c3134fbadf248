package engine

import (
	"testing"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

func rate(v float64) *float64 { return &v }

// testRecord mirrors a real OZON electronics listing; the expected aggregates
// are hand-computed.
func testRecord() *entity.InputRecord {
	return &entity.InputRecord{
		Marketplace:            "OZON",
		Category:               "electronics",
		ProductName:            "wireless headphones",
		SellingPrice:           1000,
		PurchaseCost:           300,
		PackagingCost:          50,
		LabelingCost:           20,
		QualityControl:         30,
		Certification:          10,
		CommissionRate:         rate(15),
		FulfillmentCost:        100,
		StorageTotal:           50,
		PaymentAmount:          20,
		PPCCostPerUnit:         80,
		ExternalMarketing:      20,
		InfluencerMarketing:    10,
		ContentCreation:        30,
		FixedCostPerUnit:       40,
		CustomerService:        20,
		ReturnCostPerUnit:      30,
		MonthlySalesVolume:     100,
		RepeatPurchaseRate:     20,
		AvgPurchasesPerYear:    2.5,
		CustomerLifespanMonths: 12,
	}
}

func TestTotalCOGS(t *testing.T) {
	if got := TotalCOGS(testRecord()); got != 410 {
		t.Fatalf("got %v, want 410", got)
	}
}

func TestMarketplaceCosts_WithSurcharge(t *testing.T) {
	// 1000*0.15 commission + 100 + 50 + 20 + 1000*0.02 OZON surcharge
	if got := MarketplaceCosts(testRecord()); got != 340 {
		t.Fatalf("got %v, want 340", got)
	}
}

func TestMarketplaceCosts_NoSurchargeElsewhere(t *testing.T) {
	in := testRecord()
	in.Marketplace = "Wildberries"
	if got := MarketplaceCosts(in); got != 320 {
		t.Fatalf("got %v, want 320", got)
	}
}

func TestMarketplaceCosts_DefaultCommission(t *testing.T) {
	in := testRecord()
	in.CommissionRate = nil
	in.Marketplace = ""
	// default 15% commission, no surcharge
	if got := MarketplaceCosts(in); got != 320 {
		t.Fatalf("got %v, want 320", got)
	}
}

func TestMarketingCosts(t *testing.T) {
	if got := MarketingCosts(testRecord()); got != 140 {
		t.Fatalf("got %v, want 140", got)
	}
}

func TestOperationalCosts(t *testing.T) {
	if got := OperationalCosts(testRecord()); got != 90 {
		t.Fatalf("got %v, want 90", got)
	}
}

func TestAggregators_EmptyRecord(t *testing.T) {
	in := &entity.InputRecord{}
	if got := TotalCOGS(in); got != 0 {
		t.Fatalf("cogs: got %v, want 0", got)
	}
	if got := MarketplaceCosts(in); got != 0 {
		t.Fatalf("marketplace: got %v, want 0", got)
	}
	if got := MarketingCosts(in); got != 0 {
		t.Fatalf("marketing: got %v, want 0", got)
	}
	if got := OperationalCosts(in); got != 0 {
		t.Fatalf("operational: got %v, want 0", got)
	}
}
