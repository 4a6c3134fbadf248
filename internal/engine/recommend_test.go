package engine

import (
	"strings"
	"testing"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

func TestRecommend_Baseline(t *testing.T) {
	rec := Recommend(testRecord())

	// 2% margin: fragile but not loss-making.
	if len(rec.CriticalIssues) != 1 {
		t.Fatalf("critical issues: got %d, want 1: %v", len(rec.CriticalIssues), rec.CriticalIssues)
	}
	if len(rec.ActionPlan.Immediate) != 0 {
		t.Fatalf("immediate actions: got %v, want none", rec.ActionPlan.Immediate)
	}

	// Marketplace share is 34%, marketing share 14%.
	if len(rec.Improvements) != 1 || !strings.Contains(rec.Improvements[0], "marketplace") {
		t.Fatalf("improvements: got %v", rec.Improvements)
	}

	// 41% COGS and 2% margin qualify for no strengths.
	if len(rec.Strengths) != 0 {
		t.Fatalf("strengths: got %v, want none", rec.Strengths)
	}

	if rec.TotalScore != 53 {
		t.Fatalf("total score: got %d, want 53", rec.TotalScore)
	}
	if len(rec.ActionPlan.LongTerm) != 0 {
		t.Fatalf("long term actions below score gate: got %v", rec.ActionPlan.LongTerm)
	}
}

func TestRecommend_LossMaking(t *testing.T) {
	in := testRecord()
	in.SellingPrice = 500 // costs stay near 895

	rec := Recommend(in)
	// Loss alert and fragility warning both fire; rules accumulate.
	if len(rec.CriticalIssues) != 2 {
		t.Fatalf("critical issues: got %d, want 2: %v", len(rec.CriticalIssues), rec.CriticalIssues)
	}
	if len(rec.ActionPlan.Immediate) != 1 {
		t.Fatalf("immediate actions: got %v, want 1", rec.ActionPlan.Immediate)
	}
}

func TestRecommend_StrongProduct(t *testing.T) {
	in := &entity.InputRecord{
		Marketplace:    "Wildberries",
		SellingPrice:   1000,
		PurchaseCost:   200,
		CommissionRate: rate(10),
	}

	rec := Recommend(in)
	if len(rec.CriticalIssues) != 0 {
		t.Fatalf("critical issues: got %v, want none", rec.CriticalIssues)
	}
	// 70% margin and 20% COGS: both strengths fire.
	if len(rec.Strengths) != 2 {
		t.Fatalf("strengths: got %d, want 2: %v", len(rec.Strengths), rec.Strengths)
	}
	if len(rec.ActionPlan.LongTerm) != 2 {
		t.Fatalf("long term actions: got %v, want 2", rec.ActionPlan.LongTerm)
	}
}

func TestRecommend_MarketingAuditRule(t *testing.T) {
	in := testRecord()
	in.PPCCostPerUnit = 300 // marketing share 44%

	rec := Recommend(in)
	found := false
	for _, s := range rec.Improvements {
		if strings.Contains(s, "marketing") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected marketing improvement, got %v", rec.Improvements)
	}
	if len(rec.ActionPlan.ShortTerm) != 1 {
		t.Fatalf("short term actions: got %v, want 1", rec.ActionPlan.ShortTerm)
	}
}

func TestRecommend_ProfitMatrix(t *testing.T) {
	rec := Recommend(testRecord())

	want := map[string]float64{
		entity.MatrixProfitability:  6,  // margin 2% * 3
		entity.MatrixResource:       59, // 100 - 41% COGS
		entity.MatrixOperations:     10, // 100 - 9% ops * 10
		entity.MatrixFinancial:      53,
		entity.MatrixAutomation:     60,
		entity.MatrixTransformation: 4, // margin 2% * 2
	}
	if len(rec.ProfitMatrix) != len(want) {
		t.Fatalf("matrix size: got %d, want %d", len(rec.ProfitMatrix), len(want))
	}
	for name, w := range want {
		got, ok := rec.ProfitMatrix[name]
		if !ok {
			t.Fatalf("matrix missing %q", name)
		}
		if diff := got - w; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("%s: got %v, want %v", name, got, w)
		}
	}
}

func TestRecommend_ZeroPriceNoPanic(t *testing.T) {
	rec := Recommend(&entity.InputRecord{SellingPrice: 0, PurchaseCost: 100})
	// Percentage rules skip; margin guard keeps the record out of the
	// loss-making rule but inside the fragility rule.
	if len(rec.CriticalIssues) != 1 {
		t.Fatalf("critical issues: got %v, want 1", rec.CriticalIssues)
	}
	if rec.ProfitMatrix[entity.MatrixResource] != 100 {
		t.Fatalf("resource matrix with zero price: got %v, want 100", rec.ProfitMatrix[entity.MatrixResource])
	}
}
