package engine

import (
	"testing"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

func TestComputeCohortLTV_Shape(t *testing.T) {
	in := testRecord() // 12-month lifespan
	out := ComputeCohortLTV(in, 30)

	if len(out.RetentionByMonth) != 12 {
		t.Fatalf("retention length: got %d, want 12", len(out.RetentionByMonth))
	}
	if len(out.RevenueByMonth) != 12 || len(out.CumulativeLTV) != 12 {
		t.Fatalf("parallel series length mismatch: %d revenue, %d cumulative",
			len(out.RevenueByMonth), len(out.CumulativeLTV))
	}
	if out.LTVSimple <= 0 {
		t.Fatalf("ltv_simple: got %v, want > 0", out.LTVSimple)
	}
}

func TestComputeCohortLTV_HorizonCap(t *testing.T) {
	in := testRecord()
	in.CustomerLifespanMonths = 60
	out := ComputeCohortLTV(in, 30)
	if len(out.RetentionByMonth) != 36 {
		t.Fatalf("retention length: got %d, want 36", len(out.RetentionByMonth))
	}
}

func TestComputeCohortLTV_RetentionMonotone(t *testing.T) {
	out := ComputeCohortLTV(testRecord(), 30)
	for i := 1; i < len(out.RetentionByMonth); i++ {
		if out.RetentionByMonth[i] > out.RetentionByMonth[i-1] {
			t.Fatalf("retention increased at month %d: %v -> %v",
				i, out.RetentionByMonth[i-1], out.RetentionByMonth[i])
		}
	}
}

func TestComputeCohortLTV_DiscountedBelowSimple(t *testing.T) {
	out := ComputeCohortLTV(testRecord(), 30)
	if out.LTVDiscounted >= out.LTVSimple {
		t.Fatalf("discounted %v should be below simple %v", out.LTVDiscounted, out.LTVSimple)
	}
}

func TestComputeCohortLTV_CumulativeIsRunningSum(t *testing.T) {
	out := ComputeCohortLTV(testRecord(), 30)
	sum := 0.0
	for i, rev := range out.RevenueByMonth {
		sum += rev
		if diff := out.CumulativeLTV[i] - sum; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("cumulative[%d]: got %v, want %v", i, out.CumulativeLTV[i], sum)
		}
	}
}

func TestComputeCohortLTV_DegenerateChurn(t *testing.T) {
	in := testRecord()
	in.RepeatPurchaseRate = 150 // churn would be -0.5

	out := ComputeCohortLTV(in, 30)
	// Default 0.5 churn: retention halves every month from the 1.5 base.
	if out.RetentionByMonth[0] != 1.5 {
		t.Fatalf("retention[0]: got %v, want 1.5", out.RetentionByMonth[0])
	}
	if out.RetentionByMonth[1] != 0.75 {
		t.Fatalf("retention[1]: got %v, want 0.75", out.RetentionByMonth[1])
	}
}

func TestComputeCohortLTV_ZeroLifespan(t *testing.T) {
	in := testRecord()
	in.CustomerLifespanMonths = 0

	out := ComputeCohortLTV(in, 30)
	if len(out.RetentionByMonth) != 0 || out.LTVSimple != 0 || out.LTVDiscounted != 0 {
		t.Fatalf("zero lifespan should yield empty projection: %+v", out)
	}
}

func TestComputeCohortLTV_NegativeMarginRevenue(t *testing.T) {
	out := ComputeCohortLTV(testRecord(), -10)
	for i, rev := range out.RevenueByMonth {
		if rev > 0 {
			t.Fatalf("revenue[%d]: got %v, want <= 0 for negative margin", i, rev)
		}
	}
}

func TestAnalyzeLTVCAC(t *testing.T) {
	out := AnalyzeLTVCAC(testRecord())
	// (12/12) * 2.5 purchases * 1000 price = 2500
	if out.LTV != 2500 {
		t.Fatalf("ltv: got %v, want 2500", out.LTV)
	}
	if out.CAC != 140 {
		t.Fatalf("cac: got %v, want 140", out.CAC)
	}
	if diff := out.Ratio - 2500.0/140; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ratio: got %v", out.Ratio)
	}
	// 140 / (1000 * 2.5 / 12)
	if diff := out.PaybackMonths - 0.672; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("payback: got %v, want 0.672", out.PaybackMonths)
	}
}

func TestAnalyzeLTVCAC_Guards(t *testing.T) {
	out := AnalyzeLTVCAC(&entity.InputRecord{SellingPrice: 0, CustomerLifespanMonths: 12})
	if out.Ratio != 0 || out.PaybackMonths != 0 {
		t.Fatalf("guards: got ratio %v payback %v, want 0/0", out.Ratio, out.PaybackMonths)
	}
}
