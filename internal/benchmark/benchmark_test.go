package benchmark

import "testing"

func TestSurchargeRate(t *testing.T) {
	if got := SurchargeRate("OZON"); got != 0.02 {
		t.Fatalf("OZON surcharge: got %v, want 0.02", got)
	}
	if got := SurchargeRate("Wildberries"); got != 0 {
		t.Fatalf("Wildberries surcharge: got %v, want 0", got)
	}
	if got := SurchargeRate("unknown"); got != 0 {
		t.Fatalf("unknown surcharge: got %v, want 0", got)
	}
}

func TestCommissionFor_Known(t *testing.T) {
	p := CommissionFor("OZON", "electronics")
	if p.CommissionRate != 12.0 {
		t.Fatalf("commission: got %v, want 12.0", p.CommissionRate)
	}
	if p.MandatoryMarketing != 2.0 {
		t.Fatalf("mandatory marketing: got %v, want 2.0", p.MandatoryMarketing)
	}
}

func TestCommissionFor_CaseInsensitiveCategory(t *testing.T) {
	p := CommissionFor("Wildberries", "  Clothing ")
	if p.CommissionRate != 11.0 {
		t.Fatalf("commission: got %v, want 11.0", p.CommissionRate)
	}
}

func TestCommissionFor_UnknownCategoryAverages(t *testing.T) {
	p := CommissionFor("OZON", "pet supplies")
	// Average over the seven OZON categories.
	want := (12.0 + 15.0 + 18.0 + 20.0 + 16.0 + 14.0 + 13.0) / 7
	if diff := p.CommissionRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("average commission: got %v, want %v", p.CommissionRate, want)
	}
}

func TestCommissionFor_UnknownMarketplace(t *testing.T) {
	p := CommissionFor("Etsy", "clothing")
	if p.CommissionRate != 15.0 || p.MandatoryMarketing != 0 {
		t.Fatalf("default profile: got %+v", p)
	}
}

func TestBenchmarkFor_Fallback(t *testing.T) {
	b := BenchmarkFor("Etsy", "clothing")
	if b.AvgMargin != 0.25 {
		t.Fatalf("default benchmark margin: got %v, want 0.25", b.AvgMargin)
	}
}

func TestSeasonalFactor(t *testing.T) {
	if got := SeasonalFactor(12); got != 1.40 {
		t.Fatalf("December: got %v, want 1.40", got)
	}
	if got := SeasonalFactor(0); got != 1.0 {
		t.Fatalf("out of range: got %v, want 1.0", got)
	}
}

func TestFulfillmentCost_Tiers(t *testing.T) {
	cases := []struct {
		weight float64
		want   float64
	}{
		{0.3, 50.0},
		{1.0, 80.0},
		{1.5, 120.0},
		{3.0, 180.0},
	}
	for _, c := range cases {
		if got := FulfillmentCost(c.weight); got != c.want {
			t.Fatalf("weight %v: got %v, want %v", c.weight, got, c.want)
		}
	}
}
