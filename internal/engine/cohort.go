package engine

import (
	"math"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

const (
	// Projection horizon cap in months.
	maxCohortMonths = 36

	// Fallback churn when the repeat-purchase rate yields a degenerate value.
	defaultChurnRate = 0.5

	annualDiscountRate = 0.10
)

// ComputeCohortLTV projects retention-decayed revenue month by month for a
// customer cohort. profitMargin is the percent margin from a previously
// computed economics snapshot; revenue terms are profit-weighted with it.
func ComputeCohortLTV(in *entity.InputRecord, profitMargin float64) entity.CohortLTV {
	churn := 1 - in.RepeatPurchaseRate/100
	if churn <= 0 || churn >= 1 {
		churn = defaultChurnRate
	}

	horizon := in.CustomerLifespanMonths
	if horizon > maxCohortMonths {
		horizon = maxCohortMonths
	}
	if horizon < 0 {
		horizon = 0
	}

	// Annual 10% compounded monthly, ~0.797% per month.
	monthlyDiscount := math.Pow(1+annualDiscountRate, 1.0/12) - 1

	out := entity.CohortLTV{
		RetentionByMonth: make([]float64, 0, horizon),
		RevenueByMonth:   make([]float64, 0, horizon),
		CumulativeLTV:    make([]float64, 0, horizon),
	}

	baseRetention := in.RepeatPurchaseRate / 100
	for i := 0; i < horizon; i++ {
		retention := baseRetention * math.Pow(1-churn, float64(i))
		revenue := in.SellingPrice * retention * (profitMargin / 100)

		out.RetentionByMonth = append(out.RetentionByMonth, retention)
		out.RevenueByMonth = append(out.RevenueByMonth, revenue)

		out.LTVSimple += revenue
		out.CumulativeLTV = append(out.CumulativeLTV, out.LTVSimple)
		out.LTVDiscounted += revenue / math.Pow(1+monthlyDiscount, float64(i))
	}

	return out
}
