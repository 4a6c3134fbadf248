package engine

import "github.com/Fizik0/MarketUnitCalc/internal/entity"

// RunScenarios applies each named delta to its own clone of the base record
// and re-runs the economics engine. The base record is never mutated and
// clones do not alias each other.
//
// Cost deltas scale the raw COGS fields rather than any cost aggregate, so a
// scenario composes with the cost aggregators exactly like direct input.
func RunScenarios(base *entity.InputRecord, scenarios map[string]entity.ScenarioDelta) entity.ScenarioSet {
	results := make(entity.ScenarioSet, len(scenarios))
	for name, delta := range scenarios {
		clone := ApplyDelta(base, delta)
		results[name] = Compute(clone)
	}
	return results
}

// ApplyDelta returns a clone of the record with a scenario's perturbations
// applied. Fields left at their zero default stay zero after scaling.
func ApplyDelta(base *entity.InputRecord, delta entity.ScenarioDelta) *entity.InputRecord {
	clone := base.Clone()

	clone.SellingPrice *= 1 + delta.PriceChange

	clone.PurchaseCost *= 1 + delta.CostChange
	clone.PackagingCost *= 1 + delta.CostChange
	clone.LabelingCost *= 1 + delta.CostChange
	clone.QualityControl *= 1 + delta.CostChange
	clone.Certification *= 1 + delta.CostChange

	clone.MonthlySalesVolume *= 1 + delta.VolumeChange

	clone.PPCCostPerUnit *= 1 + delta.MarketingEfficiency
	clone.ExternalMarketing *= 1 + delta.MarketingEfficiency
	clone.InfluencerMarketing *= 1 + delta.MarketingEfficiency
	clone.ContentCreation *= 1 + delta.MarketingEfficiency

	return clone
}
