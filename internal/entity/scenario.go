package entity

// ScenarioDelta describes signed fractional perturbations applied to a cloned
// record before re-running the economics engine. A PriceChange of -0.15 cuts
// the selling price by 15%.
type ScenarioDelta struct {
	PriceChange         float64 `json:"price_change"`
	CostChange          float64 `json:"cost_change"`
	VolumeChange        float64 `json:"volume_change"`
	MarketingEfficiency float64 `json:"marketing_efficiency"`
}

// ScenarioSet maps scenario name to the economics recomputed under its delta.
type ScenarioSet map[string]EconomicsResult

// Standard scenario names.
const (
	ScenarioPessimistic = "pessimistic"
	ScenarioRealistic   = "realistic"
	ScenarioOptimistic  = "optimistic"
)

// StandardScenarios returns the three predefined planning scenarios. Callers
// get a fresh map so adding custom deltas does not bleed between runs.
func StandardScenarios() map[string]ScenarioDelta {
	return map[string]ScenarioDelta{
		ScenarioPessimistic: {
			PriceChange:         -0.15,
			CostChange:          0.10,
			VolumeChange:        -0.30,
			MarketingEfficiency: -0.20,
		},
		ScenarioRealistic: {
			PriceChange:         0.00,
			CostChange:          0.05,
			VolumeChange:        0.00,
			MarketingEfficiency: 0.00,
		},
		ScenarioOptimistic: {
			PriceChange:         0.10,
			CostChange:          -0.05,
			VolumeChange:        0.50,
			MarketingEfficiency: 0.25,
		},
	}
}
