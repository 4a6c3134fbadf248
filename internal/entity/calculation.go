package entity

import "time"

// CalculationVersion marks the save format written by this build.
const CalculationVersion = "1.0"

// Calculation is a saved wizard session: the raw input record plus progress
// metadata. It round-trips through storage verbatim, without re-running the
// engine.
type Calculation struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Record         InputRecord `json:"record"`
	SavedAt        time.Time   `json:"saved_at"`
	Version        string      `json:"version"`
	CurrentStep    int         `json:"current_step"`
	CompletedSteps []int       `json:"completed_steps"`
}
