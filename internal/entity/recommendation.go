package entity

// Profit matrix category names. The matrix always carries exactly these six
// keys, each scored 0-100.
const (
	MatrixProfitability  = "Profitability"
	MatrixResource       = "Resource Optimization"
	MatrixOperations     = "Operations Excellence"
	MatrixFinancial      = "Financial Intelligence"
	MatrixAutomation     = "Intelligence Automation"
	MatrixTransformation = "Transformation Strategy"
)

// ActionPlan groups recommended actions by time horizon.
type ActionPlan struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// RecommendationSet is the categorized output of the recommendation rules.
// Findings accumulate in rule order; a record can trigger several critical
// issues at once.
type RecommendationSet struct {
	CriticalIssues []string           `json:"critical_issues"`
	Improvements   []string           `json:"improvements"`
	Strengths      []string           `json:"strengths"`
	ActionPlan     ActionPlan         `json:"action_plan"`
	ProfitMatrix   map[string]float64 `json:"profit_matrix"`
	TotalScore     int                `json:"total_score"`
}
