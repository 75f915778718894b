package insight

// Insight types produced by the primary-insight rule table.
const (
	TypeCriticalFinancial  = "critical_financial"
	TypeUnderperformance   = "significant_underperformance"
	TypePerformanceGap     = "performance_gap"
	TypeTopPerformer       = "top_performer"
	TypeSteadyAverage      = "steady_average"
	TypeErodingLeader      = "eroding_leader"
	TypeMixedSignals       = "mixed_signals"
)

// Urgency tags. Each rule in the decision table fixes one; they are not
// derived from scores.
const (
	UrgencyImmediate = "immediate"
	UrgencyHigh      = "high"
	UrgencyMedium    = "medium"
	UrgencyLow       = "low"
)

// Finding kinds.
const (
	KindProblem     = "problem"
	KindOpportunity = "opportunity"
)

// Insight is the single primary narrative selected for a report.
// Confidence is a fixed property of whichever decision-table rule fired,
// always within [0,1].
type Insight struct {
	Type       string   `json:"type"`
	Urgency    string   `json:"urgency"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Facts      []string `json:"supporting_facts"`
	Confidence float64  `json:"confidence"`
}

// Finding is one identified problem or opportunity. ImpactScore drives the
// ranking; ImpactAmount is the USD estimate attached to the finding.
// Findings are transient: ranked, truncated to the top three per kind, and
// never persisted by this package.
type Finding struct {
	Kind         string  `json:"kind"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImpactAmount float64 `json:"impact_amount"`
	ImpactScore  float64 `json:"impact_score"`
	// Urgency is set for problems, Ease for opportunities.
	Urgency string `json:"urgency,omitempty"`
	Ease    string `json:"ease,omitempty"`
}
