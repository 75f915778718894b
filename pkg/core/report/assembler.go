package report

import (
	"time"

	"bizlens/pkg/core/analysis"
	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/core/insight"
	"bizlens/pkg/core/recommend"
	"bizlens/pkg/models"

	"github.com/google/uuid"
)

// BusinessReport is the caller-facing composition of every pipeline output
// for one analysis call. It is self-contained: persisting or rendering it
// needs no further lookups.
type BusinessReport struct {
	ReportID         string                    `json:"report_id"`
	BusinessID       string                    `json:"business_id"`
	GeneratedAt      time.Time                 `json:"generated_at"`
	BenchmarkVersion string                    `json:"benchmark_version"`
	Business         *models.BusinessSnapshot  `json:"business"`
	Analysis         *analysis.Result          `json:"analysis"`
	PrimaryInsight   insight.Insight           `json:"primary_insight"`
	Problems         []insight.Finding         `json:"problems"`
	Opportunities    []insight.Finding         `json:"opportunities"`
	ImmediateActions []recommend.Recommendation `json:"immediate_actions"`
	StrategicActions []recommend.Recommendation `json:"strategic_actions"`
	Investments      []recommend.Recommendation `json:"investment_recommendations"`
	Plan             recommend.ActionPlan       `json:"action_plan"`
}

// Assembler runs the full pipeline and composes the report. It owns no
// state beyond the engines it delegates to, so one Assembler serves
// concurrent callers.
type Assembler struct {
	engine    *analysis.Engine
	recommend *recommend.Engine
}

// NewAssembler wires an assembler over the given benchmark store.
func NewAssembler(bench *benchmark.Store) *Assembler {
	return &Assembler{
		engine:    analysis.NewEngine(bench),
		recommend: recommend.NewEngine(),
	}
}

// Assemble analyzes the snapshot and composes the full report. The
// economic snapshot is optional. Input is assumed validated; the only
// errors surfaced are the analyzer's missing-required-field failures.
func (a *Assembler) Assemble(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) (*BusinessReport, error) {
	res, err := a.engine.Analyze(biz, econ)
	if err != nil {
		return nil, err
	}

	primary, problems, opportunities := insight.Generate(res, biz)

	return &BusinessReport{
		ReportID:         uuid.NewString(),
		BusinessID:       biz.BusinessID,
		GeneratedAt:      time.Now().UTC(),
		BenchmarkVersion: res.BenchmarkVersion,
		Business:         biz,
		Analysis:         res,
		PrimaryInsight:   primary,
		Problems:         problems,
		Opportunities:    opportunities,
		ImmediateActions: a.recommend.ImmediateActions(res, biz),
		StrategicActions: a.recommend.StrategicActions(res, biz),
		Investments:      a.recommend.InvestmentRecommendations(res, biz),
		Plan:             a.recommend.BuildActionPlan(res, biz),
	}, nil
}

// Analyzer exposes the underlying engine for callers that want the raw
// analysis without the composed report.
func (a *Assembler) Analyzer() *analysis.Engine {
	return a.engine
}
