package report

import (
	"bytes"
	"fmt"
	"strings"

	"bizlens/pkg/core/insight"
	"bizlens/pkg/core/recommend"

	"github.com/yuin/goldmark"
)

// Markdown renders the report as a human-readable Markdown document.
func (r *BusinessReport) Markdown() string {
	var b strings.Builder

	name := r.Business.Name
	if name == "" {
		name = r.BusinessID
	}
	fmt.Fprintf(&b, "# Performance Report: %s\n\n", name)
	fmt.Fprintf(&b, "Generated %s · benchmark tables %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.BenchmarkVersion)

	o := r.Analysis.Overall
	fmt.Fprintf(&b, "## Overall: %s (%.0f/100)\n\n", o.Grade, o.Score)
	fmt.Fprintf(&b, "| Component | Weighted points |\n|---|---|\n")
	fmt.Fprintf(&b, "| Efficiency | %.1f |\n", o.EfficiencyComponent)
	fmt.Fprintf(&b, "| Market position | %.1f |\n", o.MarketComponent)
	fmt.Fprintf(&b, "| Financial health | %.1f |\n", o.HealthComponent)
	fmt.Fprintf(&b, "| Growth | %.1f |\n", o.GrowthComponent)
	fmt.Fprintf(&b, "| Risk (inverted) | %.1f |\n\n", o.RiskComponent)

	fmt.Fprintf(&b, "## %s\n\n", r.PrimaryInsight.Title)
	fmt.Fprintf(&b, "%s\n\n", r.PrimaryInsight.Message)
	for _, f := range r.PrimaryInsight.Facts {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n")

	m := r.Analysis.Market
	fmt.Fprintf(&b, "## Market position\n\n")
	fmt.Fprintf(&b, "Revenue runs at %.0f%% of the $%.0f/month benchmark (%s, ~%.0fth percentile).\n\n",
		m.PerformanceRatio*100, m.BenchmarkRevenue, strings.ReplaceAll(m.Category, "_", " "), m.Percentile)

	writeFindings(&b, "Problems", r.Problems)
	writeFindings(&b, "Opportunities", r.Opportunities)

	writeRecommendations(&b, "Immediate actions (30 days)", r.ImmediateActions)
	writeRecommendations(&b, "Strategic actions", r.StrategicActions)
	writeRecommendations(&b, "Investment", r.Investments)

	fmt.Fprintf(&b, "## Action plan\n\n%s\n\n", r.Plan.Summary)
	for _, ms := range r.Plan.Milestones {
		fmt.Fprintf(&b, "**%s — %s**\n\n", ms.Horizon, ms.Focus)
		for _, s := range ms.Steps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts the Markdown rendering to HTML.
func (r *BusinessReport) HTML() (string, error) {
	var out bytes.Buffer
	if err := goldmark.Convert([]byte(r.Markdown()), &out); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return out.String(), nil
}

func writeFindings(b *strings.Builder, heading string, findings []insight.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for i, f := range findings {
		fmt.Fprintf(b, "%d. **%s** — %s", i+1, f.Title, f.Description)
		if f.ImpactAmount > 0 {
			fmt.Fprintf(b, " (est. $%.0f)", f.ImpactAmount)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, heading string, recs []recommend.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, rec := range recs {
		fmt.Fprintf(b, "- **%s** (%s, %s): %s\n", rec.Title, rec.Timeframe, rec.Difficulty, rec.SpecificAction)
	}
	b.WriteString("\n")
}
