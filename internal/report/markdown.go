// Package report turns diagnostic results into owner-facing markdown and
// renders the markdown to PDF through headless Chromium.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/oakline/bizdiag/internal/apexaudit"
	"github.com/oakline/bizdiag/internal/diag"
	"github.com/oakline/bizdiag/internal/flashscan"
	"github.com/oakline/bizdiag/internal/fullaudit"
)

const Disclaimer = "This report is an automated diagnostic based on self-reported answers. " +
	"It is a structured starting point for a conversation with an advisor, not financial, " +
	"legal, or accounting advice."

// BuildFrameworkMarkdown renders the full framework envelope as a report.
func BuildFrameworkMarkdown(businessName string, res diag.FrameworkResult) string {
	var b strings.Builder
	writeHeader(&b, "Business Diagnostic Report", businessName)

	fmt.Fprintf(&b, "## Where You Stand\n\n")
	fmt.Fprintf(&b, "- Overall score: **%d / 100**\n", res.OverallScore)
	fmt.Fprintf(&b, "- Gear: **%s**\n", res.Gear.Label)
	fmt.Fprintf(&b, "- Why this gear: %s\n", sanitize(res.Gear.Reason))
	fmt.Fprintf(&b, "- Answer completeness: %d%%\n\n", res.Completeness)
	if res.GearMismatch.Status != diag.MismatchAligned {
		fmt.Fprintf(&b, "> %s\n\n", sanitize(res.GearMismatch.Detail))
	}

	fmt.Fprintf(&b, "## Engine Scores\n\n")
	writeEngineTable(&b, res.EngineScores)

	if len(res.RedFlags) > 0 {
		fmt.Fprintf(&b, "## Red Flags\n\n")
		fmt.Fprintf(&b, "| Severity | Engine | Finding | Recommended Response |\n")
		fmt.Fprintf(&b, "|----------|--------|---------|----------------------|\n")
		for _, f := range res.RedFlags {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				severityLabel(f.Severity), f.Engine, sanitizeCell(f.Description), sanitizeCell(f.RecommendedAction))
		}
		fmt.Fprintf(&b, "\n")
	}

	writeActionSections(&b, res.Actions)

	fmt.Fprintf(&b, "## Question Detail\n\n")
	fmt.Fprintf(&b, "| Question | Points | Engines |\n|----------|--------|--------|\n")
	for _, q := range res.QuestionResults {
		fmt.Fprintf(&b, "| %s | %d / %d | %s |\n",
			sanitizeCell(q.QuestionID), q.PointsAwarded, q.MaxPoints, engineList(q.Engines))
	}
	fmt.Fprintf(&b, "\n%s\n", Disclaimer)
	return b.String()
}

// BuildFlashScanMarkdown renders the six-question scan as a one-page report.
func BuildFlashScanMarkdown(businessName string, res flashscan.Result) string {
	var b strings.Builder
	writeHeader(&b, "Flash Scan Report", businessName)

	fmt.Fprintf(&b, "%s\n\n", sanitize(res.Headline))
	fmt.Fprintf(&b, "- Overall score: **%d / 100**\n", res.OverallScore)
	fmt.Fprintf(&b, "- Gear estimate: **%s**\n", res.GearEstimate.Label)
	fmt.Fprintf(&b, "- Weakest engine: **%s**\n", res.WeakestEngine)
	if res.Constraint != "" {
		fmt.Fprintf(&b, "- Your stated constraint: %s\n", sanitize(res.Constraint))
	}
	fmt.Fprintf(&b, "\n## Engine Scores\n\n")
	writeEngineTable(&b, res.EngineScores)

	fmt.Fprintf(&b, "## Quick Wins\n\n")
	if len(res.QuickWins) == 0 {
		fmt.Fprintf(&b, "No quick wins surfaced. The scan found no engine weak enough to act on this week.\n\n")
	}
	for i, w := range res.QuickWins {
		fmt.Fprintf(&b, "%d. **%s** (%s, effort %d/5)\n", i+1, sanitize(w.Title), w.Engine, w.Effort)
		fmt.Fprintf(&b, "   %s\n", sanitize(w.Description))
		fmt.Fprintf(&b, "   _Why now_: %s\n", sanitize(w.Rationale))
	}
	fmt.Fprintf(&b, "\n%s\n", Disclaimer)
	return b.String()
}

// BuildFullAuditMarkdown renders the 15-rating audit. A needs_more_data
// result produces a short report explaining the completion gate.
func BuildFullAuditMarkdown(businessName string, res fullaudit.Result) string {
	var b strings.Builder
	writeHeader(&b, "Full Audit Report", businessName)

	if res.Status == fullaudit.StatusNeedsMoreData {
		fmt.Fprintf(&b, "## More Answers Needed\n\n")
		fmt.Fprintf(&b, "Only %d%% of the audit questions were answered. The audit needs at least "+
			"%.0f%% to produce reliable department scores. Complete the remaining ratings and re-run it.\n\n",
			res.Completion, fullaudit.CompletionFloor*100)
		fmt.Fprintf(&b, "%s\n", Disclaimer)
		return b.String()
	}

	fmt.Fprintf(&b, "## Where You Stand\n\n")
	fmt.Fprintf(&b, "- Overall score: **%d / 100**\n", res.OverallScore)
	fmt.Fprintf(&b, "- Gear: **%s**\n", res.Gear.Label)
	fmt.Fprintf(&b, "- Risk level: **%s**\n", res.Risk)
	fmt.Fprintf(&b, "- North star: %s\n\n", sanitize(res.NorthStarGoal))

	fmt.Fprintf(&b, "## Department Health\n\n")
	fmt.Fprintf(&b, "| Department | Score | Health |\n|------------|-------|--------|\n")
	for _, e := range []fullaudit.Engine{
		fullaudit.EngineLeadership, fullaudit.EngineOperations, fullaudit.EngineMarketing,
		fullaudit.EngineFinance, fullaudit.EnginePersonnel,
	} {
		r := res.Engines[e]
		fmt.Fprintf(&b, "| %s | %d | %s |\n", e, r.Score, healthLabel(r.Health))
	}
	fmt.Fprintf(&b, "\n")

	if len(res.RedFlags) > 0 {
		fmt.Fprintf(&b, "## Red Flags\n\n")
		for _, f := range res.RedFlags {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", severityLabel(f.Severity), f.Engine, sanitize(f.Description))
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Immediate Actions\n\n")
	writeAuditActions(&b, res.ImmediateActions)
	if len(res.FollowOnActions) > 0 {
		fmt.Fprintf(&b, "## After That\n\n")
		writeAuditActions(&b, res.FollowOnActions)
	}

	if len(res.Departments) > 0 {
		fmt.Fprintf(&b, "## Department Goals\n\n")
		for _, d := range res.Departments {
			fmt.Fprintf(&b, "- **%s**: %s\n", d.Department, sanitize(d.Focus))
		}
		fmt.Fprintf(&b, "\n")
	}
	fmt.Fprintf(&b, "%s\n", Disclaimer)
	return b.String()
}

// BuildApexMarkdown renders the deep-dive audit.
func BuildApexMarkdown(res apexaudit.Result) string {
	var b strings.Builder
	writeHeader(&b, "Apex Audit Report", res.BusinessName)

	fmt.Fprintf(&b, "## Where You Stand\n\n")
	fmt.Fprintf(&b, "- Stage: **%s** (%s)\n", res.Stage, sanitize(res.StageReason))
	fmt.Fprintf(&b, "- Health score: **%d / 100**\n", res.HealthScore)
	fmt.Fprintf(&b, "- Data completeness: %d%% (confidence %d%%)\n\n", res.Completeness, res.Confidence)

	fmt.Fprintf(&b, "## Unit Economics\n\n")
	econ := res.UnitEconomics
	if econ.RatioAssessment == apexaudit.RatioUnknown {
		fmt.Fprintf(&b, "- LTV to CAC ratio: not computable without an acquisition cost\n")
	} else {
		fmt.Fprintf(&b, "- LTV to CAC ratio: **%.1f** (%s)\n", econ.CACLTVRatio, econ.RatioAssessment)
	}
	if econ.RunwayMonths >= apexaudit.RunwayCapMonths {
		fmt.Fprintf(&b, "- Cash runway: %d+ months\n\n", apexaudit.RunwayCapMonths)
	} else {
		fmt.Fprintf(&b, "- Cash runway: %.1f months at a burn of $%s/month\n\n",
			econ.RunwayMonths, fmtUSDf(econ.MonthlyNetBurn))
	}

	if len(res.Opportunities) > 0 {
		fmt.Fprintf(&b, "## Opportunities\n\n")
		for _, o := range res.Opportunities {
			fmt.Fprintf(&b, "- **%s** — %s\n", sanitize(o.Title), sanitize(o.Detail))
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(res.Risks) > 0 {
		fmt.Fprintf(&b, "## Risks\n\n")
		for _, r := range res.Risks {
			fmt.Fprintf(&b, "- **%s** — %s\n", sanitize(r.Title), sanitize(r.Detail))
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Action Plan: %s\n\n", sanitize(res.ActionPlan.Focus))
	fmt.Fprintf(&b, "### This Week\n\n")
	writeNumbered(&b, res.ActionPlan.Immediate)
	fmt.Fprintf(&b, "### Next 90 Days\n\n")
	writeNumbered(&b, res.ActionPlan.ShortTerm)
	fmt.Fprintf(&b, "### This Year\n\n")
	writeNumbered(&b, res.ActionPlan.MediumTerm)

	fmt.Fprintf(&b, "%s\n", Disclaimer)
	return b.String()
}

func writeHeader(b *strings.Builder, title, businessName string) {
	fmt.Fprintf(b, "# %s\n\n", title)
	if businessName != "" {
		fmt.Fprintf(b, "- Business: %s\n", sanitize(businessName))
	}
	fmt.Fprintf(b, "- Date: %s\n\n", time.Now().Format("January 2, 2006"))
}

func writeEngineTable(b *strings.Builder, scores map[diag.Engine]int) {
	fmt.Fprintf(b, "| Engine | Score | Reading |\n|--------|-------|--------|\n")
	for _, e := range diag.AllEngines {
		score, ok := scores[e]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %d | %s |\n", e, score, scoreReading(score))
	}
	fmt.Fprintf(b, "\n")
}

func writeActionSections(b *strings.Builder, actions []diag.RecommendedAction) {
	var doNow, doNext []diag.RecommendedAction
	for _, a := range actions {
		if a.Priority == diag.PriorityDoNow {
			doNow = append(doNow, a)
		} else {
			doNext = append(doNext, a)
		}
	}
	fmt.Fprintf(b, "## Do Now\n\n")
	if len(doNow) == 0 {
		fmt.Fprintf(b, "Nothing urgent surfaced. Start with the Do Next list.\n\n")
	}
	for i, a := range doNow {
		writeAction(b, i+1, a)
	}
	if len(doNext) > 0 {
		fmt.Fprintf(b, "## Do Next\n\n")
		for i, a := range doNext {
			writeAction(b, i+1, a)
		}
	}
}

func writeAction(b *strings.Builder, n int, a diag.RecommendedAction) {
	fmt.Fprintf(b, "%d. **%s** (%s, owner: %s, effort %d/5)\n", n, sanitize(a.Title), a.Engine, a.Owner, a.Effort)
	fmt.Fprintf(b, "   %s\n", sanitize(a.Description))
	if a.Rationale != "" {
		fmt.Fprintf(b, "   _Why_: %s\n", sanitize(a.Rationale))
	}
	fmt.Fprintf(b, "\n")
}

func writeAuditActions(b *strings.Builder, actions []fullaudit.Action) {
	for i, a := range actions {
		fmt.Fprintf(b, "%d. **%s** (%s, owner: %s, effort %d/5)\n", i+1, sanitize(a.Title), a.Engine, a.Owner, a.Effort)
		fmt.Fprintf(b, "   %s\n\n", sanitize(a.Description))
	}
	if len(actions) == 0 {
		fmt.Fprintf(b, "None.\n\n")
	}
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, sanitize(it))
	}
	fmt.Fprintf(b, "\n")
}

func scoreReading(score int) string {
	switch {
	case score < diag.CriticalScoreThreshold:
		return "weak"
	case score < diag.WarningScoreThreshold:
		return "developing"
	default:
		return "strong"
	}
}

func severityLabel(s diag.Severity) string {
	if s == diag.SeverityCritical {
		return "CRITICAL"
	}
	return "Warning"
}

func healthLabel(h fullaudit.Health) string {
	switch h {
	case fullaudit.HealthGreen:
		return "Green"
	case fullaudit.HealthYellow:
		return "Yellow"
	default:
		return "Red"
	}
}

func engineList(engines []diag.Engine) string {
	parts := make([]string, len(engines))
	for i, e := range engines {
		parts[i] = string(e)
	}
	return strings.Join(parts, ", ")
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// sanitizeCell additionally escapes pipes so table columns stay intact.
func sanitizeCell(s string) string {
	return strings.ReplaceAll(sanitize(s), "|", "\\|")
}

func fmtUSDf(n float64) string {
	return fmtUSD(int64(n))
}

// fmtUSD formats a dollar amount with comma separators.
func fmtUSD(n int64) string {
	if n < 0 {
		return "-" + fmtUSD(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
