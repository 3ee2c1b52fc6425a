package fullaudit

import (
	"fmt"
	"math"
	"sort"

	"github.com/oakline/bizdiag/internal/diag"
)

// RunFullAuditAnalysis never returns an error: below the completion gate it
// returns a well-formed needs_more_data result the UI can prompt from.
func RunFullAuditAnalysis(data AuditData) Result {
	filled := 0
	for _, f := range ratingFields {
		if f.value(data) > 0 {
			filled++
		}
	}
	completion := float64(filled) / float64(len(ratingFields))
	completionPct := int(math.Round(completion * 100))

	if completion < CompletionFloor {
		return Result{Status: StatusNeedsMoreData, Completion: completionPct}
	}

	engines := scoreEngines(data)
	overall := overallScore(engines)
	flags := detectFlags(engines)
	immediate, followOn := planActions(engines)

	return Result{
		Status:           StatusComplete,
		Completion:       completionPct,
		Engines:          engines,
		OverallScore:     overall,
		Gear:             auditGear(overall),
		Risk:             assessRisk(data, flags),
		RedFlags:         flags,
		ImmediateActions: immediate,
		FollowOnActions:  followOn,
		Departments:      departmentGoals(engines),
		NorthStarGoal:    northStarGoals[lowestEngines(engines)[0]],
	}
}

// scoreEngines averages each engine's answered ratings after normalizing to
// 0-100 and flipping the inverted scales. An engine with no answered ratings
// takes the neutral baseline.
func scoreEngines(data AuditData) map[Engine]EngineReport {
	ratings := map[Engine][]int{}
	for _, f := range ratingFields {
		r := f.value(data)
		if r <= 0 {
			continue
		}
		if f.inverted {
			r = diag.InvertRating(r)
		}
		ratings[f.engine] = append(ratings[f.engine], r)
	}

	engines := make(map[Engine]EngineReport, len(allEngines))
	for _, e := range allEngines {
		score := diag.MeanRatingScore(ratings[e])
		engines[e] = EngineReport{Score: score, Health: healthFor(score)}
	}
	return engines
}

func healthFor(score int) Health {
	switch {
	case score >= diag.WarningScoreThreshold:
		return HealthGreen
	case score >= diag.CriticalScoreThreshold:
		return HealthYellow
	default:
		return HealthRed
	}
}

func overallScore(engines map[Engine]EngineReport) int {
	sum := 0
	for _, e := range allEngines {
		sum += engines[e].Score
	}
	return int(math.Round(float64(sum) / float64(len(allEngines))))
}

// auditGear uses the Full Audit's own score breakpoints. These are distinct
// from the generic classifier's by design.
func auditGear(overall int) diag.Gear {
	level := 5
	switch {
	case overall < 30:
		level = 1
	case overall < 50:
		level = 2
	case overall < 70:
		level = 3
	case overall < 85:
		level = 4
	}
	def := diag.GearByLevel(level)
	return diag.Gear{
		Level:  level,
		Label:  def.Label,
		Reason: fmt.Sprintf("derived from the overall audit score of %d", overall),
	}
}

func detectFlags(engines map[Engine]EngineReport) []Flag {
	var flags []Flag
	for _, e := range allEngines {
		rep := engines[e]
		if rep.Score >= diag.WarningScoreThreshold {
			continue
		}
		severity := diag.SeverityWarning
		if rep.Score < diag.CriticalScoreThreshold {
			severity = diag.SeverityCritical
		}
		flags = append(flags, Flag{
			Engine:      e,
			Description: fmt.Sprintf("%s scored %d out of 100", e, rep.Score),
			Severity:    severity,
		})
	}
	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].Severity != flags[j].Severity {
			return flags[i].Severity == diag.SeverityCritical
		}
		return flags[i].Engine < flags[j].Engine
	})
	return flags
}

// assessRisk grades the downside. Cash-flow rated 2 or worse and retention
// risk rated 4 or worse are direct high-risk conditions regardless of flags.
func assessRisk(data AuditData, flags []Flag) RiskLevel {
	critical := 0
	for _, f := range flags {
		if f.Severity == diag.SeverityCritical {
			critical++
		}
	}
	switch {
	case data.CashFlow > 0 && data.CashFlow <= 2,
		data.RetentionRisk >= 4,
		critical >= 2:
		return RiskHigh
	case len(flags) >= 2 || critical == 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// planActions draws 3 immediate actions from the three lowest-scoring
// engines and 2 follow-on actions from the two lowest.
func planActions(engines map[Engine]EngineReport) ([]Action, []Action) {
	lowest := lowestEngines(engines)

	immediate := make([]Action, 0, ImmediateActionCap)
	for _, e := range lowest[:ImmediateActionCap] {
		immediate = append(immediate, buildAction(e, 0, diag.PriorityDoNow))
	}
	followOn := make([]Action, 0, FollowOnActionCap)
	for _, e := range lowest[:FollowOnActionCap] {
		followOn = append(followOn, buildAction(e, 1, diag.PriorityDoNext))
	}
	return immediate, followOn
}

func buildAction(e Engine, rank int, priority diag.Priority) Action {
	t := engineActions[e][rank]
	return Action{
		Title:       t.title,
		Description: t.description,
		Engine:      e,
		Priority:    priority,
		Owner:       t.owner,
		Effort:      t.effort,
	}
}

// lowestEngines orders all engines by ascending score, ties broken by name
// so results stay deterministic.
func lowestEngines(engines map[Engine]EngineReport) []Engine {
	ordered := append([]Engine(nil), allEngines...)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := engines[ordered[i]].Score, engines[ordered[j]].Score
		if si != sj {
			return si < sj
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

func departmentGoals(engines map[Engine]EngineReport) []DepartmentGoal {
	goals := make([]DepartmentGoal, 0, len(allEngines))
	for _, e := range allEngines {
		rep := engines[e]
		focus := "maintain: keep the current system running and measured"
		switch rep.Health {
		case HealthRed:
			focus = "rebuild: this area needs structural work this quarter"
		case HealthYellow:
			focus = "improve: one meaningful upgrade this quarter"
		}
		goals = append(goals, DepartmentGoal{Department: e, Focus: focus})
	}
	return goals
}
