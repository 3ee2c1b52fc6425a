package diag

import (
	"fmt"
	"sort"
)

// ActionContext is everything trigger evaluation and priority resolution
// need from a finished scoring pass.
type ActionContext struct {
	EngineScores    map[Engine]int
	QuestionResults []QuestionResult
	Flags           []RedFlag
	SizeBand        string
}

var triggerRank = map[TriggerKind]int{
	TriggerCriticalFlag: 0,
	TriggerWeakEngine:   1,
	TriggerWarningFlag:  2,
	TriggerQuestionWeak: 3,
}

// GenerateActions evaluates every template against the context, resolves
// priority and ownership, orders, deduplicates, and caps at DoNowCap do_now
// plus DoNextCap do_next actions.
func GenerateActions(templates []ActionTemplate, actx ActionContext) []RecommendedAction {
	return GenerateActionsCapped(templates, actx, DoNowCap, DoNextCap)
}

// GenerateActionsCapped is GenerateActions with mode-specific bucket caps.
func GenerateActionsCapped(templates []ActionTemplate, actx ActionContext, doNowCap, doNextCap int) []RecommendedAction {
	type triggered struct {
		tmpl   ActionTemplate
		action RecommendedAction
	}

	var fired []triggered
	for _, t := range templates {
		rationale, ok := evaluateTrigger(t, actx)
		if !ok {
			continue
		}
		fired = append(fired, triggered{
			tmpl: t,
			action: RecommendedAction{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Priority:    resolvePriority(t, actx),
				Owner:       resolveOwner(t, actx.SizeBand),
				Effort:      t.Effort,
				Engine:      t.Engine,
				Rationale:   rationale,
			},
		})
	}

	// Worst engines first, cheapest fixes first within a trigger kind.
	sort.SliceStable(fired, func(i, j int) bool {
		ri, rj := triggerRank[fired[i].tmpl.Trigger], triggerRank[fired[j].tmpl.Trigger]
		if ri != rj {
			return ri < rj
		}
		si, sj := actx.EngineScores[fired[i].tmpl.Engine], actx.EngineScores[fired[j].tmpl.Engine]
		if si != sj {
			return si < sj
		}
		return fired[i].tmpl.Effort < fired[j].tmpl.Effort
	})

	seen := make(map[string]int, len(fired))
	deduped := make([]RecommendedAction, 0, len(fired))
	for _, f := range fired {
		if idx, dup := seen[f.action.ID]; dup {
			if f.action.Priority == PriorityDoNow {
				deduped[idx].Priority = PriorityDoNow
			}
			continue
		}
		seen[f.action.ID] = len(deduped)
		deduped = append(deduped, f.action)
	}

	var doNow, doNext []RecommendedAction
	for _, a := range deduped {
		if a.Priority == PriorityDoNow {
			doNow = append(doNow, a)
		} else {
			doNext = append(doNext, a)
		}
	}
	if len(doNow) > doNowCap {
		doNow = doNow[:doNowCap]
	}
	if len(doNext) > doNextCap {
		doNext = doNext[:doNextCap]
	}
	return append(doNow, doNext...)
}

func evaluateTrigger(t ActionTemplate, actx ActionContext) (string, bool) {
	score, scored := actx.EngineScores[t.Engine]

	switch t.Trigger {
	case TriggerWeakEngine:
		if scored && score < WarningScoreThreshold {
			return fmt.Sprintf("%s scored %d, below the healthy threshold of %d", t.Engine, score, WarningScoreThreshold), true
		}
	case TriggerCriticalFlag:
		if scored && score < CriticalScoreThreshold {
			return fmt.Sprintf("%s scored %d, below the critical threshold of %d", t.Engine, score, CriticalScoreThreshold), true
		}
		if f, ok := findFlag(actx.Flags, t.Engine, SeverityCritical); ok {
			return fmt.Sprintf("critical flag on %s: %s", t.Engine, f.Description), true
		}
	case TriggerWarningFlag:
		if scored && score >= CriticalScoreThreshold && score < WarningScoreThreshold {
			return fmt.Sprintf("%s scored %d, inside the warning band", t.Engine, score), true
		}
		if f, ok := findFlag(actx.Flags, t.Engine, SeverityWarning); ok {
			return fmt.Sprintf("warning flag on %s: %s", t.Engine, f.Description), true
		}
	case TriggerQuestionWeak:
		if r, ok := findQuestionResult(actx.QuestionResults, t.QuestionID); ok && r.PointsAwarded < r.MaxPoints {
			return fmt.Sprintf("answer to %q scored %d of %d", t.QuestionID, r.PointsAwarded, r.MaxPoints), true
		}
	}
	return "", false
}

// resolvePriority applies the escalation ladder; first match wins, falling
// back to the template's own default.
func resolvePriority(t ActionTemplate, actx ActionContext) Priority {
	score, scored := actx.EngineScores[t.Engine]

	switch {
	case t.Trigger == TriggerCriticalFlag:
		return PriorityDoNow
	case scored && score < CriticalScoreThreshold:
		return PriorityDoNow
	case t.Trigger == TriggerWeakEngine && t.Effort <= 2:
		return PriorityDoNow
	case t.Trigger == TriggerQuestionWeak && t.Effort <= 2 && questionFlagged(actx.Flags, t.QuestionID):
		return PriorityDoNow
	case t.Trigger == TriggerWarningFlag && t.Effort <= 2:
		return PriorityDoNow
	default:
		return t.DefaultPriority
	}
}

func resolveOwner(t ActionTemplate, sizeBand string) string {
	if largeSizeBands[sizeBand] {
		return t.OwnerLarge
	}
	return t.OwnerSmall
}

func findFlag(flags []RedFlag, e Engine, sev Severity) (RedFlag, bool) {
	for _, f := range flags {
		if f.Engine == e && f.Severity == sev {
			return f, true
		}
	}
	return RedFlag{}, false
}

func findQuestionResult(results []QuestionResult, questionID string) (QuestionResult, bool) {
	if questionID == "" {
		return QuestionResult{}, false
	}
	for _, r := range results {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return QuestionResult{}, false
}

func questionFlagged(flags []RedFlag, questionID string) bool {
	for _, f := range flags {
		if f.QuestionID == questionID {
			return true
		}
	}
	return false
}
