package diag

import (
	"fmt"
	"sort"
)

// DetectFlags merges engine-score flags and question-level flags into one
// list sorted critical-first, then by engine name.
func DetectFlags(scores map[Engine]int, results []QuestionResult) []RedFlag {
	flags := append(engineFlags(scores), questionFlags(results)...)
	SortFlags(flags)
	return flags
}

func engineFlags(scores map[Engine]int) []RedFlag {
	var flags []RedFlag
	for _, e := range AllEngines {
		score, ok := scores[e]
		if !ok || score >= WarningScoreThreshold {
			continue
		}
		severity := SeverityWarning
		if score < CriticalScoreThreshold {
			severity = SeverityCritical
		}
		flags = append(flags, RedFlag{
			ID:                fmt.Sprintf("engine-%s", e),
			Engine:            e,
			Description:       fmt.Sprintf("%s engine scored %d out of 100", e, score),
			Severity:          severity,
			RecommendedAction: fmt.Sprintf("Prioritize the %s actions in this plan before anything else.", e),
			Source:            FlagSourceEngineScore,
		})
	}
	return flags
}

func questionFlags(results []QuestionResult) []RedFlag {
	var flags []RedFlag
	for _, r := range results {
		if r.PointsAwarded >= r.MaxPoints || len(r.RedFlags) == 0 {
			continue
		}
		severity := SeverityWarning
		if r.PointsAwarded == 0 {
			severity = SeverityCritical
		}
		for _, e := range r.Engines {
			for i, text := range r.RedFlags {
				flags = append(flags, RedFlag{
					ID:                fmt.Sprintf("%s-%s-%d", r.QuestionID, e, i),
					Engine:            e,
					Description:       text,
					Severity:          severity,
					RecommendedAction: "Fix the underlying answer before the next review cycle.",
					Source:            FlagSourceQuestion,
					QuestionID:        r.QuestionID,
				})
			}
		}
	}
	return flags
}

// SortFlags orders critical before warning, then by engine name. The sort is
// stable so flags within one (severity, engine) pair keep input order.
func SortFlags(flags []RedFlag) {
	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].Severity != flags[j].Severity {
			return flags[i].Severity == SeverityCritical
		}
		return flags[i].Engine < flags[j].Engine
	})
}
