package diag

import (
	"errors"
	"math"
)

// ErrNoAnswers is returned when an analysis is requested over an empty
// answer list. Callers must not render a result in that case.
var ErrNoAnswers = errors.New("at least one answer is required")

// RunFrameworkAnalysis is the generic diagnostic: discrete answers plus a
// business context in, a uniform schema-tagged envelope out. Pure; safe to
// call concurrently.
func RunFrameworkAnalysis(answers []Answer, fctx Context) (FrameworkResult, error) {
	if len(answers) == 0 {
		return FrameworkResult{}, ErrNoAnswers
	}

	breakdown := CalculateScores(answers)
	gear := ClassifyGear(ClassifyInput{
		Score:         breakdown.OverallScore,
		AnnualRevenue: fctx.AnnualRevenue,
		SizeBand:      fctx.SizeBand,
	})
	flags := DetectFlags(breakdown.EngineScores, breakdown.QuestionResults)
	actions := GenerateActions(Templates, ActionContext{
		EngineScores:    breakdown.EngineScores,
		QuestionResults: breakdown.QuestionResults,
		Flags:           flags,
		SizeBand:        fctx.SizeBand,
	})

	return FrameworkResult{
		SchemaVersion:   FrameworkSchemaVersion,
		EngineScores:    breakdown.EngineScores,
		OverallScore:    breakdown.OverallScore,
		Gear:            gear,
		GearMismatch:    CheckGearMismatch(gear, breakdown.OverallScore),
		RedFlags:        flags,
		Actions:         actions,
		QuestionResults: breakdown.QuestionResults,
		Completeness:    completeness(breakdown.QuestionResults),
	}, nil
}

// completeness is the share of catalog questions with a recognized answer.
func completeness(results []QuestionResult) int {
	answered := make(map[string]bool, len(results))
	for _, r := range results {
		answered[r.QuestionID] = true
	}
	return int(math.Round(float64(len(answered)) / float64(len(Questions)) * 100))
}
