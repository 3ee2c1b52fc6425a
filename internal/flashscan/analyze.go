package flashscan

import (
	"fmt"
	"math"
	"sort"

	"github.com/oakline/bizdiag/internal/diag"
)

// RunFlashScanAnalysis scores the five diagnostic questions and returns a
// coarse gear estimate plus up to QuickWinCap quick wins biased toward the
// stated constraint. Errors on an empty answer list. Pure otherwise.
func RunFlashScanAnalysis(data ScanData) (Result, error) {
	if len(data.Answers) == 0 {
		return Result{}, diag.ErrNoAnswers
	}

	scores, weakByQuestion := scoreAnswers(data.Answers)
	overall := diag.OverallScore(scores)

	weakest := weakestEngine(scores)
	wins := pickQuickWins(weakByQuestion, data.TopConstraint)

	return Result{
		EngineScores:  scores,
		OverallScore:  overall,
		GearEstimate:  estimateGear(data.SizeBand, data.TopConstraint),
		WeakestEngine: weakest,
		QuickWins:     wins,
		Constraint:    data.TopConstraint,
		Headline:      headline(overall, weakest),
	}, nil
}

// scoreAnswers is the scan's own scorer: one engine per question, neutral
// baseline for unasked engines, unknown ids (including the qualitative
// constraint question) ignored.
func scoreAnswers(answers []diag.Answer) (map[diag.Engine]int, map[string]bool) {
	points := map[diag.Engine][]int{}
	weak := map[string]bool{}

	for _, a := range answers {
		q, ok := questionIndex[a.QuestionID]
		if !ok {
			continue
		}
		pts := q.Points[a.Strength]
		for _, e := range q.Engines {
			points[e] = append(points[e], pts)
		}
		if pts < diag.MaxQuestionPoints {
			weak[q.ID] = true
		}
	}

	scores := make(map[diag.Engine]int, len(diag.AllEngines))
	for _, e := range diag.AllEngines {
		pts, ok := points[e]
		if !ok {
			scores[e] = diag.NeutralBaselineScore
			continue
		}
		sum := 0
		for _, p := range pts {
			sum += p
		}
		mean := float64(sum) / float64(len(pts))
		scores[e] = int(math.Round(mean / diag.MaxQuestionPoints * 100))
	}
	return scores, weak
}

// estimateGear is deliberately rougher than the generic classifier: the size
// band sets the base and a cash-side constraint caps the estimate at 3, since
// a business that names cash as its constraint is not operating at high gear
// whatever its headcount.
func estimateGear(sizeBand, constraint string) diag.Gear {
	level := 2
	reason := "estimated from scan defaults"
	switch sizeBand {
	case "solo":
		level, reason = 1, "estimated from solo operation"
	case "2-4":
		level, reason = 2, "estimated from a 2-4 person team"
	case "5-9":
		level, reason = 3, "estimated from a 5-9 person team"
	case "10-24":
		level, reason = 4, "estimated from a 10-24 person team"
	case "25-49", "50+":
		level, reason = 5, fmt.Sprintf("estimated from a %s person team", sizeBand)
	}

	if (constraint == "cash" || constraint == "profit") && level > 3 {
		level = 3
		reason += ", capped by the stated cash constraint"
	}

	def := diag.GearByLevel(level)
	return diag.Gear{Level: level, Label: def.Label, Reason: reason}
}

// pickQuickWins keeps wins for questions that scored below max, ordered with
// the constraint's engine first, then by effort, then catalog order. Capped
// at QuickWinCap.
func pickQuickWins(weakByQuestion map[string]bool, constraint string) []QuickWin {
	favored, hasFavored := constraintEngine[constraint]

	var wins []QuickWin
	for _, t := range quickWinCatalog {
		if !weakByQuestion[t.questionID] {
			continue
		}
		wins = append(wins, QuickWin{
			ID:          t.id,
			Title:       t.title,
			Description: t.description,
			Engine:      t.engine,
			Effort:      t.effort,
			Rationale:   fmt.Sprintf("the %q answer left room to improve", t.questionID),
		})
	}

	sort.SliceStable(wins, func(i, j int) bool {
		if hasFavored {
			fi, fj := wins[i].Engine == favored, wins[j].Engine == favored
			if fi != fj {
				return fi
			}
		}
		return wins[i].Effort < wins[j].Effort
	})

	if len(wins) > QuickWinCap {
		wins = wins[:QuickWinCap]
	}
	return wins
}

func weakestEngine(scores map[diag.Engine]int) diag.Engine {
	weakest := diag.AllEngines[0]
	for _, e := range diag.AllEngines[1:] {
		if scores[e] < scores[weakest] {
			weakest = e
		}
	}
	return weakest
}

func headline(overall int, weakest diag.Engine) string {
	switch {
	case overall >= diag.WarningScoreThreshold:
		return fmt.Sprintf("Solid footing overall. The next gains are in %s.", weakest)
	case overall >= diag.CriticalScoreThreshold:
		return fmt.Sprintf("Working, but fragile. Start with %s.", weakest)
	default:
		return fmt.Sprintf("The business is running you. Fix %s first.", weakest)
	}
}
