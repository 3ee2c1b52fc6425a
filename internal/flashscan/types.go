// Package flashscan implements the lightweight six-question diagnostic.
// Five questions are scored; the sixth (the owner's biggest constraint) is
// context only and biases the quick-win list without ever being scored.
package flashscan

import "github.com/oakline/bizdiag/internal/diag"

const (
	// QuickWinCap bounds the quick-win list.
	QuickWinCap = 5

	// ConstraintQuestionID is the qualitative sixth question. Answers citing
	// it are accepted and ignored by the scorer.
	ConstraintQuestionID = "biggest_constraint"
)

// ScanData is the Flash Scan input record produced by the intake form.
type ScanData struct {
	Answers       []diag.Answer `json:"answers"`
	SizeBand      string        `json:"size_band,omitempty"`
	TopConstraint string        `json:"top_constraint,omitempty"`
	Industry      string        `json:"industry,omitempty"`
}

// QuickWin is one small, concrete recommendation from the scan.
type QuickWin struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Engine      diag.Engine `json:"engine"`
	Effort      int         `json:"effort"`
	Rationale   string      `json:"rationale"`
}

// Result is the Flash Scan envelope. Plain serializable data.
type Result struct {
	EngineScores  map[diag.Engine]int `json:"engine_scores"`
	OverallScore  int                 `json:"overall_score"`
	GearEstimate  diag.Gear           `json:"gear_estimate"`
	WeakestEngine diag.Engine         `json:"weakest_engine"`
	QuickWins     []QuickWin          `json:"quick_wins"`
	Constraint    string              `json:"constraint,omitempty"`
	Headline      string              `json:"headline"`
}
