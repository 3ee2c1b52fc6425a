package flashscan

import (
	"reflect"
	"testing"

	"github.com/oakline/bizdiag/internal/diag"
)

func fullScan(strength diag.Strength) ScanData {
	answers := make([]diag.Answer, 0, len(questions)+1)
	for _, q := range questions {
		answers = append(answers, diag.Answer{QuestionID: q.ID, Strength: strength})
	}
	// The qualitative sixth question rides along and must never score.
	answers = append(answers, diag.Answer{QuestionID: ConstraintQuestionID, Strength: diag.StrengthWeak})
	return ScanData{Answers: answers, SizeBand: "2-4"}
}

func TestRunFlashScanAnalysisEmpty(t *testing.T) {
	if _, err := RunFlashScanAnalysis(ScanData{}); err != diag.ErrNoAnswers {
		t.Fatalf("err = %v, want ErrNoAnswers", err)
	}
}

func TestConstraintQuestionNeverScored(t *testing.T) {
	res, err := RunFlashScanAnalysis(fullScan(diag.StrengthStrong))
	if err != nil {
		t.Fatalf("RunFlashScanAnalysis: %v", err)
	}
	for e, s := range res.EngineScores {
		if s != 100 {
			t.Errorf("%s = %d, want 100; the constraint answer leaked into scoring", e, s)
		}
	}
	if res.OverallScore != 100 {
		t.Fatalf("overall = %d, want 100", res.OverallScore)
	}
}

func TestQuickWinCap(t *testing.T) {
	res, err := RunFlashScanAnalysis(fullScan(diag.StrengthWeak))
	if err != nil {
		t.Fatalf("RunFlashScanAnalysis: %v", err)
	}
	if len(res.QuickWins) == 0 {
		t.Fatal("expected quick wins for an all-weak scan")
	}
	if len(res.QuickWins) > QuickWinCap {
		t.Fatalf("quick wins = %d, exceeds cap %d", len(res.QuickWins), QuickWinCap)
	}
}

func TestQuickWinsBiasedByConstraint(t *testing.T) {
	data := fullScan(diag.StrengthWeak)
	data.TopConstraint = "cash"
	res, err := RunFlashScanAnalysis(data)
	if err != nil {
		t.Fatalf("RunFlashScanAnalysis: %v", err)
	}
	if res.QuickWins[0].Engine != diag.EngineFinance {
		t.Fatalf("first quick win engine = %s, want finance for the cash constraint", res.QuickWins[0].Engine)
	}
}

func TestGearEstimateHeuristics(t *testing.T) {
	cases := []struct {
		name       string
		sizeBand   string
		constraint string
		want       int
	}{
		{"solo", "solo", "", 1},
		{"mid team", "10-24", "", 4},
		{"large team", "50+", "", 5},
		{"cash constraint caps", "50+", "cash", 3},
		{"cash constraint no-op at low gear", "2-4", "cash", 2},
		{"unknown band default", "", "", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := estimateGear(tc.sizeBand, tc.constraint)
			if g.Level != tc.want {
				t.Fatalf("level = %d, want %d", g.Level, tc.want)
			}
			if g.Reason == "" || g.Label == "" {
				t.Fatal("gear estimate missing label or reason")
			}
		})
	}
}

func TestFlashScanDeterministic(t *testing.T) {
	data := fullScan(diag.StrengthPartial)
	data.TopConstraint = "leads"

	a, err := RunFlashScanAnalysis(data)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := RunFlashScanAnalysis(data)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input produced different results")
	}
}
