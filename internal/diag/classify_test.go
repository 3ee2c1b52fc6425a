package diag

import (
	"strings"
	"testing"
)

func TestClassifyGearPriority(t *testing.T) {
	cases := []struct {
		name      string
		in        ClassifyInput
		wantLevel int
		wantIn    string
	}{
		{"revenue wins over band and score", ClassifyInput{Score: 90, AnnualRevenue: 100_000, SizeBand: "50+"}, 1, "annual revenue"},
		{"revenue mid tier", ClassifyInput{AnnualRevenue: 3_000_000}, 3, "annual revenue"},
		{"revenue top tier", ClassifyInput{AnnualRevenue: 30_000_000}, 5, "annual revenue"},
		{"band when no revenue", ClassifyInput{Score: 90, SizeBand: "5-9"}, 3, "size band"},
		{"unknown band falls back to score", ClassifyInput{Score: 65, SizeBand: "huge"}, 4, "overall score"},
		{"score only", ClassifyInput{Score: 15}, 1, "overall score"},
		{"score top tier", ClassifyInput{Score: 80}, 5, "overall score"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := ClassifyGear(tc.in)
			if g.Level != tc.wantLevel {
				t.Fatalf("level = %d, want %d", g.Level, tc.wantLevel)
			}
			if !strings.Contains(g.Reason, tc.wantIn) {
				t.Fatalf("reason %q does not name signal %q", g.Reason, tc.wantIn)
			}
			if g.Label == "" {
				t.Fatal("label is empty")
			}
		})
	}
}

func TestRevenueBoundaries(t *testing.T) {
	cases := []struct {
		revenue float64
		want    int
	}{
		{249_999, 1},
		{250_000, 2},
		{999_999, 2},
		{1_000_000, 3},
		{4_999_999, 3},
		{5_000_000, 4},
		{24_999_999, 4},
		{25_000_000, 5},
	}
	for _, tc := range cases {
		if g := ClassifyGear(ClassifyInput{AnnualRevenue: tc.revenue}); g.Level != tc.want {
			t.Errorf("revenue %.0f => level %d, want %d", tc.revenue, g.Level, tc.want)
		}
	}
}

func TestCheckGearMismatch(t *testing.T) {
	gear3 := ClassifyGear(ClassifyInput{SizeBand: "5-9"})

	if m := CheckGearMismatch(gear3, 25); m.Status != MismatchUnderperforming {
		t.Fatalf("status = %s, want underperforming", m.Status)
	}
	if m := CheckGearMismatch(gear3, 50); m.Status != MismatchAligned {
		t.Fatalf("status = %s, want aligned", m.Status)
	}
	if m := CheckGearMismatch(gear3, 75); m.Status != MismatchReadyToAdvance {
		t.Fatalf("status = %s, want ready_to_advance", m.Status)
	}

	// Top gear never reports ready to advance.
	gear5 := ClassifyGear(ClassifyInput{Score: 95})
	if m := CheckGearMismatch(gear5, 100); m.Status != MismatchAligned {
		t.Fatalf("top gear status = %s, want aligned", m.Status)
	}
}
