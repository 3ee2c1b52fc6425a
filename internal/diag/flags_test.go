package diag

import "testing"

func scoresWith(overrides map[Engine]int) map[Engine]int {
	scores := map[Engine]int{}
	for _, e := range AllEngines {
		scores[e] = 85
	}
	for e, s := range overrides {
		scores[e] = s
	}
	return scores
}

func TestEngineFlagThresholds(t *testing.T) {
	flags := DetectFlags(scoresWith(map[Engine]int{
		EngineFinance:    35, // critical
		EngineRevenue:    55, // warning
		EngineOperations: 70, // healthy, exactly at threshold
	}), nil)

	if len(flags) != 2 {
		t.Fatalf("flags = %d, want 2", len(flags))
	}
	if flags[0].Engine != EngineFinance || flags[0].Severity != SeverityCritical {
		t.Fatalf("first flag = %s/%s, want finance/critical", flags[0].Engine, flags[0].Severity)
	}
	if flags[1].Engine != EngineRevenue || flags[1].Severity != SeverityWarning {
		t.Fatalf("second flag = %s/%s, want revenue/warning", flags[1].Engine, flags[1].Severity)
	}
}

func TestQuestionFlagSeverity(t *testing.T) {
	results := []QuestionResult{
		{QuestionID: "q1", PointsAwarded: 0, MaxPoints: 20, Engines: []Engine{EngineVision}, RedFlags: []string{"no plan"}},
		{QuestionID: "q2", PointsAwarded: 10, MaxPoints: 20, Engines: []Engine{EnginePeople}, RedFlags: []string{"gaps"}},
		{QuestionID: "q3", PointsAwarded: 20, MaxPoints: 20, Engines: []Engine{EngineFinance}, RedFlags: []string{"never emitted"}},
		{QuestionID: "q4", PointsAwarded: 0, MaxPoints: 20, Engines: []Engine{EngineRevenue}}, // weak but no flag text
	}
	flags := DetectFlags(scoresWith(nil), results)

	if len(flags) != 2 {
		t.Fatalf("flags = %d, want 2", len(flags))
	}
	if flags[0].QuestionID != "q1" || flags[0].Severity != SeverityCritical {
		t.Fatalf("zero-point answer should flag critical, got %+v", flags[0])
	}
	if flags[1].QuestionID != "q2" || flags[1].Severity != SeverityWarning {
		t.Fatalf("partial answer should flag warning, got %+v", flags[1])
	}
}

func TestQuestionFlagPerEngineAndText(t *testing.T) {
	results := []QuestionResult{{
		QuestionID:    "q1",
		PointsAwarded: 0,
		MaxPoints:     20,
		Engines:       []Engine{EnginePeople, EngineOperations},
		RedFlags:      []string{"a", "b"},
	}}
	flags := DetectFlags(scoresWith(nil), results)
	if len(flags) != 4 {
		t.Fatalf("flags = %d, want 4 (2 engines x 2 texts)", len(flags))
	}
}

func TestFlagSortCriticalFirst(t *testing.T) {
	flags := []RedFlag{
		{ID: "w", Engine: EngineVision, Severity: SeverityWarning},
		{ID: "c", Engine: EngineRevenue, Severity: SeverityCritical},
	}
	SortFlags(flags)
	if flags[0].ID != "c" {
		t.Fatalf("first flag = %s, want the critical one", flags[0].ID)
	}

	// Same input, reversed order: critical still first.
	flags = []RedFlag{
		{ID: "c", Engine: EngineRevenue, Severity: SeverityCritical},
		{ID: "w", Engine: EngineVision, Severity: SeverityWarning},
	}
	SortFlags(flags)
	if flags[0].ID != "c" {
		t.Fatalf("first flag = %s, want the critical one", flags[0].ID)
	}
}

func TestFlagSortTiesByEngineName(t *testing.T) {
	flags := []RedFlag{
		{ID: "1", Engine: EngineVision, Severity: SeverityWarning},
		{ID: "2", Engine: EngineFinance, Severity: SeverityWarning},
		{ID: "3", Engine: EnginePeople, Severity: SeverityWarning},
	}
	SortFlags(flags)
	want := []Engine{EngineFinance, EnginePeople, EngineVision}
	for i, e := range want {
		if flags[i].Engine != e {
			t.Fatalf("flags[%d] = %s, want %s", i, flags[i].Engine, e)
		}
	}
}
