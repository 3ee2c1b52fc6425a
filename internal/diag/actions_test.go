package diag

import "testing"

func tmpl(id string, e Engine, trigger TriggerKind, effort int) ActionTemplate {
	return ActionTemplate{
		ID:              id,
		Title:           id,
		Engine:          e,
		Trigger:         trigger,
		Effort:          effort,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "department lead",
	}
}

func TestTriggerEvaluation(t *testing.T) {
	actx := ActionContext{
		EngineScores: scoresWith(map[Engine]int{EngineFinance: 30, EngineRevenue: 55}),
		QuestionResults: []QuestionResult{
			{QuestionID: "weak_q", PointsAwarded: 5, MaxPoints: 20, Engines: []Engine{EngineVision}},
			{QuestionID: "strong_q", PointsAwarded: 20, MaxPoints: 20, Engines: []Engine{EngineVision}},
		},
	}

	cases := []struct {
		name string
		tmpl ActionTemplate
		want bool
	}{
		{"weak engine fires under 70", tmpl("a", EngineRevenue, TriggerWeakEngine, 3), true},
		{"weak engine quiet at 85", tmpl("b", EngineVision, TriggerWeakEngine, 3), false},
		{"critical fires under 40", tmpl("c", EngineFinance, TriggerCriticalFlag, 3), true},
		{"critical quiet in warning band", tmpl("d", EngineRevenue, TriggerCriticalFlag, 3), false},
		{"warning fires in band", tmpl("e", EngineRevenue, TriggerWarningFlag, 3), true},
		{"warning quiet below band", tmpl("f", EngineFinance, TriggerWarningFlag, 3), false},
		{"question weak fires", withQuestion(tmpl("g", EngineVision, TriggerQuestionWeak, 3), "weak_q"), true},
		{"question at max quiet", withQuestion(tmpl("h", EngineVision, TriggerQuestionWeak, 3), "strong_q"), false},
		{"question missing quiet", withQuestion(tmpl("i", EngineVision, TriggerQuestionWeak, 3), "absent_q"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, fired := evaluateTrigger(tc.tmpl, actx)
			if fired != tc.want {
				t.Fatalf("fired = %v, want %v", fired, tc.want)
			}
		})
	}
}

func withQuestion(t ActionTemplate, qid string) ActionTemplate {
	t.QuestionID = qid
	return t
}

func TestWarningTriggerViaMatchingFlag(t *testing.T) {
	// Score is healthy but a question-level warning flag exists for the engine.
	actx := ActionContext{
		EngineScores: scoresWith(nil),
		Flags:        []RedFlag{{Engine: EngineOperations, Severity: SeverityWarning, Description: "late deliveries"}},
	}
	_, fired := evaluateTrigger(tmpl("a", EngineOperations, TriggerWarningFlag, 3), actx)
	if !fired {
		t.Fatal("warning template should fire on a matching warning flag")
	}
}

func TestPriorityEscalation(t *testing.T) {
	actx := ActionContext{
		EngineScores: scoresWith(map[Engine]int{EngineFinance: 30, EngineRevenue: 55}),
		QuestionResults: []QuestionResult{
			{QuestionID: "weak_q", PointsAwarded: 0, MaxPoints: 20, Engines: []Engine{EngineVision}},
		},
		Flags: []RedFlag{{Engine: EngineVision, Severity: SeverityCritical, QuestionID: "weak_q"}},
	}

	cases := []struct {
		name string
		tmpl ActionTemplate
		want Priority
	}{
		{"critical flag always do_now", tmpl("a", EngineVision, TriggerCriticalFlag, 5), PriorityDoNow},
		{"critical score escalates", tmpl("b", EngineFinance, TriggerWarningFlag, 5), PriorityDoNow},
		{"cheap weak engine escalates", tmpl("c", EngineRevenue, TriggerWeakEngine, 2), PriorityDoNow},
		{"expensive weak engine keeps default", tmpl("d", EngineRevenue, TriggerWeakEngine, 3), PriorityDoNext},
		{"cheap flagged question escalates", withQuestion(tmpl("e", EngineVision, TriggerQuestionWeak, 2), "weak_q"), PriorityDoNow},
		{"cheap warning escalates", tmpl("f", EngineRevenue, TriggerWarningFlag, 2), PriorityDoNow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolvePriority(tc.tmpl, actx); got != tc.want {
				t.Fatalf("priority = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestOwnerResolution(t *testing.T) {
	small := ActionContext{EngineScores: scoresWith(map[Engine]int{EngineFinance: 30})}
	actions := GenerateActions([]ActionTemplate{tmpl("a", EngineFinance, TriggerCriticalFlag, 2)}, small)
	if actions[0].Owner != "owner" {
		t.Fatalf("owner = %q, want owner (size signal absent defaults small)", actions[0].Owner)
	}

	large := small
	large.SizeBand = "50+"
	actions = GenerateActions([]ActionTemplate{tmpl("a", EngineFinance, TriggerCriticalFlag, 2)}, large)
	if actions[0].Owner != "department lead" {
		t.Fatalf("owner = %q, want department lead", actions[0].Owner)
	}
}

func TestActionOrdering(t *testing.T) {
	actx := ActionContext{
		EngineScores: scoresWith(map[Engine]int{EngineFinance: 20, EngineRevenue: 30, EngineOperations: 60}),
	}
	templates := []ActionTemplate{
		tmpl("ops-warning", EngineOperations, TriggerWarningFlag, 5),
		tmpl("rev-critical", EngineRevenue, TriggerCriticalFlag, 5),
		tmpl("fin-critical", EngineFinance, TriggerCriticalFlag, 5),
	}
	// Large caps: ordering is what is under test.
	actions := GenerateActionsCapped(templates, actx, 10, 10)
	if len(actions) != 3 {
		t.Fatalf("actions = %d, want 3", len(actions))
	}
	// critical_flag templates lead, ordered by ascending engine score.
	if actions[0].ID != "fin-critical" || actions[1].ID != "rev-critical" || actions[2].ID != "ops-warning" {
		t.Fatalf("order = %s, %s, %s", actions[0].ID, actions[1].ID, actions[2].ID)
	}
}

func TestActionDedupeKeepsDoNow(t *testing.T) {
	actx := ActionContext{
		EngineScores: scoresWith(map[Engine]int{EngineFinance: 55}),
		Flags:        []RedFlag{{Engine: EngineFinance, Severity: SeverityCritical, Description: "cash"}},
	}
	// Same id triggered twice via different paths; the critical path resolves
	// do_now and must win.
	templates := []ActionTemplate{
		tmpl("fix-cash", EngineFinance, TriggerWarningFlag, 5),
		tmpl("fix-cash", EngineFinance, TriggerCriticalFlag, 5),
	}
	actions := GenerateActions(templates, actx)
	if len(actions) != 1 {
		t.Fatalf("actions = %d, want 1 after dedupe", len(actions))
	}
	if actions[0].Priority != PriorityDoNow {
		t.Fatalf("priority = %s, want do_now kept from duplicate", actions[0].Priority)
	}
}

func TestActionCaps(t *testing.T) {
	actx := ActionContext{EngineScores: scoresWith(map[Engine]int{
		EngineVision: 10, EnginePeople: 10, EngineOperations: 10, EngineRevenue: 10, EngineFinance: 10,
	})}
	var templates []ActionTemplate
	for i, e := range AllEngines {
		templates = append(templates,
			tmpl("now-"+string(e), e, TriggerCriticalFlag, 3),
			withDefault(tmpl("next-"+string(e), e, TriggerWeakEngine, 3+i%3), PriorityDoNext),
		)
	}
	actions := GenerateActionsCapped(templates, actx, 10, 10)
	// All ten fire, but every engine is critical so weak_engine templates
	// escalate too; with real caps the buckets truncate.
	if len(actions) != 10 {
		t.Fatalf("uncapped actions = %d, want 10", len(actions))
	}

	capped := GenerateActions(templates, actx)
	doNow := 0
	for _, a := range capped {
		if a.Priority == PriorityDoNow {
			doNow++
		}
	}
	if doNow > DoNowCap {
		t.Fatalf("do_now = %d, exceeds cap %d", doNow, DoNowCap)
	}
	if len(capped)-doNow > DoNextCap {
		t.Fatalf("do_next = %d, exceeds cap %d", len(capped)-doNow, DoNextCap)
	}
}

func withDefault(t ActionTemplate, p Priority) ActionTemplate {
	t.DefaultPriority = p
	return t
}
