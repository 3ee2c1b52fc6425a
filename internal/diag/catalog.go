package diag

// Static reference data. Built once at package init, read-only afterwards, so
// every analysis call can share it without synchronization.

var Gears = []GearDefinition{
	{Level: 1, Label: "Gear 1: Survival", ScoreFloor: 0, ScoreCeiling: 19,
		Description: "The owner does everything. Revenue is unpredictable and the business stops when the owner stops."},
	{Level: 2, Label: "Gear 2: Foundation", ScoreFloor: 20, ScoreCeiling: 39,
		Description: "Basic systems exist but depend on a few people. Growth comes from working harder, not better."},
	{Level: 3, Label: "Gear 3: Traction", ScoreFloor: 40, ScoreCeiling: 59,
		Description: "Repeatable sales and delivery. The business runs for short stretches without the owner."},
	{Level: 4, Label: "Gear 4: Expansion", ScoreFloor: 60, ScoreCeiling: 79,
		Description: "A management layer owns outcomes. The owner works on the business more than in it."},
	{Level: 5, Label: "Gear 5: Mastery", ScoreFloor: 80, ScoreCeiling: 100,
		Description: "The business compounds: documented playbooks, bench strength, and capital discipline."},
}

func GearByLevel(level int) GearDefinition {
	for _, g := range Gears {
		if g.Level == level {
			return g
		}
	}
	return Gears[0]
}

// sizeBandGear maps headcount band tokens to a gear level. Unknown tokens
// fall through to score-based classification.
var sizeBandGear = map[string]int{
	"solo":  1,
	"2-4":   2,
	"5-9":   3,
	"10-24": 4,
	"25-49": 5,
	"50+":   5,
}

// largeSizeBands selects the larger-organization owner archetype when
// resolving action ownership.
var largeSizeBands = map[string]bool{
	"25-49": true,
	"50+":   true,
}

var standardPoints = map[Strength]int{
	StrengthStrong:  20,
	StrengthPartial: 10,
	StrengthWeak:    0,
}

// Questions is the framework questionnaire. Most questions load a single
// engine; the two cross-cutting ones split their points evenly, which is why
// they alone cannot push an engine to 100.
var Questions = []Question{
	{
		ID:      "vision_written",
		Prompt:  "Is there a written 1-year plan with three or fewer priorities that the whole team has seen?",
		Engines: []Engine{EngineVision},
		Points:  standardPoints,
		RedFlags: []string{
			"No shared written plan: the team is guessing at priorities.",
		},
	},
	{
		ID:      "vision_scoreboard",
		Prompt:  "Does the team review a scoreboard of 3-5 numbers at least weekly?",
		Engines: []Engine{EngineVision},
		Points:  standardPoints,
	},
	{
		ID:      "people_right_seats",
		Prompt:  "Does every seat have a named owner with written outcomes, and is every owner performing?",
		Engines: []Engine{EnginePeople},
		Points:  standardPoints,
		RedFlags: []string{
			"Unclear ownership: work is falling between seats.",
		},
	},
	{
		ID:      "people_owner_dependency",
		Prompt:  "Could the business run for two weeks with the owner unreachable?",
		Engines: []Engine{EnginePeople, EngineOperations},
		Points:  standardPoints,
		RedFlags: []string{
			"Owner dependency: the business stops when the owner stops.",
		},
	},
	{
		ID:      "ops_documented",
		Prompt:  "Are the 3-5 core delivery processes documented well enough for a new hire to follow?",
		Engines: []Engine{EngineOperations},
		Points:  standardPoints,
		RedFlags: []string{
			"Tribal-knowledge delivery: quality depends on who shows up.",
		},
	},
	{
		ID:      "ops_on_time",
		Prompt:  "Is work delivered on time and to spec at least 9 times out of 10?",
		Engines: []Engine{EngineOperations},
		Points:  standardPoints,
	},
	{
		ID:      "revenue_pipeline",
		Prompt:  "Is there a repeatable source of new leads that does not depend on the owner's network?",
		Engines: []Engine{EngineRevenue},
		Points:  standardPoints,
		RedFlags: []string{
			"Referral-only pipeline: growth is outside the team's control.",
		},
	},
	{
		ID:      "revenue_concentration",
		Prompt:  "Is the largest customer under 25% of revenue?",
		Engines: []Engine{EngineRevenue, EngineFinance},
		Points:  standardPoints,
		RedFlags: []string{
			"Customer concentration: losing one account would hurt badly.",
		},
	},
	{
		ID:      "finance_statements",
		Prompt:  "Are accurate monthly financial statements reviewed within 15 days of month end?",
		Engines: []Engine{EngineFinance},
		Points:  standardPoints,
		RedFlags: []string{
			"Flying blind: decisions are made without current numbers.",
		},
	},
	{
		ID:      "finance_cash_buffer",
		Prompt:  "Does the business hold at least two months of operating expenses in cash?",
		Engines: []Engine{EngineFinance},
		Points:  standardPoints,
		RedFlags: []string{
			"Thin cash buffer: one slow month becomes a crisis.",
		},
	},
}

var questionIndex = buildQuestionIndex(Questions)

func buildQuestionIndex(qs []Question) map[string]Question {
	idx := make(map[string]Question, len(qs))
	for _, q := range qs {
		idx[q.ID] = q
	}
	return idx
}

// QuestionByID returns the catalog entry for id. Unknown ids report ok=false
// and are silently ignored by the score calculator.
func QuestionByID(id string) (Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

// Templates is the action catalog evaluated by GenerateActions.
var Templates = []ActionTemplate{
	{
		ID:              "vision-one-page-plan",
		Title:           "Write the one-page plan",
		Description:     "Draft a single page: 1-year target, top 3 priorities, and the owner of each. Share it with everyone.",
		Engine:          EngineVision,
		Trigger:         TriggerWeakEngine,
		Effort:          1,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "leadership team",
	},
	{
		ID:              "vision-weekly-scoreboard",
		Title:           "Stand up a weekly scoreboard",
		Description:     "Pick 3-5 numbers that predict next month's health and review them every week at the same time.",
		Engine:          EngineVision,
		Trigger:         TriggerWarningFlag,
		Effort:          2,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "operations lead",
	},
	{
		ID:              "people-seat-chart",
		Title:           "Map seats to owners",
		Description:     "List every function, name one accountable owner per seat, and write the 2-3 outcomes each seat must deliver.",
		Engine:          EnginePeople,
		Trigger:         TriggerWeakEngine,
		Effort:          2,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "head of people",
	},
	{
		ID:              "people-delegation-ladder",
		Title:           "Delegate one owner task per week",
		Description:     "Each week, hand one recurring owner task to a named person with a written checklist. Do not take it back.",
		Engine:          EnginePeople,
		Trigger:         TriggerQuestionWeak,
		QuestionID:      "people_owner_dependency",
		Effort:          2,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "general manager",
	},
	{
		ID:              "people-critical-hire",
		Title:           "Scope the next critical hire",
		Description:     "Write the scorecard for the one hire that removes the biggest bottleneck, and open the search this month.",
		Engine:          EnginePeople,
		Trigger:         TriggerCriticalFlag,
		Effort:          4,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "head of people",
	},
	{
		ID:              "ops-document-core",
		Title:           "Document the top three processes",
		Description:     "Record a walkthrough of the three processes that touch every customer, then turn each into a one-page checklist.",
		Engine:          EngineOperations,
		Trigger:         TriggerWeakEngine,
		Effort:          3,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "operations lead",
	},
	{
		ID:              "ops-quality-checkpoint",
		Title:           "Add a pre-delivery checkpoint",
		Description:     "Insert one named review step before work reaches the customer, with a written pass/fail list.",
		Engine:          EngineOperations,
		Trigger:         TriggerWarningFlag,
		Effort:          1,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "operations lead",
	},
	{
		ID:              "ops-stabilize-delivery",
		Title:           "Stabilize delivery before selling more",
		Description:     "Freeze new commitments for two weeks, clear the backlog, and set a realistic standard lead time.",
		Engine:          EngineOperations,
		Trigger:         TriggerCriticalFlag,
		Effort:          3,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "operations lead",
	},
	{
		ID:              "revenue-second-channel",
		Title:           "Open a second lead channel",
		Description:     "Pick one channel the team controls (outbound list, partnerships, local search) and run it for 60 days before judging it.",
		Engine:          EngineRevenue,
		Trigger:         TriggerWeakEngine,
		Effort:          3,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "sales lead",
	},
	{
		ID:              "revenue-follow-up-system",
		Title:           "Install a 48-hour follow-up rule",
		Description:     "Every inquiry gets a response within 48 hours and a scheduled next touch. Track it on the scoreboard.",
		Engine:          EngineRevenue,
		Trigger:         TriggerWarningFlag,
		Effort:          1,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "sales lead",
	},
	{
		ID:              "revenue-concentration-plan",
		Title:           "Break the concentration risk",
		Description:     "Set a target of no customer above 25% of revenue and direct all new-business effort outside the top account.",
		Engine:          EngineRevenue,
		Trigger:         TriggerQuestionWeak,
		QuestionID:      "revenue_concentration",
		Effort:          4,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "sales lead",
	},
	{
		ID:              "finance-monthly-close",
		Title:           "Get to a 15-day monthly close",
		Description:     "Hire or task a bookkeeper to deliver P&L, balance sheet, and cash position by the 15th, then review them the same week.",
		Engine:          EngineFinance,
		Trigger:         TriggerWeakEngine,
		Effort:          2,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "finance lead",
	},
	{
		ID:              "finance-cash-floor",
		Title:           "Build the two-month cash floor",
		Description:     "Open a separate reserve account and sweep a fixed percent of every receipt until it holds two months of expenses.",
		Engine:          EngineFinance,
		Trigger:         TriggerCriticalFlag,
		Effort:          3,
		DefaultPriority: PriorityDoNow,
		OwnerSmall:      "owner",
		OwnerLarge:      "finance lead",
	},
	{
		ID:              "finance-pricing-review",
		Title:           "Reprice the bottom third",
		Description:     "Rank offerings by margin, raise or retire the bottom third, and grandfather existing customers for 90 days.",
		Engine:          EngineFinance,
		Trigger:         TriggerWarningFlag,
		Effort:          2,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "finance lead",
	},
	{
		ID:              "finance-weekly-cash-check",
		Title:           "Check cash every Friday",
		Description:     "A 10-minute weekly ritual: bank balance, expected receipts, expected payments, and the 4-week low point.",
		Engine:          EngineFinance,
		Trigger:         TriggerQuestionWeak,
		QuestionID:      "finance_cash_buffer",
		Effort:          1,
		DefaultPriority: PriorityDoNext,
		OwnerSmall:      "owner",
		OwnerLarge:      "finance lead",
	},
}
