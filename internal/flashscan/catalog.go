package flashscan

import "github.com/oakline/bizdiag/internal/diag"

var flashPoints = map[diag.Strength]int{
	diag.StrengthStrong:  20,
	diag.StrengthPartial: 10,
	diag.StrengthWeak:    0,
}

// questions are the five scored Flash Scan questions. The sixth, the
// constraint question, never appears here.
var questions = []diag.Question{
	{
		ID:      "flash_plan",
		Prompt:  "Could everyone on the team name this quarter's top priority?",
		Engines: []diag.Engine{diag.EngineVision},
		Points:  flashPoints,
	},
	{
		ID:      "flash_team",
		Prompt:  "Does every important task have a clear owner who is not you?",
		Engines: []diag.Engine{diag.EnginePeople},
		Points:  flashPoints,
	},
	{
		ID:      "flash_delivery",
		Prompt:  "Would a customer say you deliver what you promised, when you promised it?",
		Engines: []diag.Engine{diag.EngineOperations},
		Points:  flashPoints,
	},
	{
		ID:      "flash_leads",
		Prompt:  "Do new customers show up every month without you chasing them?",
		Engines: []diag.Engine{diag.EngineRevenue},
		Points:  flashPoints,
	},
	{
		ID:      "flash_cash",
		Prompt:  "Do you know today's cash position and next month's low point?",
		Engines: []diag.Engine{diag.EngineFinance},
		Points:  flashPoints,
	},
}

var questionIndex = func() map[string]diag.Question {
	idx := make(map[string]diag.Question, len(questions))
	for _, q := range questions {
		idx[q.ID] = q
	}
	return idx
}()

// constraintEngine maps the qualitative constraint answer to the engine whose
// quick wins should lead the list.
var constraintEngine = map[string]diag.Engine{
	"leads":     diag.EngineRevenue,
	"sales":     diag.EngineRevenue,
	"cash":      diag.EngineFinance,
	"profit":    diag.EngineFinance,
	"people":    diag.EnginePeople,
	"hiring":    diag.EnginePeople,
	"time":      diag.EngineOperations,
	"delivery":  diag.EngineOperations,
	"direction": diag.EngineVision,
}

type quickWinTemplate struct {
	id          string
	title       string
	description string
	engine      diag.Engine
	questionID  string
	effort      int
}

var quickWinCatalog = []quickWinTemplate{
	{
		id:          "qw-priority-card",
		title:       "Write the priority on the wall",
		description: "One sentence, visible to everyone: the single most important outcome this quarter.",
		engine:      diag.EngineVision,
		questionID:  "flash_plan",
		effort:      1,
	},
	{
		id:          "qw-task-owners",
		title:       "Name an owner for your top five tasks",
		description: "Pick the five recurring tasks you still do yourself and hand each to one named person this week.",
		engine:      diag.EnginePeople,
		questionID:  "flash_team",
		effort:      2,
	},
	{
		id:          "qw-promise-log",
		title:       "Start a promise log",
		description: "Log every customer commitment with a date. Review the log every morning until nothing slips.",
		engine:      diag.EngineOperations,
		questionID:  "flash_delivery",
		effort:      1,
	},
	{
		id:          "qw-reactivation",
		title:       "Send the reactivation message",
		description: "Message your last 20 past customers with one specific offer. It is the fastest pipeline you own.",
		engine:      diag.EngineRevenue,
		questionID:  "flash_leads",
		effort:      1,
	},
	{
		id:          "qw-referral-ask",
		title:       "Ask three customers for a referral",
		description: "Call your three happiest customers and ask for one introduction each.",
		engine:      diag.EngineRevenue,
		questionID:  "flash_leads",
		effort:      1,
	},
	{
		id:          "qw-cash-friday",
		title:       "Book the Friday cash check",
		description: "A recurring 10-minute slot: bank balance, receipts due, payments due, 4-week low point.",
		engine:      diag.EngineFinance,
		questionID:  "flash_cash",
		effort:      1,
	},
	{
		id:          "qw-invoice-today",
		title:       "Invoice everything finished",
		description: "Send every unbilled invoice today and shorten default payment terms to 14 days.",
		engine:      diag.EngineFinance,
		questionID:  "flash_cash",
		effort:      1,
	},
}
