package fullaudit

type ratingField struct {
	key      string
	engine   Engine
	inverted bool // 1 is the best answer
	value    func(d AuditData) int
}

// ratingFields fixes both the gate arithmetic (15 fields) and the engine
// grouping (three per engine).
var ratingFields = []ratingField{
	{key: "vision_clarity", engine: EngineLeadership, value: func(d AuditData) int { return d.VisionClarity }},
	{key: "decision_speed", engine: EngineLeadership, value: func(d AuditData) int { return d.DecisionSpeed }},
	{key: "team_alignment", engine: EngineLeadership, value: func(d AuditData) int { return d.TeamAlignment }},
	{key: "process_efficiency", engine: EngineOperations, value: func(d AuditData) int { return d.ProcessEfficiency }},
	{key: "quality_control", engine: EngineOperations, value: func(d AuditData) int { return d.QualityControl }},
	{key: "delivery_reliability", engine: EngineOperations, value: func(d AuditData) int { return d.DeliveryReliability }},
	{key: "lead_generation", engine: EngineMarketing, value: func(d AuditData) int { return d.LeadGeneration }},
	{key: "brand_visibility", engine: EngineMarketing, value: func(d AuditData) int { return d.BrandVisibility }},
	{key: "sales_conversion", engine: EngineMarketing, value: func(d AuditData) int { return d.SalesConversion }},
	{key: "cash_flow", engine: EngineFinance, value: func(d AuditData) int { return d.CashFlow }},
	{key: "profit_margins", engine: EngineFinance, value: func(d AuditData) int { return d.ProfitMargins }},
	{key: "financial_reporting", engine: EngineFinance, value: func(d AuditData) int { return d.FinancialReporting }},
	{key: "team_capability", engine: EnginePersonnel, value: func(d AuditData) int { return d.TeamCapability }},
	{key: "skill_gaps", engine: EnginePersonnel, inverted: true, value: func(d AuditData) int { return d.SkillGaps }},
	{key: "retention_risk", engine: EnginePersonnel, inverted: true, value: func(d AuditData) int { return d.RetentionRisk }},
}

type actionTemplate struct {
	title       string
	description string
	owner       string
	effort      int
}

// engineActions holds two ranked actions per engine: the first feeds the
// immediate list, the second the follow-on list.
var engineActions = map[Engine][]actionTemplate{
	EngineLeadership: {
		{
			title:       "Run a priorities reset",
			description: "One working session: agree the three priorities for the next 90 days and who owns each.",
			owner:       "owner",
			effort:      1,
		},
		{
			title:       "Install a weekly leadership huddle",
			description: "Thirty minutes, same time every week: scoreboard, stuck decisions, one issue solved.",
			owner:       "owner",
			effort:      2,
		},
	},
	EngineOperations: {
		{
			title:       "Fix the most-missed promise",
			description: "Find the delivery commitment you miss most often and redesign that step before touching anything else.",
			owner:       "operations lead",
			effort:      2,
		},
		{
			title:       "Checklist the core process",
			description: "Turn the single most error-prone process into a one-page checklist and make it mandatory.",
			owner:       "operations lead",
			effort:      2,
		},
	},
	EngineMarketing: {
		{
			title:       "Double down on the best channel",
			description: "Identify where your last ten customers actually came from and put this month's effort there.",
			owner:       "owner",
			effort:      2,
		},
		{
			title:       "Fix the follow-up leak",
			description: "Audit last month's inquiries; respond to every open one and install a 48-hour response rule.",
			owner:       "sales lead",
			effort:      1,
		},
	},
	EngineFinance: {
		{
			title:       "Build the 13-week cash forecast",
			description: "A simple weekly sheet: cash in, cash out, low point. Update it every Friday.",
			owner:       "owner",
			effort:      2,
		},
		{
			title:       "Review pricing and margins",
			description: "Rank every offer by gross margin and fix or retire the worst performer this month.",
			owner:       "finance lead",
			effort:      3,
		},
	},
	EnginePersonnel: {
		{
			title:       "Hold stay interviews",
			description: "Sit down with your three most important people and ask what would make them leave. Act on the first answer.",
			owner:       "owner",
			effort:      1,
		},
		{
			title:       "Map the skill gaps",
			description: "List the skills the next 12 months require, mark what is missing, and decide train vs. hire for each gap.",
			owner:       "owner",
			effort:      2,
		},
	},
}

// northStarGoals names the single goal proposed when an engine is the
// weakest area of the business.
var northStarGoals = map[Engine]string{
	EngineLeadership: "Every person can name the quarter's top priority without being told.",
	EngineOperations: "Deliver 95% of commitments on time for a full quarter.",
	EngineMarketing:  "Build a lead source that produces every month without the owner.",
	EngineFinance:    "Hold two months of operating expenses in cash.",
	EnginePersonnel:  "No regretted departures for twelve months.",
}
