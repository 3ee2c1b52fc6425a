// Package fullaudit implements the 15-question rating audit. It keeps its
// own engine vocabulary and gear breakpoints, which intentionally differ from
// the generic classifier in internal/diag.
package fullaudit

import "github.com/oakline/bizdiag/internal/diag"

const (
	// CompletionFloor is the share of the 15 rating fields that must be
	// answered (value > 0) before a full result is produced. Below it the
	// audit returns StatusNeedsMoreData instead of failing.
	CompletionFloor = 0.70

	ImmediateActionCap = 3
	FollowOnActionCap  = 2
)

type Status string

const (
	StatusComplete      Status = "complete"
	StatusNeedsMoreData Status = "needs_more_data"
)

type Engine string

const (
	EngineLeadership Engine = "leadership"
	EngineOperations Engine = "operations"
	EngineMarketing  Engine = "marketing"
	EngineFinance    Engine = "finance"
	EnginePersonnel  Engine = "personnel"
)

var allEngines = []Engine{EngineLeadership, EngineOperations, EngineMarketing, EngineFinance, EnginePersonnel}

type Health string

const (
	HealthGreen  Health = "green"
	HealthYellow Health = "yellow"
	HealthRed    Health = "red"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AuditData is the intake record: fifteen 1-5 ratings (0 = unanswered) plus
// business context. SkillGaps and RetentionRisk are inverted scales where
// 1 is the best answer.
type AuditData struct {
	VisionClarity       int `json:"vision_clarity"`
	DecisionSpeed       int `json:"decision_speed"`
	TeamAlignment       int `json:"team_alignment"`
	ProcessEfficiency   int `json:"process_efficiency"`
	QualityControl      int `json:"quality_control"`
	DeliveryReliability int `json:"delivery_reliability"`
	LeadGeneration      int `json:"lead_generation"`
	BrandVisibility     int `json:"brand_visibility"`
	SalesConversion     int `json:"sales_conversion"`
	CashFlow            int `json:"cash_flow"`
	ProfitMargins       int `json:"profit_margins"`
	FinancialReporting  int `json:"financial_reporting"`
	TeamCapability      int `json:"team_capability"`
	SkillGaps           int `json:"skill_gaps"`
	RetentionRisk       int `json:"retention_risk"`

	SizeBand      string  `json:"size_band,omitempty"`
	AnnualRevenue float64 `json:"annual_revenue,omitempty"`
}

type EngineReport struct {
	Score  int    `json:"score"`
	Health Health `json:"health"`
}

type Flag struct {
	Engine      Engine        `json:"engine"`
	Description string        `json:"description"`
	Severity    diag.Severity `json:"severity"`
}

type Action struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Engine      Engine        `json:"engine"`
	Priority    diag.Priority `json:"priority"`
	Owner       string        `json:"owner"`
	Effort      int           `json:"effort"`
}

// DepartmentGoal is the per-department scaffolding handed to the planning UI.
type DepartmentGoal struct {
	Department Engine `json:"department"`
	Focus      string `json:"focus"`
}

// Result is the Full Audit envelope. When Status is needs_more_data only
// Status and Completion are meaningful.
type Result struct {
	Status           Status                  `json:"status"`
	Completion       int                     `json:"completion"` // percent of fields answered
	Engines          map[Engine]EngineReport `json:"engines,omitempty"`
	OverallScore     int                     `json:"overall_score,omitempty"`
	Gear             diag.Gear               `json:"gear,omitempty"`
	Risk             RiskLevel               `json:"risk,omitempty"`
	RedFlags         []Flag                  `json:"red_flags,omitempty"`
	ImmediateActions []Action                `json:"immediate_actions,omitempty"`
	FollowOnActions  []Action                `json:"follow_on_actions,omitempty"`
	Departments      []DepartmentGoal        `json:"departments,omitempty"`
	NorthStarGoal    string                  `json:"north_star_goal,omitempty"`
}
