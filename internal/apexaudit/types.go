// Package apexaudit implements the deep-dive diagnostic over the full
// business intake record. Unlike the other modes it has no rating scale:
// every input is a free-form string or a number, zero/empty meaning
// "not provided", and analysis never fails.
package apexaudit

const (
	// RunwayCapMonths bounds the reported cash runway. Zero burn reports
	// exactly the cap instead of infinity.
	RunwayCapMonths = 99

	OpportunityCap = 4
	RiskCap        = 4

	ImmediateCap  = 3
	ShortTermCap  = 5
	MediumTermCap = 3
)

type BusinessStage string

const (
	StageStartup BusinessStage = "Startup"
	StageGrowth  BusinessStage = "Growth"
	StageScale   BusinessStage = "Scale"
	StageMature  BusinessStage = "Mature"
)

// RatioAssessment grades the CAC:LTV ratio.
type RatioAssessment string

const (
	RatioExcellent  RatioAssessment = "Excellent"
	RatioHealthy    RatioAssessment = "Healthy"
	RatioConcerning RatioAssessment = "Concerning"
	RatioCritical   RatioAssessment = "Critical"
	RatioUnknown    RatioAssessment = "Unknown"
)

// ApexData is the intake record. Every field is optional; the completeness
// percentage counts how many were provided.
type ApexData struct {
	// Profile
	BusinessName         string  `json:"business_name,omitempty"`
	Industry             string  `json:"industry,omitempty"`
	BusinessModel        string  `json:"business_model,omitempty"`
	Location             string  `json:"location,omitempty"`
	YearsInBusiness      float64 `json:"years_in_business,omitempty"`
	FullTimeEmployees    int     `json:"full_time_employees,omitempty"`
	PartTimeEmployees    int     `json:"part_time_employees,omitempty"`
	Contractors          int     `json:"contractors,omitempty"`
	OwnerCount           int     `json:"owner_count,omitempty"`
	OwnerHoursPerWeek    float64 `json:"owner_hours_per_week,omitempty"`
	TargetMarket         string  `json:"target_market,omitempty"`
	CompetitiveAdvantage string  `json:"competitive_advantage,omitempty"`
	MainCompetitors      string  `json:"main_competitors,omitempty"`

	// Revenue
	AnnualRevenue             float64 `json:"annual_revenue,omitempty"`
	PriorYearRevenue          float64 `json:"prior_year_revenue,omitempty"`
	MonthlyRecurringRevenue   float64 `json:"monthly_recurring_revenue,omitempty"`
	RevenueGrowthRatePct      float64 `json:"revenue_growth_rate_pct,omitempty"`
	AverageTransactionValue   float64 `json:"average_transaction_value,omitempty"`
	TransactionsPerMonth      float64 `json:"transactions_per_month,omitempty"`
	ActiveCustomers           int     `json:"active_customers,omitempty"`
	TopCustomerRevenueShare   float64 `json:"top_customer_revenue_share_pct,omitempty"`
	RepeatPurchaseRatePct     float64 `json:"repeat_purchase_rate_pct,omitempty"`
	SeasonalityNotes          string  `json:"seasonality_notes,omitempty"`
	PricingModel              string  `json:"pricing_model,omitempty"`
	LastPriceIncreaseYearsAgo float64 `json:"last_price_increase_years_ago,omitempty"`

	// Profitability
	GrossMarginPct       float64 `json:"gross_margin_pct,omitempty"`
	NetMarginPct         float64 `json:"net_margin_pct,omitempty"`
	MonthlyFixedCosts    float64 `json:"monthly_fixed_costs,omitempty"`
	MonthlyVariableCosts float64 `json:"monthly_variable_costs,omitempty"`
	OwnerCompensation    float64 `json:"owner_compensation,omitempty"`
	LargestExpense       string  `json:"largest_expense,omitempty"`

	// Unit economics
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost,omitempty"`
	CustomerLifetimeValue   float64 `json:"customer_lifetime_value,omitempty"`
	MonthlyMarketingSpend   float64 `json:"monthly_marketing_spend,omitempty"`
	LeadsPerMonth           float64 `json:"leads_per_month,omitempty"`
	LeadConversionRatePct   float64 `json:"lead_conversion_rate_pct,omitempty"`
	ChurnRatePct            float64 `json:"churn_rate_pct,omitempty"`
	PrimaryLeadChannel      string  `json:"primary_lead_channel,omitempty"`
	SalesCycleDays          float64 `json:"sales_cycle_days,omitempty"`

	// Cash and balance sheet
	CashReserves        float64 `json:"cash_reserves,omitempty"`
	MonthlyBurnRate     float64 `json:"monthly_burn_rate,omitempty"`
	AccountsReceivable  float64 `json:"accounts_receivable,omitempty"`
	AccountsPayable     float64 `json:"accounts_payable,omitempty"`
	DebtOutstanding     float64 `json:"debt_outstanding,omitempty"`
	CreditLineAvailable float64 `json:"credit_line_available,omitempty"`
	AvgReceivableDays   float64 `json:"avg_receivable_days,omitempty"`

	// Operations
	CapacityUtilizationPct  float64 `json:"capacity_utilization_pct,omitempty"`
	OnTimeDeliveryPct       float64 `json:"on_time_delivery_pct,omitempty"`
	DefectOrReworkPct       float64 `json:"defect_or_rework_pct,omitempty"`
	CoreProcessesDocumented string  `json:"core_processes_documented,omitempty"`
	KeySystems              string  `json:"key_systems,omitempty"`
	BiggestOperationalCost  string  `json:"biggest_operational_cost,omitempty"`

	// Team
	KeyEmployees      int     `json:"key_employees,omitempty"`
	OpenRoles         int     `json:"open_roles,omitempty"`
	AnnualTurnoverPct float64 `json:"annual_turnover_pct,omitempty"`
	ManagementLayers  int     `json:"management_layers,omitempty"`
	TrainingBudget    float64 `json:"training_budget,omitempty"`

	// Strategy
	BiggestBottleneck   string `json:"biggest_bottleneck,omitempty"`
	GrowthGoal          string `json:"growth_goal,omitempty"`
	ExitPlan            string `json:"exit_plan,omitempty"`
	BiggestRisk         string `json:"biggest_risk,omitempty"`
	UntappedOpportunity string `json:"untapped_opportunity,omitempty"`
}

// UnitEconomics carries the derived figures with their guards applied.
type UnitEconomics struct {
	CACLTVRatio     float64         `json:"cac_ltv_ratio"`
	RatioAssessment RatioAssessment `json:"ratio_assessment"`
	RunwayMonths    float64         `json:"runway_months"`
	MonthlyNetBurn  float64         `json:"monthly_net_burn"`
}

type Opportunity struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type Risk struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ActionPlan is the 3/5/3 plan selected by the bottleneck pattern match.
type ActionPlan struct {
	Focus      string   `json:"focus"`
	Immediate  []string `json:"immediate"`
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
}

// Result is the Apex envelope. HealthScore is 0-100; Confidence is bounded
// to [60,95] by construction.
type Result struct {
	BusinessName  string        `json:"business_name,omitempty"`
	Stage         BusinessStage `json:"stage"`
	StageReason   string        `json:"stage_reason"`
	HealthScore   int           `json:"health_score"`
	UnitEconomics UnitEconomics `json:"unit_economics"`
	Opportunities []Opportunity `json:"opportunities"`
	Risks         []Risk        `json:"risks"`
	ActionPlan    ActionPlan    `json:"action_plan"`
	Completeness  int           `json:"completeness"`
	Confidence    int           `json:"confidence"`
}
