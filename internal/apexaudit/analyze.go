package apexaudit

import (
	"fmt"
	"math"
	"strings"
)

// RunApexAuditAnalysis evaluates the full intake record. It never fails:
// missing fields lower completeness and confidence but every section of
// the result is always produced.
func RunApexAuditAnalysis(data ApexData) Result {
	econ := deriveUnitEconomics(data)
	stage, reason := classifyStage(data)
	completeness := completenessPct(data)

	return Result{
		BusinessName:  data.BusinessName,
		Stage:         stage,
		StageReason:   reason,
		HealthScore:   healthScore(data, econ),
		UnitEconomics: econ,
		Opportunities: findOpportunities(data, econ),
		Risks:         findRisks(data, econ),
		ActionPlan:    buildActionPlan(data.BiggestBottleneck),
		Completeness:  completeness,
		Confidence:    confidence(completeness),
	}
}

func deriveUnitEconomics(data ApexData) UnitEconomics {
	econ := UnitEconomics{MonthlyNetBurn: data.MonthlyBurnRate}

	// Ratio is LTV per dollar of CAC. Unknown CAC yields 0, not a divide.
	if data.CustomerAcquisitionCost > 0 {
		econ.CACLTVRatio = round1(data.CustomerLifetimeValue / data.CustomerAcquisitionCost)
	}
	econ.RatioAssessment = assessRatio(econ.CACLTVRatio, data.CustomerAcquisitionCost)

	switch {
	case data.MonthlyBurnRate <= 0:
		econ.RunwayMonths = RunwayCapMonths
	default:
		econ.RunwayMonths = math.Min(RunwayCapMonths, round1(data.CashReserves/data.MonthlyBurnRate))
	}
	return econ
}

func assessRatio(ratio, cac float64) RatioAssessment {
	if cac <= 0 {
		return RatioUnknown
	}
	switch {
	case ratio >= 3:
		return RatioExcellent
	case ratio >= 2:
		return RatioHealthy
	case ratio >= 1:
		return RatioConcerning
	default:
		return RatioCritical
	}
}

// classifyStage buckets the business by revenue first. Very young or very
// small businesses stay Startup below the Growth revenue line, and a large
// headcount promotes Growth revenue to Scale.
func classifyStage(data ApexData) (BusinessStage, string) {
	headcount := data.FullTimeEmployees + data.PartTimeEmployees
	switch {
	case data.AnnualRevenue >= 25_000_000:
		return StageMature, "annual revenue of $25M or more"
	case data.AnnualRevenue >= 5_000_000:
		return StageScale, "annual revenue between $5M and $25M"
	case data.YearsInBusiness > 0 && data.YearsInBusiness < 2:
		return StageStartup, "less than two years in business"
	case data.AnnualRevenue >= 500_000 && headcount >= 100:
		return StageScale, "growth-stage revenue with a scale-stage headcount"
	case data.AnnualRevenue >= 500_000:
		return StageGrowth, "annual revenue between $500K and $5M"
	case headcount > 3:
		return StageStartup, "pre-growth revenue"
	default:
		return StageStartup, "early revenue and a small team"
	}
}

// healthScore is additive around a neutral base of 50. Each contribution
// is monotone in its input: more revenue never lowers the score, a margin
// sliding from positive to negative always does.
func healthScore(data ApexData, econ UnitEconomics) int {
	score := 50.0

	switch {
	case data.AnnualRevenue >= 25_000_000:
		score += 15
	case data.AnnualRevenue >= 5_000_000:
		score += 12
	case data.AnnualRevenue >= 1_000_000:
		score += 8
	case data.AnnualRevenue >= 250_000:
		score += 4
	}

	switch {
	case data.NetMarginPct > 20:
		score += 15
	case data.NetMarginPct > 10:
		score += 10
	case data.NetMarginPct > 0:
		score += 5
	case data.NetMarginPct < 0:
		score -= 10
	}

	if data.CustomerAcquisitionCost > 0 {
		switch {
		case econ.CACLTVRatio >= 3:
			score += 15
		case econ.CACLTVRatio >= 2:
			score += 8
		case econ.CACLTVRatio >= 1:
			score += 2
		default:
			score -= 10
		}
	}

	switch {
	case econ.RunwayMonths >= 12:
		score += 10
	case econ.RunwayMonths >= 6:
		score += 5
	case econ.RunwayMonths < 3:
		score -= 10
	}

	switch {
	case data.RevenueGrowthRatePct >= 20:
		score += 5
	case data.RevenueGrowthRatePct < 0:
		score -= 5
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// findOpportunities checks a fixed list of conditions in order and keeps
// the first OpportunityCap that fire.
func findOpportunities(data ApexData, econ UnitEconomics) []Opportunity {
	var out []Opportunity
	add := func(title, detail string) {
		if len(out) < OpportunityCap {
			out = append(out, Opportunity{Title: title, Detail: detail})
		}
	}

	if data.CustomerAcquisitionCost > 0 && econ.CACLTVRatio >= 3 {
		add("Scale customer acquisition",
			fmt.Sprintf("Each acquired customer returns %.1fx the acquisition cost. Spending more on the working channel is the fastest growth lever available.", econ.CACLTVRatio))
	}
	if data.LeadsPerMonth > 0 && data.LeadConversionRatePct > 0 && data.LeadConversionRatePct < 20 {
		add("Improve lead conversion",
			fmt.Sprintf("Only %.0f%% of leads convert. Tightening follow-up and qualification grows revenue without new marketing spend.", data.LeadConversionRatePct))
	}
	if data.MonthlyRecurringRevenue == 0 && data.AnnualRevenue > 0 {
		add("Introduce recurring revenue",
			"No revenue recurs today. A retainer, subscription, or maintenance offering smooths cash flow and raises lifetime value.")
	}
	if data.LastPriceIncreaseYearsAgo >= 2 {
		add("Revisit pricing",
			fmt.Sprintf("Prices last moved %.0f years ago. A modest increase on proven offerings usually sticks and drops straight to margin.", data.LastPriceIncreaseYearsAgo))
	}
	if data.CapacityUtilizationPct > 0 && data.CapacityUtilizationPct < 70 {
		add("Fill unused capacity",
			fmt.Sprintf("Capacity sits at %.0f%% utilization. Selling into the existing slack adds revenue with near-zero marginal cost.", data.CapacityUtilizationPct))
	}
	if data.RepeatPurchaseRatePct > 0 && data.RepeatPurchaseRatePct < 30 {
		add("Grow repeat business",
			fmt.Sprintf("Repeat purchases sit at %.0f%%. Structured follow-up with past customers is cheaper than winning new ones.", data.RepeatPurchaseRatePct))
	}
	if data.UntappedOpportunity != "" {
		add("Pursue the named opportunity",
			fmt.Sprintf("The owner already sees it: %s. Scoping a small, time-boxed test is the next step.", data.UntappedOpportunity))
	}
	return out
}

// findRisks mirrors findOpportunities with risk conditions, ordered from
// existential to structural, kept to the first RiskCap that fire.
func findRisks(data ApexData, econ UnitEconomics) []Risk {
	var out []Risk
	add := func(title, detail string) {
		if len(out) < RiskCap {
			out = append(out, Risk{Title: title, Detail: detail})
		}
	}

	if data.MonthlyBurnRate > 0 && econ.RunwayMonths < 3 {
		add("Cash runway under three months",
			fmt.Sprintf("At the current burn the reserves last %.1f months. Cash preservation comes before every other initiative.", econ.RunwayMonths))
	}
	if data.CustomerAcquisitionCost > 0 && econ.CACLTVRatio < 1 {
		add("Losing money on every customer",
			fmt.Sprintf("Lifetime value covers only %.1fx the acquisition cost. Growth at this ratio accelerates losses.", econ.CACLTVRatio))
	}
	if data.TopCustomerRevenueShare > 25 {
		add("Customer concentration",
			fmt.Sprintf("The largest customer is %.0f%% of revenue. Losing them is an immediate solvency event, not a setback.", data.TopCustomerRevenueShare))
	}
	if data.ChurnRatePct > 15 {
		add("High customer churn",
			fmt.Sprintf("%.0f%% of customers leave per period. Acquisition is refilling a leaking bucket.", data.ChurnRatePct))
	}
	if data.OwnerHoursPerWeek > 60 {
		add("Owner dependence",
			fmt.Sprintf("The owner works %.0f hours a week. The business cannot run, sell, or scale on that foundation.", data.OwnerHoursPerWeek))
	}
	if data.AnnualTurnoverPct > 30 {
		add("Staff turnover",
			fmt.Sprintf("Annual turnover of %.0f%% drains institutional knowledge and keeps the team in permanent onboarding.", data.AnnualTurnoverPct))
	}
	if data.AnnualRevenue > 0 && data.DebtOutstanding > data.AnnualRevenue/2 {
		add("Debt load",
			"Outstanding debt exceeds half of annual revenue. Service costs narrow every other option.")
	}
	return out
}

func completenessPct(data ApexData) int {
	provided := 0
	total := 0
	countStr := func(values ...string) {
		for _, v := range values {
			total++
			if strings.TrimSpace(v) != "" {
				provided++
			}
		}
	}
	countNum := func(values ...float64) {
		for _, v := range values {
			total++
			if v != 0 {
				provided++
			}
		}
	}
	countInt := func(values ...int) {
		for _, v := range values {
			total++
			if v != 0 {
				provided++
			}
		}
	}

	countStr(data.BusinessName, data.Industry, data.BusinessModel, data.Location,
		data.TargetMarket, data.CompetitiveAdvantage, data.MainCompetitors,
		data.SeasonalityNotes, data.PricingModel, data.LargestExpense,
		data.PrimaryLeadChannel, data.CoreProcessesDocumented, data.KeySystems,
		data.BiggestOperationalCost, data.BiggestBottleneck, data.GrowthGoal,
		data.ExitPlan, data.BiggestRisk, data.UntappedOpportunity)
	countNum(data.YearsInBusiness, data.OwnerHoursPerWeek, data.AnnualRevenue,
		data.PriorYearRevenue, data.MonthlyRecurringRevenue, data.RevenueGrowthRatePct,
		data.AverageTransactionValue, data.TransactionsPerMonth, data.TopCustomerRevenueShare,
		data.RepeatPurchaseRatePct, data.LastPriceIncreaseYearsAgo, data.GrossMarginPct,
		data.NetMarginPct, data.MonthlyFixedCosts, data.MonthlyVariableCosts,
		data.OwnerCompensation, data.CustomerAcquisitionCost, data.CustomerLifetimeValue,
		data.MonthlyMarketingSpend, data.LeadsPerMonth, data.LeadConversionRatePct,
		data.ChurnRatePct, data.SalesCycleDays, data.CashReserves, data.MonthlyBurnRate,
		data.AccountsReceivable, data.AccountsPayable, data.DebtOutstanding,
		data.CreditLineAvailable, data.AvgReceivableDays, data.CapacityUtilizationPct,
		data.OnTimeDeliveryPct, data.DefectOrReworkPct, data.AnnualTurnoverPct,
		data.TrainingBudget)
	countInt(data.FullTimeEmployees, data.PartTimeEmployees, data.Contractors,
		data.OwnerCount, data.ActiveCustomers, data.KeyEmployees, data.OpenRoles,
		data.ManagementLayers)

	return int(math.Round(float64(provided) / float64(total) * 100))
}

// confidence maps completeness into [60,95]. A fully blank record still
// gets a floor of 60 since the structural checks run regardless.
func confidence(completeness int) int {
	return int(math.Min(95, 60+float64(completeness)*0.35))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
