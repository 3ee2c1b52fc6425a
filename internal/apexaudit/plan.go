package apexaudit

import "strings"

// planCatalog holds one 3/5/3 plan per focus area. Plans are static so
// identical inputs always produce identical output.
var planCatalog = map[string]ActionPlan{
	"demand": {
		Focus: "Generating demand",
		Immediate: []string{
			"Call the last ten customers who bought and ask what almost stopped them",
			"Pick the one lead channel with the best close rate and pause spend everywhere else",
			"Write down the current lead-to-close numbers so next month has a baseline",
		},
		ShortTerm: []string{
			"Build a follow-up sequence so no inquiry goes more than one day without a reply",
			"Ask every happy customer for one referral, with a script and a reason to say yes",
			"Publish three pieces of proof: case results, before-and-after, named testimonials",
			"Test one price or packaging change on new prospects only",
			"Set a weekly pipeline review with a fixed list of numbers",
		},
		MediumTerm: []string{
			"Double down on the channel the ninety-day numbers favor",
			"Productize the most-bought offering so it sells without a custom quote",
			"Hire or assign one person to own lead follow-up end to end",
		},
	},
	"cash": {
		Focus: "Stabilizing cash",
		Immediate: []string{
			"Build a thirteen-week cash forecast, updated every Friday",
			"Invoice everything billable today and chase every receivable over thirty days",
			"Cut or pause any expense that does not touch revenue this quarter",
		},
		ShortTerm: []string{
			"Shorten payment terms on new work and take deposits up front",
			"Renegotiate the three largest supplier or rent obligations",
			"Raise prices on the lowest-margin offering or retire it",
			"Open a credit line while the numbers still support one",
			"Move one recurring cost from fixed to usage-based",
		},
		MediumTerm: []string{
			"Rebuild the offer mix around the highest-margin work",
			"Target three months of operating expenses held in reserve",
			"Add a recurring revenue stream to flatten the cash curve",
		},
	},
	"team": {
		Focus: "Building the team",
		Immediate: []string{
			"List every task only the owner can do and mark the three easiest to hand off",
			"Write a one-page scorecard for the single most urgent open role",
			"Ask each current employee what would make them stay two more years",
		},
		ShortTerm: []string{
			"Document the three processes that break when a key person is out",
			"Run a structured hiring round: scorecard, work sample, reference calls",
			"Set a thirty-day onboarding plan so new hires produce in week one",
			"Put a simple bonus or profit-share on the outcomes that matter",
			"Schedule a monthly one-on-one with every direct report",
		},
		MediumTerm: []string{
			"Promote or hire a second-in-command for day-to-day operations",
			"Build a training path for the next person into each key role",
			"Tie compensation reviews to the documented scorecards",
		},
	},
	"operations": {
		Focus: "Fixing delivery",
		Immediate: []string{
			"Map the delivery process wall to wall and mark where work waits",
			"Measure on-time delivery for the last thirty jobs, no estimates",
			"Stop accepting work the current capacity cannot deliver on time",
		},
		ShortTerm: []string{
			"Fix the single worst bottleneck step before touching anything else",
			"Write a checklist for the step that produces the most rework",
			"Set one quality gate before handoff to the customer",
			"Standardize the intake so every job starts with the same information",
			"Track capacity weekly and price rush work accordingly",
		},
		MediumTerm: []string{
			"Automate or outsource the lowest-skill recurring step",
			"Cross-train so every critical step has two people who can run it",
			"Review the process map quarterly and retire steps that no longer pay",
		},
	},
	"focus": {
		Focus: "Finding the constraint",
		Immediate: []string{
			"Write down the one number that, doubled, would change the business most",
			"Track time for one week to see where the owner's hours actually go",
			"List the three recurring fires and what each one costs per month",
		},
		ShortTerm: []string{
			"Pick the single constraint the numbers point to and commit a quarter to it",
			"Set three measurable ninety-day goals and review them weekly",
			"Say no to every new initiative that does not serve the constraint",
			"Assign an owner and a deadline to each recurring fire",
			"Build a one-page dashboard of the five numbers that matter",
		},
		MediumTerm: []string{
			"Re-run the diagnostic and compare against this quarter's baseline",
			"Formalize the weekly review into a standing operating rhythm",
			"Plan the next constraint before the current one is fully cleared",
		},
	},
}

var bottleneckKeywords = []struct {
	focus string
	words []string
}{
	{"demand", []string{"lead", "sales", "marketing", "customer", "client", "demand", "pipeline"}},
	{"cash", []string{"cash", "money", "capital", "margin", "profit", "funding", "pricing"}},
	{"team", []string{"hir", "people", "staff", "team", "employee", "talent", "turnover"}},
	{"operations", []string{"time", "capacity", "deliver", "process", "operation", "fulfil", "production", "quality"}},
}

// buildActionPlan matches the stated bottleneck against keyword groups in
// priority order and falls back to the focus plan when nothing matches.
func buildActionPlan(bottleneck string) ActionPlan {
	needle := strings.ToLower(bottleneck)
	if needle != "" {
		for _, group := range bottleneckKeywords {
			for _, word := range group.words {
				if strings.Contains(needle, word) {
					return planCatalog[group.focus]
				}
			}
		}
	}
	return planCatalog["focus"]
}
