package report

import (
	"strings"
	"testing"

	"github.com/oakline/bizdiag/internal/apexaudit"
	"github.com/oakline/bizdiag/internal/diag"
	"github.com/oakline/bizdiag/internal/flashscan"
	"github.com/oakline/bizdiag/internal/fullaudit"
)

func frameworkFixture(t *testing.T) diag.FrameworkResult {
	t.Helper()
	answers := []diag.Answer{
		{QuestionID: "vision_written", Strength: diag.StrengthWeak},
		{QuestionID: "finance_cash_buffer", Strength: diag.StrengthWeak},
		{QuestionID: "people_owner_dependency", Strength: diag.StrengthStrong},
		{QuestionID: "revenue_pipeline", Strength: diag.StrengthPartial},
	}
	res, err := diag.RunFrameworkAnalysis(answers, diag.Context{SizeBand: "5-9"})
	if err != nil {
		t.Fatalf("fixture analysis failed: %v", err)
	}
	return res
}

func TestFrameworkMarkdownSections(t *testing.T) {
	md := BuildFrameworkMarkdown("Hartwell Fabrication", frameworkFixture(t))

	for _, want := range []string{
		"# Business Diagnostic Report",
		"Hartwell Fabrication",
		"## Where You Stand",
		"## Engine Scores",
		"## Do Now",
		"## Question Detail",
		Disclaimer,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestFrameworkMarkdownListsEnginesInCanonicalOrder(t *testing.T) {
	md := BuildFrameworkMarkdown("", frameworkFixture(t))
	last := -1
	for _, e := range diag.AllEngines {
		idx := strings.Index(md, "| "+string(e)+" |")
		if idx < 0 {
			t.Fatalf("engine %s missing from score table", e)
		}
		if idx < last {
			t.Fatalf("engine %s out of order", e)
		}
		last = idx
	}
}

func TestFlashScanMarkdown(t *testing.T) {
	res, err := flashscan.RunFlashScanAnalysis(flashscan.ScanData{
		Answers: []diag.Answer{
			{QuestionID: "flash_plan", Strength: diag.StrengthWeak},
			{QuestionID: "flash_cash", Strength: diag.StrengthWeak},
			{QuestionID: "flash_leads", Strength: diag.StrengthPartial},
		},
		TopConstraint: "cash",
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	md := BuildFlashScanMarkdown("Hartwell Fabrication", res)

	if !strings.Contains(md, "# Flash Scan Report") {
		t.Error("missing title")
	}
	if !strings.Contains(md, "## Quick Wins") {
		t.Error("missing quick wins section")
	}
	if !strings.Contains(md, res.GearEstimate.Label) {
		t.Error("missing gear label")
	}
}

func TestFullAuditMarkdownGatedResult(t *testing.T) {
	res := fullaudit.RunFullAuditAnalysis(fullaudit.AuditData{VisionClarity: 3})
	if res.Status != fullaudit.StatusNeedsMoreData {
		t.Fatalf("expected a gated result, got %s", res.Status)
	}
	md := BuildFullAuditMarkdown("", res)

	if !strings.Contains(md, "## More Answers Needed") {
		t.Error("gated report missing the completion explanation")
	}
	if strings.Contains(md, "## Department Health") {
		t.Error("gated report must not include department scores")
	}
}

func TestApexMarkdownRunwayCap(t *testing.T) {
	res := apexaudit.RunApexAuditAnalysis(apexaudit.ApexData{
		BusinessName: "Hartwell Fabrication",
		CashReserves: 50_000,
	})
	md := BuildApexMarkdown(res)

	if !strings.Contains(md, "99+ months") {
		t.Errorf("zero burn should render as the capped runway, got:\n%s", md)
	}
	if !strings.Contains(md, "### This Week") {
		t.Error("missing immediate plan section")
	}
}

func TestSanitizeCellEscapesPipes(t *testing.T) {
	if got := sanitizeCell("a|b\nc"); got != `a\|b c` {
		t.Errorf("sanitizeCell = %q", got)
	}
}

func TestFmtUSD(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		2400000: "2,400,000",
		-1500:   "-1,500",
	}
	for in, want := range cases {
		if got := fmtUSD(in); got != want {
			t.Errorf("fmtUSD(%d) = %q, want %q", in, got, want)
		}
	}
}
