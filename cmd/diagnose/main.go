package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oakline/bizdiag/internal/apexaudit"
	"github.com/oakline/bizdiag/internal/diag"
	"github.com/oakline/bizdiag/internal/flashscan"
	"github.com/oakline/bizdiag/internal/fullaudit"
	"github.com/oakline/bizdiag/internal/report"
)

// diagnose runs one diagnostic mode over a JSON intake file and writes the
// report markdown, optionally also the result envelope and a PDF.
func main() {
	mode := flag.String("mode", "framework", "diagnostic mode: flash-scan, full-audit, apex-audit, framework")
	inputPath := flag.String("input", "", "Path to intake JSON")
	outputPath := flag.String("output", "", "Path to write report markdown (defaults to stdout)")
	jsonOutputPath := flag.String("json-output", "", "Optional path to write the result envelope JSON")
	pdfOutputPath := flag.String("pdf-output", "", "Optional path to write the rendered PDF (needs Chromium)")
	businessName := flag.String("business", "", "Business name for the report header")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}
	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	result, markdown, err := run(*mode, *businessName, in)
	if err != nil {
		log.Fatalf("%s analysis: %v", *mode, err)
	}

	if err := writeMarkdown(*outputPath, markdown); err != nil {
		log.Fatalf("write markdown: %v", err)
	}
	if *jsonOutputPath != "" {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("encode result: %v", err)
		}
		if err := os.WriteFile(*jsonOutputPath, b, 0o644); err != nil {
			log.Fatalf("write json output: %v", err)
		}
	}
	if *pdfOutputPath != "" {
		renderer := report.NewChromiumPDFRenderer("")
		pdf, err := renderer.Render(context.Background(), *businessName+" diagnostic", markdown)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfOutputPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	}
}

type intake struct {
	Answers       []diag.Answer `json:"answers"`
	SizeBand      string        `json:"size_band"`
	AnnualRevenue float64       `json:"annual_revenue"`
	TopConstraint string        `json:"top_constraint"`
	Industry      string        `json:"industry"`
}

func run(mode, businessName string, in []byte) (any, string, error) {
	switch mode {
	case "flash-scan":
		var data flashscan.ScanData
		if err := json.Unmarshal(in, &data); err != nil {
			return nil, "", fmt.Errorf("decode input JSON: %w", err)
		}
		res, err := flashscan.RunFlashScanAnalysis(data)
		if err != nil {
			return nil, "", err
		}
		return res, report.BuildFlashScanMarkdown(businessName, res), nil

	case "full-audit":
		var data fullaudit.AuditData
		if err := json.Unmarshal(in, &data); err != nil {
			return nil, "", fmt.Errorf("decode input JSON: %w", err)
		}
		res := fullaudit.RunFullAuditAnalysis(data)
		return res, report.BuildFullAuditMarkdown(businessName, res), nil

	case "apex-audit":
		var data apexaudit.ApexData
		if err := json.Unmarshal(in, &data); err != nil {
			return nil, "", fmt.Errorf("decode input JSON: %w", err)
		}
		if businessName != "" && data.BusinessName == "" {
			data.BusinessName = businessName
		}
		res := apexaudit.RunApexAuditAnalysis(data)
		return res, report.BuildApexMarkdown(res), nil

	case "framework":
		var data intake
		if err := json.Unmarshal(in, &data); err != nil {
			return nil, "", fmt.Errorf("decode input JSON: %w", err)
		}
		res, err := diag.RunFrameworkAnalysis(data.Answers, diag.Context{
			SizeBand:          data.SizeBand,
			AnnualRevenue:     data.AnnualRevenue,
			BiggestConstraint: data.TopConstraint,
			Industry:          data.Industry,
		})
		if err != nil {
			return nil, "", err
		}
		return res, report.BuildFrameworkMarkdown(businessName, res), nil
	}
	return nil, "", fmt.Errorf("unknown mode %q", mode)
}

func writeMarkdown(outputPath, markdown string) error {
	if outputPath == "" {
		_, err := fmt.Print(markdown)
		return err
	}
	return os.WriteFile(outputPath, []byte(markdown), 0o644)
}
