// Package httpapi exposes the diagnostic engine over HTTP. Analysis is
// synchronous: each POST runs the mode, persists the assessment, and
// returns the result envelope with the rendered report markdown.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/oakline/bizdiag/internal/apexaudit"
	"github.com/oakline/bizdiag/internal/diag"
	"github.com/oakline/bizdiag/internal/flashscan"
	"github.com/oakline/bizdiag/internal/fullaudit"
	"github.com/oakline/bizdiag/internal/report"
	"github.com/oakline/bizdiag/internal/store"
)

// Storage is the slice of the SQLite store the API needs.
type Storage interface {
	SaveAssessment(a *store.Assessment) error
	GetAssessment(id string) (*store.Assessment, error)
	ListAssessments(filter store.ListFilter) ([]store.Assessment, error)
	Health() map[string]any
}

// Advisor writes a short owner-facing narrative for a finished report.
// Optional; a nil advisor or a failed call just omits the narrative.
type Advisor interface {
	Summarize(ctx context.Context, reportMarkdown string) (string, error)
}

// PDFRenderer prints report markdown to PDF.
type PDFRenderer interface {
	Render(ctx context.Context, title, markdown string) ([]byte, error)
}

type Server struct {
	store    Storage
	advisor  Advisor
	renderer PDFRenderer
	tracer   trace.Tracer
}

func NewServer(st Storage, advisor Advisor, renderer PDFRenderer) http.Handler {
	s := &Server{
		store:    st,
		advisor:  advisor,
		renderer: renderer,
		tracer:   otel.Tracer("bizdiag/httpapi"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/diagnostics", s.handleDiagnostics)
	mux.HandleFunc("/v1/diagnostics/", s.handleDiagnosticsSub)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, err error) {
	var ae *Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.Status, map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":    ae.Code,
				"message": ae.Message,
			},
		})
		return
	}
	writeJSON(w, 500, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    CodeInternal,
			"message": err.Error(),
		},
	})
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return blob, nil
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return v
}

// handleDiagnostics serves the collection: GET lists saved assessments.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	rows, err := s.store.ListAssessments(store.ListFilter{
		Mode:  strings.TrimSpace(r.URL.Query().Get("mode")),
		Limit: parseInt(r.URL.Query().Get("limit"), 0),
	})
	if err != nil {
		writeAPIError(w, newError(CodeValidation, err.Error()))
		return
	}
	writeJSON(w, 200, map[string]any{"assessments": rows})
}

// handleDiagnosticsSub dispatches /v1/diagnostics/<suffix>: the four POST
// analysis routes, GET by ID, and GET <id>/pdf.
func (s *Server) handleDiagnosticsSub(w http.ResponseWriter, r *http.Request) {
	suffix := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/diagnostics/"), "/")

	switch suffix {
	case "flash-scan":
		s.runAnalysis(w, r, store.ModeFlashScan)
		return
	case "full-audit":
		s.runAnalysis(w, r, store.ModeFullAudit)
		return
	case "apex-audit":
		s.runAnalysis(w, r, store.ModeApexAudit)
		return
	case "framework":
		s.runAnalysis(w, r, store.ModeFramework)
		return
	case "":
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if id, ok := strings.CutSuffix(suffix, "/pdf"); ok {
		s.handlePDF(w, r, id)
		return
	}
	s.handleGetByID(w, r, suffix)
}

type analysisRequest struct {
	BusinessName string `json:"business_name"`

	// Flash Scan and Framework
	Answers       []diag.Answer `json:"answers,omitempty"`
	SizeBand      string        `json:"size_band,omitempty"`
	AnnualRevenue float64       `json:"annual_revenue,omitempty"`
	TopConstraint string        `json:"top_constraint,omitempty"`
	Industry      string        `json:"industry,omitempty"`

	// Full Audit
	Audit *fullaudit.AuditData `json:"audit,omitempty"`

	// Apex Audit
	Apex *apexaudit.ApexData `json:"apex,omitempty"`
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, mode string) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := readBody(r)
	if err != nil {
		writeAPIError(w, newValidationJSONError(err))
		return
	}
	var req analysisRequest
	if err := json.Unmarshal(blob, &req); err != nil {
		writeAPIError(w, newValidationJSONError(err))
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "diagnostics.analyze",
		trace.WithAttributes(attribute.String("diag.mode", mode)))
	defer span.End()

	result, markdown, err := s.analyze(mode, req)
	if err != nil {
		writeAPIError(w, err)
		return
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		writeAPIError(w, newError(CodeInternal, "encode result: "+err.Error()))
		return
	}

	asm := &store.Assessment{
		Mode:           mode,
		BusinessName:   businessName(mode, req),
		Input:          blob,
		Result:         resultJSON,
		ReportMarkdown: markdown,
	}
	if err := s.store.SaveAssessment(asm); err != nil {
		writeAPIError(w, newError(CodeInternal, "save assessment: "+err.Error()))
		return
	}
	span.SetAttributes(attribute.String("diag.assessment_id", asm.ID))

	payload := map[string]any{
		"ok":              true,
		"assessment_id":   asm.ID,
		"result":          result,
		"report_markdown": markdown,
	}
	if s.advisor != nil {
		if summary, aerr := s.advisor.Summarize(ctx, markdown); aerr != nil {
			log.Printf("advisor summary failed for %s: %v", asm.ID, aerr)
		} else if summary != "" {
			payload["advisor_summary"] = summary
		}
	}
	writeJSON(w, 200, payload)
}

// analyze runs one mode. Input validation failures map to 400, never to
// a dropped request.
func (s *Server) analyze(mode string, req analysisRequest) (any, string, error) {
	switch mode {
	case store.ModeFlashScan:
		res, err := flashscan.RunFlashScanAnalysis(flashscan.ScanData{
			Answers:       req.Answers,
			SizeBand:      req.SizeBand,
			TopConstraint: req.TopConstraint,
			Industry:      req.Industry,
		})
		if err != nil {
			return nil, "", newError(CodeValidation, err.Error())
		}
		return res, report.BuildFlashScanMarkdown(req.BusinessName, res), nil

	case store.ModeFullAudit:
		if req.Audit == nil {
			return nil, "", newError(CodeValidation, "audit payload required")
		}
		res := fullaudit.RunFullAuditAnalysis(*req.Audit)
		return res, report.BuildFullAuditMarkdown(req.BusinessName, res), nil

	case store.ModeApexAudit:
		if req.Apex == nil {
			return nil, "", newError(CodeValidation, "apex payload required")
		}
		res := apexaudit.RunApexAuditAnalysis(*req.Apex)
		return res, report.BuildApexMarkdown(res), nil

	case store.ModeFramework:
		res, err := diag.RunFrameworkAnalysis(req.Answers, diag.Context{
			SizeBand:          req.SizeBand,
			AnnualRevenue:     req.AnnualRevenue,
			BiggestConstraint: req.TopConstraint,
			Industry:          req.Industry,
		})
		if err != nil {
			return nil, "", newError(CodeValidation, err.Error())
		}
		return res, report.BuildFrameworkMarkdown(req.BusinessName, res), nil
	}
	return nil, "", newError(CodeNotFound, "unknown mode "+mode)
}

func businessName(mode string, req analysisRequest) string {
	if mode == store.ModeApexAudit && req.Apex != nil && req.Apex.BusinessName != "" {
		return req.Apex.BusinessName
	}
	return req.BusinessName
}

func (s *Server) handleGetByID(w http.ResponseWriter, r *http.Request, id string) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	asm, err := s.store.GetAssessment(id)
	if err != nil {
		writeAPIError(w, newError(CodeInternal, err.Error()))
		return
	}
	if asm == nil {
		writeAPIError(w, newError(CodeNotFound, "assessment "+id+" not found"))
		return
	}
	writeJSON(w, 200, asm)
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request, id string) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	if s.renderer == nil {
		writeAPIError(w, newError(CodeUnavailable, "pdf rendering not configured"))
		return
	}
	asm, err := s.store.GetAssessment(id)
	if err != nil {
		writeAPIError(w, newError(CodeInternal, err.Error()))
		return
	}
	if asm == nil {
		writeAPIError(w, newError(CodeNotFound, "assessment "+id+" not found"))
		return
	}
	if strings.TrimSpace(asm.ReportMarkdown) == "" {
		writeAPIError(w, newError(CodeNotFound, "assessment "+id+" has no report"))
		return
	}

	pdf, err := s.renderer.Render(r.Context(), asm.BusinessName+" diagnostic", asm.ReportMarkdown)
	if err != nil {
		writeAPIError(w, newError(CodeUnavailable, "render pdf: "+err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, s.store.Health())
}
