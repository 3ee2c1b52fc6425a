package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oakline/bizdiag/internal/store"
)

type stubAdvisor struct {
	summary string
	err     error
}

func (a *stubAdvisor) Summarize(_ context.Context, _ string) (string, error) {
	return a.summary, a.err
}

type stubRenderer struct{}

func (stubRenderer) Render(_ context.Context, _, _ string) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newServerForTest(t *testing.T, advisor Advisor, renderer PDFRenderer) http.Handler {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "bizdiag.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewServer(st, advisor, renderer)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	blob, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(blob))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rr.Body.String())
	}
	return out
}

func flashScanBody() map[string]any {
	return map[string]any{
		"business_name": "Hartwell Fabrication",
		"answers": []map[string]string{
			{"question_id": "flash_plan", "strength": "weak"},
			{"question_id": "flash_cash", "strength": "partial"},
			{"question_id": "flash_leads", "strength": "strong"},
		},
		"top_constraint": "cash",
	}
}

func TestFlashScanEndpoint(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/flash-scan", flashScanBody())
	if rr.Code != 200 {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	out := decode(t, rr)
	if out["ok"] != true {
		t.Fatal("expected ok response")
	}
	if out["assessment_id"] == "" {
		t.Error("missing assessment_id")
	}
	if md, _ := out["report_markdown"].(string); !strings.Contains(md, "# Flash Scan Report") {
		t.Error("missing report markdown")
	}
	result, _ := out["result"].(map[string]any)
	if _, ok := result["overall_score"]; !ok {
		t.Errorf("result missing overall_score: %v", result)
	}
}

func TestFlashScanRejectsEmptyAnswers(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/flash-scan", map[string]any{"answers": []any{}})
	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	out := decode(t, rr)
	errObj, _ := out["error"].(map[string]any)
	if errObj["code"] != CodeValidation {
		t.Errorf("error code = %v", errObj["code"])
	}
}

func TestFullAuditEndpointRequiresPayload(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/full-audit", map[string]any{"business_name": "x"})
	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestFullAuditEndpointGatedResult(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/full-audit", map[string]any{
		"audit": map[string]int{"vision_clarity": 4, "cash_flow": 2},
	})
	if rr.Code != 200 {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	out := decode(t, rr)
	result, _ := out["result"].(map[string]any)
	if result["status"] != "needs_more_data" {
		t.Errorf("status = %v, want needs_more_data", result["status"])
	}
}

func TestApexEndpointNeverRejectsSparseData(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/apex-audit", map[string]any{
		"apex": map[string]any{"business_name": "Hartwell Fabrication"},
	})
	if rr.Code != 200 {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestFrameworkEndpointRoundTrip(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := postJSON(t, h, "/v1/diagnostics/framework", map[string]any{
		"business_name": "Hartwell Fabrication",
		"size_band":     "5-9",
		"answers": []map[string]string{
			{"question_id": "vision_written", "strength": "weak"},
			{"question_id": "finance_cash_buffer", "strength": "weak"},
		},
	})
	if rr.Code != 200 {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	out := decode(t, rr)
	id, _ := out["assessment_id"].(string)

	rr = get(h, "/v1/diagnostics/"+id)
	if rr.Code != 200 {
		t.Fatalf("fetch by id: status = %d", rr.Code)
	}
	saved := decode(t, rr)
	if saved["mode"] != store.ModeFramework {
		t.Errorf("saved mode = %v", saved["mode"])
	}

	rr = get(h, "/v1/diagnostics?mode=framework")
	list := decode(t, rr)
	rows, _ := list["assessments"].([]any)
	if len(rows) != 1 {
		t.Errorf("list returned %d rows, want 1", len(rows))
	}
}

func TestGetMissingAssessmentReturns404(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	if rr := get(h, "/v1/diagnostics/asm-424242"); rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	if rr := get(h, "/v1/diagnostics/flash-scan"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET on an analysis route: status = %d", rr.Code)
	}
	if rr := postJSON(t, h, "/v1/health", nil); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST on health: status = %d", rr.Code)
	}
}

func TestAdvisorSummaryIncludedWhenAvailable(t *testing.T) {
	h := newServerForTest(t, &stubAdvisor{summary: "Focus on cash first."}, nil)
	out := decode(t, postJSON(t, h, "/v1/diagnostics/flash-scan", flashScanBody()))
	if out["advisor_summary"] != "Focus on cash first." {
		t.Errorf("advisor_summary = %v", out["advisor_summary"])
	}
}

func TestAdvisorFailureIsSoft(t *testing.T) {
	h := newServerForTest(t, &stubAdvisor{err: errors.New("model unavailable")}, nil)
	rr := postJSON(t, h, "/v1/diagnostics/flash-scan", flashScanBody())
	if rr.Code != 200 {
		t.Fatalf("advisor failure must not fail the request, status = %d", rr.Code)
	}
	out := decode(t, rr)
	if _, ok := out["advisor_summary"]; ok {
		t.Error("failed advisor call must omit the summary")
	}
}

func TestPDFEndpoint(t *testing.T) {
	h := newServerForTest(t, nil, stubRenderer{})
	out := decode(t, postJSON(t, h, "/v1/diagnostics/flash-scan", flashScanBody()))
	id, _ := out["assessment_id"].(string)

	rr := get(h, "/v1/diagnostics/"+id+"/pdf")
	if rr.Code != 200 {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
}

func TestPDFEndpointUnavailableWithoutRenderer(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	out := decode(t, postJSON(t, h, "/v1/diagnostics/flash-scan", flashScanBody()))
	id, _ := out["assessment_id"].(string)

	if rr := get(h, "/v1/diagnostics/"+id+"/pdf"); rr.Code != 503 {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newServerForTest(t, nil, nil)
	rr := get(h, "/v1/health")
	if rr.Code != 200 {
		t.Fatalf("status = %d", rr.Code)
	}
	out := decode(t, rr)
	if out["status"] != "ok" {
		t.Errorf("health status = %v", out["status"])
	}
}
