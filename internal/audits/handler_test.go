package audits

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"seo-audit-backend/internal/benchmarks"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestStartAuditAccepted(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: &stubQueue{}}
	router := newTestRouter(svc)

	body, _ := json.Marshal(startAuditRequest{
		SiteURL: "https://example.com",
		Metrics: validSnapshot(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d body=%s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["auditId"] == "" || resp["status"] != StatusQueued {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestStartAuditRejectsBadBody(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: &stubQueue{}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStartAuditRejectsInvalidSite(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: &stubQueue{}}
	router := newTestRouter(svc)

	body, _ := json.Marshal(startAuditRequest{SiteURL: "example.com", Metrics: validSnapshot()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetAuditNotFound(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audits/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetAuditIncludesResultWhenCompleted(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	audit := Audit{
		ID:        "audit-1",
		SiteURL:   "https://example.com",
		Status:    StatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
		Result: &Result{
			BenchmarkSummary: benchmarks.Summary{OverallScore: 88},
			ExecutiveSummary: "Strong visibility.",
		},
	}
	if err := repo.Create(context.Background(), audit); err != nil {
		t.Fatalf("seed repo: %v", err)
	}
	router := newTestRouter(&Service{Repo: repo})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audits/audit-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result in response: %v", resp)
	}
	if result["executive_summary"] != "Strong visibility." {
		t.Fatalf("unexpected result payload: %v", result)
	}
}

func TestGetAuditPlanNotReady(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	if err := repo.Create(context.Background(), Audit{
		ID: "audit-1", SiteURL: "https://example.com", Status: StatusQueued,
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed repo: %v", err)
	}
	router := newTestRouter(&Service{Repo: repo})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audits/audit-1/plan", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestListAudits(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		if err := repo.Create(context.Background(), Audit{
			ID: id, SiteURL: "https://example.com", Status: StatusQueued,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			UpdatedAt: base,
		}); err != nil {
			t.Fatalf("seed repo: %v", err)
		}
	}
	router := newTestRouter(&Service{Repo: repo})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audits?limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 audits, got %d", len(resp))
	}
	if resp[0]["auditId"] != "c" {
		t.Fatalf("expected newest first, got %v", resp[0])
	}
}
