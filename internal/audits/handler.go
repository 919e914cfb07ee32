package audits

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seo-audit-backend/internal/shared/server/middleware"
	"seo-audit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the audits service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches audit routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/audits", h.startAudit)
	rg.GET("/audits", h.listAudits)
	rg.GET("/audits/:id", h.getAudit)
	rg.GET("/audits/:id/plan", h.getAuditPlan)
}

type startAuditRequest struct {
	SiteURL       string          `json:"siteUrl"`
	Metrics       MetricsSnapshot `json:"metrics"`
	PromptVersion string          `json:"promptVersion"`
}

func (h *Handler) startAudit(c *gin.Context) {
	var req startAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	audit, err := h.Svc.Create(ctx, req.SiteURL, req.Metrics, req.PromptVersion)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	respond.Accepted(c, gin.H{
		"auditId": audit.ID,
		"status":  audit.Status,
	})
}

func (h *Handler) getAudit(c *gin.Context) {
	auditID := c.Param("id")
	if auditID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "audit id is required", nil)
		return
	}

	audit, err := h.Svc.Get(c.Request.Context(), auditID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch audit", nil)
		}
		return
	}

	resp := gin.H{
		"id":        audit.ID,
		"siteUrl":   audit.SiteURL,
		"status":    audit.Status,
		"createdAt": audit.CreatedAt,
	}
	if audit.Status == StatusCompleted && audit.Result != nil {
		resp["result"] = audit.Result
	}
	if audit.Status == StatusFailed && audit.ErrorMessage != nil {
		resp["errorMessage"] = *audit.ErrorMessage
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) getAuditPlan(c *gin.Context) {
	auditID := c.Param("id")
	if auditID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "audit id is required", nil)
		return
	}

	audit, err := h.Svc.Get(c.Request.Context(), auditID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch audit", nil)
		}
		return
	}

	if audit.Status != StatusCompleted || audit.Result == nil {
		respond.Error(c, http.StatusConflict, "not_ready", "audit has no action plan yet", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"auditId":         audit.ID,
		"recommendations": audit.Result.Recommendations,
		"summary":         audit.Result.PlanSummary,
	})
}

func (h *Handler) listAudits(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	audits, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list audits", nil)
		return
	}

	resp := make([]gin.H, 0, len(audits))
	for _, a := range audits {
		item := gin.H{
			"auditId":   a.ID,
			"siteUrl":   a.SiteURL,
			"status":    a.Status,
			"createdAt": a.CreatedAt,
		}
		if a.Status == StatusCompleted && a.Result != nil {
			item["overallScore"] = a.Result.BenchmarkSummary.OverallScore
			item["executiveSummary"] = a.Result.ExecutiveSummary
		}
		resp = append(resp, item)
	}

	respond.JSON(c, http.StatusOK, resp)
}
