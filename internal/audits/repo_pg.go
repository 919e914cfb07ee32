package audits

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"seo-audit-backend/internal/plan"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// actionPlanPayload is the shape stored in the action_plan jsonb column.
type actionPlanPayload struct {
	Recommendations []plan.ScoredRecommendation `json:"recommendations"`
	Summary         plan.Summary                `json:"summary"`
}

// Create inserts a new audit.
func (r *PGRepo) Create(ctx context.Context, audit Audit) error {
	const query = `
INSERT INTO audits (
	id, site_url, status, error_message, metrics, benchmark_summary, keyword_insights,
	business_profile, executive_summary, action_plan, prompt_version, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`
	var metricsPayload any
	if audit.Metrics != nil {
		var err error
		if metricsPayload, err = marshalJSONB(audit.Metrics); err != nil {
			return err
		}
	}
	_, err := r.DB.ExecContext(ctx, query,
		audit.ID,
		audit.SiteURL,
		audit.Status,
		nil,
		metricsPayload,
		nil,
		nil,
		nil,
		"",
		nil,
		audit.PromptVersion,
		audit.CreatedAt,
	)
	return err
}

// GetByID returns an audit by ID.
func (r *PGRepo) GetByID(ctx context.Context, auditID string) (Audit, error) {
	const query = `
SELECT id, site_url, status, error_message, metrics, benchmark_summary, keyword_insights,
       business_profile, executive_summary, action_plan, prompt_version,
       created_at, updated_at, completed_at
FROM audits
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, auditID)
	audit, err := scanAudit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Audit{}, ErrNotFound
		}
		return Audit{}, err
	}
	return audit, nil
}

// List returns audits newest first, with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Audit, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, site_url, status, error_message, metrics, benchmark_summary, keyword_insights,
       business_profile, executive_summary, action_plan, prompt_version,
       created_at, updated_at, completed_at
FROM audits
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	audits := []Audit{}
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		audits = append(audits, audit)
	}
	return audits, rows.Err()
}

// UpdateStatus updates status, result sections, and error fields.
func (r *PGRepo) UpdateStatus(ctx context.Context, auditID, status string, result *Result, errorMessage *string, completedAt *time.Time) error {
	const query = `
UPDATE audits
SET status = $1,
    benchmark_summary = COALESCE($2::jsonb, benchmark_summary),
    keyword_insights = COALESCE($3::jsonb, keyword_insights),
    business_profile = COALESCE($4::jsonb, business_profile),
    executive_summary = COALESCE($5::text, executive_summary),
    action_plan = COALESCE($6::jsonb, action_plan),
    error_message = COALESCE($7::text, error_message),
    completed_at = CASE
        WHEN $8::timestamptz IS NOT NULL THEN $8::timestamptz
        WHEN ($1 = 'completed' OR $1 = 'failed') AND completed_at IS NULL THEN now()
        ELSE completed_at
    END,
    updated_at = now()
WHERE id = $9`

	var (
		benchmarkPayload any
		keywordPayload   any
		profilePayload   any
		execSummary      any
		planPayload      any
		err              error
	)
	if result != nil {
		if benchmarkPayload, err = marshalJSONB(result.BenchmarkSummary); err != nil {
			return err
		}
		if keywordPayload, err = marshalJSONB(result.KeywordInsights); err != nil {
			return err
		}
		if profilePayload, err = marshalJSONB(result.BusinessProfile); err != nil {
			return err
		}
		execSummary = result.ExecutiveSummary
		if planPayload, err = marshalJSONB(actionPlanPayload{
			Recommendations: result.Recommendations,
			Summary:         result.PlanSummary,
		}); err != nil {
			return err
		}
	}

	res, err := r.DB.ExecContext(ctx, query,
		status,
		benchmarkPayload,
		keywordPayload,
		profilePayload,
		execSummary,
		planPayload,
		errorMessage,
		completedAt,
		auditID,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudit(row rowScanner) (Audit, error) {
	var a Audit
	var errorMessage sql.NullString
	var metricsRaw sql.NullString
	var benchmarkRaw sql.NullString
	var keywordRaw sql.NullString
	var profileRaw sql.NullString
	var execSummary sql.NullString
	var planRaw sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.SiteURL,
		&a.Status,
		&errorMessage,
		&metricsRaw,
		&benchmarkRaw,
		&keywordRaw,
		&profileRaw,
		&execSummary,
		&planRaw,
		&a.PromptVersion,
		&a.CreatedAt,
		&a.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return Audit{}, err
	}

	if errorMessage.Valid {
		a.ErrorMessage = &errorMessage.String
	}
	if completedAt.Valid {
		a.CompletedAt = &completedAt.Time
	}
	if metricsRaw.Valid {
		var snapshot MetricsSnapshot
		if err := json.Unmarshal([]byte(metricsRaw.String), &snapshot); err == nil {
			a.Metrics = &snapshot
		}
	}

	if benchmarkRaw.Valid || keywordRaw.Valid || profileRaw.Valid || planRaw.Valid {
		result := &Result{}
		populated := false
		if benchmarkRaw.Valid {
			if err := json.Unmarshal([]byte(benchmarkRaw.String), &result.BenchmarkSummary); err == nil {
				populated = true
			}
		}
		if keywordRaw.Valid {
			if err := json.Unmarshal([]byte(keywordRaw.String), &result.KeywordInsights); err == nil {
				populated = true
			}
		}
		if profileRaw.Valid {
			if err := json.Unmarshal([]byte(profileRaw.String), &result.BusinessProfile); err == nil {
				populated = true
			}
		}
		if planRaw.Valid {
			var payload actionPlanPayload
			if err := json.Unmarshal([]byte(planRaw.String), &payload); err == nil {
				result.Recommendations = payload.Recommendations
				result.PlanSummary = payload.Summary
				populated = true
			}
		}
		if execSummary.Valid {
			result.ExecutiveSummary = execSummary.String
		}
		if populated {
			a.Result = result
		}
	}

	return a, nil
}

func marshalJSONB(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}

var _ Repo = (*PGRepo)(nil)
