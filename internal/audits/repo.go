package audits

import (
	"context"
	"time"
)

// Repo defines persistence operations for audits.
type Repo interface {
	Create(ctx context.Context, audit Audit) error
	GetByID(ctx context.Context, auditID string) (Audit, error)
	List(ctx context.Context, limit, offset int) ([]Audit, error)
	UpdateStatus(ctx context.Context, auditID, status string, result *Result, errorMessage *string, completedAt *time.Time) error
}
