package audits

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores audits in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Audit
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Audit)}
}

// Create stores the audit.
func (r *MemoryRepo) Create(ctx context.Context, audit Audit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[audit.ID] = audit
	return nil
}

// GetByID returns an audit by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, auditID string) (Audit, error) {
	if err := ctx.Err(); err != nil {
		return Audit{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	audit, ok := r.byID[auditID]
	if !ok {
		return Audit{}, ErrNotFound
	}
	return audit, nil
}

// List returns audits newest first, with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Audit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Audit, 0, len(r.byID))
	for _, audit := range r.byID {
		all = append(all, audit)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Audit{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// UpdateStatus updates status, result, and error fields with timestamps.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, auditID, status string, result *Result, errorMessage *string, completedAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	audit, ok := r.byID[auditID]
	if !ok {
		return ErrNotFound
	}
	audit.Status = status
	if result != nil {
		audit.Result = result
	}
	if errorMessage != nil {
		audit.ErrorMessage = errorMessage
	}
	if completedAt != nil {
		audit.CompletedAt = completedAt
	} else if (status == StatusCompleted || status == StatusFailed) && audit.CompletedAt == nil {
		now := time.Now().UTC()
		audit.CompletedAt = &now
	}
	audit.UpdatedAt = time.Now().UTC()
	r.byID[auditID] = audit
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
