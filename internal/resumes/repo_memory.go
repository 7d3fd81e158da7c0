package resumes

import (
	"context"
	"sort"
	"sync"

	"github.com/Juste120/cvPro/resume/model"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]model.ResumeRecord
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]model.ResumeRecord),
		byUser: make(map[string][]string),
	}
}

// Create stores the record. An existing record with the same ID is replaced.
func (r *MemoryRepo) Create(ctx context.Context, record model.ResumeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[record.ID]; !exists {
		r.byUser[record.UserID] = append(r.byUser[record.UserID], record.ID)
	}
	r.byID[record.ID] = record
	return nil
}

// GetByID returns a record by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (model.ResumeRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.ResumeRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.byID[resumeID]
	if !ok {
		return model.ResumeRecord{}, ErrNotFound
	}
	if record.UserID != userID {
		return model.ResumeRecord{}, ErrForbidden
	}
	return record, nil
}

// ListByUser returns a user's records, most recently updated first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.ResumeRecord, error) {
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
	ids := r.byUser[userID]
	records := make([]model.ResumeRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, r.byID[id])
	}
	r.mu.RUnlock()

	if offset >= len(records) {
		return []model.ResumeRecord{}, nil
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp().After(records[j].Timestamp())
	})

	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
