package resumes

import (
	"context"

	"github.com/Juste120/cvPro/resume/model"
)

// Repo defines persistence operations for resume records.
type Repo interface {
	Create(ctx context.Context, record model.ResumeRecord) error
	GetByID(ctx context.Context, userID, resumeID string) (model.ResumeRecord, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.ResumeRecord, error)
}
