package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Juste120/cvPro/resume/model"
)

// Service handles resume record storage for the API.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service backed by repo.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Create validates and stores a new record owned by userID.
func (s *Service) Create(ctx context.Context, userID string, record model.ResumeRecord) (model.ResumeRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return model.ResumeRecord{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := Validate(record); err != nil {
		return model.ResumeRecord{}, err
	}

	now := s.now()
	record.ID = uuid.NewString()
	record.UserID = userID
	record.Title = strings.TrimSpace(record.Title)
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Styling == nil {
		styling := model.DefaultStyling()
		record.Styling = &styling
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return model.ResumeRecord{}, fmt.Errorf("store resume: %w", err)
	}
	return record, nil
}

// Get returns the record if userID owns it.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (model.ResumeRecord, error) {
	resumeID = strings.TrimSpace(resumeID)
	if resumeID == "" {
		return model.ResumeRecord{}, fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns a page of the user's records.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]model.ResumeRecord, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
