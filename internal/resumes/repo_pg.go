package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Juste120/cvPro/resume/model"
)

// PGRepo implements Repo using Postgres. The full record is kept as JSONB in
// the document column; id, user_id and the timestamps are duplicated as
// columns for lookups and ordering.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts or replaces a resume record.
func (r *PGRepo) Create(ctx context.Context, record model.ResumeRecord) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	const query = `
INSERT INTO resumes (id, user_id, title, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Title,
		doc,
		record.CreatedAt,
		record.UpdatedAt,
	)
	return err
}

// GetByID returns a resume record by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (model.ResumeRecord, error) {
	const query = `
SELECT user_id, document
FROM resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var (
		owner string
		doc   []byte
	)
	if err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(&owner, &doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResumeRecord{}, ErrNotFound
		}
		return model.ResumeRecord{}, err
	}
	if owner != userID {
		return model.ResumeRecord{}, ErrForbidden
	}
	return decodeRecord(resumeID, owner, doc)
}

// ListByUser lists a user's records, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.ResumeRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, document
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ResumeRecord{}
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		record, err := decodeRecord(id, userID, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// decodeRecord trusts the row's id and owner over whatever the stored document says.
func decodeRecord(id, userID string, doc []byte) (model.ResumeRecord, error) {
	var record model.ResumeRecord
	if err := json.Unmarshal(doc, &record); err != nil {
		return model.ResumeRecord{}, fmt.Errorf("decode resume %s: %w", id, err)
	}
	record.ID = id
	record.UserID = userID
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
