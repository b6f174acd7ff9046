package repository

import (
	"context"
	"time"

	"go-gin-event-portal/internal/model"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository journals create/update outcomes so that events left
// without their image can be found and fixed later.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) (*model.Submission, error)
	FindBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error)
	ListPendingImages(ctx context.Context) ([]*model.Submission, error)
	ResolveImage(ctx context.Context, eventID string) (int64, error)
}

type SubmissionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &SubmissionRepositoryImpl{
		pool: pool,
	}
}

const submissionColumns = `id, submission_id, operation, event_id, outcome, image_name, error, image_resolved_at, created_at`

func scanSubmission(row pgx.Row) (*model.Submission, error) {
	var s model.Submission
	err := row.Scan(
		&s.ID,
		&s.SubmissionID,
		&s.Operation,
		&s.EventID,
		&s.Outcome,
		&s.ImageName,
		&s.Error,
		&s.ImageResolvedAt,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *model.Submission) (*model.Submission, error) {
	if !submission.Outcome.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	if submission.SubmissionID == uuid.Nil {
		submission.SubmissionID = uuid.New()
	}
	query := `
		INSERT INTO submissions (submission_id, operation, event_id, outcome, image_name, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + submissionColumns

	return scanSubmission(r.pool.QueryRow(ctx, query,
		submission.SubmissionID,
		submission.Operation,
		submission.EventID,
		submission.Outcome,
		submission.ImageName,
		submission.Error,
	))
}

func (r *SubmissionRepositoryImpl) FindBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE submission_id = $1`

	s, err := scanSubmission(r.pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepositoryImpl) ListPendingImages(ctx context.Context) ([]*model.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE outcome IN ($1, $2) AND image_resolved_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, model.OutcomeCreatedWithImageFailure, model.OutcomeUpdatedWithImageFailure)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*model.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ResolveImage closes every pending image failure of the event.
func (r *SubmissionRepositoryImpl) ResolveImage(ctx context.Context, eventID string) (int64, error) {
	query := `
		UPDATE submissions
		SET image_resolved_at = $1
		WHERE event_id = $2 AND outcome IN ($3, $4) AND image_resolved_at IS NULL
	`
	tag, err := r.pool.Exec(ctx, query, time.Now().UTC(), eventID,
		model.OutcomeCreatedWithImageFailure, model.OutcomeUpdatedWithImageFailure)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// NoopSubmissionRepository is used when the journal is disabled.
type NoopSubmissionRepository struct{}

func (NoopSubmissionRepository) Create(ctx context.Context, submission *model.Submission) (*model.Submission, error) {
	return submission, nil
}

func (NoopSubmissionRepository) FindBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*model.Submission, error) {
	return nil, apperrors.ErrSubmissionNotFound
}

func (NoopSubmissionRepository) ListPendingImages(ctx context.Context) ([]*model.Submission, error) {
	return []*model.Submission{}, nil
}

func (NoopSubmissionRepository) ResolveImage(ctx context.Context, eventID string) (int64, error) {
	return 0, nil
}
