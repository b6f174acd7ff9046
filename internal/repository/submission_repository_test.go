//go:build integration

package repository_test

import (
	"context"
	"testing"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/repository"
	apperrors "go-gin-event-portal/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubmissionRepository_Create(t *testing.T) {
	repo := repository.NewSubmissionRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		created, err := repo.Create(ctx, &model.Submission{
			Operation: model.OperationCreate,
			EventID:   "E1",
			Outcome:   model.OutcomeCreatedWithImageFailure,
			ImageName: strPtr("poster.png"),
			Error:     strPtr("storage unavailable"),
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.NotEqual(t, uuid.Nil, created.SubmissionID)
		assert.Equal(t, model.OperationCreate, created.Operation)
		assert.Equal(t, "E1", created.EventID)
		assert.Equal(t, "poster.png", *created.ImageName)
		assert.Nil(t, created.ImageResolvedAt)
		assert.NotZero(t, created.CreatedAt)
		assertRowCount(t, 1)
	})

	t.Run("Failed - invalid outcome", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.Create(ctx, &model.Submission{Operation: model.OperationCreate, Outcome: "unknown"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assertRowCount(t, 0)
	})

	t.Run("Failed - duplicate submission id", func(t *testing.T) {
		setupTestWithTruncate(t)
		id := uuid.New()

		_, err := repo.Create(ctx, &model.Submission{SubmissionID: id, Operation: model.OperationUpdate, EventID: "E1", Outcome: model.OutcomeUpdated})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Submission{SubmissionID: id, Operation: model.OperationUpdate, EventID: "E1", Outcome: model.OutcomeUpdated})

		assert.Error(t, err)
		assertRowCount(t, 1)
	})
}

func TestSubmissionRepository_FindBySubmissionID(t *testing.T) {
	repo := repository.NewSubmissionRepository(getTestDB())
	ctx := context.Background()
	setupTestWithTruncate(t)

	created, err := repo.Create(ctx, &model.Submission{Operation: model.OperationCreate, EventID: "E1", Outcome: model.OutcomeCreated})
	require.NoError(t, err)

	found, err := repo.FindBySubmissionID(ctx, created.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, model.OutcomeCreated, found.Outcome)

	_, err = repo.FindBySubmissionID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestSubmissionRepository_PendingImages(t *testing.T) {
	repo := repository.NewSubmissionRepository(getTestDB())
	ctx := context.Background()
	setupTestWithTruncate(t)

	for _, s := range []*model.Submission{
		{Operation: model.OperationCreate, EventID: "E1", Outcome: model.OutcomeCreatedWithImageFailure},
		{Operation: model.OperationUpdate, EventID: "E1", Outcome: model.OutcomeUpdatedWithImageFailure},
		{Operation: model.OperationUpdate, EventID: "E2", Outcome: model.OutcomeUpdatedWithImageFailure},
		{Operation: model.OperationCreate, EventID: "E3", Outcome: model.OutcomeCreated},
		{Operation: model.OperationCreate, Outcome: model.OutcomeFailed},
	} {
		_, err := repo.Create(ctx, s)
		require.NoError(t, err)
	}

	pending, err := repo.ListPendingImages(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	resolved, err := repo.ResolveImage(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resolved)

	pending, err = repo.ListPendingImages(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "E2", pending[0].EventID)

	resolved, err = repo.ResolveImage(ctx, "E1")
	require.NoError(t, err)
	assert.Zero(t, resolved)
}
