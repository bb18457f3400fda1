//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository"
	"yacht-charter/tests/common/builder"
	repositorymock "yacht-charter/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: review created"},
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{
			name:       "error: booking already reviewed",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			rev := builder.NewReviewBuilder().BuildReconstructed()
			mockQueries.EXPECT().CreateReview(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateReviewParams) error {
					assert.Equal(t, rev.ID(), arg.ID)
					assert.Equal(t, rev.BookingID(), arg.BookingID)
					assert.Equal(t, int16(rev.Rating().Value()), arg.Rating)
					return tc.returnErr
				})

			err := repo.Create(ctx, rev)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Update / Delete Review Tests
// =============================================================================

func TestReviewRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: review vanished", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", returnErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			rev := builder.NewReviewBuilder().BuildReconstructed()
			mockQueries.EXPECT().UpdateReview(ctx, mockDB, gomock.Any()).Return(tc.rows, tc.returnErr)

			err := repo.Update(ctx, rev)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReviewRepository(mockQueries, mockDB)
	rev := builder.NewReviewBuilder().BuildReconstructed()

	t.Run("success", func(t *testing.T) {
		mockQueries.EXPECT().DeleteReview(ctx, mockDB, rev.ID()).Return(int64(1), nil)
		assert.NoError(t, repo.Delete(ctx, rev.ID()))
	})

	t.Run("error: already gone", func(t *testing.T) {
		mockQueries.EXPECT().DeleteReview(ctx, mockDB, rev.ID()).Return(int64(0), nil)
		assert.True(t, infra.IsKind(repo.Delete(ctx, rev.ID()), infra.KindNotFound))
	})
}
