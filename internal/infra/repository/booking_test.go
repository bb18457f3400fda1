//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"yacht-charter/internal/domain/booking"
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

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: dates and price are stored as written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		b := builder.NewBookingBuilder().BuildReconstructed()
		mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateBookingParams) error {
				assert.Equal(t, b.ID(), arg.ID)
				assert.Equal(t, b.YachtID(), arg.YachtID)
				assert.Equal(t, "pending", arg.Status)
				return nil
			})

		require.NoError(t, repo.Create(ctx, b))
	})

	t.Run("error: yacht deleted underneath", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(fk)

		err := repo.Create(ctx, builder.NewBookingBuilder().BuildReconstructed())
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: guarded update applied", rows: 1},
		{name: "error: status moved on concurrently", rows: 0, expectKind: infra.KindConflict},
		{name: "error: database failure", returnErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

			b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildReconstructed()
			mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "pending", arg.FromStatus)
					assert.Equal(t, "confirmed", arg.ToStatus)
					return tc.rows, tc.returnErr
				})

			err := repo.UpdateStatus(ctx, b, booking.StatusPending)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})
	b := builder.NewBookingBuilder().BuildReconstructed()

	mockQueries.EXPECT().DeleteBooking(ctx, gomock.Any(), b.ID()).Return(int64(0), nil)
	assert.True(t, infra.IsKind(repo.Delete(ctx, b.ID()), infra.KindNotFound))
}
