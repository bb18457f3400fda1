//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository"
	repositorymock "yacht-charter/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository(t *testing.T) {
	ctx := context.Background()
	key, userID := uuid.New(), uuid.New()
	expires := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*repositorymock.MockIdempotencyWriteQueries, *repository.IdempotencyRepository) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		return q, repository.NewIdempotencyRepository(q, &mockDBTX{})
	}

	t.Run("TryInsert reports whether the row was new", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().TryInsertIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (bool, error) {
				assert.Equal(t, key, arg.Key)
				assert.Equal(t, "POST /api/bookings", arg.Endpoint)
				assert.True(t, arg.ExpiresAt.Time.Equal(expires))
				return false, nil
			})

		inserted, err := repo.TryInsert(ctx, key, userID, "POST /api/bookings", "hash", expires)
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("ClaimExpired succeeds only when one row is taken over", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().ClaimExpiredIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		q.EXPECT().ClaimExpiredIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		claimed, err := repo.ClaimExpired(ctx, key, userID, "POST /api/bookings", "hash", expires)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repo.ClaimExpired(ctx, key, userID, "POST /api/bookings", "hash", expires)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("Release targets the key and user", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().DeleteProcessingIdempotencyKey(ctx, gomock.Any(), pgquery.GetIdempotencyKeyParams{Key: key, UserID: userID}).Return(nil)
		assert.NoError(t, repo.Release(ctx, key, userID))
	})

	t.Run("DeleteExpired wraps failures", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().DeleteExpiredIdempotencyKeys(ctx, gomock.Any()).Return(int64(0), errors.New("lock timeout"))

		n, err := repo.DeleteExpired(ctx)
		assert.Zero(t, n)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
