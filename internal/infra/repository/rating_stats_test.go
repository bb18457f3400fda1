//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/repository"
	repositorymock "yacht-charter/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRatingStatsRepository_RecalcYachtRatingStats(t *testing.T) {
	ctx := context.Background()
	yachtID := uuid.New()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: stats recalculated"},
		{name: "error: database failure", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRatingStatsWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries, mockDB)

			mockQueries.EXPECT().RecalcYachtRatingStats(ctx, mockDB, yachtID).Return(tc.returnErr)

			err := repo.RecalcYachtRatingStats(ctx, yachtID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
