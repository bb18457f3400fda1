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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_UpdateRole(t *testing.T) {
	ctx := context.Background()

	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.True(t, u.PromoteToOwner())

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: promoted", rows: 1},
		{name: "error: user missing", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				UpdateUserRole(ctx, mockDB, pgquery.UpdateUserRoleParams{ID: u.ID(), Role: "owner"}).
				Return(tc.rows, tc.returnErr)

			err := repo.UpdateRole(ctx, u)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
