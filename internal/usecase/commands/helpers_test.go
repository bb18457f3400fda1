//go:build unit

package commands_test

import (
	"context"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/usecase/shared"
	sharedmock "yacht-charter/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var resolver = policy.NewStaticResolver(policy.DefaultRoleCapabilities())

func actorOf(id uuid.UUID, role user.Role) policy.Actor {
	return policy.NewActor(id, role, resolver)
}

// expectTx runs every Within callback against tx, with reads serving both
// the transaction and the unit of work.
func expectTx(uow *sharedmock.MockUnitOfWork, tx *sharedmock.MockTx, reads *sharedmock.MockCommandReads) {
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	uow.EXPECT().CommandReads().Return(reads).AnyTimes()
	tx.EXPECT().Reads().Return(reads).AnyTimes()
}
