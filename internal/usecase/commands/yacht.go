package commands

import (
	"context"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

type YachtCommands interface {
	// Create lists a new yacht owned by the actor. A client listing their
	// first yacht becomes an owner.
	Create(ctx context.Context, actor policy.Actor, d yacht.Details) (*queries.YachtView, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, d yacht.Details) (*queries.YachtView, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type yachtUseCaseImpl struct {
	uow    shared.UnitOfWork
	yachts queries.YachtQueries
	cache  CalendarInvalidator
	clock  clock.Clock
}

func NewYachtUseCase(uow shared.UnitOfWork, yachts queries.YachtQueries, cache CalendarInvalidator, clk clock.Clock) YachtCommands {
	return &yachtUseCaseImpl{uow: uow, yachts: yachts, cache: cache, clock: clk}
}

func (uc *yachtUseCaseImpl) Create(ctx context.Context, actor policy.Actor, d yacht.Details) (*queries.YachtView, error) {
	if !policy.CanCreateYacht(actor) {
		return nil, policy.Denied("create yacht")
	}

	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Reads().UserForUpdate(ctx, actor.ID())
		if err != nil {
			return err
		}
		y, err := yacht.New(owner.ID(), d, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Yachts().Create(ctx, y); err != nil {
			return err
		}
		if owner.PromoteToOwner() {
			if err := tx.Users().UpdateRole(ctx, owner); err != nil {
				return err
			}
		}
		id = y.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.yachts.GetByID(ctx, id)
}

func (uc *yachtUseCaseImpl) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, d yacht.Details) (*queries.YachtView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		y, err := tx.Reads().YachtForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !policy.CanUpdateYacht(actor, policy.YachtSubject{OwnerID: y.OwnerID()}) {
			return policy.Denied("update yacht")
		}
		if err := y.Update(d, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Yachts().Update(ctx, y)
	})
	if err != nil {
		return nil, err
	}
	return uc.yachts.GetByID(ctx, id)
}

func (uc *yachtUseCaseImpl) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The lock keeps new bookings out while active ones are counted.
		y, err := tx.Reads().YachtForUpdate(ctx, id)
		if err != nil {
			return err
		}
		active, err := tx.Reads().CountActiveBookings(ctx, id)
		if err != nil {
			return err
		}
		if !policy.CanDeleteYacht(actor, policy.YachtSubject{OwnerID: y.OwnerID(), ActiveBookings: active}) {
			// The owner is refused only because of the bookings.
			if active > 0 && policy.CanDeleteYacht(actor, policy.YachtSubject{OwnerID: y.OwnerID()}) {
				return yacht.ErrHasActiveBookings
			}
			return policy.Denied("delete yacht")
		}
		return tx.Yachts().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	invalidateCalendar(ctx, uc.cache, id)
	return nil
}
