package commands

import (
	"context"
	"time"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

type PeriodInput struct {
	StartDate    time.Time
	EndDate      time.Time
	PricePerWeek string
}

type PricingCommands interface {
	CreatePeriod(ctx context.Context, actor policy.Actor, yachtID uuid.UUID, in PeriodInput) (*queries.PricingPeriodView, error)
	UpdatePeriod(ctx context.Context, actor policy.Actor, periodID uuid.UUID, in PeriodInput) (*queries.PricingPeriodView, error)
	DeletePeriod(ctx context.Context, actor policy.Actor, periodID uuid.UUID) error
}

type pricingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPricingUseCase(uow shared.UnitOfWork, clk clock.Clock) PricingCommands {
	return &pricingUseCaseImpl{uow: uow, clock: clk}
}

// Period writes lock the yacht row, the same lock booking creation takes
// before it reads prices.
func (uc *pricingUseCaseImpl) authorize(ctx context.Context, tx shared.Tx, actor policy.Actor, yachtID uuid.UUID) error {
	y, err := tx.Reads().YachtForUpdate(ctx, yachtID)
	if err != nil {
		return err
	}
	if !policy.CanManagePricing(actor, policy.YachtSubject{OwnerID: y.OwnerID()}) {
		return policy.Denied("manage pricing")
	}
	return nil
}

func (uc *pricingUseCaseImpl) CreatePeriod(ctx context.Context, actor policy.Actor, yachtID uuid.UUID, in PeriodInput) (*queries.PricingPeriodView, error) {
	price, err := pricing.ParseMoney(in.PricePerWeek)
	if err != nil {
		return nil, err
	}

	var created *pricing.Period
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.authorize(ctx, tx, actor, yachtID); err != nil {
			return err
		}
		p, err := pricing.NewPeriod(yachtID, in.StartDate, in.EndDate, price, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Pricing().Create(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewPricingPeriodView(created), nil
}

func (uc *pricingUseCaseImpl) UpdatePeriod(ctx context.Context, actor policy.Actor, periodID uuid.UUID, in PeriodInput) (*queries.PricingPeriodView, error) {
	price, err := pricing.ParseMoney(in.PricePerWeek)
	if err != nil {
		return nil, err
	}

	var updated *pricing.Period
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PeriodByID(ctx, periodID)
		if err != nil {
			return err
		}
		if err := uc.authorize(ctx, tx, actor, p.YachtID()); err != nil {
			return err
		}
		if err := p.Change(in.StartDate, in.EndDate, price, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Pricing().Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewPricingPeriodView(updated), nil
}

func (uc *pricingUseCaseImpl) DeletePeriod(ctx context.Context, actor policy.Actor, periodID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PeriodByID(ctx, periodID)
		if err != nil {
			return err
		}
		if err := uc.authorize(ctx, tx, actor, p.YachtID()); err != nil {
			return err
		}
		return tx.Pricing().Delete(ctx, periodID)
	})
}
