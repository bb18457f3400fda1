package queries

import (
	"context"
	"log/slog"
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/clock"

	"github.com/google/uuid"
)

// DefaultCalendarDays is how far ahead a calendar reaches when no end is given.
const DefaultCalendarDays = 365

func NewPricingPeriodView(p *pricing.Period) *PricingPeriodView {
	return &PricingPeriodView{
		ID:           p.ID(),
		YachtID:      p.YachtID(),
		StartDate:    calendar.FormatDate(p.Start()),
		EndDate:      calendar.FormatDate(p.End()),
		PricePerWeek: p.PricePerWeek().String(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

type PricingReadStore interface {
	ListByYacht(ctx context.Context, yachtID uuid.UUID) ([]*PricingPeriodView, error)
	LoadPeriods(ctx context.Context, yachtID uuid.UUID) ([]*pricing.Period, error)
}

type CalendarReadStore interface {
	OccupiedRanges(ctx context.Context, yachtID uuid.UUID, window calendar.Range) ([]OccupiedRange, error)
}

// CalendarCache stores computed calendars per yacht and window. A miss
// returns a nil view and the yacht's current generation; passing that
// generation back to PutCalendar keeps a view computed before an
// invalidation from being served after it.
type CalendarCache interface {
	GetCalendar(ctx context.Context, yachtID uuid.UUID, window calendar.Range) (*CalendarView, int64, error)
	PutCalendar(ctx context.Context, view *CalendarView, window calendar.Range, generation int64) error
}

type PricingQueries interface {
	ListPeriods(ctx context.Context, yachtID uuid.UUID) ([]*PricingPeriodView, error)
	Quote(ctx context.Context, yachtID uuid.UUID, start, end time.Time) (*QuoteView, error)
	// Calendar lists pending and confirmed stays touching [from, to]. A zero
	// from means today; a zero to means DefaultCalendarDays after from.
	Calendar(ctx context.Context, yachtID uuid.UUID, from, to time.Time) (*CalendarView, error)
}

type pricingQueriesImpl struct {
	yachts   YachtReadStore
	periods  PricingReadStore
	slots    CalendarReadStore
	cache    CalendarCache
	resolver pricing.Resolver
	clock    clock.Clock
	loc      *time.Location
}

func NewPricingQueries(
	yachts YachtReadStore,
	periods PricingReadStore,
	slots CalendarReadStore,
	cache CalendarCache,
	clk clock.Clock,
	loc *time.Location,
) PricingQueries {
	return &pricingQueriesImpl{
		yachts:   yachts,
		periods:  periods,
		slots:    slots,
		cache:    cache,
		resolver: pricing.NewFirstMatchResolver(),
		clock:    clk,
		loc:      loc,
	}
}

func (q *pricingQueriesImpl) ensureYacht(ctx context.Context, yachtID uuid.UUID) error {
	if _, err := q.yachts.FindByID(ctx, yachtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return yacht.ErrYachtNotFound
		}
		return err
	}
	return nil
}

func (q *pricingQueriesImpl) ListPeriods(ctx context.Context, yachtID uuid.UUID) ([]*PricingPeriodView, error) {
	if err := q.ensureYacht(ctx, yachtID); err != nil {
		return nil, err
	}
	return q.periods.ListByYacht(ctx, yachtID)
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, yachtID uuid.UUID, start, end time.Time) (*QuoteView, error) {
	stay, err := calendar.NewRange(start, end)
	if err != nil {
		return nil, err
	}
	if err := q.ensureYacht(ctx, yachtID); err != nil {
		return nil, err
	}
	periods, err := q.periods.LoadPeriods(ctx, yachtID)
	if err != nil {
		return nil, err
	}

	quote := q.resolver.Quote(periods, stay)
	view := &QuoteView{
		YachtID:    yachtID,
		StartDate:  calendar.FormatDate(stay.Start()),
		EndDate:    calendar.FormatDate(stay.End()),
		Weeks:      stay.Weeks(),
		TotalPrice: quote.Total.String(),
		Segments:   make([]QuoteSegmentView, 0, len(quote.Segments)),
	}
	for _, s := range quote.Segments {
		view.Segments = append(view.Segments, QuoteSegmentView{
			StartDate:    calendar.FormatDate(s.Start),
			EndDate:      calendar.FormatDate(s.End),
			PeriodID:     s.PeriodID,
			PricePerWeek: s.Price.String(),
		})
	}
	return view, nil
}

func (q *pricingQueriesImpl) Calendar(ctx context.Context, yachtID uuid.UUID, from, to time.Time) (*CalendarView, error) {
	if from.IsZero() {
		from = calendar.Today(q.clock.Now(), q.loc)
	}
	if to.IsZero() {
		to = calendar.AddDays(from, DefaultCalendarDays)
	}
	window, err := calendar.NewRange(from, to)
	if err != nil {
		return nil, err
	}

	cacheable := q.cache != nil
	var generation int64
	if cacheable {
		cached, gen, cerr := q.cache.GetCalendar(ctx, yachtID, window)
		switch {
		case cerr != nil:
			slog.WarnContext(ctx, "calendar cache read failed", "yacht_id", yachtID, "error", cerr.Error())
			cacheable = false
		case cached != nil:
			return cached, nil
		default:
			generation = gen
		}
	}

	if err := q.ensureYacht(ctx, yachtID); err != nil {
		return nil, err
	}
	occupied, err := q.slots.OccupiedRanges(ctx, yachtID, window)
	if err != nil {
		return nil, err
	}
	if occupied == nil {
		occupied = []OccupiedRange{}
	}
	view := &CalendarView{
		YachtID:  yachtID,
		From:     calendar.FormatDate(window.Start()),
		To:       calendar.FormatDate(window.End()),
		Occupied: occupied,
	}

	if cacheable {
		if perr := q.cache.PutCalendar(ctx, view, window, generation); perr != nil {
			slog.WarnContext(ctx, "calendar cache write failed", "yacht_id", yachtID, "error", perr.Error())
		}
	}
	return view, nil
}
