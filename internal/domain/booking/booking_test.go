//go:build unit

package booking_test

import (
	"testing"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, "4000.00", actual.TotalPrice().String())
		assert.Equal(t, b.OwnerID, actual.YachtOwnerID())
		assert.Equal(t, 14, actual.Stay().Days())

		evs := actual.PendingEvents()
		require.Len(t, evs, 1)
		assert.Equal(t, booking.EventCreated, evs[0].EventName())
		assert.Equal(t, actual.ID().String(), evs[0].AggregateID())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "exactly seven days is allowed",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(builder.Date(2024, 7, 1), builder.Date(2024, 7, 8)) },
			},
			{
				name:   "six days is too short",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(builder.Date(2024, 7, 1), builder.Date(2024, 7, 7)) },
				errIs:  booking.ErrStayTooShort,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(builder.Date(2024, 7, 8), builder.Date(2024, 7, 1)) },
				errIs:  booking.ErrStayTooShort,
			},
			{
				name:   "starting today is allowed",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(builder.Date(2024, 6, 1), builder.Date(2024, 6, 8)) },
			},
			{
				name:   "starting yesterday",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(builder.Date(2024, 5, 31), builder.Date(2024, 6, 8)) },
				errIs:  booking.ErrStartInPast,
			},
			{
				name:   "yacht not available",
				mutate: func(b *builder.BookingBuilder) { b.AsUnavailableYacht() },
				errIs:  booking.ErrYachtUnavailable,
			},
			{
				name: "notes too long",
				mutate: func(b *builder.BookingBuilder) {
					long := make([]rune, booking.MaxNotesLength+1)
					for i := range long {
						long[i] = 'ž'
					}
					b.Notes = string(long)
				},
				errIs: booking.ErrNotesTooLong,
			},
			{
				name: "overlapping pending booking",
				mutate: func(b *builder.BookingBuilder) {
					b.WithExisting(slot(builder.Date(2024, 7, 10), builder.Date(2024, 7, 20), booking.StatusPending))
				},
				errIs: booking.ErrDatesConflict,
			},
			{
				name: "touching confirmed booking conflicts",
				mutate: func(b *builder.BookingBuilder) {
					b.WithExisting(slot(builder.Date(2024, 7, 15), builder.Date(2024, 7, 22), booking.StatusConfirmed))
				},
				errIs: booking.ErrDatesConflict,
			},
			{
				name: "cancelled booking never blocks",
				mutate: func(b *builder.BookingBuilder) {
					b.WithExisting(slot(builder.Date(2024, 7, 1), builder.Date(2024, 7, 15), booking.StatusCancelled))
				},
			},
			{
				name: "completed booking never blocks",
				mutate: func(b *builder.BookingBuilder) {
					b.WithExisting(slot(builder.Date(2024, 7, 1), builder.Date(2024, 7, 15), booking.StatusCompleted))
				},
			},
		})
	})

	t.Run("first failure wins", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			AsUnavailableYacht().
			WithDates(builder.Date(2024, 5, 1), builder.Date(2024, 5, 3)).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrYachtUnavailable)

		_, err = builder.NewBookingBuilder().
			WithDates(builder.Date(2024, 5, 1), builder.Date(2024, 5, 3)).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrStartInPast)
	})

	t.Run("error classes", func(t *testing.T) {
		assert.True(t, errs.Is(booking.ErrDatesConflict, errs.ErrValidation))
		assert.True(t, errs.Is(booking.ErrStayTooShort, errs.ErrValidation))
		assert.True(t, errs.Is(booking.ErrYachtUnavailable, errs.ErrPrecondition))
		assert.Equal(t, "start_date", errs.Fields(booking.ErrDatesConflict)[0].Field)
	})

	t.Run("today follows the server zone", func(t *testing.T) {
		// 22:00 UTC on June 1 is June 2 at UTC+3, so a June 1 start is past.
		_, err := builder.NewBookingBuilder().
			WithNow(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)).
			WithDates(builder.Date(2024, 6, 1), builder.Date(2024, 6, 8)).
			With(func(b *builder.BookingBuilder) { b.Location = time.FixedZone("UTC+3", 3*60*60) }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrStartInPast)
	})

	t.Run("no pricing means zero total", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPeriods().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "0.00", actual.TotalPrice().String())
	})
}

func TestConflicts(t *testing.T) {
	stay := builder.MustRange(builder.Date(2024, 7, 1), builder.Date(2024, 7, 15))
	blocking := slot(builder.Date(2024, 7, 14), builder.Date(2024, 7, 21), booking.StatusConfirmed)
	free := slot(builder.Date(2024, 7, 16), builder.Date(2024, 7, 23), booking.StatusPending)
	cancelled := slot(builder.Date(2024, 7, 1), builder.Date(2024, 7, 15), booking.StatusCancelled)

	got := booking.Conflicts(stay, []booking.Slot{blocking, free, cancelled})
	require.Len(t, got, 1)
	assert.Equal(t, blocking.BookingID, got[0].BookingID)
	assert.False(t, booking.IsAvailable(stay, []booking.Slot{blocking}))
	assert.True(t, booking.IsAvailable(stay, []booking.Slot{free, cancelled}))
}

func slot(start, end time.Time, status booking.Status) booking.Slot {
	return builder.NewBookingBuilder().WithDates(start, end).WithStatus(status).BuildSlot()
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

var _ events.Addressed = booking.Event{}
