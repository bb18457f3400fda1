package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/readstore"
	"yacht-charter/internal/infra/repository"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgquery.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus row locks taken by the callers (yacht row on booking
// creation, booking row on transitions).
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	yachtRepo        shared.YachtRepository
	bookingRepo      shared.BookingRepository
	pricingRepo      shared.PricingRepository
	reviewRepo       shared.ReviewRepository
	ratingStatsRepo  shared.RatingStatsRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	conversationRepo shared.ConversationRepository
	messageRepo      shared.MessageRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() pgquery.DBTX {
	return t.dbtx
}

func (t *pgTx) Yachts() shared.YachtRepository {
	if t.yachtRepo == nil {
		t.yachtRepo = repository.NewYachtRepository(t.uow.q, t.dbtx)
	}
	return t.yachtRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Pricing() shared.PricingRepository {
	if t.pricingRepo == nil {
		t.pricingRepo = repository.NewPricingRepository(t.uow.q, t.dbtx)
	}
	return t.pricingRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = repository.NewRatingStatsRepository(t.uow.q, t.dbtx)
	}
	return t.ratingStatsRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Conversations() shared.ConversationRepository {
	if t.conversationRepo == nil {
		t.conversationRepo = repository.NewConversationRepository(t.uow.q, t.dbtx)
	}
	return t.conversationRepo
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository(t.uow.q, t.dbtx)
	}
	return t.messageRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgquery.DBTX

	// Lazy-initialized readstores
	yachtStore       *readstore.YachtReadStore
	bookingStore     *readstore.BookingReadStore
	pricingStore     *readstore.PricingReadStore
	reviewStore      *readstore.ReviewReadStore
	userStore        *readstore.UserReadStore
	idempotencyStore *readstore.IdempotencyReadStore
	messageStore     *readstore.MessageReadStore
}

func (r *commandReads) yachts() *readstore.YachtReadStore {
	if r.yachtStore == nil {
		r.yachtStore = readstore.NewYachtReadStore(r.uow.q, r.dbtx)
	}
	return r.yachtStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) pricing() *readstore.PricingReadStore {
	if r.pricingStore == nil {
		r.pricingStore = readstore.NewPricingReadStore(r.uow.q, r.dbtx)
	}
	return r.pricingStore
}

func (r *commandReads) reviews() *readstore.ReviewReadStore {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.uow.q, r.dbtx)
	}
	return r.reviewStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) messages() *readstore.MessageReadStore {
	if r.messageStore == nil {
		r.messageStore = readstore.NewMessageReadStore(r.uow.q, r.dbtx)
	}
	return r.messageStore
}

func (r *commandReads) YachtByID(ctx context.Context, id uuid.UUID) (*yacht.Yacht, error) {
	y, err := r.yachts().Load(ctx, id, false)
	return y, notFoundAs(err, yacht.ErrYachtNotFound)
}

func (r *commandReads) YachtForUpdate(ctx context.Context, id uuid.UUID) (*yacht.Yacht, error) {
	y, err := r.yachts().Load(ctx, id, true)
	return y, notFoundAs(err, yacht.ErrYachtNotFound)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := r.bookings().Load(ctx, id, false)
	return b, notFoundAs(err, booking.ErrBookingNotFound)
}

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := r.bookings().Load(ctx, id, true)
	return b, notFoundAs(err, booking.ErrBookingNotFound)
}

func (r *commandReads) ActiveSlots(ctx context.Context, yachtID uuid.UUID, within calendar.Range) ([]booking.Slot, error) {
	return r.bookings().ActiveSlots(ctx, yachtID, within)
}

func (r *commandReads) CountActiveBookings(ctx context.Context, yachtID uuid.UUID) (int, error) {
	return r.bookings().CountActive(ctx, yachtID)
}

func (r *commandReads) PeriodsForYacht(ctx context.Context, yachtID uuid.UUID) ([]*pricing.Period, error) {
	return r.pricing().LoadPeriods(ctx, yachtID)
}

func (r *commandReads) PeriodByID(ctx context.Context, id uuid.UUID) (*pricing.Period, error) {
	p, err := r.pricing().LoadPeriod(ctx, id)
	return p, notFoundAs(err, pricing.ErrPeriodNotFound)
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	rv, err := r.reviews().Load(ctx, id, false)
	return rv, notFoundAs(err, review.ErrReviewNotFound)
}

func (r *commandReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return r.reviews().ExistsForBooking(ctx, bookingID)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := r.users().Load(ctx, id, false)
	return u, notFoundAs(err, user.ErrUserNotFound)
}

func (r *commandReads) UserForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := r.users().Load(ctx, id, true)
	return u, notFoundAs(err, user.ErrUserNotFound)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key, userID)
}

func (r *commandReads) ConversationByID(ctx context.Context, id uuid.UUID) (*message.Conversation, error) {
	c, err := r.messages().LoadConversation(ctx, id, false)
	return c, notFoundAs(err, message.ErrConversationNotFound)
}

func (r *commandReads) MessageByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	m, err := r.messages().LoadMessage(ctx, id, false)
	return m, notFoundAs(err, message.ErrMessageNotFound)
}

func notFoundAs(err, target error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}
