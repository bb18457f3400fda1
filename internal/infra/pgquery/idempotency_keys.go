package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

// TryInsertIdempotencyKey reports whether this call created the key.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (bool, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, response_body_hash, status, result_booking_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

type GetIdempotencyKeyParams struct {
	Key    uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	var k IdempotencyKey
	err := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID).Scan(
		&k.Key, &k.UserID, &k.Endpoint, &k.RequestHash, &k.ResponseBodyHash,
		&k.Status, &k.ResultBookingID, &k.ExpiresAt, &k.CreatedAt, &k.UpdatedAt,
	)
	return k, err
}

const updateIdempotencyKeyCompleted = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_booking_id = $4, updated_at = now()
WHERE key = $1 AND user_id = $2`

type UpdateIdempotencyKeyCompletedParams struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	ResponseBodyHash pgtype.Text
	ResultBookingID  pgtype.UUID
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) error {
	_, err := db.Exec(ctx, updateIdempotencyKeyCompleted, arg.Key, arg.UserID, arg.ResponseBodyHash, arg.ResultBookingID)
	return err
}

// An expired key is handed to the new request as if it had never existed.
const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET endpoint = $3, request_hash = $4, status = 'processing', response_body_hash = NULL,
    result_booking_id = NULL, expires_at = $5, updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at < now()`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteIdempotencyKey = `DELETE FROM idempotency_keys WHERE key = $1 AND user_id = $2 AND status = 'processing'`

// DeleteProcessingIdempotencyKey releases a key whose request failed, so the
// client may retry with the same key.
func (q *Queries) DeleteProcessingIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, deleteIdempotencyKey, arg.Key, arg.UserID)
	return err
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < now()`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
