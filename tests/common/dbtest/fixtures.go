//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"yacht-charter/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user or returns the existing id for the email.
func CreateTestUser(t *testing.T, db pgquery.DBTX, email, role string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	name := strings.Split(email, "@")[0]

	var userID uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		uuid.New(), name, email, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestYacht(t *testing.T, db pgquery.DBTX, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	yachtID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO yachts (id, owner_id, title, description, type, capacity, location, status)
		VALUES ($1, $2, $3, 'Test yacht', 'sailboat', 8, 'Split', 'available')`,
		yachtID, ownerID, title)
	require.NoError(t, err)

	return yachtID
}

// CreateTestPricingPeriod takes dates as YYYY-MM-DD and price as a decimal string.
func CreateTestPricingPeriod(t *testing.T, db pgquery.DBTX, yachtID uuid.UUID, start, end, pricePerWeek string) uuid.UUID {
	t.Helper()

	periodID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO pricing_periods (id, yacht_id, start_date, end_date, price_per_week)
		VALUES ($1, $2, $3::date, $4::date, $5::numeric)`,
		periodID, yachtID, start, end, pricePerWeek)
	require.NoError(t, err)

	return periodID
}

func CreateTestBooking(t *testing.T, db pgquery.DBTX, yachtID, userID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, yacht_id, user_id, start_date, end_date, total_price, status)
		VALUES ($1, $2, $3, $4::date, $5::date, 1000.00, $6)`,
		bookingID, yachtID, userID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReview(t *testing.T, db pgquery.DBTX, bookingID uuid.UUID, rating int, comment string) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reviews (id, booking_id, rating, comment) VALUES ($1, $2, $3, $4)`,
		reviewID, bookingID, rating, comment)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
