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

	"hotel-block-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Catalog is the upstream side a hotel reservation points at.
type Catalog struct {
	HotelID   uuid.UUID
	EventID   uuid.UUID
	VenueID   uuid.UUID
	QuoteID   uuid.UUID
	RateID    uuid.UUID
	NightsQty map[string]int
}

type CatalogOptions struct {
	EventBlockHours *int32
	VenueBlockHours *int32
	QuoteStatus     string
	NoticeDays      int
	Nights          []time.Time
}

func CreateEvent(t *testing.T, db DBLike, blockHours *int32) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO events (name, block_duration_hours) VALUES ($1, $2) RETURNING id",
		"Spring Cup", blockHours).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateEventVenue(t *testing.T, db DBLike, eventID uuid.UUID, blockHours *int32) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO event_venues (event_id, name, block_duration_hours) VALUES ($1, $2, $3) RETURNING id",
		eventID, "Main Hall", blockHours).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateCatalog inserts an event, venue, quote, rate and one qty row per night.
func CreateCatalog(t *testing.T, db DBLike, opts CatalogOptions) Catalog {
	t.Helper()
	ctx := context.Background()

	c := Catalog{HotelID: uuid.New(), NightsQty: map[string]int{}}
	c.EventID = CreateEvent(t, db, opts.EventBlockHours)
	c.VenueID = CreateEventVenue(t, db, c.EventID, opts.VenueBlockHours)

	status := opts.QuoteStatus
	if status == "" {
		status = "pending"
	}
	err := db.QueryRow(ctx,
		"INSERT INTO hotel_quotes (hotel_id, event_id, status, individual_cancel_notice_days) VALUES ($1, $2, $3, $4) RETURNING id",
		c.HotelID, c.EventID, status, opts.NoticeDays).Scan(&c.QuoteID)
	require.NoError(t, err)

	err = db.QueryRow(ctx,
		"INSERT INTO hotel_quote_rates (hotel_quote_id, name) VALUES ($1, $2) RETURNING id",
		c.QuoteID, "Standard double").Scan(&c.RateID)
	require.NoError(t, err)

	for _, night := range opts.Nights {
		_, err = db.Exec(ctx,
			"INSERT INTO hotel_quote_qtys (hotel_quote_id, hotel_quote_rate_id, night_at, qty) VALUES ($1, $2, $3, $4)",
			c.QuoteID, c.RateID, night, 10)
		require.NoError(t, err)
		c.NightsQty[night.Format(time.DateOnly)] = 10
	}
	return c
}

func QuoteUpdatedAt(t *testing.T, db DBLike, quoteID uuid.UUID) time.Time {
	t.Helper()
	var at time.Time
	err := db.QueryRow(context.Background(), "SELECT updated_at FROM hotel_quotes WHERE id = $1", quoteID).Scan(&at)
	require.NoError(t, err)
	return at
}

// CreateOrder inserts an order. A nil placedAt leaves it unplaced.
func CreateOrder(t *testing.T, db DBLike, placedAt *time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO orders (placed_at) VALUES ($1) RETURNING id", placedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateLineItem(t *testing.T, db DBLike, orderID, reservationID uuid.UUID, qty int) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO order_line_items (order_id, orderable_type, orderable_id, qty) VALUES ($1, $2, $3, $4) RETURNING id",
		orderID, order.OrderableHotelReservation, reservationID, qty).Scan(&id)
	require.NoError(t, err)
	return id
}

func LineItemQty(t *testing.T, db DBLike, id uuid.UUID) int {
	t.Helper()
	var qty int
	err := db.QueryRow(context.Background(), "SELECT qty FROM order_line_items WHERE id = $1", id).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func OrderQuickCancellationExpireAt(t *testing.T, db DBLike, id uuid.UUID) *time.Time {
	t.Helper()
	var at *time.Time
	err := db.QueryRow(context.Background(), "SELECT quick_cancellation_expire_at FROM orders WHERE id = $1", id).Scan(&at)
	require.NoError(t, err)
	return at
}

// ReservationCode returns nil when the row has no code or no longer exists.
func ReservationCode(t *testing.T, db DBLike, id uuid.UUID) *string {
	t.Helper()
	var code *string
	_ = db.QueryRow(context.Background(), "SELECT hotel_reservation_code FROM hotel_reservations WHERE id = $1", id).Scan(&code)
	return code
}

func CountHistory(t *testing.T, db DBLike, reservationID uuid.UUID, action string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM historical_hotel_reservations WHERE hotel_reservation_id = $1 AND action = $2",
		reservationID, action).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
