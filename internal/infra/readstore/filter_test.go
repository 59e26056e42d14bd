//go:build unit

package readstore

import (
	"testing"
	"time"

	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPredicates_NoFilters(t *testing.T) {
	b, err := buildPredicates(nil)
	require.NoError(t, err)
	assert.Empty(t, b.where())
	assert.Empty(t, b.args)
}

func TestBuildPredicates_Placeholders(t *testing.T) {
	hotelID := uuid.New()
	teamID := uuid.New()

	b, err := buildPredicates([]queries.Filter{
		queries.ForHotel(hotelID),
		queries.ForTeam(teamID),
		queries.ForHotelReservationCode("HX-1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "WHERE hr.hotel_id = $1\n  AND hr.team_id = $2\n  AND hr.hotel_reservation_code = $3", b.where())
	assert.Equal(t, []any{hotelID, teamID, "HX-1"}, b.args)
}

func TestBuildPredicates_DerivedFilters(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	night := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	qtyID := uuid.New()

	cases := []struct {
		name    string
		filters []queries.Filter
		clauses []string
		args    []any
	}{
		{
			name:    "accepted quote",
			filters: []queries.Filter{queries.HotelQuoteAccepted()},
			clauses: []string{"EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = $1)"},
			args:    []any{quote.StatusAccepted},
		},
		{
			name:    "incomplete needs an accepted quote and no placed order",
			filters: []queries.Filter{queries.Incomplete()},
			clauses: []string{
				"EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = $1)",
				"(hr.order_id IS NULL OR o.placed_at IS NULL)",
			},
			args: []any{quote.StatusAccepted},
		},
		{
			name:    "awaiting confirmation after the window closed",
			filters: queries.WithoutHotelCodeAfterCancellationPeriod(now),
			clauses: []string{
				clauseComplete,
				"hr.hotel_reservation_code IS NULL",
				"o.quick_cancellation_expire_at < $1",
			},
			args: []any{pgconv.TimeToPgtype(now)},
		},
		{
			name:    "open window",
			filters: []queries.Filter{queries.InQuickCancellationPeriod(true, now)},
			clauses: []string{"o.quick_cancellation_expire_at > $1"},
			args:    []any{pgconv.TimeToPgtype(now)},
		},
		{
			name:    "night",
			filters: []queries.Filter{queries.ForNight(night)},
			clauses: []string{"EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = $1 AND qq.night_at = $2)"},
			args:    []any{quote.StatusAccepted, pgconv.DateToPgtype(night)},
		},
		{
			name:    "quote qty",
			filters: []queries.Filter{queries.ForHotelQuoteQty(qtyID)},
			clauses: []string{"EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = $1 AND qq.id = $2)"},
			args:    []any{quote.StatusAccepted, qtyID},
		},
		{
			name:    "night after another filter keeps ascending placeholders",
			filters: []queries.Filter{queries.ForHotel(qtyID), queries.ForNight(night)},
			clauses: []string{
				"hr.hotel_id = $1",
				"EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = $2 AND qq.night_at = $3)",
			},
			args: []any{qtyID, quote.StatusAccepted, pgconv.DateToPgtype(night)},
		},
		{
			name:    "year and month",
			filters: []queries.Filter{queries.ForYearMonth(2024, 6)},
			clauses: []string{"EXISTS (SELECT 1 FROM hotel_quote_qtys qq WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND EXTRACT(YEAR FROM qq.night_at)::int = $1 AND EXTRACT(MONTH FROM qq.night_at)::int = $2)"},
			args:    []any{int32(2024), int32(6)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := buildPredicates(tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.clauses, b.clauses)
			assert.Equal(t, tc.args, b.args)
		})
	}
}

func TestBuildPredicates_UnknownKind(t *testing.T) {
	_, err := buildPredicates([]queries.Filter{{}})
	require.Error(t, err)
	assert.True(t, errs.Is(err, ErrUnknownFilter))
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
