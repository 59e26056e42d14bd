//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/usecase/queries"
	"hotel-block-service/tests/common/builder"
	queriesmock "hotel-block-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelReservationQueriesSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	store  *queriesmock.MockHotelReservationReadStore
	quotes *queriesmock.MockQuoteRateReadStore
	now    time.Time
	tokyo  *time.Location
	q      queries.HotelReservationQueries
}

func (s *HotelReservationQueriesSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockHotelReservationReadStore(s.ctrl)
	s.quotes = queriesmock.NewMockQuoteRateReadStore(s.ctrl)
	s.now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	s.tokyo = time.FixedZone("JST", 9*60*60)
	s.q = queries.NewHotelReservationQueries(s.store, s.quotes, clock.NewMockClock(s.now), s.tokyo)
}

func (s *HotelReservationQueriesSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHotelReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(HotelReservationQueriesSuite))
}

func (s *HotelReservationQueriesSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("derives lifecycle fields and the cutoff", func() {
		b := builder.NewHotelReservationBuilder()
		ceiling := b.Now.Add(24 * time.Hour)
		row := &queries.HotelReservationRow{
			Reservation: b.BuildReconstructed(),
			Quote:       quote.Quote{BlockExpireAt: &ceiling, IndividualCancelNoticeDays: 3},
		}
		nights := []quote.Night{
			{NightAt: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
			{NightAt: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		}
		s.store.EXPECT().FindByID(ctx, b.ID).Return(row, nil)
		s.quotes.EXPECT().ListNights(ctx, b.HotelQuoteRateID).Return(nights, nil)

		view, err := s.q.GetByID(ctx, b.ID)
		s.Require().NoError(err)
		s.True(view.BlockExpired)
		s.True(view.Cancellable)
		s.Require().NotNil(view.HoldExpiresAt)
		s.Equal(ceiling, *view.HoldExpiresAt)
		s.Require().NotNil(view.IndividualCancellationCutoff)
		s.True(time.Date(2024, 6, 11, 16, 0, 0, 0, s.tokyo).Equal(*view.IndividualCancellationCutoff))
	})

	s.Run("no nights leaves the cutoff empty", func() {
		b := builder.NewHotelReservationBuilder()
		s.store.EXPECT().FindByID(ctx, b.ID).Return(&queries.HotelReservationRow{Reservation: b.BuildReconstructed()}, nil)
		s.quotes.EXPECT().ListNights(ctx, b.HotelQuoteRateID).Return(nil, nil)

		view, err := s.q.GetByID(ctx, b.ID)
		s.Require().NoError(err)
		s.Nil(view.IndividualCancellationCutoff)
	})

	s.Run("missing row maps to not found", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("hotel reservation not found", nil, infra.KindNotFound))

		view, err := s.q.GetByID(ctx, id)
		s.Nil(view)
		s.True(errs.Is(err, queries.ErrHotelReservationNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *HotelReservationQueriesSuite) TestList() {
	ctx := context.Background()

	s.Run("returns a cursor when more rows exist", func() {
		rows := make([]*queries.HotelReservationRow, 0, 3)
		for i := range 3 {
			b := builder.NewHotelReservationBuilder()
			b.Now = s.now.Add(time.Duration(i) * time.Minute)
			rows = append(rows, &queries.HotelReservationRow{Reservation: b.BuildReconstructed()})
		}
		filters := []queries.Filter{queries.Complete()}
		s.store.EXPECT().List(ctx, filters, (*queries.Position)(nil), int32(3)).Return(rows, nil)

		views, next, err := s.q.List(ctx, queries.ListParams{Filters: filters, Limit: 2})
		s.Require().NoError(err)
		s.Len(views, 2)
		s.Require().NotNil(next)

		pos, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].Reservation.ID(), pos.ID)
		s.True(rows[1].Reservation.CreatedAt().Equal(pos.CreatedAt))
	})

	s.Run("passes the decoded cursor through", func() {
		id := uuid.New()
		at := s.now.Truncate(time.Microsecond)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(at, id)}
		s.store.EXPECT().List(ctx, gomock.Nil(), gomock.Any(), int32(21)).
			DoAndReturn(func(_ context.Context, _ []queries.Filter, after *queries.Position, _ int32) ([]*queries.HotelReservationRow, error) {
				s.Equal(id, after.ID)
				s.True(at.Equal(after.CreatedAt))
				return nil, nil
			})

		views, next, err := s.q.List(ctx, queries.ListParams{Cursor: cursor})
		s.Require().NoError(err)
		s.Empty(views)
		s.Nil(next)
	})

	s.Run("malformed cursor never reaches the store", func() {
		_, _, err := s.q.List(ctx, queries.ListParams{Cursor: &queries.Cursor{After: "garbage"}})
		s.True(errs.Is(err, queries.ErrInvalidCursor))
	})

	s.Run("store errors pass through", func() {
		boom := errors.New("connection refused")
		s.store.EXPECT().List(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, _, err := s.q.List(ctx, queries.ListParams{})
		s.ErrorIs(err, boom)
	})
}

func TestNewHotelReservationView_OrderAttached(t *testing.T) {
	orderID := uuid.New()
	b := builder.NewHotelReservationBuilder()
	b.OrderID = &orderID

	view := queries.NewHotelReservationView(&queries.HotelReservationRow{Reservation: b.BuildReconstructed()}, b.Now)

	assert.Nil(t, view.HoldExpiresAt)
	assert.False(t, view.Cancellable)
	require.NotNil(t, view.OrderID)
	assert.Equal(t, orderID, *view.OrderID)
}
