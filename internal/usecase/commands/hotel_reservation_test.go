//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *fakeUoW
	clk      *clock.MockClock
	metrics  *fakeMetrics
	notifier *fakeNotifier
	now      time.Time

	hotelID uuid.UUID
	eventID uuid.UUID
	venueID uuid.UUID
	rateID  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f := &fixture{
		uow:      newFakeUoW(),
		clk:      clock.NewMockClock(now),
		metrics:  newFakeMetrics(),
		notifier: &fakeNotifier{},
		now:      now,
		hotelID:  uuid.New(),
		eventID:  uuid.New(),
		venueID:  uuid.New(),
		rateID:   uuid.New(),
	}
	quoteID := uuid.New()
	f.uow.seed(func(s *memState) {
		s.events[f.eventID] = hotelreservation.EventSpec{ID: f.eventID, Kind: "tournament"}
		s.venues[f.venueID] = hotelreservation.EventVenueSpec{ID: f.venueID, EventID: f.eventID}
		s.rates[f.rateID] = quote.Linkage{
			Rate:  quote.Rate{ID: f.rateID, QuoteID: quoteID, Name: "Double Queen"},
			Quote: quote.Quote{ID: quoteID, HotelID: f.hotelID, EventID: f.eventID, Status: quote.StatusAccepted},
		}
	})
	return f
}

func (f *fixture) fields() hotelreservation.Fields {
	return hotelreservation.Fields{
		HotelID:          f.hotelID,
		EventID:          f.eventID,
		EventVenueID:     f.venueID,
		HotelQuoteRateID: f.rateID,
		PeopleCount:      2,
	}
}

func (f *fixture) reservationCommands() commands.HotelReservationCommands {
	return commands.NewHotelReservationUseCase(f.uow, f.clk, f.metrics)
}

func (f *fixture) seedOrder(placed bool) uuid.UUID {
	id := uuid.New()
	var placedAt *time.Time
	if placed {
		at := f.now.Add(-time.Hour)
		placedAt = &at
	}
	f.uow.seed(func(s *memState) {
		s.orders[id] = order.ReconstructOrder(id, placedAt, nil)
	})
	return id
}

func (f *fixture) seedReservation(orderID *uuid.UUID, code *string) uuid.UUID {
	id := uuid.New()
	expires := f.now.Add(hotelreservation.MaxBlockDuration)
	created := f.now.Add(-time.Duration(len(f.uow.snapshot().reservations)+1) * time.Minute)
	r := hotelreservation.ReconstructReservation(id, hotelreservation.VariantTeamBlock,
		f.hotelID, f.eventID, f.venueID, f.rateID, nil, nil, orderID, 2, &expires, code, created, created)
	f.uow.seed(func(s *memState) {
		s.reservations[id] = r
	})
	return id
}

func (f *fixture) seedLineItem(orderID, reservationID uuid.UUID, qty int) uuid.UUID {
	id := uuid.New()
	f.uow.seed(func(s *memState) {
		s.lineItems[reservationID] = order.ReconstructLineItem(id, orderID, reservationID, qty)
	})
	return id
}

func strPtr(s string) *string { return &s }

func TestHotelReservation_Create(t *testing.T) {
	t.Run("stamps the global ceiling and records a save entry", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservationCommands().Create(context.Background(), f.fields())
		require.NoError(t, err)

		require.NotNil(t, res.BlockExpiresAt())
		assert.Equal(t, f.now.Add(7*24*time.Hour), *res.BlockExpiresAt())
		assert.Equal(t, hotelreservation.VariantHotelReservation, res.Variant())

		state := f.uow.snapshot()
		require.Contains(t, state.reservations, res.ID())
		require.Len(t, state.history, 1)
		assert.Equal(t, history.ActionSave, state.history[0].Action)
		assert.Equal(t, res.ID(), state.history[0].Snapshot.ID)
		assert.Equal(t, []uuid.UUID{f.rateID}, state.touched)
		assert.Equal(t, 1, f.metrics.operations["create:ok"])
	})

	t.Run("venue override wins over event override", func(t *testing.T) {
		f := newFixture(t)
		venueHours, eventHours := int32(48), int32(72)
		f.uow.seed(func(s *memState) {
			s.events[f.eventID] = hotelreservation.EventSpec{ID: f.eventID, BlockDurationHours: &eventHours}
			s.venues[f.venueID] = hotelreservation.EventVenueSpec{ID: f.venueID, EventID: f.eventID, BlockDurationHours: &venueHours}
		})

		res, err := f.reservationCommands().Create(context.Background(), f.fields())
		require.NoError(t, err)
		assert.Equal(t, f.now.Add(48*time.Hour), *res.BlockExpiresAt())
	})

	t.Run("missing reference is a validation error and writes nothing", func(t *testing.T) {
		f := newFixture(t)
		fields := f.fields()
		fields.HotelQuoteRateID = uuid.Nil

		_, err := f.reservationCommands().Create(context.Background(), fields)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, 0, f.uow.commits)
	})

	t.Run("unknown references map to not found", func(t *testing.T) {
		cases := []struct {
			name     string
			mutate   func(f *fixture, fields *hotelreservation.Fields)
			sentinel error
		}{
			{"venue", func(_ *fixture, fields *hotelreservation.Fields) { fields.EventVenueID = uuid.New() }, commands.ErrEventVenueNotFound},
			{"event", func(f *fixture, fields *hotelreservation.Fields) {
				other := uuid.New()
				f.uow.seed(func(s *memState) {
					s.venues[f.venueID] = hotelreservation.EventVenueSpec{ID: f.venueID, EventID: other}
				})
				fields.EventID = other
			}, commands.ErrEventNotFound},
			{"rate", func(_ *fixture, fields *hotelreservation.Fields) { fields.HotelQuoteRateID = uuid.New() }, commands.ErrQuoteRateNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				fields := f.fields()
				tc.mutate(f, &fields)

				_, err := f.reservationCommands().Create(context.Background(), fields)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.sentinel))
				assert.True(t, errs.Is(err, errs.ErrNotFound))
				assert.Empty(t, f.uow.snapshot().reservations)
			})
		}
	})

	t.Run("venue of another event is rejected", func(t *testing.T) {
		f := newFixture(t)
		otherEvent := uuid.New()
		f.uow.seed(func(s *memState) {
			s.events[otherEvent] = hotelreservation.EventSpec{ID: otherEvent}
		})
		fields := f.fields()
		fields.EventID = otherEvent

		_, err := f.reservationCommands().Create(context.Background(), fields)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestHotelReservation_CreateBlock(t *testing.T) {
	t.Run("one row per room, one touch per rate", func(t *testing.T) {
		f := newFixture(t)
		fields := f.fields()
		fields.Variant = hotelreservation.VariantTeamBlock

		created, err := f.reservationCommands().CreateBlock(context.Background(), fields, 3)
		require.NoError(t, err)
		require.Len(t, created, 3)

		state := f.uow.snapshot()
		assert.Len(t, state.reservations, 3)
		assert.Len(t, state.history, 3)
		assert.Equal(t, []uuid.UUID{f.rateID}, state.touched)
		for _, r := range created {
			assert.Equal(t, hotelreservation.VariantTeamBlock, r.Variant())
		}
	})

	t.Run("audit failure rolls back every room", func(t *testing.T) {
		f := newFixture(t)
		f.uow.faults.appendErr = errors.New("history insert failed")

		_, err := f.reservationCommands().CreateBlock(context.Background(), f.fields(), 4)
		require.Error(t, err)

		state := f.uow.snapshot()
		assert.Empty(t, state.reservations)
		assert.Empty(t, state.history)
		assert.Empty(t, state.touched)
		assert.Equal(t, 1, f.metrics.operations["create:error"])
	})

	t.Run("zero rooms is a validation error", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reservationCommands().CreateBlock(context.Background(), f.fields(), 0)
		assert.True(t, errs.Is(err, commands.ErrInvalidRoomCount))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestHotelReservation_Update(t *testing.T) {
	t.Run("changes data and keeps the original expiry", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.reservationCommands().Create(context.Background(), f.fields())
		require.NoError(t, err)
		original := *res.BlockExpiresAt()

		f.clk.Add(3 * 24 * time.Hour)
		orderID := f.seedOrder(true)
		people := 5
		updated, err := f.reservationCommands().Update(context.Background(), res.ID(), hotelreservation.Changes{
			OrderID:     &orderID,
			PeopleCount: &people,
		})
		require.NoError(t, err)

		assert.Equal(t, original, *updated.BlockExpiresAt())
		assert.Equal(t, 5, updated.PeopleCount())
		require.NotNil(t, updated.OrderID())
		assert.Equal(t, orderID, *updated.OrderID())
		assert.Equal(t, f.clk.Now(), updated.UpdatedAt())

		state := f.uow.snapshot()
		require.Len(t, state.history, 2)
		assert.Equal(t, 5, state.history[1].Snapshot.PeopleCount)
		assert.Equal(t, []uuid.UUID{f.rateID, f.rateID}, state.touched)
	})

	t.Run("unknown order is rejected", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedReservation(nil, nil)
		missing := uuid.New()

		_, err := f.reservationCommands().Update(context.Background(), id, hotelreservation.Changes{OrderID: &missing})
		assert.True(t, errs.Is(err, commands.ErrOrderNotFound))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reservationCommands().Update(context.Background(), uuid.New(), hotelreservation.Changes{})
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})

	t.Run("negative people count", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedReservation(nil, nil)
		people := -1

		_, err := f.reservationCommands().Update(context.Background(), id, hotelreservation.Changes{PeopleCount: &people})
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Empty(t, f.uow.snapshot().history)
	})
}

func TestHotelReservation_Destroy(t *testing.T) {
	t.Run("coded reservation is kept", func(t *testing.T) {
		f := newFixture(t)
		orderID := f.seedOrder(true)
		id := f.seedReservation(&orderID, strPtr("HX-1"))

		err := f.reservationCommands().Destroy(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, hotelreservation.ErrHasReservations))
		assert.True(t, errs.Is(err, errs.ErrHasReservations))

		state := f.uow.snapshot()
		assert.Contains(t, state.reservations, id)
		assert.Empty(t, state.history)
		assert.Empty(t, state.touched)
	})

	t.Run("blank code does not protect", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedReservation(nil, strPtr("   "))

		require.NoError(t, f.reservationCommands().Destroy(context.Background(), id))
		assert.NotContains(t, f.uow.snapshot().reservations, id)
	})

	t.Run("destroy records the pre-delete snapshot", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedReservation(nil, nil)

		require.NoError(t, f.reservationCommands().Destroy(context.Background(), id))

		state := f.uow.snapshot()
		assert.NotContains(t, state.reservations, id)
		require.Len(t, state.history, 1)
		assert.Equal(t, history.ActionDestroy, state.history[0].Action)
		assert.Equal(t, id, state.history[0].Snapshot.ID)
		assert.Equal(t, 2, state.history[0].Snapshot.PeopleCount)
		assert.Equal(t, []uuid.UUID{f.rateID}, state.touched)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		err := f.reservationCommands().Destroy(context.Background(), uuid.New())
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})
}

func TestHotelReservation_TouchFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.uow.faults.touchErr = errors.New("quotes locked")

	res, err := f.reservationCommands().Create(context.Background(), f.fields())
	require.NoError(t, err)

	state := f.uow.snapshot()
	assert.Contains(t, state.reservations, res.ID())
	assert.Empty(t, state.touched)
	assert.Equal(t, 1, f.metrics.touchFails)
}
