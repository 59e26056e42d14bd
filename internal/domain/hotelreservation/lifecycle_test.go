//go:build unit

package hotelreservation_test

import (
	"testing"
	"time"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/tests/common/builder"
	"hotel-block-service/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(h int32) *int32 { return &h }

func TestComputeExpiryOnCreate(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		venue hotelreservation.EventVenueSpec
		event hotelreservation.EventSpec
		want  time.Time
	}{
		{
			name: "no overrides uses seven days",
			want: now.Add(7 * 24 * time.Hour),
		},
		{
			name:  "event override",
			event: hotelreservation.EventSpec{BlockDurationHours: hours(72)},
			want:  now.Add(72 * time.Hour),
		},
		{
			name:  "venue wins over event",
			venue: hotelreservation.EventVenueSpec{BlockDurationHours: hours(48)},
			event: hotelreservation.EventSpec{BlockDurationHours: hours(72)},
			want:  now.Add(48 * time.Hour),
		},
		{
			name:  "zero venue override falls through",
			venue: hotelreservation.EventVenueSpec{BlockDurationHours: hours(0)},
			event: hotelreservation.EventSpec{BlockDurationHours: hours(72)},
			want:  now.Add(72 * time.Hour),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hotelreservation.ComputeExpiryOnCreate(now, tt.venue, tt.event))
		})
	}
}

func TestIsBlockExpired(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	b := builder.NewHotelReservationBuilder().With(func(b *builder.HotelReservationBuilder) {
		b.Now = created
		b.VenueBlockHours = hours(48)
	})
	r, err := b.BuildDomain()
	require.NoError(t, err)

	ceiling := created.Add(72 * time.Hour)
	q := quote.Quote{BlockExpireAt: &ceiling}

	assert.False(t, hotelreservation.IsBlockExpired(created.Add(47*time.Hour), r, q))
	assert.True(t, hotelreservation.IsBlockExpired(created.Add(49*time.Hour), r, q))

	t.Run("quote ceiling earlier than own expiry", func(t *testing.T) {
		early := created.Add(24 * time.Hour)
		assert.True(t, hotelreservation.IsBlockExpired(created.Add(25*time.Hour), r, quote.Quote{BlockExpireAt: &early}))
	})

	t.Run("seven day hold under a two day ceiling expires on day three", func(t *testing.T) {
		week, err := builder.NewHotelReservationBuilder().
			With(func(b *builder.HotelReservationBuilder) { b.Now = created }).
			BuildDomain()
		require.NoError(t, err)
		twoDays := created.Add(48 * time.Hour)
		q := quote.Quote{BlockExpireAt: &twoDays}
		assert.False(t, hotelreservation.IsBlockExpired(created.Add(24*time.Hour), week, q))
		assert.True(t, hotelreservation.IsBlockExpired(created.Add(72*time.Hour), week, q))
	})

	t.Run("nil quote ceiling imposes none", func(t *testing.T) {
		assert.False(t, hotelreservation.IsBlockExpired(created.Add(47*time.Hour), r, quote.Quote{}))
	})

	t.Run("missing own stamp counts as expired", func(t *testing.T) {
		bare := builder.NewHotelReservationBuilder().
			With(func(b *builder.HotelReservationBuilder) { b.BlockExpiresAt = nil }).
			BuildReconstructed()
		assert.True(t, hotelreservation.IsBlockExpired(created, bare, quote.Quote{}))
	})
}

func TestHoldExpiresAt(t *testing.T) {
	own := time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)
	ceiling := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	r := builder.NewHotelReservationBuilder().
		With(func(b *builder.HotelReservationBuilder) { b.BlockExpiresAt = &own }).
		BuildReconstructed()

	got := hotelreservation.HoldExpiresAt(r, quote.Quote{BlockExpireAt: &ceiling})
	require.NotNil(t, got)
	assert.Equal(t, ceiling, *got)

	got = hotelreservation.HoldExpiresAt(r, quote.Quote{})
	require.NotNil(t, got)
	assert.Equal(t, own, *got)

	orderID := uuid.New()
	withOrder := builder.NewHotelReservationBuilder().
		With(func(b *builder.HotelReservationBuilder) {
			b.BlockExpiresAt = &own
			b.OrderID = &orderID
		}).
		BuildReconstructed()
	assert.Nil(t, hotelreservation.HoldExpiresAt(withOrder, quote.Quote{BlockExpireAt: &ceiling}))
}

func TestIsCancellable(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orderID := uuid.New()
	withOrder := builder.NewHotelReservationBuilder().
		With(func(b *builder.HotelReservationBuilder) { b.OrderID = &orderID }).
		BuildReconstructed()
	open := now.Add(time.Minute)
	closed := now.Add(-time.Minute)

	assert.True(t, hotelreservation.IsCancellable(now, builder.NewHotelReservationBuilder().BuildReconstructed(), nil))
	assert.True(t, hotelreservation.IsCancellable(now, withOrder, order.ReconstructOrder(orderID, &now, &open)))
	assert.False(t, hotelreservation.IsCancellable(now, withOrder, order.ReconstructOrder(orderID, &now, &closed)))
	assert.False(t, hotelreservation.IsCancellable(now, withOrder, order.ReconstructOrder(orderID, &now, nil)))
	assert.False(t, hotelreservation.IsCancellable(now, withOrder, nil))
}

func TestIndividualCancellationCutoff(t *testing.T) {
	nights := []quote.Night{
		{NightAt: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
		{NightAt: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}
	q := quote.Quote{IndividualCancelNoticeDays: 3}

	got, err := hotelreservation.IndividualCancellationCutoff(q, nights, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 7, 16, 0, 0, 0, time.UTC), got)

	t.Run("configured zone", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*3600)
		got, err := hotelreservation.IndividualCancellationCutoff(q, nights, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 7, 16, 0, 0, 0, loc), got)
		assert.Equal(t, 21, got.UTC().Hour())
	})

	t.Run("no nights", func(t *testing.T) {
		_, err := hotelreservation.IndividualCancellationCutoff(q, nil, time.UTC)
		testutil.AssertErrorIs(t, err, hotelreservation.ErrNoNightlyRates)
	})
}
