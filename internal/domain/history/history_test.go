//go:build unit

package history_test

import (
	"testing"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/tests/common/builder"
	"hotel-block-service/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	r, err := builder.NewHotelReservationBuilder().BuildDomain()
	require.NoError(t, err)
	recordedAt := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	entry := history.NewEntry(history.ActionSave, r, recordedAt)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, history.ActionSave, entry.Action)
	assert.Equal(t, recordedAt, entry.RecordedAt)
	assert.Equal(t, r.ID(), entry.Snapshot.ID)
	assert.Equal(t, *r.BlockExpiresAt(), *entry.Snapshot.BlockExpiresAt)

	t.Run("later mutation does not alter the snapshot", func(t *testing.T) {
		orderID := uuid.New()
		require.NoError(t, r.Apply(hotelreservation.Changes{OrderID: &orderID}, recordedAt))
		assert.Nil(t, entry.Snapshot.OrderID)
	})
}

func TestParseAction(t *testing.T) {
	a, err := history.ParseAction("destroy")
	require.NoError(t, err)
	assert.Equal(t, history.ActionDestroy, a)

	_, err = history.ParseAction("update")
	testutil.AssertErrorIs(t, err, history.ErrInvalidAction)
	testutil.AssertErrorIs(t, err, errs.ErrValidation)
}
