//go:build unit

package order_test

import (
	"testing"
	"time"

	"hotel-block-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrder_QuickCancellationPeriod(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no window set", func(t *testing.T) {
		o := order.ReconstructOrder(uuid.New(), &now, nil)
		assert.False(t, o.InQuickCancellationPeriod(now))
	})

	t.Run("open then closed", func(t *testing.T) {
		o := order.ReconstructOrder(uuid.New(), &now, nil)

		o.SetQuickCancellationExpireAt(now, order.QuickCancellationMinutes)
		assert.True(t, o.InQuickCancellationPeriod(now))
		assert.True(t, o.InQuickCancellationPeriod(now.Add(4*time.Minute)))
		assert.False(t, o.InQuickCancellationPeriod(now.Add(5*time.Minute)))

		o.SetQuickCancellationExpireAt(now, -order.QuickCancellationMinutes)
		assert.False(t, o.InQuickCancellationPeriod(now))
		assert.Equal(t, now.Add(-5*time.Minute), *o.QuickCancellationExpireAt())
	})

	t.Run("placed state", func(t *testing.T) {
		assert.True(t, order.ReconstructOrder(uuid.New(), &now, nil).IsPlaced())
		assert.False(t, order.ReconstructOrder(uuid.New(), nil, nil).IsPlaced())
	})
}

func TestLineItem_ReduceTo(t *testing.T) {
	cases := []struct {
		name    string
		desired int
		changed bool
		want    int
	}{
		{name: "reduce", desired: 6, changed: true, want: 6},
		{name: "reduce to zero", desired: 0, changed: true, want: 0},
		{name: "equal is a no-op", desired: 10, changed: false, want: 10},
		{name: "increase is a no-op", desired: 12, changed: false, want: 10},
		{name: "negative is ignored", desired: -1, changed: false, want: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			li := order.ReconstructLineItem(uuid.New(), uuid.New(), uuid.New(), 10)
			assert.Equal(t, tc.changed, li.ReduceTo(tc.desired))
			assert.Equal(t, tc.want, li.Qty())
		})
	}
}
