//go:build unit

package quote_test

import (
	"testing"
	"time"

	"hotel-block-service/internal/domain/quote"

	"github.com/stretchr/testify/assert"
)

func TestEarliestNight(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

	t.Run("picks the minimum regardless of order", func(t *testing.T) {
		first, ok := quote.EarliestNight([]quote.Night{{NightAt: day(12)}, {NightAt: day(10)}, {NightAt: day(11)}})
		assert.True(t, ok)
		assert.Equal(t, day(10), first)
	})

	t.Run("no nights", func(t *testing.T) {
		_, ok := quote.EarliestNight(nil)
		assert.False(t, ok)
	})
}

func TestQuote_IsAccepted(t *testing.T) {
	assert.True(t, quote.Quote{Status: quote.StatusAccepted}.IsAccepted())
	assert.False(t, quote.Quote{Status: "pending"}.IsAccepted())
}
