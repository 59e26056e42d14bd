package hotelreservation

import (
	"time"

	"hotel-block-service/internal/domain/quote"
)

// MaxBlockDuration applies when neither the venue nor the event overrides the hold length.
const MaxBlockDuration = 7 * 24 * time.Hour

// BlockDuration picks the venue override, then the event override, then MaxBlockDuration.
func BlockDuration(venue EventVenueSpec, event EventSpec) time.Duration {
	if h := venue.BlockDurationHours; h != nil && *h > 0 {
		return time.Duration(*h) * time.Hour
	}
	if h := event.BlockDurationHours; h != nil && *h > 0 {
		return time.Duration(*h) * time.Hour
	}
	return MaxBlockDuration
}

func ComputeExpiryOnCreate(now time.Time, venue EventVenueSpec, event EventSpec) time.Time {
	return now.Add(BlockDuration(venue, event))
}

// IsBlockExpired compares the earlier of the reservation's own expiry and the quote's ceiling with now.
// A reservation without its own stamp counts as expired since the epoch.
func IsBlockExpired(now time.Time, r *Reservation, q quote.Quote) bool {
	own := time.Unix(0, 0).UTC()
	if r.blockExpiresAt != nil {
		own = *r.blockExpiresAt
	}
	return earliest(&own, q.BlockExpireAt).Before(now)
}

// HoldExpiresAt is nil once an order is attached; otherwise the earlier of both stamps.
func HoldExpiresAt(r *Reservation, q quote.Quote) *time.Time {
	if r.HasOrder() {
		return nil
	}
	if r.blockExpiresAt == nil && q.BlockExpireAt == nil {
		return nil
	}
	t := earliest(r.blockExpiresAt, q.BlockExpireAt)
	return &t
}

func earliest(a, b *time.Time) time.Time {
	switch {
	case a == nil:
		return *b
	case b == nil:
		return *a
	case b.Before(*a):
		return *b
	default:
		return *a
	}
}
