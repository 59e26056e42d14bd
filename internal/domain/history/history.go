// Package history models the insert-only audit trail of hotel reservations.
package history

import (
	"time"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type Action string

const (
	ActionSave    Action = "save"
	ActionDestroy Action = "destroy"
)

var ErrInvalidAction = errs.Mark(errs.New("invalid history action"), errs.ErrValidation)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionSave, ActionDestroy:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

// Snapshot is the full column set of a reservation at the moment it was recorded.
type Snapshot struct {
	ID                   uuid.UUID
	Variant              hotelreservation.Variant
	HotelID              uuid.UUID
	EventID              uuid.UUID
	EventVenueID         uuid.UUID
	HotelQuoteRateID     uuid.UUID
	TeamID               *uuid.UUID
	IndividualID         *uuid.UUID
	OrderID              *uuid.UUID
	PeopleCount          int
	BlockExpiresAt       *time.Time
	HotelReservationCode *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Entry struct {
	ID         uuid.UUID
	Action     Action
	Snapshot   Snapshot
	RecordedAt time.Time
}

func SnapshotOf(r *hotelreservation.Reservation) Snapshot {
	return Snapshot{
		ID:                   r.ID(),
		Variant:              r.Variant(),
		HotelID:              r.HotelID(),
		EventID:              r.EventID(),
		EventVenueID:         r.EventVenueID(),
		HotelQuoteRateID:     r.HotelQuoteRateID(),
		TeamID:               copyUUID(r.TeamID()),
		IndividualID:         copyUUID(r.IndividualID()),
		OrderID:              copyUUID(r.OrderID()),
		PeopleCount:          r.PeopleCount(),
		BlockExpiresAt:       copyTime(r.BlockExpiresAt()),
		HotelReservationCode: copyString(r.HotelReservationCode()),
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

// NewEntry captures r as it is now. Later mutations of r do not leak into the entry.
func NewEntry(action Action, r *hotelreservation.Reservation, recordedAt time.Time) Entry {
	return Entry{
		ID:         uuid.New(),
		Action:     action,
		Snapshot:   SnapshotOf(r),
		RecordedAt: recordedAt,
	}
}

func copyUUID(v *uuid.UUID) *uuid.UUID {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
