package hotelreservation

import (
	"strings"
	"time"

	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/pkg/patch"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

// EventSpec and EventVenueSpec carry the block-duration overrides of the event side.
type EventSpec struct {
	ID                 uuid.UUID
	Kind               string
	BlockDurationHours *int32
}

// EventKindCompetition marks events whose rooms are held per team.
const EventKindCompetition = "competition"

func (e EventSpec) IsCompetition() bool { return e.Kind == EventKindCompetition }

type EventVenueSpec struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	BlockDurationHours *int32
}

type Fields struct {
	Variant          Variant
	HotelID          uuid.UUID
	EventID          uuid.UUID
	EventVenueID     uuid.UUID
	HotelQuoteRateID uuid.UUID
	TeamID           *uuid.UUID
	IndividualID     *uuid.UUID
	OrderID          *uuid.UUID
	PeopleCount      int
}

// Changes lists the columns an update may touch. Nil leaves the column as it is.
type Changes struct {
	TeamID       *uuid.UUID
	IndividualID *uuid.UUID
	OrderID      *uuid.UUID
	PeopleCount  *int
}

type Reservation struct {
	id                   uuid.UUID
	variant              Variant
	hotelID              uuid.UUID
	eventID              uuid.UUID
	eventVenueID         uuid.UUID
	hotelQuoteRateID     uuid.UUID
	teamID               *uuid.UUID
	individualID         *uuid.UUID
	orderID              *uuid.UUID
	peopleCount          int
	blockExpiresAt       *time.Time
	hotelReservationCode *string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewReservation validates the mandatory references and stamps block_expires_at.
// This is the only place the expiry is computed.
func NewReservation(services *Services, f Fields, venue EventVenueSpec, event EventSpec) (*Reservation, error) {
	if f.Variant == "" {
		f.Variant = VariantHotelReservation
	}
	if !f.Variant.IsValid() {
		return nil, errs.Wrap(ErrValidation, "unknown variant "+f.Variant.String())
	}
	if err := validateReferences(f.HotelID, f.EventID, f.EventVenueID, f.HotelQuoteRateID); err != nil {
		return nil, err
	}
	if f.PeopleCount < 0 {
		return nil, errs.Wrap(ErrValidation, "people count cannot be negative")
	}

	now := services.Clock.Now()
	expiresAt := ComputeExpiryOnCreate(now, venue, event)

	return &Reservation{
		id:               uuid.New(),
		variant:          f.Variant,
		hotelID:          f.HotelID,
		eventID:          f.EventID,
		eventVenueID:     f.EventVenueID,
		hotelQuoteRateID: f.HotelQuoteRateID,
		teamID:           f.TeamID,
		individualID:     f.IndividualID,
		orderID:          f.OrderID,
		peopleCount:      f.PeopleCount,
		blockExpiresAt:   &expiresAt,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	variant Variant,
	hotelID, eventID, eventVenueID, hotelQuoteRateID uuid.UUID,
	teamID, individualID, orderID *uuid.UUID,
	peopleCount int,
	blockExpiresAt *time.Time,
	hotelReservationCode *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                   id,
		variant:              variant,
		hotelID:              hotelID,
		eventID:              eventID,
		eventVenueID:         eventVenueID,
		hotelQuoteRateID:     hotelQuoteRateID,
		teamID:               teamID,
		individualID:         individualID,
		orderID:              orderID,
		peopleCount:          peopleCount,
		blockExpiresAt:       blockExpiresAt,
		hotelReservationCode: hotelReservationCode,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Validate checks f without building a reservation. An empty variant is accepted as the default.
func (f Fields) Validate() error {
	if f.Variant != "" && !f.Variant.IsValid() {
		return errs.Wrap(ErrValidation, "unknown variant "+f.Variant.String())
	}
	if f.PeopleCount < 0 {
		return errs.Wrap(ErrValidation, "people count cannot be negative")
	}
	return validateReferences(f.HotelID, f.EventID, f.EventVenueID, f.HotelQuoteRateID)
}

func validateReferences(hotelID, eventID, eventVenueID, rateID uuid.UUID) error {
	switch {
	case hotelID == uuid.Nil:
		return errs.Wrap(ErrValidation, "hotel is required")
	case eventID == uuid.Nil:
		return errs.Wrap(ErrValidation, "event is required")
	case eventVenueID == uuid.Nil:
		return errs.Wrap(ErrValidation, "event venue is required")
	case rateID == uuid.Nil:
		return errs.Wrap(ErrValidation, "hotel quote rate is required")
	}
	return nil
}

// Apply merges c into the reservation. block_expires_at and the confirmation code are not reachable from here.
func (r *Reservation) Apply(c Changes, now time.Time) error {
	if c.PeopleCount != nil && *c.PeopleCount < 0 {
		return errs.Wrap(ErrValidation, "people count cannot be negative")
	}
	r.teamID = patch.Nullable(c.TeamID, r.teamID)
	r.individualID = patch.Nullable(c.IndividualID, r.individualID)
	r.orderID = patch.Nullable(c.OrderID, r.orderID)
	r.peopleCount = patch.Coalesce(c.PeopleCount, r.peopleCount)
	if err := r.Validate(); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) Validate() error {
	return validateReferences(r.hotelID, r.eventID, r.eventVenueID, r.hotelQuoteRateID)
}

// HasConfirmationCode treats a blank code as absent.
func (r *Reservation) HasConfirmationCode() bool {
	return r.hotelReservationCode != nil && strings.TrimSpace(*r.hotelReservationCode) != ""
}

// EnsureDestroyable refuses deletion once the hotel has confirmed the booking.
func (r *Reservation) EnsureDestroyable() error {
	if r.HasConfirmationCode() {
		return ErrHasReservations
	}
	return nil
}

func (r *Reservation) HasOrder() bool {
	return r.orderID != nil
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) Variant() Variant              { return r.variant }
func (r *Reservation) HotelID() uuid.UUID            { return r.hotelID }
func (r *Reservation) EventID() uuid.UUID            { return r.eventID }
func (r *Reservation) EventVenueID() uuid.UUID       { return r.eventVenueID }
func (r *Reservation) HotelQuoteRateID() uuid.UUID   { return r.hotelQuoteRateID }
func (r *Reservation) TeamID() *uuid.UUID            { return r.teamID }
func (r *Reservation) IndividualID() *uuid.UUID      { return r.individualID }
func (r *Reservation) OrderID() *uuid.UUID           { return r.orderID }
func (r *Reservation) PeopleCount() int              { return r.peopleCount }
func (r *Reservation) BlockExpiresAt() *time.Time    { return r.blockExpiresAt }
func (r *Reservation) HotelReservationCode() *string { return r.hotelReservationCode }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
