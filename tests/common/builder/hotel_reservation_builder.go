//go:build unit || e2e

package builder

import (
	"time"

	"hotel-block-service/internal/domain/hotelreservation"
	reqdto "hotel-block-service/internal/handler/dto/request"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelReservationBuilder struct {
	Now              time.Time
	ID               uuid.UUID
	Variant          hotelreservation.Variant
	HotelID          uuid.UUID
	EventID          uuid.UUID
	EventVenueID     uuid.UUID
	HotelQuoteRateID uuid.UUID
	TeamID           *uuid.UUID
	IndividualID     *uuid.UUID
	OrderID          *uuid.UUID
	PeopleCount      int
	Code             *string
	BlockExpiresAt   *time.Time
	VenueBlockHours  *int32
	EventBlockHours  *int32
	Rooms            int
}

func NewHotelReservationBuilder() *HotelReservationBuilder {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	expires := now.Add(7 * 24 * time.Hour)
	return &HotelReservationBuilder{
		Now:              now,
		ID:               uuid.New(),
		Variant:          hotelreservation.VariantHotelReservation,
		HotelID:          uuid.New(),
		EventID:          uuid.New(),
		EventVenueID:     uuid.New(),
		HotelQuoteRateID: uuid.New(),
		PeopleCount:      2,
		BlockExpiresAt:   &expires,
		Rooms:            1,
	}
}

func (b *HotelReservationBuilder) With(mutate func(*HotelReservationBuilder)) *HotelReservationBuilder {
	mutate(b)
	return b
}

func (b *HotelReservationBuilder) Fields() hotelreservation.Fields {
	return hotelreservation.Fields{
		Variant:          b.Variant,
		HotelID:          b.HotelID,
		EventID:          b.EventID,
		EventVenueID:     b.EventVenueID,
		HotelQuoteRateID: b.HotelQuoteRateID,
		TeamID:           b.TeamID,
		IndividualID:     b.IndividualID,
		OrderID:          b.OrderID,
		PeopleCount:      b.PeopleCount,
	}
}

func (b *HotelReservationBuilder) VenueSpec() hotelreservation.EventVenueSpec {
	return hotelreservation.EventVenueSpec{ID: b.EventVenueID, EventID: b.EventID, BlockDurationHours: b.VenueBlockHours}
}

func (b *HotelReservationBuilder) EventSpec() hotelreservation.EventSpec {
	return hotelreservation.EventSpec{ID: b.EventID, BlockDurationHours: b.EventBlockHours}
}

// BuildDomain runs the creation path, so the expiry comes from the venue and event overrides.
func (b *HotelReservationBuilder) BuildDomain() (*hotelreservation.Reservation, error) {
	services := &hotelreservation.Services{Clock: clock.NewMockClock(b.Now)}
	return hotelreservation.NewReservation(services, b.Fields(), b.VenueSpec(), b.EventSpec())
}

// BuildReconstructed uses BlockExpiresAt and Code as given.
func (b *HotelReservationBuilder) BuildReconstructed() *hotelreservation.Reservation {
	return hotelreservation.ReconstructReservation(
		b.ID,
		b.Variant,
		b.HotelID,
		b.EventID,
		b.EventVenueID,
		b.HotelQuoteRateID,
		b.TeamID,
		b.IndividualID,
		b.OrderID,
		b.PeopleCount,
		b.BlockExpiresAt,
		b.Code,
		b.Now,
		b.Now,
	)
}

func (b *HotelReservationBuilder) BuildInfra() sqlc.HotelReservations {
	return sqlc.HotelReservations{
		ID:                   b.ID,
		Variant:              b.Variant.String(),
		HotelID:              b.HotelID,
		EventID:              b.EventID,
		EventVenueID:         b.EventVenueID,
		HotelQuoteRateID:     b.HotelQuoteRateID,
		TeamID:               pgconv.UUIDPtrToPgtype(b.TeamID),
		IndividualID:         pgconv.UUIDPtrToPgtype(b.IndividualID),
		OrderID:              pgconv.UUIDPtrToPgtype(b.OrderID),
		PeopleCount:          pgconv.IntToInt32(b.PeopleCount),
		BlockExpiresAt:       pgconv.TimePtrToPgtype(b.BlockExpiresAt),
		HotelReservationCode: pgconv.StringPtrToPgtype(b.Code),
		CreatedAt:            pgconv.TimeToPgtype(b.Now),
		UpdatedAt:            pgconv.TimeToPgtype(b.Now),
	}
}

func (b *HotelReservationBuilder) BuildView() *queries.HotelReservationView {
	return &queries.HotelReservationView{
		ID:                   b.ID,
		Variant:              b.Variant.String(),
		HotelID:              b.HotelID,
		EventID:              b.EventID,
		EventVenueID:         b.EventVenueID,
		HotelQuoteRateID:     b.HotelQuoteRateID,
		TeamID:               b.TeamID,
		IndividualID:         b.IndividualID,
		OrderID:              b.OrderID,
		PeopleCount:          b.PeopleCount,
		BlockExpiresAt:       b.BlockExpiresAt,
		HotelReservationCode: b.Code,
		HoldExpiresAt:        b.BlockExpiresAt,
		Cancellable:          b.Code == nil,
		CreatedAt:            b.Now,
		UpdatedAt:            b.Now,
	}
}

func (b *HotelReservationBuilder) BuildCreateRequestDTO() reqdto.CreateHotelReservationRequest {
	return reqdto.CreateHotelReservationRequest{
		Variant:          b.Variant.String(),
		HotelID:          b.HotelID,
		EventID:          b.EventID,
		EventVenueID:     b.EventVenueID,
		HotelQuoteRateID: b.HotelQuoteRateID,
		TeamID:           b.TeamID,
		IndividualID:     b.IndividualID,
		OrderID:          b.OrderID,
		PeopleCount:      b.PeopleCount,
		Rooms:            b.Rooms,
	}
}

func (b *HotelReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateHotelReservationRequest {
	peopleCount := b.PeopleCount
	return reqdto.UpdateHotelReservationRequest{
		TeamID:       b.TeamID,
		IndividualID: b.IndividualID,
		OrderID:      b.OrderID,
		PeopleCount:  &peopleCount,
	}
}
