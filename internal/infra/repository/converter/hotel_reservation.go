package converter

import (
	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"
)

func HotelReservationToCreateParams(r *hotelreservation.Reservation) sqlc.CreateHotelReservationParams {
	return sqlc.CreateHotelReservationParams{
		ID:               r.ID(),
		Variant:          r.Variant().String(),
		HotelID:          r.HotelID(),
		EventID:          r.EventID(),
		EventVenueID:     r.EventVenueID(),
		HotelQuoteRateID: r.HotelQuoteRateID(),
		TeamID:           pgconv.UUIDPtrToPgtype(r.TeamID()),
		IndividualID:     pgconv.UUIDPtrToPgtype(r.IndividualID()),
		OrderID:          pgconv.UUIDPtrToPgtype(r.OrderID()),
		PeopleCount:      pgconv.IntToInt32(r.PeopleCount()),
		BlockExpiresAt:   pgconv.TimePtrToPgtype(r.BlockExpiresAt()),
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func HotelReservationToUpdateParams(r *hotelreservation.Reservation) sqlc.UpdateHotelReservationParams {
	return sqlc.UpdateHotelReservationParams{
		ID:           r.ID(),
		TeamID:       pgconv.UUIDPtrToPgtype(r.TeamID()),
		IndividualID: pgconv.UUIDPtrToPgtype(r.IndividualID()),
		OrderID:      pgconv.UUIDPtrToPgtype(r.OrderID()),
		PeopleCount:  pgconv.IntToInt32(r.PeopleCount()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func HotelReservationFromRow(row sqlc.HotelReservations) *hotelreservation.Reservation {
	return hotelreservation.ReconstructReservation(
		row.ID,
		hotelreservation.Variant(row.Variant),
		row.HotelID,
		row.EventID,
		row.EventVenueID,
		row.HotelQuoteRateID,
		pgconv.UUIDPtrFromPgtype(row.TeamID),
		pgconv.UUIDPtrFromPgtype(row.IndividualID),
		pgconv.UUIDPtrFromPgtype(row.OrderID),
		int(row.PeopleCount),
		pgconv.TimePtrFromPgtype(row.BlockExpiresAt),
		pgconv.StringPtrFromPgtype(row.HotelReservationCode),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func HistoryEntryToCreateParams(e history.Entry) sqlc.CreateHistoricalHotelReservationParams {
	s := e.Snapshot
	return sqlc.CreateHistoricalHotelReservationParams{
		ID:                   e.ID,
		HotelReservationID:   s.ID,
		Action:               string(e.Action),
		Variant:              s.Variant.String(),
		HotelID:              s.HotelID,
		EventID:              s.EventID,
		EventVenueID:         s.EventVenueID,
		HotelQuoteRateID:     s.HotelQuoteRateID,
		TeamID:               pgconv.UUIDPtrToPgtype(s.TeamID),
		IndividualID:         pgconv.UUIDPtrToPgtype(s.IndividualID),
		OrderID:              pgconv.UUIDPtrToPgtype(s.OrderID),
		PeopleCount:          pgconv.IntToInt32(s.PeopleCount),
		BlockExpiresAt:       pgconv.TimePtrToPgtype(s.BlockExpiresAt),
		HotelReservationCode: pgconv.StringPtrToPgtype(s.HotelReservationCode),
		ReservationCreatedAt: pgconv.TimeToPgtype(s.CreatedAt),
		ReservationUpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt),
		RecordedAt:           pgconv.TimeToPgtype(e.RecordedAt),
	}
}

func OrderFromRow(row sqlc.Orders) *order.Order {
	return order.ReconstructOrder(
		row.ID,
		pgconv.TimePtrFromPgtype(row.PlacedAt),
		pgconv.TimePtrFromPgtype(row.QuickCancellationExpireAt),
	)
}

func LineItemFromRow(row sqlc.OrderLineItems) *order.LineItem {
	return order.ReconstructLineItem(row.ID, row.OrderID, row.OrderableID, int(row.Qty))
}
