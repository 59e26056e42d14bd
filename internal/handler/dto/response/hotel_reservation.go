package response

import (
	"time"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/usecase/commands"
	"hotel-block-service/internal/usecase/queries"
)

type HotelReservationListResponse struct {
	Items      []*queries.HotelReservationView `json:"items"`
	NextCursor *string                         `json:"next_cursor,omitempty"`
}

func FromHotelReservationList(items []*queries.HotelReservationView, next *queries.Cursor) *HotelReservationListResponse {
	if items == nil {
		items = []*queries.HotelReservationView{}
	}
	res := &HotelReservationListResponse{Items: items}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

// CreatedHotelReservationsResponse is returned by block creation. Each id can be fetched for derived fields.
type CreatedHotelReservationsResponse struct {
	IDs            []string   `json:"ids"`
	BlockExpiresAt *time.Time `json:"block_expires_at,omitempty"`
}

func FromCreatedReservations(created []*hotelreservation.Reservation) *CreatedHotelReservationsResponse {
	res := &CreatedHotelReservationsResponse{IDs: make([]string, len(created))}
	for i, r := range created {
		res.IDs[i] = r.ID().String()
	}
	if len(created) > 0 {
		res.BlockExpiresAt = created[0].BlockExpiresAt()
	}
	return res
}

type LineAdjustmentResponse struct {
	HotelReservationID string  `json:"hotel_reservation_id"`
	LineItemID         *string `json:"line_item_id,omitempty"`
	Outcome            string  `json:"outcome"`
	PreviousQty        int     `json:"previous_qty"`
	Qty                int     `json:"qty"`
}

type AdjustmentResponse struct {
	OrderID                   string                    `json:"order_id"`
	QuickCancellationExpireAt time.Time                 `json:"quick_cancellation_expire_at"`
	Lines                     []*LineAdjustmentResponse `json:"lines"`
}

func FromAdjustmentResult(r *commands.AdjustmentResult) *AdjustmentResponse {
	res := &AdjustmentResponse{
		OrderID:                   r.OrderID.String(),
		QuickCancellationExpireAt: r.QuickCancellationExpireAt,
		Lines:                     make([]*LineAdjustmentResponse, len(r.Lines)),
	}
	for i, l := range r.Lines {
		line := &LineAdjustmentResponse{
			HotelReservationID: l.ReservationID.String(),
			Outcome:            string(l.Outcome),
			PreviousQty:        l.PreviousQty,
			Qty:                l.Qty,
		}
		if l.LineItemID != nil {
			id := l.LineItemID.String()
			line.LineItemID = &id
		}
		res.Lines[i] = line
	}
	return res
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
