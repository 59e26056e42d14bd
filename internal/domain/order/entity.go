package order

import (
	"time"

	"github.com/google/uuid"
)

// QuickCancellationMinutes is how long the payer may roll back a line-item edit.
const QuickCancellationMinutes = 5

// OrderableHotelReservation is the orderable_type of line items that point at hotel reservations.
const OrderableHotelReservation = "HotelReservation"

type Order struct {
	id                        uuid.UUID
	placedAt                  *time.Time
	quickCancellationExpireAt *time.Time
}

func ReconstructOrder(id uuid.UUID, placedAt, quickCancellationExpireAt *time.Time) *Order {
	return &Order{
		id:                        id,
		placedAt:                  placedAt,
		quickCancellationExpireAt: quickCancellationExpireAt,
	}
}

// IsPlaced reports whether the order has been paid.
func (o *Order) IsPlaced() bool {
	return o.placedAt != nil
}

func (o *Order) InQuickCancellationPeriod(now time.Time) bool {
	return o.quickCancellationExpireAt != nil && now.Before(*o.quickCancellationExpireAt)
}

// SetQuickCancellationExpireAt moves the window edge to now+minutes. Negative minutes close it.
func (o *Order) SetQuickCancellationExpireAt(now time.Time, minutes int) time.Time {
	at := now.Add(time.Duration(minutes) * time.Minute)
	o.quickCancellationExpireAt = &at
	return at
}

func (o *Order) ID() uuid.UUID                         { return o.id }
func (o *Order) PlacedAt() *time.Time                  { return o.placedAt }
func (o *Order) QuickCancellationExpireAt() *time.Time { return o.quickCancellationExpireAt }

type LineItem struct {
	id          uuid.UUID
	orderID     uuid.UUID
	orderableID uuid.UUID
	qty         int
}

func ReconstructLineItem(id, orderID, orderableID uuid.UUID, qty int) *LineItem {
	return &LineItem{id: id, orderID: orderID, orderableID: orderableID, qty: qty}
}

// ReduceTo lowers the quantity to desired. Increases and equal values are ignored.
func (li *LineItem) ReduceTo(desired int) bool {
	if desired < 0 || desired >= li.qty {
		return false
	}
	li.qty = desired
	return true
}

func (li *LineItem) ID() uuid.UUID          { return li.id }
func (li *LineItem) OrderID() uuid.UUID     { return li.orderID }
func (li *LineItem) OrderableID() uuid.UUID { return li.orderableID }
func (li *LineItem) Qty() int               { return li.qty }
