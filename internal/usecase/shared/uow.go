package shared

import (
	"context"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	HotelReservations() HotelReservationRepository
	History() HistoryRepository
	Orders() OrderRepository
	Quotes() QuoteRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads resolves the upstream records a write needs for validation and expiry.
type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*hotelreservation.EventSpec, error)
	EventVenueByID(ctx context.Context, id uuid.UUID) (*hotelreservation.EventVenueSpec, error)
	QuoteRateByID(ctx context.Context, rateID uuid.UUID) (*quote.Linkage, error)
}

// HotelReservationRepository mutators report the audit entries and quote touches they imply.
// Nothing is written to the audit table or to quotes here.
type HotelReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *hotelreservation.Reservation) (*hotelreservation.Reservation, Effects, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hotelreservation.Reservation, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *hotelreservation.Reservation) (*hotelreservation.Reservation, Effects, error)
	Delete(ctx context.Context, tx sqlc.DBTX, r *hotelreservation.Reservation, now time.Time) (Effects, error)
	AssignCode(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, code string, now time.Time) ([]*hotelreservation.Reservation, Effects, error)
	ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*hotelreservation.Reservation, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entries []history.Entry) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	// LockByID takes a row lock held until the surrounding transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	SetQuickCancellationExpireAt(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	LineItemForReservation(ctx context.Context, tx sqlc.DBTX, orderID, reservationID uuid.UUID) (*order.LineItem, error)
	UpdateLineItemQty(ctx context.Context, tx sqlc.DBTX, li *order.LineItem) error
}

type QuoteRepository interface {
	TouchForRate(ctx context.Context, tx sqlc.DBTX, rateID uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
