package repository

import (
	"context"
	"time"

	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/infra/repository/converter"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	UpdateOrderQuickCancellationExpireAt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderQuickCancellationExpireAtParams) error
	GetOrderLineItemForOrderable(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOrderLineItemForOrderableParams) (sqlc.OrderLineItems, error)
	UpdateOrderLineItemQty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderLineItemQtyParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) SetQuickCancellationExpireAt(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateOrderQuickCancellationExpireAt(ctx, tx, sqlc.UpdateOrderQuickCancellationExpireAtParams{
		ID:                        id,
		QuickCancellationExpireAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update quick cancellation window", err)
	}
	return nil
}

func (r *OrderRepository) LineItemForReservation(ctx context.Context, tx sqlc.DBTX, orderID, reservationID uuid.UUID) (*order.LineItem, error) {
	row, err := r.queries.GetOrderLineItemForOrderable(ctx, tx, sqlc.GetOrderLineItemForOrderableParams{
		OrderID:       orderID,
		OrderableType: order.OrderableHotelReservation,
		OrderableID:   reservationID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("line item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get line item", err)
	}
	return converter.LineItemFromRow(row), nil
}

func (r *OrderRepository) UpdateLineItemQty(ctx context.Context, tx sqlc.DBTX, li *order.LineItem) error {
	err := r.queries.UpdateOrderLineItemQty(ctx, tx, sqlc.UpdateOrderLineItemQtyParams{
		ID:  li.ID(),
		Qty: pgconv.IntToInt32(li.Qty()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update line item quantity", err)
	}
	return nil
}
