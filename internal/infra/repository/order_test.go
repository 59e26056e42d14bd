//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/infra/repository"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/tests/common/builder"
	repositorymock "hotel-block-service/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	placed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        sqlc.Orders
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: placed order converted",
			row:  sqlc.Orders{PlacedAt: pgconv.TimeToPgtype(placed)},
		},
		{
			name:       "error: missing order is not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			err:        errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			id := uuid.New()
			tc.row.ID = id
			mockQueries.EXPECT().GetOrderByIDForUpdate(ctx, mockDB, id).Return(tc.row, tc.err)

			o, err := repo.LockByID(ctx, mockDB, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, o)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, o.ID())
			assert.True(t, o.IsPlaced())
			assert.Nil(t, o.QuickCancellationExpireAt())
		})
	}
}

func TestOrderRepository_LineItemForReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: looks up by orderable type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		orderID, resID, lineID := uuid.New(), uuid.New(), uuid.New()
		mockQueries.EXPECT().GetOrderLineItemForOrderable(ctx, mockDB, sqlc.GetOrderLineItemForOrderableParams{
			OrderID:       orderID,
			OrderableType: order.OrderableHotelReservation,
			OrderableID:   resID,
		}).Return(sqlc.OrderLineItems{ID: lineID, OrderID: orderID, OrderableType: order.OrderableHotelReservation, OrderableID: resID, Qty: 7}, nil)

		li, err := repo.LineItemForReservation(ctx, mockDB, orderID, resID)
		require.NoError(t, err)
		assert.Equal(t, lineID, li.ID())
		assert.Equal(t, 7, li.Qty())
	})

	t.Run("error: no line item is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetOrderLineItemForOrderable(ctx, mockDB, gomock.Any()).Return(sqlc.OrderLineItems{}, pgx.ErrNoRows)

		li, err := repo.LineItemForReservation(ctx, mockDB, uuid.New(), uuid.New())
		assert.Nil(t, li)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestOrderRepository_Writes(t *testing.T) {
	ctx := context.Background()

	t.Run("success: window edge and quantity passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		orderID := uuid.New()
		edge := time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC)
		li := order.ReconstructLineItem(uuid.New(), orderID, uuid.New(), 3)

		mockQueries.EXPECT().UpdateOrderQuickCancellationExpireAt(ctx, mockDB, sqlc.UpdateOrderQuickCancellationExpireAtParams{
			ID:                        orderID,
			QuickCancellationExpireAt: pgconv.TimeToPgtype(edge),
		}).Return(nil)
		mockQueries.EXPECT().UpdateOrderLineItemQty(ctx, mockDB, sqlc.UpdateOrderLineItemQtyParams{ID: li.ID(), Qty: 3}).Return(nil)

		require.NoError(t, repo.SetQuickCancellationExpireAt(ctx, mockDB, orderID, edge))
		require.NoError(t, repo.UpdateLineItemQty(ctx, mockDB, li))
	})

	t.Run("error: failed statement is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateOrderLineItemQty(ctx, mockDB, gomock.Any()).Return(errors.New("deadlock detected"))

		err := repo.UpdateLineItemQty(ctx, mockDB, order.ReconstructLineItem(uuid.New(), uuid.New(), uuid.New(), 1))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHistoryRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("stops at the first failed insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHistoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHistoryRepository(mockQueries, mockDB)

		b := builder.NewHotelReservationBuilder()
		res := b.BuildReconstructed()
		entries := []history.Entry{
			history.NewEntry(history.ActionSave, res, b.Now),
			history.NewEntry(history.ActionSave, res, b.Now),
		}

		gomock.InOrder(
			mockQueries.EXPECT().CreateHistoricalHotelReservation(ctx, mockDB, gomock.Any()).Return(nil),
			mockQueries.EXPECT().CreateHistoricalHotelReservation(ctx, mockDB, gomock.Any()).Return(errors.New("disk full")),
		)

		err := repo.Append(ctx, mockDB, append(entries, history.NewEntry(history.ActionSave, res, b.Now)))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
