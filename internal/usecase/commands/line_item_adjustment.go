package commands

import (
	"context"
	"strconv"
	"strings"
	"time"

	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineOutcome string

const (
	LineReduced   LineOutcome = "reduced"
	LineUnchanged LineOutcome = "unchanged"
	LineSkipped   LineOutcome = "skipped"
)

type LineAdjustment struct {
	ReservationID uuid.UUID
	LineItemID    *uuid.UUID
	Outcome       LineOutcome
	PreviousQty   int
	Qty           int
}

type AdjustmentResult struct {
	OrderID uuid.UUID
	Lines   []LineAdjustment
	// QuickCancellationExpireAt is the closed window edge written just before commit.
	QuickCancellationExpireAt time.Time
}

type LineItemCommands interface {
	// AdjustLineItems lowers line-item quantities of a placed order while holding its row lock.
	// quantities is keyed by reservation id; values are decimal strings.
	AdjustLineItems(ctx context.Context, orderID uuid.UUID, quantities map[string]string) (*AdjustmentResult, error)
}

type lineItemUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
}

func NewLineItemUseCase(uow shared.UnitOfWork, clk clock.Clock, m Metrics) LineItemCommands {
	return &lineItemUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *lineItemUseCaseImpl) AdjustLineItems(ctx context.Context, orderID uuid.UUID, quantities map[string]string) (*AdjustmentResult, error) {
	desired := normalizeQuantities(quantities)

	var result *AdjustmentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders := tx.Orders()
		o, derr := orders.LockByID(ctx, tx.DB(), orderID)
		if derr != nil {
			return asNotFound(derr, ErrOrderNotFound)
		}
		if !o.IsPlaced() {
			return ErrOrderNotPlaced
		}

		// The window stays open while quantities move, then closes before the lock is released.
		opened := o.SetQuickCancellationExpireAt(uc.clock.Now(), order.QuickCancellationMinutes)
		if derr = orders.SetQuickCancellationExpireAt(ctx, tx.DB(), orderID, opened); derr != nil {
			return derr
		}

		reservations, derr := tx.HotelReservations().ListByOrder(ctx, tx.DB(), orderID)
		if derr != nil {
			return derr
		}

		lines := make([]LineAdjustment, 0, len(reservations))
		for _, res := range reservations {
			line := LineAdjustment{ReservationID: res.ID(), Outcome: LineSkipped}
			want, ok := desired[res.ID()]
			if !ok {
				lines = append(lines, line)
				continue
			}

			li, derr := orders.LineItemForReservation(ctx, tx.DB(), orderID, res.ID())
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					lines = append(lines, line)
					continue
				}
				return derr
			}
			liID := li.ID()
			line.LineItemID = &liID
			line.PreviousQty = li.Qty()

			if li.ReduceTo(want) {
				if derr = orders.UpdateLineItemQty(ctx, tx.DB(), li); derr != nil {
					return derr
				}
				line.Outcome = LineReduced
			} else {
				line.Outcome = LineUnchanged
			}
			line.Qty = li.Qty()
			lines = append(lines, line)
		}

		closed := o.SetQuickCancellationExpireAt(uc.clock.Now(), -order.QuickCancellationMinutes)
		if derr = orders.SetQuickCancellationExpireAt(ctx, tx.DB(), orderID, closed); derr != nil {
			return derr
		}

		result = &AdjustmentResult{OrderID: orderID, Lines: lines, QuickCancellationExpireAt: closed}
		return nil
	})
	err = asTransactionFailure(err)
	uc.metrics.ObserveOperation(opAdjustLines, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// normalizeQuantities drops keys that are not reservation ids and values that are not
// non-negative integers. Dropped entries end up as skipped lines.
func normalizeQuantities(in map[string]string) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(in))
	for k, v := range in {
		id, err := uuid.Parse(strings.TrimSpace(k))
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			continue
		}
		out[id] = n
	}
	return out
}
