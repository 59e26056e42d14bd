package commands

import (
	"context"
	"strings"

	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CodeAssignmentCommands interface {
	// AssignCode stamps code on every code-less reservation of a placed order and
	// reports how many rows it changed. Zero with a nil error means nothing was eligible.
	AssignCode(ctx context.Context, orderID uuid.UUID, code string) (int, error)
}

type codeAssignmentUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier ConfirmationNotifier
	metrics  Metrics
	touches  touchRunner
}

func NewCodeAssignmentUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier ConfirmationNotifier, m Metrics) CodeAssignmentCommands {
	return &codeAssignmentUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		metrics:  m,
		touches:  touchRunner{uow: uow, metrics: m},
	}
}

func (uc *codeAssignmentUseCaseImpl) AssignCode(ctx context.Context, orderID uuid.UUID, code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, ErrBlankCode
	}

	var (
		stamped int
		effects shared.Effects
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByID(ctx, tx.DB(), orderID)
		if derr != nil {
			return asNotFound(derr, ErrOrderNotFound)
		}
		if !o.IsPlaced() {
			return ErrOrderNotPlaced
		}

		rows, eff, derr := tx.HotelReservations().AssignCode(ctx, tx.DB(), orderID, code, uc.clock.Now())
		if derr != nil {
			return derr
		}
		stamped = len(rows)
		effects = eff
		// One audit row per stamped reservation; a failure here undoes the stamping too.
		return persistAudit(ctx, tx, effects)
	})
	err = asTransactionFailure(err)
	uc.metrics.ObserveOperation(opAssignCode, err)
	if err != nil {
		return 0, err
	}
	if stamped == 0 {
		return 0, nil
	}

	uc.metrics.AddCodesAssigned(stamped)
	uc.notifier.ScheduleConfirmationCode(ctx, code)
	uc.touches.run(ctx, effects.Touches)
	return stamped, nil
}
