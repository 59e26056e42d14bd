package commands

import (
	"context"
	"log/slog"

	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// touchRunner bumps hotel_quotes.updated_at for every rate a committed mutation reached.
// Each rate gets its own short transaction. Failures are logged and never surface to the caller.
type touchRunner struct {
	uow     shared.UnitOfWork
	metrics Metrics
}

func (t touchRunner) run(ctx context.Context, rateIDs []uuid.UUID) {
	if len(rateIDs) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, rateID := range rateIDs {
		err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Quotes().TouchForRate(ctx, tx.DB(), rateID)
			return err
		})
		t.metrics.ObserveTouch(err)
		if err != nil {
			slog.Warn("failed to touch hotel quotes",
				"hotel_quote_rate_id", rateID.String(),
				"error", err.Error())
		}
	}
}

// persistAudit writes the audit half of effects inside the running transaction.
func persistAudit(ctx context.Context, tx shared.Tx, effects shared.Effects) error {
	if len(effects.Audit) == 0 {
		return nil
	}
	return tx.History().Append(ctx, tx.DB(), effects.Audit)
}
