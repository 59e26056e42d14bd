package notifier

import (
	"context"

	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/usecase/shared"
)

// JobSender writes a notification_jobs row that the delivery worker picks up.
type JobSender struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewJobSender(uow shared.UnitOfWork, clk clock.Clock) *JobSender {
	return &JobSender{uow: uow, clock: clk}
}

func (s *JobSender) Send(ctx context.Context, payload []byte) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), jobKind, JobTopic, payload, s.clock.Now())
	})
}
