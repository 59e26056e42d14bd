//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-block-service/internal/infra/notifier"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	payloads [][]byte
	ctxErrs  []error
	err      error
	block    chan struct{}
}

func (s *recordingSender) Send(ctx context.Context, payload []byte) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			s.mu.Lock()
			s.ctxErrs = append(s.ctxErrs, ctx.Err())
			s.mu.Unlock()
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	return s.err
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveNotification(driver string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	outcome := driver + ":ok"
	if err != nil {
		outcome = driver + ":error"
	}
	o.outcomes = append(o.outcomes, outcome)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAsync_SendsDetachedFromRequest(t *testing.T) {
	sender := &recordingSender{}
	observer := &recordingObserver{}
	n := notifier.NewAsync(notifier.DriverJobs, sender, time.Second, clock.NewMockClock(fixedNow), observer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.ScheduleConfirmationCode(ctx, "HX-1")
	n.Wait()

	require.Len(t, sender.payloads, 1)
	assert.NoError(t, sender.ctxErrs[0])

	var msg notifier.ConfirmationMessage
	require.NoError(t, json.Unmarshal(sender.payloads[0], &msg))
	assert.Equal(t, "HX-1", msg.HotelReservationCode)
	assert.Equal(t, notifier.JobTopic, msg.Type)
	assert.True(t, fixedNow.Equal(msg.ScheduledAt))
	assert.Equal(t, []string{"jobs:ok"}, observer.outcomes)
}

func TestAsync_FailureIsObservedNotReturned(t *testing.T) {
	sender := &recordingSender{err: errors.New("broker down")}
	observer := &recordingObserver{}
	n := notifier.NewAsync(notifier.DriverAMQP, sender, time.Second, clock.NewMockClock(fixedNow), observer)

	n.ScheduleConfirmationCode(context.Background(), "HX-2")
	n.Wait()

	assert.Equal(t, []string{"amqp:error"}, observer.outcomes)
}

func TestAsync_TimeoutBoundsTheSend(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	observer := &recordingObserver{}
	n := notifier.NewAsync(notifier.DriverJobs, sender, 20*time.Millisecond, clock.NewMockClock(fixedNow), observer)

	n.ScheduleConfirmationCode(context.Background(), "HX-3")
	n.Wait()

	require.Len(t, sender.ctxErrs, 1)
	assert.ErrorIs(t, sender.ctxErrs[0], context.DeadlineExceeded)
	assert.Equal(t, []string{"jobs:error"}, observer.outcomes)
}

// jobTx implements only what JobSender touches.
type jobTx struct {
	shared.Tx
	repo *jobRepo
}

func (t jobTx) Notifications() shared.NotificationRepository { return t.repo }
func (t jobTx) DB() sqlc.DBTX                                 { return nil }

type jobRepo struct {
	kind, topic string
	payload     []byte
	runAt       time.Time
}

func (r *jobRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.kind, r.topic, r.payload, r.runAt = kind, topic, payload, runAt
	return nil
}

type jobUoW struct {
	shared.UnitOfWork
	tx jobTx
}

func (u jobUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func TestJobSender_WritesQueuedJob(t *testing.T) {
	repo := &jobRepo{}
	sender := notifier.NewJobSender(jobUoW{tx: jobTx{repo: repo}}, clock.NewMockClock(fixedNow))

	require.NoError(t, sender.Send(context.Background(), []byte(`{"hotel_reservation_code":"HX-4"}`)))

	assert.Equal(t, "email", repo.kind)
	assert.Equal(t, notifier.JobTopic, repo.topic)
	assert.JSONEq(t, `{"hotel_reservation_code":"HX-4"}`, string(repo.payload))
	assert.Equal(t, fixedNow, repo.runAt)
}
