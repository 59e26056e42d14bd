// Package notifier hands confirmation codes to the delivery side after a successful commit.
// Delivery itself happens elsewhere; this package only enqueues.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-block-service/internal/pkg/clock"
)

const (
	DriverJobs = "jobs"
	DriverAMQP = "amqp"

	jobKind  = "email"
	JobTopic = "hotel_reservation_code_assigned"
)

// ConfirmationMessage is the body written to the job table or published to the queue.
type ConfirmationMessage struct {
	Type                 string    `json:"type"`
	HotelReservationCode string    `json:"hotel_reservation_code"`
	ScheduledAt          time.Time `json:"scheduled_at"`
}

type Sender interface {
	Send(ctx context.Context, payload []byte) error
}

type Observer interface {
	ObserveNotification(driver string, err error)
}

// Async runs every send on its own goroutine with a context detached from the request.
type Async struct {
	driver   string
	sender   Sender
	timeout  time.Duration
	clock    clock.Clock
	observer Observer
	wg       sync.WaitGroup
}

func NewAsync(driver string, sender Sender, timeout time.Duration, clk clock.Clock, observer Observer) *Async {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Async{
		driver:   driver,
		sender:   sender,
		timeout:  timeout,
		clock:    clk,
		observer: observer,
	}
}

func (a *Async) ScheduleConfirmationCode(ctx context.Context, code string) {
	payload, err := json.Marshal(ConfirmationMessage{
		Type:                 JobTopic,
		HotelReservationCode: code,
		ScheduledAt:          a.clock.Now(),
	})
	if err != nil {
		slog.Warn("failed to encode confirmation notification", "error", err.Error())
		return
	}

	detached := context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		sendCtx, cancel := context.WithTimeout(detached, a.timeout)
		defer cancel()

		err := a.sender.Send(sendCtx, payload)
		a.observer.ObserveNotification(a.driver, err)
		if err != nil {
			slog.Warn("failed to schedule confirmation notification",
				"driver", a.driver,
				"error", err.Error())
		}
	}()
}

// Wait blocks until every in-flight send returned. Used on shutdown.
func (a *Async) Wait() {
	a.wg.Wait()
}
