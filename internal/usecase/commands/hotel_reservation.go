package commands

import (
	"context"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelReservationCommands interface {
	Create(ctx context.Context, f hotelreservation.Fields) (*hotelreservation.Reservation, error)
	// CreateBlock inserts one reservation per room in a single transaction.
	CreateBlock(ctx context.Context, f hotelreservation.Fields, rooms int) ([]*hotelreservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, c hotelreservation.Changes) (*hotelreservation.Reservation, error)
	Destroy(ctx context.Context, id uuid.UUID) error
}

type hotelReservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
	touches touchRunner
}

func NewHotelReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, m Metrics) HotelReservationCommands {
	return &hotelReservationUseCaseImpl{
		uow:     uow,
		clock:   clk,
		metrics: m,
		touches: touchRunner{uow: uow, metrics: m},
	}
}

func (uc *hotelReservationUseCaseImpl) Create(ctx context.Context, f hotelreservation.Fields) (*hotelreservation.Reservation, error) {
	created, err := uc.CreateBlock(ctx, f, 1)
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (uc *hotelReservationUseCaseImpl) CreateBlock(ctx context.Context, f hotelreservation.Fields, rooms int) ([]*hotelreservation.Reservation, error) {
	if rooms < 1 {
		return nil, ErrInvalidRoomCount
	}
	// Reject missing references before any lookup runs.
	if err := f.Validate(); err != nil {
		return nil, err
	}

	services := &hotelreservation.Services{Clock: uc.clock}

	var (
		created []*hotelreservation.Reservation
		effects shared.Effects
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may retry; start every attempt clean.
		created = created[:0]
		effects = shared.Effects{}

		venue, event, derr := resolveEventSide(ctx, tx.Reads(), f)
		if derr != nil {
			return derr
		}
		if _, derr = tx.Reads().QuoteRateByID(ctx, f.HotelQuoteRateID); derr != nil {
			return asNotFound(derr, ErrQuoteRateNotFound)
		}

		for range rooms {
			res, derr := hotelreservation.NewReservation(services, f, *venue, *event)
			if derr != nil {
				return derr
			}
			saved, eff, derr := tx.HotelReservations().Create(ctx, tx.DB(), res)
			if derr != nil {
				return derr
			}
			created = append(created, saved)
			effects.Merge(eff)
		}
		return persistAudit(ctx, tx, effects)
	})
	uc.metrics.ObserveOperation(opCreate, err)
	if err != nil {
		return nil, err
	}

	uc.touches.run(ctx, effects.Touches)
	return created, nil
}

func (uc *hotelReservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, c hotelreservation.Changes) (*hotelreservation.Reservation, error) {
	var (
		updated *hotelreservation.Reservation
		effects shared.Effects
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.HotelReservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return asNotFound(derr, ErrReservationNotFound)
		}
		if c.OrderID != nil && *c.OrderID != uuid.Nil {
			if _, derr = tx.Orders().FindByID(ctx, tx.DB(), *c.OrderID); derr != nil {
				return asNotFound(derr, ErrOrderNotFound)
			}
		}
		if derr = res.Apply(c, uc.clock.Now()); derr != nil {
			return derr
		}

		saved, eff, derr := tx.HotelReservations().Update(ctx, tx.DB(), res)
		if derr != nil {
			return asNotFound(derr, ErrReservationNotFound)
		}
		updated = saved
		effects = eff
		return persistAudit(ctx, tx, effects)
	})
	uc.metrics.ObserveOperation(opUpdate, err)
	if err != nil {
		return nil, err
	}

	uc.touches.run(ctx, effects.Touches)
	return updated, nil
}

// Destroy refuses reservations that already carry a confirmation code and leaves them untouched.
func (uc *hotelReservationUseCaseImpl) Destroy(ctx context.Context, id uuid.UUID) error {
	var effects shared.Effects
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.HotelReservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return asNotFound(derr, ErrReservationNotFound)
		}
		eff, derr := tx.HotelReservations().Delete(ctx, tx.DB(), res, uc.clock.Now())
		if derr != nil {
			return derr
		}
		effects = eff
		return persistAudit(ctx, tx, effects)
	})
	uc.metrics.ObserveOperation(opDestroy, err)
	if err != nil {
		return err
	}

	uc.touches.run(ctx, effects.Touches)
	return nil
}

func resolveEventSide(ctx context.Context, reads shared.CommandReads, f hotelreservation.Fields) (*hotelreservation.EventVenueSpec, *hotelreservation.EventSpec, error) {
	venue, err := reads.EventVenueByID(ctx, f.EventVenueID)
	if err != nil {
		return nil, nil, asNotFound(err, ErrEventVenueNotFound)
	}
	event, err := reads.EventByID(ctx, f.EventID)
	if err != nil {
		return nil, nil, asNotFound(err, ErrEventNotFound)
	}
	if venue.EventID != event.ID {
		return nil, nil, errs.Wrap(hotelreservation.ErrValidation, "event venue does not belong to event")
	}
	return venue, event, nil
}
