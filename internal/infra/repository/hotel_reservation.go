package repository

import (
	"context"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/infra/repository/converter"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelReservationWriteQueries interface {
	CreateHotelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelReservationParams) (sqlc.HotelReservations, error)
	GetHotelReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HotelReservations, error)
	UpdateHotelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelReservationParams) (sqlc.HotelReservations, error)
	DeleteHotelReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	AssignHotelReservationCode(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignHotelReservationCodeParams) ([]sqlc.HotelReservations, error)
	ListHotelReservationsByOrder(ctx context.Context, db sqlc.DBTX, orderID pgtype.UUID) ([]sqlc.HotelReservations, error)
}

type HotelReservationRepository struct {
	queries HotelReservationWriteQueries
	db      sqlc.DBTX
}

func NewHotelReservationRepository(queries HotelReservationWriteQueries, db sqlc.DBTX) *HotelReservationRepository {
	return &HotelReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *hotelreservation.Reservation) (*hotelreservation.Reservation, shared.Effects, error) {
	row, err := r.queries.CreateHotelReservation(ctx, tx, converter.HotelReservationToCreateParams(res))
	if err != nil {
		return nil, shared.Effects{}, infra.WrapRepoErr("failed to create hotel reservation", err)
	}
	created := converter.HotelReservationFromRow(row)
	return created, saveEffects(created, created.CreatedAt()), nil
}

func (r *HotelReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hotelreservation.Reservation, error) {
	row, err := r.queries.GetHotelReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hotel reservation", err)
	}
	return converter.HotelReservationFromRow(row), nil
}

func (r *HotelReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, res *hotelreservation.Reservation) (*hotelreservation.Reservation, shared.Effects, error) {
	row, err := r.queries.UpdateHotelReservation(ctx, tx, converter.HotelReservationToUpdateParams(res))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, shared.Effects{}, infra.WrapRepoErr("hotel reservation not found", err, infra.KindNotFound)
		}
		return nil, shared.Effects{}, infra.WrapRepoErr("failed to update hotel reservation", err)
	}
	updated := converter.HotelReservationFromRow(row)
	return updated, saveEffects(updated, updated.UpdatedAt()), nil
}

// Delete refuses rows that carry a confirmation code, both in the domain and in the statement itself.
func (r *HotelReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, res *hotelreservation.Reservation, now time.Time) (shared.Effects, error) {
	if err := res.EnsureDestroyable(); err != nil {
		return shared.Effects{}, err
	}
	n, err := r.queries.DeleteHotelReservation(ctx, tx, res.ID())
	if err != nil {
		return shared.Effects{}, infra.WrapRepoErr("failed to delete hotel reservation", err)
	}
	if n == 0 {
		return shared.Effects{}, hotelreservation.ErrHasReservations
	}
	effects := shared.Effects{Audit: []history.Entry{history.NewEntry(history.ActionDestroy, res, now)}}
	effects.AddTouch(res.HotelQuoteRateID())
	return effects, nil
}

// AssignCode stamps every code-less reservation of the order in one statement.
func (r *HotelReservationRepository) AssignCode(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, code string, now time.Time) ([]*hotelreservation.Reservation, shared.Effects, error) {
	rows, err := r.queries.AssignHotelReservationCode(ctx, tx, sqlc.AssignHotelReservationCodeParams{
		OrderID:              pgconv.UUIDToPgtype(orderID),
		HotelReservationCode: pgconv.StringToPgtype(code),
		UpdatedAt:            pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, shared.Effects{}, infra.WrapRepoErr("failed to assign hotel reservation code", err)
	}
	var effects shared.Effects
	out := make([]*hotelreservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res := converter.HotelReservationFromRow(row)
		out = append(out, res)
		effects.Merge(saveEffects(res, now))
	}
	return out, effects, nil
}

func (r *HotelReservationRepository) ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*hotelreservation.Reservation, error) {
	rows, err := r.queries.ListHotelReservationsByOrder(ctx, tx, pgconv.UUIDToPgtype(orderID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel reservations by order", err)
	}
	out := make([]*hotelreservation.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.HotelReservationFromRow(row))
	}
	return out, nil
}

func saveEffects(res *hotelreservation.Reservation, recordedAt time.Time) shared.Effects {
	effects := shared.Effects{Audit: []history.Entry{history.NewEntry(history.ActionSave, res, recordedAt)}}
	effects.AddTouch(res.HotelQuoteRateID())
	return effects
}
