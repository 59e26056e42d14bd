package hotelreservation

import "hotel-block-service/internal/pkg/errs"

var (
	ErrValidation      = errs.Mark(errs.New("hotel reservation is invalid"), errs.ErrValidation)
	ErrHasReservations = errs.Mark(errs.New("hotel reservation has a confirmation code"), errs.ErrHasReservations)
	ErrNoNightlyRates  = errs.New("hotel quote rate has no nightly quantities")
)
