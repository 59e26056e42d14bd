package commands

import (
	"hotel-block-service/internal/pkg/errs"
)

var (
	ErrOrderNotFound       = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrOrderNotPlaced      = errs.Mark(errs.New("order has not been placed"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("hotel reservation not found"), errs.ErrNotFound)
	ErrEventVenueNotFound  = errs.Mark(errs.New("event venue not found"), errs.ErrNotFound)
	ErrEventNotFound       = errs.Mark(errs.New("event not found"), errs.ErrNotFound)
	ErrQuoteRateNotFound   = errs.Mark(errs.New("hotel quote rate not found"), errs.ErrNotFound)
	ErrBlankCode           = errs.Mark(errs.New("hotel reservation code is blank"), errs.ErrValidation)
	ErrInvalidRoomCount    = errs.Mark(errs.New("room count must be at least one"), errs.ErrValidation)
	ErrTransactionFailure  = errs.Mark(errs.New("transaction failed"), errs.ErrTransactionFailure)
)

// asNotFound re-marks a lookup failure with the caller's sentinel when the row is missing.
func asNotFound(err, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// asTransactionFailure keeps client-facing kinds and folds everything else into ErrTransactionFailure.
func asTransactionFailure(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, errs.ErrNotFound, errs.ErrValidation, errs.ErrHasReservations) {
		return err
	}
	return errs.Mark(err, ErrTransactionFailure)
}
